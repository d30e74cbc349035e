package frame

import (
	"fmt"

	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

// NewDecoder returns a Decoder for the 8-bit formats that map onto the
// standard library image types.
func NewDecoder(f PixelFormat) (Decoder, error) {
	var decode decoderFunc

	switch f {
	case Format8BitYCbCr:
		decode = decodeUYVY
	case Format8BitYCbCrYUY2:
		decode = decodeYUY2
	case Format8BitYCbCr420PL3:
		decode = decodeI420
	case Format8BitYCbCr422PL3:
		decode = decodeI422
	case Format8BitYCbCr420PL2:
		decode = decodeNV12
	case FormatARGB:
		decode = decodeARGB
	case FormatRGBA:
		decode = decodeRGBA
	case FormatABGR:
		decode = decodeABGR
	case Format24BitRGB:
		decode = decodeRGB24
	case Format24BitBGR:
		decode = decodeBGR24
	default:
		return nil, fmt.Errorf("%s is not supported: %w", f, io.ErrUnsupportedFormat)
	}

	return decode, nil
}

func checkRaster(frame []byte, width, height, pitch, rowLen, planeBytes int) error {
	if width <= 0 || height <= 0 || pitch < rowLen {
		return fmt.Errorf("%dx%d raster with pitch %d: %w", width, height, pitch, io.ErrBadGeometry)
	}
	if len(frame) < planeBytes {
		return fmt.Errorf("frame length (%d) less than expected (%d): %w", len(frame), planeBytes, io.ErrBadBufferSize)
	}
	return nil
}

func noop() {}
