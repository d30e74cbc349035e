// Package pack converts between packed frame buffer lines and canonical
// component lines.
//
// A canonical line holds one uint16 per component with the significant bits
// in the low end. 4:2:2 formats use Cb, Y, Cr, Y order; RGB formats use R, G,
// B and, when the format stores it, A. Planar formats are handled one plane
// at a time.
package pack

import (
	"fmt"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

// Codec packs and unpacks lines of one pixel format. Pixel counts are
// truncated to whole groups; a trailing partial group is never touched.
type Codec interface {
	Format() frame.PixelFormat
	// GroupPixels is the number of pixels in the smallest packed group.
	GroupPixels() int
	// GroupComponents is the number of canonical components in a group.
	GroupComponents() int
	// GroupBytes is the packed size of a group.
	GroupBytes() int
	// Unpack decodes pixels pixels from src into dst and returns the number
	// of components written.
	Unpack(dst []uint16, src []byte, pixels int) (int, error)
	// Pack encodes pixels pixels from src into dst and returns the number of
	// bytes written.
	Pack(dst []byte, src []uint16, pixels int) (int, error)
}

type lineFunc func(dst []uint16, src []byte, groups int) error
type packFunc func(dst []byte, src []uint16, groups int) error

type codec struct {
	format     frame.PixelFormat
	pixels     int
	components int
	bytes      int
	unpack     lineFunc
	pack       packFunc
}

func (c *codec) Format() frame.PixelFormat { return c.format }
func (c *codec) GroupPixels() int          { return c.pixels }
func (c *codec) GroupComponents() int      { return c.components }
func (c *codec) GroupBytes() int           { return c.bytes }

func (c *codec) groups(pixels int) (int, error) {
	if pixels < c.pixels {
		return 0, fmt.Errorf("%d pixels is below the %d pixel %s group: %w", pixels, c.pixels, c.format, io.ErrBadBufferSize)
	}
	return pixels / c.pixels, nil
}

func (c *codec) Unpack(dst []uint16, src []byte, pixels int) (int, error) {
	if src == nil {
		return 0, errNullLine
	}
	n, err := c.groups(pixels)
	if err != nil {
		return 0, err
	}
	if err := io.CheckSize(src, n*c.bytes); err != nil {
		return 0, err
	}
	if len(dst) < n*c.components {
		return 0, fmt.Errorf("component line holds %d of %d: %w", len(dst), n*c.components, io.ErrBadBufferSize)
	}
	if err := c.unpack(dst, src, n); err != nil {
		return 0, err
	}
	return n * c.components, nil
}

func (c *codec) Pack(dst []byte, src []uint16, pixels int) (int, error) {
	if dst == nil || src == nil {
		return 0, errNullLine
	}
	n, err := c.groups(pixels)
	if err != nil {
		return 0, err
	}
	if len(src) < n*c.components {
		return 0, fmt.Errorf("component line holds %d of %d: %w", len(src), n*c.components, io.ErrBadBufferSize)
	}
	if err := io.CheckSize(dst, n*c.bytes); err != nil {
		return 0, err
	}
	if err := c.pack(dst, src, n); err != nil {
		return 0, err
	}
	return n * c.bytes, nil
}

var errNullLine = fmt.Errorf("%w: %w", io.ErrBadBufferSize, io.ErrNullBuffer)

// ForFormat returns the line codec for f.
func ForFormat(f frame.PixelFormat) (Codec, error) {
	switch f {
	case frame.Format10BitYCbCr:
		return v210Codec, nil
	case frame.Format10BitYCbCrDPX:
		return ycbcrDPXCodec, nil
	case frame.Format10BitYCbCr420PL2, frame.Format10BitYCbCr422PL2:
		return newPL2Codec(f), nil
	case frame.Format8BitYCbCr:
		return newBytesCodec(f, 2, []int{0, 1, 2, 3}), nil
	case frame.Format8BitYCbCrYUY2:
		// Y0 Cb Y1 Cr
		return newBytesCodec(f, 2, []int{1, 0, 3, 2}), nil
	case frame.FormatARGB:
		// B G R A
		return newBytesCodec(f, 1, []int{2, 1, 0, 3}), nil
	case frame.FormatRGBA:
		// A R G B
		return newBytesCodec(f, 1, []int{1, 2, 3, 0}), nil
	case frame.FormatABGR:
		// R G B A
		return newBytesCodec(f, 1, []int{0, 1, 2, 3}), nil
	case frame.Format24BitRGB:
		return newBytesCodec(f, 1, []int{0, 1, 2}), nil
	case frame.Format24BitBGR:
		return newBytesCodec(f, 1, []int{2, 1, 0}), nil
	case frame.Format10BitRGB:
		return rgb10Codec, nil
	case frame.Format10BitDPX:
		return dpxCodec, nil
	case frame.Format10BitDPXLE:
		return dpxLECodec, nil
	case frame.Format10BitRGBPacked:
		return rgbPackedCodec, nil
	case frame.Format48BitRGB:
		// R G B
		return newWords16Codec(f, []int{0, 1, 2}), nil
	case frame.Format16BitARGB:
		// B G R A
		return newWords16Codec(f, []int{2, 1, 0, 3}), nil
	case frame.Format12BitRGBPacked:
		return rgb12Codec, nil
	}
	return nil, fmt.Errorf("no line codec for %s: %w", f, io.ErrUnsupportedFormat)
}
