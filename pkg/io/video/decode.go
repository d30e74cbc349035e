package video

import (
	"fmt"
	"image"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/pack"
	"github.com/aja-video/libajantv2-sub001/pkg/raster"
)

// Decode returns an ImageReader over the frames of r. v210 frames are
// narrowed to 2vuy first; other formats use frame.NewDecoder.
func Decode(r Reader) ImageReader {
	var (
		format  frame.PixelFormat = -1
		decoder frame.Decoder
		narrow  = NewFrameBuffer(0)
	)
	return ImageReaderFunc(func() (image.Image, func(), error) {
		f, releaseFrame, err := r.Read()
		if err != nil {
			return nil, noop, err
		}

		if f.Desc.PixelFormat() == frame.Format10BitYCbCr {
			narrowed, err := narrowV210(narrow, f)
			releaseFrame()
			if err != nil {
				return nil, noop, err
			}
			f, releaseFrame = narrowed, noop
		}
		if f.Desc.PixelFormat() != format {
			if decoder, err = frame.NewDecoder(f.Desc.PixelFormat()); err != nil {
				releaseFrame()
				format = -1
				return nil, noop, err
			}
			format = f.Desc.PixelFormat()
		}

		img, releaseImage, err := decoder.Decode(f.Data, f.Desc.RasterWidth(), f.Desc.FullRasterHeight(), f.Desc.BytesPerRow())
		if err != nil {
			releaseFrame()
			return nil, noop, err
		}
		return img, func() {
			releaseImage()
			releaseFrame()
		}, nil
	})
}

func narrowV210(buffer *FrameBuffer, f *Frame) (*Frame, error) {
	if err := f.Desc.CheckBuffer(f.Data); err != nil {
		return nil, err
	}
	out, err := buffer.Alloc(raster.NewRasterDescriptor(f.Desc.RasterWidth(), f.Desc.FullRasterHeight(), frame.Format8BitYCbCr))
	if err != nil {
		return nil, err
	}
	for line := 0; line < f.Desc.FullRasterHeight(); line++ {
		if _, err := pack.ConvertV210To2vuy(out.Desc.Row(out.Data, line, 0), f.Desc.Row(f.Data, line, 0), f.Desc.RasterWidth()); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return out, nil
}
