package video

import (
	"fmt"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
	"github.com/aja-video/libajantv2-sub001/pkg/pack"
	"github.com/aja-video/libajantv2-sub001/pkg/raster"
)

type lineConverter func(dst, src []byte, pixels int) error

// families group formats whose canonical component lines are
// interchangeable.
var families = [][]frame.PixelFormat{
	{frame.Format8BitYCbCr, frame.Format8BitYCbCrYUY2},
	{frame.Format10BitYCbCr, frame.Format10BitYCbCrDPX},
	{frame.FormatARGB, frame.FormatRGBA, frame.FormatABGR},
	{frame.Format24BitRGB, frame.Format24BitBGR},
	{frame.Format10BitDPX, frame.Format10BitDPXLE, frame.Format10BitRGBPacked},
}

func sameFamily(a, b frame.PixelFormat) bool {
	for _, family := range families {
		var hasA, hasB bool
		for _, f := range family {
			hasA = hasA || f == a
			hasB = hasB || f == b
		}
		if hasA && hasB {
			return true
		}
	}
	return false
}

func converterFor(from, to frame.PixelFormat) (lineConverter, error) {
	switch {
	case from == frame.Format8BitYCbCr && to == frame.Format10BitYCbCr:
		return func(dst, src []byte, pixels int) error {
			_, err := pack.Convert2vuyToV210(dst, src, pixels)
			return err
		}, nil
	case from == frame.Format10BitYCbCr && to == frame.Format8BitYCbCr:
		return func(dst, src []byte, pixels int) error {
			_, err := pack.ConvertV210To2vuy(dst, src, pixels)
			return err
		}, nil
	case !sameFamily(from, to):
		return nil, fmt.Errorf("no conversion from %s to %s: %w", from, to, io.ErrUnsupportedFormat)
	}

	src, err := pack.ForFormat(from)
	if err != nil {
		return nil, err
	}
	dst, err := pack.ForFormat(to)
	if err != nil {
		return nil, err
	}
	var components []uint16
	return func(dstLine, srcLine []byte, pixels int) error {
		if n := pixels / src.GroupPixels() * src.GroupComponents(); cap(components) < n {
			components = make([]uint16, n)
		}
		if _, err := src.Unpack(components[:cap(components)], srcLine, pixels); err != nil {
			return err
		}
		_, err := dst.Pack(dstLine, components[:cap(components)], pixels)
		return err
	}, nil
}

// reformat lays out the same raster as d in format pf.
func reformat(d raster.Descriptor, pf frame.PixelFormat) raster.Descriptor {
	if d.Standard().IsValid() {
		return raster.NewDescriptor(d.Standard(), pf, d.VancMode())
	}
	return raster.NewRasterDescriptor(d.RasterWidth(), d.FullRasterHeight(), pf)
}

// Convert returns a transform that repacks every incoming frame into pf,
// line by line. 2vuy and v210 convert into each other; any other pair must
// carry the same components at the same depth. Frames already in pf pass
// through.
func Convert(pf frame.PixelFormat) TransformFunc {
	return func(r Reader) Reader {
		buffer := NewFrameBuffer(0)
		var (
			from    frame.PixelFormat = -1
			convert lineConverter
		)
		return ReaderFunc(func() (*Frame, func(), error) {
			f, release, err := r.Read()
			if err != nil {
				return nil, noop, err
			}
			if f.Desc.PixelFormat() == pf {
				return f, release, nil
			}
			defer release()

			if err := f.Desc.CheckBuffer(f.Data); err != nil {
				return nil, noop, err
			}
			if f.Desc.PixelFormat() != from {
				convert, err = converterFor(f.Desc.PixelFormat(), pf)
				if err != nil {
					return nil, noop, err
				}
				from = f.Desc.PixelFormat()
				logger.Debugf("converting %s to %s", from, pf)
			}

			out, err := buffer.Alloc(reformat(f.Desc, pf))
			if err != nil {
				return nil, noop, err
			}
			width := f.Desc.RasterWidth()
			for line := 0; line < f.Desc.FullRasterHeight(); line++ {
				if err := convert(out.Desc.Row(out.Data, line, 0), f.Desc.Row(f.Data, line, 0), width); err != nil {
					return nil, noop, fmt.Errorf("line %d: %w", line, err)
				}
			}
			return out, noop, nil
		})
	}
}
