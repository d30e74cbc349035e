package video

import (
	"fmt"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
	"github.com/aja-video/libajantv2-sub001/pkg/pack"
	"github.com/aja-video/libajantv2-sub001/pkg/raster"

	"golang.org/x/image/draw"
)

// Scaler resamples one component plane.
type Scaler draw.Scaler

var (
	ScalerNearestNeighbor = Scaler(draw.NearestNeighbor)
	ScalerApproxBiLinear  = Scaler(draw.ApproxBiLinear)
	ScalerBiLinear        = Scaler(draw.BiLinear)
	ScalerCatmullRom      = Scaler(draw.CatmullRom)
)

// Scale returns a transform that resamples every frame to width by height
// pixels in its own pixel format. A nil scaler means nearest neighbor. A
// width or height <= 0 follows the aspect ratio of the incoming frame; the
// width is rounded down to whole pixel groups.
//
// Components are scaled per channel, so 4:2:2 chroma stays paired and
// 10 bit values are never narrowed. Planar formats are not supported.
func Scale(width, height int, scaler Scaler) TransformFunc {
	if scaler == nil {
		scaler = ScalerNearestNeighbor
	}
	return func(r Reader) Reader {
		var (
			buffer   = NewFrameBuffer(0)
			src, dst componentPlanes
			format   frame.PixelFormat = -1
			codec    pack.Codec
		)
		return ReaderFunc(func() (*Frame, func(), error) {
			f, release, err := r.Read()
			if err != nil {
				return nil, noop, err
			}
			defer release()

			if width <= 0 && height <= 0 {
				return nil, noop, fmt.Errorf("scale to %dx%d: %w", width, height, io.ErrBadGeometry)
			}
			if err := f.Desc.CheckBuffer(f.Data); err != nil {
				return nil, noop, err
			}
			pf := f.Desc.PixelFormat()
			if pf != format {
				if frame.IsPlanar(pf) {
					return nil, noop, fmt.Errorf("scale %s: %w", pf, io.ErrUnsupportedFormat)
				}
				if codec, err = pack.ForFormat(pf); err != nil {
					return nil, noop, err
				}
				format = pf
			}

			srcWidth, srcLines := f.Desc.RasterWidth(), f.Desc.FullRasterHeight()
			w, h := width, height
			if h <= 0 {
				h = srcLines * w / srcWidth
			} else if w <= 0 {
				w = srcWidth * h / srcLines
			}
			w -= w % codec.GroupPixels()
			if w <= 0 || h <= 0 {
				return nil, noop, fmt.Errorf("scale %s to %dx%d: %w", f.Desc, w, h, io.ErrBadGeometry)
			}

			out, err := buffer.Alloc(raster.NewRasterDescriptor(w, h, pf))
			if err != nil {
				return nil, noop, err
			}

			channels := channelsOf(pf, codec)
			src.resize(channels, codec, srcWidth, srcLines)
			dst.resize(channels, codec, w, h)
			for line := 0; line < srcLines; line++ {
				if _, err := codec.Unpack(src.line, f.Desc.Row(f.Data, line, 0), srcWidth); err != nil {
					return nil, noop, fmt.Errorf("line %d: %w", line, err)
				}
				src.storeLine(line)
			}
			for i := range channels {
				scaler.Scale(dst.planes[i], dst.planes[i].Bounds(), src.planes[i], src.planes[i].Bounds(), draw.Src, nil)
			}
			limit := componentMax(pf)
			for line := 0; line < h; line++ {
				dst.loadLine(line, limit)
				if _, err := codec.Pack(out.Desc.Row(out.Data, line, 0), dst.line, w); err != nil {
					return nil, noop, fmt.Errorf("line %d: %w", line, err)
				}
			}
			return out, noop, nil
		})
	}
}

