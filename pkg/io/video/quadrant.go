package video

import (
	"fmt"

	"github.com/aja-video/libajantv2-sub001/pkg/blit"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

// Quadrant returns a transform that crops every incoming frame to quadrant
// q. quad13Offset is passed to blit.CopyFromQuadrant. Planar frames are
// rejected.
func Quadrant(q blit.Quadrant, quad13Offset int) TransformFunc {
	return func(r Reader) Reader {
		buffer := NewFrameBuffer(0)
		return ReaderFunc(func() (*Frame, func(), error) {
			f, release, err := r.Read()
			if err != nil {
				return nil, noop, err
			}
			defer release()

			if f.Desc.IsPlanar() {
				return nil, noop, fmt.Errorf("quadrant of planar %s: %w", f.Desc.PixelFormat(), io.ErrUnsupportedFormat)
			}
			if !f.Desc.IsQuadRaster() {
				logger.Debugf("splitting %s, which is not a quad standard", f.Desc)
			}

			out, err := buffer.Alloc(f.Desc.Quadrant())
			if err != nil {
				return nil, noop, err
			}
			err = blit.CopyFromQuadrant(out.Data, f.Data, f.Desc.FullRasterHeight(), f.Desc.BytesPerRow(), q, quad13Offset)
			if err != nil {
				return nil, noop, err
			}
			return out, noop, nil
		})
	}
}
