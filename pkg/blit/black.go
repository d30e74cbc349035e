package blit

import (
	"fmt"

	"github.com/aja-video/libajantv2-sub001/pkg/io"
	"github.com/aja-video/libajantv2-sub001/pkg/pack"
	"github.com/aja-video/libajantv2-sub001/pkg/raster"
)

// SetLinesBlack fills count raster lines starting at first with black, in
// every plane. count is clipped to the raster. The buffer size is checked
// before any line is written.
func SetLinesBlack(desc raster.Descriptor, buf []byte, first, count int) error {
	if err := desc.CheckBuffer(buf); err != nil {
		return err
	}
	if first < 0 || first >= desc.FullRasterHeight() || count < 0 {
		return fmt.Errorf("lines %d+%d of %d: %w", first, count, desc.FullRasterHeight(), io.ErrBadGeometry)
	}
	last := min(first+count, desc.FullRasterHeight()) - 1
	if last < first {
		return nil
	}

	for p := 0; p < desc.NumPlanes(); p++ {
		black, err := pack.BlackLine(desc.PixelFormat(), p, desc.RowBytes(p))
		if err != nil {
			return err
		}
		for row := desc.PlaneLine(first, p); row <= desc.PlaneLine(last, p); row++ {
			copy(desc.Row(buf, row, p), black)
		}
	}
	return nil
}
