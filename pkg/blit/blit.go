// Package blit copies rectangles between frame buffers of the same pixel
// format and moves quadrants in and out of 4K and 8K rasters.
package blit

import (
	"fmt"

	"github.com/aja-video/libajantv2-sub001/internal/logging"
	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

var logger = logging.NewLogger("blit")

// CopyParams places a source rectangle into a destination raster. Offsets
// and Pixels are in pixels and must be whole multiples of the format's
// pixel group. Lines and Pixels may exceed either raster; the copy is
// clipped to what both can hold.
type CopyParams struct {
	DstPitch       int
	DstLines       int
	DstLineOffset  int
	DstPixelOffset int

	SrcPitch       int
	SrcLines       int
	SrcLineOffset  int
	SrcPixelOffset int

	Lines  int
	Pixels int
}

// CopyRaster copies a rectangle of src into dst. Both buffers hold one
// plane of pf. Nothing is written unless every check passes.
func CopyRaster(pf frame.PixelFormat, dst, src []byte, p CopyParams) error {
	if len(dst) == 0 || len(src) == 0 {
		return io.ErrNullBuffer
	}
	if &dst[0] == &src[0] {
		return fmt.Errorf("source and destination are the same buffer: %w", io.ErrBadGeometry)
	}
	if p.DstPitch <= 0 || p.DstLines <= 0 || p.SrcPitch <= 0 || p.SrcLines <= 0 {
		return fmt.Errorf("pitch %d/%d, lines %d/%d: %w", p.DstPitch, p.SrcPitch, p.DstLines, p.SrcLines, io.ErrBadGeometry)
	}
	bytesPerGroup, pixelsPerGroup, err := frame.Granularity(pf)
	if err != nil {
		return err
	}
	for _, v := range []int{p.DstPixelOffset, p.SrcPixelOffset, p.Pixels} {
		if v < 0 || v%pixelsPerGroup != 0 {
			return fmt.Errorf("%d pixels is not a whole number of %d pixel %s groups: %w", v, pixelsPerGroup, pf, io.ErrBadGeometry)
		}
	}
	if p.DstLineOffset < 0 || p.SrcLineOffset < 0 || p.Lines < 0 {
		return fmt.Errorf("negative line offset or count: %w", io.ErrBadGeometry)
	}

	dstWidth := p.DstPitch / bytesPerGroup * pixelsPerGroup
	srcWidth := p.SrcPitch / bytesPerGroup * pixelsPerGroup
	switch {
	case p.SrcPixelOffset >= srcWidth:
		return fmt.Errorf("source pixel offset %d past width %d: %w", p.SrcPixelOffset, srcWidth, io.ErrBadGeometry)
	case p.DstPixelOffset >= dstWidth:
		return fmt.Errorf("destination pixel offset %d past width %d: %w", p.DstPixelOffset, dstWidth, io.ErrBadGeometry)
	case p.SrcLineOffset >= p.SrcLines:
		return fmt.Errorf("source line offset %d past %d lines: %w", p.SrcLineOffset, p.SrcLines, io.ErrBadGeometry)
	case p.DstLineOffset >= p.DstLines:
		return fmt.Errorf("destination line offset %d past %d lines: %w", p.DstLineOffset, p.DstLines, io.ErrBadGeometry)
	}

	pixels := min(p.Pixels, srcWidth-p.SrcPixelOffset, dstWidth-p.DstPixelOffset)
	lines := min(p.Lines, p.SrcLines-p.SrcLineOffset, p.DstLines-p.DstLineOffset)
	if pixels != p.Pixels || lines != p.Lines {
		logger.Debugf("%s copy of %dx%d clipped to %dx%d", pf, p.Pixels, p.Lines, pixels, lines)
	}
	if pixels == 0 || lines == 0 {
		return nil
	}

	if err := io.CheckSize(dst, p.DstPitch*p.DstLines); err != nil {
		return err
	}
	if err := io.CheckSize(src, p.SrcPitch*p.SrcLines); err != nil {
		return err
	}

	dstStart := p.DstLineOffset*p.DstPitch + p.DstPixelOffset/pixelsPerGroup*bytesPerGroup
	srcStart := p.SrcLineOffset*p.SrcPitch + p.SrcPixelOffset/pixelsPerGroup*bytesPerGroup
	io.CopyRows(dst[dstStart:], p.DstPitch, src[srcStart:], p.SrcPitch, lines, pixels/pixelsPerGroup*bytesPerGroup)
	return nil
}
