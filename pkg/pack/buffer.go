package pack

import (
	"fmt"

	"github.com/aja-video/libajantv2-sub001/internal/logging"
	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
	"github.com/aja-video/libajantv2-sub001/pkg/raster"
)

var logger = logging.NewLogger("pack")

// UnpackLine unpacks one raster line of 10-bit 4:2:2 described by desc into
// dst, growing it when needed, and returns the canonical Cb Y Cr Y line.
// The line width is the descriptor's raster width truncated to whole
// 6-pixel groups.
func UnpackLine(src []byte, desc raster.Descriptor, dst []uint16) ([]uint16, error) {
	if !desc.IsValid() {
		return nil, fmt.Errorf("%w: %w", io.ErrBadBufferSize, desc.Err())
	}
	pf := desc.PixelFormat()
	if pf != frame.Format10BitYCbCr && pf != frame.Format10BitYCbCrDPX {
		return nil, fmt.Errorf("descriptor names %s, want a 10-bit 4:2:2 format: %w", pf, io.ErrBadBufferSize)
	}
	c, err := ForFormat(pf)
	if err != nil {
		return nil, err
	}
	return unpackRow(c, src, desc.RasterWidth(), dst)
}

func unpackRow(c Codec, src []byte, pixels int, dst []uint16) ([]uint16, error) {
	need := pixels / c.GroupPixels() * c.GroupComponents()
	if cap(dst) < need {
		dst = make([]uint16, need)
	}
	n, err := c.Unpack(dst[:need], src, pixels)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// UnpackBuffer unpacks every line of a packed (non-planar) frame buffer,
// VANC included. The buffer size is checked against the descriptor before
// any line is read.
func UnpackBuffer(buf []byte, desc raster.Descriptor) ([][]uint16, error) {
	c, err := bufferCodec(desc)
	if err != nil {
		return nil, err
	}
	if err := desc.CheckBuffer(buf); err != nil {
		return nil, err
	}

	lines := make([][]uint16, desc.FullRasterHeight())
	for i := range lines {
		lines[i], err = unpackRow(c, desc.Row(buf, i, 0), desc.RasterWidth(), nil)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
	}
	return lines, nil
}

// PackBuffer packs lines into the frame buffer described by desc, one
// canonical line per raster line. The buffer size is checked before any
// line is written; a failure partway leaves the earlier lines written.
func PackBuffer(buf []byte, desc raster.Descriptor, lines [][]uint16) error {
	c, err := bufferCodec(desc)
	if err != nil {
		return err
	}
	if err := desc.CheckBuffer(buf); err != nil {
		return err
	}
	if len(lines) < desc.FullRasterHeight() {
		return fmt.Errorf("%d lines for a %d line raster: %w", len(lines), desc.FullRasterHeight(), io.ErrBadBufferSize)
	}

	for i := 0; i < desc.FullRasterHeight(); i++ {
		if _, err := c.Pack(desc.Row(buf, i, 0), lines[i], desc.RasterWidth()); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}
	return nil
}

func bufferCodec(desc raster.Descriptor) (Codec, error) {
	if !desc.IsValid() {
		return nil, desc.Err()
	}
	if desc.IsPlanar() {
		return nil, fmt.Errorf("whole buffer pack of planar %s: %w", desc.PixelFormat(), io.ErrUnsupportedFormat)
	}
	c, err := ForFormat(desc.PixelFormat())
	if err != nil {
		return nil, err
	}
	if tail := desc.RasterWidth() % c.GroupPixels(); tail != 0 {
		logger.Debugf("%s: %d pixels past the last %d pixel group are skipped on every line", desc, tail, c.GroupPixels())
	}
	return c, nil
}
