// Package component flattens a whole frame buffer into per-pixel component
// values for inspection and format agnostic comparison.
package component

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/aja-video/libajantv2-sub001/internal/logging"
	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
	"github.com/aja-video/libajantv2-sub001/pkg/pack"
	"github.com/aja-video/libajantv2-sub001/pkg/raster"
)

var logger = logging.NewLogger("component")

// Reader reads the components of one frame buffer. The view covers every
// raster line, VANC included.
type Reader struct {
	buf  []byte
	desc raster.Descriptor
	view View
}

// NewReader returns a reader over buf laid out by desc. buf must not be
// written while Read runs.
func NewReader(buf []byte, desc raster.Descriptor) *Reader {
	return &Reader{buf: buf, desc: desc, view: View{format: desc.PixelFormat()}}
}

// View returns what the last Read produced.
func (r *Reader) View() View {
	return r.view
}

// Read decodes the whole buffer. The buffer size is checked against the
// descriptor before any line is read. Formats with no reading strategy
// return ErrUnsupportedFormat and leave a view that compares as
// Unsupported.
func (r *Reader) Read() error {
	r.view = View{format: r.desc.PixelFormat()}
	if !r.desc.IsValid() {
		err := r.desc.Err()
		if errors.Is(err, io.ErrUnsupportedFormat) {
			logger.Warnf("%s not yet implemented in component reader", r.desc.PixelFormat())
			r.view.unsupported = true
		}
		return err
	}
	if err := r.desc.CheckBuffer(r.buf); err != nil {
		return err
	}

	read, err := r.strategy()
	if err != nil {
		r.view.unsupported = true
		return err
	}

	var components []uint16
	for line := 0; line < r.desc.FullRasterHeight(); line++ {
		components, err = read(components, line)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	r.view.components = components
	r.view.complete = true
	return nil
}

// lineReader appends the components of one raster line.
type lineReader func(dst []uint16, line int) ([]uint16, error)

func (r *Reader) strategy() (lineReader, error) {
	pf := r.desc.PixelFormat()
	geom := frame.ElementGeometry(pf)
	pixels := r.desc.RasterWidth() / geom.RasterPixelsPerElement * geom.RasterPixelsPerElement

	switch pf {
	case frame.Format10BitYCbCr, frame.Format10BitYCbCrDPX:
		var scratch []uint16
		return func(dst []uint16, line int) ([]uint16, error) {
			var err error
			scratch, err = pack.UnpackLine(r.desc.Row(r.buf, line, 0), r.desc, scratch)
			return append(dst, scratch...), err
		}, nil

	case frame.Format8BitYCbCr420PL3, frame.Format8BitYCbCr422PL3:
		return r.planar3(pixels, func(row []byte, i int) uint16 { return uint16(row[i]) }), nil

	case frame.Format10BitYCbCr420PL3LE, frame.Format10BitYCbCr422PL3LE:
		return r.planar3(pixels, func(row []byte, i int) uint16 {
			return binary.LittleEndian.Uint16(row[2*i:])
		}), nil

	case frame.Format8BitYCbCr420PL2, frame.Format8BitYCbCr422PL2:
		return r.planar2Bytes(pixels), nil

	case frame.Format10BitYCbCr420PL2, frame.Format10BitYCbCr422PL2:
		return r.planar2Packed(pixels)
	}

	c, err := pack.ForFormat(pf)
	if err != nil {
		logger.Warnf("%s not yet implemented in component reader", pf)
		return nil, fmt.Errorf("component reader: %w", err)
	}
	var scratch []uint16
	return func(dst []uint16, line int) ([]uint16, error) {
		if need := pixels / c.GroupPixels() * c.GroupComponents(); cap(scratch) < need {
			scratch = make([]uint16, need)
		}
		n, err := c.Unpack(scratch[:cap(scratch)], r.desc.Row(r.buf, line, 0), pixels)
		return append(dst, scratch[:n]...), err
	}, nil
}

// planar3 pairs every two luma samples with one Cb and one Cr sample,
// emitting Y0 Cb Y1 Cr.
func (r *Reader) planar3(pixels int, sample func(row []byte, i int) uint16) lineReader {
	return func(dst []uint16, line int) ([]uint16, error) {
		y := r.desc.Row(r.buf, line, 0)
		cb := r.desc.Row(r.buf, r.desc.PlaneLine(line, 1), 1)
		cr := r.desc.Row(r.buf, r.desc.PlaneLine(line, 2), 2)
		if y == nil || cb == nil || cr == nil {
			return dst, fmt.Errorf("planar rows: %w", io.ErrBadBufferSize)
		}
		for i := 0; i+1 < pixels; i += 2 {
			dst = append(dst, sample(y, i), sample(cb, i/2), sample(y, i+1), sample(cr, i/2))
		}
		return dst, nil
	}
}

// planar2Bytes reads 8-bit luma against an interleaved Cb Cr plane.
func (r *Reader) planar2Bytes(pixels int) lineReader {
	return func(dst []uint16, line int) ([]uint16, error) {
		y := r.desc.Row(r.buf, line, 0)
		c := r.desc.Row(r.buf, r.desc.PlaneLine(line, 1), 1)
		if y == nil || c == nil {
			return dst, fmt.Errorf("planar rows: %w", io.ErrBadBufferSize)
		}
		for i := 0; i+1 < pixels; i += 2 {
			dst = append(dst, uint16(y[i]), uint16(c[i]), uint16(y[i+1]), uint16(c[i+1]))
		}
		return dst, nil
	}
}

// planar2Packed reads 10-bit luma and interleaved chroma planes through
// the 16-sample line codec.
func (r *Reader) planar2Packed(pixels int) (lineReader, error) {
	c, err := pack.ForFormat(r.desc.PixelFormat())
	if err != nil {
		return nil, err
	}
	luma := make([]uint16, pixels)
	chroma := make([]uint16, pixels)
	return func(dst []uint16, line int) ([]uint16, error) {
		if _, err := c.Unpack(luma, r.desc.Row(r.buf, line, 0), pixels); err != nil {
			return dst, err
		}
		if _, err := c.Unpack(chroma, r.desc.Row(r.buf, r.desc.PlaneLine(line, 1), 1), pixels); err != nil {
			return dst, err
		}
		for i := 0; i+1 < pixels; i += 2 {
			dst = append(dst, luma[i], chroma[i], luma[i+1], chroma[i+1])
		}
		return dst, nil
	}, nil
}
