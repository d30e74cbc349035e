package raster

import (
	"errors"
	"fmt"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

// Plane is the layout of one plane inside a frame buffer.
type Plane struct {
	// RowBytes is the row pitch in bytes.
	RowBytes int
	// Lines is the number of rows the plane holds.
	Lines int
	// Offset is the byte offset of the plane's first row.
	Offset int
}

// Descriptor lays out one frame buffer for a raster standard, pixel format
// and VANC mode. A Descriptor is a value; each configuration builds its own.
// Check IsValid before use: an invalid Descriptor reports zero sizes and nil
// rows, and Err explains why it is invalid.
type Descriptor struct {
	standard    Standard
	format      frame.PixelFormat
	vanc        VancMode
	width       int
	fullLines   int
	activeLines int
	firstActive int
	planes      []Plane
	err         error
}

type options struct {
	rowPitch int
}

// Option configures descriptor construction.
type Option func(*options)

// WithRowPitch sets the first plane's row pitch in bytes. The pitch must be
// at least the format's row bytes for the raster width. Chroma plane pitches
// follow from it.
func WithRowPitch(bytes int) Option {
	return func(o *options) {
		o.rowPitch = bytes
	}
}

// NewDescriptor returns the descriptor for a frame of std in format pf with
// the given VANC mode. Requesting VANC on a standard that has no VANC
// geometry yields an invalid descriptor.
func NewDescriptor(std Standard, pf frame.PixelFormat, vanc VancMode, opts ...Option) Descriptor {
	d := Descriptor{standard: std, format: pf, vanc: vanc}
	if !std.IsValid() {
		return d.invalid(fmt.Errorf("unknown standard %s: %w", std, io.ErrBadGeometry))
	}

	width, active := std.Size()
	full := std.vancLines(vanc)
	if full == 0 {
		return d.invalid(fmt.Errorf("%s has no %s VANC geometry: %w", std, vanc, io.ErrBadGeometry))
	}

	d.activeLines = active
	d.firstActive = full - active
	return d.layout(width, full, opts)
}

// NewRasterDescriptor returns a descriptor for an arbitrary width x lines
// raster with no VANC.
func NewRasterDescriptor(width, lines int, pf frame.PixelFormat, opts ...Option) Descriptor {
	d := Descriptor{standard: -1, format: pf, vanc: VancOff, activeLines: lines}
	return d.layout(width, lines, opts)
}

func (d Descriptor) layout(width, lines int, opts []Option) Descriptor {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if width <= 0 || lines <= 0 {
		return d.invalid(fmt.Errorf("%dx%d raster: %w", width, lines, io.ErrBadGeometry))
	}
	geom := frame.ElementGeometry(d.format)
	if geom.IsZero() {
		return d.invalid(fmt.Errorf("%s: %w", d.format, io.ErrUnsupportedFormat))
	}

	minPitch := frame.RowBytes(d.format, width)
	planar := frame.IsPlanar(d.format)
	if !planar {
		minPitch = roundUp(minPitch, geom.BytesPerElement)
	}
	pitch := o.rowPitch
	if pitch == 0 {
		pitch = minPitch
	}
	switch {
	case pitch < minPitch:
		return d.invalid(fmt.Errorf("row pitch %d below %d for %s at width %d: %w", pitch, minPitch, d.format, width, io.ErrBadGeometry))
	case !planar && pitch%geom.BytesPerElement != 0:
		return d.invalid(fmt.Errorf("row pitch %d is not a multiple of the %d byte %s element: %w", pitch, geom.BytesPerElement, d.format, io.ErrBadGeometry))
	case frame.NumPlanes(d.format) == 3 && pitch%2 != 0:
		return d.invalid(fmt.Errorf("row pitch %d cannot be split between chroma planes: %w", pitch, io.ErrBadGeometry))
	}

	d.width = width
	d.fullLines = lines
	d.planes = planesFor(d.format, pitch, lines)
	return d
}

func planesFor(pf frame.PixelFormat, pitch, lines int) []Plane {
	_, vs := frame.ChromaSubsampling(pf)
	chromaLines := (lines + vs - 1) / vs

	switch frame.NumPlanes(pf) {
	case 3:
		cb := Plane{RowBytes: pitch / 2, Lines: chromaLines, Offset: pitch * lines}
		cr := Plane{RowBytes: pitch / 2, Lines: chromaLines, Offset: cb.Offset + cb.RowBytes*cb.Lines}
		return []Plane{{RowBytes: pitch, Lines: lines}, cb, cr}
	case 2:
		return []Plane{
			{RowBytes: pitch, Lines: lines},
			{RowBytes: pitch, Lines: chromaLines, Offset: pitch * lines},
		}
	}
	return []Plane{{RowBytes: pitch, Lines: lines}}
}

func (d Descriptor) invalid(err error) Descriptor {
	d.width, d.fullLines, d.activeLines, d.firstActive = 0, 0, 0, 0
	d.planes = nil
	d.err = err
	return d
}

func roundUp(n, multiple int) int {
	if multiple <= 1 {
		return n
	}
	return (n + multiple - 1) / multiple * multiple
}

// IsValid reports whether d describes a usable layout.
func (d Descriptor) IsValid() bool {
	return d.err == nil && len(d.planes) > 0
}

// Err returns why d is invalid, or nil. It wraps io.ErrBadGeometry or
// io.ErrUnsupportedFormat.
func (d Descriptor) Err() error {
	if d.err == nil && len(d.planes) == 0 {
		return fmt.Errorf("zero descriptor: %w", io.ErrBadGeometry)
	}
	return d.err
}

var errMadeInvalid = errors.New("descriptor made invalid")

// MakeInvalid turns d into an invalid descriptor.
func (d *Descriptor) MakeInvalid() {
	*d = d.invalid(fmt.Errorf("%w: %w", errMadeInvalid, io.ErrBadGeometry))
}

// Standard returns the raster standard, or -1 for descriptors built by
// NewRasterDescriptor.
func (d Descriptor) Standard() Standard { return d.standard }

// PixelFormat returns the pixel format.
func (d Descriptor) PixelFormat() frame.PixelFormat { return d.format }

// VancMode returns the VANC mode.
func (d Descriptor) VancMode() VancMode { return d.vanc }

// RasterWidth returns the raster width in pixels.
func (d Descriptor) RasterWidth() int { return d.width }

// FullRasterHeight returns the number of lines including VANC.
func (d Descriptor) FullRasterHeight() int { return d.fullLines }

// ActiveHeight returns the number of visible lines.
func (d Descriptor) ActiveHeight() int { return d.activeLines }

// FirstActiveLine returns the index of the first visible line.
func (d Descriptor) FirstActiveLine() int { return d.firstActive }

// NumPlanes returns the number of planes, 0 when d is invalid.
func (d Descriptor) NumPlanes() int { return len(d.planes) }

// Plane returns the layout of plane p.
func (d Descriptor) Plane(p int) (Plane, bool) {
	if p < 0 || p >= len(d.planes) {
		return Plane{}, false
	}
	return d.planes[p], true
}

// RowBytes returns the row pitch of plane p, 0 when there is no such plane.
func (d Descriptor) RowBytes(p int) int {
	pl, _ := d.Plane(p)
	return pl.RowBytes
}

// BytesPerRow returns the row pitch of the first plane.
func (d Descriptor) BytesPerRow() int { return d.RowBytes(0) }

// PlaneLines returns the number of rows in plane p.
func (d Descriptor) PlaneLines(p int) int {
	pl, _ := d.Plane(p)
	return pl.Lines
}

// PlaneOffset returns the byte offset of plane p.
func (d Descriptor) PlaneOffset(p int) int {
	pl, _ := d.Plane(p)
	return pl.Offset
}

// PlaneLine maps raster line to the row of plane p that carries it.
func (d Descriptor) PlaneLine(line, p int) int {
	pl, ok := d.Plane(p)
	if !ok || d.fullLines == 0 {
		return -1
	}
	if pl.Lines == d.fullLines {
		return line
	}
	return line * pl.Lines / d.fullLines
}

// TotalBytes returns the size of the whole frame, VANC included.
func (d Descriptor) TotalBytes() int {
	var n int
	for _, pl := range d.planes {
		n += pl.RowBytes * pl.Lines
	}
	return n
}

// VisibleBytes returns the size of the active picture rows.
func (d Descriptor) VisibleBytes() int {
	var n int
	for i, pl := range d.planes {
		lines := d.activeLines
		if i > 0 && pl.Lines != d.fullLines {
			lines = d.activeLines * pl.Lines / d.fullLines
		}
		n += pl.RowBytes * lines
	}
	return n
}

// Row returns the bytes of row line in plane p of buf. It returns nil when
// d is invalid, the row is out of range or buf is too short to hold it.
func (d Descriptor) Row(buf []byte, line, p int) []byte {
	pl, ok := d.Plane(p)
	if !ok || line < 0 || line >= pl.Lines {
		return nil
	}
	start := pl.Offset + line*pl.RowBytes
	end := start + pl.RowBytes
	if end > len(buf) {
		return nil
	}
	return buf[start:end:end]
}

// TopVisibleRow returns the first visible row of buf.
func (d Descriptor) TopVisibleRow(buf []byte) []byte {
	return d.Row(buf, d.firstActive, 0)
}

// IsPlanar reports whether the format uses more than one plane.
func (d Descriptor) IsPlanar() bool { return len(d.planes) > 1 }

// IsVanc reports whether the raster carries VANC lines.
func (d Descriptor) IsVanc() bool { return d.IsValid() && d.firstActive > 0 }

// IsTallVanc reports whether the tall VANC geometry is in use.
func (d Descriptor) IsTallVanc() bool { return d.IsVanc() && d.vanc == VancTall }

// IsTallerVanc reports whether the taller VANC geometry is in use.
func (d Descriptor) IsTallerVanc() bool { return d.IsVanc() && d.vanc == VancTaller }

// IsQuadRaster reports whether the standard is carried as four quadrants.
func (d Descriptor) IsQuadRaster() bool { return d.standard.IsQuad() }

// Quadrant returns the descriptor of one quadrant of d: half the width,
// half the lines and half the first plane's pitch.
func (d Descriptor) Quadrant() Descriptor {
	if !d.IsValid() {
		return d
	}
	if quad, ok := d.standard.QuadrantStandard(); ok {
		return NewDescriptor(quad, d.format, VancOff, WithRowPitch(d.BytesPerRow()/2))
	}
	return NewRasterDescriptor(d.width/2, d.fullLines/2, d.format, WithRowPitch(d.BytesPerRow()/2))
}

// CheckBuffer returns nil when buf holds a whole frame laid out by d.
func (d Descriptor) CheckBuffer(buf []byte) error {
	if !d.IsValid() {
		return d.Err()
	}
	return io.CheckSize(buf, d.TotalBytes())
}

func (d Descriptor) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("invalid descriptor (%v)", d.Err())
	}
	return fmt.Sprintf("%s %dx%d (%d active from %d) pitch %d planes %d",
		d.format, d.width, d.fullLines, d.activeLines, d.firstActive, d.BytesPerRow(), len(d.planes))
}
