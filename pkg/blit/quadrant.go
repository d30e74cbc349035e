package blit

import (
	"fmt"

	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

// Quadrant identifies one quarter of a raster: 0 top left, 1 top right,
// 2 bottom left, 3 bottom right.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

// Quadrants lists all four quadrants in raster order.
var Quadrants = [4]Quadrant{TopLeft, TopRight, BottomLeft, BottomRight}

type quadGeometry struct {
	origin    int
	fullPitch int
	halfPitch int
	halfLines int
}

// geometry locates q in a full raster. quad13Offset shifts the right hand
// quadrants by a few bytes when the midpoint is not on an element boundary.
func geometry(fullLines, fullPitch int, q Quadrant, quad13Offset int) (quadGeometry, error) {
	if fullLines < 2 || fullPitch < 2 {
		return quadGeometry{}, fmt.Errorf("%d lines of %d bytes: %w", fullLines, fullPitch, io.ErrBadGeometry)
	}
	if quad13Offset < 0 || quad13Offset >= fullPitch/2 {
		return quadGeometry{}, fmt.Errorf("quadrant offset %d: %w", quad13Offset, io.ErrBadGeometry)
	}
	g := quadGeometry{fullPitch: fullPitch, halfPitch: fullPitch / 2, halfLines: fullLines / 2}
	switch q {
	case TopLeft:
	case TopRight:
		g.origin = g.halfPitch + quad13Offset
	case BottomLeft:
		g.origin = fullPitch * g.halfLines
	case BottomRight:
		g.origin = fullPitch*g.halfLines + g.halfPitch + quad13Offset
	default:
		return quadGeometry{}, fmt.Errorf("quadrant %d: %w", q, io.ErrBadGeometry)
	}
	return g, nil
}

func (g quadGeometry) check(full, quad []byte) error {
	if len(full) == 0 || len(quad) == 0 {
		return io.ErrNullBuffer
	}
	if &full[0] == &quad[0] {
		return fmt.Errorf("quadrant and full raster are the same buffer: %w", io.ErrBadGeometry)
	}
	if err := io.CheckSize(full, io.Extent(g.origin, g.fullPitch, g.halfLines, g.halfPitch)); err != nil {
		return err
	}
	return io.CheckSize(quad, g.halfPitch*g.halfLines)
}

// CopyFromQuadrant copies quadrant q of the full raster src into dst, a
// packed raster of half the pitch and half the lines.
func CopyFromQuadrant(dst, src []byte, fullLines, fullPitch int, q Quadrant, quad13Offset int) error {
	g, err := geometry(fullLines, fullPitch, q, quad13Offset)
	if err != nil {
		return err
	}
	if err := g.check(src, dst); err != nil {
		return err
	}
	io.CopyRows(dst, g.halfPitch, src[g.origin:], g.fullPitch, g.halfLines, g.halfPitch)
	return nil
}

// CopyToQuadrant copies src, a raster of half the pitch and half the lines,
// into quadrant q of the full raster dst.
func CopyToQuadrant(dst, src []byte, fullLines, fullPitch int, q Quadrant, quad13Offset int) error {
	g, err := geometry(fullLines, fullPitch, q, quad13Offset)
	if err != nil {
		return err
	}
	if err := g.check(dst, src); err != nil {
		return err
	}
	io.CopyRows(dst[g.origin:], g.fullPitch, src, g.halfPitch, g.halfLines, g.halfPitch)
	return nil
}

// SplitQuadrants writes the four quadrants of src one after another into
// dst, in raster order.
func SplitQuadrants(dst, src []byte, fullLines, fullPitch int) error {
	size := fullPitch / 2 * (fullLines / 2)
	if err := io.CheckSize(dst, 4*size); err != nil {
		return err
	}
	for i, q := range Quadrants {
		if err := CopyFromQuadrant(dst[i*size:(i+1)*size], src, fullLines, fullPitch, q, 0); err != nil {
			return fmt.Errorf("quadrant %d: %w", q, err)
		}
	}
	return nil
}

// MergeQuadrants is the inverse of SplitQuadrants.
func MergeQuadrants(dst, src []byte, fullLines, fullPitch int) error {
	size := fullPitch / 2 * (fullLines / 2)
	if err := io.CheckSize(src, 4*size); err != nil {
		return err
	}
	for i, q := range Quadrants {
		if err := CopyToQuadrant(dst, src[i*size:(i+1)*size], fullLines, fullPitch, q, 0); err != nil {
			return fmt.Errorf("quadrant %d: %w", q, err)
		}
	}
	return nil
}
