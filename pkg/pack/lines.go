package pack

import (
	"encoding/binary"
	"fmt"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

// SignalMask selects which YCbCr components MaskYCbCrLine keeps.
type SignalMask uint8

const (
	SignalY SignalMask = 1 << iota
	SignalCb
	SignalCr

	SignalAll = SignalY | SignalCb | SignalCr
)

// Make10BitBlackLine fills the first 2*pixels slots of a canonical Cb Y Cr Y
// line with 10-bit black.
func Make10BitBlackLine(dst []uint16, pixels int) error {
	return fill422(dst, pixels, frame.ChromaOffset10, frame.Black10)
}

// Make10BitWhiteLine fills the first 2*pixels slots with 10-bit white.
func Make10BitWhiteLine(dst []uint16, pixels int) error {
	return fill422(dst, pixels, frame.ChromaOffset10, frame.White10)
}

func fill422(dst []uint16, pixels int, c, y uint16) error {
	if len(dst) < pixels*2 {
		return fmt.Errorf("line holds %d of %d components: %w", len(dst), pixels*2, io.ErrBadBufferSize)
	}
	for i := 0; i+1 < pixels*2; i += 2 {
		dst[i] = c
		dst[i+1] = y
	}
	return nil
}

// Make8BitBlackLine writes pixels pixels of 8-bit black in f, which must be
// 8BitYCbCr or 8BitYCbCrYUY2.
func Make8BitBlackLine(dst []byte, pixels int, f frame.PixelFormat) error {
	return fill8(dst, pixels, f, frame.Black8)
}

// Make8BitWhiteLine writes pixels pixels of 8-bit white in f.
func Make8BitWhiteLine(dst []byte, pixels int, f frame.PixelFormat) error {
	return fill8(dst, pixels, f, frame.White8)
}

func fill8(dst []byte, pixels int, f frame.PixelFormat, y byte) error {
	var pattern [2]byte
	switch f {
	case frame.Format8BitYCbCr:
		pattern = [2]byte{frame.ChromaOffset8, y}
	case frame.Format8BitYCbCrYUY2:
		pattern = [2]byte{y, frame.ChromaOffset8}
	default:
		return fmt.Errorf("8-bit line fill for %s: %w", f, io.ErrUnsupportedFormat)
	}
	if err := io.CheckSize(dst, pixels*2); err != nil {
		return err
	}
	for i := 0; i < pixels*2; i += 2 {
		dst[i] = pattern[0]
		dst[i+1] = pattern[1]
	}
	return nil
}

// MaskYCbCrLine replaces every component of a canonical 10-bit Cb Y Cr Y
// line that is not selected by mask with its neutral value: black for Y, the
// chroma offset for Cb and Cr.
func MaskYCbCrLine(line []uint16, mask SignalMask, pixels int) error {
	if len(line) < pixels*2 {
		return fmt.Errorf("line holds %d of %d components: %w", len(line), pixels*2, io.ErrBadBufferSize)
	}
	for i := 0; i+3 < pixels*2; i += 4 {
		if mask&SignalCb == 0 {
			line[i] = frame.ChromaOffset10
		}
		if mask&SignalCr == 0 {
			line[i+2] = frame.ChromaOffset10
		}
		if mask&SignalY == 0 {
			line[i+1] = frame.Black10
			line[i+3] = frame.Black10
		}
	}
	return nil
}

// BlackLine returns rowBytes bytes of black for one row of the given plane
// of f. Bytes past the last whole group stay zero. RGB black is opaque.
func BlackLine(f frame.PixelFormat, plane, rowBytes int) ([]byte, error) {
	if rowBytes <= 0 {
		return nil, fmt.Errorf("row of %d bytes: %w", rowBytes, io.ErrBadGeometry)
	}
	if plane < 0 || plane >= max(frame.NumPlanes(f), 1) {
		return nil, fmt.Errorf("%s has no plane %d: %w", f, plane, io.ErrBadGeometry)
	}
	line := make([]byte, rowBytes)

	switch f {
	case frame.Format8BitYCbCr420PL3, frame.Format8BitYCbCr422PL3,
		frame.Format8BitYCbCr420PL2, frame.Format8BitYCbCr422PL2:
		v := byte(frame.ChromaOffset8)
		if plane == 0 {
			v = frame.Black8
		}
		for i := range line {
			line[i] = v
		}
		return line, nil
	case frame.Format10BitYCbCr420PL3LE, frame.Format10BitYCbCr422PL3LE:
		v := uint16(frame.ChromaOffset10)
		if plane == 0 {
			v = frame.Black10
		}
		for i := 0; i+1 < len(line); i += 2 {
			binary.LittleEndian.PutUint16(line[i:], v)
		}
		return line, nil
	}

	c, err := ForFormat(f)
	if err != nil {
		return nil, err
	}
	groups := rowBytes / c.GroupBytes()
	if groups == 0 {
		return line, nil
	}
	pattern := blackGroup(f, plane, c.GroupComponents())
	src := make([]uint16, groups*len(pattern))
	for i := range src {
		src[i] = pattern[i%len(pattern)]
	}
	if _, err := c.Pack(line, src, groups*c.GroupPixels()); err != nil {
		return nil, err
	}
	return line, nil
}

func blackGroup(f frame.PixelFormat, plane, n int) []uint16 {
	g := make([]uint16, n)
	switch {
	case f == frame.Format10BitYCbCr420PL2 || f == frame.Format10BitYCbCr422PL2:
		v := uint16(frame.ChromaOffset10)
		if plane == 0 {
			v = frame.Black10
		}
		for i := range g {
			g[i] = v
		}
	case frame.IsYCbCr(f):
		c, y := uint16(frame.ChromaOffset8), uint16(frame.Black8)
		if frame.Is10Bit(f) {
			c, y = frame.ChromaOffset10, frame.Black10
		}
		for i := 0; i+1 < n; i += 2 {
			g[i], g[i+1] = c, y
		}
	case frame.HasAlpha(f):
		// one pixel per group; alpha is the last canonical slot
		g[n-1] = opaque(f)
	}
	return g
}

func opaque(f frame.PixelFormat) uint16 {
	switch f {
	case frame.Format10BitRGB:
		return 3
	case frame.Format16BitARGB:
		return frame.Max16
	}
	return frame.Max8
}
