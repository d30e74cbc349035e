// Package colorspace converts pixels between YCbCr and RGB with the fixed
// point SD and HD matrices used by NTV2 frame buffers.
//
// Conversions never clamp. Results may fall outside the output depth; pass
// them through Limit when a legal value is needed.
package colorspace

import (
	"fmt"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

// Depth is a component bit depth.
type Depth int

const (
	Depth8  Depth = 8
	Depth10 Depth = 10
	Depth16 Depth = 16
)

// Max returns the largest code value of d.
func (d Depth) Max() int32 {
	switch d {
	case Depth8:
		return frame.Max8
	case Depth10:
		return frame.Max10
	case Depth16:
		return frame.Max16
	}
	return 0
}

func (d Depth) black() int32 {
	if d == Depth8 {
		return frame.Black8
	}
	return frame.Black10
}

func (d Depth) chromaOffset() int32 {
	if d == Depth8 {
		return frame.ChromaOffset8
	}
	return frame.ChromaOffset10
}

// Profile selects the coefficient set of a conversion.
type Profile struct {
	// UseSDMatrix picks BT.601 coefficients instead of BT.709.
	UseSDMatrix bool
	// UseSMPTERange keeps RGB in legal range instead of full range.
	UseSMPTERange bool
	// AlphaFromLuma sets alpha to luma/4. Only 10-bit to 8-bit conversion
	// supports it.
	AlphaFromLuma bool
}

// RGBA is one converted pixel. Components are not clamped.
type RGBA struct {
	R, G, B, A int32
}

// Limit clamps every component of p to the range of d.
func Limit(p RGBA, d Depth) RGBA {
	hi := d.Max()
	clamp := func(v int32) int32 {
		switch {
		case v < 0:
			return 0
		case v > hi:
			return hi
		}
		return v
	}
	return RGBA{R: clamp(p.R), G: clamp(p.G), B: clamp(p.B), A: clamp(p.A)}
}

// FixedRound rounds a 16.16 fixed point value to the nearest integer, with
// halves rounded away from zero.
func FixedRound(x int32) int32 {
	if x < 0 {
		return -((-x + 0x8000) >> 16)
	}
	return (x + 0x8000) >> 16
}

// 16.16 fixed point coefficients. G subtracts cbG and crG.
type matrix struct {
	y, crR, cbB, cbG, crG int32
}

func (m matrix) quarter() matrix {
	return matrix{m.y >> 2, m.crR >> 2, m.cbB >> 2, m.cbG >> 2, m.crG >> 2}
}

var (
	sdFull  = matrix{0x12A15, 0x19895, 0x20469, 0x644A, 0xD01F}
	hdFull  = matrix{0x12ACF, 0x1DF71, 0x22A86, 0x3806, 0x8C32}
	sdSMPTE = matrix{0xFF40, 0x15DDF, 0x1BA34, 0x55E1, 0xB237}
	hdSMPTE = matrix{0xFFDF, 0x19A8C, 0x1DAD7, 0x2FF9, 0x780D}

	// The SD 10 to 8 bit sets are tuned separately rather than derived by
	// shifting.
	sdFull10To8  = matrix{0x4A86, 0x6626, 0x811B, 0x1913, 0x3408}
	sdSMPTE10To8 = matrix{0x3FD1, 0x5778, 0x6E8E, 0x1579, 0x2C8E}
)

// Converter turns YCbCr components into RGBA for one depth pair.
type Converter struct {
	m          matrix
	in         Depth
	out        Depth
	offset     int32
	shift      uint
	alphaLuma  bool
	alphaValue int32
}

// NewConverter returns a converter from YCbCr of depth in to RGB of depth
// out. Supported pairs are 8 to 8, 10 to 8, 10 to 10 and 10 to 16.
func NewConverter(p Profile, in, out Depth) (*Converter, error) {
	c := &Converter{in: in, out: out, alphaValue: out.Max()}

	switch {
	case in == Depth8 && out == Depth8, in == Depth10 && out == Depth10, in == Depth10 && out == Depth16:
		c.m = pick(p, sdFull, hdFull, sdSMPTE, hdSMPTE)
	case in == Depth10 && out == Depth8:
		c.m = pick(p, sdFull10To8, hdFull.quarter(), sdSMPTE10To8, hdSMPTE.quarter())
	default:
		return nil, fmt.Errorf("YCbCr %d bit to RGB %d bit: %w", in, out, io.ErrUnsupportedFormat)
	}

	if p.UseSMPTERange {
		c.offset = out.black()
	}
	if out == Depth16 {
		// computed at 10 bits, then moved to the top of the word
		c.shift = 6
	}
	if p.AlphaFromLuma {
		if in != Depth10 || out != Depth8 {
			return nil, fmt.Errorf("alpha from luma for %d to %d bit: %w", in, out, io.ErrUnsupportedFormat)
		}
		c.alphaLuma = true
	}
	return c, nil
}

func pick(p Profile, sd, hd, sdSMPTE, hdSMPTE matrix) matrix {
	switch {
	case p.UseSDMatrix && p.UseSMPTERange:
		return sdSMPTE
	case p.UseSDMatrix:
		return sd
	case p.UseSMPTERange:
		return hdSMPTE
	}
	return hd
}

// Pixel converts one Y, Cb, Cr sample.
func (c *Converter) Pixel(y, cb, cr uint16) RGBA {
	yy := c.m.y * (int32(y) - c.in.black())
	cbv := int32(cb) - c.in.chromaOffset()
	crv := int32(cr) - c.in.chromaOffset()

	p := RGBA{
		R: (FixedRound(yy+c.m.crR*crv) + c.offset) << c.shift,
		G: (FixedRound(yy-c.m.cbG*cbv-c.m.crG*crv) + c.offset) << c.shift,
		B: (FixedRound(yy+c.m.cbB*cbv) + c.offset) << c.shift,
		A: c.alphaValue,
	}
	if c.alphaLuma {
		p.A = int32(y) / 4
	}
	return p
}

// Line converts a canonical Cb Y Cr Y line into dst, one pair of pixels at
// a time, and returns the number of pixels written. The second pixel of a
// pair takes the average of its own chroma and the next pair's; the last
// pair of the line reuses its own chroma. With AlphaFromLuma both pixels of
// a pair take alpha from the first pixel's luma.
func (c *Converter) Line(dst []RGBA, src []uint16) int {
	pairs := min(len(src)/4, len(dst)/2)
	for i := 0; i < pairs; i++ {
		s := src[4*i : 4*i+4]
		cb, y0, cr, y1 := s[0], s[1], s[2], s[3]
		dst[2*i] = c.Pixel(y0, cb, cr)

		cb2, cr2 := cb, cr
		if i+1 < pairs {
			cb2 = uint16((uint32(cb) + uint32(src[4*i+4])) / 2)
			cr2 = uint16((uint32(cr) + uint32(src[4*i+6])) / 2)
		}
		dst[2*i+1] = c.Pixel(y1, cb2, cr2)
		if c.alphaLuma {
			dst[2*i+1].A = dst[2*i].A
		}
	}
	return pairs * 2
}
