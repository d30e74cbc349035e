package colorspace

import (
	"encoding/binary"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

// RGB8To10 widens 8-bit pixels, alpha included, to 10 bits.
func RGB8To10(dst, src []RGBA) int {
	n := min(len(dst), len(src))
	for i, p := range src[:n] {
		dst[i] = RGBA{R: p.R << 2, G: p.G << 2, B: p.B << 2, A: p.A << 2}
	}
	return n
}

// YCbCr10To8 keeps the high 8 bits of every component of a 10-bit line.
func YCbCr10To8(dst []byte, src []uint16) int {
	n := min(len(dst), len(src))
	for i, v := range src[:n] {
		dst[i] = byte(v >> 2)
	}
	return n
}

// YCbCr10ToYCbCrA packs each chroma/luma pair of a 10-bit line into a
// 10BitYCbCrA word with opaque alpha in the top field.
func YCbCr10ToYCbCrA(dst []uint32, src []uint16) int {
	n := min(len(dst), len(src)/2)
	for i := 0; i < n; i++ {
		dst[i] = uint32(frame.White10)<<20 | uint32(src[2*i]&frame.Max10)<<10 | uint32(src[2*i+1]&frame.Max10)
	}
	return n
}

// UYVYToYUY2 swaps an 8-bit Cb Y Cr Y line to Y Cb Y Cr in place.
func UYVYToYUY2(buf []byte, pixels int) error {
	if err := io.CheckSize(buf, pixels*2); err != nil {
		return err
	}
	for i := 0; i+3 < pixels*2; i += 4 {
		buf[i], buf[i+1], buf[i+2], buf[i+3] = buf[i+1], buf[i], buf[i+3], buf[i+2]
	}
	return nil
}

// ARGB frame buffers store B, G, R, A.

// ARGBToRGBA reorders an ARGB line to RGBA (A, R, G, B) in place.
func ARGBToRGBA(buf []byte, pixels int) error {
	return reorder4(buf, pixels, [4]int{3, 2, 1, 0})
}

// ARGBToABGR reorders an ARGB line to ABGR (R, G, B, A) in place.
func ARGBToABGR(buf []byte, pixels int) error {
	return reorder4(buf, pixels, [4]int{2, 1, 0, 3})
}

// reorder4 sets byte i of every pixel to the old byte from[i].
func reorder4(buf []byte, pixels int, from [4]int) error {
	if err := io.CheckSize(buf, pixels*4); err != nil {
		return err
	}
	for i := 0; i < pixels*4; i += 4 {
		p := [4]byte{buf[i], buf[i+1], buf[i+2], buf[i+3]}
		for j, k := range from {
			buf[i+j] = p[k]
		}
	}
	return nil
}

// ARGBToRGB drops alpha from an ARGB line, writing 24BitRGB.
func ARGBToRGB(dst, src []byte, pixels int) error {
	return dropAlpha(dst, src, pixels, [3]int{2, 1, 0})
}

// ARGBToBGR drops alpha from an ARGB line, writing 24BitBGR.
func ARGBToBGR(dst, src []byte, pixels int) error {
	return dropAlpha(dst, src, pixels, [3]int{0, 1, 2})
}

func dropAlpha(dst, src []byte, pixels int, from [3]int) error {
	if err := io.CheckSize(src, pixels*4); err != nil {
		return err
	}
	if err := io.CheckSize(dst, pixels*3); err != nil {
		return err
	}
	for i := 0; i < pixels; i++ {
		s := src[4*i : 4*i+4]
		d := dst[3*i : 3*i+3]
		d[0], d[1], d[2] = s[from[0]], s[from[1]], s[from[2]]
	}
	return nil
}

// ARGB16ToRGB48 drops alpha from a 16BitARGB line, writing 48BitRGB.
func ARGB16ToRGB48(dst, src []byte, pixels int) error {
	in, err := io.NewWords16(src, pixels*4, binary.LittleEndian)
	if err != nil {
		return err
	}
	out, err := io.NewWords16(dst, pixels*3, binary.LittleEndian)
	if err != nil {
		return err
	}
	for i := 0; i < pixels; i++ {
		out.Set(3*i, in.At(4*i+2))
		out.Set(3*i+1, in.At(4*i+1))
		out.Set(3*i+2, in.At(4*i))
	}
	return nil
}
