package colorspace

import (
	"fmt"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

// 16.16 RGB to YCbCr weights, rows Y, Cb, Cr, columns R, G, B.
type weights [3][3]int32

var (
	sdToYCbCr = weights{
		{0x41BC, 0x810F, 0x1910},
		{-0x25F1, -0x4A7E, 0x7070},
		{0x7070, -0x5E27, -0x1249},
	}
	hdToYCbCr = weights{
		{0x2E8A, 0x9C9F, 0x0FD2},
		{-0x18F4, -0x545B, 0x6DA9},
		{0x6D71, -0x6305, -0x0A06},
	}
)

// ToYCbCr422 converts 8-bit RGB pixels to a canonical Cb Y Cr Y line of
// depth out (8 or 10 bit) and returns the number of components written.
// Even pixels contribute Cb, Y and Cr; odd pixels contribute only Y.
func ToYCbCr422(dst []uint16, src []RGBA, sd bool, out Depth) (int, error) {
	if out != Depth8 && out != Depth10 {
		return 0, fmt.Errorf("YCbCr output depth %d: %w", out, io.ErrUnsupportedFormat)
	}
	if need := len(src)*2 + len(src)%2; len(dst) < need {
		return 0, fmt.Errorf("line holds %d of %d components: %w", len(dst), need, io.ErrBadBufferSize)
	}
	w := hdToYCbCr
	if sd {
		w = sdToYCbCr
	}

	n := 0
	for i, p := range src {
		y, cb, cr := w.apply(p, out)
		if i&1 == 1 {
			dst[n] = y
			n++
			continue
		}
		dst[n], dst[n+1], dst[n+2] = cb, y, cr
		n += 3
	}
	return n, nil
}

func (w weights) apply(p RGBA, out Depth) (y, cb, cr uint16) {
	sum := func(row int) int32 {
		return w[row][0]*p.R + w[row][1]*p.G + w[row][2]*p.B
	}
	if out == Depth8 {
		return uint16(uint8(frame.Black8 + FixedRound(sum(0)))),
			uint16(uint8(frame.ChromaOffset8 + FixedRound(sum(1)))),
			uint16(uint8(frame.ChromaOffset8 + FixedRound(sum(2))))
	}
	return uint16(frame.Black10 + sum(0)>>14),
		uint16(frame.ChromaOffset10+sum(1)>>14) & frame.Max10,
		uint16(frame.ChromaOffset10+sum(2)>>14) & frame.Max10
}
