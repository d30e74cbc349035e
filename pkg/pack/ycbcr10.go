package pack

import (
	"encoding/binary"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

const mask10 = 0x3FF

// v210: 6 pixels, 12 components, four little endian words. Each word holds
// three components at bits 0, 10 and 20.
var v210Codec = &codec{
	format:     frame.Format10BitYCbCr,
	pixels:     6,
	components: 12,
	bytes:      16,
	unpack: func(dst []uint16, src []byte, groups int) error {
		return unpackTriplets(dst, src, groups*4, binary.LittleEndian, [3]uint{0, 10, 20})
	},
	pack: func(dst []byte, src []uint16, groups int) error {
		return packTriplets(dst, src, groups*4, binary.LittleEndian, [3]uint{0, 10, 20})
	},
}

// DPX flavored 4:2:2: same grouping, big endian words, components at bits
// 22, 12 and 2.
var ycbcrDPXCodec = &codec{
	format:     frame.Format10BitYCbCrDPX,
	pixels:     6,
	components: 12,
	bytes:      16,
	unpack: func(dst []uint16, src []byte, groups int) error {
		return unpackTriplets(dst, src, groups*4, binary.BigEndian, [3]uint{22, 12, 2})
	},
	pack: func(dst []byte, src []uint16, groups int) error {
		return packTriplets(dst, src, groups*4, binary.BigEndian, [3]uint{22, 12, 2})
	},
}

func unpackTriplets(dst []uint16, src []byte, words int, order binary.ByteOrder, shifts [3]uint) error {
	w, err := io.NewWords32(src, words, order)
	if err != nil {
		return err
	}
	out := dst[: words*3 : words*3]
	for i := 0; i < words; i++ {
		word := w.At(i)
		out[3*i] = uint16(word>>shifts[0]) & mask10
		out[3*i+1] = uint16(word>>shifts[1]) & mask10
		out[3*i+2] = uint16(word>>shifts[2]) & mask10
	}
	return nil
}

func packTriplets(dst []byte, src []uint16, words int, order binary.ByteOrder, shifts [3]uint) error {
	w, err := io.NewWords32(dst, words, order)
	if err != nil {
		return err
	}
	in := src[: words*3 : words*3]
	for i := 0; i < words; i++ {
		w.Set(i, uint32(in[3*i]&mask10)<<shifts[0]|
			uint32(in[3*i+1]&mask10)<<shifts[1]|
			uint32(in[3*i+2]&mask10)<<shifts[2])
	}
	return nil
}

// The 2-plane 10-bit formats pack 16 samples into 20 bytes as a little
// endian bit stream: sample i occupies bits 10*i to 10*i+9. The same codec
// serves the luma plane and the interleaved CbCr plane.
func newPL2Codec(f frame.PixelFormat) *codec {
	return &codec{
		format:     f,
		pixels:     16,
		components: 16,
		bytes:      20,
		unpack: func(dst []uint16, src []byte, groups int) error {
			for g := 0; g < groups; g++ {
				in := src[g*20 : g*20+20]
				out := dst[g*16 : g*16+16]
				for i := range out {
					bit := 10 * i
					v := uint16(in[bit/8]) | uint16(in[bit/8+1])<<8
					out[i] = (v >> (bit % 8)) & mask10
				}
			}
			return nil
		},
		pack: func(dst []byte, src []uint16, groups int) error {
			for g := 0; g < groups; g++ {
				out := dst[g*20 : g*20+20]
				in := src[g*16 : g*16+16]
				for i := range out {
					out[i] = 0
				}
				for i, s := range in {
					bit := 10 * i
					v := uint16(s&mask10) << (bit % 8)
					out[bit/8] |= byte(v)
					out[bit/8+1] |= byte(v >> 8)
				}
			}
			return nil
		},
	}
}
