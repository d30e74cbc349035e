package pack

import (
	"encoding/binary"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

// Every 10-bit RGB flavor stores one pixel per 32-bit word. Canonical
// components are R, G, B, plus a 2-bit A for 10BitRGB.
type wordLayout struct {
	order  binary.ByteOrder
	encode func(c []uint16) uint32
	decode func(w uint32, c []uint16)
}

func newWordCodec(f frame.PixelFormat, components int, l wordLayout) *codec {
	return &codec{
		format:     f,
		pixels:     1,
		components: components,
		bytes:      4,
		unpack: func(dst []uint16, src []byte, groups int) error {
			w, err := io.NewWords32(src, groups, l.order)
			if err != nil {
				return err
			}
			for i := 0; i < groups; i++ {
				l.decode(w.At(i), dst[i*components:i*components+components])
			}
			return nil
		},
		pack: func(dst []byte, src []uint16, groups int) error {
			w, err := io.NewWords32(dst, groups, l.order)
			if err != nil {
				return err
			}
			for i := 0; i < groups; i++ {
				w.Set(i, l.encode(src[i*components:i*components+components]))
			}
			return nil
		},
	}
}

// R at bit 0, G at 10, B at 20, two alpha bits at 30.
var rgb10Codec = newWordCodec(frame.Format10BitRGB, 4, wordLayout{
	order: binary.LittleEndian,
	encode: func(c []uint16) uint32 {
		return uint32(c[0]&mask10) | uint32(c[1]&mask10)<<10 | uint32(c[2]&mask10)<<20 | uint32(c[3]&3)<<30
	},
	decode: func(w uint32, c []uint16) {
		c[0] = uint16(w) & mask10
		c[1] = uint16(w>>10) & mask10
		c[2] = uint16(w>>20) & mask10
		c[3] = uint16(w >> 30)
	},
})

func dpxEncode(c []uint16) uint32 {
	return uint32(c[0]&mask10)<<22 | uint32(c[1]&mask10)<<12 | uint32(c[2]&mask10)<<2
}

func dpxDecode(w uint32, c []uint16) {
	c[0] = uint16(w>>22) & mask10
	c[1] = uint16(w>>12) & mask10
	c[2] = uint16(w>>2) & mask10
}

var dpxCodec = newWordCodec(frame.Format10BitDPX, 3, wordLayout{
	order:  binary.BigEndian,
	encode: dpxEncode,
	decode: dpxDecode,
})

var dpxLECodec = newWordCodec(frame.Format10BitDPXLE, 3, wordLayout{
	order:  binary.LittleEndian,
	encode: dpxEncode,
	decode: dpxDecode,
})

// High 8 bits of R, G, B in bytes 2, 1, 0; the low 2 bits of each sit
// together in the top byte (R at 28, G at 26, B at 24).
var rgbPackedCodec = newWordCodec(frame.Format10BitRGBPacked, 3, wordLayout{
	order: binary.LittleEndian,
	encode: func(c []uint16) uint32 {
		r, g, b := uint32(c[0]&mask10), uint32(c[1]&mask10), uint32(c[2]&mask10)
		return (r>>2)<<16 | (g>>2)<<8 | b>>2 | (r&3)<<28 | (g&3)<<26 | (b&3)<<24
	},
	decode: func(w uint32, c []uint16) {
		c[0] = uint16((w>>16)&0xFF)<<2 | uint16(w>>28)&3
		c[1] = uint16((w>>8)&0xFF)<<2 | uint16(w>>26)&3
		c[2] = uint16(w&0xFF)<<2 | uint16(w>>24)&3
	},
})
