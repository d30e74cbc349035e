package pack

import (
	"encoding/binary"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

// newWords16Codec handles one little endian 16-bit word per component.
// order[c] is the word position, within a pixel, of canonical component c.
func newWords16Codec(f frame.PixelFormat, order []int) *codec {
	n := len(order)
	return &codec{
		format:     f,
		pixels:     1,
		components: n,
		bytes:      2 * n,
		unpack: func(dst []uint16, src []byte, groups int) error {
			w, err := io.NewWords16(src, groups*n, binary.LittleEndian)
			if err != nil {
				return err
			}
			for g := 0; g < groups; g++ {
				for c, pos := range order {
					dst[g*n+c] = w.At(g*n + pos)
				}
			}
			return nil
		},
		pack: func(dst []byte, src []uint16, groups int) error {
			w, err := io.NewWords16(dst, groups*n, binary.LittleEndian)
			if err != nil {
				return err
			}
			for g := 0; g < groups; g++ {
				for c, pos := range order {
					w.Set(g*n+pos, src[g*n+c])
				}
			}
			return nil
		},
	}
}

// 12BitRGBPacked: two pixels (R0 G0 B0 R1 G1 B1) as a big endian stream of
// six 12-bit samples in nine bytes.
var rgb12Codec = &codec{
	format:     frame.Format12BitRGBPacked,
	pixels:     2,
	components: 6,
	bytes:      9,
	unpack: func(dst []uint16, src []byte, groups int) error {
		for g := 0; g < groups; g++ {
			b := src[g*9 : g*9+9]
			c := dst[g*6 : g*6+6]
			for i := 0; i < 3; i++ {
				p := b[3*i : 3*i+3]
				c[2*i] = uint16(p[0])<<4 | uint16(p[1])>>4
				c[2*i+1] = uint16(p[1]&0xF)<<8 | uint16(p[2])
			}
		}
		return nil
	},
	pack: func(dst []byte, src []uint16, groups int) error {
		for g := 0; g < groups; g++ {
			b := dst[g*9 : g*9+9]
			c := src[g*6 : g*6+6]
			for i := 0; i < 3; i++ {
				hi, lo := c[2*i]&frame.Max12, c[2*i+1]&frame.Max12
				b[3*i] = byte(hi >> 4)
				b[3*i+1] = byte(hi&0xF)<<4 | byte(lo>>8)
				b[3*i+2] = byte(lo)
			}
		}
		return nil
	},
}
