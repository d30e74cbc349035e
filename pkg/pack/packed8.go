package pack

import "github.com/aja-video/libajantv2-sub001/pkg/frame"

// newBytesCodec handles formats storing one component per byte. order[c] is
// the byte position, within a group, of canonical component c.
func newBytesCodec(f frame.PixelFormat, groupPixels int, order []int) *codec {
	n := len(order)
	return &codec{
		format:     f,
		pixels:     groupPixels,
		components: n,
		bytes:      n,
		unpack: func(dst []uint16, src []byte, groups int) error {
			for g := 0; g < groups; g++ {
				in := src[g*n : g*n+n]
				out := dst[g*n : g*n+n]
				for c, pos := range order {
					out[c] = uint16(in[pos])
				}
			}
			return nil
		},
		pack: func(dst []byte, src []uint16, groups int) error {
			for g := 0; g < groups; g++ {
				in := src[g*n : g*n+n]
				out := dst[g*n : g*n+n]
				for c, pos := range order {
					out[pos] = byte(in[c])
				}
			}
			return nil
		},
	}
}
