package pack

import (
	"encoding/binary"
	"fmt"

	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

// Convert2vuyToV210 widens pixels pixels of 8-bit Cb Y Cr Y into v210 and
// returns the number of bytes written. Each 8-bit sample lands in the high
// bits of its 10-bit slot. Pixels past the last whole 6-pixel group are
// dropped.
func Convert2vuyToV210(dst, src []byte, pixels int) (int, error) {
	groups, err := v210Groups(pixels)
	if err != nil {
		return 0, err
	}
	if err := io.CheckSize(src, groups*12); err != nil {
		return 0, err
	}
	w, err := io.NewWords32(dst, groups*4, binary.LittleEndian)
	if err != nil {
		return 0, err
	}
	for i := 0; i < w.Len(); i++ {
		b := src[3*i : 3*i+3]
		w.Set(i, uint32(b[0])<<2|uint32(b[1])<<12|uint32(b[2])<<22)
	}
	return groups * 16, nil
}

// ConvertV210To2vuy narrows pixels pixels of v210 to 8-bit Cb Y Cr Y by
// keeping the high 8 bits of every sample, and returns the number of bytes
// written.
func ConvertV210To2vuy(dst, src []byte, pixels int) (int, error) {
	groups, err := v210Groups(pixels)
	if err != nil {
		return 0, err
	}
	w, err := io.NewWords32(src, groups*4, binary.LittleEndian)
	if err != nil {
		return 0, err
	}
	if err := io.CheckSize(dst, groups*12); err != nil {
		return 0, err
	}
	for i := 0; i < w.Len(); i++ {
		word := w.At(i)
		dst[3*i] = byte(word >> 2)
		dst[3*i+1] = byte(word >> 12)
		dst[3*i+2] = byte(word >> 22)
	}
	return groups * 12, nil
}

func v210Groups(pixels int) (int, error) {
	if pixels < 6 {
		return 0, fmt.Errorf("%d pixels is below one v210 group: %w", pixels, io.ErrBadBufferSize)
	}
	return pixels / 6, nil
}
