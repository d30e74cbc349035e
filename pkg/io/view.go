package io

import "encoding/binary"

// Words32 views a byte buffer as a run of 32-bit words in a fixed byte order.
// The length is validated once at construction, so At and Set never need to
// re-check against the caller's count.
type Words32 struct {
	buf   []byte
	order binary.ByteOrder
}

// NewWords32 returns a view over the first n words of buf.
func NewWords32(buf []byte, n int, order binary.ByteOrder) (Words32, error) {
	if err := CheckSize(buf, n*4); err != nil {
		return Words32{}, err
	}
	return Words32{buf: buf[: n*4 : n*4], order: order}, nil
}

// Len returns the number of words in the view.
func (w Words32) Len() int { return len(w.buf) / 4 }

// At returns word i.
func (w Words32) At(i int) uint32 { return w.order.Uint32(w.buf[i*4:]) }

// Set stores v as word i.
func (w Words32) Set(i int, v uint32) { w.order.PutUint32(w.buf[i*4:], v) }

// Words16 views a byte buffer as a run of 16-bit words in a fixed byte order.
type Words16 struct {
	buf   []byte
	order binary.ByteOrder
}

// NewWords16 returns a view over the first n words of buf.
func NewWords16(buf []byte, n int, order binary.ByteOrder) (Words16, error) {
	if err := CheckSize(buf, n*2); err != nil {
		return Words16{}, err
	}
	return Words16{buf: buf[: n*2 : n*2], order: order}, nil
}

// Len returns the number of words in the view.
func (w Words16) Len() int { return len(w.buf) / 2 }

// At returns word i.
func (w Words16) At(i int) uint16 { return w.order.Uint16(w.buf[i*2:]) }

// Set stores v as word i.
func (w Words16) Set(i int, v uint16) { w.order.PutUint16(w.buf[i*2:], v) }
