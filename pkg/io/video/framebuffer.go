package video

import (
	"github.com/aja-video/libajantv2-sub001/pkg/raster"
)

// FrameBuffer holds a private copy of a frame.
type FrameBuffer struct {
	buffer []uint8
	tmp    Frame
}

// NewFrameBuffer creates a new FrameBuffer instance and initialize internal buffer
// with initialSize
func NewFrameBuffer(initialSize int) *FrameBuffer {
	return &FrameBuffer{
		buffer: make([]uint8, initialSize),
	}
}

func (buff *FrameBuffer) store(src []uint8) []uint8 {
	if len(buff.buffer) < len(src) {
		if cap(buff.buffer) >= len(src) {
			buff.buffer = buff.buffer[:len(src)]
		} else {
			buff.buffer = make([]uint8, len(src))
		}
	}

	n := copy(buff.buffer, src)
	return buff.buffer[:n:n]
}

// Load loads the current owned frame, or nil before the first StoreCopy.
func (buff *FrameBuffer) Load() *Frame {
	if !buff.tmp.Desc.IsValid() {
		return nil
	}
	return &buff.tmp
}

// StoreCopy copies the bytes src.Desc lays out and keeps the copy. Memory
// from earlier copies is reused, so storing a frame of the same geometry
// does not allocate.
func (buff *FrameBuffer) StoreCopy(src *Frame) error {
	if err := src.Desc.CheckBuffer(src.Data); err != nil {
		return err
	}

	buff.tmp = Frame{
		Desc: src.Desc,
		Data: buff.store(src.Data[:src.Desc.TotalBytes()]),
	}
	return nil
}

// Alloc returns a zeroed frame laid out by desc, backed by the buffer's
// memory. The frame stays valid until the next Alloc or StoreCopy.
func (buff *FrameBuffer) Alloc(desc raster.Descriptor) (*Frame, error) {
	if !desc.IsValid() {
		return nil, desc.Err()
	}

	n := desc.TotalBytes()
	if cap(buff.buffer) < n {
		buff.buffer = make([]uint8, n)
	}
	buff.buffer = buff.buffer[:n]
	clear(buff.buffer)

	buff.tmp = Frame{Desc: desc, Data: buff.buffer[:n:n]}
	return &buff.tmp, nil
}
