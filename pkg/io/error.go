package io

import (
	"errors"
	"fmt"
)

// Failure classes shared by every codec and raster operation. Callers match
// them with errors.Is; the returned errors usually wrap one of these with
// more context.
var (
	// ErrUnsupportedFormat means no geometry or algorithm is modeled for the
	// pixel format.
	ErrUnsupportedFormat = errors.New("unsupported pixel format")
	// ErrBadBufferSize means a buffer is smaller than required, or a pixel
	// count is below the format's minimum group size.
	ErrBadBufferSize = errors.New("bad buffer size")
	// ErrBadGeometry means zero rows or pitch, an offset outside the raster,
	// or a standard/format mismatch in a descriptor.
	ErrBadGeometry = errors.New("bad raster geometry")
	// ErrNullBuffer means a nil or empty buffer was passed.
	ErrNullBuffer = errors.New("null buffer")
)

// InsufficientBufferError tells the caller that the buffer provided is not sufficient/big
// enough to hold the whole data/sample.
type InsufficientBufferError struct {
	RequiredSize int
}

func (e *InsufficientBufferError) Error() string {
	return fmt.Sprintf("provided buffer doesn't meet the size requirement of length, %d", e.RequiredSize)
}

// Unwrap lets errors.Is(err, ErrBadBufferSize) match.
func (e *InsufficientBufferError) Unwrap() error {
	return ErrBadBufferSize
}

// CheckSize returns an *InsufficientBufferError when buf holds fewer than
// required bytes, and ErrNullBuffer when buf is empty.
func CheckSize(buf []byte, required int) error {
	if len(buf) == 0 {
		return ErrNullBuffer
	}
	if len(buf) < required {
		return &InsufficientBufferError{RequiredSize: required}
	}
	return nil
}
