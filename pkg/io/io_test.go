package io

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopy(t *testing.T) {
	var dst []byte
	src := make([]byte, 4)

	n, err := Copy(dst, src)
	require.Error(t, err)
	assert.Equal(t, 0, n)

	var e *InsufficientBufferError
	require.True(t, errors.As(err, &e), "expected error to be InsufficientBufferError")
	assert.Equal(t, len(src), e.RequiredSize)
	assert.ErrorIs(t, err, ErrBadBufferSize)

	dst = make([]byte, 2*e.RequiredSize)
	n, err = Copy(dst, src)
	require.NoError(t, err)
	assert.Equal(t, len(src), n)
	assert.Equal(t, src, dst[:len(src)])
}

func TestCheckSize(t *testing.T) {
	testCases := map[string]struct {
		buf      []byte
		required int
		expected error
	}{
		"Nil": {
			buf:      nil,
			required: 0,
			expected: ErrNullBuffer,
		},
		"Short": {
			buf:      make([]byte, 3),
			required: 4,
			expected: ErrBadBufferSize,
		},
		"Exact": {
			buf:      make([]byte, 4),
			required: 4,
		},
	}

	for name, c := range testCases {
		c := c
		t.Run(name, func(t *testing.T) {
			err := CheckSize(c.buf, c.required)
			if c.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.expected)
		})
	}
}

func TestCopyRows(t *testing.T) {
	src := []byte{
		1, 2, 3, 0,
		4, 5, 6, 0,
	}
	dst := make([]byte, 6)

	require.Equal(t, 7, Extent(0, 4, 2, 3))
	CopyRows(dst, 3, src, 4, 2, 3)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, dst)
}

func TestWords32(t *testing.T) {
	buf := make([]byte, 8)

	_, err := NewWords32(buf, 3, binary.LittleEndian)
	assert.ErrorIs(t, err, ErrBadBufferSize)

	le, err := NewWords32(buf, 2, binary.LittleEndian)
	require.NoError(t, err)
	le.Set(1, 0x11223344)
	assert.Equal(t, []byte{0, 0, 0, 0, 0x44, 0x33, 0x22, 0x11}, buf)
	assert.Equal(t, 2, le.Len())

	be, err := NewWords32(buf, 2, binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x44332211), be.At(1))
}

func TestWords16(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04}

	w, err := NewWords16(buf, 2, binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0201), w.At(0))
	w.Set(1, 0xBEEF)
	assert.Equal(t, []byte{0x01, 0x02, 0xEF, 0xBE}, buf)
}
