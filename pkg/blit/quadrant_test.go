package blit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

const (
	rasterLines = 8
	rasterPitch = 16
)

// quadFrame fills each quadrant of an 8x16 byte raster with its index. The
// right hand quadrants are written last, so with a nonzero offset they win
// the bytes they spill into the next row.
func quadFrame(offset int) []byte {
	buf := make([]byte, rasterPitch*rasterLines+offset)
	for i := range buf {
		buf[i] = 0xFF
	}
	for _, right := range []bool{false, true} {
		for row := 0; row < rasterLines; row++ {
			for x := 0; x < rasterPitch/2; x++ {
				q, pos := 0, row*rasterPitch+x
				if right {
					q, pos = 1, pos+rasterPitch/2+offset
				}
				if row >= rasterLines/2 {
					q += 2
				}
				buf[pos] = byte(q)
			}
		}
	}
	return buf
}

func TestCopyFromQuadrant(t *testing.T) {
	for _, offset := range []int{0, 2} {
		src := quadFrame(offset)
		quadrants := Quadrants[:]
		if offset > 0 {
			quadrants = []Quadrant{TopRight, BottomRight}
		}
		for _, q := range quadrants {
			dst := make([]byte, rasterPitch/2*rasterLines/2)
			require.NoError(t, CopyFromQuadrant(dst, src, rasterLines, rasterPitch, q, offset))
			for i, b := range dst {
				if b != byte(q) {
					t.Fatalf("quadrant %d offset %d: byte %d is %d", q, offset, i, b)
				}
			}
		}
	}
}

func TestCopyToQuadrantRoundTrip(t *testing.T) {
	for _, offset := range []int{0, 2} {
		want := quadFrame(offset)
		got := make([]byte, len(want))
		for i := range got {
			got[i] = 0xFF
		}
		for _, q := range Quadrants {
			quad := make([]byte, rasterPitch/2*rasterLines/2)
			require.NoError(t, CopyFromQuadrant(quad, want, rasterLines, rasterPitch, q, offset))
			require.NoError(t, CopyToQuadrant(got, quad, rasterLines, rasterPitch, q, offset))
		}
		assert.Equal(t, want, got, "offset %d", offset)
	}
}

func TestSplitMergeQuadrants(t *testing.T) {
	src := quadFrame(0)
	stacked := make([]byte, len(src))
	require.NoError(t, SplitQuadrants(stacked, src, rasterLines, rasterPitch))

	size := len(src) / 4
	for i := range stacked {
		assert.Equal(t, byte(i/size), stacked[i])
	}

	merged := make([]byte, len(src))
	require.NoError(t, MergeQuadrants(merged, stacked, rasterLines, rasterPitch))
	assert.Equal(t, src, merged)
}

func TestQuadrantErrors(t *testing.T) {
	full := make([]byte, rasterPitch*rasterLines)
	quad := make([]byte, rasterPitch*rasterLines/4)

	testCases := map[string]struct {
		err      error
		expected error
	}{
		"BadQuadrant": {
			err:      CopyFromQuadrant(quad, full, rasterLines, rasterPitch, Quadrant(4), 0),
			expected: io.ErrBadGeometry,
		},
		"OffsetOverrunsSource": {
			err:      CopyFromQuadrant(quad, full, rasterLines, rasterPitch, BottomRight, 2),
			expected: io.ErrBadBufferSize,
		},
		"OffsetOverrunsDestination": {
			err:      CopyToQuadrant(full, quad, rasterLines, rasterPitch, BottomRight, 2),
			expected: io.ErrBadBufferSize,
		},
		"NegativeOffset": {
			err:      CopyToQuadrant(full, quad, rasterLines, rasterPitch, TopLeft, -1),
			expected: io.ErrBadGeometry,
		},
		"ShortQuadrant": {
			err:      CopyFromQuadrant(quad[:10], full, rasterLines, rasterPitch, TopLeft, 0),
			expected: io.ErrBadBufferSize,
		},
		"NilQuadrant": {
			err:      CopyToQuadrant(full, nil, rasterLines, rasterPitch, TopLeft, 0),
			expected: io.ErrNullBuffer,
		},
		"SameBuffer": {
			err:      CopyFromQuadrant(full, full, rasterLines, rasterPitch, BottomLeft, 0),
			expected: io.ErrBadGeometry,
		},
		"ZeroLines": {
			err:      CopyFromQuadrant(quad, full, 0, rasterPitch, TopLeft, 0),
			expected: io.ErrBadGeometry,
		},
		"ShortStack": {
			err:      SplitQuadrants(quad, full, rasterLines, rasterPitch),
			expected: io.ErrBadBufferSize,
		},
	}

	for name, c := range testCases {
		c := c
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, c.err, c.expected)
		})
	}
}
