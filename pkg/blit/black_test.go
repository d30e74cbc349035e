package blit

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
	"github.com/aja-video/libajantv2-sub001/pkg/pack"
	"github.com/aja-video/libajantv2-sub001/pkg/raster"
)

func TestSetLinesBlack(t *testing.T) {
	testCases := map[string]struct {
		format frame.PixelFormat
		width  int
	}{
		"8BitYCbCr":  {frame.Format8BitYCbCr, 16},
		"10BitYCbCr": {frame.Format10BitYCbCr, 12},
		"ARGB":       {frame.FormatARGB, 8},
		"10BitDPX":   {frame.Format10BitDPX, 8},
		"I420":       {frame.Format8BitYCbCr420PL3, 16},
		"NV16":       {frame.Format8BitYCbCr422PL2, 16},
		"10Bit420LE": {frame.Format10BitYCbCr420PL3LE, 16},
		"P010":       {frame.Format10BitYCbCr420PL2, 16},
	}

	for name, c := range testCases {
		c := c
		t.Run(name, func(t *testing.T) {
			d := raster.NewRasterDescriptor(c.width, 8, c.format)
			require.True(t, d.IsValid(), "%v", d.Err())
			buf := make([]byte, d.TotalBytes())
			for i := range buf {
				buf[i] = 0x5A
			}

			require.NoError(t, SetLinesBlack(d, buf, 2, 2))

			for p := 0; p < d.NumPlanes(); p++ {
				black, err := pack.BlackLine(c.format, p, d.RowBytes(p))
				require.NoError(t, err)
				for line := 0; line < 8; line++ {
					row := d.Row(buf, d.PlaneLine(line, p), p)
					if line >= 2 && line < 4 {
						assert.Equal(t, black, row, "plane %d line %d", p, line)
					} else if d.PlaneLine(line, p) != d.PlaneLine(2, p) && d.PlaneLine(line, p) != d.PlaneLine(3, p) {
						assert.NotEqual(t, black, row, "plane %d line %d", p, line)
					}
				}
			}
		})
	}
}

func TestSetLinesBlackValues(t *testing.T) {
	d := raster.NewRasterDescriptor(4, 2, frame.Format10BitYCbCr422PL3LE)
	require.True(t, d.IsValid(), "%v", d.Err())
	buf := make([]byte, d.TotalBytes())

	// count runs past the raster and is clipped
	require.NoError(t, SetLinesBlack(d, buf, 1, 10))

	assert.Equal(t, make([]byte, d.RowBytes(0)), d.Row(buf, 0, 0))
	assert.Equal(t, uint16(frame.Black10), binary.LittleEndian.Uint16(d.Row(buf, 1, 0)))
	assert.Equal(t, uint16(frame.ChromaOffset10), binary.LittleEndian.Uint16(d.Row(buf, 1, 1)))
	assert.Equal(t, uint16(frame.ChromaOffset10), binary.LittleEndian.Uint16(d.Row(buf, 1, 2)))
}

func TestSetLinesBlackErrors(t *testing.T) {
	d := raster.NewRasterDescriptor(16, 4, frame.Format8BitYCbCr)
	require.True(t, d.IsValid())

	testCases := map[string]struct {
		desc     raster.Descriptor
		buf      []byte
		first    int
		count    int
		expected error
	}{
		"ShortBuffer":   {d, make([]byte, 10), 0, 1, io.ErrBadBufferSize},
		"NilBuffer":     {d, nil, 0, 1, io.ErrNullBuffer},
		"FirstPastEnd":  {d, make([]byte, d.TotalBytes()), 4, 1, io.ErrBadGeometry},
		"NegativeCount": {d, make([]byte, d.TotalBytes()), 0, -1, io.ErrBadGeometry},
		"InvalidRaster": {raster.Descriptor{}, make([]byte, 64), 0, 1, io.ErrBadGeometry},
	}

	for name, c := range testCases {
		c := c
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, SetLinesBlack(c.desc, c.buf, c.first, c.count), c.expected)
		})
	}
}
