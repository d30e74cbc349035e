package pack

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

// significant bits of canonical component i for f
func componentBits(f frame.PixelFormat, i int) uint {
	switch f {
	case frame.Format8BitYCbCr, frame.Format8BitYCbCrYUY2, frame.FormatARGB,
		frame.FormatRGBA, frame.FormatABGR, frame.Format24BitRGB, frame.Format24BitBGR:
		return 8
	case frame.Format10BitRGB:
		if i%4 == 3 {
			return 2
		}
		return 10
	case frame.Format48BitRGB, frame.Format16BitARGB:
		return 16
	case frame.Format12BitRGBPacked:
		return 12
	}
	return 10
}

func codecFormats() []frame.PixelFormat {
	var formats []frame.PixelFormat
	for _, f := range frame.PixelFormats() {
		if _, err := ForFormat(f); err == nil {
			formats = append(formats, f)
		}
	}
	return formats
}

func TestForFormat(t *testing.T) {
	for _, f := range codecFormats() {
		c, err := ForFormat(f)
		require.NoError(t, err)
		assert.Equal(t, f, c.Format())

		// a group covers whole elements of the catalog geometry
		g := frame.ElementGeometry(f)
		require.False(t, g.IsZero(), "%s", f)
		assert.Equal(t, g.BytesPerElement*c.GroupPixels(), c.GroupBytes()*g.RasterPixelsPerElement, "%s", f)
	}

	for _, f := range []frame.PixelFormat{frame.FormatProResHDV, frame.Format10BitYCbCrA, frame.Format8BitYCbCr420PL3, frame.PixelFormat(40)} {
		_, err := ForFormat(f)
		assert.ErrorIs(t, err, io.ErrUnsupportedFormat, "%s", f)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range codecFormats() {
		f := f
		t.Run(f.String(), func(t *testing.T) {
			c, err := ForFormat(f)
			require.NoError(t, err)

			groups := 5
			pixels := groups * c.GroupPixels()
			src := make([]uint16, groups*c.GroupComponents())
			for i := range src {
				src[i] = uint16(i*2654435761>>7) & (1<<componentBits(f, i) - 1)
			}

			packed := make([]byte, groups*c.GroupBytes())
			n, err := c.Pack(packed, src, pixels)
			require.NoError(t, err)
			assert.Equal(t, len(packed), n)

			unpacked := make([]uint16, len(src))
			n, err = c.Unpack(unpacked, packed, pixels)
			require.NoError(t, err)
			assert.Equal(t, len(src), n)
			assert.Equal(t, src, unpacked)

			repacked := make([]byte, len(packed))
			_, err = c.Pack(repacked, unpacked, pixels)
			require.NoError(t, err)
			assert.Equal(t, packed, repacked)
		})
	}
}

var v210Scenario = []uint16{512, 64, 512, 64, 512, 940, 512, 940, 512, 64, 512, 64}

func TestV210Scenario(t *testing.T) {
	words := []uint32{0x20010200, 0x3AC80040, 0x200EB200, 0x04080040}
	raw := make([]byte, 16)
	for i, w := range words {
		binary.LittleEndian.PutUint32(raw[i*4:], w)
	}

	c, err := ForFormat(frame.Format10BitYCbCr)
	require.NoError(t, err)

	line := make([]uint16, 12)
	n, err := c.Unpack(line, raw, 6)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Equal(t, v210Scenario, line)

	out := make([]byte, 16)
	_, err = c.Pack(out, v210Scenario, 6)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestYCbCrDPXIsBigEndian(t *testing.T) {
	c, err := ForFormat(frame.Format10BitYCbCrDPX)
	require.NoError(t, err)

	out := make([]byte, 16)
	_, err = c.Pack(out, v210Scenario, 6)
	require.NoError(t, err)
	assert.Equal(t, uint32(512)<<22|64<<12|512<<2, binary.BigEndian.Uint32(out))
}

func TestByteOrders(t *testing.T) {
	testCases := map[string]struct {
		format    frame.PixelFormat
		packed    []byte
		canonical []uint16
	}{
		"UYVY":  {frame.Format8BitYCbCr, []byte{1, 2, 3, 4}, []uint16{1, 2, 3, 4}},
		"YUY2":  {frame.Format8BitYCbCrYUY2, []byte{2, 1, 4, 3}, []uint16{1, 2, 3, 4}},
		"ARGB":  {frame.FormatARGB, []byte{3, 2, 1, 4}, []uint16{1, 2, 3, 4}},
		"RGBA":  {frame.FormatRGBA, []byte{4, 1, 2, 3}, []uint16{1, 2, 3, 4}},
		"ABGR":  {frame.FormatABGR, []byte{1, 2, 3, 4}, []uint16{1, 2, 3, 4}},
		"BGR24": {frame.Format24BitBGR, []byte{3, 2, 1}, []uint16{1, 2, 3}},
		"48Bit": {frame.Format48BitRGB, []byte{1, 0, 2, 0, 3, 0}, []uint16{1, 2, 3}},
		"16BitARGB": {
			frame.Format16BitARGB,
			[]byte{3, 0, 2, 0, 1, 0, 0xFF, 0xFF},
			[]uint16{1, 2, 3, 0xFFFF},
		},
		"10BitRGB": {
			frame.Format10BitRGB,
			[]byte{0xFF, 0x03, 0x00, 0xC0},
			[]uint16{0x3FF, 0, 0, 3},
		},
		"DPX": {
			frame.Format10BitDPX,
			[]byte{0xFF, 0xC0, 0x00, 0x00},
			[]uint16{0x3FF, 0, 0},
		},
		"DPXLE": {
			frame.Format10BitDPXLE,
			[]byte{0x00, 0x00, 0xC0, 0xFF},
			[]uint16{0x3FF, 0, 0},
		},
		"RGBPacked": {
			frame.Format10BitRGBPacked,
			[]byte{0x00, 0x00, 0xFF, 0x30},
			[]uint16{0x3FF, 0, 0},
		},
		"12Bit": {
			frame.Format12BitRGBPacked,
			[]byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0, 0x12},
			[]uint16{0x123, 0x456, 0x789, 0xABC, 0xDEF, 0x012},
		},
	}

	for name, c := range testCases {
		c := c
		t.Run(name, func(t *testing.T) {
			codec, err := ForFormat(c.format)
			require.NoError(t, err)

			line := make([]uint16, len(c.canonical))
			_, err = codec.Unpack(line, c.packed, codec.GroupPixels())
			require.NoError(t, err)
			assert.Equal(t, c.canonical, line)

			out := make([]byte, len(c.packed))
			_, err = codec.Pack(out, c.canonical, codec.GroupPixels())
			require.NoError(t, err)
			assert.Equal(t, c.packed, out)
		})
	}
}

func TestPL2BitStream(t *testing.T) {
	c, err := ForFormat(frame.Format10BitYCbCr420PL2)
	require.NoError(t, err)

	src := make([]uint16, 16)
	src[0] = 0x3FF
	src[1] = 0x001
	out := make([]byte, 20)
	_, err = c.Pack(out, src, 16)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0x07, 0x00}, out[:3])
}

func TestTruncation(t *testing.T) {
	c, err := ForFormat(frame.Format10BitYCbCr)
	require.NoError(t, err)

	out := make([]byte, 32)
	for i := range out {
		out[i] = 0xEE
	}
	src := make([]uint16, 24)
	n, err := c.Pack(out, src, 11)
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	for _, b := range out[16:] {
		assert.Equal(t, byte(0xEE), b)
	}

	line := make([]uint16, 24)
	n, err = c.Unpack(line, out, 11)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestCodecErrors(t *testing.T) {
	c, err := ForFormat(frame.Format10BitYCbCr)
	require.NoError(t, err)

	testCases := map[string]struct {
		run      func() error
		expected []error
	}{
		"NilSource": {
			run: func() error {
				_, err := c.Unpack(make([]uint16, 12), nil, 6)
				return err
			},
			expected: []error{io.ErrBadBufferSize, io.ErrNullBuffer},
		},
		"NilDestination": {
			run: func() error {
				_, err := c.Pack(nil, make([]uint16, 12), 6)
				return err
			},
			expected: []error{io.ErrBadBufferSize, io.ErrNullBuffer},
		},
		"BelowGroup": {
			run: func() error {
				_, err := c.Unpack(make([]uint16, 12), make([]byte, 16), 5)
				return err
			},
			expected: []error{io.ErrBadBufferSize},
		},
		"ShortSource": {
			run: func() error {
				_, err := c.Unpack(make([]uint16, 24), make([]byte, 20), 12)
				return err
			},
			expected: []error{io.ErrBadBufferSize},
		},
		"ShortLine": {
			run: func() error {
				_, err := c.Pack(make([]byte, 32), make([]uint16, 20), 12)
				return err
			},
			expected: []error{io.ErrBadBufferSize},
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			err := tc.run()
			for _, e := range tc.expected {
				assert.ErrorIs(t, err, e)
			}
		})
	}
}

func BenchmarkV210Unpack(b *testing.B) {
	c, _ := ForFormat(frame.Format10BitYCbCr)
	src := make([]byte, frame.RowBytes(frame.Format10BitYCbCr, 1920))
	dst := make([]uint16, 1920*2)
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		_, _ = c.Unpack(dst, src, 1920)
	}
}
