package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/io"
	"github.com/aja-video/libajantv2-sub001/pkg/raster"
)

func fill(buf []byte, seed int) {
	for i := range buf {
		buf[i] = byte((i+seed)*131 + i>>3)
	}
}

func read(t *testing.T, buf []byte, d raster.Descriptor) View {
	t.Helper()
	r := NewReader(buf, d)
	require.NoError(t, r.Read())
	return r.View()
}

func TestReflexiveEquality(t *testing.T) {
	for _, f := range frame.PixelFormats() {
		if !frame.IsModeled(f) {
			continue
		}
		f := f
		t.Run(f.String(), func(t *testing.T) {
			d := raster.NewRasterDescriptor(48, 4, f)
			require.True(t, d.IsValid(), "%v", d.Err())
			buf := make([]byte, d.TotalBytes())
			fill(buf, int(f))

			a := read(t, buf, d)
			assert.NotZero(t, a.Len())
			assert.Equal(t, f, a.Format())
			assert.Equal(t, Equal, a.Compare(a))

			// a second read of a copy agrees
			b := read(t, append([]byte(nil), buf...), d)
			assert.True(t, a.Equal(b))
			assert.Equal(t, -1, a.FirstDifference(b))
		})
	}
}

func TestRGB10AlphaIgnored(t *testing.T) {
	d := raster.NewRasterDescriptor(4, 2, frame.Format10BitRGB)
	require.True(t, d.IsValid())

	a := make([]byte, d.TotalBytes())
	fill(a, 3)

	alpha := append([]byte(nil), a...)
	for i := 3; i < len(alpha); i += 4 {
		alpha[i] ^= 0xC0
	}
	assert.Equal(t, Equal, read(t, a, d).Compare(read(t, alpha, d)))

	color := append([]byte(nil), a...)
	color[4] ^= 0x04
	va, vc := read(t, a, d), read(t, color, d)
	assert.Equal(t, NotEqual, va.Compare(vc))
	assert.Equal(t, 4, va.FirstDifference(vc))
}

func TestOtherFormatsCompareAlpha(t *testing.T) {
	d := raster.NewRasterDescriptor(2, 1, frame.FormatARGB)
	require.True(t, d.IsValid())

	a := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	b := []byte{1, 2, 3, 4, 5, 6, 7, 9}
	assert.Equal(t, NotEqual, read(t, a, d).Compare(read(t, b, d)))
}

func TestPlanarOrder(t *testing.T) {
	d := raster.NewRasterDescriptor(4, 2, frame.Format8BitYCbCr420PL3)
	require.True(t, d.IsValid())

	buf := []byte{
		1, 2, 3, 4,
		5, 6, 7, 8,
		20, 21,
		30, 31,
	}
	v := read(t, buf, d)
	assert.Equal(t, []uint16{
		1, 20, 2, 30, 3, 21, 4, 31,
		5, 20, 6, 30, 7, 21, 8, 31,
	}, v.Components())

	nv := raster.NewRasterDescriptor(4, 2, frame.Format8BitYCbCr420PL2)
	require.True(t, nv.IsValid())
	buf = []byte{
		1, 2, 3, 4,
		5, 6, 7, 8,
		20, 30, 21, 31,
	}
	assert.Equal(t, []uint16{
		1, 20, 2, 30, 3, 21, 4, 31,
		5, 20, 6, 30, 7, 21, 8, 31,
	}, read(t, buf, nv).Components())
}

func TestReadCanonical(t *testing.T) {
	d := raster.NewRasterDescriptor(2, 1, frame.Format8BitYCbCrYUY2)
	require.True(t, d.IsValid())

	// Y0 Cb Y1 Cr
	v := read(t, []byte{16, 128, 235, 100}, d)
	assert.Equal(t, []uint16{128, 16, 100, 235}, v.Components())
}

func TestReadErrors(t *testing.T) {
	d := raster.NewRasterDescriptor(6, 2, frame.Format10BitYCbCr)
	require.True(t, d.IsValid())

	r := NewReader(make([]byte, d.TotalBytes()-1), d)
	assert.ErrorIs(t, r.Read(), io.ErrBadBufferSize)
	assert.Zero(t, r.View().Len())

	prores := raster.NewRasterDescriptor(16, 2, frame.FormatProResHDV)
	r = NewReader(make([]byte, 64), prores)
	assert.ErrorIs(t, r.Read(), io.ErrUnsupportedFormat)
	assert.Equal(t, Unsupported, r.View().Compare(r.View()))
	assert.False(t, r.View().Equal(r.View()))

	assert.ErrorIs(t, NewReader(nil, raster.Descriptor{}).Read(), io.ErrBadGeometry)
}

func TestCompareFailedRead(t *testing.T) {
	d := raster.NewRasterDescriptor(6, 2, frame.Format10BitYCbCr)
	require.True(t, d.IsValid())

	zeros := make([]byte, d.TotalBytes()-1)
	ones := make([]byte, d.TotalBytes()-1)
	for i := range ones {
		ones[i] = 0xFF
	}
	ra, rb := NewReader(zeros, d), NewReader(ones, d)
	require.ErrorIs(t, ra.Read(), io.ErrBadBufferSize)
	require.ErrorIs(t, rb.Read(), io.ErrBadBufferSize)

	assert.Equal(t, NotEqual, ra.View().Compare(rb.View()))
	assert.Equal(t, NotEqual, ra.View().Compare(ra.View()))

	// never read
	unread := NewReader(make([]byte, d.TotalBytes()), d)
	assert.Equal(t, NotEqual, unread.View().Compare(unread.View()))

	// a good read against a failed one
	good := NewReader(make([]byte, d.TotalBytes()), d)
	require.NoError(t, good.Read())
	assert.Equal(t, Equal, good.View().Compare(good.View()))
	assert.False(t, good.View().Equal(ra.View()))
}

func TestCompareMismatch(t *testing.T) {
	a := View{format: frame.Format8BitYCbCr, components: []uint16{1, 2, 3, 4}, complete: true}
	b := View{format: frame.Format8BitYCbCr, components: []uint16{1, 2, 3}, complete: true}
	assert.Equal(t, NotEqual, a.Compare(b))
	assert.Equal(t, 3, a.FirstDifference(b))

	c := View{format: frame.FormatABGR, components: []uint16{1, 2, 3, 4}, complete: true}
	assert.Equal(t, NotEqual, a.Compare(c))
	assert.Equal(t, "unsupported", Unsupported.String())
}
