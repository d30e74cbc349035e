package frame

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRGBA32(t *testing.T) {
	want := color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}

	testCases := map[string]struct {
		format PixelFormat
		input  []byte
	}{
		"ARGB": {
			format: FormatARGB,
			input:  []byte{0x30, 0x20, 0x10, 0x40},
		},
		"RGBA": {
			format: FormatRGBA,
			input:  []byte{0x40, 0x10, 0x20, 0x30},
		},
		"ABGR": {
			format: FormatABGR,
			input:  []byte{0x10, 0x20, 0x30, 0x40},
		},
	}

	for name, c := range testCases {
		c := c
		t.Run(name, func(t *testing.T) {
			orig := append([]byte(nil), c.input...)

			decoder, err := NewDecoder(c.format)
			require.NoError(t, err)

			img, release, err := decoder.Decode(c.input, 1, 1, 4)
			require.NoError(t, err)
			defer release()

			assert.Equal(t, want, img.At(0, 0))
			assert.Equal(t, orig, c.input, "frame must not be modified")
		})
	}
}

func TestDecodeRGB24(t *testing.T) {
	input := []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x00, 0x00,
		0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x00, 0x00,
	}

	img, _, err := decodeRGB24(input, 2, 2, 8)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, color.RGBA{0x0A, 0x0B, 0x0C, 0xFF}, img.At(1, 1))
	assert.Equal(t, color.RGBA{}, img.At(2, 0))

	img, _, err = decodeBGR24(input, 2, 2, 8)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x03, 0x02, 0x01, 0xFF}, img.At(0, 0))
}

func BenchmarkDecodeARGB(b *testing.B) {
	sizes := []struct {
		width, height int
	}{
		{640, 480},
		{1920, 1080},
	}
	for _, sz := range sizes {
		sz := sz
		b.Run(fmt.Sprintf("%dx%d", sz.width, sz.height), func(b *testing.B) {
			input := make([]byte, sz.width*sz.height*4)
			for i := 0; i < b.N; i++ {
				_, _, err := decodeARGB(input, sz.width, sz.height, sz.width*4)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
