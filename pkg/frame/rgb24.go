package frame

import (
	"image"
	"image/color"
)

// RGB24Img is an image backed by a 3 byte per pixel raster.
type RGB24Img struct {
	// Pix holds the image's pixels. The pixel at (x, y) starts at
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix    []uint8
	Rect   image.Rectangle
	Stride int
	// BGR is set when pixels are stored B, G, R instead of R, G, B.
	BGR bool
}

func decodeRGB24(frame []byte, width, height, pitch int) (image.Image, func(), error) {
	return newRGB24(frame, width, height, pitch, false)
}

func decodeBGR24(frame []byte, width, height, pitch int) (image.Image, func(), error) {
	return newRGB24(frame, width, height, pitch, true)
}

func newRGB24(frame []byte, width, height, pitch int, bgr bool) (image.Image, func(), error) {
	size := pitch*(height-1) + width*3
	if err := checkRaster(frame, width, height, pitch, width*3, size); err != nil {
		return nil, noop, err
	}
	return &RGB24Img{
		Pix: frame[:size:size],
		Rect: image.Rectangle{
			Min: image.Point{
				X: 0,
				Y: 0,
			},
			Max: image.Point{
				X: width,
				Y: height,
			},
		},
		Stride: pitch,
		BGR:    bgr,
	}, noop, nil
}

func (p *RGB24Img) ColorModel() color.Model {
	return color.RGBAModel
}
func (p *RGB24Img) Bounds() image.Rectangle {
	return p.Rect
}

func (p *RGB24Img) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}
func (p *RGB24Img) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3] // Small capacity improves performance, see https://golang.org/issue/27857
	if p.BGR {
		return color.RGBA{s[2], s[1], s[0], 0xFF}
	}
	return color.RGBA{s[0], s[1], s[2], 0xFF}
}
