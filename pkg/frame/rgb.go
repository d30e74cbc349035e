package frame

import (
	"image"
)

// decodeRGBA32 reorders a 4 byte per pixel raster into image.RGBA. order
// holds the byte positions of R, G, B and A inside each stored pixel. The
// caller's frame is never modified.
func decodeRGBA32(frame []byte, width, height, pitch int, order [4]int) (image.Image, func(), error) {
	if err := checkRaster(frame, width, height, pitch, width*4, pitch*(height-1)+width*4); err != nil {
		return nil, noop, err
	}

	r := image.Rect(0, 0, width, height)
	img := image.NewRGBA(r)
	for row := 0; row < height; row++ {
		src := frame[row*pitch : row*pitch+width*4]
		dst := img.Pix[row*img.Stride : row*img.Stride+width*4]
		for i := 0; i < len(src); i += 4 {
			dst[i] = src[i+order[0]]
			dst[i+1] = src[i+order[1]]
			dst[i+2] = src[i+order[2]]
			dst[i+3] = src[i+order[3]]
		}
	}
	return img, noop, nil
}

func decodeARGB(frame []byte, width, height, pitch int) (image.Image, func(), error) {
	// B G R A
	return decodeRGBA32(frame, width, height, pitch, [4]int{2, 1, 0, 3})
}

func decodeRGBA(frame []byte, width, height, pitch int) (image.Image, func(), error) {
	// A R G B
	return decodeRGBA32(frame, width, height, pitch, [4]int{1, 2, 3, 0})
}

func decodeABGR(frame []byte, width, height, pitch int) (image.Image, func(), error) {
	// R G B A is already the image.RGBA layout, so the frame is shared.
	if err := checkRaster(frame, width, height, pitch, width*4, pitch*(height-1)+width*4); err != nil {
		return nil, noop, err
	}
	size := pitch*(height-1) + width*4
	return &image.RGBA{
		Pix:    frame[:size:size],
		Stride: pitch,
		Rect:   image.Rect(0, 0, width, height),
	}, noop, nil
}
