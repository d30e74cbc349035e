package frame

import (
	"image"
)

func decodePlanar(frame []byte, width, height, pitch int, ratio image.YCbCrSubsampleRatio) (image.Image, func(), error) {
	cPitch := pitch / 2
	cHeight := height
	if ratio == image.YCbCrSubsampleRatio420 {
		cHeight = height / 2
	}
	yi := pitch * height
	cbi := yi + cPitch*cHeight
	cri := cbi + cPitch*cHeight

	if err := checkRaster(frame, width, height, pitch, width, cri); err != nil {
		return nil, noop, err
	}

	return &image.YCbCr{
		Y:              frame[:yi:yi],
		YStride:        pitch,
		Cb:             frame[yi:cbi:cbi],
		Cr:             frame[cbi:cri:cri],
		CStride:        cPitch,
		SubsampleRatio: ratio,
		Rect:           image.Rect(0, 0, width, height),
	}, noop, nil
}

func decodeI420(frame []byte, width, height, pitch int) (image.Image, func(), error) {
	return decodePlanar(frame, width, height, pitch, image.YCbCrSubsampleRatio420)
}

func decodeI422(frame []byte, width, height, pitch int) (image.Image, func(), error) {
	return decodePlanar(frame, width, height, pitch, image.YCbCrSubsampleRatio422)
}

func decodeNV12(frame []byte, width, height, pitch int) (image.Image, func(), error) {
	yi := pitch * height
	ci := yi + pitch*(height/2)

	if err := checkRaster(frame, width, height, pitch, width, ci); err != nil {
		return nil, noop, err
	}

	cw := width / 2
	ch := height / 2
	cb := make([]byte, cw*ch)
	cr := make([]byte, cw*ch)
	for row := 0; row < ch; row++ {
		line := frame[yi+row*pitch:]
		for x := 0; x < cw; x++ {
			cb[row*cw+x] = line[2*x]
			cr[row*cw+x] = line[2*x+1]
		}
	}

	return &image.YCbCr{
		Y:              frame[:yi:yi],
		YStride:        pitch,
		Cb:             cb,
		Cr:             cr,
		CStride:        cw,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}, noop, nil
}

// decodePacked422 splits a packed 4:2:2 raster. yOff, cbOff and crOff are
// the byte positions of the first luma, Cb and Cr samples inside each
// 4 byte pair.
func decodePacked422(frame []byte, width, height, pitch int, yOff, cbOff, crOff int) (image.Image, func(), error) {
	if err := checkRaster(frame, width, height, pitch, width*2, pitch*(height-1)+width*2); err != nil {
		return nil, noop, err
	}

	cw := width / 2
	y := make([]byte, width*height)
	cb := make([]byte, cw*height)
	cr := make([]byte, cw*height)

	fast := 0
	slow := 0
	for row := 0; row < height; row++ {
		line := frame[row*pitch : row*pitch+cw*4]
		for i := 0; i < len(line); i += 4 {
			y[fast] = line[i+yOff]
			cb[slow] = line[i+cbOff]
			y[fast+1] = line[i+yOff+2]
			cr[slow] = line[i+crOff]
			fast += 2
			slow++
		}
		fast = (row + 1) * width
	}

	return &image.YCbCr{
		Y:              y,
		YStride:        width,
		Cb:             cb,
		Cr:             cr,
		CStride:        cw,
		SubsampleRatio: image.YCbCrSubsampleRatio422,
		Rect:           image.Rect(0, 0, width, height),
	}, noop, nil
}

func decodeYUY2(frame []byte, width, height, pitch int) (image.Image, func(), error) {
	// Y Cb Y Cr
	return decodePacked422(frame, width, height, pitch, 0, 1, 3)
}

func decodeUYVY(frame []byte, width, height, pitch int) (image.Image, func(), error) {
	// Cb Y Cr Y
	return decodePacked422(frame, width, height, pitch, 1, 0, 2)
}
