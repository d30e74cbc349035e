package frame

import "image"

// Decoder turns a raw raster into an image.Image. pitch is the row pitch of
// the first plane in bytes; chroma planes of planar formats use the pitch
// implied by their subsampling. The returned release func must be called once
// the image is no longer used.
type Decoder interface {
	Decode(frame []byte, width, height, pitch int) (image.Image, func(), error)
}

// DecoderFunc is a proxy type for Decoder
type decoderFunc func(frame []byte, width, height, pitch int) (image.Image, func(), error)

func (f decoderFunc) Decode(frame []byte, width, height, pitch int) (image.Image, func(), error) {
	return f(frame, width, height, pitch)
}
