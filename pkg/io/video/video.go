// Package video chains transforms over raw raster frames and previews them
// as images.
package video

import (
	"image"

	"github.com/aja-video/libajantv2-sub001/internal/logging"
	"github.com/aja-video/libajantv2-sub001/pkg/raster"
)

var logger = logging.NewLogger("io/video")

// Frame is one raw frame buffer and the descriptor that lays it out.
type Frame struct {
	Desc raster.Descriptor
	Data []byte
}

type Reader interface {
	Read() (f *Frame, release func(), err error)
}

type ReaderFunc func() (f *Frame, release func(), err error)

func (rf ReaderFunc) Read() (f *Frame, release func(), err error) {
	f, release, err = rf()
	return
}

// TransformFunc produces a new Reader that will produces a transformed video
type TransformFunc func(r Reader) Reader

// Merge merges transforms and produces a new TransformFunc that will execute
// transforms in order
func Merge(transforms ...TransformFunc) TransformFunc {
	return func(r Reader) Reader {
		for _, transform := range transforms {
			if transform == nil {
				continue
			}

			r = transform(r)
		}

		return r
	}
}

// ImageReader reads decoded frames.
type ImageReader interface {
	Read() (img image.Image, release func(), err error)
}

type ImageReaderFunc func() (img image.Image, release func(), err error)

func (rf ImageReaderFunc) Read() (img image.Image, release func(), err error) {
	img, release, err = rf()
	return
}

func noop() {}
