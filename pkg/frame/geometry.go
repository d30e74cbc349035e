package frame

import (
	"fmt"

	"github.com/aja-video/libajantv2-sub001/pkg/io"
)

// Geometry describes the element of a pixel format: the smallest byte
// aligned group that holds a whole number of pixel components. For planar
// formats BytesPerElement counts the bytes the element spans in the luma
// plane.
type Geometry struct {
	BytesPerElement        int
	ComponentsPerElement   int
	RasterPixelsPerElement int
}

// IsZero reports whether g carries no geometry, which means the format is
// not modeled and callers must treat it as unsupported.
func (g Geometry) IsZero() bool {
	return g.BytesPerElement == 0 || g.ComponentsPerElement == 0 || g.RasterPixelsPerElement == 0
}

// ElementGeometry returns the element geometry of f. Compressed, raw and
// otherwise unmodeled formats return the zero Geometry.
func ElementGeometry(f PixelFormat) Geometry {
	switch f {
	case Format10BitYCbCr, Format10BitYCbCrDPX:
		return Geometry{16, 12, 6}
	case Format8BitYCbCr, Format8BitYCbCrYUY2:
		return Geometry{4, 4, 2}
	case FormatARGB, FormatRGBA, FormatABGR, Format10BitRGB:
		return Geometry{4, 4, 1}
	case Format10BitDPX, Format10BitDPXLE, Format10BitRGBPacked:
		return Geometry{4, 3, 1}
	case Format24BitRGB, Format24BitBGR:
		return Geometry{3, 3, 1}
	case Format48BitRGB:
		return Geometry{6, 3, 1}
	case Format12BitRGBPacked:
		return Geometry{9, 6, 2}
	case Format16BitARGB:
		return Geometry{8, 4, 1}
	case Format8BitYCbCr420PL3, Format8BitYCbCr422PL3:
		return Geometry{2, 4, 2}
	case Format10BitYCbCr420PL3LE, Format10BitYCbCr422PL3LE:
		return Geometry{4, 4, 2}
	case Format8BitYCbCr420PL2, Format8BitYCbCr422PL2:
		return Geometry{2, 4, 2}
	case Format10BitYCbCr420PL2, Format10BitYCbCr422PL2:
		return Geometry{20, 16, 16}
	case Format8BitDVCPro, Format8BitHDV, Format10BitYCbCrA,
		FormatProResDVCPro, FormatProResHDV, Format10BitARGB,
		Format10BitRawRGB, Format10BitRawYCbCr:
		return Geometry{}
	}
	return Geometry{}
}

// IsModeled reports whether f has element geometry.
func IsModeled(f PixelFormat) bool {
	return !ElementGeometry(f).IsZero()
}

// Granularity returns the horizontal copy granularity of f's first plane:
// bytesPerGroup bytes hold exactly pixelsPerGroup pixels. Every modeled
// format scales linearly in whole groups.
func Granularity(f PixelFormat) (bytesPerGroup, pixelsPerGroup int, err error) {
	switch f {
	case Format10BitYCbCr, Format10BitYCbCrDPX:
		return 16, 6, nil
	case Format8BitYCbCr, Format8BitYCbCrYUY2:
		return 4, 2, nil
	case FormatARGB, FormatRGBA, FormatABGR, Format10BitRGB,
		Format10BitDPX, Format10BitDPXLE, Format10BitRGBPacked:
		return 4, 1, nil
	case Format24BitRGB, Format24BitBGR:
		return 3, 1, nil
	case Format48BitRGB:
		return 6, 1, nil
	case Format12BitRGBPacked:
		return 9, 2, nil
	case Format16BitARGB:
		return 8, 1, nil
	case Format8BitYCbCr420PL3, Format8BitYCbCr422PL3,
		Format8BitYCbCr420PL2, Format8BitYCbCr422PL2:
		return 1, 1, nil
	case Format10BitYCbCr420PL3LE, Format10BitYCbCr422PL3LE:
		return 2, 1, nil
	case Format10BitYCbCr420PL2, Format10BitYCbCr422PL2:
		return 20, 16, nil
	}
	return 0, 0, fmt.Errorf("%s has no copy granularity: %w", f, io.ErrUnsupportedFormat)
}
