package frame

// RowBytes returns the minimum number of bytes one raster line of width
// pixels occupies in f. For planar formats it is the luma plane's row. It
// returns 0 for width 0 and for formats without modeled geometry.
func RowBytes(f PixelFormat, width int) int {
	if width <= 0 {
		return 0
	}
	switch f {
	case Format10BitYCbCr, Format10BitYCbCrDPX:
		// whole 48 pixel blocks, 8/3 bytes per pixel
		return (width + 47) / 48 * 48 * 8 / 3
	case Format8BitYCbCr, Format8BitYCbCrYUY2:
		return width * 2
	case Format24BitRGB, Format24BitBGR:
		return width * 3
	case FormatARGB, FormatRGBA, FormatABGR, Format10BitRGB,
		Format10BitDPX, Format10BitDPXLE, Format10BitRGBPacked:
		return width * 4
	case Format48BitRGB:
		return width * 6
	case Format12BitRGBPacked:
		return (width*36 + 7) / 8
	case Format16BitARGB:
		return width * 8
	case Format8BitYCbCr420PL3, Format8BitYCbCr422PL3,
		Format8BitYCbCr420PL2, Format8BitYCbCr422PL2:
		return width
	case Format10BitYCbCr420PL3LE, Format10BitYCbCr422PL3LE:
		return width * 2
	case Format10BitYCbCr420PL2, Format10BitYCbCr422PL2:
		return (width*20 + 15) / 16
	}
	return 0
}

// NumPlanes returns how many planes a frame in f is split into. Unmodeled
// formats report 1.
func NumPlanes(f PixelFormat) int {
	switch f {
	case Format8BitYCbCr420PL3, Format8BitYCbCr422PL3,
		Format10BitYCbCr420PL3LE, Format10BitYCbCr422PL3LE:
		return 3
	case Format8BitYCbCr420PL2, Format8BitYCbCr422PL2,
		Format10BitYCbCr420PL2, Format10BitYCbCr422PL2:
		return 2
	}
	return 1
}

// IsPlanar reports whether f stores components in more than one plane.
func IsPlanar(f PixelFormat) bool {
	return NumPlanes(f) > 1
}

// ChromaSubsampling returns the horizontal and vertical chroma decimation
// of f. RGB and 4:4:4 formats return 1, 1.
func ChromaSubsampling(f PixelFormat) (horizontal, vertical int) {
	switch f {
	case Format8BitYCbCr420PL3, Format10BitYCbCr420PL3LE,
		Format8BitYCbCr420PL2, Format10BitYCbCr420PL2:
		return 2, 2
	case Format10BitYCbCr, Format8BitYCbCr, Format8BitYCbCrYUY2,
		Format10BitYCbCrDPX, Format8BitYCbCr422PL3, Format10BitYCbCr422PL3LE,
		Format8BitYCbCr422PL2, Format10BitYCbCr422PL2, Format10BitYCbCrA,
		Format8BitDVCPro, Format8BitHDV, Format10BitRawYCbCr:
		return 2, 1
	}
	return 1, 1
}

// IsRGB reports whether f carries RGB components.
func IsRGB(f PixelFormat) bool {
	switch f {
	case FormatARGB, FormatRGBA, FormatABGR, Format10BitRGB, Format10BitDPX,
		Format24BitRGB, Format24BitBGR, Format10BitDPXLE, Format48BitRGB,
		Format12BitRGBPacked, Format10BitRGBPacked, Format10BitARGB,
		Format16BitARGB, Format10BitRawRGB:
		return true
	}
	return false
}

// IsYCbCr reports whether f carries luma and color difference components.
func IsYCbCr(f PixelFormat) bool {
	return f.IsValid() && !IsRGB(f) && !IsCompressed(f)
}

// HasAlpha reports whether f stores an alpha component.
func HasAlpha(f PixelFormat) bool {
	switch f {
	case FormatARGB, FormatRGBA, FormatABGR, Format10BitRGB,
		Format10BitARGB, Format16BitARGB, Format10BitYCbCrA:
		return true
	}
	return false
}

// Is10Bit reports whether components of f carry 10 significant bits.
func Is10Bit(f PixelFormat) bool {
	switch f {
	case Format10BitYCbCr, Format10BitRGB, Format10BitDPX, Format10BitYCbCrDPX,
		Format10BitYCbCrA, Format10BitDPXLE, Format10BitRGBPacked,
		Format10BitARGB, Format10BitRawRGB, Format10BitRawYCbCr,
		Format10BitYCbCr420PL3LE, Format10BitYCbCr422PL3LE,
		Format10BitYCbCr420PL2, Format10BitYCbCr422PL2:
		return true
	}
	return false
}

// IsCompressed reports whether f is a compressed codec pass-through.
func IsCompressed(f PixelFormat) bool {
	switch f {
	case Format8BitDVCPro, Format8BitHDV, FormatProResDVCPro, FormatProResHDV:
		return true
	}
	return false
}
