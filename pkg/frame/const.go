package frame

import "fmt"

// PixelFormat identifies a frame buffer encoding. Values follow the hardware
// numbering, so a PixelFormat can be stored in a channel control register
// as is.
type PixelFormat int

const (
	// YCbCr 4:2:2 10-bit, 6 pixels in 4 little endian words (v210)
	Format10BitYCbCr PixelFormat = iota
	// YCbCr 4:2:2 8-bit, Cb Y Cr Y byte order (2vuy/UYVY)
	Format8BitYCbCr
	// FormatARGB is 8-bit RGB with alpha, stored B G R A
	FormatARGB
	// FormatRGBA is 8-bit RGB with alpha, stored A R G B
	FormatRGBA
	// RGB 10-bit in one little endian word, 2 alpha bits on top
	Format10BitRGB
	// YCbCr 4:2:2 8-bit, Y Cb Y Cr byte order
	Format8BitYCbCrYUY2
	// FormatABGR is 8-bit RGB with alpha, stored R G B A
	FormatABGR
	// RGB 10-bit DPX, big endian
	Format10BitDPX
	// YCbCr 4:2:2 10-bit, DPX bit layout, big endian
	Format10BitYCbCrDPX
	Format8BitDVCPro
	// YCbCr 4:2:0 8-bit, 3 planes (I420)
	Format8BitYCbCr420PL3
	Format8BitHDV
	Format24BitRGB
	Format24BitBGR
	Format10BitYCbCrA
	// RGB 10-bit DPX, little endian
	Format10BitDPXLE
	// RGB 16 bits per component
	Format48BitRGB
	// RGB 12 bits per component, 2 pixels in 9 bytes
	Format12BitRGBPacked
	FormatProResDVCPro
	FormatProResHDV
	// RGB 8 MSBs per component plus 2 LSBs each, one word per pixel
	Format10BitRGBPacked
	Format10BitARGB
	// ARGB 16 bits per component
	Format16BitARGB
	// YCbCr 4:2:2 8-bit, 3 planes (I422)
	Format8BitYCbCr422PL3
	Format10BitRawRGB
	Format10BitRawYCbCr
	// YCbCr 4:2:0 10-bit in 16-bit little endian samples, 3 planes
	Format10BitYCbCr420PL3LE
	// YCbCr 4:2:2 10-bit in 16-bit little endian samples, 3 planes
	Format10BitYCbCr422PL3LE
	// YCbCr 4:2:0 10-bit, tightly packed, luma plane and CbCr plane
	Format10BitYCbCr420PL2
	// YCbCr 4:2:2 10-bit, tightly packed, luma plane and CbCr plane
	Format10BitYCbCr422PL2
	// YCbCr 4:2:0 8-bit, luma plane and CbCr plane (NV12)
	Format8BitYCbCr420PL2
	// YCbCr 4:2:2 8-bit, luma plane and CbCr plane (NV16)
	Format8BitYCbCr422PL2

	numPixelFormats
)

// Short aliases used by the capture tools.
const (
	FormatV210 = Format10BitYCbCr
	Format2VUY = Format8BitYCbCr
	FormatUYVY = Format8BitYCbCr
	FormatYUY2 = Format8BitYCbCrYUY2
	FormatI420 = Format8BitYCbCr420PL3
	FormatI422 = Format8BitYCbCr422PL3
	FormatNV12 = Format8BitYCbCr420PL2
	FormatNV16 = Format8BitYCbCr422PL2
)

var formatNames = [numPixelFormats]string{
	Format10BitYCbCr:         "10BitYCbCr",
	Format8BitYCbCr:          "8BitYCbCr",
	FormatARGB:               "ARGB",
	FormatRGBA:               "RGBA",
	Format10BitRGB:           "10BitRGB",
	Format8BitYCbCrYUY2:      "8BitYCbCrYUY2",
	FormatABGR:               "ABGR",
	Format10BitDPX:           "10BitDPX",
	Format10BitYCbCrDPX:      "10BitYCbCrDPX",
	Format8BitDVCPro:         "8BitDVCPro",
	Format8BitYCbCr420PL3:    "8BitYCbCr420PL3",
	Format8BitHDV:            "8BitHDV",
	Format24BitRGB:           "24BitRGB",
	Format24BitBGR:           "24BitBGR",
	Format10BitYCbCrA:        "10BitYCbCrA",
	Format10BitDPXLE:         "10BitDPXLE",
	Format48BitRGB:           "48BitRGB",
	Format12BitRGBPacked:     "12BitRGBPacked",
	FormatProResDVCPro:       "ProResDVCPro",
	FormatProResHDV:          "ProResHDV",
	Format10BitRGBPacked:     "10BitRGBPacked",
	Format10BitARGB:          "10BitARGB",
	Format16BitARGB:          "16BitARGB",
	Format8BitYCbCr422PL3:    "8BitYCbCr422PL3",
	Format10BitRawRGB:        "10BitRawRGB",
	Format10BitRawYCbCr:      "10BitRawYCbCr",
	Format10BitYCbCr420PL3LE: "10BitYCbCr420PL3LE",
	Format10BitYCbCr422PL3LE: "10BitYCbCr422PL3LE",
	Format10BitYCbCr420PL2:   "10BitYCbCr420PL2",
	Format10BitYCbCr422PL2:   "10BitYCbCr422PL2",
	Format8BitYCbCr420PL2:    "8BitYCbCr420PL2",
	Format8BitYCbCr422PL2:    "8BitYCbCr422PL2",
}

// PixelFormats returns every known format in numeric order.
func PixelFormats() []PixelFormat {
	formats := make([]PixelFormat, 0, numPixelFormats)
	for f := PixelFormat(0); f < numPixelFormats; f++ {
		formats = append(formats, f)
	}
	return formats
}

// IsValid reports whether f is one of the known formats.
func (f PixelFormat) IsValid() bool {
	return f >= 0 && f < numPixelFormats
}

func (f PixelFormat) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("PixelFormat(%d)", int(f))
	}
	return formatNames[f]
}
