package raster

import "fmt"

// Standard is a video raster standard: the active picture size and scan.
type Standard int

const (
	Standard1080i Standard = iota
	Standard720p
	Standard525i
	Standard625i
	Standard1080p
	Standard2K
	Standard2Kx1080p
	Standard2Kx1080i
	Standard3840x2160p
	Standard4096x2160p
	Standard7680x4320p
	Standard8192x4320p

	numStandards
)

// VancMode selects how many vertical ancillary lines precede the active
// picture in the frame buffer.
type VancMode int

const (
	VancOff VancMode = iota
	VancTall
	VancTaller
)

func (m VancMode) String() string {
	switch m {
	case VancOff:
		return "off"
	case VancTall:
		return "tall"
	case VancTaller:
		return "taller"
	}
	return fmt.Sprintf("VancMode(%d)", int(m))
}

type standardInfo struct {
	name        string
	width       int
	lines       int
	progressive bool
	// full raster heights with tall and taller VANC, 0 when not supported
	tallLines   int
	tallerLines int
	quadrant    Standard
}

var standards = [numStandards]standardInfo{
	Standard1080i:      {"1080i", 1920, 1080, false, 1112, 1114, -1},
	Standard720p:       {"720p", 1280, 720, true, 740, 740, -1},
	Standard525i:       {"525i", 720, 486, false, 508, 514, -1},
	Standard625i:       {"625i", 720, 576, false, 598, 612, -1},
	Standard1080p:      {"1080p", 1920, 1080, true, 1112, 1114, -1},
	Standard2K:         {"2048x1556", 2048, 1556, true, 1588, 1588, -1},
	Standard2Kx1080p:   {"2048x1080p", 2048, 1080, true, 1112, 1114, -1},
	Standard2Kx1080i:   {"2048x1080i", 2048, 1080, false, 1112, 1114, -1},
	Standard3840x2160p: {"3840x2160p", 3840, 2160, true, 0, 0, Standard1080p},
	Standard4096x2160p: {"4096x2160p", 4096, 2160, true, 0, 0, Standard2Kx1080p},
	Standard7680x4320p: {"7680x4320p", 7680, 4320, true, 0, 0, Standard3840x2160p},
	Standard8192x4320p: {"8192x4320p", 8192, 4320, true, 0, 0, Standard4096x2160p},
}

// IsValid reports whether s is a known standard.
func (s Standard) IsValid() bool {
	return s >= 0 && s < numStandards
}

func (s Standard) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Standard(%d)", int(s))
	}
	return standards[s].name
}

// Size returns the active picture width and height.
func (s Standard) Size() (width, lines int) {
	if !s.IsValid() {
		return 0, 0
	}
	return standards[s].width, standards[s].lines
}

// IsProgressive reports whether s is a progressive scan standard.
func (s Standard) IsProgressive() bool {
	return s.IsValid() && standards[s].progressive
}

// IsQuad reports whether s is carried as four quadrant images.
func (s Standard) IsQuad() bool {
	_, ok := s.QuadrantStandard()
	return ok
}

// QuadrantStandard returns the standard of one quadrant of s.
func (s Standard) QuadrantStandard() (Standard, bool) {
	if !s.IsValid() || standards[s].quadrant < 0 {
		return 0, false
	}
	return standards[s].quadrant, true
}

// vancLines returns the full raster height of s under mode, or 0 when s
// has no such VANC geometry.
func (s Standard) vancLines(mode VancMode) int {
	if !s.IsValid() {
		return 0
	}
	info := standards[s]
	switch mode {
	case VancOff:
		return info.lines
	case VancTall:
		return info.tallLines
	case VancTaller:
		return info.tallerLines
	}
	return 0
}
