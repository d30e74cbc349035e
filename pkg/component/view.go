package component

import "github.com/aja-video/libajantv2-sub001/pkg/frame"

// Comparison is the outcome of comparing two views.
type Comparison int

const (
	NotEqual Comparison = iota
	Equal
	// Unsupported means no comparison is modeled for the format. It never
	// counts as equal.
	Unsupported
)

func (c Comparison) String() string {
	switch c {
	case Equal:
		return "equal"
	case NotEqual:
		return "not equal"
	case Unsupported:
		return "unsupported"
	}
	return "unknown"
}

// View is a read-only flattened sequence of component values.
type View struct {
	format      frame.PixelFormat
	components  []uint16
	unsupported bool
	// complete is set only when Read decoded every line.
	complete    bool
}

// Format returns the pixel format the view was read from.
func (v View) Format() frame.PixelFormat { return v.format }

// Components returns the component values. Callers must not modify them.
func (v View) Components() []uint16 { return v.components }

// Len returns the number of components.
func (v View) Len() int { return len(v.components) }

// Equal reports whether Compare returns Equal.
func (v View) Equal(other View) bool {
	return v.Compare(other) == Equal
}

// Compare compares two views component by component. For 10BitRGB the
// 2-bit alpha slot of every pixel is ignored. A view from a failed or
// missing Read never compares equal.
func (v View) Compare(other View) Comparison {
	if v.unsupported || other.unsupported {
		return Unsupported
	}
	if !v.complete || !other.complete {
		return NotEqual
	}
	if v.format != other.format || len(v.components) != len(other.components) {
		return NotEqual
	}
	if v.FirstDifference(other) >= 0 {
		return NotEqual
	}
	return Equal
}

// FirstDifference returns the index of the first compared component that
// differs, or -1. Views of different length differ at the shorter length.
func (v View) FirstDifference(other View) int {
	a, b := v.components, other.components
	n := min(len(a), len(b))

	// 10BitRGB alpha bits are not compared
	skip := func(int) bool { return false }
	if v.format == frame.Format10BitRGB {
		skip = func(i int) bool { return i%4 == 3 }
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] && !skip(i) {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}
