package raster

import (
	"bytes"
	"fmt"
)

// FirstChangedRow returns the first raster line whose bytes differ between
// a and b in any plane, or -1 when the frames are identical.
func (d Descriptor) FirstChangedRow(a, b []byte) (int, error) {
	if err := d.checkPair(a, b); err != nil {
		return -1, err
	}
	for line := 0; line < d.fullLines; line++ {
		if d.lineDiffers(a, b, line) {
			return line, nil
		}
	}
	return -1, nil
}

// ChangedLines returns every raster line whose bytes differ between a and b
// in any plane, in ascending order.
func (d Descriptor) ChangedLines(a, b []byte) ([]int, error) {
	if err := d.checkPair(a, b); err != nil {
		return nil, err
	}
	var lines []int
	for line := 0; line < d.fullLines; line++ {
		if d.lineDiffers(a, b, line) {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func (d Descriptor) checkPair(a, b []byte) error {
	if err := d.CheckBuffer(a); err != nil {
		return fmt.Errorf("first buffer: %w", err)
	}
	if err := d.CheckBuffer(b); err != nil {
		return fmt.Errorf("second buffer: %w", err)
	}
	return nil
}

func (d Descriptor) lineDiffers(a, b []byte, line int) bool {
	for p := range d.planes {
		row := d.PlaneLine(line, p)
		if !bytes.Equal(d.Row(a, row, p), d.Row(b, row, p)) {
			return true
		}
	}
	return false
}
