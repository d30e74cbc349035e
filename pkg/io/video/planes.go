package video

import (
	"image"

	"github.com/aja-video/libajantv2-sub001/pkg/frame"
	"github.com/aja-video/libajantv2-sub001/pkg/pack"
)

// channel picks one component out of a canonical line: every step-th
// component starting at offset.
type channel struct {
	offset, step int
}

// channelsOf splits canonical lines of f into independently scalable
// channels. 4:2:2 lines give full width luma and two half width chroma
// channels.
func channelsOf(f frame.PixelFormat, c pack.Codec) []channel {
	if frame.IsYCbCr(f) {
		// Cb Y Cr Y
		return []channel{{offset: 1, step: 2}, {offset: 0, step: 4}, {offset: 2, step: 4}}
	}
	n := c.GroupComponents() / c.GroupPixels()
	channels := make([]channel, n)
	for i := range channels {
		channels[i] = channel{offset: i, step: n}
	}
	return channels
}

func (ch channel) samples(lineComponents int) int {
	return (lineComponents - ch.offset + ch.step - 1) / ch.step
}

// componentMax is the largest component value f can store.
func componentMax(f frame.PixelFormat) uint16 {
	switch {
	case frame.Is10Bit(f):
		return 0x3FF
	case f == frame.Format12BitRGBPacked:
		return 0xFFF
	case f == frame.Format48BitRGB, f == frame.Format16BitARGB:
		return 0xFFFF
	}
	return 0xFF
}

// componentPlanes holds one Gray16 image per channel of a raster of
// canonical component lines.
type componentPlanes struct {
	channels []channel
	planes   []*image.Gray16
	line     []uint16
}

// resize lays out planes for width pixels by lines rows, reusing memory
// when the geometry is unchanged.
func (p *componentPlanes) resize(channels []channel, c pack.Codec, width, lines int) {
	lineComponents := width / c.GroupPixels() * c.GroupComponents()
	if cap(p.line) < lineComponents {
		p.line = make([]uint16, lineComponents)
	}
	p.line = p.line[:lineComponents]

	p.channels = channels
	if len(p.planes) != len(channels) {
		p.planes = make([]*image.Gray16, len(channels))
	}
	for i, ch := range channels {
		rect := image.Rect(0, 0, ch.samples(lineComponents), lines)
		if p.planes[i] == nil || p.planes[i].Rect != rect {
			p.planes[i] = image.NewGray16(rect)
		}
	}
}

// storeLine spreads p.line over row y of every plane.
func (p *componentPlanes) storeLine(y int) {
	for i, ch := range p.channels {
		plane := p.planes[i]
		row := plane.Pix[y*plane.Stride:]
		for x, c := 0, ch.offset; c < len(p.line); x, c = x+1, c+ch.step {
			row[2*x] = uint8(p.line[c] >> 8)
			row[2*x+1] = uint8(p.line[c])
		}
	}
}

// loadLine gathers row y of every plane into p.line, clamping each
// component to limit.
func (p *componentPlanes) loadLine(y int, limit uint16) {
	for i, ch := range p.channels {
		plane := p.planes[i]
		row := plane.Pix[y*plane.Stride:]
		for x, c := 0, ch.offset; c < len(p.line); x, c = x+1, c+ch.step {
			p.line[c] = min(uint16(row[2*x])<<8|uint16(row[2*x+1]), limit)
		}
	}
}
