package pixel

import (
	"fmt"
)

// Buffer is a reusable width×height pixel grid. A caller renders into it,
// serializes it with Bytes, feeds the result to a session, and resets it
// for the next frame — avoiding a fresh allocation per frame.
type Buffer[P Pixel] struct {
	data   []P
	width  int
	height int
}

// NewBuffer creates a zero-filled buffer of the given dimensions.
func NewBuffer[P Pixel](width, height int) *Buffer[P] {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("pixel: invalid buffer dimensions %dx%d", width, height))
	}
	return &Buffer[P]{
		data:   make([]P, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the buffer width.
func (b *Buffer[P]) Width() int { return b.width }

// Height returns the buffer height.
func (b *Buffer[P]) Height() int { return b.height }

// At returns the pixel at (x, y). Row-major, origin top-left.
func (b *Buffer[P]) At(x, y int) P {
	return b.data[y*b.width+x]
}

// Set stores a pixel at (x, y).
func (b *Buffer[P]) Set(x, y int, p P) {
	b.data[y*b.width+x] = p
}

// Fill sets every pixel to p.
func (b *Buffer[P]) Fill(p P) {
	for i := range b.data {
		b.data[i] = p
	}
}

// Reset zeroes every pixel.
func (b *Buffer[P]) Reset() {
	var zero P
	b.Fill(zero)
}

// Bytes serializes the buffer as raw RGB24 frame bytes in row-major
// order. The returned slice is freshly allocated.
func (b *Buffer[P]) Bytes() []byte {
	return b.AppendBytes(make([]byte, 0, len(b.data)*3))
}

// AppendBytes appends the RGB24 serialization to dst and returns the
// extended slice, letting callers reuse one output buffer across frames.
func (b *Buffer[P]) AppendBytes(dst []byte) []byte {
	for i := range b.data {
		px := b.data[i].RGB24()
		dst = append(dst, px[0], px[1], px[2])
	}
	return dst
}
