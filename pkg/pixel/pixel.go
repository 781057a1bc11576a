// Package pixel provides basic pixel types and a reusable frame buffer
// for producing raw RGB24 frames. HSL and HSV conversion algorithms are
// adapted from the formulas on the Wikipedia "HSL and HSV" article.
package pixel

import (
	"math"
)

// Pixel is any color value that can serialize itself as one RGB24 pixel.
type Pixel interface {
	RGB24() [3]byte
}

// RGB is an 8-bit-per-channel RGB pixel.
type RGB struct {
	R, G, B uint8
}

// RGB24 returns the pixel's raw bytes.
func (p RGB) RGB24() [3]byte {
	return [3]byte{p.R, p.G, p.B}
}

// HSL is a hue/saturation/lightness pixel. All components are in [0, 1];
// H wraps around.
type HSL struct {
	H, S, L float64
}

// RGB24 converts to RGB.
func (p HSL) RGB24() [3]byte {
	h := p.H * 360
	a := p.S * math.Min(p.L, 1-p.L)

	f := func(n float64) byte {
		k := mod(n+h/30, 12)
		val := p.L - a*math.Max(-1, math.Min(k-3, math.Min(9-k, 1)))
		return toByte(val)
	}

	return [3]byte{f(0), f(8), f(4)}
}

// HSV is a hue/saturation/value pixel. All components are in [0, 1];
// H wraps around.
type HSV struct {
	H, S, V float64
}

// RGB24 converts to RGB.
func (p HSV) RGB24() [3]byte {
	h := p.H * 360

	f := func(n float64) byte {
		k := mod(n+h/60, 6)
		val := p.V * (1 - p.S*math.Max(0, math.Min(k, math.Min(4-k, 1))))
		return toByte(val)
	}

	return [3]byte{f(5), f(3), f(1)}
}

// mod is a euclidean modulo: the result always has the sign of m.
func mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

func toByte(f float64) byte {
	return byte(f * 255)
}
