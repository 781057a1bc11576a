package framepipe

import (
	"fmt"
)

// PixelFormat identifies the in-memory layout of a raw frame. The values
// match the pixel format names understood by ffmpeg's rawvideo demuxer.
type PixelFormat string

const (
	// RGB24 is 8-bit R, G, B, 3 bytes per pixel.
	RGB24 PixelFormat = "rgb24"
	// RGBA is 8-bit R, G, B, A, 4 bytes per pixel.
	RGBA PixelFormat = "rgba"
	// BGRA is 8-bit B, G, R, A, 4 bytes per pixel.
	BGRA PixelFormat = "bgra"
	// Gray8 is a single 8-bit luma plane, 1 byte per pixel.
	Gray8 PixelFormat = "gray"
	// YUV420P is planar YUV with 2x2 chroma subsampling, 12 bits per pixel.
	// Both dimensions must be even.
	YUV420P PixelFormat = "yuv420p"
)

// Valid returns true if the pixel format is one of the supported values.
func (f PixelFormat) Valid() bool {
	switch f {
	case RGB24, RGBA, BGRA, Gray8, YUV420P:
		return true
	}
	return false
}

// FrameSize returns the exact byte length of a single raw frame of the
// given dimensions. This value defines the frame boundary on the wire:
// the stream has no delimiters, so every frame must be exactly this long.
func (f PixelFormat) FrameSize(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("framepipe: invalid dimensions %dx%d", width, height)
	}

	switch f {
	case RGB24:
		return width * height * 3, nil
	case RGBA, BGRA:
		return width * height * 4, nil
	case Gray8:
		return width * height, nil
	case YUV420P:
		if width%2 != 0 || height%2 != 0 {
			return 0, fmt.Errorf("framepipe: %s requires even dimensions, got %dx%d", f, width, height)
		}
		// Full-size luma plane plus two quarter-size chroma planes.
		return width*height + 2*(width/2)*(height/2), nil
	default:
		return 0, fmt.Errorf("framepipe: unknown pixel format %q", string(f))
	}
}
