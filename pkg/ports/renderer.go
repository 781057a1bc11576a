package ports

import (
	"image"
)

// FrameRenderer produces synthetic frames for demo and smoke-test videos.
type FrameRenderer interface {
	// RenderPattern renders frame frameIndex out of frameCount as an image
	// of the given dimensions. Successive indices should produce visibly
	// different frames.
	RenderPattern(width, height, frameIndex, frameCount int) image.Image
}
