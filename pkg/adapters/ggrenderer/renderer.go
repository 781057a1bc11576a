// Package ggrenderer provides a frame renderer implementation using the
// gg library. It draws the moving test pattern used by the demo command
// and by smoke tests.
package ggrenderer

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/user/framepipe/pkg/ports"
)

// Renderer implements ports.FrameRenderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderPattern renders one frame of an animated test pattern: a hue
// sweep background, an orbiting disc, and a progress bar along the bottom
// so dropped or reordered frames are visible at a glance.
func (r *Renderer) RenderPattern(width, height, frameIndex, frameCount int) image.Image {
	dc := gg.NewContext(width, height)

	progress := 0.0
	if frameCount > 1 {
		progress = float64(frameIndex) / float64(frameCount-1)
	}

	// Background: hue rotates over the clip duration.
	red, green, blue := hueToRGB(progress)
	dc.SetRGB(red*0.4, green*0.4, blue*0.4)
	dc.Clear()

	// Orbiting disc.
	cx := float64(width) / 2
	cy := float64(height) / 2
	radius := math.Min(cx, cy) * 0.6
	angle := progress * 2 * math.Pi
	discR := math.Min(cx, cy) * 0.15

	dc.SetRGB(red, green, blue)
	dc.DrawCircle(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle), discR)
	dc.Fill()

	// Progress bar.
	barH := float64(height) * 0.05
	if barH < 2 {
		barH = 2
	}
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, float64(height)-barH, float64(width)*progress, barH)
	dc.Fill()

	return dc.Image()
}

// hueToRGB maps a 0..1 hue to a fully saturated RGB triple.
func hueToRGB(h float64) (float64, float64, float64) {
	h = math.Mod(h, 1) * 6
	c := 1 - math.Abs(math.Mod(h, 2)-1)
	switch {
	case h < 1:
		return 1, c, 0
	case h < 2:
		return c, 1, 0
	case h < 3:
		return 0, 1, c
	case h < 4:
		return 0, c, 1
	case h < 5:
		return c, 0, 1
	default:
		return 1, 0, c
	}
}

// Ensure Renderer implements ports.FrameRenderer
var _ ports.FrameRenderer = (*Renderer)(nil)
