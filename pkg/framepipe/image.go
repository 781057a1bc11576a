package framepipe

import (
	"fmt"
	"image"
	"image/draw"
)

// AddImage converts an image to the session's pixel format and feeds it as
// one frame. The image bounds must match the configured dimensions;
// callers that need scaling should resize before submitting. Only packed
// formats can be produced from an image; planar sessions must feed raw
// bytes through AddFrame.
func (s *Session) AddImage(img image.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateOpen {
		return ErrSessionClosed
	}

	bounds := img.Bounds()
	if bounds.Dx() != s.cfg.Width || bounds.Dy() != s.cfg.Height {
		return fmt.Errorf("%w: image is %dx%d, session is %dx%d",
			ErrFrameSize, bounds.Dx(), bounds.Dy(), s.cfg.Width, s.cfg.Height)
	}

	buf, err := packImage(img, s.cfg.PixelFormat, s.frameSize)
	if err != nil {
		return err
	}
	return s.addFrame(buf)
}

// packImage serializes an image into raw frame bytes in row-major order.
func packImage(img image.Image, format PixelFormat, size int) ([]byte, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	rgba, ok := img.(*image.RGBA)
	if !ok || bounds.Min != image.Pt(0, 0) {
		rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	switch format {
	case RGBA:
		if rgba.Stride == w*4 {
			return rgba.Pix, nil
		}
		buf := make([]byte, 0, size)
		for y := 0; y < h; y++ {
			row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
			buf = append(buf, row...)
		}
		return buf, nil

	case BGRA:
		buf := make([]byte, 0, size)
		for y := 0; y < h; y++ {
			row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
			for x := 0; x < w*4; x += 4 {
				buf = append(buf, row[x+2], row[x+1], row[x], row[x+3])
			}
		}
		return buf, nil

	case RGB24:
		buf := make([]byte, 0, size)
		for y := 0; y < h; y++ {
			row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
			for x := 0; x < w*4; x += 4 {
				buf = append(buf, row[x], row[x+1], row[x+2])
			}
		}
		return buf, nil

	case Gray8:
		buf := make([]byte, 0, size)
		for y := 0; y < h; y++ {
			row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
			for x := 0; x < w*4; x += 4 {
				// BT.601 luma weights, integer approximation.
				luma := (299*int(row[x]) + 587*int(row[x+1]) + 114*int(row[x+2])) / 1000
				buf = append(buf, uint8(luma))
			}
		}
		return buf, nil

	default:
		return nil, fmt.Errorf("framepipe: cannot pack an image as %s, submit raw bytes instead", string(format))
	}
}
