package framepipe

import (
	"fmt"

	"github.com/user/framepipe/pkg/ports"
)

// Config describes a single encoding session. It is read once at Open and
// never mutated afterwards; the expected frame byte size is derived from
// Width, Height and PixelFormat at that point and stays fixed for the
// session's lifetime.
type Config struct {
	// Frame geometry.
	Width       int
	Height      int
	PixelFormat PixelFormat

	// Rate is the declared frame rate passed to the encoder. Frames are
	// forwarded as fast as they are supplied; no wall-clock pacing happens
	// inside the session.
	Rate Rate

	// OutputPath is where the encoder writes the finished video.
	OutputPath string

	// Encoder invocation hints.
	Codec     string // default "libx264"
	Preset    string // default "fast"
	Container string // empty = derive from OutputPath extension
	Quality   int    // 0-63, lower is better; 0 = encoder default CRF
	Bitrate   int    // target bitrate in kbps; 0 = unset

	// FFmpegPath overrides encoder binary discovery. Resolution stays an
	// explicit per-session setting rather than ambient global state so
	// sessions are independently testable.
	FFmpegPath string

	// ExtraArgs are appended verbatim to the invocation, before the
	// output path.
	ExtraArgs []string
}

// Validate checks the configuration and returns the derived frame byte
// size.
func (c Config) Validate() (int, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return 0, fmt.Errorf("framepipe: dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if !c.PixelFormat.Valid() {
		return 0, fmt.Errorf("framepipe: unknown pixel format %q", string(c.PixelFormat))
	}
	if !c.Rate.Valid() {
		return 0, fmt.Errorf("framepipe: frame rate must be positive, got %s", c.Rate)
	}
	if c.OutputPath == "" {
		return 0, fmt.Errorf("framepipe: output path is empty")
	}
	if c.Quality < 0 || c.Quality > 63 {
		return 0, fmt.Errorf("framepipe: quality must be 0-63, got %d", c.Quality)
	}
	return c.PixelFormat.FrameSize(c.Width, c.Height)
}

// invocationParams maps the config onto the invocation builder's input.
func (c Config) invocationParams() ports.InvocationParams {
	return ports.InvocationParams{
		Width:       c.Width,
		Height:      c.Height,
		PixelFormat: string(c.PixelFormat),
		Framerate:   c.Rate.String(),
		OutputPath:  c.OutputPath,
		BinaryPath:  c.FFmpegPath,
		Codec:       c.Codec,
		Preset:      c.Preset,
		Container:   c.Container,
		Quality:     c.Quality,
		Bitrate:     c.Bitrate,
		ExtraArgs:   c.ExtraArgs,
	}
}
