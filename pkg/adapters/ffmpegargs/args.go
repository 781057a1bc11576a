// Package ffmpegargs builds the ffmpeg command line for a raw-frame
// encoding session and owns ffmpeg binary discovery.
package ffmpegargs

import (
	"fmt"

	"github.com/user/framepipe/pkg/ports"
)

// Builder implements ports.InvocationBuilder for ffmpeg's rawvideo input.
type Builder struct{}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build resolves the ffmpeg binary and assembles its argument list. The
// input side is fully determined by the frame geometry: ffmpeg reads the
// raw stream from stdin and splits it into frames purely by byte count.
func (b *Builder) Build(params ports.InvocationParams) (ports.Invocation, error) {
	path, err := FindFFmpeg(params.BinaryPath)
	if err != nil {
		return ports.Invocation{}, err
	}

	codec := params.Codec
	if codec == "" {
		codec = "libx264"
	}
	preset := params.Preset
	if preset == "" {
		preset = "fast"
	}

	args := []string{
		"-y",             // Overwrite output
		"-f", "rawvideo", // Input format
		"-pixel_format", params.PixelFormat, // Input pixel format
		"-video_size", fmt.Sprintf("%dx%d", params.Width, params.Height), // Input size
		"-framerate", params.Framerate, // Input frame rate
		"-i", "pipe:0", // Read from stdin
		"-c:v", codec, // Output codec
		"-preset", preset, // Encoding preset
		"-pix_fmt", "yuv420p", // Output pixel format
		"-an", // No audio track
	}

	if params.Quality > 0 {
		// Map our 0-63 scale to x264's CRF range (0-51).
		crf := params.Quality * 51 / 63
		if crf > 51 {
			crf = 51
		}
		args = append(args, "-crf", fmt.Sprintf("%d", crf))
	}

	if params.Bitrate > 0 {
		args = append(args, "-b:v", fmt.Sprintf("%dk", params.Bitrate))
	}

	if params.Container != "" {
		args = append(args, "-f", params.Container)
	}

	args = append(args, params.ExtraArgs...)
	args = append(args, params.OutputPath)

	return ports.Invocation{Path: path, Args: args}, nil
}

// Ensure Builder implements ports.InvocationBuilder
var _ ports.InvocationBuilder = (*Builder)(nil)
