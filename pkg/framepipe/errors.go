package framepipe

import (
	"errors"
	"fmt"
)

var (
	// ErrFrameSize is returned when a submitted frame's byte length
	// disagrees with the configured dimensions and pixel format. The
	// session stays open; the caller may fix the frame and resubmit.
	ErrFrameSize = errors.New("framepipe: frame size mismatch")

	// ErrSessionClosed is returned when frames are submitted after the
	// session has begun closing or has been finalized.
	ErrSessionClosed = errors.New("framepipe: session closed")

	// ErrEncoderDied is returned when the encoder process terminated or
	// closed its input before feeding was finished.
	ErrEncoderDied = errors.New("framepipe: encoder process died")
)

// SpawnError is returned by Open when the encoder executable could not be
// located or started.
type SpawnError struct {
	Path string // executable path, empty if it could not be resolved
	Err  error
}

func (e *SpawnError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("framepipe: spawn encoder: %v", e.Err)
	}
	return fmt.Sprintf("framepipe: spawn encoder %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ExitError is returned by Finish when the encoder process ran to
// completion but reported a nonzero exit status. Stderr carries the full
// diagnostic text the process emitted; the output file must not be
// treated as valid.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("framepipe: encoder exited with status %d", e.Code)
	}
	return fmt.Sprintf("framepipe: encoder exited with status %d\nstderr: %s", e.Code, e.Stderr)
}
