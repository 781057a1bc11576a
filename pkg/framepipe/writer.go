package framepipe

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"

	"github.com/user/framepipe/pkg/adapters/ffmpegproc"
	"github.com/user/framepipe/pkg/ports"
)

// validateFrame rejects a frame whose byte length disagrees with the
// session's expected size. Rejecting before any pipe interaction matters:
// the raw stream has no frame delimiters, so a single misaligned frame
// would desynchronize every frame after it.
func validateFrame(buf []byte, want int) error {
	if len(buf) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrFrameSize, len(buf), want)
	}
	return nil
}

// writeFull delivers the whole frame to the encoder's stdin. Partial
// writes are retried with the remainder until the frame is complete or the
// pipe fails hard; a frame must never be left half-delivered with the next
// frame's bytes following it.
func writeFull(proc ports.EncoderProcess, buf []byte) error {
	for len(buf) > 0 {
		n, err := proc.Write(buf)
		if err != nil {
			if isPipeClosed(err) {
				return ErrEncoderDied
			}
			return err
		}
		if n <= 0 {
			return io.ErrShortWrite
		}
		buf = buf[n:]
	}
	return nil
}

// isPipeClosed reports whether a write error means the process has gone
// away. os/exec closes the stdin pipe once the command exits, so both the
// kernel's EPIPE and Go's closed-pipe errors count.
func isPipeClosed(err error) bool {
	if errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, os.ErrClosed) || errors.Is(err, fs.ErrClosed) {
		return true
	}
	return errors.Is(err, ffmpegproc.ErrNotRunning) || errors.Is(err, ErrEncoderDied)
}
