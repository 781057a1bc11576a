package ffmpegproc

import (
	"sync"
)

// maxStderrBytes caps how much diagnostic output is retained. ffmpeg
// prints a progress line per written packet, so long encodes would
// otherwise grow the buffer without bound; the tail is what matters for
// error reports.
const maxStderrBytes = 64 * 1024

// tailBuffer is an io.Writer that keeps only the last max bytes written.
// It is written by the exec package's copier goroutine and read after the
// process exits, so access is guarded.
type tailBuffer struct {
	mu  sync.Mutex
	max int
	buf []byte
}

func newTailBuffer(max int) *tailBuffer {
	return &tailBuffer{max: max}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(p) >= t.max {
		t.buf = append(t.buf[:0], p[len(p)-t.max:]...)
		return len(p), nil
	}
	t.buf = append(t.buf, p...)
	if overflow := len(t.buf) - t.max; overflow > 0 {
		t.buf = append(t.buf[:0], t.buf[overflow:]...)
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.buf)
}
