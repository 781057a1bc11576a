// Package framepipe assembles a video file from a sequence of raw image
// frames by streaming them into an external encoder process.
//
// A Session owns exactly one encoder subprocess. The caller opens a
// session with a Config, feeds it frames one at a time, and finishes it to
// obtain the output path. AddFrame may block while the encoder catches up;
// the operating system's pipe buffer is the flow control mechanism, and no
// frames are queued internally.
package framepipe

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/user/framepipe/pkg/adapters/ffmpegargs"
	"github.com/user/framepipe/pkg/adapters/ffmpegproc"
	"github.com/user/framepipe/pkg/adapters/logger"
	"github.com/user/framepipe/pkg/adapters/nullsink"
	"github.com/user/framepipe/pkg/adapters/osfilesystem"
	"github.com/user/framepipe/pkg/ports"
)

// sessionState tracks the session lifecycle.
type sessionState int

const (
	stateOpen sessionState = iota
	stateClosing
	stateFinalized
)

// Session is a live encoding session. It is exclusively owned by one
// caller context; concurrent AddFrame calls on the same session are not
// supported. The mutex keeps the lifecycle consistent when Close is
// invoked from a cleanup goroutine. Independent sessions may run
// concurrently.
type Session struct {
	mu sync.Mutex

	cfg       Config
	frameSize int

	proc  ports.EncoderProcess
	state sessionState

	frameCount int

	log  ports.Logger
	sink ports.DebugSink
}

// Option customizes session construction, mainly for injecting adapters in
// tests.
type Option func(*deps)

type deps struct {
	runner  ports.EncoderRunner
	builder ports.InvocationBuilder
	fs      ports.FileSystem
	log     ports.Logger
	sink    ports.DebugSink
}

// WithRunner replaces the process runner.
func WithRunner(r ports.EncoderRunner) Option {
	return func(d *deps) { d.runner = r }
}

// WithInvocationBuilder replaces the invocation builder.
func WithInvocationBuilder(b ports.InvocationBuilder) Option {
	return func(d *deps) { d.builder = b }
}

// WithFileSystem replaces the file system adapter.
func WithFileSystem(fs ports.FileSystem) Option {
	return func(d *deps) { d.fs = fs }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log ports.Logger) Option {
	return func(d *deps) { d.log = log }
}

// WithDebugSink sets a sink that receives the resolved invocation, every
// raw frame, and the encoder diagnostics.
func WithDebugSink(sink ports.DebugSink) Option {
	return func(d *deps) { d.sink = sink }
}

// Open validates the configuration and spawns the encoder process. On
// success the session is ready to accept frames. The caller must end the
// session with Finish, or with Close if it is abandoned early; either way
// the subprocess is released exactly once.
func Open(cfg Config, opts ...Option) (*Session, error) {
	d := deps{
		builder: ffmpegargs.NewBuilder(),
		fs:      osfilesystem.New(),
		log:     logger.NewNoop(),
		sink:    nullsink.New(),
	}
	for _, opt := range opts {
		opt(&d)
	}
	if d.runner == nil {
		runner := ffmpegproc.NewRunner()
		runner.SetLogger(d.log)
		d.runner = runner
	}

	frameSize, err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	inv, err := d.builder.Build(cfg.invocationParams())
	if err != nil {
		return nil, &SpawnError{Err: err}
	}

	if dir := filepath.Dir(cfg.OutputPath); dir != "" && dir != "." {
		if err := d.fs.MkdirAll(dir); err != nil {
			return nil, &SpawnError{Path: inv.Path, Err: err}
		}
	}

	log := d.log.WithComponent("session")
	log.Debug("Spawning encoder: %s", inv.Path)

	if d.sink.Enabled() {
		if data, err := json.Marshal(inv); err == nil {
			if err := d.sink.SaveInvocationJSON(data); err != nil {
				log.Warn("Failed to save debug invocation: %v", err)
			}
		}
	}

	proc, err := d.runner.Spawn(inv)
	if err != nil {
		return nil, &SpawnError{Path: inv.Path, Err: err}
	}

	log.Debug("Encoder started: pid %d, frame size %d bytes", proc.PID(), frameSize)

	return &Session{
		cfg:       cfg,
		frameSize: frameSize,
		proc:      proc,
		state:     stateOpen,
		log:       log,
		sink:      d.sink,
	}, nil
}

// FrameSize returns the exact byte length every submitted frame must have.
func (s *Session) FrameSize() int {
	return s.frameSize
}

// Frames returns the number of frames fed so far.
func (s *Session) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameCount
}

// AddFrame validates one raw frame and writes it to the encoder. It may
// block while the encoder's input buffer is full; that blocking is the
// intended backpressure. A size mismatch leaves the session open and the
// feed count unchanged. If the encoder has already died, the session moves
// to closing and ErrEncoderDied is returned.
func (s *Session) AddFrame(buf []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addFrame(buf)
}

func (s *Session) addFrame(buf []byte) error {
	if s.state != stateOpen {
		return ErrSessionClosed
	}

	if err := validateFrame(buf, s.frameSize); err != nil {
		return err
	}

	if !s.proc.Running() {
		s.log.Debug("Encoder found dead before frame %d", s.frameCount)
		s.abort()
		return ErrEncoderDied
	}

	if s.sink.Enabled() {
		if err := s.sink.SaveRawFrame(s.frameCount, buf); err != nil {
			s.log.Warn("Failed to save debug frame %d: %v", s.frameCount, err)
		}
	}

	if err := writeFull(s.proc, buf); err != nil {
		s.log.Debug("Frame %d write failed: %v", s.frameCount, err)
		s.abort()
		if err == ErrEncoderDied {
			return err
		}
		return fmt.Errorf("framepipe: write frame %d: %w", s.frameCount, err)
	}

	s.frameCount++
	return nil
}

// Finish closes the encoder's input, waits for it to exit, and inspects
// the exit status. On success it returns the configured output path. On a
// nonzero exit it returns an ExitError carrying the captured diagnostics,
// and the output must be treated as incomplete. The session transitions to
// finalized exactly once; calling Finish again returns ErrSessionClosed.
func (s *Session) Finish() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateFinalized:
		return "", ErrSessionClosed
	case stateClosing:
		// The encoder died mid-feed; reap it and report.
		s.state = stateFinalized
		status := s.proc.Wait()
		s.saveDiagnostics(status.Stderr)
		return "", ErrEncoderDied
	}

	s.state = stateFinalized

	s.log.Debug("Closing encoder input after %d frames", s.frameCount)
	if err := s.proc.CloseInput(); err != nil {
		s.proc.Terminate()
		status := s.proc.Wait()
		s.saveDiagnostics(status.Stderr)
		return "", fmt.Errorf("framepipe: close encoder input: %w", err)
	}

	status := s.proc.Wait()
	s.saveDiagnostics(status.Stderr)

	if !status.Success() {
		s.log.Debug("Encoder exited with status %d", status.Code)
		return "", &ExitError{Code: status.Code, Stderr: status.Stderr}
	}

	s.log.Debug("Encoder finished: %s", s.cfg.OutputPath)
	return s.cfg.OutputPath, nil
}

// Close releases the session without waiting for a complete video. If the
// session was already finalized it does nothing, so it is safe to defer
// right after Open. The subprocess is terminated and reaped; no partial
// output guarantee is made.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateFinalized {
		return nil
	}
	s.state = stateFinalized

	s.log.Debug("Abandoning session after %d frames", s.frameCount)
	s.proc.CloseInput()
	if err := s.proc.Terminate(); err != nil {
		return fmt.Errorf("framepipe: terminate encoder: %w", err)
	}
	status := s.proc.Wait()
	s.saveDiagnostics(status.Stderr)
	return nil
}

// abort moves a live session to closing and reaps the dead process so the
// pid is not leaked while the caller decides what to do.
func (s *Session) abort() {
	s.state = stateClosing
	s.proc.CloseInput()
	s.proc.Terminate()
}

func (s *Session) saveDiagnostics(text string) {
	if s.sink.Enabled() && text != "" {
		if err := s.sink.SaveDiagnostics(text); err != nil {
			s.log.Warn("Failed to save encoder diagnostics: %v", err)
		}
	}
}
