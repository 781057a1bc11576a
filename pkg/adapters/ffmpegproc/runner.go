// Package ffmpegproc runs the external encoder process and owns its
// lifecycle: spawn, stdin writes, stderr capture, wait and terminate.
package ffmpegproc

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/user/framepipe/pkg/ports"
)

// ErrNotRunning is returned when writing to a process that has already
// terminated.
var ErrNotRunning = errors.New("ffmpegproc: process is not running")

// Runner spawns encoder processes. The zero value is not usable; use
// NewRunner.
type Runner struct {
	log ports.Logger
}

// NewRunner creates a Runner. A nil-safe logger can be attached with
// SetLogger.
func NewRunner() *Runner {
	return &Runner{}
}

// SetLogger attaches a logger used for process lifecycle debug messages.
func (r *Runner) SetLogger(log ports.Logger) {
	r.log = log.WithComponent("ffmpeg")
}

// Spawn starts the encoder with stdin piped and stderr drained by a
// background reader for the lifetime of the process. The drain prevents
// the classic pipe deadlock where the encoder stalls on a full stderr
// buffer while we stall writing frames to its stdin.
func (r *Runner) Spawn(inv ports.Invocation) (ports.EncoderProcess, error) {
	cmd := exec.Command(inv.Path, inv.Args...)

	stderr := newTailBuffer(maxStderrBytes)
	cmd.Stderr = stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("ffmpegproc: stdin pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	if r.log != nil {
		r.log.Debug("Started %s (pid %d)", inv.Path, cmd.Process.Pid)
	}

	p := &process{
		cmd:    cmd,
		stdin:  stdin,
		stderr: stderr,
		done:   make(chan struct{}),
	}

	// Single reaper: Wait is called exactly once, and everyone else
	// observes the outcome through the done channel.
	go func() {
		err := cmd.Wait()
		p.status = exitStatus(err, cmd)
		p.status.Stderr = stderr.String()
		close(p.done)
	}()

	return p, nil
}

// process implements ports.EncoderProcess over os/exec.
type process struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr *tailBuffer

	done      chan struct{}
	status    ports.ExitStatus
	closeOnce sync.Once
}

// PID returns the process id.
func (p *process) PID() int {
	return p.cmd.Process.Pid
}

// Write forwards bytes to the process stdin. Once the process has exited,
// writes fail with ErrNotRunning; a process that dies mid-write surfaces
// as a pipe error from the write itself. Callers classify both as encoder
// death.
func (p *process) Write(b []byte) (int, error) {
	select {
	case <-p.done:
		return 0, ErrNotRunning
	default:
	}
	return p.stdin.Write(b)
}

// CloseInput signals end-of-stream on stdin. Safe to call repeatedly.
func (p *process) CloseInput() error {
	var err error
	p.closeOnce.Do(func() {
		err = p.stdin.Close()
	})
	return err
}

// Wait blocks until the process terminates and returns its exit status and
// captured stderr. Safe to call from multiple places; all callers see the
// same status.
func (p *process) Wait() ports.ExitStatus {
	<-p.done
	return p.status
}

// Terminate forcibly ends the process and reaps it. Calling it on an
// already-exited process is a no-op.
func (p *process) Terminate() error {
	select {
	case <-p.done:
		return nil
	default:
	}
	if err := p.cmd.Process.Kill(); err != nil {
		// The process may have exited between the check and the kill.
		<-p.done
		return nil
	}
	<-p.done
	return nil
}

// Running reports whether the process is still alive.
func (p *process) Running() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// exitStatus derives the portable exit status from cmd.Wait's error.
func exitStatus(err error, cmd *exec.Cmd) ports.ExitStatus {
	if err == nil {
		return ports.ExitStatus{Code: 0}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return ports.ExitStatus{Code: exitErr.ExitCode()}
	}
	if cmd.ProcessState != nil {
		return ports.ExitStatus{Code: cmd.ProcessState.ExitCode()}
	}
	return ports.ExitStatus{Code: -1}
}

// Ensure Runner implements ports.EncoderRunner
var _ ports.EncoderRunner = (*Runner)(nil)
