package ffmpegproc

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/user/framepipe/pkg/ports"
)

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test uses unix shell commands")
	}
}

func TestSpawnNonexistentBinary(t *testing.T) {
	r := NewRunner()
	_, err := r.Spawn(ports.Invocation{Path: "/nonexistent/encoder"})
	if err == nil {
		t.Fatal("expected spawn to fail for nonexistent binary")
	}
}

func TestProcessHappyPath(t *testing.T) {
	requireUnix(t)

	tmp := filepath.Join(t.TempDir(), "out.bin")

	r := NewRunner()
	proc, err := r.Spawn(ports.Invocation{
		Path: "/bin/sh",
		Args: []string{"-c", "cat > " + tmp},
	})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	if proc.PID() <= 0 {
		t.Error("expected a positive pid")
	}
	if !proc.Running() {
		t.Error("expected process to be running")
	}

	payload := []byte("hello frames")
	if _, err := proc.Write(payload); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err := proc.CloseInput(); err != nil {
		t.Fatalf("CloseInput failed: %v", err)
	}
	// Repeated close is safe.
	if err := proc.CloseInput(); err != nil {
		t.Fatalf("second CloseInput failed: %v", err)
	}

	status := proc.Wait()
	if status.Code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", status.Code, status.Stderr)
	}
	if proc.Running() {
		t.Error("expected process to be stopped after Wait")
	}

	data, err := os.ReadFile(tmp)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("expected %q, got %q", payload, data)
	}
}

func TestProcessNonzeroExit(t *testing.T) {
	requireUnix(t)

	r := NewRunner()
	proc, err := r.Spawn(ports.Invocation{
		Path: "/bin/sh",
		Args: []string{"-c", "echo boom >&2; exit 3"},
	})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	proc.CloseInput()
	status := proc.Wait()
	if status.Code != 3 {
		t.Errorf("expected exit code 3, got %d", status.Code)
	}
	if status.Stderr != "boom\n" {
		t.Errorf("expected captured stderr, got %q", status.Stderr)
	}
}

func TestProcessWriteAfterExit(t *testing.T) {
	requireUnix(t)

	r := NewRunner()
	proc, err := r.Spawn(ports.Invocation{
		Path: "/bin/sh",
		Args: []string{"-c", "exit 0"},
	})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	proc.Wait()

	if _, err := proc.Write([]byte("late")); !errors.Is(err, ErrNotRunning) {
		t.Errorf("expected ErrNotRunning, got %v", err)
	}
}

func TestProcessTerminate(t *testing.T) {
	requireUnix(t)

	r := NewRunner()
	proc, err := r.Spawn(ports.Invocation{
		Path: "/bin/sh",
		Args: []string{"-c", "sleep 60"},
	})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		proc.Terminate()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Terminate did not reap the process in time")
	}

	if proc.Running() {
		t.Error("expected process to be stopped after Terminate")
	}
	// Terminate after exit is a no-op.
	if err := proc.Terminate(); err != nil {
		t.Errorf("second Terminate failed: %v", err)
	}
}

func TestProcessStderrDrained(t *testing.T) {
	requireUnix(t)

	// Emit far more stderr than a pipe buffer holds; without a drain the
	// process would block forever and Wait would hang.
	r := NewRunner()
	proc, err := r.Spawn(ports.Invocation{
		Path: "/bin/sh",
		Args: []string{"-c", "i=0; while [ $i -lt 20000 ]; do echo 'diagnostic line from the encoder' >&2; i=$((i+1)); done"},
	})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	proc.CloseInput()

	waited := make(chan ports.ExitStatus, 1)
	go func() { waited <- proc.Wait() }()

	select {
	case status := <-waited:
		if status.Code != 0 {
			t.Errorf("expected exit 0, got %d", status.Code)
		}
		if len(status.Stderr) == 0 {
			t.Error("expected captured stderr")
		}
		if len(status.Stderr) > maxStderrBytes {
			t.Errorf("stderr capture exceeds cap: %d bytes", len(status.Stderr))
		}
	case <-time.After(30 * time.Second):
		t.Fatal("process stalled; stderr is not being drained")
	}
}
