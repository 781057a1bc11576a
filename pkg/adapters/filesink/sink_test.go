package filesink

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/user/framepipe/pkg/mocks"
)

func TestSinkEnabled(t *testing.T) {
	s := New("debug", mocks.NewFileSystem())
	if !s.Enabled() {
		t.Error("expected file sink to be enabled")
	}
}

func TestSaveInvocationJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	s := New("debug", fs)

	data := []byte(`{"path":"/usr/bin/ffmpeg"}`)
	if err := s.SaveInvocationJSON(data); err != nil {
		t.Fatalf("SaveInvocationJSON failed: %v", err)
	}

	got, ok := fs.Files[filepath.Join("debug", "invocation.json")]
	if !ok {
		t.Fatal("expected invocation.json to be written")
	}
	if !bytes.Equal(got, data) {
		t.Error("invocation content mismatch")
	}
}

func TestSaveRawFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	s := New("debug", fs)

	if err := s.SaveRawFrame(7, []byte{1, 2, 3}); err != nil {
		t.Fatalf("SaveRawFrame failed: %v", err)
	}

	path := filepath.Join("debug", "frames", "frame-0007.raw")
	if _, ok := fs.Files[path]; !ok {
		t.Fatalf("expected %s to be written, have %v", path, fs.Files)
	}
}

func TestSaveDiagnostics(t *testing.T) {
	fs := mocks.NewFileSystem()
	s := New("debug", fs)

	if err := s.SaveDiagnostics("frame=10 fps=30"); err != nil {
		t.Fatalf("SaveDiagnostics failed: %v", err)
	}

	got := fs.Files[filepath.Join("debug", "encoder-stderr.txt")]
	if string(got) != "frame=10 fps=30" {
		t.Errorf("unexpected diagnostics content %q", got)
	}
}
