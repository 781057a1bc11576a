// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"path/filepath"

	"github.com/user/framepipe/pkg/ports"
)

// Sink saves debug output to files under a base directory.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new Sink.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveInvocationJSON saves the resolved encoder invocation as JSON.
func (s *Sink) SaveInvocationJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "invocation.json")
	return s.fs.WriteFile(path, data)
}

// SaveRawFrame saves the raw bytes of a single submitted frame.
func (s *Sink) SaveRawFrame(index int, data []byte) error {
	dir := filepath.Join(s.baseDir, "frames")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.raw", index))
	return s.fs.WriteFile(path, data)
}

// SaveDiagnostics saves the diagnostic text captured from the encoder.
func (s *Sink) SaveDiagnostics(text string) error {
	path := filepath.Join(s.baseDir, "encoder-stderr.txt")
	return s.fs.WriteFile(path, []byte(text))
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
