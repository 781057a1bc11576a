// Package osfilesystem implements ports.FileSystem on the local disk.
package osfilesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/user/framepipe/pkg/ports"
)

// FileSystem reads and writes the local filesystem. Output files are
// created with filePerm and directories with dirPerm.
type FileSystem struct {
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// New creates a FileSystem with conventional permissions (0755 dirs,
// 0644 files).
func New() *FileSystem {
	return &FileSystem{dirPerm: 0755, filePerm: 0644}
}

// ReadFile returns the entire contents of a file.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file, creating missing parent directories.
// Frame dumps and encoder diagnostics land in directories that may not
// exist yet, so the write is self-sufficient.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, f.dirPerm); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, f.filePerm)
}

// MkdirAll creates a directory and any missing parents.
func (f *FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, f.dirPerm)
}

// Exists reports whether a file or directory is present.
func (f *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// Remove deletes a file or empty directory.
func (f *FileSystem) Remove(path string) error {
	return os.Remove(path)
}

var _ ports.FileSystem = (*FileSystem)(nil)
