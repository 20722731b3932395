// Package source reads and rewrites source text files on disk.
package source

import (
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// FileRepository implements repositories.SourceRepository on the local filesystem
type FileRepository struct{}

// NewFileRepository creates a new file-backed source repository
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// ReadSource returns the content of a UTF-8 text file
func (r *FileRepository) ReadSource(path string) (string, error) {
	//nolint:gosec // G304: path is the operator-provided source file
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	if !utf8.Valid(data) {
		return "", errors.Errorf("%s is not valid UTF-8", path)
	}
	return string(data), nil
}

// WriteSource replaces the file content, keeping its permissions
func (r *FileRepository) WriteSource(path, content string) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	//nolint:gosec // G306: source files keep their existing permissions
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
