package repository

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// ErrInvalidEncoding is returned when a document is not valid UTF-8
var ErrInvalidEncoding = errors.New("document is not valid UTF-8")

// FileDocumentReader implements ports.DocumentReader
type FileDocumentReader struct {
	fs afero.Fs
}

// NewFileDocumentReader creates a reader backed by the OS filesystem
func NewFileDocumentReader() *FileDocumentReader {
	return NewFileDocumentReaderWithFs(afero.NewOsFs())
}

func NewFileDocumentReaderWithFs(fsys afero.Fs) *FileDocumentReader {
	return &FileDocumentReader{fs: fsys}
}

// Read loads the whole file; the handle is released before returning
func (r *FileDocumentReader) Read(ctx context.Context, path string) (string, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read page source: %w", err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}

	return string(data), nil
}
