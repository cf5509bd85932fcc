package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"

	"github.com/kamal-hamza/usedassets/internal/core/domain"
)

// FileAssetStore implements ports.AssetStore on an afero filesystem
type FileAssetStore struct {
	fs afero.Fs
}

// NewFileAssetStore creates a store backed by the OS filesystem
func NewFileAssetStore() *FileAssetStore {
	return NewFileAssetStoreWithFs(afero.NewOsFs())
}

// NewFileAssetStoreWithFs creates a store on any afero filesystem (e.g. MemMapFs in tests)
func NewFileAssetStoreWithFs(fsys afero.Fs) *FileAssetStore {
	return &FileAssetStore{fs: fsys}
}

// Exists follows symlinks, so a link to a regular file counts as present
func (s *FileAssetStore) Exists(ctx context.Context, path string) (bool, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		if isMissing(err) {
			return false, nil
		}
		return false, err
	}

	if !info.Mode().IsRegular() {
		return false, fmt.Errorf("%s: %w", path, domain.ErrNotRegularFile)
	}
	return true, nil
}

// isMissing reports stat failures that mean the path does not resolve to anything,
// such as a parent component that is a regular file (ENOTDIR) or a symlink loop.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ELOOP) ||
		errors.Is(err, syscall.EBADF)
}

// Copy behaves like a metadata-preserving copy: bytes, permission bits,
// access and modification times. An existing destination is truncated.
func (s *FileAssetStore) Copy(ctx context.Context, src, dst string) error {
	info, err := s.fs.Stat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", src, domain.ErrNotRegularFile)
	}

	if dinfo, err := s.fs.Stat(dst); err == nil && dinfo.IsDir() {
		return fmt.Errorf("%s: %w", dst, domain.ErrDestinationIsDir)
	}

	if err := s.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	in, err := s.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := s.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	// OpenFile only applies perm on create (and through umask)
	if err := s.fs.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}

	return s.fs.Chtimes(dst, accessTime(info), info.ModTime())
}

// List walks root and returns regular files relative to it. A missing root yields nothing.
func (s *FileAssetStore) List(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := afero.Walk(s.fs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func (s *FileAssetStore) Remove(ctx context.Context, path string) error {
	return s.fs.Remove(path)
}
