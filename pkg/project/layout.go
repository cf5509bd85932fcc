package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kamal-hamza/usedassets/pkg/config"
)

// ErrSameRoots is returned when source and destination resolve to one directory
var ErrSameRoots = errors.New("source_root and dest_root must differ")

// Layout holds the resolved paths for one project
type Layout struct {
	RootPath   string
	ConfigPath string
	PagePath   string
	SourcePath string
	DestPath   string
}

// New resolves the configured paths against root.
// An empty root means the current working directory.
func New(root string, cfg *config.Config) (*Layout, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	l := &Layout{
		RootPath:   abs,
		ConfigPath: filepath.Join(abs, config.FileName),
		PagePath:   resolve(abs, cfg.Page),
		SourcePath: resolve(abs, cfg.SourceRoot),
		DestPath:   resolve(abs, cfg.DestRoot),
	}
	if l.SourcePath == l.DestPath {
		return nil, fmt.Errorf("%w (both %s)", ErrSameRoots, l.SourcePath)
	}

	return l, nil
}

// ConfigPathFor returns where the project config lives under root
func ConfigPathFor(root string) string {
	return filepath.Join(root, config.FileName)
}

func resolve(root, p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

// Rel returns path relative to the project root for display; absolute paths outside it are kept
func (l *Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.RootPath, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// Validate checks that the inputs a sync needs are present
func (l *Layout) Validate() error {
	info, err := os.Stat(l.PagePath)
	if err != nil {
		return fmt.Errorf("page source not found: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("page source %s is a directory", l.PagePath)
	}
	return nil
}
