package mocks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// MockAssetStore is an in-memory implementation of the AssetStore interface for testing
type MockAssetStore struct {
	mu      sync.Mutex
	files   map[string]string
	copies  []string
	removed []string

	// CopyErr, when set, is returned by Copy for the matching source path
	CopyErr map[string]error
	// ExistsErr, when set, is returned by Exists for the matching path
	ExistsErr map[string]error
}

// NewMockAssetStore creates a new mock asset store
func NewMockAssetStore() *MockAssetStore {
	return &MockAssetStore{
		files:     make(map[string]string),
		CopyErr:   make(map[string]error),
		ExistsErr: make(map[string]error),
	}
}

// AddFile seeds a file at path
func (m *MockAssetStore) AddFile(path, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = content
}

// Content returns the stored content for path
func (m *MockAssetStore) Content(path string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.files[filepath.Clean(path)]
	return c, ok
}

// Copies returns the destination paths written so far, in call order
func (m *MockAssetStore) Copies() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.copies...)
}

// Removed returns the paths deleted so far, in call order
func (m *MockAssetStore) Removed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.removed...)
}

func (m *MockAssetStore) Exists(ctx context.Context, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if err, ok := m.ExistsErr[path]; ok {
		return false, err
	}
	_, ok := m.files[path]
	return ok, nil
}

func (m *MockAssetStore) Copy(ctx context.Context, src, dst string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	src, dst = filepath.Clean(src), filepath.Clean(dst)
	if err, ok := m.CopyErr[src]; ok {
		return err
	}
	content, ok := m.files[src]
	if !ok {
		return fmt.Errorf("copy %s: %w", src, os.ErrNotExist)
	}
	m.files[dst] = content
	m.copies = append(m.copies, dst)
	return nil
}

func (m *MockAssetStore) List(ctx context.Context, root string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prefix := filepath.Clean(root) + string(filepath.Separator)
	var out []string
	for path := range m.files {
		if strings.HasPrefix(path, prefix) {
			out = append(out, strings.TrimPrefix(path, prefix))
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *MockAssetStore) Remove(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if _, ok := m.files[path]; !ok {
		return fmt.Errorf("remove %s: %w", path, os.ErrNotExist)
	}
	delete(m.files, path)
	m.removed = append(m.removed, path)
	return nil
}

// MockDocumentReader serves documents from memory
type MockDocumentReader struct {
	Docs map[string]string
	Err  error
}

// NewMockDocumentReader creates a reader seeded with docs
func NewMockDocumentReader(docs map[string]string) *MockDocumentReader {
	if docs == nil {
		docs = make(map[string]string)
	}
	return &MockDocumentReader{Docs: docs}
}

func (m *MockDocumentReader) Read(ctx context.Context, path string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	doc, ok := m.Docs[path]
	if !ok {
		return "", fmt.Errorf("read %s: %w", path, os.ErrNotExist)
	}
	return doc, nil
}
