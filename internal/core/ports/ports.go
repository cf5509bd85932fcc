package ports

import (
	"context"
)

// DocumentReader defines the port for loading the page source that gets scanned
type DocumentReader interface {
	// Read returns the full text content of the document at path
	Read(ctx context.Context, path string) (string, error)
}

// AssetStore defines the port for filesystem operations on asset trees
type AssetStore interface {
	// Exists reports whether a regular file is present at path.
	// A missing path is (false, nil); a directory is (false, domain.ErrNotRegularFile).
	Exists(ctx context.Context, path string) (bool, error)

	// Copy copies bytes, mode and timestamps from src to dst, creating parents
	// and overwriting any existing file at dst
	Copy(ctx context.Context, src, dst string) error

	// List returns every regular file below root as root-relative paths
	List(ctx context.Context, root string) ([]string, error)

	// Remove deletes the file at path
	Remove(ctx context.Context, path string) error
}
