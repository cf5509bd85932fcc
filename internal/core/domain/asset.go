package domain

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
)

// Extensions are the asset formats recognized in page sources
var Extensions = []string{".png", ".jpg", ".jpeg", ".svg", ".mp4"}

var (
	ErrEmptyAssetPath   = errors.New("asset path is empty after stripping separators")
	ErrNotRegularFile   = errors.New("source asset is not a regular file")
	ErrOutsideRoot      = errors.New("asset path escapes its root directory")
	ErrDestinationIsDir = errors.New("destination exists as a directory")
	ErrMissingRootPath  = errors.New("root directory not configured")
)

// AssetPath is a root-anchored reference found in a page source (e.g. /images/logo.png).
// It is opaque text until it is resolved against a root at copy time.
type AssetPath string

// Relative strips leading and trailing separators, leaving a root-relative path
func (p AssetPath) Relative() string {
	return strings.Trim(string(p), "/")
}

// Validate checks that the path still names something after stripping
func (p AssetPath) Validate() error {
	if p.Relative() == "" {
		return ErrEmptyAssetPath
	}
	return nil
}

// Resolve joins the path onto root, refusing paths that climb out of it
func (p AssetPath) Resolve(root string) (string, error) {
	if root == "" {
		return "", ErrMissingRootPath
	}
	if err := p.Validate(); err != nil {
		return "", err
	}

	rel := filepath.FromSlash(p.Relative())
	if !filepath.IsLocal(rel) {
		return "", ErrOutsideRoot
	}

	return filepath.Join(root, rel), nil
}

// HasKnownExtension reports whether the path ends in a recognized extension (case-insensitive)
func (p AssetPath) HasKnownExtension() bool {
	lower := strings.ToLower(string(p))
	for _, ext := range Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// AssetSet holds the unique asset paths referenced by one document
type AssetSet map[AssetPath]struct{}

// NewAssetSet builds a set from the given paths, dropping duplicates
func NewAssetSet(paths ...AssetPath) AssetSet {
	set := make(AssetSet, len(paths))
	for _, p := range paths {
		set.Add(p)
	}
	return set
}

// Add inserts a path
func (s AssetSet) Add(p AssetPath) {
	s[p] = struct{}{}
}

// Contains reports whether p is in the set
func (s AssetSet) Contains(p AssetPath) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of unique paths
func (s AssetSet) Len() int {
	return len(s)
}

// Sorted returns the paths in lexical order.
// Order carries no meaning; it only keeps output stable between runs.
func (s AssetSet) Sorted() []AssetPath {
	paths := make([]AssetPath, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })
	return paths
}

// RelativeSet returns the cleaned root-relative forms of every path, for prune lookups.
// Keys match what Resolve joins onto a root, so /img//a.png and /img/a.png collapse.
func (s AssetSet) RelativeSet() map[string]bool {
	rels := make(map[string]bool, len(s))
	for p := range s {
		rels[filepath.Clean(filepath.FromSlash(p.Relative()))] = true
	}
	return rels
}

// CopyStatus is the outcome of reconciling a single asset
type CopyStatus int

const (
	StatusCopied CopyStatus = iota
	StatusMissingSource
	StatusOutsideRoot
	StatusWouldCopy
	StatusPruned
)

// String returns a short label for tables and logs
func (s CopyStatus) String() string {
	switch s {
	case StatusCopied:
		return "copied"
	case StatusMissingSource:
		return "missing"
	case StatusOutsideRoot:
		return "outside-root"
	case StatusWouldCopy:
		return "would-copy"
	case StatusPruned:
		return "pruned"
	default:
		return "unknown"
	}
}

// IsWarning reports whether the status is a non-fatal problem the user should see
func (s CopyStatus) IsWarning() bool {
	return s == StatusMissingSource || s == StatusOutsideRoot
}

// CopyResult records what happened to one asset during a run
type CopyResult struct {
	Asset       AssetPath
	Source      string
	Destination string
	Status      CopyStatus
}

// AssetStatus describes where a referenced asset is currently present
type AssetStatus struct {
	Asset       AssetPath
	Source      string
	Destination string
	InSource    bool
	InDest      bool
	OutsideRoot bool
}

// State summarizes the status as a single label
func (s AssetStatus) State() string {
	switch {
	case s.OutsideRoot:
		return "outside-root"
	case !s.InSource && s.InDest:
		return "orphaned"
	case !s.InSource:
		return "missing"
	case s.InDest:
		return "synced"
	default:
		return "pending"
	}
}
