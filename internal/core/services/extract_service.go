package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/kamal-hamza/usedassets/internal/core/domain"
	"github.com/kamal-hamza/usedassets/internal/core/ports"
)

// assetRefPattern finds root-anchored image/video paths in attribute and string-literal contexts.
//
//	[="'`]                      preceded by =, a quote or a backtick
//	/                           starts at the root separator
//	[^"'`>\s ...]+              body: no quotes, backticks, '>' or whitespace
//	\.(?:png|jpg|jpeg|svg|mp4)  a recognized extension (any case)
//	[ "'`>]                     followed by a space, quote, backtick or '>'
//
// The body class widens RE2's ASCII \s to the full Unicode whitespace set.
var assetRefPattern = regexp.MustCompile(
	"(?i)[=\"'\x60]" +
		"(/[^\"'\x60>\\s\\v\\x1c-\\x1f\\x{85}\\p{Z}]+\\.(?:png|jpg|jpeg|svg|mp4))" +
		"[ \"'\x60>]",
)

// ExtractService finds asset references in a page source
type ExtractService struct {
	reader ports.DocumentReader
}

// NewExtractService creates a new extract service
func NewExtractService(reader ports.DocumentReader) *ExtractService {
	return &ExtractService{
		reader: reader,
	}
}

// Extract returns the unique asset paths referenced in content.
// Matches do not overlap: the terminating character is consumed by each match.
func (s *ExtractService) Extract(content string) domain.AssetSet {
	set := make(domain.AssetSet)
	for _, m := range assetRefPattern.FindAllStringSubmatch(content, -1) {
		set.Add(domain.AssetPath(m[1]))
	}
	return set
}

// ExtractFile reads the document at path and extracts its asset references
func (s *ExtractService) ExtractFile(ctx context.Context, path string) (domain.AssetSet, error) {
	content, err := s.reader.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return s.Extract(content), nil
}
