package services

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"unicode"

	"github.com/kamal-hamza/usedassets/internal/core/domain"
	"github.com/kamal-hamza/usedassets/internal/core/ports/mocks"
)

func newExtractor() *ExtractService {
	return NewExtractService(mocks.NewMockDocumentReader(nil))
}

func assertSet(t *testing.T, got domain.AssetSet, want ...string) {
	t.Helper()
	if got.Len() != len(want) {
		t.Fatalf("expected %d paths %v, got %d: %v", len(want), want, got.Len(), got.Sorted())
	}
	for _, w := range want {
		if !got.Contains(domain.AssetPath(w)) {
			t.Errorf("expected %q in %v", w, got.Sorted())
		}
	}
}

func TestExtract_AttributeAndObjectLiteral(t *testing.T) {
	content := `<img src="/images/logo.png">
const pairs = [{ 'before': '/a/b/prev.jpg' }];`

	assertSet(t, newExtractor().Extract(content), "/images/logo.png", "/a/b/prev.jpg")
}

func TestExtract_CaseInsensitiveExtension(t *testing.T) {
	assertSet(t, newExtractor().Extract(`<img src="/images/logo.PNG">`), "/images/logo.PNG")
	assertSet(t, newExtractor().Extract(`<img src='/x/Photo.JpEg'>`), "/x/Photo.JpEg")
}

func TestExtract_Deduplicates(t *testing.T) {
	content := `<img src="/logo.png"><img src="/logo.png"> "/logo.png" '/logo.png'`
	assertSet(t, newExtractor().Extract(content), "/logo.png")
}

func TestExtract_AllExtensions(t *testing.T) {
	content := `"/a.png" "/b.jpg" "/c.jpeg" "/d.svg" "/e.mp4" "/f.gif" "/g.webp"`
	assertSet(t, newExtractor().Extract(content), "/a.png", "/b.jpg", "/c.jpeg", "/d.svg", "/e.mp4")
}

func TestExtract_Delimiters(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"double quotes", `src="/a.png"`, []string{"/a.png"}},
		{"single quotes", `src='/a.png'`, []string{"/a.png"}},
		{"backticks", "const v = `/videos/demo.mp4`;", []string{"/videos/demo.mp4"}},
		{"unquoted attribute then space", `<img src=/a.png alt="x">`, []string{"/a.png"}},
		{"unquoted attribute then gt", `<img src=/a.png>`, []string{"/a.png"}},
		{"colon prefix is not enough", `url:/a.png"`, nil},
		{"relative path", `src="images/a.png"`, nil},
		{"bad terminator", `url("/a.png)`, nil},
		{"extension must end the path", `"/a.png.bak"`, nil},
		{"query string", `"/a.png?v=1"`, nil},
		{"whitespace in body", `"/my image.png"`, nil},
		{"tab in body", "\"/my\timage.png\"", nil},
		{"non-breaking space in body", "\"/my\u00a0image.png\"", nil},
		{"gt in body", `"/a>b.png"`, nil},
		{"terminator consumed", `'/a.png'/b.png'`, []string{"/a.png"}},
		{"nested directories", `srcset="/img/2x/hero.svg 2x"`, []string{"/img/2x/hero.svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSet(t, newExtractor().Extract(tt.content), tt.want...)
		})
	}
}

func TestExtract_Properties(t *testing.T) {
	content := `
<script>
	const comparisons = [
		{ before: "/cmp/one_before.jpg", after: "/cmp/one_after.jpg" },
		{ before: "/cmp/one_before.jpg", after: "/cmp/two after.jpg" },
	];
	const video = ` + "`/videos/Clip.MP4`" + `;
</script>
<img src="/icons/a.svg"> <img src="/icons/a.svg"/>
<video src="/not/a/video.mov">`

	set := newExtractor().Extract(content)
	for _, p := range set.Sorted() {
		if !p.HasKnownExtension() {
			t.Errorf("extracted path without known extension: %q", p)
		}
		if strings.IndexFunc(string(p), unicode.IsSpace) >= 0 {
			t.Errorf("extracted path contains whitespace: %q", p)
		}
		if !strings.HasPrefix(string(p), "/") {
			t.Errorf("extracted path is not root-anchored: %q", p)
		}
	}

	assertSet(t, set, "/cmp/one_before.jpg", "/cmp/one_after.jpg", "/videos/Clip.MP4", "/icons/a.svg")
}

func TestExtractFile(t *testing.T) {
	reader := mocks.NewMockDocumentReader(map[string]string{
		"src/routes/+page.svelte": `<img src="/images/logo.png">`,
	})
	svc := NewExtractService(reader)

	set, err := svc.ExtractFile(context.Background(), "src/routes/+page.svelte")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSet(t, set, "/images/logo.png")

	if _, err := svc.ExtractFile(context.Background(), "missing.svelte"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
}
