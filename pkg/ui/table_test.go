package ui

import (
	"strings"
	"testing"
)

func TestTable_Render(t *testing.T) {
	table := NewTable("ASSET", "STATE")
	table.AddRow("/images/logo.png", "synced")
	table.AddRow("/a.svg", "missing")

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines:\n%s", len(lines), out)
	}

	if !strings.Contains(lines[2], "/images/logo.png  synced") {
		t.Errorf("unexpected row %q", lines[2])
	}
	// Short asset padded to the widest cell
	if !strings.Contains(lines[3], "/a.svg            missing") {
		t.Errorf("unexpected row %q", lines[3])
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	if out := NewTable().Render(); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}
