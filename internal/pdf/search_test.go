package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

// newSearchTestDir builds an intake-like directory tree with a few notice
// PDFs, a hidden directory, and a non-PDF file.
func newSearchTestDir(t *testing.T) string {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "fnol_search_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	files := []string{
		"acord-auto-claim.pdf",
		"water_damage_notice.pdf",
		"nested/theft-report.pdf",
	}
	for _, name := range files {
		path := filepath.Join(tempDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, make([]byte, 512), 0o644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}

	// These must never appear in search results.
	if err := os.MkdirAll(filepath.Join(tempDir, ".hidden"), 0o750); err != nil {
		t.Fatalf("failed to create hidden dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tempDir, ".hidden", "secret.pdf"), make([]byte, 512), 0o644); err != nil {
		t.Fatalf("failed to create hidden file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tempDir, "readme.txt"), []byte("notes"), 0o644); err != nil {
		t.Fatalf("failed to create text file: %v", err)
	}

	return tempDir
}

func TestSearch_SearchDirectory(t *testing.T) {
	search := NewSearch(1024 * 1024)
	tempDir := newSearchTestDir(t)

	result, err := search.SearchDirectory(SearchDirectoryRequest{Directory: tempDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalCount != 3 {
		t.Errorf("expected 3 PDFs, got %d", result.TotalCount)
	}
	for _, file := range result.Files {
		if file.Name == "secret.pdf" {
			t.Error("hidden directory contents should be skipped")
		}
		if file.Name == "readme.txt" {
			t.Error("non-PDF files should be skipped")
		}
	}
}

func TestSearch_SearchDirectory_Query(t *testing.T) {
	search := NewSearch(1024 * 1024)
	tempDir := newSearchTestDir(t)

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{name: "substring match", query: "auto", wantCount: 1},
		{name: "word match across separators", query: "water damage", wantCount: 1},
		{name: "no match", query: "hurricane", wantCount: 0},
		{name: "empty query matches all", query: "", wantCount: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := search.SearchDirectory(SearchDirectoryRequest{
				Directory: tempDir,
				Query:     tt.query,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.TotalCount != tt.wantCount {
				t.Errorf("query %q: expected %d results, got %d", tt.query, tt.wantCount, result.TotalCount)
			}
		})
	}
}

func TestSearch_SearchDirectory_Errors(t *testing.T) {
	search := NewSearch(1024 * 1024)

	if _, err := search.SearchDirectory(SearchDirectoryRequest{Directory: ""}); err == nil {
		t.Error("expected error for empty directory")
	}
	if _, err := search.SearchDirectory(SearchDirectoryRequest{Directory: "/non/existent/dir"}); err == nil {
		t.Error("expected error for non-existent directory")
	}
}

func TestSearch_FindPDFsInDirectoryLimited(t *testing.T) {
	search := NewSearch(1024 * 1024)
	tempDir := newSearchTestDir(t)

	files, err := search.FindPDFsInDirectoryLimited(tempDir, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("expected limit of 2 files, got %d", len(files))
	}

	count, err := search.CountPDFsInDirectory(tempDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count of 3, got %d", count)
	}
}

func TestMatchesQuery(t *testing.T) {
	tests := []struct {
		filename string
		query    string
		want     bool
	}{
		{"acord-auto-claim.pdf", "acord", true},
		{"acord-auto-claim.pdf", "claim auto", true},
		{"acord-auto-claim.pdf", "fire", false},
		{"Water_Damage_Notice.pdf", "water", true},
		{"notice.pdf", "", true},
	}

	for _, tt := range tests {
		if got := matchesQuery(tt.filename, tt.query); got != tt.want {
			t.Errorf("matchesQuery(%q, %q) = %v, want %v", tt.filename, tt.query, got, tt.want)
		}
	}
}

func TestIsPDFFile(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"notice.pdf", true},
		{"NOTICE.PDF", true},
		{"notice.txt", false},
		{"notice", false},
	}

	for _, tt := range tests {
		if got := isPDFFile(tt.filename); got != tt.want {
			t.Errorf("isPDFFile(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}
