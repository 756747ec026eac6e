package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReader_ReadFile_Errors(t *testing.T) {
	reader := NewReader(1024) // 1KB limit

	tempDir, err := os.MkdirTemp("", "fnol_reader_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	largePath := filepath.Join(tempDir, "large.pdf")
	if err := os.WriteFile(largePath, make([]byte, 4096), 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	textPath := filepath.Join(tempDir, "notice.txt")
	if err := os.WriteFile(textPath, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		errorMsg string
	}{
		{
			name:     "empty path",
			path:     "",
			errorMsg: "path cannot be empty",
		},
		{
			name:     "non-existent file",
			path:     filepath.Join(tempDir, "missing.pdf"),
			errorMsg: "file does not exist",
		},
		{
			name:     "oversized file",
			path:     largePath,
			errorMsg: "file too large",
		},
		{
			name:     "non-PDF extension",
			path:     textPath,
			errorMsg: "not a PDF",
		},
		{
			name:     "directory",
			path:     tempDir,
			errorMsg: "is a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := reader.ReadFile(ReadFileRequest{Path: tt.path})
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if result != nil {
				t.Error("result should be nil on error")
			}
			if !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errorMsg, err.Error())
			}
		})
	}
}

func TestReader_ReadFile_NotAPDF(t *testing.T) {
	reader := NewReader(1024 * 1024)

	tempDir, err := os.MkdirTemp("", "fnol_reader_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// A .pdf extension with garbage content fails at open time.
	fakePath := filepath.Join(tempDir, "fake.pdf")
	if err := os.WriteFile(fakePath, []byte("this is not pdf data"), 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	if _, err := reader.ReadFile(ReadFileRequest{Path: fakePath}); err == nil {
		t.Error("expected error for malformed PDF content")
	}
}
