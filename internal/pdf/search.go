package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Search discovers notice PDFs waiting in the intake directory.
type Search struct {
	maxFileSize int64
	validator   *Validator
}

// NewSearch creates a search handler with the specified file size constraint.
func NewSearch(maxFileSize int64) *Search {
	return &Search{
		maxFileSize: maxFileSize,
		validator:   NewValidator(maxFileSize),
	}
}

// SearchDirectory finds notice PDFs under the given directory, optionally
// filtered by a fuzzy filename query.
func (s *Search) SearchDirectory(req SearchDirectoryRequest) (*SearchDirectoryResult, error) {
	if req.Directory == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}

	if _, err := os.Stat(req.Directory); os.IsNotExist(err) {
		return nil, fmt.Errorf("directory does not exist: %s", req.Directory)
	}

	absDirectory, err := filepath.Abs(req.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory path: %w", err)
	}

	var files []FileInfo
	query := strings.ToLower(strings.TrimSpace(req.Query))

	err = filepath.WalkDir(absDirectory, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // continue past unreadable entries
		}

		if d.IsDir() {
			// Hidden directories are never intake locations.
			if strings.HasPrefix(d.Name(), ".") && path != absDirectory {
				return filepath.SkipDir
			}
			return nil
		}

		if !isPDFFile(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		if err := s.validator.ValidateFileInfo(path, info); err != nil {
			return nil //nolint:nilerr // skip invalid files, keep walking
		}

		if query != "" && !matchesQuery(info.Name(), query) {
			return nil
		}

		files = append(files, FileInfo{
			Path:         path,
			Name:         info.Name(),
			Size:         info.Size(),
			ModifiedTime: info.ModTime().Format("2006-01-02 15:04:05"),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory: %w", err)
	}

	return &SearchDirectoryResult{
		Files:       files,
		TotalCount:  len(files),
		Directory:   absDirectory,
		SearchQuery: req.Query,
	}, nil
}

// FindPDFsInDirectory finds all notice PDFs in a directory without filtering.
func (s *Search) FindPDFsInDirectory(directory string) ([]FileInfo, error) {
	result, err := s.SearchDirectory(SearchDirectoryRequest{Directory: directory})
	if err != nil {
		return nil, err
	}
	return result.Files, nil
}

// FindPDFsInDirectoryLimited finds notice PDFs with a cap on the result count.
func (s *Search) FindPDFsInDirectoryLimited(directory string, limit int) ([]FileInfo, error) {
	files, err := s.FindPDFsInDirectory(directory)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}
	return files, nil
}

// CountPDFsInDirectory counts the valid notice PDFs in a directory.
func (s *Search) CountPDFsInDirectory(directory string) (int, error) {
	files, err := s.FindPDFsInDirectory(directory)
	if err != nil {
		return 0, err
	}
	return len(files), nil
}

// isPDFFile checks if a file has a PDF extension
func isPDFFile(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}

// matchesQuery performs fuzzy matching on the filename: exact substring first,
// then word-by-word containment.
func matchesQuery(filename, query string) bool {
	if query == "" {
		return true
	}

	fileName := strings.ToLower(filename)
	if strings.Contains(fileName, query) {
		return true
	}

	nameWithoutExt := strings.TrimSuffix(fileName, ".pdf")
	if strings.Contains(nameWithoutExt, query) {
		return true
	}

	words := splitIntoWords(nameWithoutExt)
	for _, queryWord := range splitIntoWords(query) {
		found := false
		for _, word := range words {
			if strings.Contains(word, queryWord) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// splitIntoWords splits a string into words using common separators
func splitIntoWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch r {
		case ' ', '_', '-', '.', '(', ')', '[', ']':
			return true
		}
		return false
	})
}
