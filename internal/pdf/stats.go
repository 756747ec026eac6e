package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Stats reports metadata about notice PDFs.
type Stats struct {
	maxFileSize int64
	validator   *Validator
	search      *Search
}

// NewStats creates a stats analyzer with the specified file size constraint.
func NewStats(maxFileSize int64) *Stats {
	return &Stats{
		maxFileSize: maxFileSize,
		validator:   NewValidator(maxFileSize),
		search:      NewSearch(maxFileSize),
	}
}

// GetFileStats returns detailed statistics about a single notice PDF.
func (s *Stats) GetFileStats(req StatsFileRequest) (*StatsFileResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(req.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", req.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if err := s.validator.ValidateFileInfo(req.Path, fileInfo); err != nil {
		return nil, err
	}

	pages, err := api.PageCountFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}

	result := &StatsFileResult{
		Path:         req.Path,
		Size:         fileInfo.Size(),
		Pages:        pages,
		ModifiedDate: fileInfo.ModTime().Format("2006-01-02 15:04:05"),
	}

	s.extractMetadata(req.Path, result)

	return result, nil
}

// GetDirectoryStats aggregates size and count facts over every valid notice
// PDF under a directory.
func (s *Stats) GetDirectoryStats(req StatsDirectoryRequest) (*StatsDirectoryResult, error) {
	files, err := s.search.FindPDFsInDirectory(req.Directory)
	if err != nil {
		return nil, err
	}

	result := &StatsDirectoryResult{
		Directory:  req.Directory,
		TotalFiles: len(files),
	}

	for _, file := range files {
		result.TotalSize += file.Size

		if result.LargestFileName == "" || file.Size > result.LargestFileSize {
			result.LargestFileName = file.Name
			result.LargestFileSize = file.Size
		}
		if result.SmallestFileName == "" || file.Size < result.SmallestFileSize {
			result.SmallestFileName = file.Name
			result.SmallestFileSize = file.Size
		}
	}

	if result.TotalFiles > 0 {
		result.AverageFileSize = result.TotalSize / int64(result.TotalFiles)
	}

	return result, nil
}

// extractMetadata pulls Info-dictionary metadata from the document. Failures
// here only cost metadata, never the basic stats.
func (s *Stats) extractMetadata(path string, result *StatsFileResult) {
	defer func() {
		// The Value API panics on some malformed documents.
		_ = recover()
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	trailer := r.Trailer()
	if trailer.IsNull() {
		return
	}

	info := trailer.Key("Info")
	if info.IsNull() {
		return
	}

	if title := info.Key("Title"); !title.IsNull() {
		result.Title = strings.TrimSpace(title.String())
	}
	if author := info.Key("Author"); !author.IsNull() {
		result.Author = strings.TrimSpace(author.String())
	}
	if subject := info.Key("Subject"); !subject.IsNull() {
		result.Subject = strings.TrimSpace(subject.String())
	}
	if producer := info.Key("Producer"); !producer.IsNull() {
		result.Producer = strings.TrimSpace(producer.String())
	}
	if creationDate := info.Key("CreationDate"); !creationDate.IsNull() {
		result.CreatedDate = strings.TrimSpace(creationDate.String())
	}
}
