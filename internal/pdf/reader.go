package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader extracts plain text from notice PDFs.
type Reader struct {
	maxFileSize int64
	maxTextSize int
}

// NewReader creates a reader with the specified file size constraint.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// ReadFile extracts the text content of a notice PDF. The caller hands the
// returned content to the triage pipeline; a scanned notice with no
// extractable text surfaces as ContentType "no_content".
func (r *Reader) ReadFile(req ReadFileRequest) (*ReadFileResult, error) {
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

	if err := r.validatePDFFile(req.Path, fileInfo); err != nil {
		return nil, err
	}

	f, pdfReader, err := pdf.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	content := r.extractTextContent(pdfReader)

	contentType := "text"
	if strings.TrimSpace(content) == "" {
		contentType = "no_content"
	}

	return &ReadFileResult{
		Content:     content,
		Path:        req.Path,
		Pages:       pdfReader.NumPage(),
		Size:        fileInfo.Size(),
		ContentType: contentType,
	}, nil
}

// validatePDFFile performs basic validation on a PDF file
func (r *Reader) validatePDFFile(filePath string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	if !strings.HasSuffix(strings.ToLower(filePath), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", filePath)
	}

	if fileInfo.Size() > r.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	return nil
}

// extractTextContent joins the plain text of every page. A page that fails to
// decode is skipped; the remaining pages usually carry the labeled fields the
// triage pipeline needs.
func (r *Reader) extractTextContent(pdfReader *pdf.Reader) string {
	var builder strings.Builder
	totalLength := 0

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if totalLength+len(content) > r.maxTextSize {
			remaining := r.maxTextSize - totalLength
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		totalLength += len(content)

		if pageNum < pdfReader.NumPage() {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}
