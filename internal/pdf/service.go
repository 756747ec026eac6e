// Package pdf reads, validates and discovers FNOL notice documents. It is the
// text-extraction collaborator of the triage pipeline: everything here deals
// with files and bytes, nothing here makes routing decisions.
package pdf

import (
	"fmt"

	"github.com/claimpipe/fnol-intake/internal/pdf/security"
)

// Service orchestrates the notice-document components behind a single facade.
type Service struct {
	maxFileSize   int64
	reader        *Reader
	validator     *Validator
	stats         *Stats
	search        *Search
	pathValidator *security.PathValidator
}

// NewService creates a notice-document service bounded to the given intake
// directory.
func NewService(maxFileSize int64, intakeDirectory string) (*Service, error) {
	pathValidator, err := security.NewPathValidator(intakeDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to create path validator: %w", err)
	}

	return &Service{
		maxFileSize:   maxFileSize,
		reader:        NewReader(maxFileSize),
		validator:     NewValidator(maxFileSize),
		stats:         NewStats(maxFileSize),
		search:        NewSearch(maxFileSize),
		pathValidator: pathValidator,
	}, nil
}

// ReadFile extracts the text content of a notice PDF.
func (s *Service) ReadFile(req ReadFileRequest) (*ReadFileResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.reader.ReadFile(req)
}

// ValidateFile performs validation on a notice PDF.
func (s *Service) ValidateFile(req ValidateFileRequest) (*ValidateFileResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.validator.ValidateFile(req)
}

// StatsFile returns detailed statistics about a single notice PDF.
func (s *Service) StatsFile(req StatsFileRequest) (*StatsFileResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.stats.GetFileStats(req)
}

// StatsDirectory aggregates stats over the notice PDFs in a directory.
func (s *Service) StatsDirectory(req StatsDirectoryRequest) (*StatsDirectoryResult, error) {
	if req.Directory == "" {
		req.Directory = s.pathValidator.GetConfiguredDirectory()
	}

	if err := s.pathValidator.ValidateDirectory(req.Directory); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}

	return s.stats.GetDirectoryStats(req)
}

// SearchDirectory searches for notice PDFs in a directory.
func (s *Service) SearchDirectory(req SearchDirectoryRequest) (*SearchDirectoryResult, error) {
	if req.Directory == "" {
		req.Directory = s.pathValidator.GetConfiguredDirectory()
	}

	if err := s.pathValidator.ValidateDirectory(req.Directory); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}

	return s.search.SearchDirectory(req)
}

// GetMaxFileSize returns the maximum file size limit.
func (s *Service) GetMaxFileSize() int64 {
	return s.maxFileSize
}

// IsValidPDF performs a quick validation check on a file.
func (s *Service) IsValidPDF(filePath string) bool {
	return s.validator.IsValidPDF(filePath)
}

// ServerInfo returns server metadata, the tool catalog and usage guidance.
func (s *Service) ServerInfo(serverName, version, intakeDirectory string) (*ServerInfoResult, error) {
	validatedDir := intakeDirectory
	if err := s.pathValidator.ValidateDirectory(intakeDirectory); err != nil {
		validatedDir = s.pathValidator.GetConfiguredDirectory()
	}

	directoryContents, err := s.search.FindPDFsInDirectoryLimited(validatedDir, 100)
	if err != nil {
		// A failed scan only costs the listing, not the info call.
		directoryContents = []FileInfo{}
	}

	availableTools := []ToolInfo{
		{
			Name:        "fnol_process_file",
			Description: "Extract FNOL fields from a notice PDF and produce a routing decision",
			Usage: "Use this tool to triage a notice document end to end. Missing or " +
				"unreadable fields route the claim to Manual review rather than failing.",
			Parameters: "path (required): Full absolute path to the notice PDF, " +
				"initial_estimate (optional), attachments (optional): values supplied by the intake system",
		},
		{
			Name:        "fnol_process_text",
			Description: "Run the FNOL triage pipeline over already-extracted document text",
			Usage:       "Use this tool when the text of a notice is already available.",
			Parameters: "text (required): Raw document text, " +
				"initial_estimate (optional), attachments (optional): values supplied by the intake system",
		},
		{
			Name:        "fnol_validate_file",
			Description: "Validate that a file is a readable PDF",
			Usage:       "Use this tool to check a notice before processing it.",
			Parameters:  "path (required): Full absolute path to the notice PDF",
		},
		{
			Name:        "fnol_stats_file",
			Description: "Get detailed statistics about a notice PDF",
			Usage:       "Use this tool to get page count, file size and document metadata.",
			Parameters:  "path (required): Full absolute path to the notice PDF",
		},
		{
			Name:        "fnol_search_directory",
			Description: "Search for notice PDFs in the intake directory",
			Usage:       "Use this tool to find notices waiting for triage. Supports fuzzy filename search.",
			Parameters: "directory (optional): Directory to search (uses intake directory if empty), " +
				"query (optional): Search query for fuzzy matching",
		},
		{
			Name:        "fnol_stats_directory",
			Description: "Get aggregate statistics about the notice PDFs in a directory",
			Usage:       "Use this tool to size up an intake backlog before processing it.",
			Parameters:  "directory (optional): Directory to analyze (uses intake directory if empty)",
		},
	}

	usageGuidance := `FNOL Intake Server Usage Guide:

1. DISCOVER NOTICES:
   - Use 'fnol_search_directory' to find notice PDFs waiting in the intake directory

2. VALIDATE FILES:
   - Use 'fnol_validate_file' to check a file before processing

3. TRIAGE:
   - Use 'fnol_process_file' to extract fields and get a routing decision
   - Pass 'initial_estimate' and 'attachments' when the intake system has them;
     without them every document routes to Manual review
   - A 'Manual review' decision lists exactly which mandatory fields were not found

4. GET METADATA:
   - Use 'fnol_stats_file' for page counts and document properties
   - Use 'fnol_stats_directory' to size up an intake backlog

IMPORTANT NOTES:
- Always use absolute file paths inside the intake directory
- The server can handle files up to ` + fmt.Sprintf("%d", s.maxFileSize/(1024*1024)) + `MB
- Scanned notices without extractable text report content_type "no_content";
  this server performs no OCR`

	return &ServerInfoResult{
		ServerName:        serverName,
		Version:           version,
		IntakeDirectory:   validatedDir,
		MaxFileSize:       s.maxFileSize,
		AvailableTools:    availableTools,
		DirectoryContents: directoryContents,
		UsageGuidance:     usageGuidance,
	}, nil
}
