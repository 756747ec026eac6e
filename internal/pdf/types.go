package pdf

// FileInfo describes one notice document on disk.
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// Request types

// ReadFileRequest asks for the text content of a notice PDF.
type ReadFileRequest struct {
	Path string `json:"path"`
}

// ValidateFileRequest asks whether a file is a readable PDF.
type ValidateFileRequest struct {
	Path string `json:"path"`
}

// StatsFileRequest asks for metadata about a single notice PDF.
type StatsFileRequest struct {
	Path string `json:"path"`
}

// SearchDirectoryRequest asks for notice PDFs under a directory, optionally
// filtered by a fuzzy filename query.
type SearchDirectoryRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
}

// StatsDirectoryRequest asks for aggregate stats over a directory of notices.
type StatsDirectoryRequest struct {
	Directory string `json:"directory"`
}

// Response types

// ReadFileResult carries extracted text plus basic document facts.
type ReadFileResult struct {
	Content     string `json:"content"`
	Path        string `json:"path"`
	Pages       int    `json:"pages"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"` // "text" or "no_content"
}

// ValidateFileResult reports the outcome of PDF validation.
type ValidateFileResult struct {
	Valid   bool   `json:"valid"`
	Path    string `json:"path"`
	Message string `json:"message,omitempty"`
}

// StatsFileResult carries file and document metadata.
type StatsFileResult struct {
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	Pages        int    `json:"pages"`
	CreatedDate  string `json:"created_date,omitempty"`
	ModifiedDate string `json:"modified_date"`
	Title        string `json:"title,omitempty"`
	Author       string `json:"author,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Producer     string `json:"producer,omitempty"`
}

// StatsDirectoryResult aggregates file-level facts over a directory.
type StatsDirectoryResult struct {
	Directory        string `json:"directory"`
	TotalFiles       int    `json:"total_files"`
	TotalSize        int64  `json:"total_size"`
	AverageFileSize  int64  `json:"average_file_size,omitempty"`
	LargestFileName  string `json:"largest_file_name,omitempty"`
	LargestFileSize  int64  `json:"largest_file_size,omitempty"`
	SmallestFileName string `json:"smallest_file_name,omitempty"`
	SmallestFileSize int64  `json:"smallest_file_size,omitempty"`
}

// SearchDirectoryResult lists the notices found under a directory.
type SearchDirectoryResult struct {
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
	Directory   string     `json:"directory"`
	SearchQuery string     `json:"search_query,omitempty"`
}

// ToolInfo describes one MCP tool for server-info output.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
	Parameters  string `json:"parameters"`
}

// ServerInfoResult summarizes the running server for clients.
type ServerInfoResult struct {
	ServerName        string     `json:"server_name"`
	Version           string     `json:"version"`
	IntakeDirectory   string     `json:"intake_directory"`
	MaxFileSize       int64      `json:"max_file_size"`
	AvailableTools    []ToolInfo `json:"available_tools"`
	DirectoryContents []FileInfo `json:"directory_contents"`
	UsageGuidance     string     `json:"usage_guidance"`
}
