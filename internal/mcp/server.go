package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/claimpipe/fnol-intake/internal/config"
	"github.com/claimpipe/fnol-intake/internal/pdf"
	"github.com/claimpipe/fnol-intake/internal/triage"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server instance
type Server struct {
	config     *config.Config
	pdfService *pdf.Service
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, pdfService *pdf.Service) (*Server, error) {
	if pdfService == nil {
		return nil, fmt.Errorf("pdfService cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:     cfg,
		pdfService: pdfService,
		mcpServer:  mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// Register the end-to-end triage tool
	processFileTool := mcp.NewTool(
		"fnol_process_file",
		mcp.WithDescription("Extract FNOL fields from a notice PDF and produce a routing decision"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the notice PDF"),
		),
		mcp.WithString("initial_estimate",
			mcp.Description("Initial estimate supplied by the intake system"),
		),
		mcp.WithString("attachments",
			mcp.Description("Attachment listing supplied by the intake system"),
		),
	)
	s.mcpServer.AddTool(processFileTool, s.handleProcessFile)

	// Register the text-only triage tool
	processTextTool := mcp.NewTool(
		"fnol_process_text",
		mcp.WithDescription("Run the FNOL triage pipeline over already-extracted document text"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Raw text of the notice document"),
		),
		mcp.WithString("initial_estimate",
			mcp.Description("Initial estimate supplied by the intake system"),
		),
		mcp.WithString("attachments",
			mcp.Description("Attachment listing supplied by the intake system"),
		),
	)
	s.mcpServer.AddTool(processTextTool, s.handleProcessText)

	// Register the validate file tool
	validateFileTool := mcp.NewTool(
		"fnol_validate_file",
		mcp.WithDescription("Validate if a file is a readable PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the notice PDF"),
		),
	)
	s.mcpServer.AddTool(validateFileTool, s.handleValidateFile)

	// Register the stats file tool
	statsFileTool := mcp.NewTool(
		"fnol_stats_file",
		mcp.WithDescription("Get detailed statistics about a notice PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the notice PDF"),
		),
	)
	s.mcpServer.AddTool(statsFileTool, s.handleStatsFile)

	// Register the search directory tool
	searchDirectoryTool := mcp.NewTool(
		"fnol_search_directory",
		mcp.WithDescription("Search for notice PDFs in a directory with optional fuzzy search"),
		mcp.WithString("directory",
			mcp.Description("Directory path to search (uses intake directory if empty)"),
		),
		mcp.WithString("query",
			mcp.Description("Optional search query for fuzzy matching"),
		),
	)
	s.mcpServer.AddTool(searchDirectoryTool, s.handleSearchDirectory)

	// Register the directory stats tool
	statsDirectoryTool := mcp.NewTool(
		"fnol_stats_directory",
		mcp.WithDescription("Get aggregate statistics about the notice PDFs in a directory"),
		mcp.WithString("directory",
			mcp.Description("Directory path to analyze (uses intake directory if empty)"),
		),
	)
	s.mcpServer.AddTool(statsDirectoryTool, s.handleStatsDirectory)

	// Register the server info tool
	serverInfoTool := mcp.NewTool(
		"fnol_server_info",
		mcp.WithDescription("Get server information, available tools, directory contents, and usage guidance"),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions
func (s *Server) handleProcessFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	readResult, err := s.pdfService.ReadFile(pdf.ReadFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := triage.ProcessWithSupplied(readResult.Content, suppliedFields(request))

	responseText := fmt.Sprintf("Processed notice: %s\n", readResult.Path)
	responseText += fmt.Sprintf("Pages: %d\n", readResult.Pages)
	if readResult.ContentType == "no_content" {
		responseText += "\nWARNING: no extractable text was found in this PDF. " +
			"Scanned notices require manual transcription; the claim routes to Manual review.\n"
	}
	responseText += "\n" + s.formatTriageResult(result)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleProcessText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := triage.ProcessWithSupplied(text, suppliedFields(request))

	return mcp.NewToolResultText(s.formatTriageResult(result)), nil
}

func (s *Server) handleValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.pdfService.ValidateFile(pdf.ValidateFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.Valid {
		responseText = fmt.Sprintf("PDF file %s is valid and readable", result.Path)
	} else {
		responseText = fmt.Sprintf("PDF validation failed for %s: %s", result.Path, result.Message)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleStatsFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.pdfService.StatsFile(pdf.StatsFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatStatsFileResult(result)), nil
}

func (s *Server) handleSearchDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := s.config.IntakeDirectory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	query := ""
	if q, ok := args["query"].(string); ok {
		query = q
	}

	result, err := s.pdfService.SearchDirectory(pdf.SearchDirectoryRequest{
		Directory: directory,
		Query:     query,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.TotalCount == 0 {
		responseText = fmt.Sprintf("No PDF files found in directory: %s", result.Directory)
		if result.SearchQuery != "" {
			responseText += fmt.Sprintf(" (searched for: %s)", result.SearchQuery)
		}
	} else {
		responseText = s.formatSearchDirectoryResult(result)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleStatsDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := s.config.IntakeDirectory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	result, err := s.pdfService.StatsDirectory(pdf.StatsDirectoryRequest{Directory: directory})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatStatsDirectoryResult(result)), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.pdfService.ServerInfo(s.config.ServerName, s.config.Version, s.config.IntakeDirectory)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatServerInfoResult(result)), nil
}

// suppliedFields collects the intake-system supplied values from the optional
// tool arguments.
func suppliedFields(request mcp.CallToolRequest) map[string]string {
	args := request.GetArguments()
	supplied := map[string]string{}

	if v, ok := args["initial_estimate"].(string); ok && v != "" {
		supplied[triage.FieldInitialEstimate] = v
	}
	if v, ok := args["attachments"].(string); ok && v != "" {
		supplied[triage.FieldAttachments] = v
	}

	return supplied
}

// Formatting methods
func (s *Server) formatTriageResult(result *triage.Result) string {
	text := "Triage Decision\n"
	text += fmt.Sprintf("Recommended Route: %s\n", result.RecommendedRoute)
	text += fmt.Sprintf("Reasoning: %s\n", result.Reasoning)

	if len(result.MissingFields) > 0 {
		text += "\nMissing Fields:\n"
		for _, field := range result.MissingFields {
			text += fmt.Sprintf("  - %s\n", field)
		}
	}

	text += "\nExtracted Fields:\n"
	for _, field := range triage.MandatoryFields {
		value := result.ExtractedFields[field]
		if value == "" {
			value = "(not found)"
		}
		text += fmt.Sprintf("  %s: %s\n", field, value)
	}

	if payload, err := json.MarshalIndent(result, "", "  "); err == nil {
		text += "\nJSON:\n" + string(payload)
	}

	return text
}

func (s *Server) formatSearchDirectoryResult(result *pdf.SearchDirectoryResult) string {
	text := fmt.Sprintf("Found %d PDF file(s) in directory: %s\n", result.TotalCount, result.Directory)
	if result.SearchQuery != "" {
		text += fmt.Sprintf("Search query: %s\n", result.SearchQuery)
	}
	text += "\nFiles:\n"

	for i, file := range result.Files {
		text += fmt.Sprintf("%d. %s\n", i+1, file.Name)
		text += fmt.Sprintf("   Path: %s\n", file.Path)
		text += fmt.Sprintf("   Size: %d bytes\n", file.Size)
		text += fmt.Sprintf("   Modified: %s\n", file.ModifiedTime)
		if i < len(result.Files)-1 {
			text += "\n"
		}
	}

	return text
}

func (s *Server) formatStatsFileResult(result *pdf.StatsFileResult) string {
	text := "Notice PDF Statistics\n"
	text += fmt.Sprintf("File: %s\n", result.Path)
	text += fmt.Sprintf("Size: %d bytes\n", result.Size)
	text += fmt.Sprintf("Pages: %d\n", result.Pages)
	text += fmt.Sprintf("Modified: %s\n", result.ModifiedDate)

	if result.Title != "" {
		text += fmt.Sprintf("Title: %s\n", result.Title)
	}
	if result.Author != "" {
		text += fmt.Sprintf("Author: %s\n", result.Author)
	}
	if result.Subject != "" {
		text += fmt.Sprintf("Subject: %s\n", result.Subject)
	}
	if result.Producer != "" {
		text += fmt.Sprintf("Producer: %s\n", result.Producer)
	}
	if result.CreatedDate != "" {
		text += fmt.Sprintf("Created: %s\n", result.CreatedDate)
	}

	return text
}

func (s *Server) formatStatsDirectoryResult(result *pdf.StatsDirectoryResult) string {
	text := "Notice Directory Statistics\n"
	text += fmt.Sprintf("Directory: %s\n", result.Directory)
	text += fmt.Sprintf("Total PDF files: %d\n", result.TotalFiles)
	text += fmt.Sprintf("Total size: %d bytes\n", result.TotalSize)

	if result.TotalFiles > 0 {
		text += fmt.Sprintf("Average file size: %d bytes\n", result.AverageFileSize)
		if result.LargestFileName != "" {
			text += fmt.Sprintf("Largest file: %s (%d bytes)\n", result.LargestFileName, result.LargestFileSize)
		}
		if result.SmallestFileName != "" {
			text += fmt.Sprintf("Smallest file: %s (%d bytes)\n", result.SmallestFileName, result.SmallestFileSize)
		}
	}

	return text
}

func (s *Server) formatServerInfoResult(result *pdf.ServerInfoResult) string {
	text := fmt.Sprintf("%s v%s - Server Information\n", result.ServerName, result.Version)
	text += fmt.Sprintf("Intake Directory: %s\n", result.IntakeDirectory)
	text += fmt.Sprintf("Max File Size: %d MB\n\n", result.MaxFileSize/(1024*1024))

	if len(result.DirectoryContents) > 0 {
		text += fmt.Sprintf("Directory Contents (%d PDF files found):\n", len(result.DirectoryContents))
		for i, file := range result.DirectoryContents {
			if i >= 10 { // Limit to first 10 files for readability
				text += fmt.Sprintf("   ... and %d more files\n", len(result.DirectoryContents)-10)
				break
			}
			text += fmt.Sprintf("   %d. %s (%d bytes)\n", i+1, file.Name, file.Size)
		}
		text += "\n"
	} else {
		text += "Directory Contents: No PDF files found in intake directory\n\n"
	}

	text += "Available Tools:\n"
	for _, tool := range result.AvailableTools {
		text += fmt.Sprintf("\n• %s\n", tool.Name)
		text += fmt.Sprintf("  Description: %s\n", tool.Description)
		text += fmt.Sprintf("  Usage: %s\n", tool.Usage)
		text += fmt.Sprintf("  Parameters: %s\n", tool.Parameters)
	}

	text += "\n" + result.UsageGuidance

	return text
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting FNOL intake server in stdio mode")
		log.Printf("Intake directory: %s", s.config.IntakeDirectory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	// The mark3labs library handles transports differently; stdio is the
	// only mode wired up so far.
	log.Printf("Server mode not yet implemented with mark3labs/mcp-go")
	log.Printf("Falling back to stdio mode")
	return s.runStdioMode(ctx)
}
