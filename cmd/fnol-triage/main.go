// Command fnol-triage runs the FNOL triage pipeline once over a single notice
// document and prints the decision as JSON. It reads either a notice PDF or a
// plain text file holding already-extracted document text.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/claimpipe/fnol-intake/internal/pdf"
	"github.com/claimpipe/fnol-intake/internal/triage"
)

var (
	outputPath      = flag.String("o", "", "Write the JSON decision to this file instead of stdout")
	initialEstimate = flag.String("initial-estimate", "", "Initial estimate supplied by the intake system")
	attachments     = flag.String("attachments", "", "Attachment listing supplied by the intake system")
	maxFileSize     = flag.Int64("maxfilesize", 100*1024*1024, "Maximum notice PDF size in bytes")
	help            = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: notice file path required\n\n")
		printUsage()
		os.Exit(1)
	}

	noticePath := flag.Arg(0)
	if _, err := os.Stat(noticePath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", noticePath)
		os.Exit(1)
	}

	text, err := loadNoticeText(noticePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading notice: %v\n", err)
		os.Exit(1)
	}

	supplied := map[string]string{}
	if *initialEstimate != "" {
		supplied[triage.FieldInitialEstimate] = *initialEstimate
	}
	if *attachments != "" {
		supplied[triage.FieldAttachments] = *attachments
	}

	result := triage.ProcessWithSupplied(text, supplied)

	if err := writeResult(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing result: %v\n", err)
		os.Exit(1)
	}
}

// loadNoticeText returns the document text of the notice. PDF files go through
// text extraction; anything else is treated as plain text.
func loadNoticeText(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		reader := pdf.NewReader(*maxFileSize)
		result, err := reader.ReadFile(pdf.ReadFileRequest{Path: path})
		if err != nil {
			return "", err
		}
		return result.Content, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeResult(result *triage.Result) error {
	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	payload = append(payload, '\n')

	if *outputPath != "" {
		return os.WriteFile(*outputPath, payload, 0o600)
	}

	_, err = os.Stdout.Write(payload)
	return err
}

func printHelp() {
	fmt.Println("FNOL Triage - route a First Notice of Loss document to a claims queue")
	fmt.Println()
	fmt.Println("Extracts the standard FNOL fields from a notice PDF (or a text file holding")
	fmt.Println("already-extracted document text), checks the mandatory field set, and prints")
	fmt.Println("the recommended route with its reasoning as JSON.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -o                 Write the JSON decision to a file instead of stdout")
	fmt.Println("  -initial-estimate  Initial estimate supplied by the intake system")
	fmt.Println("  -attachments       Attachment listing supplied by the intake system")
	fmt.Println("  -maxfilesize       Maximum notice PDF size in bytes")
	fmt.Println("  -help              Show this help message")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  fnol-triage notice.pdf")
	fmt.Println("  fnol-triage -initial-estimate 9500 -attachments photos.zip notice.pdf")
	fmt.Println("  fnol-triage -o decision.json notice.txt")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  fnol-triage [options] <notice.pdf|notice.txt>")
}
