// Package triage turns raw FNOL document text into a routing decision.
//
// The pipeline is a pure function of its input: extract the mandatory fields,
// derive the missing-field list, then walk the priority routing chain. No
// state survives between calls, so concurrent callers need no coordination.
package triage

import "strings"

// Result is the complete outcome for one document. The JSON field names are
// the historical output contract consumed by the downstream serializer.
type Result struct {
	ExtractedFields  FieldMap `json:"extractedFields"`
	MissingFields    []string `json:"missingFields"`
	RecommendedRoute string   `json:"recommendedRoute"`
	Reasoning        string   `json:"reasoning"`
}

// Process runs the full extraction-and-routing pipeline over raw document
// text. It never fails: unmatched patterns surface as missing fields, and an
// incomplete document routes to Manual review rather than erroring.
func Process(text string) *Result {
	return ProcessWithSupplied(text, nil)
}

// ProcessWithSupplied runs the pipeline after merging values provided by an
// upstream intake system. Initial Estimate and Attachments never appear in
// the document text, so without supplied values every document routes to
// Manual review. Supplied values only fill fields the extractor left absent;
// unknown field names are dropped to preserve the field-map key invariant.
func ProcessWithSupplied(text string, supplied map[string]string) *Result {
	fields := ExtractFields(text)
	for name, value := range supplied {
		if _, known := fields[name]; !known {
			continue
		}
		if fields[name] == "" && !isBlank(value) {
			fields[name] = strings.TrimSpace(value)
		}
	}

	missing := MissingFields(fields)
	decision := Route(fields, missing)

	return &Result{
		ExtractedFields:  fields,
		MissingFields:    missing,
		RecommendedRoute: decision.Route,
		Reasoning:        decision.Reasoning,
	}
}
