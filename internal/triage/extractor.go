package triage

import (
	"regexp"
	"strings"
)

// automobileTitlePhrase is the ACORD form title used to infer the asset class.
// The intake currently handles a single asset class; heterogeneous document
// sources would need this table generalized to multiple title phrases.
const (
	automobileTitlePhrase = "AUTOMOBILE LOSS NOTICE"
	assetTypeAutomobile   = "Automobile"
)

// fieldRule binds a mandatory field to its extraction pattern. Each pattern
// carries exactly one capture group and is compiled case-insensitive with
// dot-matches-newline, so labels and values may sit on separate lines.
// A rule with a forced value records presence only; no text is captured.
type fieldRule struct {
	field   string
	pattern *regexp.Regexp
	forced  string
}

// fieldRules is the extraction table, tuned to the labels of the ACORD
// Automobile Loss Notice form. Adding a field is a data change here plus a
// constant in fields.go. Initial Estimate and Attachments have no rule on
// purpose: they arrive from outside the document.
var fieldRules = []fieldRule{
	{field: FieldPolicyNumber, pattern: compileRule(`POLICY NUMBER\s*([\w\-/]+)`)},
	{field: FieldPolicyholderName, pattern: compileRule(`NAME OF INSURED.*?\n([A-Z0-9 ,.'\-]+)`)},
	{field: FieldDateOfLoss, pattern: compileRule(`DATE OF LOSS AND TIME\s*([\d/\-]+)`)},
	{field: FieldTimeOfLoss, pattern: compileRule(`DATE OF LOSS AND TIME\s*[\d/\-]+\s*([APM0-9: ]+)`)},
	{field: FieldLocation, pattern: compileRule(`LOCATION OF LOSS\s*\n(.+)`)},
	{field: FieldDescription, pattern: compileRule(`DESCRIPTION OF ACCIDENT.*?\n(.+)`)},
	{field: FieldClaimType, pattern: compileRule(`LINE OF BUSINESS\s*([A-Z0-9 ,.'\-]+)`)},
	{field: FieldEstimatedDamage, pattern: compileRule(`ESTIMATE AMOUNT[: ]*\$?([\d,.]+)`)},
	{field: FieldAssetType, pattern: compileRule(automobileTitlePhrase), forced: assetTypeAutomobile},
}

func compileRule(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)` + pattern)
}

// ExtractFields applies the extraction table to raw document text and returns
// a fully-keyed FieldMap. A pattern that matches nowhere leaves its field
// absent; extraction never fails.
func ExtractFields(text string) FieldMap {
	fields := NewFieldMap()

	for _, rule := range fieldRules {
		if rule.forced != "" {
			if rule.pattern.MatchString(text) {
				fields[rule.field] = rule.forced
			}
			continue
		}

		match := rule.pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		fields[rule.field] = strings.TrimSpace(match[1])
	}

	return fields
}
