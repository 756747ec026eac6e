package triage

import "strings"

// Mandatory field names for an FNOL document. The order is fixed: missing-field
// reporting and the Manual review reasoning render fields in this order.
const (
	FieldPolicyNumber     = "Policy Number"
	FieldPolicyholderName = "Policyholder Name"
	FieldDateOfLoss       = "Date of Loss"
	FieldTimeOfLoss       = "Time of Loss"
	FieldLocation         = "Location"
	FieldDescription      = "Description"
	FieldClaimType        = "Claim Type"
	FieldEstimatedDamage  = "Estimated Damage"
	FieldAssetType        = "Asset Type"
	FieldInitialEstimate  = "Initial Estimate"
	FieldAttachments      = "Attachments"
)

// MandatoryFields lists every field required for automated routing, in
// reporting order. Initial Estimate and Attachments are supplied by an
// upstream system, never extracted from the document text.
var MandatoryFields = []string{
	FieldPolicyNumber,
	FieldPolicyholderName,
	FieldDateOfLoss,
	FieldTimeOfLoss,
	FieldLocation,
	FieldDescription,
	FieldClaimType,
	FieldEstimatedDamage,
	FieldAssetType,
	FieldInitialEstimate,
	FieldAttachments,
}

// FieldMap holds one value per mandatory field. The key set is always exactly
// MandatoryFields; an empty string marks a field as absent. Extracted values
// are trimmed before storage, so blank and absent are interchangeable.
type FieldMap map[string]string

// NewFieldMap returns a FieldMap with every mandatory field present and absent.
func NewFieldMap() FieldMap {
	fields := make(FieldMap, len(MandatoryFields))
	for _, name := range MandatoryFields {
		fields[name] = ""
	}
	return fields
}

// MissingFields returns the mandatory fields whose value is absent or blank,
// preserving the MandatoryFields order.
func MissingFields(fields FieldMap) []string {
	missing := []string{}
	for _, name := range MandatoryFields {
		if isBlank(fields[name]) {
			missing = append(missing, name)
		}
	}
	return missing
}

// isBlank reports whether a field value is absent or whitespace only.
func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
