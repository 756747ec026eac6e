package triage

import (
	"reflect"
	"testing"
)

func TestNewFieldMap(t *testing.T) {
	fields := NewFieldMap()

	if len(fields) != len(MandatoryFields) {
		t.Fatalf("expected %d keys, got %d", len(MandatoryFields), len(fields))
	}
	for _, name := range MandatoryFields {
		if value, ok := fields[name]; !ok || value != "" {
			t.Errorf("expected key %q present and absent-valued, got (%q, %v)", name, value, ok)
		}
	}
}

func TestMissingFieldsOrder(t *testing.T) {
	fields := NewFieldMap()
	fields[FieldPolicyNumber] = "AUTO-1"
	fields[FieldDescription] = "minor damage"
	fields[FieldAssetType] = "Automobile"

	want := []string{
		FieldPolicyholderName,
		FieldDateOfLoss,
		FieldTimeOfLoss,
		FieldLocation,
		FieldClaimType,
		FieldEstimatedDamage,
		FieldInitialEstimate,
		FieldAttachments,
	}

	got := MissingFields(fields)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MissingFields = %v, want %v", got, want)
	}
}

func TestMissingFieldsBlankCountsAsMissing(t *testing.T) {
	fields := NewFieldMap()
	for _, name := range MandatoryFields {
		fields[name] = "value"
	}
	fields[FieldLocation] = "   "

	got := MissingFields(fields)
	if len(got) != 1 || got[0] != FieldLocation {
		t.Errorf("MissingFields = %v, want [%s]", got, FieldLocation)
	}
}

func TestMissingFieldsNoneMissing(t *testing.T) {
	fields := NewFieldMap()
	for _, name := range MandatoryFields {
		fields[name] = "value"
	}

	if got := MissingFields(fields); len(got) != 0 {
		t.Errorf("MissingFields = %v, want empty", got)
	}
}
