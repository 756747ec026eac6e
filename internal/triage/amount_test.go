package triage

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{"currency with symbol and separators", "$12,500.00", 12500.00, true},
		{"plain integer", "10000", 10000, true},
		{"comma separated", "25,000", 25000, true},
		{"decimal", "199.99", 199.99, true},
		{"surrounding text", "approx $1,200 total", 1200, true},
		{"two decimal points", "12.5.00", 0, false},
		{"empty string", "", 0, false},
		{"no digits", "TBD", 0, false},
		{"punctuation only", "$,.", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseAmount(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
