// internal/util/prognosis_test.go
package util

import (
	"testing"
)

func TestParsePrognosis_Valid(t *testing.T) {
	tests := []struct {
		input    string
		expected Prognosis
	}{
		{"Poor", PrognosisPoor},
		{"guarded", PrognosisGuarded},
		{"FAIR", PrognosisFair},
		{" Good ", PrognosisGood},
		{"excellent", PrognosisExcellent},
		{"(select)", PrognosisUnset},
		{"", PrognosisUnset},
	}

	for _, tc := range tests {
		result, err := ParsePrognosis(tc.input)
		if err != nil {
			t.Errorf("ParsePrognosis(%q) returned error: %v", tc.input, err)
		}
		if result != tc.expected {
			t.Errorf("ParsePrognosis(%q) = %v, want %v", tc.input, result, tc.expected)
		}
	}
}

func TestParsePrognosis_Invalid(t *testing.T) {
	_, err := ParsePrognosis("Stellar")
	if err == nil {
		t.Error("ParsePrognosis(Stellar) should return error")
	}
}

func TestPrognosis_String(t *testing.T) {
	if PrognosisGuarded.String() != "Guarded" {
		t.Errorf("PrognosisGuarded.String() = %s, want Guarded", PrognosisGuarded.String())
	}
	if PrognosisUnset.String() != "" {
		t.Errorf("PrognosisUnset.String() = %q, want empty", PrognosisUnset.String())
	}
}
