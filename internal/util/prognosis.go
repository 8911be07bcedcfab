// internal/util/prognosis.go
package util

import (
	"fmt"
	"strings"
)

// Prognosis is the clinician's outlook recorded with the diagnoses.
type Prognosis int

const (
	PrognosisUnset Prognosis = iota
	PrognosisPoor
	PrognosisGuarded
	PrognosisFair
	PrognosisGood
	PrognosisExcellent
)

// String returns the label printed under the Prognosis heading
func (p Prognosis) String() string {
	switch p {
	case PrognosisPoor:
		return "Poor"
	case PrognosisGuarded:
		return "Guarded"
	case PrognosisFair:
		return "Fair"
	case PrognosisGood:
		return "Good"
	case PrognosisExcellent:
		return "Excellent"
	default:
		return ""
	}
}

// ParsePrognosis parses a string into a Prognosis.
// Blank and "(select)" parse to PrognosisUnset.
func ParsePrognosis(s string) (Prognosis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "(SELECT)":
		return PrognosisUnset, nil
	case "POOR":
		return PrognosisPoor, nil
	case "GUARDED":
		return PrognosisGuarded, nil
	case "FAIR":
		return PrognosisFair, nil
	case "GOOD":
		return PrognosisGood, nil
	case "EXCELLENT":
		return PrognosisExcellent, nil
	default:
		return PrognosisUnset, fmt.Errorf("invalid prognosis: %s (valid: Poor, Guarded, Fair, Good, Excellent)", s)
	}
}
