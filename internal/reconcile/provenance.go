// Package reconcile keeps generated narratives and clinician edits apart.
//
// Each clinical section owns a controller holding its structured snapshot
// and its displayed text. Field changes go through the controller, which
// decides whether to regenerate from the snapshot or to leave the text
// alone. Cross-section data (patient name, affected regions, diagnosis
// labels) reaches a controller only through read-only provider functions.
package reconcile

import (
	"fmt"
	"strings"
)

// Provenance records where the displayed text came from.
type Provenance int

const (
	ProvenanceEmpty Provenance = iota
	ProvenanceAuto
	ProvenanceManual
)

// String returns the stored representation of the provenance
func (p Provenance) String() string {
	switch p {
	case ProvenanceAuto:
		return "auto"
	case ProvenanceManual:
		return "manual"
	default:
		return "empty"
	}
}

// ParseProvenance parses a string into a Provenance
func ParseProvenance(s string) (Provenance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty", "":
		return ProvenanceEmpty, nil
	case "auto":
		return ProvenanceAuto, nil
	case "manual":
		return ProvenanceManual, nil
	default:
		return ProvenanceEmpty, fmt.Errorf("invalid provenance: %s (valid: empty, auto, manual)", s)
	}
}

// Text is a displayed narrative and its provenance.
type Text struct {
	Value      string
	Provenance Provenance
}

func generated(v string) Text {
	if strings.TrimSpace(v) == "" {
		return Text{}
	}
	return Text{Value: v, Provenance: ProvenanceAuto}
}

func typed(v string) Text {
	if strings.TrimSpace(v) == "" {
		return Text{}
	}
	return Text{Value: v, Provenance: ProvenanceManual}
}

// restored rebuilds a Text from storage. A missing or unreadable provenance
// is inferred from the presence of the section's AUTO marker.
func restored(v, prov string, autoTag string) Text {
	if strings.TrimSpace(v) == "" {
		return Text{}
	}
	if p, err := ParseProvenance(prov); err == nil && p != ProvenanceEmpty {
		return Text{Value: v, Provenance: p}
	}
	if autoTag != "" && hasTag(v, autoTag) {
		return Text{Value: v, Provenance: ProvenanceAuto}
	}
	return Text{Value: v, Provenance: ProvenanceManual}
}

// guard is the loading suppression shared by all controllers of a workspace.
type guard struct {
	loading bool
}

func (g *guard) suppressed() bool {
	return g != nil && g.loading
}
