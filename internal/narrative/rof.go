package narrative

import (
	"fmt"
	"strings"
)

// ROFMode is the visit type selected on the review-of-findings panel.
type ROFMode string

const (
	ModeInitial ROFMode = "Initial"
	ModeReExam  ROFMode = "Re-Exam"
	ModeROF     ROFMode = "ROF"
	ModeFinal   ROFMode = "Final"
)

// AllROFModes returns the modes in display order.
func AllROFModes() []ROFMode {
	return []ROFMode{ModeInitial, ModeReExam, ModeROF, ModeFinal}
}

// ParseROFMode parses a mode label, case-insensitively.
func ParseROFMode(s string) (ROFMode, error) {
	for _, m := range AllROFModes() {
		if strings.EqualFold(strings.TrimSpace(s), string(m)) {
			return m, nil
		}
	}
	return ModeROF, fmt.Errorf("invalid ROF mode: %s (valid: Initial, Re-Exam, ROF, Final)", s)
}

type rofTemplate struct {
	withPlace string
	noPlace   string
}

// Indexed by group ordinal; later groups reuse the last template.
var rofTemplates = []rofTemplate{
	{"which included %[1]s%[2]s at %[3]s.", "The imaging included %[1]s%[2]s."},
	{"The patient also received %[1]s%[2]s at %[3]s.", "The patient also received %[1]s%[2]s."},
	{"Additionally, %[1]s were obtained%[2]s at %[3]s.", "Additionally, %[1]s were obtained%[2]s."},
	{"Furthermore, %[1]s were completed%[2]s at %[3]s.", "Furthermore, %[1]s were completed%[2]s."},
}

// BuildROF writes the imaging summary paragraph of a review-of-findings
// visit. Modes other than ROF produce "".
func BuildROF(mode ROFMode, entries []ImagingEntry, first string) string {
	return BuildROFWithLimit(mode, entries, first, MaxROFGroups)
}

// BuildROFWithLimit is BuildROF with a configurable group cap.
func BuildROFWithLimit(mode ROFMode, entries []ImagingEntry, first string, limit int) string {
	if mode != ModeROF {
		return ""
	}

	groups := GroupImaging(entries, limit)
	if len(groups) == 0 {
		return ""
	}

	subject := strings.TrimSpace(first)
	if subject == "" {
		subject = "The patient"
	}
	chunks := []string{subject + " underwent diagnostic imaging,"}

	for i, g := range groups {
		detail := g.Detail()
		if detail == "" {
			continue
		}
		tpl := rofTemplates[min(i, len(rofTemplates)-1)]
		if place := g.Place(); place != "" {
			chunks = append(chunks, fmt.Sprintf(tpl.withPlace, detail, g.DateClause(), place))
		} else {
			chunks = append(chunks, fmt.Sprintf(tpl.noPlace, detail, g.DateClause()))
		}
	}

	return strings.Join(chunks, " ")
}
