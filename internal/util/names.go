// Package util holds the small helpers shared by the exam store, the CLI and
// the wizard: patient naming, date normalization and fuzzy lookup.
package util

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// PatientSubdirs are created under every patient folder.
var PatientSubdirs = []string{
	"exams", "pdfs", "rofs", "patient_info",
	"imaging", "attorney", "billing", "messages",
}

// ExamNames lists the visit names offered for a new exam.
var ExamNames = []string{"Initial", "Re-Exam 1", "Review of Findings 1", "Final Exam"}

var (
	slashDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	isoDate   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	nonAlnum  = regexp.MustCompile(`[^a-z0-9]+`)
)

// NormalizeDate accepts M/D/YYYY or YYYY-MM-DD and returns MM/DD/YYYY.
// Anything else is returned trimmed and unchanged.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if t, ok := parseDate(s); ok {
		return t.Format("01/02/2006")
	}
	return s
}

// ISODate converts a date accepted by NormalizeDate to YYYY-MM-DD.
func ISODate(s string) (string, error) {
	t, ok := parseDate(strings.TrimSpace(s))
	if !ok {
		return "", fmt.Errorf("invalid date: %q (expected MM/DD/YYYY or YYYY-MM-DD)", s)
	}
	return t.Format("2006-01-02"), nil
}

func parseDate(s string) (time.Time, bool) {
	var y, m, d string
	if g := slashDate.FindStringSubmatch(s); g != nil {
		m, d, y = g[1], g[2], g[3]
	} else if g := isoDate.FindStringSubmatch(s); g != nil {
		y, m, d = g[1], g[2], g[3]
	} else {
		return time.Time{}, false
	}

	t, err := time.Parse("2006-1-2", y+"-"+m+"-"+d)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// LastFirst formats a display name as "Last, First", falling back to
// whichever part is present and then to "Patient".
func LastFirst(first, last string) string {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	switch {
	case first != "" && last != "":
		return last + ", " + first
	case last != "":
		return last
	case first != "":
		return first
	default:
		return "Patient"
	}
}

// PatientFolderName builds "Last, First, DOB_YYYY-MM-DD, DOI_YYYY-MM-DD".
// All four parts are required and both dates must parse.
func PatientFolderName(first, last, dob, doi string) (string, error) {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if first == "" || last == "" {
		return "", fmt.Errorf("patient first and last name are required")
	}
	dobISO, err := ISODate(dob)
	if err != nil {
		return "", fmt.Errorf("date of birth: %w", err)
	}
	doiISO, err := ISODate(doi)
	if err != nil {
		return "", fmt.Errorf("date of injury: %w", err)
	}
	return fmt.Sprintf("%s, DOB_%s, DOI_%s", LastFirst(first, last), dobISO, doiISO), nil
}

// SafeSlug lower-cases s and collapses every run of non-alphanumerics to "_".
func SafeSlug(s string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(s), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return "untitled"
	}
	return slug
}
