package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1/5/2024", "01/05/2024"},
		{"01/15/2024", "01/15/2024"},
		{"2024-01-15", "01/15/2024"},
		{"2024-1-5", "01/05/2024"},
		{" 2/29/2024 ", "02/29/2024"},
		{"2/30/2024", "2/30/2024"},
		{"yesterday", "yesterday"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeDate(tc.in))
		})
	}
}

func TestLastFirst(t *testing.T) {
	assert.Equal(t, "Doe, John", LastFirst("John", "Doe"))
	assert.Equal(t, "Doe", LastFirst(" ", "Doe"))
	assert.Equal(t, "John", LastFirst("John", ""))
	assert.Equal(t, "Patient", LastFirst("", ""))
}

func TestPatientFolderName(t *testing.T) {
	name, err := PatientFolderName("John", "Doe", "3/4/1980", "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "Doe, John, DOB_1980-03-04, DOI_2024-01-15", name)

	_, err = PatientFolderName("John", "", "3/4/1980", "2024-01-15")
	assert.Error(t, err)

	_, err = PatientFolderName("John", "Doe", "1980", "2024-01-15")
	assert.ErrorContains(t, err, "date of birth")

	_, err = PatientFolderName("John", "Doe", "3/4/1980", "")
	assert.ErrorContains(t, err, "date of injury")
}

func TestSafeSlug(t *testing.T) {
	assert.Equal(t, "re_exam_1", SafeSlug("Re-Exam 1"))
	assert.Equal(t, "review_of_findings_1", SafeSlug("  Review of Findings 1!"))
	assert.Equal(t, "untitled", SafeSlug("---"))
}

func TestClosest(t *testing.T) {
	candidates := []string{"history.injury_type", "history.course", "plan.frequency"}
	assert.Equal(t, "history.course", Closest("history.corse", candidates, 5))
	assert.Equal(t, "", Closest("something.else.entirely", candidates, 3))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
	assert.Equal(t, 4, levenshteinDistance("", "four"))
}
