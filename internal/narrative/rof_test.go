package narrative

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildROF(t *testing.T) {
	entries := []ImagingEntry{
		{Type: "X-rays", BodyParts: []string{"Cervical Spine"}, Facility: "Hoag Radiology", City: "Irvine", Date: "01/01/2024"},
		{Type: "MRI", BodyParts: []string{"Lumbar Spine"}, Facility: "Hoag Radiology", City: "Irvine", Date: "01/01/2024"},
		{Type: "CT", Facility: "OC MRI & Radiology"},
	}

	assert.Equal(t,
		"John underwent diagnostic imaging, which included x-ray films of the cervical spine and MRI studies of the lumbar spine on 01/01/2024 at Hoag Radiology in Irvine. "+
			"The patient also received CT scans at OC MRI & Radiology.",
		BuildROF(ModeROF, entries, "John"))
}

func TestBuildROFModes(t *testing.T) {
	entries := []ImagingEntry{{Type: "MRI"}}
	for _, m := range []ROFMode{ModeInitial, ModeReExam, ModeFinal} {
		assert.Empty(t, BuildROF(m, entries, "John"), string(m))
	}
	assert.Equal(t, "The patient underwent diagnostic imaging, The imaging included MRI studies.",
		BuildROF(ModeROF, entries, ""))
	assert.Empty(t, BuildROF(ModeROF, []ImagingEntry{{Facility: "(none)", City: "n/a"}}, "John"))
}

func TestBuildROFDateSuppression(t *testing.T) {
	tests := []struct {
		name  string
		dates [2]string
		want  int
	}{
		{"different dates", [2]string{"01/01/2024", "01/02/2024"}, 0},
		{"same date", [2]string{"01/01/2024", "01/01/2024"}, 1},
		{"one blank", [2]string{"01/01/2024", ""}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entries := []ImagingEntry{
				{Type: "MRI", Facility: "Hoag Radiology", City: "Irvine", Date: tc.dates[0]},
				{Type: "CT", Facility: "Hoag Radiology ", City: " Irvine", Date: tc.dates[1]},
			}
			got := BuildROF(ModeROF, entries, "John")
			assert.Equal(t, tc.want, strings.Count(got, " on "))
			if tc.want == 1 {
				assert.Contains(t, got, " on 01/01/2024")
			}
		})
	}
}

func TestBuildROFGroupCap(t *testing.T) {
	var entries []ImagingEntry
	for i := 1; i <= 6; i++ {
		entries = append(entries, ImagingEntry{Type: "MRI", Facility: fmt.Sprintf("Facility %d", i), City: "Irvine"})
	}

	got := BuildROF(ModeROF, entries, "John")
	for i := 1; i <= 4; i++ {
		assert.Contains(t, got, fmt.Sprintf("Facility %d", i))
	}
	assert.NotContains(t, got, "Facility 5")
	assert.NotContains(t, got, "Facility 6")
	assert.Contains(t, got, "Furthermore, MRI studies were completed at Facility 4 in Irvine.")

	wide := BuildROFWithLimit(ModeROF, entries, "John", 6)
	assert.Contains(t, wide, "Furthermore, MRI studies were completed at Facility 6 in Irvine.")
}

func TestGroupImaging(t *testing.T) {
	groups := GroupImaging([]ImagingEntry{
		{Type: "MRI", Facility: "A", City: "X"},
		{},
		{Type: "CT", Facility: "B"},
		{BodyParts: []string{"Knee"}, Facility: "A", City: "X"},
	}, 0)

	require.Len(t, groups, 2)
	assert.Equal(t, "MRI studies and imaging of the knee", groups[0].Detail())
	assert.Equal(t, "A in X", groups[0].Place())
	assert.Equal(t, "B", groups[1].Place())
}

func TestGroupImagingKeyKeepsCase(t *testing.T) {
	groups := GroupImaging([]ImagingEntry{
		{Type: "MRI", Facility: "Hoag Radiology", City: "Irvine"},
		{Type: "CT", Facility: "HOAG RADIOLOGY", City: "Irvine"},
		{Type: "X-rays", Facility: " Hoag Radiology ", City: "Irvine "},
	}, 0)

	require.Len(t, groups, 2)
	assert.Equal(t, "Hoag Radiology in Irvine", groups[0].Place())
	assert.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "HOAG RADIOLOGY in Irvine", groups[1].Place())
	assert.Len(t, groups[1].Entries, 1)
}

func TestParseROFMode(t *testing.T) {
	m, err := ParseROFMode("re-exam")
	require.NoError(t, err)
	assert.Equal(t, ModeReExam, m)

	_, err = ParseROFMode("bogus")
	assert.Error(t, err)
}
