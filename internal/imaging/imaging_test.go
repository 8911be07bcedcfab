package imaging

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"

	"github.com/mrsinham/chiroforge/internal/narrative"
)

// mustNewElement creates a new DICOM element, failing the test on error.
func mustNewElement(t *testing.T, tg tag.Tag, value interface{}) *dicom.Element {
	t.Helper()
	elem, err := dicom.NewElement(tg, value)
	require.NoError(t, err)
	return elem
}

type study struct {
	modality, bodyPart, institution, date, description string
}

func writeStudy(t *testing.T, dir, name string, s study) string {
	t.Helper()
	elems := []*dicom.Element{
		mustNewElement(t, tag.MediaStorageSOPClassUID, []string{"1.2.840.10008.5.1.4.1.1.4"}),
		mustNewElement(t, tag.MediaStorageSOPInstanceUID, []string{"1.2.826.0.1.3680043.2.1125.1"}),
		mustNewElement(t, tag.TransferSyntaxUID, []string{"1.2.840.10008.1.2.1"}),
		mustNewElement(t, tag.SOPClassUID, []string{"1.2.840.10008.5.1.4.1.1.4"}),
		mustNewElement(t, tag.SOPInstanceUID, []string{"1.2.826.0.1.3680043.2.1125.1"}),
		mustNewElement(t, tag.StudyDate, []string{s.date}),
		mustNewElement(t, tag.Modality, []string{s.modality}),
		mustNewElement(t, tag.InstitutionName, []string{s.institution}),
		mustNewElement(t, tag.StudyDescription, []string{s.description}),
		mustNewElement(t, tag.PatientName, []string{"Doe^John"}),
		mustNewElement(t, tag.BodyPartExamined, []string{s.bodyPart}),
	}
	sort.Slice(elems, func(i, j int) bool {
		a, b := elems[i].Tag, elems[j].Tag
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Element < b.Element
	})

	path := filepath.Join(dir, name+".dcm")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, dicom.Write(f, dicom.Dataset{Elements: elems}))
	return path
}

func TestReadHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeStudy(t, dir, "mr1", study{"MR", "LSPINE", "Hoag Radiology", "20240115", "MRI L-SPINE W/O"})

	h, err := ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, "MR", h.Modality)
	assert.Equal(t, "LSPINE", h.BodyPart)
	assert.Equal(t, "Hoag Radiology", h.Institution)
	assert.Equal(t, "20240115", h.StudyDate)

	first, last := h.PatientFirstLast()
	assert.Equal(t, "John", first)
	assert.Equal(t, "Doe", last)

	assert.Equal(t, narrative.ImagingEntry{
		Type:      "MRI",
		BodyParts: []string{"Lumbar Spine"},
		Facility:  "Hoag Radiology",
		Date:      "01/15/2024",
	}, ToEntry(h))
}

func TestReadHeaderRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a dicom file"), 0o644))
	_, err := ReadHeader(path)
	assert.Error(t, err)
}

func TestImportFiles(t *testing.T) {
	dir := t.TempDir()
	writeStudy(t, dir, "a1", study{"MR", "LSPINE", "Hoag Radiology", "20240115", ""})
	writeStudy(t, dir, "a2", study{"MR", "LSPINE", "Hoag Radiology", "20240115", ""})
	writeStudy(t, dir, "b1", study{"CR", "", "South Coast Imaging", "20240110", "XR CERVICAL 3V"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644))

	im := NewImporter(zerolog.Nop())
	entries, headers, err := im.ImportFiles(context.Background(), []string{dir})
	require.NoError(t, err)
	assert.Len(t, headers, 3)
	require.Len(t, entries, 2)
	assert.Equal(t, "MRI", entries[0].Type)
	assert.Equal(t, "X-rays", entries[1].Type)
	assert.Equal(t, []string{"Cervical Spine"}, entries[1].BodyParts)
}

func TestImportFilesNothingReadable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))

	_, _, err := NewImporter(zerolog.Nop()).ImportFiles(context.Background(), []string{dir})
	assert.True(t, errors.Is(err, ErrNoReadableFiles))
}

func TestImagingType(t *testing.T) {
	tests := map[string]string{
		"MR": "MRI", "ct": "CT", "CR": "X-rays", "DX": "X-rays",
		"US": "Ultrasound", "NM": "Other", "": "",
	}
	for in, want := range tests {
		assert.Equal(t, want, ImagingType(in), in)
	}
}

func TestBodyPartLabel(t *testing.T) {
	assert.Equal(t, "Cervical Spine", BodyPartLabel("CSPINE", ""))
	assert.Equal(t, "Knee", BodyPartLabel("knee", ""))
	assert.Equal(t, "Chest", BodyPartLabel("CHEST", ""))
	assert.Equal(t, "Abdomen Pelvis", BodyPartLabel("ABDOMEN_PELVIS", ""))
	assert.Equal(t, "Thoracic Spine", BodyPartLabel("", "MRI Thoracic spine"))
	assert.Equal(t, "", BodyPartLabel("", "Routine study"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "01/15/2024", FormatDate("20240115"))
	assert.Equal(t, "202401", FormatDate("202401"))
	assert.Equal(t, "2024011X", FormatDate("2024011X"))
	assert.Equal(t, "", FormatDate(""))
}
