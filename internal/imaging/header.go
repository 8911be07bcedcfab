// Package imaging reads DICOM headers and turns them into the imaging visits
// narrated in the review of findings.
package imaging

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// ErrNoReadableFiles is returned by ImportFiles when every input failed.
var ErrNoReadableFiles = errors.New("no readable DICOM files")

// Header holds the study attributes an imaging visit is built from.
type Header struct {
	Path             string
	Modality         string
	BodyPart         string
	Institution      string
	StudyDate        string
	StudyDescription string
	PatientName      string
}

// PatientFirstLast splits a DICOM person name "Last^First^..." into its
// first and last components.
func (h Header) PatientFirstLast() (first, last string) {
	parts := strings.Split(h.PatientName, "^")
	last = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		first = strings.TrimSpace(parts[1])
	}
	return first, last
}

// ReadHeader parses a DICOM file element by element, skipping pixel data and
// stopping quietly at the first element it cannot read.
func ReadHeader(path string) (Header, error) {
	ds, err := parseTolerant(path)
	if err != nil {
		return Header{}, fmt.Errorf("read %s: %w", path, err)
	}

	return Header{
		Path:             path,
		Modality:         getStringValue(ds, tag.Modality),
		BodyPart:         getStringValue(ds, tag.BodyPartExamined),
		Institution:      getStringValue(ds, tag.InstitutionName),
		StudyDate:        getStringValue(ds, tag.StudyDate),
		StudyDescription: getStringValue(ds, tag.StudyDescription),
		PatientName:      getStringValue(ds, tag.PatientName),
	}, nil
}

// getStringValue safely extracts a string value from a dataset
func getStringValue(ds dicom.Dataset, t tag.Tag) string {
	elem, err := ds.FindElementByTag(t)
	if err != nil || elem == nil {
		return ""
	}
	return strings.TrimSpace(strings.Trim(elem.Value.String(), " []"))
}

func parseTolerant(path string) (dicom.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return dicom.Dataset{}, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return dicom.Dataset{}, err
	}

	p, err := dicom.NewParser(f, info.Size(), nil, dicom.SkipPixelData())
	if err != nil {
		return dicom.Dataset{}, err
	}

	var elements []*dicom.Element
	for {
		elem, err := p.Next()
		if err != nil {
			// io.EOF or a damaged element: keep what was read so far
			break
		}
		elements = append(elements, elem)
	}

	if len(elements) == 0 {
		return dicom.Dataset{}, fmt.Errorf("no elements parsed")
	}

	meta := p.GetMetadata()
	return dicom.Dataset{Elements: append(meta.Elements, elements...)}, nil
}
