package imaging

import (
	"strings"
	"unicode"
)

// ImagingType maps a DICOM modality code to the imaging-type option used by
// the review-of-findings panel.
func ImagingType(modality string) string {
	switch strings.ToUpper(strings.TrimSpace(modality)) {
	case "":
		return ""
	case "MR":
		return "MRI"
	case "CT":
		return "CT"
	case "CR", "DX", "RF":
		return "X-rays"
	case "US":
		return "Ultrasound"
	default:
		return "Other"
	}
}

var bodyParts = map[string]string{
	"CSPINE":   "Cervical Spine",
	"NECK":     "Cervical Spine",
	"TSPINE":   "Thoracic Spine",
	"LSPINE":   "Lumbar Spine",
	"SSPINE":   "Lumbar Spine",
	"SHOULDER": "Shoulder",
	"ELBOW":    "Elbow",
	"WRIST":    "Wrist/Hand",
	"HAND":     "Wrist/Hand",
	"HIP":      "Hip",
	"KNEE":     "Knee",
	"ANKLE":    "Ankle/Foot",
	"FOOT":     "Ankle/Foot",
}

// descriptionHints are checked in order against the study description when
// BodyPartExamined is missing.
var descriptionHints = []struct {
	keyword string
	part    string
}{
	{"CERVICAL", "Cervical Spine"},
	{"C-SPINE", "Cervical Spine"},
	{"THORACIC", "Thoracic Spine"},
	{"T-SPINE", "Thoracic Spine"},
	{"LUMBAR", "Lumbar Spine"},
	{"L-SPINE", "Lumbar Spine"},
	{"SHOULDER", "Shoulder"},
	{"ELBOW", "Elbow"},
	{"WRIST", "Wrist/Hand"},
	{"HAND", "Wrist/Hand"},
	{"HIP", "Hip"},
	{"KNEE", "Knee"},
	{"ANKLE", "Ankle/Foot"},
	{"FOOT", "Ankle/Foot"},
}

// BodyPartLabel names the examined body part. Known codes map to the panel's
// options; other codes are title-cased; a missing code falls back to
// keywords in the study description.
func BodyPartLabel(code, description string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c != "" {
		if label, ok := bodyParts[c]; ok {
			return label
		}
		return titleCase(c)
	}

	d := strings.ToUpper(description)
	for _, h := range descriptionHints {
		if strings.Contains(d, h.keyword) {
			return h.part
		}
	}
	return ""
}

func titleCase(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '_' || r == ' '
	})
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// FormatDate converts a DICOM DA value (YYYYMMDD) to MM/DD/YYYY. Anything
// that is not eight digits is returned unchanged.
func FormatDate(da string) string {
	da = strings.TrimSpace(da)
	if len(da) != 8 {
		return da
	}
	for _, r := range da {
		if r < '0' || r > '9' {
			return da
		}
	}
	return da[4:6] + "/" + da[6:8] + "/" + da[0:4]
}
