package narrative

import (
	"fmt"
	"strings"
)

// DxCode pairs a diagnosis label with its ICD-10 code.
type DxCode struct {
	Label string
	ICD10 string
}

// DxOther is the table row whose text is always typed by the clinician.
const DxOther = "Other (free text)"

// DxTable is the diagnosis picklist, grouped by body area.
var DxTable = []DxCode{
	// Head / neuro
	{"Concussion without loss of consciousness (initial encounter)", "S06.0X0A"},
	{"Concussion with loss of consciousness (initial encounter)", "S06.0X9A"},
	{"Post-traumatic headache, not intractable", "G44.309"},
	{"Post-traumatic headache, intractable", "G44.301"},
	{"Cervicogenic headache (clinical correlation)", "R51.9"},
	{"Dizziness / vertigo (clinical correlation)", "R42"},

	// Cervical
	{"Cervical disc displacement", "M50.20"},
	{"Cervical sprain/strain (whiplash)", "S13.4XXA"},
	{"Radiculopathy, Cervical Region", "M54.12"},
	{"Cervical muscle spasm", "M62.838"},
	{"Cervical disc degeneration", "M50.30"},
	{"Cervical spinal stenosis", "M48.02"},
	{"Cervical spondylosis", "M47.812"},
	{"Neck pain (cervicalgia)", "M54.2"},

	// Thoracic
	{"Thoracic disc displacement", "M51.24"},
	{"Thoracic sprain/strain", "S23.3XXA"},
	{"Thoracic muscle spasm", "M62.830"},
	{"Thoracic radiculopathy", "M54.14"},
	{"Thoracic spine pain", "M54.6"},
	{"Thoracic spondylosis", "M47.814"},

	// Lumbar / SI
	{"Lumbar disc displacement", "M51.26"},
	{"Lumbar sprain/strain", "S33.5XXA"},
	{"Lumbar radiculopathy", "M54.16"},
	{"Lumbar muscle spasm", "M62.830"},
	{"Sacroiliac joint dysfunction", "M53.3"},
	{"Low back pain", "M54.50"},
	{"Lumbar disc degeneration", "M51.36"},
	{"Lumbar spinal stenosis", "M48.061"},
	{"Lumbar spondylosis", "M47.816"},

	// Upper extremity
	{"Right shoulder sprain", "S43.401A"},
	{"Left shoulder sprain", "S43.402A"},
	{"Right elbow sprain", "S53.401A"},
	{"Left elbow sprain", "S53.402A"},
	{"Right wrist sprain", "S63.501A"},
	{"Left wrist sprain", "S63.502A"},
	{"Right hand sprain", "S63.601A"},
	{"Left hand sprain", "S63.602A"},
	{"Finger pain", "M79.646"},

	// Lower extremity
	{"Right hip sprain", "S73.101A"},
	{"Left hip sprain", "S73.102A"},
	{"Right knee sprain", "S83.91XA"},
	{"Left knee sprain", "S83.92XA"},
	{"Right ankle sprain", "S93.401A"},
	{"Left ankle sprain", "S93.402A"},
	{"Right foot sprain", "S93.601A"},
	{"Left foot sprain", "S93.602A"},

	// Incident / mechanism
	{"Driver injured in unspecified motor-vehicle accident, traffic (initial encounter)", "V89.2XXA"},
	{"Passenger injured in unspecified motor-vehicle accident, traffic (initial encounter)", "V89.2XXA"},
	{"Fall on same level from slipping/tripping (initial encounter)", "W01.0XXA"},
	{"Dog bite (initial encounter)", "W54.0XXA"},

	// Soft tissue
	{"Myofascial pain syndrome (clinical correlation)", "M79.18"},
	{"Contusion (clinical correlation)", "T14.8XXA"},
	{DxOther, ""},
}

// LookupDx finds a table row by label, case-insensitively.
func LookupDx(label string) (DxCode, bool) {
	l := strings.TrimSpace(label)
	for _, d := range DxTable {
		if strings.EqualFold(d.Label, l) {
			return d, true
		}
	}
	return DxCode{}, false
}

// Display is the picklist rendering: the label, a dash, then the code.
func (d DxCode) Display() string {
	if d.ICD10 == "" {
		return d.Label
	}
	return d.Label + " — " + d.ICD10
}

// DxBlock is one numbered diagnosis line.
type DxBlock struct {
	Number   int    `json:"number"`
	Label    string `json:"dx_label"`
	ICD10    string `json:"icd10"`
	EditText string `json:"edit_text"`
}

// Text is the override when present, otherwise the table label.
func (b DxBlock) Text() string {
	if t := strings.TrimSpace(b.EditText); t != "" {
		return t
	}
	return strings.TrimSpace(b.Label)
}

// RenumberDx keeps a block's ordinal in step with its position.
func RenumberDx(b *DxBlock, ordinal int) { b.Number = ordinal }

// RenderDx writes one numbered line per block and a trailing TagDx line.
// Blocks with neither text nor code are skipped without consuming a number.
func RenderDx(blocks []DxBlock) string {
	var lines []string
	n := 0
	for _, b := range blocks {
		text := b.Text()
		code := strings.TrimSpace(b.ICD10)
		if text == "" && code == "" {
			continue
		}
		n++
		if code != "" {
			lines = append(lines, fmt.Sprintf("%d. %s (%s)", n, text, code))
		} else {
			lines = append(lines, fmt.Sprintf("%d. %s", n, text))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n" + TagDx
}

// DxLabels returns the block texts, deduplicated, for the plan's
// diagnosis-reference sentence.
func DxLabels(blocks []DxBlock) []string {
	labels := make([]string, 0, len(blocks))
	for _, b := range blocks {
		labels = append(labels, b.Text())
	}
	return DedupePreserveOrder(labels)
}

// ImagingRec is one recommended imaging study.
type ImagingRec struct {
	Modality string `json:"modality"`
	BodyPart string `json:"body_part"`
}

// Referral is one outside provider referral.
type Referral struct {
	ProviderType string `json:"provider_type"`
}

// DxSupplement holds the prognosis, imaging and referral statements that
// accompany the diagnosis list.
type DxSupplement struct {
	Prognosis string
	Imaging   string
	Referrals string
}

// BuildDxSupplement renders the supplementary diagnosis statements. Fields
// left at a placeholder are omitted.
func BuildDxSupplement(prognosis string, recs []ImagingRec, refs []Referral) DxSupplement {
	var out DxSupplement
	out.Prognosis = clean(prognosis)

	var studies []string
	for _, r := range recs {
		mod, part := clean(r.Modality), clean(r.BodyPart)
		if mod != "" && part != "" {
			studies = append(studies, mod+" of "+part)
		}
	}
	if joined := JoinHuman(studies, false); joined != "" {
		out.Imaging = "Due to the patient's ongoing subjective complaints along with positive objective findings, " +
			"the patient will need to undergo imaging studies as follows: " + joined + "."
	}

	var providers []string
	for _, r := range refs {
		if p := clean(r.ProviderType); p != "" {
			providers = append(providers, p)
		}
	}
	if joined := JoinHuman(providers, false); joined != "" {
		out.Referrals = "Referrals: " + joined + "."
	}
	return out
}
