package narrative

import (
	"regexp"
	"strings"
)

// DescriptorBlock is one subjective pain-descriptor region.
type DescriptorBlock struct {
	Number           int      `json:"number"`
	Region           string   `json:"region"`
	Descriptor1      string   `json:"desc1"`
	Descriptor2      string   `json:"desc2"`
	RadicularSymptom string   `json:"radic_symptom"`
	RadicularLoc     string   `json:"radic_location"`
	Muscles          []string `json:"muscles"`
	PainScale        string   `json:"pain_scale"`
	Narrative        string   `json:"narrative"`
}

// RenumberDescriptor keeps a block's ordinal in step with its position.
func RenumberDescriptor(b *DescriptorBlock, ordinal int) { b.Number = ordinal }

// Active reports whether the block has a known region.
func (b DescriptorBlock) Active() bool { return IsKnownRegion(b.Region) }

// BuildDescriptor writes the narrative for one region block. Blocks without a
// known region produce "".
func BuildDescriptor(b DescriptorBlock) string {
	label := RegionLabel(b.Region)
	if label == "" {
		return ""
	}

	base := joinSentences(
		"The patient reports symptoms in the "+strings.ToLower(label)+".",
		descriptorSentence(b.Descriptor1, b.Descriptor2),
		radicularSentence(b.RadicularSymptom, b.RadicularLoc),
	)

	scale := strings.TrimSpace(b.PainScale)
	if scale == "" {
		scale = "None"
	}

	parts := []string{base}
	if t := tendernessSentence(b.Muscles); t != "" {
		parts = append(parts, t)
	}
	parts = append(parts, "The patient states the overall discomfort in this area is "+strings.ToLower(scale)+".")
	return strings.Join(parts, "\n\n")
}

func descriptorSentence(d1, d2 string) string {
	var phrases []string
	for _, d := range []string{d1, d2} {
		t := strings.ToLower(clean(d))
		if t == "" {
			continue
		}
		if !strings.Contains(t, "pain") {
			t += " pain"
		}
		phrases = append(phrases, t)
	}

	switch len(phrases) {
	case 0:
		return "The patient describes the pain."
	case 1:
		return "The patient describes those symptoms as " + phrases[0] + "."
	default:
		return "The patient describes those symptoms as " + phrases[0] + " along with " + phrases[1] + "."
	}
}

func radicularSentence(symptom, location string) string {
	sym := strings.TrimSpace(symptom)
	if sym == "" || strings.EqualFold(sym, "None") {
		return ""
	}
	if loc := clean(location); loc != "" {
		return "The patient complains of " + strings.ToLower(sym) + " into the " + strings.ToLower(loc) + "."
	}
	return "The patient complains of " + strings.ToLower(sym) + "."
}

func tendernessSentence(muscles []string) string {
	var selected []string
	for _, m := range muscles {
		if t := strings.TrimSpace(m); t != "" {
			selected = append(selected, t)
		}
	}

	const stem = "The patient indicates or points to the "
	switch len(selected) {
	case 0:
		return ""
	case 1:
		return stem + selected[0] + " as the area of tenderness."
	case 2:
		return stem + selected[0] + " and the " + selected[1] + " as the areas of tenderness."
	default:
		mid := strings.Join(selected[:len(selected)-1], ", ")
		return stem + mid + ", and the " + selected[len(selected)-1] + " as the areas of tenderness."
	}
}

var autoLeadIns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bThe patient reports symptoms in the\b`),
	regexp.MustCompile(`(?i)\bTenderness is localized to the\b`),
	regexp.MustCompile(`(?i)\boverall discomfort in this area\b`),
}

// LooksAuto reports whether a descriptor narrative may be overwritten: it is
// blank or still contains one of the generated lead-in phrases.
func LooksAuto(text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	for _, re := range autoLeadIns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
