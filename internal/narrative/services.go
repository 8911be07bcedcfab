package narrative

import (
	"fmt"
	"strings"
)

// CMT adjustment codes.
var CMTCodes = []string{
	"98940: Spinal, 1-2 regions",
	"98941: Spinal, 3-4 regions",
	"98942: Spinal, 5 regions",
	"98943: Extraspinal",
}

var (
	spinalAreas = []string{"Cervical", "Thoracic", "Lumbar", "Sacral", "Pelvic"}
	extraAreas  = []string{
		"Right Shoulder", "Left Shoulder", "Right Elbow", "Left Elbow",
		"Right Wrist", "Left Wrist", "Right Hip", "Left Hip",
	}
)

// Techniques lists the adjusting techniques.
var Techniques = []string{"Activator", "Diversified", "Thompson Drop Technique"}

// EMCodes lists the evaluation and management codes.
var EMCodes = []string{
	"99212: Office/outpatient visit (straightforward)",
	"99213: Office/outpatient visit (low complexity)",
	"99214: Office/outpatient visit (moderate complexity)",
}

// ModalityCodes lists the billable modalities.
var ModalityCodes = []string{
	"97012: Mechanical Traction",
	"97014: Electric Stimulation",
	"97110: Therapeutic Exercise",
	"97140: Manual Therapy",
	"97035: Ultrasound",
	"97010: Hot/Cold Pack",
	"97112: Neuromuscular Re-ed",
}

// ModalityParts lists the body parts a modality can be applied to.
var ModalityParts = []string{
	"Cervical Spine", "Thoracic Spine", "Lumbar Spine",
	"Right Shoulder", "Left Shoulder", "Right Knee", "Left Knee",
}

// DefaultMinutes is filled in when a modality part is given without time.
const DefaultMinutes = "15"

// CMTAreas returns the areas that can be adjusted under a CMT code.
func CMTAreas(code string) []string {
	if codeOf(code) == "98943" {
		return append([]string(nil), extraAreas...)
	}
	if codeOf(code) == "" {
		return nil
	}
	return append([]string(nil), spinalAreas...)
}

// AdjustedArea is one adjusted segment and the techniques used on it.
type AdjustedArea struct {
	Area       string   `json:"area"`
	Techniques []string `json:"techniques"`
}

// ModalityPart is one treated part and its minutes.
type ModalityPart struct {
	Part    string `json:"part"`
	Minutes string `json:"minutes"`
}

// Modality is one billed modality.
type Modality struct {
	Code  string         `json:"code"`
	Parts []ModalityPart `json:"parts"`
}

// Services is what was done on the visit: the adjustment, the E/M visit
// level and the modalities.
type Services struct {
	CMTCode    string         `json:"cmt_code"`
	Adjusted   []AdjustedArea `json:"adjusted"`
	EMCode     string         `json:"em_code"`
	ExamNotes  string         `json:"exam_notes"`
	Modalities []Modality     `json:"modalities"`
}

// IsZero reports whether no service was recorded.
func (s Services) IsZero() bool {
	return clean(s.CMTCode) == "" && len(s.Adjusted) == 0 && clean(s.EMCode) == "" &&
		clean(s.ExamNotes) == "" && len(s.Modalities) == 0
}

// SetCMTCode selects the adjustment code, expanding a bare code. The
// adjusted areas depend on the code and are cleared when it changes.
func (s *Services) SetCMTCode(code string) {
	code = ResolveCode(CMTCodes, code)
	if code != s.CMTCode {
		s.Adjusted = nil
	}
	s.CMTCode = code
}

// codeOf returns the numeric code of "98941: Spinal, 3-4 regions", or of a
// bare "98941".
func codeOf(s string) string {
	code, _, _ := strings.Cut(clean(s), ":")
	return strings.TrimSpace(code)
}

func descOf(s string) string {
	_, desc, ok := strings.Cut(clean(s), ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(desc)
}

// ResolveCode expands a bare code ("97014") to its catalog entry. Unknown
// codes are kept verbatim.
func ResolveCode(catalog []string, s string) string {
	code := codeOf(s)
	if code == "" {
		return ""
	}
	for _, c := range catalog {
		if codeOf(c) == code {
			return c
		}
	}
	return strings.TrimSpace(s)
}

var modalityAliases = map[string]string{
	"97014": "E-Stim",
	"97010": "Hot / Cold Packs",
}

func modalityName(code string) string {
	if a, ok := modalityAliases[codeOf(code)]; ok {
		return a
	}
	if d := descOf(code); d != "" {
		return d
	}
	return codeOf(code)
}

// PartAbbrev shortens a modality part for the services list.
func PartAbbrev(part string) string {
	p := strings.TrimSpace(part)
	switch p {
	case "Cervical Spine":
		return "C/S"
	case "Thoracic Spine":
		return "T/S"
	case "Lumbar Spine":
		return "L/S"
	}
	if rest, ok := strings.CutPrefix(p, "Right "); ok {
		return "R " + rest
	}
	if rest, ok := strings.CutPrefix(p, "Left "); ok {
		return "L " + rest
	}
	return p
}

// BuildServices writes the services-provided list, or "" when nothing was
// recorded.
func BuildServices(s Services) string {
	var groups []string

	var cmt []string
	if code := codeOf(s.CMTCode); code != "" {
		line := "Adjustment Code: " + code
		if d := descOf(ResolveCode(CMTCodes, s.CMTCode)); d != "" {
			line += " (" + d + ")"
		}
		cmt = append(cmt, line)
	}
	var areas []string
	for _, a := range s.Adjusted {
		area := clean(a.Area)
		if area == "" {
			continue
		}
		if t := DedupePreserveOrder(a.Techniques); len(t) > 0 {
			area += ", Technique(s): " + strings.Join(t, ", ")
		}
		areas = append(areas, "  "+area)
	}
	if len(areas) > 0 {
		cmt = append(cmt, "Segments Adjusted:")
		cmt = append(cmt, areas...)
	}
	if len(cmt) > 0 {
		groups = append(groups, "Chiropractic CMT\n"+strings.Join(cmt, "\n"))
	}

	var em []string
	if code := codeOf(s.EMCode); code != "" {
		line := "Visit Code: " + code
		if d := descOf(ResolveCode(EMCodes, s.EMCode)); d != "" {
			line += " (" + d + ")"
		}
		em = append(em, line)
	}
	if n := clean(s.ExamNotes); n != "" {
		em = append(em, "Notes: "+n)
	}
	if len(em) > 0 {
		groups = append(groups, "Evaluation and Management\n"+strings.Join(em, "\n"))
	}

	var mods []string
	for _, m := range s.Modalities {
		code := codeOf(m.Code)
		if code == "" {
			continue
		}
		line := "Modality Code: " + code
		if name := modalityName(ResolveCode(ModalityCodes, m.Code)); name != code {
			line += " (" + name + ")"
		}
		mods = append(mods, line)
		for _, p := range m.Parts {
			part := clean(p.Part)
			if part == "" {
				continue
			}
			minutes := strings.TrimSpace(p.Minutes)
			if minutes == "" {
				minutes = DefaultMinutes
			}
			mods = append(mods, "  "+PartAbbrev(part)+", "+minutes+"m")
		}
	}
	if len(mods) > 0 {
		groups = append(groups, "Modalities\n"+strings.Join(mods, "\n"))
	}

	return strings.Join(groups, "\n\n")
}

// ParseAdjusted parses "Cervical=Activator+Diversified" into an area and its
// techniques. The techniques are optional.
func ParseAdjusted(s string) (AdjustedArea, error) {
	area, techs, _ := strings.Cut(s, "=")
	area = strings.TrimSpace(area)
	if area == "" {
		return AdjustedArea{}, fmt.Errorf("invalid adjusted area %q (expected AREA[=TECH+TECH])", s)
	}
	var out []string
	for _, t := range strings.Split(techs, "+") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return AdjustedArea{Area: area, Techniques: out}, nil
}

// ParseModality parses "97014=Cervical Spine@10+Lumbar Spine" into a
// modality. Parts without minutes get DefaultMinutes.
func ParseModality(s string) (Modality, error) {
	code, parts, _ := strings.Cut(s, "=")
	if codeOf(code) == "" {
		return Modality{}, fmt.Errorf("invalid modality %q (expected CODE[=PART@MIN+PART])", s)
	}
	m := Modality{Code: ResolveCode(ModalityCodes, code)}
	for _, p := range strings.Split(parts, "+") {
		part, minutes, _ := strings.Cut(p, "@")
		part, minutes = strings.TrimSpace(part), strings.TrimSpace(minutes)
		if part == "" {
			continue
		}
		if minutes == "" {
			minutes = DefaultMinutes
		}
		m.Parts = append(m.Parts, ModalityPart{Part: part, Minutes: minutes})
	}
	return m, nil
}
