package narrative

import "strings"

// Choice is a fixed-option selector with a free-text escape hatch.
type Choice struct {
	Value string `json:"choice"`
	Other string `json:"other"`
}

// Resolve returns the effective value: the free text when "(other)" is
// selected, the selection otherwise.
func (c Choice) Resolve() string {
	v := strings.TrimSpace(c.Value)
	if v == OtherChoice {
		return strings.TrimSpace(c.Other)
	}
	return v
}

// ChoiceFromValue maps a stored value back onto a selector: known options
// select directly, anything else becomes "(other)" with free text.
func ChoiceFromValue(options []string, value string) Choice {
	v := strings.TrimSpace(value)
	if v == "" {
		return Choice{}
	}
	for _, o := range options {
		if o == v && o != OtherChoice {
			return Choice{Value: v}
		}
	}
	return Choice{Value: OtherChoice, Other: v}
}

// PlanSnapshot is the structured plan-of-care section.
type PlanSnapshot struct {
	CareTypes   []string `json:"care_types"`
	Regions     []string `json:"regions"`
	Goals       []string `json:"goals"`
	Frequency   Choice   `json:"frequency"`
	Duration    Choice   `json:"duration"`
	Reeval      Choice   `json:"reeval"`
	Diagnoses   []string `json:"-"`
	CustomNotes string   `json:"custom_notes"`
}

// BuildPlan writes the plan-of-care narrative, led by the TagPlan token.
// Custom notes are kept with the plan and never narrated.
func BuildPlan(s PlanSnapshot) string {
	parts := []string{TagPlan}

	care := JoinHuman(s.CareTypes, false)
	regions := JoinHuman(s.Regions, false)
	switch {
	case care != "" && regions != "":
		parts = append(parts, "The patient will receive "+care+" directed to "+regions+".")
	case care != "":
		parts = append(parts, "The patient will receive "+care+".")
	case regions != "":
		parts = append(parts, "Care will be directed to "+regions+".")
	default:
		parts = append(parts, "A plan of care is recommended as clinically indicated.")
	}

	freq, dur := s.Frequency.Resolve(), s.Duration.Resolve()
	switch {
	case freq != "" && dur != "":
		parts = append(parts, "Recommended frequency is "+freq+" visit(s) per week for "+dur+" week(s).")
	case freq != "":
		parts = append(parts, "Recommended frequency is "+freq+" visit(s) per week.")
	case dur != "":
		parts = append(parts, "Recommended duration is "+dur+" week(s).")
	}

	if goals := JoinHuman(s.Goals, true); goals != "" {
		parts = append(parts, "Treatment goals include "+goals+".")
	} else {
		parts = append(parts, "Treatment goals include improving function and reducing symptoms.")
	}

	if dx := JoinHuman(DedupePreserveOrder(s.Diagnoses), false); dx != "" {
		parts = append(parts, "This plan is based on clinical findings consistent with: "+dx+".")
	}

	if reeval := s.Reeval.Resolve(); reeval != "" {
		parts = append(parts, "The patient will be re-evaluated at "+reeval+" to assess response and modify care as indicated.")
	}

	parts = append(parts, "The patient verbalizes understanding and agrees with the plan of care.")
	return joinSentences(parts...)
}
