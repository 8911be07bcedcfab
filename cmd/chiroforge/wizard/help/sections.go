package help

import "strings"

// Section describes one wizard screen and how its narrative is kept.
type Section struct {
	Title   string
	Summary string
	// Rule explains when the section's narrative regenerates. Empty for
	// screens without a generated narrative.
	Rule string
}

// Sections maps a screen key to its description. The keys match the
// section names used by the editor ("moi", "therapy", "dx", ...).
var Sections = map[string]Section{
	"patient": {
		Title:   "PATIENT",
		Summary: "Demographics printed in the report header and used by every narrative.",
	},
	"moi": {
		Title:   "HISTORY OF INJURY",
		Summary: "Mechanism, course, prior care, medication and imaging history.",
		Rule:    "Auto on: any change regenerates. Editing the text turns auto off.",
	},
	"rof": {
		Title:   "REVIEW OF FINDINGS",
		Summary: "Outside imaging reviewed with the patient, grouped by facility.",
		Rule:    "The generated paragraph always follows the visits. Typed notes are kept apart.",
	},
	"subjectives": {
		Title:   "SUBJECTIVES",
		Summary: "One block per painful region with descriptors, radicular signs and tender structures.",
		Rule:    "A block regenerates while its text still reads as generated.",
	},
	"therapy": {
		Title:   "THERAPY",
		Summary: "Therapy-only visits: checked areas, main concern first.",
		Rule:    "Auto on: checking an area regenerates. Editing the text turns auto off.",
	},
	"objectives": {
		Title:   "OBJECTIVES",
		Summary: "Vitals, posture, grip strength, functional status and family/social history.",
		Rule:    "Printed as recorded. Region findings are set with regen --set objectives.finding.",
	},
	"dx": {
		Title:   "DIAGNOSIS",
		Summary: "Numbered diagnosis list with ICD-10 codes.",
		Rule:    "Regenerates from the blocks unless the list is locked.",
	},
	"supplements": {
		Title:   "PROGNOSIS & RECOMMENDATIONS",
		Summary: "Prognosis, recommended imaging and referrals printed after the diagnosis.",
	},
	"plan": {
		Title:   "PLAN OF CARE",
		Summary: "Care types, regions, schedule, goals and the services provided today.",
		Rule:    "Auto on: any change regenerates, even after editing. Auto off freezes the text.",
	},
}

// Lookup returns the help entry for field on the given screen. An entry
// keyed "section.field" wins over the shared "field" entry.
func Lookup(section, field string) (HelpText, bool) {
	section = strings.ToLower(strings.TrimSpace(section))
	field = strings.ToLower(strings.TrimSpace(field))
	if field == "" {
		return HelpText{}, false
	}
	if section != "" {
		if t, ok := Texts[section+"."+field]; ok {
			return t, true
		}
	}
	t, ok := Texts[field]
	return t, ok
}
