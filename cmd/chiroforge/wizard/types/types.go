// Package types holds the form values bound by the wizard screens.
package types

import "github.com/mrsinham/chiroforge/internal/narrative"

// PatientForm is the patient header and visit name.
type PatientForm struct {
	First    string
	Last     string
	DOB      string
	DOI      string
	Sex      string
	ExamName string
}

// MOIForm is the history-of-injury screen. Imaging holds the single
// structured imaging block the screen edits.
type MOIForm struct {
	Snapshot narrative.MOISnapshot
	Imaging  narrative.ImagingBlock
	Auto     bool
}

// ROFForm is one pass of the review-of-findings screen.
type ROFForm struct {
	Mode       string
	Entry      narrative.ImagingEntry
	Manual     string
	AddAnother bool
}

// DescriptorForm is one pass of the subjective screen.
type DescriptorForm struct {
	Block      narrative.DescriptorBlock
	AddAnother bool
}

// TherapyForm splits the checklist into the main concern and the rest so
// the first-checked order survives a multi-select.
type TherapyForm struct {
	Main   string
	Others []string
	Auto   bool
}

// ObjectivesForm is the objectives screen. Only the global panels are
// edited here; region findings are kept as loaded.
type ObjectivesForm struct {
	Objectives   narrative.Objectives
	ADLSeverity  string
	FamilySocial string
}

// DxForm is one pass of the diagnosis screen.
type DxForm struct {
	Label      string
	EditText   string
	AddAnother bool
}

// DxSupplementForm holds prognosis, one imaging recommendation and one
// referral.
type DxSupplementForm struct {
	Prognosis   string
	RecModality string
	RecPart     string
	Referral    string
	Lock        bool
}

// PlanForm is the plan-of-care screen. The services group flattens the
// per-area techniques and per-modality parts into one selection each.
type PlanForm struct {
	Snapshot narrative.PlanSnapshot
	Auto     bool
	Services ServicesForm
}

// ServicesForm is the services group of the plan screen.
type ServicesForm struct {
	CMTCode    string
	Areas      []string
	Techniques []string
	EMCode     string
	ExamNotes  string
	Modalities []string
	Parts      []string
}
