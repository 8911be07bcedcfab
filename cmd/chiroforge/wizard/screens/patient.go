package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/types"
	"github.com/mrsinham/chiroforge/internal/narrative"
	"github.com/mrsinham/chiroforge/internal/util"
)

// PatientScreen edits the patient header and the exam name.
type PatientScreen struct {
	formScreen
	patient *types.PatientForm
}

// NewPatientScreen creates the patient screen
func NewPatientScreen(patient *types.PatientForm) *PatientScreen {
	if patient.Sex == "" {
		patient.Sex = narrative.SexOptions[0]
	}
	if patient.ExamName == "" {
		patient.ExamName = "Initial"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("first").
				Title("First Name").
				Value(&patient.First).
				Validate(required("first name")),

			huh.NewInput().
				Key("last").
				Title("Last Name").
				Value(&patient.Last).
				Validate(required("last name")),

			huh.NewInput().
				Key("dob").
				Title("Date of Birth").
				Description("MM/DD/YYYY or YYYY-MM-DD").
				Value(&patient.DOB).
				Validate(validateDate),

			huh.NewInput().
				Key("doi").
				Title("Date of Injury").
				Description("MM/DD/YYYY or YYYY-MM-DD").
				Value(&patient.DOI).
				Validate(validateDate),

			huh.NewSelect[string]().
				Key("sex").
				Title("Sex").
				Options(options(narrative.SexOptions)...).
				Value(&patient.Sex),

			huh.NewInput().
				Key("exam_name").
				Title("Exam Name").
				Value(&patient.ExamName).
				Validate(required("exam name")),
		),
	)

	return &PatientScreen{
		formScreen: newFormScreen("PATIENT", "patient", form, nil),
		patient:    patient,
	}
}

func validateDate(s string) error {
	_, err := util.ISODate(s)
	return err
}

// Update implements tea.Model
func (s *PatientScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// Patient returns the edited values.
func (s *PatientScreen) Patient() *types.PatientForm { return s.patient }
