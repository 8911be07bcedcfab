package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/components"
	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/types"
	"github.com/mrsinham/chiroforge/internal/narrative"
)

// MOIScreen edits the structured history of injury. The wizard feeds the
// regenerated narrative back through SetPreview after every update.
type MOIScreen struct {
	formScreen
	moi *types.MOIForm
}

// NewMOIScreen creates the history-of-injury screen
func NewMOIScreen(moi *types.MOIForm) *MOIScreen {
	snap := &moi.Snapshot
	defaultTo(&snap.InjuryType, narrative.InjuryTypes[0])
	defaultTo(&snap.TreatmentReceived, narrative.TreatmentDidNotReceive)
	defaultTo(&snap.MedsPrescribed, narrative.MedsNotPrescribed)
	defaultTo(&snap.ImagingDone, narrative.ImagingNone)

	injury := func(t string) func() bool {
		return func() bool { return snap.InjuryType != t }
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("injury_type").
				Title("Injury Type").
				Options(options(narrative.InjuryTypes)...).
				Value(&snap.InjuryType),

			huh.NewConfirm().
				Key("auto").
				Title("Generate the narrative automatically?").
				Value(&moi.Auto),
		),

		huh.NewGroup(
			huh.NewSelect[string]().
				Key("accident_type").
				Title("Accident Type").
				Options(options(narrative.AccidentTypes)...).
				Value(&snap.AutoAccident.AccidentType),

			huh.NewSelect[string]().
				Key("other_vehicle_part").
				Title("Struck by the other vehicle's").
				Options(options(narrative.OtherVehicleParts)...).
				Value(&snap.AutoAccident.OtherVehiclePart),

			huh.NewSelect[string]().
				Key("patient_side").
				Title("Impact on the patient's vehicle").
				Options(options(narrative.PatientSides)...).
				Value(&snap.AutoAccident.PatientSide),

			huh.NewSelect[string]().
				Key("resembles").
				Title("Resembles").
				Options(optional(narrative.CollisionTypes)...).
				Value(&snap.AutoAccident.Resembles),
		).WithHideFunc(injury(narrative.InjuryAutoAccident)),

		huh.NewGroup(
			huh.NewSelect[string]().
				Key("slip_circumstance").
				Title("Circumstance").
				Options(options(narrative.SlipCircumstances)...).
				Value(&snap.SlipFall.Circumstance),

			huh.NewSelect[string]().
				Key("slip_landing").
				Title("Landing").
				Options(options(narrative.SlipLandings)...).
				Value(&snap.SlipFall.Landing),
		).WithHideFunc(injury(narrative.InjurySlipAndFall)),

		huh.NewGroup(
			huh.NewSelect[string]().
				Key("bite_location").
				Title("Bite Location").
				Options(options(narrative.BiteLocations)...).
				Value(&snap.DogBite.Location),

			huh.NewSelect[string]().
				Key("bite_severity").
				Title("Severity").
				Options(options(narrative.BiteSeverities)...).
				Value(&snap.DogBite.Severity),
		).WithHideFunc(injury(narrative.InjuryDogBite)),

		huh.NewGroup(
			huh.NewSelect[string]().
				Key("treatment").
				Title("Prior Treatment").
				Options(options(narrative.TreatmentOptions)...).
				Value(&snap.TreatmentReceived),

			huh.NewSelect[string]().
				Key("care_setting").
				Title("Care Setting").
				Options(options(narrative.CareSettings)...).
				Value(&snap.CareSetting),

			huh.NewInput().
				Key("facility_name").
				Title("Facility").
				Value(&snap.FacilityName),

			huh.NewSelect[string]().
				Key("meds").
				Title("Medication").
				Options(options(narrative.MedsOptions)...).
				Value(&snap.MedsPrescribed),

			huh.NewMultiSelect[string]().
				Key("med_classes").
				Title("Medication Classes").
				Options(options(narrative.MedClasses)...).
				Value(&snap.MedClasses),
		),

		huh.NewGroup(
			huh.NewSelect[string]().
				Key("imaging_done").
				Title("Imaging").
				Options(options(narrative.ImagingDoneOptions)...).
				Value(&snap.ImagingDone),

			huh.NewMultiSelect[string]().
				Key("imaging_types").
				Title("Imaging Types").
				Options(options(narrative.ImagingTypes)...).
				Value(&moi.Imaging.Types),

			huh.NewMultiSelect[string]().
				Key("imaging_parts").
				Title("Imaged Body Parts").
				Options(options(narrative.ImagingBodyParts)...).
				Value(&moi.Imaging.Parts),

			huh.NewSelect[string]().
				Key("course").
				Title("Course Since Injury").
				Options(optional(narrative.CourseOptions)...).
				Value(&snap.Course),
		),
	)

	return &MOIScreen{
		formScreen: newFormScreen("HISTORY OF INJURY", "moi", form, components.NewNarrativePreview("Mechanism of injury")),
		moi:        moi,
	}
}

func defaultTo(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// Update implements tea.Model
func (s *MOIScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// MOI returns the edited values.
func (s *MOIScreen) MOI() *types.MOIForm { return s.moi }
