package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/components"
	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/types"
	"github.com/mrsinham/chiroforge/internal/narrative"
)

// ROFScreen captures the exam mode, one imaging study and the manual
// findings paragraph. The wizard repeats it while AddAnother is set and the
// block limit allows.
type ROFScreen struct {
	formScreen
	rof *types.ROFForm
}

// NewROFScreen creates the review-of-findings screen for study number index.
// When full is set the study fields are hidden.
func NewROFScreen(rof *types.ROFForm, index int, full bool) *ROFScreen {
	defaultTo(&rof.Mode, string(narrative.ModeROF))
	rof.AddAnother = false

	var modes []string
	for _, m := range narrative.AllROFModes() {
		modes = append(modes, string(m))
	}

	e := &rof.Entry
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("rof_mode").
				Title("Exam Mode").
				Options(options(modes)...).
				Value(&rof.Mode),
		),

		huh.NewGroup(
			huh.NewSelect[string]().
				Key("rof_type").
				Title(fmt.Sprintf("Study %d of %d: Type", index+1, narrative.MaxROFBlocks)).
				Options(optional(narrative.ImagingTypes)...).
				Value(&e.Type),

			huh.NewMultiSelect[string]().
				Key("rof_parts").
				Title("Body Parts").
				Options(options(narrative.ImagingBodyParts)...).
				Value(&e.BodyParts),

			huh.NewSelect[string]().
				Key("rof_facility").
				Title("Facility").
				Options(optional(narrative.ROFFacilities)...).
				Value(&e.Facility),

			huh.NewInput().
				Key("rof_city").
				Title("City").
				Value(&e.City),

			huh.NewInput().
				Key("rof_date").
				Title("Date").
				Description("MM/DD/YYYY").
				Value(&e.Date),

			huh.NewConfirm().
				Key("add_another").
				Title("Add another study?").
				Value(&rof.AddAnother),
		).WithHideFunc(func() bool { return full || rof.Mode != string(narrative.ModeROF) }),

		huh.NewGroup(
			huh.NewText().
				Key("rof_manual").
				Title("Findings").
				Lines(4).
				Value(&rof.Manual),
		).WithHideFunc(func() bool { return rof.Mode != string(narrative.ModeROF) }),
	)

	return &ROFScreen{
		formScreen: newFormScreen("REVIEW OF FINDINGS", "rof", form, components.NewNarrativePreview("Review of findings")),
		rof:        rof,
	}
}

// Update implements tea.Model
func (s *ROFScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// ROF returns the edited values.
func (s *ROFScreen) ROF() *types.ROFForm { return s.rof }
