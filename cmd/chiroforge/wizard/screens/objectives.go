package screens

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/components"
	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/types"
	"github.com/mrsinham/chiroforge/internal/narrative"
)

// ObjectivesScreen edits vitals, posture, grip, the ADL panel and the
// family and social history.
type ObjectivesScreen struct {
	formScreen
	obj *types.ObjectivesForm
}

// NewObjectivesScreen creates the objectives screen
func NewObjectivesScreen(f *types.ObjectivesForm) *ObjectivesScreen {
	o := &f.Objectives

	input := func(key, title string, v *string) huh.Field {
		return huh.NewInput().Key(key).Title(title).Value(v)
	}
	notes := func(key string, v *string) huh.Field {
		return huh.NewText().Key(key).Title("Notes").Lines(2).Value(v)
	}

	form := huh.NewForm(
		huh.NewGroup(
			input("bp", "BP", &o.Vitals.BP),
			input("pulse", "Pulse", &o.Vitals.Pulse),
			input("resp", "Resp", &o.Vitals.Resp),
			input("temp", "Temp", &o.Vitals.Temp),
			input("height", "Height", &o.Vitals.Height),
			input("weight", "Weight", &o.Vitals.Weight),
			input("spo2", "SpO2", &o.Vitals.SpO2),
			notes("vitals_notes", &o.Vitals.Notes),
		).Title("Vitals"),

		huh.NewGroup(
			huh.NewSelect[string]().
				Key("shoulder_levels").
				Title("Shoulder Levels").
				Options(optional(narrative.PostureLevels[1:])...).
				Value(&o.Posture.ShoulderLevels),

			huh.NewSelect[string]().
				Key("kyphosis").
				Title("Kyphosis (T/S)").
				Options(optional(narrative.PostureSeverity[1:])...).
				Value(&o.Posture.KyphosisTS),

			huh.NewSelect[string]().
				Key("forward_head").
				Title("Forward Head Posture (C/S)").
				Options(optional(narrative.PostureSeverity[1:])...).
				Value(&o.Posture.ForwardHeadCS),

			huh.NewSelect[string]().
				Key("lordosis").
				Title("Lordosis (L/S)").
				Options(optional(narrative.LordosisLevels[1:])...).
				Value(&o.Posture.LordosisLS),

			notes("posture_notes", &o.Posture.Notes),
		).Title("Posture"),

		huh.NewGroup(
			input("grip_left", "Left", &o.Grip.Left),
			input("grip_right", "Right", &o.Grip.Right),
			huh.NewSelect[string]().
				Key("grip_compare").
				Title("Comparison").
				Options(optional(narrative.GripComparisons[1:])...).
				Value(&o.Grip.Compare),
			notes("grip_notes", &o.Grip.Notes),
		).Title("Grip Strength (Jamar)"),

		huh.NewGroup(
			huh.NewSelect[string]().
				Key("adl_severity").
				Title("ADL Impact").
				Options(severityOptions()...).
				Value(&f.ADLSeverity),

			huh.NewMultiSelect[string]().
				Key("adl_items").
				Title("Affected ADLs").
				Options(options(narrative.ADLItems)...).
				Value(&o.ADL.Items),

			notes("adl_notes", &o.ADL.Notes),
		).Title("Functional Status"),

		huh.NewGroup(
			huh.NewText().
				Key("family_social").
				Title("Family / Social History").
				Lines(4).
				Value(&f.FamilySocial),
		),
	)

	return &ObjectivesScreen{
		formScreen: newFormScreen("OBJECTIVES", "objectives", form, components.NewNarrativePreview("Objectives")),
		obj:        f,
	}
}

// severityOptions lists the 0-9 scale with its labels, after "(none)".
func severityOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("(none)", "")}
	for i, label := range narrative.SeverityLabels {
		v := strconv.Itoa(i)
		opts = append(opts, huh.NewOption(v+" "+label, v))
	}
	return opts
}

// Update implements tea.Model
func (s *ObjectivesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// Objectives returns the edited values.
func (s *ObjectivesScreen) Objectives() *types.ObjectivesForm { return s.obj }
