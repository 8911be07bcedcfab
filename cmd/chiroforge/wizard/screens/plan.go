package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/components"
	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/types"
	"github.com/mrsinham/chiroforge/internal/narrative"
)

// PlanScreen edits the plan of care.
type PlanScreen struct {
	formScreen
	plan *types.PlanForm
}

// NewPlanScreen creates the plan-of-care screen
func NewPlanScreen(plan *types.PlanForm) *PlanScreen {
	snap := &plan.Snapshot
	svc := &plan.Services

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Key("care_types").
				Title("Care Types").
				Options(options(narrative.CareTypes)...).
				Value(&snap.CareTypes),

			huh.NewMultiSelect[string]().
				Key("plan_regions").
				Title("Regions").
				Options(options(narrative.PlanRegions)...).
				Value(&snap.Regions),

			huh.NewMultiSelect[string]().
				Key("goals").
				Title("Goals").
				Options(options(narrative.Goals)...).
				Value(&snap.Goals),
		),

		huh.NewGroup(
			choiceSelect("frequency", "Visits per Week", narrative.FrequencyChoices, &snap.Frequency),
			choiceOther("frequency", &snap.Frequency),
			choiceSelect("duration", "Weeks", narrative.DurationChoices, &snap.Duration),
			choiceOther("duration", &snap.Duration),
			choiceSelect("reeval", "Re-evaluation", narrative.ReevalChoices, &snap.Reeval),
			choiceOther("reeval", &snap.Reeval),
		),

		huh.NewGroup(
			huh.NewText().
				Key("custom_notes").
				Title("Notes").
				Lines(3).
				Value(&snap.CustomNotes),

			huh.NewConfirm().
				Key("auto").
				Title("Generate the narrative automatically?").
				Value(&plan.Auto),
		),

		huh.NewGroup(
			huh.NewSelect[string]().
				Key("cmt_code").
				Title("Adjustment Code").
				Options(optional(narrative.CMTCodes)...).
				Value(&svc.CMTCode),

			huh.NewMultiSelect[string]().
				Key("cmt_areas").
				Title("Segments Adjusted").
				OptionsFunc(func() []huh.Option[string] {
					return options(narrative.CMTAreas(svc.CMTCode))
				}, &svc.CMTCode).
				Value(&svc.Areas),

			huh.NewMultiSelect[string]().
				Key("techniques").
				Title("Techniques").
				Options(options(narrative.Techniques)...).
				Value(&svc.Techniques),
		).Title("Services Provided Today"),

		huh.NewGroup(
			huh.NewSelect[string]().
				Key("em_code").
				Title("Visit Code").
				Options(optional(narrative.EMCodes)...).
				Value(&svc.EMCode),

			huh.NewText().
				Key("exam_notes").
				Title("Exam Notes").
				Lines(2).
				Value(&svc.ExamNotes),

			huh.NewMultiSelect[string]().
				Key("modalities").
				Title("Modalities").
				Options(options(narrative.ModalityCodes)...).
				Value(&svc.Modalities),

			huh.NewMultiSelect[string]().
				Key("modality_parts").
				Title("Treated Parts").
				Options(options(narrative.ModalityParts)...).
				Value(&svc.Parts),
		),
	)

	return &PlanScreen{
		formScreen: newFormScreen("PLAN OF CARE", "plan", form, components.NewNarrativePreview("Plan narrative")),
		plan:       plan,
	}
}

func choiceSelect(key, title string, values []string, c *narrative.Choice) huh.Field {
	return huh.NewSelect[string]().
		Key(key).
		Title(title).
		Options(optional(values)...).
		Value(&c.Value)
}

// choiceOther is the free-text companion of a schedule selector. It only
// applies while the selector is on (other); huh cannot hide single fields,
// so the title says so.
func choiceOther(key string, c *narrative.Choice) huh.Field {
	return huh.NewInput().
		Key(key).
		Title("  if (other)").
		Value(&c.Other)
}

// Update implements tea.Model
func (s *PlanScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// Plan returns the edited values.
func (s *PlanScreen) Plan() *types.PlanForm { return s.plan }
