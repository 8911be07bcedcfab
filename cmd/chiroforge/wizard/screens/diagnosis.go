package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/components"
	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/types"
	"github.com/mrsinham/chiroforge/internal/narrative"
)

// DiagnosisScreen picks one numbered diagnosis.
type DiagnosisScreen struct {
	formScreen
	dx *types.DxForm
}

// NewDiagnosisScreen creates the screen for diagnosis number index.
func NewDiagnosisScreen(dx *types.DxForm, index int) *DiagnosisScreen {
	dx.AddAnother = false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("dx_label").
				Title(fmt.Sprintf("Diagnosis %d of %d", index+1, narrative.MaxDxBlocks)).
				Options(dxOptions()...).
				Height(12).
				Value(&dx.Label),

			huh.NewInput().
				Key("dx_edit").
				Title("Wording").
				Description("Leave empty to print the picklist label").
				Value(&dx.EditText).
				Validate(func(s string) error {
					if dx.Label == narrative.DxOther {
						return required("wording")(s)
					}
					return nil
				}),

			huh.NewConfirm().
				Key("add_another").
				Title("Add another diagnosis?").
				Value(&dx.AddAnother),
		),
	)

	return &DiagnosisScreen{
		formScreen: newFormScreen("DIAGNOSIS", "dx", form, components.NewNarrativePreview("Diagnosis list")),
		dx:         dx,
	}
}

func dxOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, d := range narrative.DxTable {
		opts = append(opts, huh.NewOption(d.Display(), d.Label))
	}
	return opts
}

// Update implements tea.Model
func (s *DiagnosisScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// Dx returns the edited values.
func (s *DiagnosisScreen) Dx() *types.DxForm { return s.dx }

// DxSupplementScreen edits prognosis, imaging recommendation, referral and
// the manual lock of the diagnosis list.
type DxSupplementScreen struct {
	formScreen
	sup *types.DxSupplementForm
}

// NewDxSupplementScreen creates the diagnosis supplement screen
func NewDxSupplementScreen(sup *types.DxSupplementForm) *DxSupplementScreen {
	defaultTo(&sup.Prognosis, narrative.PrognosisChoices[0])
	defaultTo(&sup.RecModality, narrative.RecModalities[0])
	defaultTo(&sup.RecPart, narrative.RecBodyParts[0])
	defaultTo(&sup.Referral, narrative.ReferralProviders[0])

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("prognosis").
				Title("Prognosis").
				Options(options(narrative.PrognosisChoices)...).
				Value(&sup.Prognosis),

			huh.NewSelect[string]().
				Key("rec_modality").
				Title("Recommended Imaging").
				Options(options(narrative.RecModalities)...).
				Value(&sup.RecModality),

			huh.NewSelect[string]().
				Key("rec_part").
				Title("Imaging Body Part").
				Options(options(narrative.RecBodyParts)...).
				Value(&sup.RecPart),

			huh.NewSelect[string]().
				Key("referral").
				Title("Referral").
				Options(options(narrative.ReferralProviders)...).
				Value(&sup.Referral),

			huh.NewConfirm().
				Key("dx_lock").
				Title("Lock the diagnosis list?").
				Value(&sup.Lock),
		),
	)

	return &DxSupplementScreen{
		formScreen: newFormScreen("PROGNOSIS & RECOMMENDATIONS", "supplements", form, components.NewNarrativePreview("Supplements")),
		sup:        sup,
	}
}

// Update implements tea.Model
func (s *DxSupplementScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := s.update(msg)
	s.SetPreview(SupplementText(*s.sup))
	return s, cmd
}

// Supplement returns the edited values.
func (s *DxSupplementScreen) Supplement() *types.DxSupplementForm { return s.sup }

// SupplementText renders the supplement statements of sup.
func SupplementText(sup types.DxSupplementForm) string {
	out := narrative.BuildDxSupplement(sup.Prognosis,
		[]narrative.ImagingRec{{Modality: sup.RecModality, BodyPart: sup.RecPart}},
		[]narrative.Referral{{ProviderType: sup.Referral}},
	)
	var lines []string
	if out.Prognosis != "" {
		lines = append(lines, "Prognosis: "+out.Prognosis)
	}
	for _, l := range []string{out.Imaging, out.Referrals} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n\n")
}
