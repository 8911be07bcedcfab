package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/components"
	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/types"
	"github.com/mrsinham/chiroforge/internal/narrative"
)

// SubjectiveScreen edits one pain-descriptor block.
type SubjectiveScreen struct {
	formScreen
	desc *types.DescriptorForm
}

// NewSubjectiveScreen creates the screen for block number index.
func NewSubjectiveScreen(desc *types.DescriptorForm, index int) *SubjectiveScreen {
	b := &desc.Block
	defaultTo(&b.Region, narrative.RegionNone)
	defaultTo(&b.RadicularSymptom, narrative.RadicularSymptoms[0])
	defaultTo(&b.RadicularLoc, narrative.RadicularLocations[0])
	defaultTo(&b.PainScale, narrative.PainScale[0])
	desc.AddAnother = false

	noRegion := func() bool { return !narrative.IsKnownRegion(b.Region) }

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("region").
				Title(fmt.Sprintf("Region %d of %d", index+1, narrative.MaxDescriptorBlocks)).
				Options(regionOptions()...).
				Value(&b.Region),
		),

		huh.NewGroup(
			huh.NewSelect[string]().
				Key("desc1").
				Title("Pain Descriptor").
				Options(optional(narrative.PainDescriptors)...).
				Value(&b.Descriptor1),

			huh.NewSelect[string]().
				Key("desc2").
				Title("Second Descriptor").
				Options(optional(narrative.PainDescriptors)...).
				Value(&b.Descriptor2),

			huh.NewSelect[string]().
				Key("radic_symptom").
				Title("Radicular Symptom").
				Options(options(narrative.RadicularSymptoms)...).
				Value(&b.RadicularSymptom),

			huh.NewSelect[string]().
				Key("radic_location").
				Title("Radiates To").
				Options(options(narrative.RadicularLocations)...).
				Value(&b.RadicularLoc),

			huh.NewMultiSelect[string]().
				Key("muscles").
				Title("Tender Muscles").
				OptionsFunc(func() []huh.Option[string] {
					return options(narrative.RegionMuscles(b.Region))
				}, &b.Region).
				Value(&b.Muscles),

			huh.NewSelect[string]().
				Key("pain_scale").
				Title("Pain Scale").
				Options(options(narrative.PainScale)...).
				Value(&b.PainScale),
		).WithHideFunc(noRegion),

		huh.NewGroup(
			huh.NewConfirm().
				Key("add_another").
				Title("Add another region?").
				Value(&desc.AddAnother),
		).WithHideFunc(func() bool { return noRegion() || index+1 >= narrative.MaxDescriptorBlocks }),
	)

	return &SubjectiveScreen{
		formScreen: newFormScreen("SUBJECTIVES", "subjectives", form, components.NewNarrativePreview("Region narrative")),
		desc:       desc,
	}
}

func regionOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(narrative.RegionCodes))
	for _, code := range narrative.RegionCodes {
		label := narrative.RegionLabel(code)
		if label == "" {
			label = code
		}
		opts = append(opts, huh.NewOption(label, code))
	}
	return opts
}

// Update implements tea.Model
func (s *SubjectiveScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := s.update(msg)
	s.SetPreview(narrative.BuildDescriptor(s.desc.Block))
	return s, cmd
}

// Descriptor returns the edited values.
func (s *SubjectiveScreen) Descriptor() *types.DescriptorForm { return s.desc }

// TherapyScreen edits the therapy-only checklist.
type TherapyScreen struct {
	formScreen
	therapy *types.TherapyForm
}

// NewTherapyScreen creates the therapy screen
func NewTherapyScreen(therapy *types.TherapyForm) *TherapyScreen {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("therapy_main").
				Title("Main Concern").
				Options(optional(narrative.TherapyBodyParts)...).
				Value(&therapy.Main),

			huh.NewMultiSelect[string]().
				Key("therapy_other").
				Title("Other Areas").
				Options(options(narrative.TherapyBodyParts)...).
				Value(&therapy.Others),

			huh.NewConfirm().
				Key("auto").
				Title("Generate the narrative automatically?").
				Value(&therapy.Auto),
		),
	)

	return &TherapyScreen{
		formScreen: newFormScreen("THERAPY", "therapy", form, components.NewNarrativePreview("Therapy narrative")),
		therapy:    therapy,
	}
}

// Update implements tea.Model
func (s *TherapyScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// Therapy returns the edited values.
func (s *TherapyScreen) Therapy() *types.TherapyForm { return s.therapy }
