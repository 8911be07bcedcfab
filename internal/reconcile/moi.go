package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/mrsinham/chiroforge/internal/narrative"
)

// MOISection controls the mechanism-of-injury narrative. Typing into the
// narrative turns auto off.
type MOISection struct {
	*gate
	snap    narrative.MOISnapshot
	patient func() narrative.PatientContext
	regions func() []string
}

// NewMOISection returns a controller in auto mode. patient and regions are
// read on every regeneration.
func NewMOISection(patient func() narrative.PatientContext, regions func() []string, log zerolog.Logger) *MOISection {
	return newMOISection(nil, patient, regions, log)
}

func newMOISection(g *guard, patient func() narrative.PatientContext, regions func() []string, log zerolog.Logger) *MOISection {
	s := &MOISection{patient: patient, regions: regions}
	s.gate = newGate("moi", Policy{TypingDisablesAuto: true}, g, log, s.build)
	return s
}

// Snapshot returns a copy of the structured fields.
func (s *MOISection) Snapshot() narrative.MOISnapshot { return s.snap }

// Update applies a driving-field change.
func (s *MOISection) Update(fn func(*narrative.MOISnapshot)) {
	fn(&s.snap)
	s.refresh("field change")
}

func (s *MOISection) build() string {
	var pc narrative.PatientContext
	if s.patient != nil {
		pc = s.patient()
	}
	var regions []string
	if s.regions != nil {
		regions = s.regions()
	}
	return narrative.BuildMOI(s.snap, pc, regions)
}
