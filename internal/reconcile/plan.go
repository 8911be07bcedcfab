package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/mrsinham/chiroforge/internal/narrative"
)

// PlanSection controls the plan-of-care narrative. Unlike MOI, typing does
// not change the auto flag; the flag alone decides whether changes
// regenerate.
type PlanSection struct {
	*gate
	snap      narrative.PlanSnapshot
	services  narrative.Services
	diagnoses func() []string
}

// NewPlanSection returns a controller in auto mode. diagnoses may be nil.
func NewPlanSection(diagnoses func() []string, log zerolog.Logger) *PlanSection {
	return newPlanSection(nil, diagnoses, log)
}

func newPlanSection(g *guard, diagnoses func() []string, log zerolog.Logger) *PlanSection {
	s := &PlanSection{diagnoses: diagnoses}
	s.gate = newGate("plan", Policy{}, g, log, s.build)
	return s
}

// Snapshot returns a copy of the structured fields.
func (s *PlanSection) Snapshot() narrative.PlanSnapshot { return s.snap }

// Update applies a driving-field change.
func (s *PlanSection) Update(fn func(*narrative.PlanSnapshot)) {
	fn(&s.snap)
	s.refresh("field change")
}

func (s *PlanSection) build() string {
	snap := s.snap
	if s.diagnoses != nil {
		snap.Diagnoses = s.diagnoses()
	}
	return narrative.BuildPlan(snap)
}

// Services returns the services provided on the visit.
func (s *PlanSection) Services() narrative.Services { return s.services }

// UpdateServices applies a change to the services. Services are listed, not
// narrated, so the plan text is left alone.
func (s *PlanSection) UpdateServices(fn func(*narrative.Services)) {
	fn(&s.services)
}

// SetCMTCode selects the adjustment code; see narrative.Services.SetCMTCode.
func (s *PlanSection) SetCMTCode(code string) {
	s.services.SetCMTCode(code)
}
