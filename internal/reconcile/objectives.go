package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/mrsinham/chiroforge/internal/narrative"
)

// ObjectivesSection holds the objective examination and the family and
// social history. Neither is narrated, so there is nothing to reconcile; the
// report prints them as recorded.
type ObjectivesSection struct {
	obj    narrative.Objectives
	family string
	log    zerolog.Logger
}

func newObjectivesSection(log zerolog.Logger) *ObjectivesSection {
	return &ObjectivesSection{log: log.With().Str("section", "objectives").Logger()}
}

// Snapshot returns the recorded objectives.
func (s *ObjectivesSection) Snapshot() narrative.Objectives { return s.obj }

// Update applies a change to the objectives.
func (s *ObjectivesSection) Update(fn func(*narrative.Objectives)) {
	fn(&s.obj)
	s.log.Debug().Int("blocks", len(s.obj.Blocks)).Msg("objectives updated")
}

// Rate records one finding; see narrative.Objectives.Rate.
func (s *ObjectivesSection) Rate(region, section, name string, r narrative.Rating) error {
	return s.obj.Rate(region, section, name, r)
}

// FamilySocial returns the family and social history.
func (s *ObjectivesSection) FamilySocial() string { return s.family }

// SetFamilySocial replaces the family and social history.
func (s *ObjectivesSection) SetFamilySocial(v string) { s.family = v }
