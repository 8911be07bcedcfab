package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/mrsinham/chiroforge/internal/narrative"
)

// TherapySection controls the therapy-only subjective flow.
type TherapySection struct {
	*gate
	order *narrative.OrderList
}

// NewTherapySection returns a controller with nothing checked.
func NewTherapySection(log zerolog.Logger) *TherapySection {
	return newTherapySection(nil, log)
}

func newTherapySection(g *guard, log zerolog.Logger) *TherapySection {
	s := &TherapySection{order: narrative.NewOrderList(nil)}
	s.gate = newGate("therapy", Policy{TypingDisablesAuto: true}, g, log, s.build)
	return s
}

// Toggle records a checkbox change and regenerates.
func (s *TherapySection) Toggle(part string, checked bool) {
	s.order.Toggle(part, checked)
	s.refresh("toggle")
}

// Order returns the checked parts, main concern first.
func (s *TherapySection) Order() []string { return s.order.Items() }

// Checked reports whether part is checked.
func (s *TherapySection) Checked(part string) bool { return s.order.Checked(part) }

// Main returns the main concern.
func (s *TherapySection) Main() (string, bool) { return s.order.Main() }

func (s *TherapySection) build() string {
	return narrative.BuildTherapyNarrative(s.order)
}
