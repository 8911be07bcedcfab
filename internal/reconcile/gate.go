package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/mrsinham/chiroforge/internal/narrative"
)

// Policy describes how a gated section reacts to user typing.
type Policy struct {
	// TypingDisablesAuto turns the auto flag off on the first manual edit.
	TypingDisablesAuto bool
}

// gate implements the one-way auto/manual rule shared by the MOI, plan and
// therapy sections: while auto is on every driving-field change regenerates;
// turning auto off freezes the text; turning it back on regenerates at once
// and discards whatever was typed meanwhile.
type gate struct {
	section string
	policy  Policy
	auto    bool
	text    Text
	build   func() string
	g       *guard
	log     zerolog.Logger
}

func newGate(section string, policy Policy, g *guard, log zerolog.Logger, build func() string) *gate {
	return &gate{
		section: section,
		policy:  policy,
		auto:    true,
		build:   build,
		g:       g,
		log:     log.With().Str("section", section).Logger(),
	}
}

// Auto reports whether the section regenerates on field changes.
func (a *gate) Auto() bool { return a.auto }

// Text returns the displayed narrative.
func (a *gate) Text() Text { return a.text }

// SetAuto flips the auto flag. Enabling it regenerates immediately.
func (a *gate) SetAuto(on bool) {
	if a.auto == on {
		return
	}
	a.auto = on
	a.log.Debug().Bool("auto", on).Msg("auto toggled")
	if on {
		a.refresh("auto enabled")
	}
}

// Edit records text typed by the clinician.
func (a *gate) Edit(v string) {
	if v == a.text.Value {
		return
	}
	a.text = typed(v)
	if a.policy.TypingDisablesAuto && a.auto {
		a.auto = false
		a.log.Debug().Msg("manual edit disabled auto")
	}
}

// Refresh regenerates the text if the section is in auto mode.
func (a *gate) Refresh() { a.refresh("refresh") }

func (a *gate) refresh(reason string) {
	switch {
	case a.g.suppressed():
		a.log.Debug().Str("reason", reason).Msg("regenerate skipped: loading")
		return
	case !a.auto:
		a.log.Debug().Str("reason", reason).Msg("regenerate skipped: auto off")
		return
	}
	a.text = generated(a.build())
	a.log.Debug().Str("reason", reason).Int("length", len(a.text.Value)).Msg("regenerated")
}

// restore sets state from storage without regenerating.
func (a *gate) restore(auto bool, t Text) {
	a.auto = auto
	a.text = t
}

func hasTag(v, tag string) bool {
	return narrative.HasSentinel(v, tag)
}
