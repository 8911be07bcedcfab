package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/mrsinham/chiroforge/internal/narrative"
)

// DxSection controls the numbered diagnosis list. Every structural change
// re-renders the text unless the text is locked, in which case the
// clinician's text is kept and becomes what gets exported.
type DxSection struct {
	blocks *narrative.Blocks[narrative.DxBlock]
	locked bool
	text   Text

	prognosis string
	recs      []narrative.ImagingRec
	referrals []narrative.Referral

	g   *guard
	log zerolog.Logger
}

// NewDxSection returns an unlocked, empty diagnosis list.
func NewDxSection(log zerolog.Logger) *DxSection {
	return newDxSection(nil, log)
}

func newDxSection(g *guard, log zerolog.Logger) *DxSection {
	return &DxSection{
		blocks: narrative.NewBlocks(narrative.MaxDxBlocks, narrative.RenumberDx),
		g:      g,
		log:    log.With().Str("section", "dx").Logger(),
	}
}

// Add appends a diagnosis. It returns false when the list is full.
func (s *DxSection) Add(b narrative.DxBlock) bool {
	if !s.blocks.Add(b) {
		s.log.Debug().Int("max", s.blocks.Max()).Msg("diagnosis list full")
		return false
	}
	s.refresh("add")
	return true
}

// Remove deletes the diagnosis at i.
func (s *DxSection) Remove(i int) bool {
	if !s.blocks.Remove(i) {
		return false
	}
	s.refresh("remove")
	return true
}

// Move reorders a diagnosis.
func (s *DxSection) Move(from, to int) bool {
	if !s.blocks.Move(from, to) {
		return false
	}
	s.refresh("move")
	return true
}

// UpdateBlock edits the diagnosis at i.
func (s *DxSection) UpdateBlock(i int, fn func(*narrative.DxBlock)) bool {
	if !s.blocks.Update(i, fn) {
		return false
	}
	s.refresh("edit")
	return true
}

// Blocks returns the diagnoses in order.
func (s *DxSection) Blocks() []narrative.DxBlock { return s.blocks.All() }

// Len returns the number of diagnoses.
func (s *DxSection) Len() int { return s.blocks.Len() }

// Locked reports whether the text is protected from regeneration.
func (s *DxSection) Locked() bool { return s.locked }

// SetLocked protects or releases the text. Releasing it re-renders at once.
func (s *DxSection) SetLocked(on bool) {
	if s.locked == on {
		return
	}
	s.locked = on
	if !on {
		s.refresh("unlocked")
	}
}

// Edit records text typed by the clinician. Without the lock the next
// structural change overwrites it.
func (s *DxSection) Edit(v string) {
	if v == s.text.Value {
		return
	}
	s.text = typed(v)
}

// Rebuild re-renders the text from the blocks even when locked.
func (s *DxSection) Rebuild() {
	s.text = generated(narrative.RenderDx(s.blocks.All()))
	s.log.Debug().Msg("rebuilt")
}

// Refresh re-renders the text unless locked or loading.
func (s *DxSection) Refresh() { s.refresh("refresh") }

func (s *DxSection) refresh(reason string) {
	switch {
	case s.g.suppressed():
		s.log.Debug().Str("reason", reason).Msg("regenerate skipped: loading")
		return
	case s.locked:
		s.log.Debug().Str("reason", reason).Msg("regenerate skipped: locked")
		return
	}
	s.text = generated(narrative.RenderDx(s.blocks.All()))
	s.log.Debug().Str("reason", reason).Int("blocks", s.blocks.Len()).Msg("regenerated")
}

// Text returns the displayed diagnosis text.
func (s *DxSection) Text() Text { return s.text }

// ExportText is the text bound for output, with the AUTO marker removed.
func (s *DxSection) ExportText() string {
	return narrative.StripSentinels(s.text.Value)
}

// Labels returns the deduplicated diagnosis texts for the plan.
func (s *DxSection) Labels() []string {
	return narrative.DxLabels(s.blocks.All())
}

// SetPrognosis records the prognosis selector.
func (s *DxSection) SetPrognosis(p string) { s.prognosis = p }

// Prognosis returns the prognosis selector value.
func (s *DxSection) Prognosis() string { return s.prognosis }

// SetImagingRecs replaces the recommended imaging studies.
func (s *DxSection) SetImagingRecs(recs []narrative.ImagingRec) {
	s.recs = append([]narrative.ImagingRec(nil), recs...)
}

// ImagingRecs returns the recommended imaging studies.
func (s *DxSection) ImagingRecs() []narrative.ImagingRec {
	return append([]narrative.ImagingRec(nil), s.recs...)
}

// SetReferrals replaces the referrals.
func (s *DxSection) SetReferrals(refs []narrative.Referral) {
	s.referrals = append([]narrative.Referral(nil), refs...)
}

// Referrals returns the referrals.
func (s *DxSection) Referrals() []narrative.Referral {
	return append([]narrative.Referral(nil), s.referrals...)
}

// Supplement renders the prognosis, imaging and referral statements.
func (s *DxSection) Supplement() narrative.DxSupplement {
	return narrative.BuildDxSupplement(s.prognosis, s.recs, s.referrals)
}
