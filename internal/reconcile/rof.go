package reconcile

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/mrsinham/chiroforge/internal/narrative"
)

// ROFSection controls the review-of-findings panel. The auto paragraph is
// rebuilt on every change; the manual paragraph belongs to the clinician and
// is never touched.
type ROFSection struct {
	mode      narrative.ROFMode
	blocks    *narrative.Blocks[narrative.ImagingEntry]
	auto      string
	manual    string
	maxGroups int
	first     func() string

	g   *guard
	log zerolog.Logger
}

// NewROFSection returns a controller in ROF mode. first supplies the
// patient's first name.
func NewROFSection(first func() string, maxGroups int, log zerolog.Logger) *ROFSection {
	return newROFSection(nil, first, maxGroups, log)
}

func newROFSection(g *guard, first func() string, maxGroups int, log zerolog.Logger) *ROFSection {
	if maxGroups <= 0 {
		maxGroups = narrative.MaxROFGroups
	}
	return &ROFSection{
		mode:      narrative.ModeROF,
		blocks:    narrative.NewBlocks[narrative.ImagingEntry](narrative.MaxROFBlocks, nil),
		maxGroups: maxGroups,
		first:     first,
		g:         g,
		log:       log.With().Str("section", "rof").Logger(),
	}
}

// Mode returns the visit type.
func (s *ROFSection) Mode() narrative.ROFMode { return s.mode }

// SetMode changes the visit type and rebuilds.
func (s *ROFSection) SetMode(m narrative.ROFMode) {
	s.mode = m
	s.refresh("mode")
}

// Add appends an imaging visit. It returns false when the panel is full.
func (s *ROFSection) Add(e narrative.ImagingEntry) bool {
	if !s.blocks.Add(e) {
		return false
	}
	s.refresh("add")
	return true
}

// Remove deletes the imaging visit at i.
func (s *ROFSection) Remove(i int) bool {
	if !s.blocks.Remove(i) {
		return false
	}
	s.refresh("remove")
	return true
}

// Move reorders an imaging visit.
func (s *ROFSection) Move(from, to int) bool {
	if !s.blocks.Move(from, to) {
		return false
	}
	s.refresh("move")
	return true
}

// UpdateBlock edits the imaging visit at i.
func (s *ROFSection) UpdateBlock(i int, fn func(*narrative.ImagingEntry)) bool {
	if !s.blocks.Update(i, fn) {
		return false
	}
	s.refresh("edit")
	return true
}

// Entries returns the imaging visits in order.
func (s *ROFSection) Entries() []narrative.ImagingEntry { return s.blocks.All() }

// Len returns the number of imaging visits.
func (s *ROFSection) Len() int { return s.blocks.Len() }

// Full reports whether no more visits can be added.
func (s *ROFSection) Full() bool { return s.blocks.Len() >= s.blocks.Max() }

// SetManual replaces the clinician's paragraph.
func (s *ROFSection) SetManual(v string) { s.manual = v }

// AutoParagraph returns the generated paragraph.
func (s *ROFSection) AutoParagraph() string { return s.auto }

// ManualParagraph returns the clinician's paragraph.
func (s *ROFSection) ManualParagraph() string { return s.manual }

// Paragraphs returns the non-empty auto paragraph followed by the non-empty
// manual paragraph.
func (s *ROFSection) Paragraphs() []string {
	var out []string
	for _, p := range []string{s.auto, s.manual} {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Refresh rebuilds the auto paragraph.
func (s *ROFSection) Refresh() { s.refresh("refresh") }

func (s *ROFSection) refresh(reason string) {
	if s.g.suppressed() {
		s.log.Debug().Str("reason", reason).Msg("regenerate skipped: loading")
		return
	}
	var first string
	if s.first != nil {
		first = s.first()
	}
	s.auto = narrative.BuildROFWithLimit(s.mode, s.blocks.All(), first, s.maxGroups)
	s.log.Debug().Str("reason", reason).Str("mode", string(s.mode)).Int("blocks", s.blocks.Len()).Msg("regenerated")
}
