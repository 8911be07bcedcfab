package reconcile

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/mrsinham/chiroforge/internal/narrative"
)

// SubjectiveSection controls the pain-descriptor blocks. There is no auto
// flag here: a block's narrative is regenerated only while it is blank or
// still reads like generated text, see narrative.LooksAuto.
type SubjectiveSection struct {
	blocks *narrative.Blocks[narrative.DescriptorBlock]
	g      *guard
	log    zerolog.Logger
}

// NewSubjectiveSection returns an empty set of descriptor blocks.
func NewSubjectiveSection(log zerolog.Logger) *SubjectiveSection {
	return newSubjectiveSection(nil, log)
}

func newSubjectiveSection(g *guard, log zerolog.Logger) *SubjectiveSection {
	return &SubjectiveSection{
		blocks: narrative.NewBlocks(narrative.MaxDescriptorBlocks, narrative.RenumberDescriptor),
		g:      g,
		log:    log.With().Str("section", "subjective").Logger(),
	}
}

// Add appends a block and writes its narrative. It returns false when all
// blocks are in use.
func (s *SubjectiveSection) Add(b narrative.DescriptorBlock) bool {
	if !s.blocks.Add(b) {
		return false
	}
	s.refresh(s.blocks.Len() - 1)
	return true
}

// Remove deletes the block at i.
func (s *SubjectiveSection) Remove(i int) bool { return s.blocks.Remove(i) }

// Move reorders a block.
func (s *SubjectiveSection) Move(from, to int) bool { return s.blocks.Move(from, to) }

// UpdateBlock changes the structured fields of block i and regenerates its
// narrative if it still looks generated.
func (s *SubjectiveSection) UpdateBlock(i int, fn func(*narrative.DescriptorBlock)) bool {
	if !s.blocks.Update(i, fn) {
		return false
	}
	s.refresh(i)
	return true
}

// EditNarrative records text typed into block i.
func (s *SubjectiveSection) EditNarrative(i int, v string) bool {
	return s.blocks.Update(i, func(b *narrative.DescriptorBlock) { b.Narrative = v })
}

// Provenance classifies block i's narrative. It returns false when there
// is no block i.
func (s *SubjectiveSection) Provenance(i int) (Provenance, bool) {
	b, ok := s.blocks.At(i)
	if !ok {
		return ProvenanceEmpty, false
	}
	switch n := b.Narrative; {
	case strings.TrimSpace(n) == "":
		return ProvenanceEmpty, true
	case narrative.LooksAuto(n):
		return ProvenanceAuto, true
	default:
		return ProvenanceManual, true
	}
}

// Blocks returns the descriptor blocks in order.
func (s *SubjectiveSection) Blocks() []narrative.DescriptorBlock { return s.blocks.All() }

// Len returns the number of blocks.
func (s *SubjectiveSection) Len() int { return s.blocks.Len() }

// Regions returns the labels of the blocks' known regions, deduplicated.
func (s *SubjectiveSection) Regions() []string {
	var labels []string
	for _, b := range s.blocks.All() {
		if l := narrative.RegionLabel(b.Region); l != "" {
			labels = append(labels, l)
		}
	}
	return narrative.DedupePreserveOrder(labels)
}

// Refresh regenerates every block that still looks generated.
func (s *SubjectiveSection) Refresh() {
	for i := 0; i < s.blocks.Len(); i++ {
		s.refresh(i)
	}
}

func (s *SubjectiveSection) refresh(i int) {
	if s.g.suppressed() {
		s.log.Debug().Int("block", i+1).Msg("regenerate skipped: loading")
		return
	}
	b, ok := s.blocks.At(i)
	if !ok {
		return
	}
	if !narrative.LooksAuto(b.Narrative) {
		s.log.Debug().Int("block", i+1).Msg("regenerate skipped: edited")
		return
	}
	s.blocks.Update(i, func(b *narrative.DescriptorBlock) {
		b.Narrative = narrative.BuildDescriptor(*b)
	})
	s.log.Debug().Int("block", i+1).Str("region", b.Region).Msg("regenerated")
}
