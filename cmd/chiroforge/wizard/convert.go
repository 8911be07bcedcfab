package wizard

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/components"
	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/types"
	"github.com/mrsinham/chiroforge/internal/exam"
	"github.com/mrsinham/chiroforge/internal/narrative"
	"github.com/mrsinham/chiroforge/internal/util"
)

// applyPatient pushes the patient header into the workspace.
func (w *Wizard) applyPatient() {
	p := w.state.Patient
	w.ws.SetPatient(exam.Patient{
		First: strings.TrimSpace(p.First),
		Last:  strings.TrimSpace(p.Last),
		DOB:   util.NormalizeDate(p.DOB),
		DOI:   util.NormalizeDate(p.DOI),
		Sex:   p.Sex,
	})
}

// applyMOI pushes the history form into the workspace. The screen edits the
// first structured imaging block; any further blocks are kept.
func (w *Wizard) applyMOI() {
	f := &w.state.MOI
	w.ws.MOI.SetAuto(f.Auto)
	w.ws.MOI.Update(func(s *narrative.MOISnapshot) {
		var blocks []narrative.ImagingBlock
		if len(f.Imaging.Types)+len(f.Imaging.Parts) > 0 {
			blocks = append(blocks, f.Imaging)
		}
		if len(s.ImagingBlocks) > 1 {
			blocks = append(blocks, s.ImagingBlocks[1:]...)
		}
		*s = f.Snapshot
		s.ImagingBlocks = blocks
	})
}

// applyTherapy replays the checklist so the main concern is checked first.
func (w *Wizard) applyTherapy() {
	t := w.ws.Therapy
	t.SetAuto(w.state.Therapy.Auto)

	want := w.state.therapyOrder()
	current := t.Order()
	if slices.Equal(want, current) {
		return
	}
	for _, part := range current {
		t.Toggle(part, false)
	}
	for _, part := range want {
		t.Toggle(part, true)
	}
}

// applyObjectives pushes the global panels and the family and social
// history into the workspace. Region findings are left as loaded.
func (w *Wizard) applyObjectives() {
	f := w.state.Objectives
	w.ws.Objectives.SetFamilySocial(f.FamilySocial)
	w.ws.Objectives.Update(func(o *narrative.Objectives) {
		o.Vitals = f.Objectives.Vitals
		o.Posture = f.Objectives.Posture
		o.Grip = f.Objectives.Grip
		o.ADL = f.Objectives.ADL
		o.ADL.Severity = nil
		if n, err := strconv.Atoi(f.ADLSeverity); err == nil && narrative.SeverityLabel(n) != "" {
			o.ADL.Severity = &n
		}
	})
}

// objectivesPreview shows the panels as they will print.
func (w *Wizard) objectivesPreview() string {
	o := w.ws.Objectives.Snapshot()
	return strings.TrimSpace(narrative.BuildADL(o.ADL) + "\n\n" + narrative.BuildObjectives(o))
}

// applySupplement stores prognosis, the first imaging recommendation, the
// first referral and the lock. Further recommendations and referrals loaded
// from an exam are kept.
func (w *Wizard) applySupplement() {
	f := w.state.Supplement
	dx := w.ws.Dx

	dx.SetPrognosis(f.Prognosis)

	recs := dx.ImagingRecs()
	var rest []narrative.ImagingRec
	if len(recs) > 1 {
		rest = recs[1:]
	}
	if !narrative.IsPlaceholder(f.RecModality) && !narrative.IsPlaceholder(f.RecPart) {
		rest = append([]narrative.ImagingRec{{Modality: f.RecModality, BodyPart: f.RecPart}}, rest...)
	}
	dx.SetImagingRecs(rest)

	refs := dx.Referrals()
	var others []narrative.Referral
	if len(refs) > 1 {
		others = refs[1:]
	}
	if !narrative.IsPlaceholder(f.Referral) {
		others = append([]narrative.Referral{{ProviderType: f.Referral}}, others...)
	}
	dx.SetReferrals(others)

	dx.SetLocked(f.Lock)
}

// applyPlan pushes the plan form into the workspace.
func (w *Wizard) applyPlan() {
	f := w.state.Plan
	w.ws.Plan.SetAuto(f.Auto)
	w.ws.Plan.Update(func(s *narrative.PlanSnapshot) {
		*s = f.Snapshot
	})
	w.applyServices()
}

// servicesForm flattens the services into the single selections of the
// plan screen.
func servicesForm(s narrative.Services) types.ServicesForm {
	f := types.ServicesForm{CMTCode: s.CMTCode, EMCode: s.EMCode, ExamNotes: s.ExamNotes}
	for _, a := range s.Adjusted {
		f.Areas = append(f.Areas, a.Area)
		f.Techniques = append(f.Techniques, a.Techniques...)
	}
	for _, m := range s.Modalities {
		f.Modalities = append(f.Modalities, m.Code)
		for _, p := range m.Parts {
			f.Parts = append(f.Parts, p.Part)
		}
	}
	f.Techniques = narrative.DedupePreserveOrder(f.Techniques)
	f.Parts = narrative.DedupePreserveOrder(f.Parts)
	return f
}

func sameServices(a, b types.ServicesForm) bool {
	return a.CMTCode == b.CMTCode && a.EMCode == b.EMCode && a.ExamNotes == b.ExamNotes &&
		slices.Equal(a.Areas, b.Areas) && slices.Equal(a.Techniques, b.Techniques) &&
		slices.Equal(a.Modalities, b.Modalities) && slices.Equal(a.Parts, b.Parts)
}

// applyServices rebuilds the services from the plan screen. Nothing is
// touched while the selections still match the stored services, so detail
// the screen cannot show (per-area techniques, minutes) survives a pass
// through the wizard. Areas outside the selected code are dropped.
func (w *Wizard) applyServices() {
	f := w.state.Plan.Services
	cur := w.ws.Plan.Services()
	if sameServices(f, servicesForm(cur)) {
		return
	}

	minutes := make(map[[2]string]string)
	for _, m := range cur.Modalities {
		for _, p := range m.Parts {
			minutes[[2]string{m.Code, p.Part}] = p.Minutes
		}
	}

	w.ws.Plan.SetCMTCode(f.CMTCode)
	w.ws.Plan.UpdateServices(func(s *narrative.Services) {
		allowed := narrative.CMTAreas(s.CMTCode)
		s.Adjusted = nil
		for _, area := range f.Areas {
			if slices.Contains(allowed, area) {
				s.Adjusted = append(s.Adjusted, narrative.AdjustedArea{Area: area, Techniques: slices.Clone(f.Techniques)})
			}
		}
		s.EMCode = f.EMCode
		s.ExamNotes = f.ExamNotes
		s.Modalities = nil
		for _, code := range f.Modalities {
			m := narrative.Modality{Code: code}
			for _, part := range f.Parts {
				mins := minutes[[2]string{code, part}]
				if mins == "" {
					mins = narrative.DefaultMinutes
				}
				m.Parts = append(m.Parts, narrative.ModalityPart{Part: part, Minutes: mins})
			}
			s.Modalities = append(s.Modalities, m)
		}
	})
}

// rofEntry prefills the study form for pass i.
func (w *Wizard) rofEntry(i int) narrative.ImagingEntry {
	entries := w.ws.ROF.Entries()
	if i < len(entries) {
		e := entries[i]
		e.BodyParts = append([]string(nil), e.BodyParts...)
		return e
	}
	return narrative.ImagingEntry{}
}

func (w *Wizard) rofMode() narrative.ROFMode {
	mode, err := narrative.ParseROFMode(w.state.ROF.Mode)
	if err != nil {
		return narrative.ModeROF
	}
	return mode
}

// rofPreview builds the paragraph the panel would produce if pass i were
// committed now.
func (w *Wizard) rofPreview(i int) string {
	entries := w.ws.ROF.Entries()
	if e := w.state.ROF.Entry; !e.IsEmpty() {
		if i < len(entries) {
			entries[i] = e
		} else {
			entries = append(entries, e)
		}
	}
	return narrative.BuildROFWithLimit(w.rofMode(), entries, w.ws.Patient().First, w.maxGroups)
}

// commitROF stores pass i and reports whether another pass follows. An
// empty study ends the list there.
func (w *Wizard) commitROF(i int) bool {
	f := &w.state.ROF
	rof := w.ws.ROF

	mode := w.rofMode()
	rof.SetMode(mode)
	rof.SetManual(f.Manual)
	if mode != narrative.ModeROF || i >= narrative.MaxROFBlocks {
		return false
	}

	if f.Entry.IsEmpty() {
		trim(rof.Len, rof.Remove, i)
		return false
	}
	if i < rof.Len() {
		entry := f.Entry
		rof.UpdateBlock(i, func(e *narrative.ImagingEntry) { *e = entry })
	} else if !rof.Add(f.Entry) {
		return false
	}

	if f.AddAnother && i+1 < narrative.MaxROFBlocks {
		return true
	}
	trim(rof.Len, rof.Remove, i+1)
	return false
}

// descriptorForm prefills the subjective form for pass i.
func (w *Wizard) descriptorForm(i int) *types.DescriptorForm {
	f := &types.DescriptorForm{}
	if blocks := w.ws.Subjective.Blocks(); i < len(blocks) {
		f.Block = blocks[i]
		f.Block.Muscles = append([]string(nil), blocks[i].Muscles...)
	}
	return f
}

// commitDescriptor stores pass i and reports whether another pass follows.
// A block without a region ends the list there. Narratives that were typed
// by hand are kept.
func (w *Wizard) commitDescriptor(i int, f *types.DescriptorForm) bool {
	s := w.ws.Subjective
	defer w.ws.MOI.Refresh()

	if !narrative.IsKnownRegion(f.Block.Region) {
		trim(s.Len, s.Remove, i)
		return false
	}
	if i < s.Len() {
		edited := f.Block
		s.UpdateBlock(i, func(b *narrative.DescriptorBlock) {
			n, num := b.Narrative, b.Number
			*b = edited
			b.Narrative, b.Number = n, num
		})
	} else {
		b := f.Block
		b.Narrative = ""
		if !s.Add(b) {
			return false
		}
	}

	if f.AddAnother && i+1 < narrative.MaxDescriptorBlocks {
		return true
	}
	trim(s.Len, s.Remove, i+1)
	return false
}

// dxForm prefills the diagnosis form for pass i.
func (w *Wizard) dxForm(i int) *types.DxForm {
	f := &types.DxForm{}
	if blocks := w.ws.Dx.Blocks(); i < len(blocks) {
		f.Label = blocks[i].Label
		f.EditText = blocks[i].EditText
	}
	return f
}

func dxBlock(f *types.DxForm) narrative.DxBlock {
	b := narrative.DxBlock{Label: f.Label, EditText: strings.TrimSpace(f.EditText)}
	if code, ok := narrative.LookupDx(f.Label); ok {
		b.ICD10 = code.ICD10
	}
	return b
}

// dxPreview renders the list as it would read with pass i committed.
func (w *Wizard) dxPreview(i int, f *types.DxForm) string {
	blocks := w.ws.Dx.Blocks()
	if f.Label != "" {
		if i < len(blocks) {
			blocks[i] = dxBlock(f)
		} else {
			blocks = append(blocks, dxBlock(f))
		}
	}
	return narrative.RenderDx(blocks)
}

// commitDx stores pass i and reports whether another pass follows.
func (w *Wizard) commitDx(i int, f *types.DxForm) bool {
	dx := w.ws.Dx

	if f.Label == "" {
		trim(dx.Len, dx.Remove, i)
		return false
	}
	b := dxBlock(f)
	if i < dx.Len() {
		dx.UpdateBlock(i, func(cur *narrative.DxBlock) {
			cur.Label, cur.ICD10, cur.EditText = b.Label, b.ICD10, b.EditText
		})
	} else if !dx.Add(b) {
		return false
	}

	if f.AddAnother && i+1 < narrative.MaxDxBlocks {
		return true
	}
	trim(dx.Len, dx.Remove, i+1)
	return false
}

// trim removes blocks from index from onwards.
func trim(length func() int, remove func(int) bool, from int) {
	for n := length(); n > from; n-- {
		remove(n - 1)
	}
}

// statusLine summarizes where each narrative came from.
func (w *Wizard) statusLine() string {
	lock := "unlocked"
	if w.ws.Dx.Locked() {
		lock = "locked"
	}
	return strings.Join([]string{
		components.SectionBadge("History", w.ws.MOI.Text().Provenance.String(), components.AutoDetail(w.ws.MOI.Auto())),
		components.SectionBadge("Therapy", w.ws.Therapy.Text().Provenance.String(), components.AutoDetail(w.ws.Therapy.Auto())),
		components.SectionBadge("Diagnosis", w.ws.Dx.Text().Provenance.String(), lock),
		components.SectionBadge("Plan", w.ws.Plan.Text().Provenance.String(), components.AutoDetail(w.ws.Plan.Auto())),
	}, " | ")
}

// toExam returns the record to save.
func (w *Wizard) toExam() *exam.Exam {
	e := w.ws.Snapshot()
	if name := strings.TrimSpace(w.state.Patient.ExamName); name != "" {
		e.ExamName = name
	}
	return e
}

// save writes the exam back to the file it was opened from, or into the
// patient store for a new exam.
func (w *Wizard) save(ctx context.Context) (string, error) {
	e := w.toExam()

	if w.opts.ExamPath != "" {
		e.UpdatedAt = time.Now().UTC()
		if err := exam.WriteFile(w.opts.ExamPath, e); err != nil {
			return "", err
		}
		w.log.Info().Str("path", w.opts.ExamPath).Msg("exam updated")
		return w.opts.ExamPath, nil
	}

	if w.opts.Store == nil {
		return "", fmt.Errorf("no patient store configured")
	}
	return w.opts.Store.Save(ctx, e)
}
