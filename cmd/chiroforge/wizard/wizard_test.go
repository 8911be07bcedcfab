package wizard

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/screens"
	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/types"
	"github.com/mrsinham/chiroforge/internal/exam"
	"github.com/mrsinham/chiroforge/internal/narrative"
	"github.com/mrsinham/chiroforge/internal/reconcile"
)

func newTestWizard() *Wizard {
	return NewWizard(nil, reconcile.NewWorkspace(), Options{Log: zerolog.Nop()})
}

func TestStateFromWorkspace_Prefill(t *testing.T) {
	ws := reconcile.NewWorkspace()
	ws.SetPatient(exam.Patient{First: "Jane", Last: "Doe", DOB: "01/02/1980", DOI: "03/05/2024", Sex: "Female"})
	ws.Therapy.Toggle("Low back", true)
	ws.Therapy.Toggle("Neck", true)
	ws.Dx.SetPrognosis("Good")
	ws.Dx.SetReferrals([]narrative.Referral{{ProviderType: "Orthopedist"}, {ProviderType: "Neurologist"}})

	state := StateFromWorkspace(ws, "Re-exam 1")

	if state.Patient.First != "Jane" || state.Patient.Last != "Doe" {
		t.Errorf("Expected patient Jane Doe, got %s %s", state.Patient.First, state.Patient.Last)
	}
	if state.Patient.ExamName != "Re-exam 1" {
		t.Errorf("Expected exam name 'Re-exam 1', got %s", state.Patient.ExamName)
	}
	if state.Therapy.Main != "Low back" {
		t.Errorf("Expected main concern 'Low back', got %s", state.Therapy.Main)
	}
	if !reflect.DeepEqual(state.Therapy.Others, []string{"Neck"}) {
		t.Errorf("Expected others [Neck], got %v", state.Therapy.Others)
	}
	if state.Supplement.Prognosis != "Good" {
		t.Errorf("Expected prognosis Good, got %s", state.Supplement.Prognosis)
	}
	if state.Supplement.Referral != "Orthopedist" {
		t.Errorf("Expected first referral Orthopedist, got %s", state.Supplement.Referral)
	}
	if !state.MOI.Auto || !state.Plan.Auto {
		t.Error("Expected auto generation on for a blank exam")
	}
}

func TestTherapyOrder_MainFirstWithoutDuplicates(t *testing.T) {
	s := &WizardState{Therapy: types.TherapyForm{Main: "Neck", Others: []string{"Low back", "Neck", "Mid back"}}}

	got := s.therapyOrder()
	want := []string{"Neck", "Low back", "Mid back"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestApplyTherapy_ReordersChecklist(t *testing.T) {
	w := newTestWizard()
	w.ws.Therapy.Toggle("Low back", true)
	w.ws.Therapy.Toggle("Neck", true)

	w.state.Therapy = types.TherapyForm{Main: "Neck", Others: []string{"Right knee"}, Auto: true}
	w.applyTherapy()

	want := []string{"Neck", "Right knee"}
	if got := w.ws.Therapy.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected order %v, got %v", want, got)
	}
	if w.ws.Therapy.Checked("Low back") {
		t.Error("Expected 'Low back' to be unchecked")
	}
}

func TestApplySupplement_KeepsExtraReferrals(t *testing.T) {
	w := newTestWizard()
	w.ws.Dx.SetReferrals([]narrative.Referral{{ProviderType: "Orthopedist"}, {ProviderType: "Neurologist"}})

	w.state.Supplement = types.DxSupplementForm{
		Prognosis:   "Fair",
		RecModality: "MRI",
		RecPart:     "(select)",
		Referral:    "Pain Management",
		Lock:        true,
	}
	w.applySupplement()

	refs := w.ws.Dx.Referrals()
	if len(refs) != 2 || refs[0].ProviderType != "Pain Management" || refs[1].ProviderType != "Neurologist" {
		t.Errorf("Unexpected referrals: %+v", refs)
	}
	if recs := w.ws.Dx.ImagingRecs(); len(recs) != 0 {
		t.Errorf("Expected placeholder body part to skip the recommendation, got %+v", recs)
	}
	if w.ws.Dx.Prognosis() != "Fair" {
		t.Errorf("Expected prognosis Fair, got %s", w.ws.Dx.Prognosis())
	}
	if !w.ws.Dx.Locked() {
		t.Error("Expected diagnosis list to be locked")
	}
}

func TestCommitROF(t *testing.T) {
	mri := narrative.ImagingEntry{Type: "MRI", BodyParts: []string{"Lumbar Spine"}, Facility: "Hoag Radiology"}
	xray := narrative.ImagingEntry{Type: "X-rays", BodyParts: []string{"Cervical Spine"}}

	tests := []struct {
		name     string
		existing []narrative.ImagingEntry
		index    int
		form     types.ROFForm
		wantNext bool
		wantLen  int
	}{
		{
			name:     "add another",
			index:    0,
			form:     types.ROFForm{Mode: "ROF", Entry: mri, AddAnother: true},
			wantNext: true,
			wantLen:  1,
		},
		{
			name:     "last entry trims the tail",
			existing: []narrative.ImagingEntry{xray, xray, xray},
			index:    0,
			form:     types.ROFForm{Mode: "ROF", Entry: mri},
			wantNext: false,
			wantLen:  1,
		},
		{
			name:     "empty entry ends the list",
			existing: []narrative.ImagingEntry{xray, xray},
			index:    1,
			form:     types.ROFForm{Mode: "ROF"},
			wantNext: false,
			wantLen:  1,
		},
		{
			name:     "other modes keep the studies",
			existing: []narrative.ImagingEntry{xray},
			index:    0,
			form:     types.ROFForm{Mode: "Initial", Entry: mri, AddAnother: true},
			wantNext: false,
			wantLen:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWizard()
			for _, e := range tt.existing {
				w.ws.ROF.Add(e)
			}
			w.state.ROF = tt.form

			if got := w.commitROF(tt.index); got != tt.wantNext {
				t.Errorf("commitROF() = %v, want %v", got, tt.wantNext)
			}
			if w.ws.ROF.Len() != tt.wantLen {
				t.Errorf("Expected %d studies, got %d", tt.wantLen, w.ws.ROF.Len())
			}
		})
	}
}

func TestCommitROF_UpdatesExistingEntry(t *testing.T) {
	w := newTestWizard()
	w.ws.ROF.Add(narrative.ImagingEntry{Type: "X-rays", BodyParts: []string{"Cervical Spine"}})
	w.state.ROF = types.ROFForm{
		Mode:   "ROF",
		Entry:  narrative.ImagingEntry{Type: "MRI", BodyParts: []string{"Lumbar Spine"}},
		Manual: "Reviewed with the patient.",
	}

	w.commitROF(0)

	entries := w.ws.ROF.Entries()
	if len(entries) != 1 || entries[0].Type != "MRI" {
		t.Fatalf("Expected the study to be replaced, got %+v", entries)
	}
	if w.ws.ROF.ManualParagraph() != "Reviewed with the patient." {
		t.Errorf("Expected manual paragraph to be stored, got %q", w.ws.ROF.ManualParagraph())
	}
	if !strings.Contains(w.ws.ROF.AutoParagraph(), "MRI") {
		t.Errorf("Expected generated paragraph to mention MRI, got %q", w.ws.ROF.AutoParagraph())
	}
}

func TestCommitDescriptor(t *testing.T) {
	w := newTestWizard()

	first := &types.DescriptorForm{
		Block:      narrative.DescriptorBlock{Region: "CS", Descriptor1: "Sharp", PainScale: "Moderate"},
		AddAnother: true,
	}
	if !w.commitDescriptor(0, first) {
		t.Error("Expected another pass after AddAnother")
	}

	second := &types.DescriptorForm{Block: narrative.DescriptorBlock{Region: "LS", Descriptor1: "Dull"}}
	if w.commitDescriptor(1, second) {
		t.Error("Expected the loop to end")
	}
	if w.ws.Subjective.Len() != 2 {
		t.Fatalf("Expected 2 blocks, got %d", w.ws.Subjective.Len())
	}

	// Revisiting the first block and clearing the region drops everything.
	none := &types.DescriptorForm{Block: narrative.DescriptorBlock{Region: narrative.RegionNone}}
	if w.commitDescriptor(0, none) {
		t.Error("Expected the loop to end")
	}
	if w.ws.Subjective.Len() != 0 {
		t.Errorf("Expected no blocks, got %d", w.ws.Subjective.Len())
	}
}

func TestCommitDx(t *testing.T) {
	w := newTestWizard()

	f := &types.DxForm{Label: "Cervical sprain/strain (whiplash)", AddAnother: true}
	if !w.commitDx(0, f) {
		t.Error("Expected another pass after AddAnother")
	}
	blocks := w.ws.Dx.Blocks()
	if len(blocks) != 1 || blocks[0].ICD10 != "S13.4XXA" {
		t.Fatalf("Expected one block with code S13.4XXA, got %+v", blocks)
	}

	if w.commitDx(1, &types.DxForm{}) {
		t.Error("Expected an empty label to end the list")
	}
	if w.ws.Dx.Len() != 1 {
		t.Errorf("Expected 1 block, got %d", w.ws.Dx.Len())
	}
	if !strings.Contains(w.ws.Dx.Text().Value, "S13.4XXA") {
		t.Errorf("Expected generated list to include the code, got %q", w.ws.Dx.Text().Value)
	}
}

func TestDxPreview_DoesNotCommit(t *testing.T) {
	w := newTestWizard()

	preview := w.dxPreview(0, &types.DxForm{Label: "Neck pain (cervicalgia)"})
	if !strings.Contains(preview, "M54.2") {
		t.Errorf("Expected preview to include M54.2, got %q", preview)
	}
	if w.ws.Dx.Len() != 0 {
		t.Errorf("Expected preview to leave the list empty, got %d blocks", w.ws.Dx.Len())
	}
}

func TestApplyEdit(t *testing.T) {
	w := newTestWizard()
	w.state.MOI.Snapshot.InjuryType = narrative.InjurySlipAndFall
	w.applyMOI()

	// Closing the editor without changes keeps auto generation.
	w.editorBase = strings.TrimSpace(narrative.StripSentinels(w.ws.MOI.Text().Value))
	w.applyEdit("moi", w.editorBase+"\n")
	if !w.ws.MOI.Auto() {
		t.Error("Expected auto generation to stay on for unchanged text")
	}

	w.applyEdit("moi", "Patient slipped on ice.")
	if w.ws.MOI.Auto() || w.state.MOI.Auto {
		t.Error("Expected typing to turn auto generation off")
	}
	if w.ws.MOI.Text().Value != "Patient slipped on ice." {
		t.Errorf("Expected typed text to be kept, got %q", w.ws.MOI.Text().Value)
	}

	w.applyEdit("rof", "Discussed findings.")
	if w.state.ROF.Manual != "Discussed findings." || w.ws.ROF.ManualParagraph() != "Discussed findings." {
		t.Error("Expected ROF edit to set the manual paragraph")
	}
}

func TestApplyObjectives(t *testing.T) {
	w := newTestWizard()
	if err := w.ws.Objectives.Rate("LS", narrative.SectionROM, "Flexion", narrative.Rated(3, 3)); err != nil {
		t.Fatalf("Rate: %v", err)
	}
	w.state = StateFromWorkspace(w.ws, "Initial")

	w.state.Objectives.Objectives.Vitals.BP = "120/80"
	w.state.Objectives.ADLSeverity = "3"
	w.state.Objectives.FamilySocial = "Lives alone."
	w.applyObjectives()

	o := w.ws.Objectives.Snapshot()
	if o.Vitals.BP != "120/80" {
		t.Errorf("Expected BP 120/80, got %q", o.Vitals.BP)
	}
	if o.ADL.Severity == nil || *o.ADL.Severity != 3 {
		t.Errorf("Expected ADL severity 3, got %v", o.ADL.Severity)
	}
	if len(o.Blocks) != 1 {
		t.Errorf("Expected region findings to be kept, got %d blocks", len(o.Blocks))
	}
	if w.ws.Objectives.FamilySocial() != "Lives alone." {
		t.Errorf("Expected family/social history to be stored, got %q", w.ws.Objectives.FamilySocial())
	}
	if !strings.Contains(w.objectivesPreview(), "Severity: 3 (Mild)") {
		t.Errorf("Expected preview to include the ADL severity, got %q", w.objectivesPreview())
	}

	w.state.Objectives.ADLSeverity = ""
	w.applyObjectives()
	if w.ws.Objectives.Snapshot().ADL.Severity != nil {
		t.Error("Expected (none) to clear the ADL severity")
	}
}

func TestApplyServices(t *testing.T) {
	w := newTestWizard()
	w.ws.Plan.SetCMTCode("98941")
	w.ws.Plan.UpdateServices(func(s *narrative.Services) {
		s.Adjusted = []narrative.AdjustedArea{{Area: "Cervical", Techniques: []string{"Activator"}}}
		s.Modalities = []narrative.Modality{{
			Code:  "97014: Electric Stimulation",
			Parts: []narrative.ModalityPart{{Part: "Cervical Spine", Minutes: "10"}},
		}}
	})
	w.state = StateFromWorkspace(w.ws, "Initial")

	// An untouched screen keeps the stored detail.
	w.applyPlan()
	if got := w.ws.Plan.Services().Modalities[0].Parts[0].Minutes; got != "10" {
		t.Errorf("Expected minutes 10 to be kept, got %q", got)
	}

	f := &w.state.Plan.Services
	f.Parts = append(f.Parts, "Lumbar Spine")
	f.Areas = append(f.Areas, "Right Hip")
	w.applyPlan()

	svc := w.ws.Plan.Services()
	parts := svc.Modalities[0].Parts
	if len(parts) != 2 || parts[0].Minutes != "10" || parts[1].Minutes != narrative.DefaultMinutes {
		t.Errorf("Expected kept and default minutes, got %+v", parts)
	}
	if len(svc.Adjusted) != 1 || svc.Adjusted[0].Area != "Cervical" {
		t.Errorf("Expected areas outside the spinal code to be dropped, got %+v", svc.Adjusted)
	}

	f.CMTCode = "98943: Extraspinal"
	f.Areas = []string{"Right Hip"}
	w.applyPlan()
	svc = w.ws.Plan.Services()
	if len(svc.Adjusted) != 1 || svc.Adjusted[0].Area != "Right Hip" {
		t.Errorf("Expected Right Hip under 98943, got %+v", svc.Adjusted)
	}
}

func TestWizard_EscCancels(t *testing.T) {
	w := newTestWizard()

	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !w.cancelled {
		t.Error("Expected wizard to be cancelled")
	}
	if cmd == nil {
		t.Error("Expected a quit command")
	}
}

func TestWizard_WindowSize(t *testing.T) {
	w := newTestWizard()

	w.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if w.width != 120 || w.height != 40 {
		t.Errorf("Expected 120x40, got %dx%d", w.width, w.height)
	}
	if w.phase != PhasePatient {
		t.Errorf("Expected to stay on the patient screen, got phase %d", w.phase)
	}
}

func TestWizard_SavingMessages(t *testing.T) {
	w := newTestWizard()
	w.phase = PhaseSaving

	w.Update(screens.SavedMsg{Path: "/tmp/exam.json", ExamName: "Initial", Patient: "Doe, Jane"})
	if w.phase != PhaseComplete {
		t.Errorf("Expected PhaseComplete, got %d", w.phase)
	}

	w = newTestWizard()
	w.phase = PhaseSaving
	w.Update(screens.ErrorMsg{Error: os.ErrPermission})
	if w.phase != PhaseError || w.err != os.ErrPermission {
		t.Errorf("Expected PhaseError with the save error, got phase %d err %v", w.phase, w.err)
	}
}

func TestSave_ToStore(t *testing.T) {
	dir := t.TempDir()
	w := NewWizard(nil, reconcile.NewWorkspace(), Options{
		Store: exam.NewStore(dir, 2024, zerolog.Nop()),
		Log:   zerolog.Nop(),
	})
	w.state.Patient = types.PatientForm{First: "Jane", Last: "Doe", DOB: "01/02/1980", DOI: "03/05/2024", ExamName: "Initial"}
	w.applyPatient()

	path, err := w.save(context.Background())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("Expected exam under %s, got %s", dir, path)
	}

	e, err := exam.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if e.ExamName != "Initial" || e.Patient.Last != "Doe" {
		t.Errorf("Unexpected exam: %s for %s", e.ExamName, e.Patient.Last)
	}
}

func TestSave_ToExamPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exam.json")
	w := NewWizard(nil, reconcile.NewWorkspace(), Options{ExamPath: path, Log: zerolog.Nop()})
	w.state.Patient.ExamName = "Final"

	got, err := w.save(context.Background())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if got != path {
		t.Errorf("Expected %s, got %s", path, got)
	}
	e, err := exam.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if e.ExamName != "Final" {
		t.Errorf("Expected exam name Final, got %s", e.ExamName)
	}
}

func TestSave_NoStore(t *testing.T) {
	w := newTestWizard()
	if _, err := w.save(context.Background()); err == nil {
		t.Error("Expected error without a store")
	}
}
