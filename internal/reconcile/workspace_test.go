package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsinham/chiroforge/internal/exam"
	"github.com/mrsinham/chiroforge/internal/narrative"
)

func testExam() *exam.Exam {
	e := exam.New(exam.Patient{First: "John", Last: "Doe", DOB: "03/04/1980", DOI: "01/15/2024", Sex: "Male"}, "Initial")
	return e
}

func TestWorkspaceProviders(t *testing.T) {
	w := NewWorkspace()
	w.SetPatient(testExam().Patient)

	w.Subjective.Add(narrative.DescriptorBlock{Region: "CS"})
	w.Subjective.Add(narrative.DescriptorBlock{Region: "LS"})
	w.MOI.Update(setAutoAccident)

	moi := w.MOI.Text().Value
	assert.Contains(t, moi, "John reports he was involved")
	assert.Contains(t, moi, "regions: Cervical Spine and Lumbar Spine.")

	w.Dx.Add(narrative.DxBlock{Label: "Low back pain", ICD10: "M54.50"})
	w.Plan.Refresh()
	assert.Contains(t, w.Plan.Text().Value, "consistent with: Low back pain.")

	w.SetPatient(exam.Patient{First: "Ana", Sex: "Female", DOI: "02/02/2024"})
	assert.Contains(t, w.MOI.Text().Value, "Ana reports she was involved in a moving vehicle accident on 02/02/2024.")
}

func TestWorkspaceLoadingGuard(t *testing.T) {
	w := NewWorkspace()
	w.BeginLoad()
	require.True(t, w.Loading())

	w.MOI.Update(setAutoAccident)
	w.Dx.Add(narrative.DxBlock{Label: "Low back pain"})
	w.ROF.Add(narrative.ImagingEntry{Type: "MRI"})
	w.Subjective.Add(narrative.DescriptorBlock{Region: "CS"})
	w.Therapy.Toggle("Neck", true)

	assert.Empty(t, w.MOI.Text().Value)
	assert.Empty(t, w.Dx.Text().Value)
	assert.Empty(t, w.ROF.AutoParagraph())
	assert.Empty(t, w.Subjective.Blocks()[0].Narrative)
	assert.Empty(t, w.Therapy.Text().Value)

	w.EndLoad()
	w.Refresh()
	assert.NotEmpty(t, w.MOI.Text().Value)
	assert.NotEmpty(t, w.Dx.Text().Value)
	assert.NotEmpty(t, w.ROF.AutoParagraph())
	assert.NotEmpty(t, w.Subjective.Blocks()[0].Narrative)
	assert.NotEmpty(t, w.Therapy.Text().Value)
}

func TestWorkspaceLoadKeepsStoredText(t *testing.T) {
	e := testExam()
	setAutoAccident(&e.History.Struct)
	e.History.MOI = "Stored narrative that differs from the builder.\n\n[AUTO:MOI]"
	e.Plan.AutoEnabled = false
	e.Plan.PlanText = "Typed plan."
	e.Diagnosis.Blocks = []narrative.DxBlock{{Number: 1, Label: "Low back pain", ICD10: "M54.50"}}
	e.Diagnosis.Text = "1. LBP"
	e.Diagnosis.TextIsManual = true
	e.Diagnosis.ManualLock = true
	e.Therapy.Order = []string{"Neck", "Low back"}
	e.Therapy.Narrative = narrative.BuildTherapyNarrative(narrative.NewOrderList(e.Therapy.Order))

	w := FromExam(e)
	assert.False(t, w.Loading())
	assert.Equal(t, Text{Value: e.History.MOI, Provenance: ProvenanceAuto}, w.MOI.Text())
	assert.Equal(t, Text{Value: "Typed plan.", Provenance: ProvenanceManual}, w.Plan.Text())
	assert.Equal(t, "1. LBP", w.Dx.ExportText())
	assert.Equal(t, ProvenanceAuto, w.Therapy.Text().Provenance)

	w.Refresh()
	assert.Contains(t, w.MOI.Text().Value, "John reports he was involved")
	assert.Equal(t, "Typed plan.", w.Plan.Text().Value, "plan auto is off")
	assert.Equal(t, "1. LBP", w.Dx.ExportText(), "diagnosis text is locked")
}

func TestWorkspaceSnapshotRoundTrip(t *testing.T) {
	e := testExam()
	w := FromExam(e)

	w.MOI.Update(setAutoAccident)
	w.ROF.Add(narrative.ImagingEntry{Type: "X-rays", Facility: "Hoag Radiology"})
	w.ROF.SetManual("Reviewed.")
	w.Subjective.Add(narrative.DescriptorBlock{Region: "LS", PainScale: "Mild"})
	w.Therapy.Toggle("Low back", true)
	w.Dx.Add(narrative.DxBlock{Label: "Low back pain", ICD10: "M54.50"})
	w.Dx.SetPrognosis("Good")
	w.Dx.SetReferrals([]narrative.Referral{{ProviderType: "Orthopedist"}})
	w.Plan.Update(func(p *narrative.PlanSnapshot) { p.Frequency = narrative.Choice{Value: "3"} })
	w.Plan.Edit("Hand-written plan.")

	snap := w.Snapshot()
	assert.Equal(t, e.ID, snap.ID)
	assert.Equal(t, "Initial", snap.ExamName)
	assert.Equal(t, "auto", snap.History.MOIProvenance)
	assert.Equal(t, "Reviewed.", snap.History.ROF.ManualParagraph)
	assert.NotEmpty(t, snap.History.ROF.AutoParagraph)
	assert.Len(t, snap.Subjectives.Blocks, 1)
	assert.Equal(t, []string{"Low back"}, snap.Therapy.Order)
	assert.False(t, snap.Diagnosis.TextIsManual)
	assert.Equal(t, "Good", snap.Diagnosis.Prognosis)
	assert.Equal(t, "manual", snap.Plan.Provenance)
	assert.True(t, snap.Plan.AutoEnabled)
	assert.Nil(t, snap.Plan.Diagnoses)

	again := FromExam(snap).Snapshot()
	assert.Equal(t, snap, again)
}

func TestWorkspaceTherapySurvivesOrderChange(t *testing.T) {
	w := FromExam(testExam())
	w.Therapy.Toggle("Neck", true)

	saved := w.Snapshot()
	assert.True(t, saved.Therapy.AutoEnabled)
	assert.Equal(t, "auto", saved.Therapy.Provenance)

	require.NoError(t, exam.SetField(saved, "therapy.order", "Neck,Low Back"))

	w = FromExam(saved)
	assert.True(t, w.Therapy.Auto())
	assert.Equal(t, ProvenanceAuto, w.Therapy.Text().Provenance)

	w.Refresh()
	assert.Equal(t, "The patient's main concern is the neck. The patient also reports involvement of the low back.", w.Therapy.Text().Value)
}

func TestWorkspaceTherapyKeepsTypedText(t *testing.T) {
	w := FromExam(testExam())
	w.Therapy.Toggle("Neck", true)
	w.Therapy.Edit("Neck pain after lifting.")

	saved := w.Snapshot()
	assert.False(t, saved.Therapy.AutoEnabled)
	assert.Equal(t, "manual", saved.Therapy.Provenance)

	w = FromExam(saved)
	w.Refresh()
	assert.False(t, w.Therapy.Auto())
	assert.Equal(t, Text{Value: "Neck pain after lifting.", Provenance: ProvenanceManual}, w.Therapy.Text())
}

func TestWorkspaceTherapyLegacyRecord(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantAuto bool
		wantProv Provenance
	}{
		{"generated text", "The patient's main concern is the neck.", true, ProvenanceAuto},
		{"typed text", "Neck pain after lifting.", false, ProvenanceManual},
		{"no text", "", true, ProvenanceEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testExam()
			e.Therapy = exam.Therapy{Order: []string{"Neck"}, Narrative: tt.text}

			w := FromExam(e)
			assert.Equal(t, tt.wantAuto, w.Therapy.Auto())
			assert.Equal(t, tt.wantProv, w.Therapy.Text().Provenance)
		})
	}
}

func TestWorkspaceObjectivesAndServices(t *testing.T) {
	w := FromExam(testExam())
	w.Objectives.SetFamilySocial("Non-smoker. Works as a mail carrier.")
	w.Objectives.Update(func(o *narrative.Objectives) {
		o.Vitals.BP = "128/84"
		o.Grip.Compare = "Right weaker"
	})
	require.NoError(t, w.Objectives.Rate("CS", narrative.SectionROM, "Rotation", narrative.Rated(4, 2)))
	require.Error(t, w.Objectives.Rate("CS", "reflex", "Biceps", narrative.Rated(1, 1)))

	w.Plan.SetCMTCode("98941")
	w.Plan.UpdateServices(func(s *narrative.Services) {
		s.Adjusted = []narrative.AdjustedArea{{Area: "Cervical", Techniques: []string{"Activator"}}}
		s.EMCode = "99213"
	})
	planText := w.Plan.Text()

	snap := w.Snapshot()
	assert.Equal(t, "Non-smoker. Works as a mail carrier.", snap.FamilySocial)
	assert.Equal(t, "128/84", snap.Objectives.Vitals.BP)
	require.Len(t, snap.Objectives.Blocks, 1)
	assert.Equal(t, narrative.Rated(4, 2), snap.Objectives.Blocks[0].ROM["Rotation"])
	assert.Equal(t, "98941: Spinal, 3-4 regions", snap.Plan.Services.CMTCode)
	assert.Len(t, snap.Plan.Services.Adjusted, 1)
	assert.Equal(t, planText, w.Plan.Text(), "services are not narrated")

	w = FromExam(snap)
	assert.Equal(t, snap.Objectives, w.Objectives.Snapshot())
	assert.Equal(t, snap.Plan.Services, w.Plan.Services())

	w.Plan.SetCMTCode("98941: Spinal, 3-4 regions")
	assert.Len(t, w.Plan.Services().Adjusted, 1)
	w.Plan.SetCMTCode("98943")
	assert.Empty(t, w.Plan.Services().Adjusted)
}
