package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/mrsinham/chiroforge/internal/exam"
	"github.com/mrsinham/chiroforge/internal/narrative"
)

// Workspace gathers the section controllers of one exam and wires the
// read-only providers between them.
type Workspace struct {
	MOI        *MOISection
	ROF        *ROFSection
	Subjective *SubjectiveSection
	Therapy    *TherapySection
	Objectives *ObjectivesSection
	Dx         *DxSection
	Plan       *PlanSection

	base    exam.Exam
	patient exam.Patient
	g       *guard
	log     zerolog.Logger
}

// Option configures a Workspace.
type Option func(*workspaceOptions)

type workspaceOptions struct {
	log       zerolog.Logger
	maxGroups int
}

// WithLogger sets the logger used by every controller.
func WithLogger(log zerolog.Logger) Option {
	return func(o *workspaceOptions) { o.log = log }
}

// WithMaxROFGroups caps the facility groups narrated in the ROF paragraph.
func WithMaxROFGroups(n int) Option {
	return func(o *workspaceOptions) { o.maxGroups = n }
}

// NewWorkspace returns a workspace for a blank exam.
func NewWorkspace(opts ...Option) *Workspace {
	o := workspaceOptions{log: zerolog.Nop(), maxGroups: narrative.MaxROFGroups}
	for _, opt := range opts {
		opt(&o)
	}

	w := &Workspace{g: &guard{}, log: o.log.With().Str("component", "reconcile").Logger()}
	w.Subjective = newSubjectiveSection(w.g, w.log)
	w.Dx = newDxSection(w.g, w.log)
	w.MOI = newMOISection(w.g, w.patientContext, w.Subjective.Regions, w.log)
	w.ROF = newROFSection(w.g, func() string { return w.patient.First }, o.maxGroups, w.log)
	w.Therapy = newTherapySection(w.g, w.log)
	w.Objectives = newObjectivesSection(w.log)
	w.Plan = newPlanSection(w.g, w.Dx.Labels, w.log)
	return w
}

func (w *Workspace) patientContext() narrative.PatientContext {
	return w.patient.Context()
}

// Patient returns the patient header.
func (w *Workspace) Patient() exam.Patient { return w.patient }

// SetPatient replaces the patient header. Name, sex and date of injury feed
// the MOI and ROF narratives, so both are refreshed.
func (w *Workspace) SetPatient(p exam.Patient) {
	w.patient = p
	w.MOI.refresh("patient change")
	w.ROF.refresh("patient change")
}

// BeginLoad suppresses every regeneration until EndLoad.
func (w *Workspace) BeginLoad() {
	w.g.loading = true
	w.log.Debug().Msg("load started")
}

// EndLoad lifts the suppression set by BeginLoad.
func (w *Workspace) EndLoad() {
	w.g.loading = false
	w.log.Debug().Msg("load finished")
}

// Loading reports whether a load is in progress.
func (w *Workspace) Loading() bool { return w.g.loading }

// Load restores an exam. Stored texts are taken verbatim; nothing is
// regenerated.
func (w *Workspace) Load(e *exam.Exam) {
	w.BeginLoad()
	defer w.EndLoad()

	w.base = *e
	w.patient = e.Patient

	h := e.History
	w.MOI.snap = h.Struct
	w.MOI.restore(h.AutoMOI, restored(h.MOI, h.MOIProvenance, narrative.TagMOI))

	mode, err := narrative.ParseROFMode(h.ROF.Mode)
	if err != nil {
		w.log.Warn().Str("mode", h.ROF.Mode).Msg("unknown ROF mode, using ROF")
	}
	w.ROF.mode = mode
	w.ROF.blocks.Reset(h.ROF.ImagingBlocks)
	w.ROF.auto = h.ROF.AutoParagraph
	w.ROF.manual = h.ROF.ManualParagraph

	w.Subjective.blocks.Reset(e.Subjectives.Blocks)

	w.Therapy.order = narrative.NewOrderList(e.Therapy.Order)
	w.Therapy.restore(restoredTherapy(e.Therapy, w.Therapy.order))

	w.Objectives.obj = e.Objectives
	w.Objectives.family = e.FamilySocial

	d := e.Diagnosis
	w.Dx.blocks.Reset(d.Blocks)
	w.Dx.locked = d.ManualLock
	if d.TextIsManual {
		w.Dx.text = typed(d.Text)
	} else {
		w.Dx.text = generated(d.Text)
	}
	w.Dx.prognosis = d.Prognosis
	w.Dx.SetImagingRecs(d.ImagingRecs)
	w.Dx.SetReferrals(d.Referrals)

	p := e.Plan
	w.Plan.snap = p.PlanSnapshot
	w.Plan.services = p.Services
	w.Plan.restore(p.AutoEnabled, restored(p.PlanText, p.Provenance, narrative.TagPlan))

	w.log.Info().Str("exam", e.ExamName).Str("id", e.ID).Msg("exam loaded")
}

// restoredTherapy returns the auto flag and text of a saved therapy section.
// Records written before the flag and provenance were stored carry neither;
// their text counts as generated when it still equals the narrative of the
// saved order, and auto stays on unless the text was typed.
func restoredTherapy(t exam.Therapy, order *narrative.OrderList) (bool, Text) {
	if t.Provenance != "" {
		return t.AutoEnabled, restored(t.Narrative, t.Provenance, "")
	}
	text := restored(t.Narrative, "", "")
	if text.Value == narrative.BuildTherapyNarrative(order) {
		text = generated(text.Value)
	}
	return text.Provenance != ProvenanceManual, text
}

// Refresh regenerates every section according to its own rules: gated
// sections only in auto mode, a locked diagnosis list never, and descriptor
// narratives only while they still look generated.
func (w *Workspace) Refresh() {
	w.Subjective.Refresh()
	w.Dx.Refresh()
	w.MOI.Refresh()
	w.ROF.Refresh()
	w.Therapy.Refresh()
	w.Plan.Refresh()
}

// Snapshot returns the exam record for the current state. Identity fields
// come from the last loaded exam.
func (w *Workspace) Snapshot() *exam.Exam {
	e := w.base
	e.Patient = w.patient

	moi := w.MOI.Text()
	e.History = exam.History{
		MOI:           moi.Value,
		AutoMOI:       w.MOI.Auto(),
		MOIProvenance: moi.Provenance.String(),
		Struct:        w.MOI.Snapshot(),
		ROF: exam.ROF{
			Mode:            string(w.ROF.Mode()),
			AutoParagraph:   w.ROF.AutoParagraph(),
			ManualParagraph: w.ROF.ManualParagraph(),
			ImagingBlocks:   w.ROF.Entries(),
		},
	}

	e.Subjectives = exam.Subjectives{Blocks: w.Subjective.Blocks()}
	therapy := w.Therapy.Text()
	e.Therapy = exam.Therapy{
		Order:       w.Therapy.Order(),
		Narrative:   therapy.Value,
		AutoEnabled: w.Therapy.Auto(),
		Provenance:  therapy.Provenance.String(),
	}

	e.Objectives = w.Objectives.Snapshot()
	e.FamilySocial = w.Objectives.FamilySocial()

	dx := w.Dx.Text()
	e.Diagnosis = exam.Diagnosis{
		Blocks:       w.Dx.Blocks(),
		Text:         dx.Value,
		TextIsManual: dx.Provenance == ProvenanceManual,
		ManualLock:   w.Dx.Locked(),
		Prognosis:    w.Dx.Prognosis(),
		ImagingRecs:  w.Dx.ImagingRecs(),
		Referrals:    w.Dx.Referrals(),
	}

	plan := w.Plan.Text()
	e.Plan = exam.Plan{
		PlanSnapshot: w.Plan.Snapshot(),
		AutoEnabled:  w.Plan.Auto(),
		PlanText:     plan.Value,
		Provenance:   plan.Provenance.String(),
		Services:     w.Plan.Services(),
	}

	return &e
}

// FromExam is NewWorkspace followed by Load.
func FromExam(e *exam.Exam, opts ...Option) *Workspace {
	w := NewWorkspace(opts...)
	w.Load(e)
	return w
}
