// Package wizard provides the interactive exam editor.
package wizard

import (
	"strconv"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/types"
	"github.com/mrsinham/chiroforge/internal/narrative"
	"github.com/mrsinham/chiroforge/internal/reconcile"
)

// WizardState holds the values bound to the single-pass screens. Repeating
// blocks (studies, regions, diagnoses) live in the workspace and are edited
// one pass at a time.
type WizardState struct {
	Patient    types.PatientForm
	MOI        types.MOIForm
	ROF        types.ROFForm
	Therapy    types.TherapyForm
	Objectives types.ObjectivesForm
	Supplement types.DxSupplementForm
	Plan       types.PlanForm
}

// StateFromWorkspace prefills the screens from ws.
func StateFromWorkspace(ws *reconcile.Workspace, examName string) *WizardState {
	p := ws.Patient()
	s := &WizardState{
		Patient: types.PatientForm{
			First:    p.First,
			Last:     p.Last,
			DOB:      p.DOB,
			DOI:      p.DOI,
			Sex:      p.Sex,
			ExamName: examName,
		},
		MOI: types.MOIForm{
			Snapshot: ws.MOI.Snapshot(),
			Auto:     ws.MOI.Auto(),
		},
		ROF: types.ROFForm{
			Mode:   string(ws.ROF.Mode()),
			Manual: ws.ROF.ManualParagraph(),
		},
		Therapy: types.TherapyForm{Auto: ws.Therapy.Auto()},
		Objectives: types.ObjectivesForm{
			Objectives:   ws.Objectives.Snapshot(),
			FamilySocial: ws.Objectives.FamilySocial(),
		},
		Supplement: types.DxSupplementForm{
			Prognosis: ws.Dx.Prognosis(),
			Lock:      ws.Dx.Locked(),
		},
		Plan: types.PlanForm{
			Snapshot: ws.Plan.Snapshot(),
			Auto:     ws.Plan.Auto(),
			Services: servicesForm(ws.Plan.Services()),
		},
	}

	if blocks := s.MOI.Snapshot.ImagingBlocks; len(blocks) > 0 {
		s.MOI.Imaging = blocks[0]
	}
	if sev := s.Objectives.Objectives.ADL.Severity; sev != nil {
		s.Objectives.ADLSeverity = strconv.Itoa(*sev)
	}
	if order := ws.Therapy.Order(); len(order) > 0 {
		s.Therapy.Main = order[0]
		s.Therapy.Others = append([]string(nil), order[1:]...)
	}
	if recs := ws.Dx.ImagingRecs(); len(recs) > 0 {
		s.Supplement.RecModality = recs[0].Modality
		s.Supplement.RecPart = recs[0].BodyPart
	}
	if refs := ws.Dx.Referrals(); len(refs) > 0 {
		s.Supplement.Referral = refs[0].ProviderType
	}
	return s
}

// therapyOrder returns the checked parts, main concern first, without
// duplicates.
func (s *WizardState) therapyOrder() []string {
	var order []string
	if s.Therapy.Main != "" {
		order = append(order, s.Therapy.Main)
	}
	order = append(order, s.Therapy.Others...)
	return narrative.DedupePreserveOrder(order)
}
