// Package exam holds the persisted exam record and its per-patient storage.
package exam

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mrsinham/chiroforge/internal/narrative"
)

// SchemaVersion is written into every saved exam.
const SchemaVersion = 1

var (
	// ErrIncompletePatient is returned when a patient folder cannot be named.
	ErrIncompletePatient = errors.New("incomplete patient: first, last, DOB and DOI are required")
	// ErrUnknownField is returned by the field registry for an unknown path.
	ErrUnknownField = errors.New("unknown field")
)

// Patient is the demographic header shared by every section.
type Patient struct {
	First string `json:"first"`
	Last  string `json:"last"`
	DOB   string `json:"dob"`
	DOI   string `json:"doi"`
	Sex   string `json:"sex"`
}

// Context returns the read-only view the narrative builders use.
func (p Patient) Context() narrative.PatientContext {
	return narrative.PatientContext{First: p.First, Sex: p.Sex, DOI: p.DOI}
}

// ROF is the review-of-findings panel.
type ROF struct {
	Mode            string                   `json:"mode"`
	AutoParagraph   string                   `json:"auto_paragraph"`
	ManualParagraph string                   `json:"manual_paragraph"`
	ImagingBlocks   []narrative.ImagingEntry `json:"imaging_blocks"`
}

// History is the history-of-injury section.
type History struct {
	MOI           string                `json:"moi"`
	AutoMOI       bool                  `json:"auto_moi"`
	MOIProvenance string                `json:"moi_provenance"`
	Struct        narrative.MOISnapshot `json:"struct"`
	ROF           ROF                   `json:"rof"`
}

// Subjectives holds the pain-descriptor blocks.
type Subjectives struct {
	Blocks []narrative.DescriptorBlock `json:"blocks"`
}

// Therapy is the therapy-only subjective flow.
type Therapy struct {
	Order       []string `json:"order"`
	Narrative   string   `json:"narrative"`
	AutoEnabled bool     `json:"auto_enabled"`
	Provenance  string   `json:"provenance"`
}

// Diagnosis holds the numbered diagnosis list and its supplements.
type Diagnosis struct {
	Blocks       []narrative.DxBlock    `json:"blocks"`
	Text         string                 `json:"text"`
	TextIsManual bool                   `json:"text_is_manual"`
	ManualLock   bool                   `json:"manual_lock"`
	Prognosis    string                 `json:"prognosis"`
	ImagingRecs  []narrative.ImagingRec `json:"imaging_recs"`
	Referrals    []narrative.Referral   `json:"referrals"`
}

// Plan is the plan-of-care section.
type Plan struct {
	narrative.PlanSnapshot
	AutoEnabled bool               `json:"auto_enabled"`
	PlanText    string             `json:"plan_text"`
	Provenance  string             `json:"provenance"`
	Services    narrative.Services `json:"services"`
}

// Exam is one visit for one patient.
type Exam struct {
	ID           string               `json:"id"`
	ExamName     string               `json:"exam_name"`
	Patient      Patient              `json:"patient"`
	History      History              `json:"history"`
	Subjectives  Subjectives          `json:"subjectives"`
	Therapy      Therapy              `json:"therapy"`
	FamilySocial string               `json:"family_social"`
	Objectives   narrative.Objectives `json:"objectives"`
	Diagnosis    Diagnosis            `json:"diagnosis"`
	Plan         Plan                 `json:"plan"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	Version      int                  `json:"version"`
}

// New returns an empty exam with auto generation enabled everywhere.
func New(p Patient, name string) *Exam {
	now := time.Now().UTC()
	return &Exam{
		ID:       uuid.New().String(),
		ExamName: name,
		Patient:  p,
		History: History{
			AutoMOI: true,
			ROF:     ROF{Mode: string(narrative.ModeROF)},
		},
		Therapy:   Therapy{AutoEnabled: true},
		Plan:      Plan{AutoEnabled: true},
		CreatedAt: now,
		UpdatedAt: now,
		Version:   SchemaVersion,
	}
}
