package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrsinham/chiroforge/internal/narrative"
	"github.com/mrsinham/chiroforge/internal/util"
)

// Config is a reusable set of wizard answers. Typical use is one template
// per clinic workflow (e.g. "rear-end auto accident, initial visit").
type Config struct {
	ExamName string         `yaml:"exam_name"`
	Patient  PatientYAML    `yaml:"patient"`
	History  HistoryYAML    `yaml:"history"`
	ROF      ROFYAML        `yaml:"rof"`
	Therapy  TherapyYAML    `yaml:"therapy"`
	Dx       SupplementYAML `yaml:"diagnosis"`
	Plan     PlanYAML       `yaml:"plan"`
}

// PatientYAML holds the patient header. Templates usually leave the name
// and dates empty.
type PatientYAML struct {
	First string `yaml:"first,omitempty"`
	Last  string `yaml:"last,omitempty"`
	DOB   string `yaml:"dob,omitempty"`
	DOI   string `yaml:"doi,omitempty"`
	Sex   string `yaml:"sex,omitempty"`
}

// HistoryYAML holds the history-of-injury answers.
type HistoryYAML struct {
	Auto             *bool    `yaml:"auto,omitempty"`
	InjuryType       string   `yaml:"injury_type"`
	AccidentType     string   `yaml:"accident_type,omitempty"`
	OtherVehiclePart string   `yaml:"other_vehicle_part,omitempty"`
	PatientSide      string   `yaml:"patient_side,omitempty"`
	Resembles        string   `yaml:"resembles,omitempty"`
	SlipCircumstance string   `yaml:"slip_circumstance,omitempty"`
	SlipLanding      string   `yaml:"slip_landing,omitempty"`
	BiteLocation     string   `yaml:"bite_location,omitempty"`
	BiteSeverity     string   `yaml:"bite_severity,omitempty"`
	Treatment        string   `yaml:"treatment,omitempty"`
	CareSetting      string   `yaml:"care_setting,omitempty"`
	FacilityName     string   `yaml:"facility_name,omitempty"`
	Meds             string   `yaml:"meds,omitempty"`
	MedClasses       []string `yaml:"med_classes,omitempty"`
	ImagingDone      string   `yaml:"imaging_done,omitempty"`
	ImagingTypes     []string `yaml:"imaging_types,omitempty"`
	ImagingParts     []string `yaml:"imaging_parts,omitempty"`
	Course           string   `yaml:"course,omitempty"`
}

// ROFYAML holds the review-of-findings defaults.
type ROFYAML struct {
	Mode   string `yaml:"mode,omitempty"`
	Manual string `yaml:"manual,omitempty"`
}

// TherapyYAML lists the therapy checklist, main concern first.
type TherapyYAML struct {
	Auto  *bool    `yaml:"auto,omitempty"`
	Order []string `yaml:"order,omitempty"`
}

// SupplementYAML holds the diagnosis supplements.
type SupplementYAML struct {
	Prognosis   string `yaml:"prognosis,omitempty"`
	RecModality string `yaml:"rec_modality,omitempty"`
	RecPart     string `yaml:"rec_body_part,omitempty"`
	Referral    string `yaml:"referral,omitempty"`
}

// PlanYAML holds the plan of care. Schedule values outside the picklists
// load as (other) with the value as free text.
type PlanYAML struct {
	Auto        *bool    `yaml:"auto,omitempty"`
	CareTypes   []string `yaml:"care_types,omitempty"`
	Regions     []string `yaml:"regions,omitempty"`
	Goals       []string `yaml:"goals,omitempty"`
	Frequency   string   `yaml:"frequency,omitempty"`
	Duration    string   `yaml:"duration,omitempty"`
	Reeval      string   `yaml:"reeval,omitempty"`
	CustomNotes string   `yaml:"custom_notes,omitempty"`
}

// LoadFromYAML reads a template and returns the wizard state it describes.
func LoadFromYAML(path string) (*WizardState, error) {
	cfg, err := readConfig(path)
	if err != nil {
		return nil, err
	}
	state := &WizardState{}
	if err := cfg.apply(state); err != nil {
		return nil, err
	}
	return state, nil
}

func readConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &cfg, nil
}

// apply copies the template onto s. Empty template values leave s as is.
func (c *Config) apply(s *WizardState) error {
	if c.ROF.Mode != "" {
		if _, err := narrative.ParseROFMode(c.ROF.Mode); err != nil {
			return fmt.Errorf("template rof.mode: %w", err)
		}
		s.ROF.Mode = c.ROF.Mode
	}
	if c.Dx.Prognosis != "" {
		if _, err := util.ParsePrognosis(c.Dx.Prognosis); err != nil {
			return fmt.Errorf("template diagnosis.prognosis: %w", err)
		}
		s.Supplement.Prognosis = c.Dx.Prognosis
	}

	set(&s.Patient.ExamName, c.ExamName)
	set(&s.Patient.First, c.Patient.First)
	set(&s.Patient.Last, c.Patient.Last)
	set(&s.Patient.DOB, c.Patient.DOB)
	set(&s.Patient.DOI, c.Patient.DOI)
	set(&s.Patient.Sex, c.Patient.Sex)

	h, snap := c.History, &s.MOI.Snapshot
	setBool(&s.MOI.Auto, h.Auto)
	set(&snap.InjuryType, h.InjuryType)
	set(&snap.AutoAccident.AccidentType, h.AccidentType)
	set(&snap.AutoAccident.OtherVehiclePart, h.OtherVehiclePart)
	set(&snap.AutoAccident.PatientSide, h.PatientSide)
	set(&snap.AutoAccident.Resembles, h.Resembles)
	set(&snap.SlipFall.Circumstance, h.SlipCircumstance)
	set(&snap.SlipFall.Landing, h.SlipLanding)
	set(&snap.DogBite.Location, h.BiteLocation)
	set(&snap.DogBite.Severity, h.BiteSeverity)
	set(&snap.TreatmentReceived, h.Treatment)
	set(&snap.CareSetting, h.CareSetting)
	set(&snap.FacilityName, h.FacilityName)
	set(&snap.MedsPrescribed, h.Meds)
	setList(&snap.MedClasses, h.MedClasses)
	set(&snap.ImagingDone, h.ImagingDone)
	setList(&s.MOI.Imaging.Types, h.ImagingTypes)
	setList(&s.MOI.Imaging.Parts, h.ImagingParts)
	set(&snap.Course, h.Course)

	set(&s.ROF.Manual, c.ROF.Manual)

	setBool(&s.Therapy.Auto, c.Therapy.Auto)
	if len(c.Therapy.Order) > 0 {
		s.Therapy.Main = c.Therapy.Order[0]
		s.Therapy.Others = append([]string(nil), c.Therapy.Order[1:]...)
	}

	set(&s.Supplement.RecModality, c.Dx.RecModality)
	set(&s.Supplement.RecPart, c.Dx.RecPart)
	set(&s.Supplement.Referral, c.Dx.Referral)

	p, plan := c.Plan, &s.Plan.Snapshot
	setBool(&s.Plan.Auto, p.Auto)
	setList(&plan.CareTypes, p.CareTypes)
	setList(&plan.Regions, p.Regions)
	setList(&plan.Goals, p.Goals)
	if p.Frequency != "" {
		plan.Frequency = narrative.ChoiceFromValue(narrative.FrequencyChoices, p.Frequency)
	}
	if p.Duration != "" {
		plan.Duration = narrative.ChoiceFromValue(narrative.DurationChoices, p.Duration)
	}
	if p.Reeval != "" {
		plan.Reeval = narrative.ChoiceFromValue(narrative.ReevalChoices, p.Reeval)
	}
	set(&plan.CustomNotes, p.CustomNotes)
	return nil
}

// SaveToYAML writes the reusable answers of s as a template. Patient name
// and dates are left out.
func SaveToYAML(s *WizardState, path string) error {
	snap := s.MOI.Snapshot
	plan := s.Plan.Snapshot
	moiAuto, therapyAuto, planAuto := s.MOI.Auto, s.Therapy.Auto, s.Plan.Auto

	cfg := Config{
		ExamName: s.Patient.ExamName,
		Patient:  PatientYAML{Sex: s.Patient.Sex},
		History: HistoryYAML{
			Auto:             &moiAuto,
			InjuryType:       snap.InjuryType,
			AccidentType:     snap.AutoAccident.AccidentType,
			OtherVehiclePart: snap.AutoAccident.OtherVehiclePart,
			PatientSide:      snap.AutoAccident.PatientSide,
			Resembles:        snap.AutoAccident.Resembles,
			SlipCircumstance: snap.SlipFall.Circumstance,
			SlipLanding:      snap.SlipFall.Landing,
			BiteLocation:     snap.DogBite.Location,
			BiteSeverity:     snap.DogBite.Severity,
			Treatment:        snap.TreatmentReceived,
			CareSetting:      snap.CareSetting,
			FacilityName:     snap.FacilityName,
			Meds:             snap.MedsPrescribed,
			MedClasses:       snap.MedClasses,
			ImagingDone:      snap.ImagingDone,
			ImagingTypes:     s.MOI.Imaging.Types,
			ImagingParts:     s.MOI.Imaging.Parts,
			Course:           snap.Course,
		},
		ROF:     ROFYAML{Mode: s.ROF.Mode, Manual: s.ROF.Manual},
		Therapy: TherapyYAML{Auto: &therapyAuto, Order: s.therapyOrder()},
		Dx: SupplementYAML{
			Prognosis:   s.Supplement.Prognosis,
			RecModality: s.Supplement.RecModality,
			RecPart:     s.Supplement.RecPart,
			Referral:    s.Supplement.Referral,
		},
		Plan: PlanYAML{
			Auto:        &planAuto,
			CareTypes:   plan.CareTypes,
			Regions:     plan.Regions,
			Goals:       plan.Goals,
			Frequency:   plan.Frequency.Resolve(),
			Duration:    plan.Duration.Resolve(),
			Reeval:      plan.Reeval.Resolve(),
			CustomNotes: plan.CustomNotes,
		},
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encoding template: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing template: %w", err)
	}
	return nil
}

func set(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setList(dst *[]string, v []string) {
	if len(v) > 0 {
		*dst = append([]string(nil), v...)
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
