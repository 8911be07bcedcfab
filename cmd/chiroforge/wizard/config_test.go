package wizard

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/types"
	"github.com/mrsinham/chiroforge/internal/narrative"
)

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test template: %v", err)
	}
	return path
}

func TestLoadFromYAML_ValidConfig(t *testing.T) {
	path := writeTemplate(t, `
exam_name: Initial
patient:
  sex: Female
history:
  auto: true
  injury_type: Auto Accident
  accident_type: Intersection Accident
  other_vehicle_part: front
  patient_side: driver side
  treatment: Did receive
  care_setting: ER
  imaging_done: Imaging performed
  imaging_types: [X-rays]
  imaging_parts: [Cervical Spine, Lumbar Spine]
  course: Improving
rof:
  mode: rof
  manual: Reviewed films with the patient.
therapy:
  auto: false
  order: [Neck, Low back]
diagnosis:
  prognosis: good
  rec_modality: MRI
  rec_body_part: Lumbar Spine
  referral: Orthopedist
plan:
  care_types: [Chiropractic manipulation]
  regions: [Cervical, Lumbar]
  goals: [Decrease pain]
  frequency: "3"
  duration: "4 to 6"
  reeval: every 10 visits
`)

	state, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	if state.Patient.ExamName != "Initial" {
		t.Errorf("Expected exam name Initial, got %s", state.Patient.ExamName)
	}
	if state.Patient.Sex != "Female" {
		t.Errorf("Expected sex Female, got %s", state.Patient.Sex)
	}

	snap := state.MOI.Snapshot
	if snap.InjuryType != narrative.InjuryAutoAccident {
		t.Errorf("Expected injury type %s, got %s", narrative.InjuryAutoAccident, snap.InjuryType)
	}
	if snap.AutoAccident.AccidentType != "Intersection Accident" {
		t.Errorf("Expected accident type 'Intersection Accident', got %s", snap.AutoAccident.AccidentType)
	}
	if snap.CareSetting != "ER" {
		t.Errorf("Expected care setting ER, got %s", snap.CareSetting)
	}
	if !state.MOI.Auto {
		t.Error("Expected history auto on")
	}
	if !reflect.DeepEqual(state.MOI.Imaging.Parts, []string{"Cervical Spine", "Lumbar Spine"}) {
		t.Errorf("Unexpected imaging parts: %v", state.MOI.Imaging.Parts)
	}

	if state.ROF.Mode != "rof" {
		t.Errorf("Expected rof mode to be kept as written, got %s", state.ROF.Mode)
	}
	if state.ROF.Manual != "Reviewed films with the patient." {
		t.Errorf("Unexpected manual paragraph: %s", state.ROF.Manual)
	}

	if state.Therapy.Auto {
		t.Error("Expected therapy auto off")
	}
	if state.Therapy.Main != "Neck" || !reflect.DeepEqual(state.Therapy.Others, []string{"Low back"}) {
		t.Errorf("Unexpected therapy order: main %s others %v", state.Therapy.Main, state.Therapy.Others)
	}

	if state.Supplement.Prognosis != "good" {
		t.Errorf("Expected prognosis good, got %s", state.Supplement.Prognosis)
	}
	if state.Supplement.Referral != "Orthopedist" {
		t.Errorf("Expected referral Orthopedist, got %s", state.Supplement.Referral)
	}

	plan := state.Plan.Snapshot
	if plan.Frequency != (narrative.Choice{Value: "3"}) {
		t.Errorf("Expected frequency 3, got %+v", plan.Frequency)
	}
	if plan.Duration != (narrative.Choice{Value: "4 to 6"}) {
		t.Errorf("Expected duration '4 to 6', got %+v", plan.Duration)
	}
	if plan.Reeval != (narrative.Choice{Value: narrative.OtherChoice, Other: "every 10 visits"}) {
		t.Errorf("Expected free-text reeval, got %+v", plan.Reeval)
	}
}

func TestLoadFromYAML_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "rof mode",
			content: "rof:\n  mode: Followup\n",
			wantErr: "rof.mode",
		},
		{
			name:    "prognosis",
			content: "diagnosis:\n  prognosis: Stellar\n",
			wantErr: "diagnosis.prognosis",
		},
		{
			name:    "malformed yaml",
			content: "history: [unclosed\n",
			wantErr: "parsing template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromYAML(writeTemplate(t, tt.content))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadFromYAML_MissingFile(t *testing.T) {
	_, err := LoadFromYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestApply_EmptyValuesKeepState(t *testing.T) {
	state := &WizardState{
		Patient: types.PatientForm{First: "Jane", ExamName: "Re-exam"},
		MOI:     types.MOIForm{Auto: true},
	}
	cfg := &Config{History: HistoryYAML{CareSetting: "Urgent Care"}}

	if err := cfg.apply(state); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if state.Patient.First != "Jane" || state.Patient.ExamName != "Re-exam" {
		t.Errorf("Expected patient fields to be kept, got %+v", state.Patient)
	}
	if !state.MOI.Auto {
		t.Error("Expected unset auto flag to leave the state alone")
	}
	if state.MOI.Snapshot.CareSetting != "Urgent Care" {
		t.Errorf("Expected care setting to be applied, got %s", state.MOI.Snapshot.CareSetting)
	}
}

func TestSaveToYAML_RoundTrip(t *testing.T) {
	state := &WizardState{
		Patient: types.PatientForm{
			First: "Jane", Last: "Doe", DOB: "01/02/1980", DOI: "03/05/2024",
			Sex: "Female", ExamName: "Initial",
		},
		MOI: types.MOIForm{
			Snapshot: narrative.MOISnapshot{InjuryType: narrative.InjurySlipAndFall, Course: "Improving"},
			Imaging:  narrative.ImagingBlock{Types: []string{"MRI"}, Parts: []string{"Knee"}},
			Auto:     true,
		},
		ROF:        types.ROFForm{Mode: "Final"},
		Therapy:    types.TherapyForm{Main: "Low back", Others: []string{"Neck"}},
		Supplement: types.DxSupplementForm{Prognosis: "Fair", Referral: "Neurologist"},
		Plan: types.PlanForm{
			Snapshot: narrative.PlanSnapshot{
				Goals:     []string{"Decrease spasm"},
				Frequency: narrative.Choice{Value: narrative.OtherChoice, Other: "as needed"},
			},
			Auto: true,
		},
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := SaveToYAML(state, path); err != nil {
		t.Fatalf("SaveToYAML failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read template: %v", err)
	}
	for _, private := range []string{"Jane", "Doe", "1980"} {
		if strings.Contains(string(data), private) {
			t.Errorf("Template should not contain %q", private)
		}
	}

	loaded, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}
	if loaded.Patient.ExamName != "Initial" || loaded.Patient.Sex != "Female" {
		t.Errorf("Unexpected patient fields: %+v", loaded.Patient)
	}
	if loaded.MOI.Snapshot.InjuryType != narrative.InjurySlipAndFall || !loaded.MOI.Auto {
		t.Errorf("Unexpected history: %+v auto=%v", loaded.MOI.Snapshot, loaded.MOI.Auto)
	}
	if !reflect.DeepEqual(loaded.MOI.Imaging.Types, []string{"MRI"}) {
		t.Errorf("Unexpected imaging types: %v", loaded.MOI.Imaging.Types)
	}
	if loaded.ROF.Mode != "Final" {
		t.Errorf("Expected mode Final, got %s", loaded.ROF.Mode)
	}
	if loaded.Therapy.Main != "Low back" || loaded.Therapy.Auto {
		t.Errorf("Unexpected therapy: %+v", loaded.Therapy)
	}
	if loaded.Supplement.Referral != "Neurologist" {
		t.Errorf("Expected referral Neurologist, got %s", loaded.Supplement.Referral)
	}
	if loaded.Plan.Snapshot.Frequency != (narrative.Choice{Value: narrative.OtherChoice, Other: "as needed"}) {
		t.Errorf("Unexpected frequency: %+v", loaded.Plan.Snapshot.Frequency)
	}
}
