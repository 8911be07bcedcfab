package exam

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mrsinham/chiroforge/internal/narrative"
	"github.com/mrsinham/chiroforge/internal/util"
)

// Field is one exam value addressable by a dotted name, used by
// `regen --set name=value`.
type Field struct {
	Name string
	Help string
	set  func(e *Exam, value string) error
}

// Set applies value to e.
func (f Field) Set(e *Exam, value string) error {
	if err := f.set(e, strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("set %s: %w", f.Name, err)
	}
	return nil
}

func text(dst func(e *Exam) *string) func(*Exam, string) error {
	return func(e *Exam, v string) error {
		*dst(e) = v
		return nil
	}
}

func date(dst func(e *Exam) *string) func(*Exam, string) error {
	return func(e *Exam, v string) error {
		*dst(e) = util.NormalizeDate(v)
		return nil
	}
}

func splitList(v string) []string {
	var items []string
	for _, it := range strings.Split(v, ",") {
		if t := strings.TrimSpace(it); t != "" {
			items = append(items, t)
		}
	}
	return items
}

func list(dst func(e *Exam) *[]string) func(*Exam, string) error {
	return func(e *Exam, v string) error {
		*dst(e) = splitList(v)
		return nil
	}
}

func flag(dst func(e *Exam) *bool) func(*Exam, string) error {
	return func(e *Exam, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean: %s", v)
		}
		*dst(e) = b
		return nil
	}
}

func choice(options []string, dst func(e *Exam) *narrative.Choice) func(*Exam, string) error {
	return func(e *Exam, v string) error {
		*dst(e) = narrative.ChoiceFromValue(options, v)
		return nil
	}
}

// fieldRegistry maps lowercase field names to their Field.
var fieldRegistry = map[string]Field{}

func register(name, help string, set func(*Exam, string) error) {
	fieldRegistry[strings.ToLower(name)] = Field{Name: name, Help: help, set: set}
}

func init() {
	// Patient
	register("exam_name", "Visit name, e.g. Initial or Re-Exam 1", text(func(e *Exam) *string { return &e.ExamName }))
	register("patient.first", "Patient first name", text(func(e *Exam) *string { return &e.Patient.First }))
	register("patient.last", "Patient last name", text(func(e *Exam) *string { return &e.Patient.Last }))
	register("patient.dob", "Date of birth (MM/DD/YYYY)", date(func(e *Exam) *string { return &e.Patient.DOB }))
	register("patient.doi", "Date of injury (MM/DD/YYYY)", date(func(e *Exam) *string { return &e.Patient.DOI }))
	register("patient.sex", "Female, Male or (unknown)", text(func(e *Exam) *string { return &e.Patient.Sex }))

	// History of injury
	register("history.auto", "Regenerate the MOI narrative automatically", flag(func(e *Exam) *bool { return &e.History.AutoMOI }))
	register("history.injury_type", "Auto Accident, Slip and Fall, Dog Bite, ...", text(func(e *Exam) *string { return &e.History.Struct.InjuryType }))
	register("history.sex", "Pronoun source overriding the patient sex", text(func(e *Exam) *string { return &e.History.Struct.Sex }))
	register("history.accident_type", "Moving Vehicle Accident, ...", text(func(e *Exam) *string { return &e.History.Struct.AutoAccident.AccidentType }))
	register("history.other_vehicle_part", "front, rear, left side, right side", text(func(e *Exam) *string { return &e.History.Struct.AutoAccident.OtherVehiclePart }))
	register("history.patient_side", "driver side, passenger side, front, rear", text(func(e *Exam) *string { return &e.History.Struct.AutoAccident.PatientSide }))
	register("history.resembles", "rear-end, T-bone, head-on, sideswipe, other", text(func(e *Exam) *string { return &e.History.Struct.AutoAccident.Resembles }))
	register("history.slip_circumstance", "Slip and fall circumstance", text(func(e *Exam) *string { return &e.History.Struct.SlipFall.Circumstance }))
	register("history.slip_landing", "Slip and fall landing", text(func(e *Exam) *string { return &e.History.Struct.SlipFall.Landing }))
	register("history.bite_location", "Dog bite location", text(func(e *Exam) *string { return &e.History.Struct.DogBite.Location }))
	register("history.bite_severity", "Dog bite severity", text(func(e *Exam) *string { return &e.History.Struct.DogBite.Severity }))
	register("history.course", "Improving, Staying the same, Getting worse", text(func(e *Exam) *string { return &e.History.Struct.Course }))
	register("history.course_notes", "Free-text course notes", text(func(e *Exam) *string { return &e.History.Struct.CourseNotes }))
	register("history.treatment", "Did receive or Did not receive", text(func(e *Exam) *string { return &e.History.Struct.TreatmentReceived }))
	register("history.care_setting", "Hospital, Urgent Care, ...", text(func(e *Exam) *string { return &e.History.Struct.CareSetting }))
	register("history.facility_name", "Name of the treating facility", text(func(e *Exam) *string { return &e.History.Struct.FacilityName }))
	register("history.prior_care_notes", "Free-text prior care notes", text(func(e *Exam) *string { return &e.History.Struct.PriorCareNotes }))
	register("history.meds", "Was prescribed or Was not prescribed", text(func(e *Exam) *string { return &e.History.Struct.MedsPrescribed }))
	register("history.med_classes", "Comma-separated medication classes", list(func(e *Exam) *[]string { return &e.History.Struct.MedClasses }))
	register("history.med_notes", "Free-text medication notes", text(func(e *Exam) *string { return &e.History.Struct.MedNotes }))
	register("history.imaging_done", "Imaging performed or No imaging", text(func(e *Exam) *string { return &e.History.Struct.ImagingDone }))
	register("history.diagnostics_notes", "Free-text diagnostics notes", text(func(e *Exam) *string { return &e.History.Struct.DiagnosticsNotes }))

	// Review of findings
	register("rof.mode", "Initial, Re-Exam, ROF or Final", func(e *Exam, v string) error {
		m, err := narrative.ParseROFMode(v)
		if err != nil {
			return err
		}
		e.History.ROF.Mode = string(m)
		return nil
	})
	register("rof.manual_paragraph", "Clinician-written findings paragraph", text(func(e *Exam) *string { return &e.History.ROF.ManualParagraph }))

	// Therapy
	register("therapy.auto", "Regenerate the therapy narrative automatically", flag(func(e *Exam) *bool { return &e.Therapy.AutoEnabled }))
	register("therapy.order", "Comma-separated body parts, main concern first", list(func(e *Exam) *[]string { return &e.Therapy.Order }))

	// Family / social history and objectives
	register("family_social", "Family and social history", text(func(e *Exam) *string { return &e.FamilySocial }))
	register("objectives.bp", "Blood pressure", text(func(e *Exam) *string { return &e.Objectives.Vitals.BP }))
	register("objectives.pulse", "Pulse", text(func(e *Exam) *string { return &e.Objectives.Vitals.Pulse }))
	register("objectives.resp", "Respiration rate", text(func(e *Exam) *string { return &e.Objectives.Vitals.Resp }))
	register("objectives.temp", "Temperature", text(func(e *Exam) *string { return &e.Objectives.Vitals.Temp }))
	register("objectives.height", "Height", text(func(e *Exam) *string { return &e.Objectives.Vitals.Height }))
	register("objectives.weight", "Weight", text(func(e *Exam) *string { return &e.Objectives.Vitals.Weight }))
	register("objectives.spo2", "Oxygen saturation", text(func(e *Exam) *string { return &e.Objectives.Vitals.SpO2 }))
	register("objectives.vitals_notes", "Vitals notes", text(func(e *Exam) *string { return &e.Objectives.Vitals.Notes }))
	register("objectives.shoulder_levels", "Normal/Level, Left high or Right high", text(func(e *Exam) *string { return &e.Objectives.Posture.ShoulderLevels }))
	register("objectives.kyphosis", "Thoracic kyphosis: Mild, Moderate or Severe", text(func(e *Exam) *string { return &e.Objectives.Posture.KyphosisTS }))
	register("objectives.forward_head", "Forward head posture: Mild, Moderate or Severe", text(func(e *Exam) *string { return &e.Objectives.Posture.ForwardHeadCS }))
	register("objectives.lordosis", "Lumbar lordosis: Normal, Decreased or Increased", text(func(e *Exam) *string { return &e.Objectives.Posture.LordosisLS }))
	register("objectives.posture_notes", "Posture notes", text(func(e *Exam) *string { return &e.Objectives.Posture.Notes }))
	register("objectives.grip_left", "Left grip reading", text(func(e *Exam) *string { return &e.Objectives.Grip.Left }))
	register("objectives.grip_right", "Right grip reading", text(func(e *Exam) *string { return &e.Objectives.Grip.Right }))
	register("objectives.grip_compare", "Symmetric, Left weaker or Right weaker", text(func(e *Exam) *string { return &e.Objectives.Grip.Compare }))
	register("objectives.grip_notes", "Grip notes", text(func(e *Exam) *string { return &e.Objectives.Grip.Notes }))
	register("objectives.adl_severity", "ADL impact 0-9, or - to clear", func(e *Exam, v string) error {
		if v == "" || v == "-" {
			e.Objectives.ADL.Severity = nil
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil || narrative.SeverityLabel(n) == "" {
			return fmt.Errorf("invalid severity: %s", v)
		}
		e.Objectives.ADL.Severity = &n
		return nil
	})
	register("objectives.adl_items", "Comma-separated affected ADLs", list(func(e *Exam) *[]string { return &e.Objectives.ADL.Items }))
	register("objectives.adl_notes", "ADL notes", text(func(e *Exam) *string { return &e.Objectives.ADL.Notes }))
	register("objectives.finding", "REGION:palpation|ortho|rom:name=L/R, repeatable", func(e *Exam, v string) error {
		region, section, name, r, err := narrative.ParseFinding(v)
		if err != nil {
			return err
		}
		return e.Objectives.Rate(region, section, name, r)
	})

	// Diagnosis
	register("diagnosis.manual_lock", "Keep edited diagnosis text", flag(func(e *Exam) *bool { return &e.Diagnosis.ManualLock }))
	register("diagnosis.prognosis", "Poor, Guarded, Fair, Good or Excellent", func(e *Exam, v string) error {
		p, err := util.ParsePrognosis(v)
		if err != nil {
			return err
		}
		e.Diagnosis.Prognosis = p.String()
		return nil
	})

	// Plan
	register("plan.auto", "Regenerate the plan narrative automatically", flag(func(e *Exam) *bool { return &e.Plan.AutoEnabled }))
	register("plan.care_types", "Comma-separated care types", list(func(e *Exam) *[]string { return &e.Plan.CareTypes }))
	register("plan.regions", "Comma-separated treated regions", list(func(e *Exam) *[]string { return &e.Plan.Regions }))
	register("plan.goals", "Comma-separated goals", list(func(e *Exam) *[]string { return &e.Plan.Goals }))
	register("plan.frequency", "Visits per week", choice(narrative.FrequencyChoices, func(e *Exam) *narrative.Choice { return &e.Plan.Frequency }))
	register("plan.duration", "Duration in weeks", choice(narrative.DurationChoices, func(e *Exam) *narrative.Choice { return &e.Plan.Duration }))
	register("plan.reeval", "Re-evaluation interval", choice(narrative.ReevalChoices, func(e *Exam) *narrative.Choice { return &e.Plan.Reeval }))
	register("plan.custom_notes", "Notes kept with the plan", text(func(e *Exam) *string { return &e.Plan.CustomNotes }))

	// Services provided today
	register("plan.cmt_code", "98940, 98941, 98942 or 98943; a new code clears the adjusted areas", func(e *Exam, v string) error {
		e.Plan.Services.SetCMTCode(v)
		return nil
	})
	register("plan.adjusted", "Comma-separated AREA[=TECH+TECH]", func(e *Exam, v string) error {
		var areas []narrative.AdjustedArea
		for _, it := range splitList(v) {
			a, err := narrative.ParseAdjusted(it)
			if err != nil {
				return err
			}
			areas = append(areas, a)
		}
		e.Plan.Services.Adjusted = areas
		return nil
	})
	register("plan.em_code", "99212, 99213 or 99214", func(e *Exam, v string) error {
		e.Plan.Services.EMCode = narrative.ResolveCode(narrative.EMCodes, v)
		return nil
	})
	register("plan.exam_notes", "Evaluation and management notes", text(func(e *Exam) *string { return &e.Plan.Services.ExamNotes }))
	register("plan.modalities", "Comma-separated CODE[=PART@MIN+PART]", func(e *Exam, v string) error {
		var mods []narrative.Modality
		for _, it := range splitList(v) {
			m, err := narrative.ParseModality(it)
			if err != nil {
				return err
			}
			mods = append(mods, m)
		}
		e.Plan.Services.Modalities = mods
		return nil
	})
}

// GetField returns the Field for name. The lookup is case-insensitive.
// If the field is not found, the error wraps ErrUnknownField and suggests the
// closest name.
func GetField(name string) (Field, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if f, ok := fieldRegistry[normalized]; ok {
		return f, nil
	}

	keys := make([]string, 0, len(fieldRegistry))
	for k := range fieldRegistry {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if suggestion := util.Closest(normalized, keys, 5); suggestion != "" {
		return Field{}, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownField, name, fieldRegistry[suggestion].Name)
	}
	return Field{}, fmt.Errorf("%w %q", ErrUnknownField, name)
}

// SetField looks up name and applies value to e.
func SetField(e *Exam, name, value string) error {
	f, err := GetField(name)
	if err != nil {
		return err
	}
	return f.Set(e, value)
}

// ParseAssignment splits "name=value".
func ParseAssignment(s string) (name, value string, err error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return "", "", fmt.Errorf("invalid assignment %q (expected name=value)", s)
	}
	return strings.TrimSpace(name), value, nil
}

// Fields returns every registered field, sorted by name.
func Fields() []Field {
	fields := make([]Field, 0, len(fieldRegistry))
	for _, f := range fieldRegistry {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })
	return fields
}
