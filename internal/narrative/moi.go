package narrative

import (
	"strings"
)

// PatientContext is the read-only patient data a builder may use.
type PatientContext struct {
	First string
	Sex   string
	DOI   string
}

// AutoAccident holds the motor-vehicle sub-fields.
type AutoAccident struct {
	AccidentType     string `json:"accident_type"`
	OtherVehiclePart string `json:"other_vehicle_part"`
	PatientSide      string `json:"patient_side"`
	Resembles        string `json:"resembles"`
}

// SlipFall holds the slip-and-fall sub-fields.
type SlipFall struct {
	Circumstance string `json:"circumstance"`
	Landing      string `json:"landing"`
}

// DogBite holds the dog-bite sub-fields.
type DogBite struct {
	Location string `json:"location"`
	Severity string `json:"severity"`
}

// MOISnapshot is the structured history-of-injury section.
type MOISnapshot struct {
	InjuryType string `json:"injury_type"`
	// Sex overrides PatientContext.Sex when set.
	Sex string `json:"sex"`

	AutoAccident AutoAccident `json:"auto_accident"`
	SlipFall     SlipFall     `json:"slip_fall"`
	DogBite      DogBite      `json:"dog_bite"`

	Course      string `json:"course"`
	CourseNotes string `json:"course_notes"`

	TreatmentReceived string `json:"treatment_received"`
	CareSetting       string `json:"care_setting"`
	FacilityName      string `json:"facility_name"`
	PriorCareNotes    string `json:"prior_care_notes"`

	MedsPrescribed string   `json:"meds_prescribed"`
	MedClasses     []string `json:"med_classes"`
	MedNotes       string   `json:"med_notes"`

	ImagingDone      string         `json:"imaging_done"`
	ImagingBlocks    []ImagingBlock `json:"imaging_blocks"`
	DiagnosticsNotes string         `json:"diagnostics_notes"`
}

// BuildMOI writes the mechanism-of-injury narrative: up to three paragraphs
// separated by blank lines and followed by the TagMOI line. It returns ""
// when no injury type is selected.
func BuildMOI(s MOISnapshot, pc PatientContext, regions []string) string {
	injury := clean(s.InjuryType)
	if injury == "" {
		return ""
	}

	paragraphs := []string{
		mechanismParagraph(s, pc),
		medicalParagraph(s),
		courseParagraph(s, regions),
		TagMOI,
	}

	kept := paragraphs[:0]
	for _, p := range paragraphs {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

func mechanismParagraph(s MOISnapshot, pc PatientContext) string {
	sex := clean(s.Sex)
	if sex == "" {
		sex = pc.Sex
	}
	pro := Pronouns(sex)
	doi := strings.TrimSpace(pc.DOI)
	if doi == "" {
		doi = MissingDOI
	}
	reports := Reports(pc.First)

	var parts []string
	switch clean(s.InjuryType) {
	case InjuryAutoAccident:
		aa := s.AutoAccident
		parts = append(parts,
			reports+" "+pro.Subj+" was involved in a "+lowerTrim(aa.AccidentType)+" on "+doi+". "+
				"The patient states the "+lowerTrim(aa.OtherVehiclePart)+" portion of the other vehicle struck "+
				pro.Poss+" vehicle on the "+lowerTrim(aa.PatientSide)+", and the mechanism of injury most closely resembles a "+
				lowerTrim(aa.Resembles)+" collision.")

	case InjurySlipAndFall:
		parts = append(parts, reports+" "+pro.Subj+" sustained a slip and fall injury on "+doi+".")
		if c := clean(s.SlipFall.Circumstance); c != "" {
			parts = append(parts, "The patient states the incident involved "+strings.ToLower(c))
		}
		if l := clean(s.SlipFall.Landing); l != "" {
			parts = append(parts, "and that "+pro.Subj+" landed primarily on the "+strings.ToLower(l)+".")
		}

	case InjuryDogBite:
		parts = append(parts, reports+" "+pro.Subj+" sustained injuries due to a dog bite on "+doi+".")
		if l := clean(s.DogBite.Location); l != "" {
			parts = append(parts, "The patient states the bite involved the "+strings.ToLower(l))
		}
		if sev := clean(s.DogBite.Severity); sev != "" {
			parts = append(parts, "and describes the bite as a "+strings.ToLower(sev)+" type of wound.")
		}

	default:
		parts = append(parts, reports+" sustained the following mechanism of injury on "+doi+".")
	}

	parts = append(parts, EnsurePeriod(s.CourseNotes))
	return joinSentences(parts...)
}

func medicalParagraph(s MOISnapshot) string {
	var parts []string

	if strings.TrimSpace(s.TreatmentReceived) == TreatmentDidReceive {
		if setting := clean(s.CareSetting); setting != "" {
			line := "The patient sought medical care at a " + strings.ToLower(setting)
			if fac := strings.TrimSpace(s.FacilityName); fac != "" {
				line += ", specifically at " + fac + "."
			} else {
				line += "."
			}
			parts = append(parts, line)
		}
		parts = append(parts, EnsurePeriod(s.PriorCareNotes))
	} else {
		parts = append(parts, "The patient did not receive medical treatment immediately following the incident.")
	}

	if strings.TrimSpace(s.MedsPrescribed) == MedsPrescribed {
		if meds := lowerAll(s.MedClasses); len(meds) > 0 {
			parts = append(parts, "The patient was prescribed medications including "+strings.Join(meds, ", ")+".")
		}
		parts = append(parts, EnsurePeriod(s.MedNotes))
	}

	parts = append(parts, ImagingSentence(s.ImagingDone, s.ImagingBlocks))

	// Diagnostics notes always close the paragraph.
	parts = append(parts, EnsurePeriod(s.DiagnosticsNotes))

	return joinSentences(parts...)
}

func courseParagraph(s MOISnapshot, regions []string) string {
	var parts []string
	if course := strings.ToLower(clean(s.Course)); course != "" {
		parts = append(parts, "Since the date of injury, the patient reports that the condition has been "+course+".")
	}
	if r := DedupePreserveOrder(regions); len(r) > 0 {
		parts = append(parts, "The patient reports injuries to the following area or body regions: "+JoinHuman(r, false)+".")
	}
	return joinSentences(parts...)
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
