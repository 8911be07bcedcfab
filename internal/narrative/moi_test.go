package narrative

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func autoSnapshot() MOISnapshot {
	return MOISnapshot{
		InjuryType: InjuryAutoAccident,
		AutoAccident: AutoAccident{
			AccidentType:     "Moving Vehicle Accident",
			OtherVehiclePart: "rear",
			PatientSide:      "driver side",
			Resembles:        "rear-end",
		},
		TreatmentReceived: TreatmentDidNotReceive,
		MedsPrescribed:    MedsNotPrescribed,
		ImagingDone:       ImagingNone,
	}
}

func TestBuildMOIAutoAccident(t *testing.T) {
	pc := PatientContext{First: "John", Sex: "Male", DOI: "01/15/2024"}

	got := BuildMOI(autoSnapshot(), pc, nil)
	paragraphs := strings.Split(got, "\n\n")
	require.Len(t, paragraphs, 3)

	assert.Equal(t,
		"John reports he was involved in a moving vehicle accident on 01/15/2024. "+
			"The patient states the rear portion of the other vehicle struck his vehicle on the driver side, "+
			"and the mechanism of injury most closely resembles a rear-end collision.",
		paragraphs[0])
	assert.Equal(t, "The patient did not receive medical treatment immediately following the incident.", paragraphs[1])
	assert.Equal(t, TagMOI, paragraphs[2])
}

func TestBuildMOIIdempotent(t *testing.T) {
	s := autoSnapshot()
	s.Course = "Improving"
	pc := PatientContext{First: "Ana", Sex: "Female", DOI: "02/02/2024"}
	regions := []string{"Neck", "Low back"}

	assert.Equal(t, BuildMOI(s, pc, regions), BuildMOI(s, pc, regions))
}

func TestBuildMOIGuard(t *testing.T) {
	s := autoSnapshot()
	s.InjuryType = "(none)"
	assert.Empty(t, BuildMOI(s, PatientContext{First: "John"}, []string{"Neck"}))

	s.InjuryType = ""
	assert.Empty(t, BuildMOI(s, PatientContext{}, nil))
}

func TestBuildMOIMechanismBranches(t *testing.T) {
	tests := []struct {
		name string
		snap MOISnapshot
		pc   PatientContext
		want string
	}{
		{
			name: "slip and fall",
			snap: MOISnapshot{
				InjuryType: InjurySlipAndFall,
				SlipFall:   SlipFall{Circumstance: "a Wet floor", Landing: "Back"},
			},
			pc: PatientContext{First: "Ana", Sex: "Female", DOI: "03/03/2024"},
			want: "Ana reports she sustained a slip and fall injury on 03/03/2024. " +
				"The patient states the incident involved a wet floor and that she landed primarily on the back.",
		},
		{
			name: "dog bite without name",
			snap: MOISnapshot{
				InjuryType: InjuryDogBite,
				DogBite:    DogBite{Location: "Forearm", Severity: "Puncture"},
			},
			pc: PatientContext{DOI: "04/04/2024"},
			want: "The patient reports they sustained injuries due to a dog bite on 04/04/2024. " +
				"The patient states the bite involved the forearm and describes the bite as a puncture type of wound.",
		},
		{
			name: "generic with missing doi and notes",
			snap: MOISnapshot{InjuryType: "Work Injury", CourseNotes: "Lifting a box"},
			pc:   PatientContext{First: "Sam"},
			want: "Sam reports sustained the following mechanism of injury on " + MissingDOI + ". Lifting a box.",
		},
		{
			name: "snapshot sex overrides patient",
			snap: MOISnapshot{InjuryType: InjurySlipAndFall, Sex: "Male"},
			pc:   PatientContext{Sex: "Female", DOI: "05/05/2024"},
			want: "The patient reports he sustained a slip and fall injury on 05/05/2024.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mechanismParagraph(tc.snap, tc.pc))
		})
	}
}

func TestBuildMOIMedicalParagraph(t *testing.T) {
	s := MOISnapshot{
		InjuryType:        InjuryAutoAccident,
		TreatmentReceived: TreatmentDidReceive,
		CareSetting:       "Urgent Care",
		FacilityName:      "Bay Urgent Care",
		PriorCareNotes:    "Released the same day",
		MedsPrescribed:    MedsPrescribed,
		MedClasses:        []string{"Muscle Relaxers", "Pain Medications"},
		ImagingDone:       ImagingPerformed,
		ImagingBlocks: []ImagingBlock{
			{Types: []string{"X-rays"}, Parts: []string{"Cervical Spine", "Lumbar Spine"}},
			{Types: []string{"MRI", "CT"}},
		},
		DiagnosticsNotes: "No fractures noted",
	}

	assert.Equal(t,
		"The patient sought medical care at a urgent care, specifically at Bay Urgent Care. "+
			"Released the same day. "+
			"The patient was prescribed medications including muscle relaxers, pain medications. "+
			"Diagnostic imaging was performed, including x-ray films of the cervical spine and lumbar spine and MRI studies and CT scans. "+
			"No fractures noted.",
		medicalParagraph(s))
}

func TestImagingSentence(t *testing.T) {
	assert.Empty(t, ImagingSentence(ImagingNone, []ImagingBlock{{Types: []string{"MRI"}}}))
	assert.Equal(t, "Diagnostic imaging was performed, including imaging studies.",
		ImagingSentence(ImagingPerformed, nil))
	assert.Equal(t, "Diagnostic imaging was performed, including imaging of the knee.",
		ImagingSentence(ImagingPerformed, []ImagingBlock{{Parts: []string{"Knee"}}}))
}

func TestBuildMOICourseParagraph(t *testing.T) {
	s := MOISnapshot{Course: "Getting worse"}
	assert.Equal(t,
		"Since the date of injury, the patient reports that the condition has been getting worse. "+
			"The patient reports injuries to the following area or body regions: Neck, Low back, and Right shoulder.",
		courseParagraph(s, []string{"Neck", "neck", "Low back", "Right shoulder"}))
	assert.Empty(t, courseParagraph(MOISnapshot{}, nil))
}
