package narrative

// Selector values with narrative meaning.
const (
	InjuryAutoAccident = "Auto Accident"
	InjurySlipAndFall  = "Slip and Fall"
	InjuryDogBite      = "Dog Bite"

	TreatmentDidReceive    = "Did receive"
	TreatmentDidNotReceive = "Did not receive"

	MedsPrescribed    = "Was prescribed"
	MedsNotPrescribed = "Was not prescribed"

	ImagingPerformed = "Imaging performed"
	ImagingNone      = "No imaging"

	// OtherChoice marks a schedule selector whose value lives in free text.
	OtherChoice = "(other)"

	// MissingDOI stands in for an unknown date of injury.
	MissingDOI = "____/____/________"
)

// Block limits per section.
const (
	MaxROFBlocks        = 4
	MaxImagingBlocks    = 6
	MaxDxBlocks         = 21
	MaxDescriptorBlocks = 5
	MaxROFGroups        = 4
)

// History of injury selectors.
var (
	InjuryTypes = []string{"(none)", InjuryAutoAccident, InjurySlipAndFall, InjuryDogBite, "Work Injury", "Other"}
	SexOptions  = []string{"(unknown)", "Female", "Male"}

	AccidentTypes     = []string{"Moving Vehicle Accident", "Parked Vehicle Accident", "Intersection Accident", "Other"}
	OtherVehicleParts = []string{"front", "rear", "left side", "right side"}
	PatientSides      = []string{"driver side", "passenger side", "front", "rear"}
	CollisionTypes    = []string{"rear-end", "T-bone", "head-on", "sideswipe", "other"}

	SlipCircumstances = []string{"(none)", "a Slip", "a Trip", "a Missed step", "an Uneven surface", "a Wet floor", "Other"}
	SlipLandings      = []string{"(none)", "Back", "Side", "Front", "Knees", "Hands/Wrists", "Other"}

	BiteLocations  = []string{"(none)", "Hand", "Forearm", "Arm", "Leg", "Thigh", "Foot/Ankle", "Other"}
	BiteSeverities = []string{"(none)", "Superficial", "Puncture", "Laceration", "Other"}

	TreatmentOptions = []string{TreatmentDidNotReceive, TreatmentDidReceive}
	CareSettings     = []string{"(none)", "Hospital", "Urgent Care", "Primary MD", "ER", "Chiropractic", "Physical Therapy", "Other"}

	MedsOptions = []string{MedsNotPrescribed, MedsPrescribed}
	MedClasses  = []string{
		"Muscle Relaxers",
		"Anti-Inflammatories (NSAIDs)",
		"Pain Medications",
		"Steroids",
		"Injections",
		"Topical/Pain Patches",
		"Other",
	}

	ImagingDoneOptions = []string{ImagingNone, ImagingPerformed}
	ImagingTypes       = []string{"X-rays", "MRI", "CT", "Ultrasound", "Other"}
	ImagingBodyParts   = []string{
		"Cervical Spine", "Thoracic Spine", "Lumbar Spine",
		"Shoulder", "Elbow", "Wrist/Hand",
		"Hip", "Knee", "Ankle/Foot",
		"Other",
	}

	CourseOptions = []string{"Improving", "Staying the same", "Getting worse"}

	ROFFacilities = []string{
		"South Coast Imaging",
		"OC MRI & Radiology",
		"MemorialCare Imaging",
		"Hoag Radiology",
		"Other",
	}
)

// Subjective selectors.
var (
	PainDescriptors = []string{
		"Achy", "Sharp", "Dull", "Burning", "Throbbing",
		"Stabbing", "Shooting", "Tight", "Pressure", "Cramping",
	}

	RadicularSymptoms = []string{"None", "Numbness", "Tingling", "Weakness"}

	RadicularLocations = []string{
		"(select)",
		"Right hand", "Left hand",
		"Right arm", "Left arm",
		"Right forearm", "Left forearm",
		"Right fingers", "Left fingers",
		"Right leg", "Left leg",
		"Right foot", "Left foot",
		"Right toes", "Left toes",
	}

	PainScale = []string{
		"None", "Minimum", "Minimum to Mild", "Mild", "Mild to Moderate",
		"Moderate", "Moderate to Severe", "Severe", "Unbearable",
	}

	// TherapyBodyParts is the fixed checklist of the therapy-only flow.
	TherapyBodyParts = []string{
		"Neck", "Upper back", "Mid back", "Low back",
		"Right shoulder", "Left shoulder", "Right hip", "Left hip",
		"Right knee", "Left knee",
	}
)

// Plan of care selectors.
var (
	CareTypes = []string{
		"Chiropractic manipulation",
		"Manual therapy (MRT)",
		"Vibratory Massage",
		"Therapeutic exercise",
		"Neuromuscular re-education",
		"Modalities (e-stim / heat and/or ice, spinal traction therapy)",
		"Home exercise program (HEP)",
		"Referral / co-management",
	}

	PlanRegions = []string{
		"Cervical", "Thoracic", "Lumbar", "Pelvis / SI",
		"Right shoulder", "Left shoulder",
		"Right elbow", "Left elbow",
		"Right wrist/hand", "Left wrist/hand",
		"Right hip", "Left hip",
		"Right knee", "Left knee",
		"Right ankle/foot", "Left ankle/foot",
	}

	Goals = []string{
		"Decrease pain",
		"Decrease spasm",
		"Improve range of motion",
		"Improve strength / stability",
		"Improve ADLs / function",
		"Improve sleep tolerance",
		"Return to work / sport",
	}

	FrequencyChoices = []string{"1", "2", "3", "4", "5", OtherChoice}
	DurationChoices  = []string{"2", "3", "4", "4 to 6", "6", "8", "12", OtherChoice}
	ReevalChoices    = []string{"2 weeks", "4 weeks", "4 to 6 weeks", "6 weeks", "8 weeks", "12 visits", "18 visits", OtherChoice}
)

// Diagnosis supplement selectors.
var (
	PrognosisChoices = []string{"(select)", "Poor", "Guarded", "Fair", "Good", "Excellent"}
	RecModalities    = []string{"(select)", "X-ray", "MRI", "CT", "Ultrasound"}
	RecBodyParts     = []string{
		"(select)",
		"Cervical Spine", "Thoracic Spine", "Lumbar Spine",
		"Right Shoulder", "Left Shoulder", "B/L Shoulders",
		"Right Elbow", "Left Elbow", "B/L Elbows",
		"Right Wrist", "Left Wrist", "B/L Wrists",
		"Right Hip", "Left Hip", "B/L Hips",
		"Right Knee", "Left Knee", "B/L Knees",
		"Right Ankle", "Left Ankle", "B/L Ankles",
	}
	ReferralProviders = []string{
		"(select)",
		"Orthopedist", "Neurologist", "Pain Management", "Primary Care",
		"Physical Therapy", "Radiology", "Chiropractic Specialty", "Psychology",
	}
)
