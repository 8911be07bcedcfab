package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts maps form keys to their help entry.
var Texts = map[string]HelpText{
	// Patient
	"first": {
		Title:       "FIRST NAME",
		Description: "Patient first name, used in every narrative lead-in.",
		Details:     `"John reports ..." becomes "The patient reports ..." when left empty.`,
	},
	"last": {
		Title:       "LAST NAME",
		Description: "Patient last name.",
		Details:     "Part of the patient folder: Last, First, DOB_YYYY-MM-DD, DOI_YYYY-MM-DD",
	},
	"dob": {
		Title:       "DATE OF BIRTH",
		Description: "Format: MM/DD/YYYY or YYYY-MM-DD.",
	},
	"doi": {
		Title:       "DATE OF INJURY",
		Description: "Format: MM/DD/YYYY or YYYY-MM-DD.",
		Details:     "Printed in the history of injury. A blank line is printed when unknown.",
	},
	"sex": {
		Title:       "SEX",
		Description: "Selects he/she/they pronouns in the narratives.",
	},
	"exam_name": {
		Title:       "EXAM NAME",
		Description: "Name of this visit, e.g. Initial, Re-Exam 1, Final.",
		Details:     "The exam is saved as exams/<exam_name>.json in the patient folder.",
	},

	// History of injury
	"injury_type": {
		Title:       "INJURY TYPE",
		Description: "Selects the mechanism paragraph of the history of injury.",
		Details: `Auto Accident - collision details
Slip and Fall - circumstance and landing
Dog Bite - location and severity
(none) - no narrative is generated`,
	},
	"accident_type": {
		Title:       "ACCIDENT TYPE",
		Description: "How the collision happened.",
	},
	"other_vehicle_part": {
		Title:       "OTHER VEHICLE",
		Description: "Which part of the other vehicle struck the patient's vehicle.",
	},
	"patient_side": {
		Title:       "IMPACT SIDE",
		Description: "Which side of the patient's vehicle was struck.",
	},
	"resembles": {
		Title:       "RESEMBLES",
		Description: "Optional comparison, e.g. a T-bone collision.",
	},
	"slip_circumstance": {
		Title:       "CIRCUMSTANCE",
		Description: "What caused the fall.",
	},
	"slip_landing": {
		Title:       "LANDING",
		Description: "How the patient landed.",
	},
	"bite_location": {
		Title:       "BITE LOCATION",
		Description: "Where the patient was bitten.",
	},
	"bite_severity": {
		Title:       "BITE SEVERITY",
		Description: "Superficial, puncture or laceration.",
	},
	"treatment": {
		Title:       "PRIOR TREATMENT",
		Description: "Whether the patient was seen elsewhere after the injury.",
	},
	"care_setting": {
		Title:       "CARE SETTING",
		Description: "Where the patient was seen.",
	},
	"facility_name": {
		Title:       "FACILITY",
		Description: "Name of the hospital or clinic, optional.",
	},
	"meds": {
		Title:       "MEDICATION",
		Description: "Whether medication was prescribed.",
	},
	"med_classes": {
		Title:       "MEDICATION CLASSES",
		Description: "Classes of medication prescribed.",
	},
	"imaging_done": {
		Title:       "IMAGING",
		Description: "Whether imaging was performed before this visit.",
	},
	"imaging_types": {
		Title:       "IMAGING TYPES",
		Description: "X-rays, MRI, CT ...",
	},
	"imaging_parts": {
		Title:       "IMAGED BODY PARTS",
		Description: "Areas covered by the imaging.",
	},
	"course": {
		Title:       "COURSE",
		Description: "How symptoms have progressed since the injury.",
	},
	"auto": {
		Title:       "AUTO GENERATE",
		Description: "Regenerate the narrative whenever a field changes.",
		Details: `Turning this off freezes the current text so it can be edited by hand.
Turning it back on regenerates immediately and discards manual edits.`,
	},

	// Review of findings
	"rof_mode": {
		Title:       "EXAM MODE",
		Description: "Only the Review of Findings mode prints the ROF paragraph.",
	},
	"rof_type": {
		Title:       "STUDY TYPE",
		Description: "Imaging modality reviewed with the patient.",
	},
	"rof_parts": {
		Title:       "BODY PARTS",
		Description: "Areas covered by this study.",
	},
	"rof_facility": {
		Title:       "FACILITY",
		Description: "Imaging center. Studies from one facility are grouped into a single sentence.",
	},
	"rof_city": {
		Title:       "CITY",
		Description: "City of the imaging center, optional.",
	},
	"rof_date": {
		Title:       "DATE",
		Description: "Study date. Omitted when studies of the same facility have different dates.",
	},
	"rof_manual": {
		Title:       "FINDINGS",
		Description: "Free text printed under the generated paragraph.",
	},
	"add_another": {
		Title:       "ADD ANOTHER",
		Description: "Repeat this screen for another block.",
	},

	// Subjectives
	"region": {
		Title:       "REGION",
		Description: "Body region of this complaint. (none) skips the block.",
	},
	"desc1": {
		Title:       "PAIN DESCRIPTOR",
		Description: "Primary quality of the pain.",
	},
	"desc2": {
		Title:       "SECOND DESCRIPTOR",
		Description: "Optional second quality.",
	},
	"radic_symptom": {
		Title:       "RADICULAR SYMPTOM",
		Description: "Numbness, tingling or weakness radiating from the region.",
	},
	"radic_location": {
		Title:       "RADIATES TO",
		Description: "Where the radicular symptom is felt.",
	},
	"muscles": {
		Title:       "TENDER MUSCLES",
		Description: "Muscles tender to palpation in this region.",
	},
	"pain_scale": {
		Title:       "PAIN SCALE",
		Description: "Overall discomfort in this region.",
	},
	"therapy_main": {
		Title:       "MAIN CONCERN",
		Description: "The first body part becomes the main concern of the therapy narrative.",
	},
	"therapy_other": {
		Title:       "OTHER AREAS",
		Description: "Additional areas treated.",
	},

	// Diagnosis
	"dx_label": {
		Title:       "DIAGNOSIS",
		Description: "Picklist diagnosis. The ICD-10 code is filled in automatically.",
	},
	"dx_edit": {
		Title:       "WORDING",
		Description: "Optional override of the printed text. The code is kept.",
	},
	"prognosis": {
		Title:       "PROGNOSIS",
		Description: "Poor, Guarded, Fair, Good or Excellent.",
	},
	"rec_modality": {
		Title:       "RECOMMENDED IMAGING",
		Description: "Imaging the patient should undergo.",
	},
	"rec_part": {
		Title:       "IMAGING BODY PART",
		Description: "Area for the recommended imaging.",
	},
	"referral": {
		Title:       "REFERRAL",
		Description: "Outside provider the patient is referred to.",
	},
	"dx_lock": {
		Title:       "LOCK LIST",
		Description: "A locked diagnosis list is never regenerated.",
		Details:     "Unlocking regenerates the text from the blocks.",
	},

	// Plan
	"care_types": {
		Title:       "CARE TYPES",
		Description: "Treatments included in the plan of care.",
	},
	"plan_regions": {
		Title:       "REGIONS",
		Description: "Regions the treatment is directed to.",
	},
	"goals": {
		Title:       "GOALS",
		Description: "Short-term goals of care.",
	},
	"frequency": {
		Title:       "FREQUENCY",
		Description: "Visits per week. (other) accepts free text.",
	},
	"duration": {
		Title:       "DURATION",
		Description: "Weeks of care. (other) accepts free text.",
	},
	"reeval": {
		Title:       "RE-EVALUATION",
		Description: "When the patient is re-examined. (other) accepts free text.",
	},
	"custom_notes": {
		Title:       "NOTES",
		Description: "Kept with the plan, never printed in the narrative.",
	},

	// Services
	"cmt_code": {
		Title:       "ADJUSTMENT CODE",
		Description: "CMT code billed for this visit.",
		Details:     "Changing the code clears the adjusted areas: spinal codes and 98943 offer different areas.",
	},
	"cmt_areas": {
		Title:       "SEGMENTS ADJUSTED",
		Description: "Areas adjusted under the selected code.",
	},
	"techniques": {
		Title:       "TECHNIQUES",
		Description: "Applied to every adjusted area.",
	},
	"em_code": {
		Title:       "VISIT CODE",
		Description: "Evaluation and management level.",
	},
	"exam_notes": {
		Title:       "EXAM NOTES",
		Description: "Printed under the visit code.",
	},
	"modalities": {
		Title:       "MODALITIES",
		Description: "Modalities billed for this visit.",
	},
	"modality_parts": {
		Title:       "TREATED PARTS",
		Description: "Applied to every selected modality.",
		Details:     "New parts are recorded at 15 minutes. Minutes set from the command line are kept.",
	},

	// Objectives
	"bp": {
		Title:       "BLOOD PRESSURE",
		Description: "As measured, e.g. 120/80.",
		Details:     "Vitals are printed four per line; empty values are skipped.",
	},
	"shoulder_levels": {
		Title:       "SHOULDER LEVELS",
		Description: "Standing inspection from behind.",
	},
	"grip_left": {
		Title:       "GRIP, LEFT",
		Description: "Jamar dynamometer reading.",
	},
	"grip_right": {
		Title:       "GRIP, RIGHT",
		Description: "Jamar dynamometer reading.",
	},
	"grip_compare": {
		Title:       "GRIP COMPARISON",
		Description: "Prints the matching weakness or symmetry sentence.",
	},
	"adl_severity": {
		Title:       "ADL IMPACT",
		Description: "0 (within normal levels) to 9 (intolerable).",
	},
	"adl_items": {
		Title:       "AFFECTED ADLS",
		Description: "Daily activities limited by the injury.",
		Details:     "Printed under Functional Status / ADLs, which is left out when nothing is recorded.",
	},
	"family_social": {
		Title:       "FAMILY / SOCIAL HISTORY",
		Description: "Always printed; a dash when empty.",
	},

	"narrative": {
		Title:       "NARRATIVE",
		Description: "Editing the text marks it as manual.",
		Details:     "Sections that regenerate automatically stop doing so once edited.",
	},

	// Screen-specific overrides
	"therapy.auto": {
		Title:       "AUTO GENERATE",
		Description: "Regenerate the therapy narrative when an area is checked.",
		Details:     "Editing the narrative by hand turns this off. It is saved with the exam.",
	},
	"plan.auto": {
		Title:       "AUTO GENERATE",
		Description: "Regenerate the plan narrative whenever a field changes.",
		Details: `Editing the plan by hand does not turn this off: the next change
replaces the edit. Turn it off first to keep typed text.`,
	},
	"rof.narrative": {
		Title:       "REVIEW NOTES",
		Description: "Printed under the generated findings paragraph.",
		Details:     "The generated paragraph is never replaced by these notes.",
	},
	"dx.narrative": {
		Title:       "DIAGNOSIS TEXT",
		Description: "Editing the list marks it as manual.",
		Details:     "Lock the list on the diagnosis screen to keep the edit when blocks change.",
	},
	"plan.narrative": {
		Title:       "PLAN TEXT",
		Description: "Editing the plan marks it as manual.",
		Details:     "While auto is on, the next plan change regenerates over the edit.",
	},
}
