package narrative

import "strings"

var imagingNouns = map[string]string{
	"X-rays":     "x-ray films",
	"MRI":        "MRI studies",
	"CT":         "CT scans",
	"Ultrasound": "ultrasound images",
	"Other":      "other imaging",
}

// ImagingNoun maps an imaging-type option to the noun used in prose.
// Unknown types fall back to their lower-cased label.
func ImagingNoun(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return ""
	}
	if n, ok := imagingNouns[t]; ok {
		return n
	}
	return strings.ToLower(t)
}

// Region codes used by subjective blocks.
const (
	RegionNone     = "(none)"
	RegionCervical = "CS"
	RegionThoracic = "TS"
	RegionLumbar   = "LS"
)

// RegionCodes lists the selectable region codes in display order.
var RegionCodes = []string{
	RegionNone,
	"CS", "TS", "LS",
	"R_SHOULDER", "L_SHOULDER", "BL_SHOULDER",
	"R_ELBOW", "L_ELBOW", "BL_ELBOW",
	"R_WRIST", "L_WRIST", "BL_WRIST",
	"R_HIP", "L_HIP", "BL_HIP",
	"R_KNEE", "L_KNEE", "BL_KNEE",
	"R_ANKLE", "L_ANKLE", "BL_ANKLE",
}

type regionInfo struct {
	label string
	tag   string
	limb  string
}

var regions = map[string]regionInfo{
	"CS": {"Cervical Spine", "(C/S)", "CS"},
	"TS": {"Thoracic Spine", "(T/S)", "TS"},
	"LS": {"Lumbar Spine", "(L/S)", "LS"},

	"R_SHOULDER":  {"Right Shoulder", "(R Shoulder)", "RUE"},
	"L_SHOULDER":  {"Left Shoulder", "(L Shoulder)", "LUE"},
	"BL_SHOULDER": {"Bilateral Shoulders", "(B/L Shoulders)", "RUE"},

	"R_ELBOW":  {"Right Elbow", "(R Elbow)", "RUE"},
	"L_ELBOW":  {"Left Elbow", "(L Elbow)", "LUE"},
	"BL_ELBOW": {"Bilateral Elbows", "(B/L Elbows)", "RUE"},

	"R_WRIST":  {"Right Wrist", "(R Wrist)", "RUE"},
	"L_WRIST":  {"Left Wrist", "(L Wrist)", "LUE"},
	"BL_WRIST": {"Bilateral Wrists", "(B/L Wrists)", "RUE"},

	"R_HIP":  {"Right Hip", "(R Hip)", "RLE"},
	"L_HIP":  {"Left Hip", "(L Hip)", "LLE"},
	"BL_HIP": {"Bilateral Hips", "(B/L Hips)", "RLE"},

	"R_KNEE":  {"Right Knee", "(R Knee)", "RLE"},
	"L_KNEE":  {"Left Knee", "(L Knee)", "LLE"},
	"BL_KNEE": {"Bilateral Knees", "(B/L Knees)", "RLE"},

	"R_ANKLE":  {"Right Ankle", "(R Ankle)", "RLE"},
	"L_ANKLE":  {"Left Ankle", "(L Ankle)", "LLE"},
	"BL_ANKLE": {"Bilateral Ankles", "(B/L Ankles)", "RLE"},
}

// RegionLabel returns the heading label for a region code, or "" if unknown.
func RegionLabel(code string) string {
	return regions[strings.TrimSpace(code)].label
}

// RegionTag returns the short parenthetical tag for a region code.
// Unknown codes are wrapped as-is; blank and "(none)" yield "".
func RegionTag(code string) string {
	c := strings.TrimSpace(code)
	if c == "" || c == RegionNone {
		return ""
	}
	if r, ok := regions[c]; ok {
		return r.tag
	}
	return "(" + c + ")"
}

// IsKnownRegion reports whether code has a label.
func IsKnownRegion(code string) bool {
	_, ok := regions[strings.TrimSpace(code)]
	return ok
}

var muscleGroups = map[string][]string{
	"CS": {
		"Upper trapezius", "Levator scapulae", "Cervical paraspinals", "SCM",
		"Scalenes", "Suboccipitals", "Rhomboids (upper)",
	},
	"TS": {
		"Thoracic paraspinals", "Mid trapezius", "Lower trapezius", "Rhomboids",
		"Latissimus dorsi", "Serratus anterior", "Intercostals",
	},
	"LS": {
		"Lumbar paraspinals", "Quadratus lumborum", "Gluteus medius", "Gluteus maximus",
		"Piriformis", "Hip flexors (iliopsoas)", "Hamstrings (proximal)",
	},
	"RUE": upperExtremity,
	"LUE": upperExtremity,
	"RLE": lowerExtremity,
	"LLE": lowerExtremity,
}

var upperExtremity = []string{
	"Deltoid", "Biceps", "Triceps", "Forearm flexors", "Forearm extensors",
	"Rotator cuff", "Pectoralis",
}

var lowerExtremity = []string{
	"Gluteals", "Quadriceps", "Hamstrings", "Calf (gastrocnemius/soleus)",
	"Tibialis anterior", "Peroneals",
}

// RegionMuscles returns the tender-structure checklist offered for a region.
// The slice is a copy.
func RegionMuscles(code string) []string {
	r, ok := regions[strings.TrimSpace(code)]
	if !ok {
		return nil
	}
	return append([]string(nil), muscleGroups[r.limb]...)
}
