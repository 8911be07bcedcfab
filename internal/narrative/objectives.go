package narrative

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NotRated marks a side, test or scale that was left unselected.
const NotRated = -1

// SeverityLabels is the 0-9 scale shared by palpation, range of motion and
// the ADL impact rating.
var SeverityLabels = []string{
	"Within Normal Levels",
	"Minimum",
	"Minimum to Mild",
	"Mild",
	"Mild to Moderate",
	"Moderate",
	"Moderate to Severe",
	"Severe",
	"Very Severe",
	"Intolerable",
}

// SeverityLabel returns the label of v, or "" when v is off the scale.
func SeverityLabel(v int) string {
	if v < 0 || v >= len(SeverityLabels) {
		return ""
	}
	return SeverityLabels[v]
}

// Inspection selectors.
var (
	PostureLevels   = []string{"(none)", "Normal/Level", "Left high", "Right high"}
	PostureSeverity = []string{"(none)", "Mild", "Moderate", "Severe"}
	LordosisLevels  = []string{"(none)", "Normal", "Decreased", "Increased"}
	GripComparisons = []string{"(none)", "Symmetric", "Left weaker", "Right weaker"}

	ADLItems = []string{
		"Sitting tolerance decreased",
		"Standing tolerance decreased",
		"Walking tolerance decreased",
		"Lifting/carrying limited",
		"Bending/twisting limited",
		"Driving tolerance decreased",
		"Sleep disrupted",
		"Work duties limited",
		"Household chores limited",
	}
)

var orthoTests = map[string][]string{
	"CS": {"Cervical Compression", "Distraction", "Spurling's", "Shoulder Depression", "Soto Hall", "Valsalva"},
	"TS": {"Spring Test", "Rib Compression"},
	"LS": {"Straight Leg Raise (SLR)", "Braggard's", "Kemp's", "Slump", "FABER (Patrick)", "Gaenslen's", "Yeoman's"},
}

var (
	spineMotions    = []string{"Flexion", "Extension", "Lateral Flexion", "Rotation"}
	ballJointMotion = []string{"Flexion", "Extension", "Abduction", "Adduction", "Internal Rotation", "External Rotation"}
	jointMotions    = map[string][]string{
		"SHOULDER": ballJointMotion,
		"ELBOW":    {"Flexion", "Extension", "Supination", "Pronation"},
		"WRIST":    {"Flexion", "Extension", "Radial Deviation", "Ulnar Deviation"},
		"HIP":      ballJointMotion,
		"KNEE":     {"Flexion", "Extension"},
		"ANKLE":    {"Dorsiflexion", "Plantarflexion", "Inversion", "Eversion"},
	}
)

// OrthoTests returns the orthopedic tests offered for a region. Only the
// spine regions have a list.
func OrthoTests(code string) []string {
	return append([]string(nil), orthoTests[strings.TrimSpace(code)]...)
}

// ROMMotions returns the range-of-motion checklist for a region.
func ROMMotions(code string) []string {
	code = strings.TrimSpace(code)
	if isSpine(code) {
		return append([]string(nil), spineMotions...)
	}
	_, joint, ok := strings.Cut(code, "_")
	if !ok {
		return nil
	}
	return append([]string(nil), jointMotions[joint]...)
}

func isSpine(code string) bool {
	return code == RegionCervical || code == RegionThoracic || code == RegionLumbar
}

// Rating is a left/right pair on one palpation, orthopedic or ROM row.
// Palpation and ROM use the 0-9 severity scale; orthopedic tests use 0 for
// negative and 1 for positive.
type Rating struct {
	Left  int `json:"l"`
	Right int `json:"r"`
}

// Rated returns a rating with both sides set.
func Rated(left, right int) Rating { return Rating{Left: left, Right: right} }

// UnmarshalJSON leaves a missing side unrated rather than at 0.
func (r *Rating) UnmarshalJSON(data []byte) error {
	type plain Rating
	p := plain{Left: NotRated, Right: NotRated}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Rating(p)
	return nil
}

// Vitals is the vital-signs row. Values are free text as measured.
type Vitals struct {
	BP     string `json:"bp"`
	Pulse  string `json:"pulse"`
	Resp   string `json:"resp"`
	Temp   string `json:"temp"`
	Height string `json:"height"`
	Weight string `json:"weight"`
	SpO2   string `json:"spo2"`
	Notes  string `json:"notes"`
}

// Posture is the standing inspection.
type Posture struct {
	ShoulderLevels string `json:"shoulder_levels"`
	KyphosisTS     string `json:"kyphosis_ts"`
	ForwardHeadCS  string `json:"forward_head_cs"`
	LordosisLS     string `json:"lordosis_ls"`
	Notes          string `json:"notes"`
}

// Grip is the Jamar dynamometer reading.
type Grip struct {
	Left    string `json:"left"`
	Right   string `json:"right"`
	Compare string `json:"compare"`
	Notes   string `json:"notes"`
}

// ADL is the functional-status panel. A nil Severity is unrated.
type ADL struct {
	Severity *int     `json:"severity,omitempty"`
	Items    []string `json:"items"`
	Notes    string   `json:"notes"`
}

// RegionExam is one region-specific objectives block.
type RegionExam struct {
	Region         string            `json:"region"`
	Palpation      map[string]Rating `json:"palpation"`
	Ortho          map[string]Rating `json:"ortho"`
	ROM            map[string]Rating `json:"rom"`
	PalpationNotes string            `json:"palpation_notes"`
	OrthoNotes     string            `json:"ortho_notes"`
	ROMNotes       string            `json:"rom_notes"`
}

// Objectives is the objective examination of one visit.
type Objectives struct {
	Vitals  Vitals       `json:"vitals"`
	Posture Posture      `json:"posture"`
	Grip    Grip         `json:"grip"`
	ADL     ADL          `json:"adl"`
	Blocks  []RegionExam `json:"blocks"`
}

// Finding sections of a region block.
const (
	SectionPalpation = "palpation"
	SectionOrtho     = "ortho"
	SectionROM       = "rom"
)

// Rate records a rating on the first block for region, adding a block when
// the region has none yet.
func (o *Objectives) Rate(region, section, name string, r Rating) error {
	region, name = strings.TrimSpace(region), strings.TrimSpace(name)
	if !IsKnownRegion(region) {
		return fmt.Errorf("unknown region %q", region)
	}
	if name == "" {
		return fmt.Errorf("empty finding name")
	}

	i := -1
	for j, b := range o.Blocks {
		if b.Region == region {
			i = j
			break
		}
	}
	if i < 0 {
		o.Blocks = append(o.Blocks, RegionExam{Region: region})
		i = len(o.Blocks) - 1
	}
	b := &o.Blocks[i]

	var m *map[string]Rating
	switch strings.ToLower(strings.TrimSpace(section)) {
	case SectionPalpation:
		m = &b.Palpation
	case SectionOrtho:
		m = &b.Ortho
	case SectionROM:
		m = &b.ROM
	default:
		return fmt.Errorf("unknown section %q (valid: palpation, ortho, rom)", section)
	}
	if *m == nil {
		*m = make(map[string]Rating)
	}
	(*m)[name] = r
	return nil
}

// ParseFinding parses "REGION:section:name=L/R" as written on the command
// line, e.g. "CS:rom:Flexion=5/-". A "-" side is unrated.
func ParseFinding(s string) (region, section, name string, r Rating, err error) {
	head, value, ok := strings.Cut(s, "=")
	parts := strings.SplitN(head, ":", 3)
	if !ok || len(parts) != 3 {
		return "", "", "", Rating{}, fmt.Errorf("invalid finding %q (expected REGION:section:name=L/R)", s)
	}
	left, right, ok := strings.Cut(value, "/")
	if !ok {
		return "", "", "", Rating{}, fmt.Errorf("invalid rating %q (expected L/R)", value)
	}
	l, err := parseSide(left)
	if err != nil {
		return "", "", "", Rating{}, err
	}
	rr, err := parseSide(right)
	if err != nil {
		return "", "", "", Rating{}, err
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]), Rating{Left: l, Right: rr}, nil
}

func parseSide(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return NotRated, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v >= len(SeverityLabels) {
		return 0, fmt.Errorf("invalid rating %q (expected 0-9 or -)", s)
	}
	return v, nil
}

// BuildADL writes the functional-status paragraph, or "" when nothing was
// recorded.
func BuildADL(a ADL) string {
	var lines []string
	if a.Severity != nil {
		if label := SeverityLabel(*a.Severity); label != "" {
			lines = append(lines, fmt.Sprintf("Severity: %d (%s)", *a.Severity, label))
		}
	}
	if items := DedupePreserveOrder(a.Items); len(items) > 0 {
		lines = append(lines, "Affected ADLs: "+strings.Join(items, ", "))
	}
	if n := strings.TrimSpace(a.Notes); n != "" {
		lines = append(lines, "Notes: "+n)
	}
	return strings.Join(lines, "\n")
}

// BuildObjectives writes the objectives section: the vitals and inspection
// panel, then one group per region in first-seen order. Blocks sharing a
// region are merged. The ADL panel is printed on its own by BuildADL.
func BuildObjectives(o Objectives) string {
	var groups []string
	if g := inspectionGroup(o); g != "" {
		groups = append(groups, g)
	}

	var order []string
	byRegion := make(map[string][]RegionExam)
	for _, b := range o.Blocks {
		code := strings.TrimSpace(b.Region)
		if !IsKnownRegion(code) {
			continue
		}
		if _, ok := byRegion[code]; !ok {
			order = append(order, code)
		}
		byRegion[code] = append(byRegion[code], b)
	}
	for _, code := range order {
		if g := regionGroup(code, byRegion[code]); g != "" {
			groups = append(groups, g)
		}
	}
	return strings.Join(groups, "\n\n")
}

func inspectionGroup(o Objectives) string {
	var parts []string
	add := func(title string, lines []string, notes string) {
		if n := clean(notes); n != "" {
			lines = append(lines, "Notes: "+n)
		}
		if len(lines) > 0 {
			parts = append(parts, title+"\n"+strings.Join(lines, "\n"))
		}
	}

	v := o.Vitals
	var vitals []string
	for _, f := range []struct{ label, value string }{
		{"BP", v.BP}, {"Pulse", v.Pulse}, {"Resp", v.Resp}, {"Temp", v.Temp},
		{"Height", v.Height}, {"Weight", v.Weight}, {"SpO2", v.SpO2},
	} {
		if val := clean(f.value); val != "" {
			vitals = append(vitals, f.label+": "+val)
		}
	}
	var vitalLines []string
	for i := 0; i < len(vitals); i += 4 {
		vitalLines = append(vitalLines, strings.Join(vitals[i:min(i+4, len(vitals))], "   "))
	}
	add("Vitals", vitalLines, v.Notes)

	p := o.Posture
	var posture []string
	for _, f := range []struct{ label, value string }{
		{"Shoulder Levels", p.ShoulderLevels},
		{"Kyphosis (T/S)", p.KyphosisTS},
		{"Forward Head Posture (C/S)", p.ForwardHeadCS},
		{"Lordosis (L/S)", p.LordosisLS},
	} {
		if val := clean(f.value); val != "" {
			posture = append(posture, f.label+": "+val)
		}
	}
	add("Posture", posture, p.Notes)

	add("Grip Strength (Jamar)", gripLines(o.Grip), o.Grip.Notes)

	if len(parts) == 0 {
		return ""
	}
	return "VITALS / INSPECTION\n" + strings.Join(parts, "\n\n")
}

func gripLines(g Grip) []string {
	var lines, sides []string
	if l := clean(g.Left); l != "" {
		sides = append(sides, "Left: "+l)
	}
	if r := clean(g.Right); r != "" {
		sides = append(sides, "Right: "+r)
	}
	if len(sides) > 0 {
		lines = append(lines, strings.Join(sides, "    "))
	}
	switch clean(g.Compare) {
	case "Left weaker":
		lines = append(lines, "Left grip reveals weakness compared to the right hand.")
	case "Right weaker":
		lines = append(lines, "Right grip reveals weakness compared to the left hand.")
	case "Symmetric":
		lines = append(lines, "Grip strength appears grossly symmetric bilaterally.")
	}
	return lines
}

type sideFinding struct {
	left, right []string
}

func (s sideFinding) lines() []string {
	var out []string
	if len(s.left) > 0 {
		out = append(out, "Left side: "+strings.Join(s.left, "; "))
	}
	if len(s.right) > 0 {
		out = append(out, "Right side: "+strings.Join(s.right, "; "))
	}
	return out
}

func regionGroup(code string, blocks []RegionExam) string {
	tag := RegionTag(code)
	var sections []string
	add := func(title string, lines []string, notes string) {
		if notes != "" {
			lines = append(lines, "Notes: "+notes)
		}
		if len(lines) > 0 {
			sections = append(sections, title+" "+tag+"\n"+strings.Join(lines, "\n"))
		}
	}

	palp := mergeFindings(blocks, func(b RegionExam) map[string]Rating { return b.Palpation }, RegionMuscles(code))
	add("PALPATION", palp.sides(SeverityLabel).lines(), firstNote(blocks, func(b RegionExam) string { return b.PalpationNotes }))

	ortho := mergeFindings(blocks, func(b RegionExam) map[string]Rating { return b.Ortho }, OrthoTests(code))
	add("ORTHOPEDIC EXAM", ortho.sides(orthoLabel).lines(), firstNote(blocks, func(b RegionExam) string { return b.OrthoNotes }))

	rom := mergeROM(blocks, ROMMotions(code))
	var romLines []string
	for _, m := range rom.names {
		if l := romLine(code, m, rom.ratings[m]); l != "" {
			romLines = append(romLines, l)
		}
	}
	add("RANGE OF MOTION", romLines, firstNote(blocks, func(b RegionExam) string { return b.ROMNotes }))

	if len(sections) == 0 {
		return ""
	}
	return RegionLabel(code) + "\n" + strings.Join(sections, "\n\n")
}

func orthoLabel(v int) string {
	switch v {
	case 0:
		return "Negative"
	case 1:
		return "Positive"
	}
	return ""
}

// findings is an ordered name to rating table.
type findings struct {
	names   []string
	ratings map[string]Rating
}

func (f findings) sides(label func(int) string) sideFinding {
	var s sideFinding
	for _, n := range f.names {
		r := f.ratings[n]
		if l := label(r.Left); l != "" {
			s.left = append(s.left, n+" - "+l)
		}
		if l := label(r.Right); l != "" {
			s.right = append(s.right, n+" - "+l)
		}
	}
	return s
}

// orderedNames lists the catalog entries present in seen, then any other
// names sorted.
func orderedNames(catalog []string, seen map[string]Rating) []string {
	var names []string
	used := make(map[string]bool)
	for _, n := range catalog {
		if _, ok := seen[n]; ok && !used[n] {
			names = append(names, n)
			used[n] = true
		}
	}
	var extra []string
	for n := range seen {
		if !used[n] {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// mergeFindings keeps the first block's rating of every name.
func mergeFindings(blocks []RegionExam, get func(RegionExam) map[string]Rating, catalog []string) findings {
	merged := make(map[string]Rating)
	for _, b := range blocks {
		for name, r := range get(b) {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, ok := merged[name]; !ok {
				merged[name] = r
			}
		}
	}
	return findings{names: orderedNames(catalog, merged), ratings: merged}
}

// mergeROM keeps the worst rating per side across blocks.
func mergeROM(blocks []RegionExam, catalog []string) findings {
	merged := make(map[string]Rating)
	for _, b := range blocks {
		for name, r := range b.ROM {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			cur, ok := merged[name]
			if !ok {
				cur = Rating{Left: NotRated, Right: NotRated}
			}
			cur.Left = max(cur.Left, r.Left)
			cur.Right = max(cur.Right, r.Right)
			merged[name] = cur
		}
	}
	return findings{names: orderedNames(catalog, merged), ratings: merged}
}

func firstNote(blocks []RegionExam, get func(RegionExam) string) string {
	for _, b := range blocks {
		if n := clean(get(b)); n != "" {
			return n
		}
	}
	return ""
}

func restricted(v int) string {
	if v == 0 {
		return SeverityLabel(0)
	}
	return "Restricted, " + SeverityLabel(v)
}

// romLine renders one motion. Spine flexion and extension are not sided
// and print the worse side. Unilateral extremity regions print only their
// own side, falling back to the other one.
func romLine(code, motion string, r Rating) string {
	left, right := SeverityLabel(r.Left), SeverityLabel(r.Right)
	if left == "" && right == "" {
		return ""
	}

	sided := func() string {
		var parts []string
		if left != "" {
			parts = append(parts, "Left Side - "+restricted(r.Left))
		}
		if right != "" {
			parts = append(parts, "Right Side - "+restricted(r.Right))
		}
		return motion + ": " + strings.Join(parts, "; ")
	}

	switch m := strings.ToLower(motion); {
	case isSpine(code) && (m == "flexion" || m == "extension"):
		return motion + ": " + restricted(max(r.Left, r.Right))
	case isSpine(code), strings.HasPrefix(code, "BL_"):
		return sided()
	case strings.HasPrefix(code, "R_"):
		if right == "" {
			return motion + ": " + restricted(r.Left)
		}
		return motion + ": " + restricted(r.Right)
	case strings.HasPrefix(code, "L_"):
		if left == "" {
			return motion + ": " + restricted(r.Right)
		}
		return motion + ": " + restricted(r.Left)
	}
	return sided()
}
