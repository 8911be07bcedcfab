// Package report turns a saved exam into the ordered, sentinel-free sections
// that are printed, shown in the terminal or rendered to a PNG page.
package report

import (
	"strings"

	"github.com/mrsinham/chiroforge/internal/exam"
	"github.com/mrsinham/chiroforge/internal/narrative"
	"github.com/mrsinham/chiroforge/internal/util"
)

// Settings is the clinic header printed on every report.
type Settings struct {
	ClinicName    string
	ClinicAddress string
	ClinicPhone   string
}

// Section is one headed block of report text.
type Section struct {
	Heading string
	Body    string
}

// Report is a fully rendered exam.
type Report struct {
	Clinic   Settings
	ExamName string
	Patient  string
	Sections []Section
}

// Build assembles the report for e. Generated sections have their tag tokens
// removed; typed text is printed as entered.
func Build(e *exam.Exam, s Settings) Report {
	r := Report{
		Clinic:   s,
		ExamName: strings.TrimSpace(e.ExamName),
		Patient:  patientLine(e.Patient),
	}
	if r.ExamName == "" {
		r.ExamName = "Exam"
	}

	add := func(heading, body string) {
		body = strings.TrimSpace(narrative.StripSentinels(body))
		if body != "" {
			r.Sections = append(r.Sections, Section{Heading: heading, Body: body})
		}
	}
	// Some sections are always printed, with a dash when empty.
	must := func(heading, body string) {
		body = strings.TrimSpace(narrative.StripSentinels(body))
		if body == "" {
			body = "—"
		}
		r.Sections = append(r.Sections, Section{Heading: heading, Body: body})
	}

	add("History of Injury", e.History.MOI)

	if mode, err := narrative.ParseROFMode(e.History.ROF.Mode); err == nil && mode == narrative.ModeROF {
		add("Review of Findings", joinParagraphs(e.History.ROF.AutoParagraph, e.History.ROF.ManualParagraph))
	}

	for _, b := range e.Subjectives.Blocks {
		if !b.Active() {
			continue
		}
		heading := strings.TrimSpace(narrative.RegionLabel(b.Region) + " " + narrative.RegionTag(b.Region))
		add(heading, b.Narrative)
	}

	add("Therapy", e.Therapy.Narrative)

	add("Functional Status / ADLs", narrative.BuildADL(e.Objectives.ADL))
	must("Family / Social History", e.FamilySocial)
	must("Objectives", narrative.BuildObjectives(e.Objectives))

	dx := e.Diagnosis.Text
	if strings.TrimSpace(narrative.StripSentinels(dx)) == "" {
		dx = narrative.RenderDx(e.Diagnosis.Blocks)
	}
	must("Diagnosis", dx)

	sup := narrative.BuildDxSupplement(e.Diagnosis.Prognosis, e.Diagnosis.ImagingRecs, e.Diagnosis.Referrals)
	add("Prognosis", sup.Prognosis)
	add("Imaging", sup.Imaging)
	add("Referrals", sup.Referrals)

	must("Plan", e.Plan.PlanText)
	add("Services Provided Today", narrative.BuildServices(e.Plan.Services))
	return r
}

func patientLine(p exam.Patient) string {
	var parts []string
	if name := util.LastFirst(p.First, p.Last); name != "" {
		parts = append(parts, "Patient: "+name)
	}
	if d := util.NormalizeDate(p.DOB); d != "" {
		parts = append(parts, "DOB: "+d)
	}
	if d := util.NormalizeDate(p.DOI); d != "" {
		parts = append(parts, "DOI: "+d)
	}
	return strings.Join(parts, "   ")
}

func joinParagraphs(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}
