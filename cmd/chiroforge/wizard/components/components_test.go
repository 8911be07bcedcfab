package components

import (
	"reflect"
	"strings"
	"testing"
)

func TestHelpPanelSectionOverride(t *testing.T) {
	plan := NewHelpPanel("plan")
	plan.SetField("auto")
	therapy := NewHelpPanel("therapy")
	therapy.SetField("auto")
	moi := NewHelpPanel("moi")
	moi.SetField("auto")

	if got := plan.Lines()[0]; got != "PLAN OF CARE > AUTO GENERATE" {
		t.Errorf("Unexpected plan heading: %q", got)
	}
	if !strings.Contains(strings.Join(plan.Lines(), "\n"), "does not turn this off") {
		t.Errorf("Plan help should explain that typing keeps auto on, got %v", plan.Lines())
	}
	if !strings.Contains(strings.Join(therapy.Lines(), "\n"), "turns this off") {
		t.Errorf("Therapy help should explain that typing turns auto off, got %v", therapy.Lines())
	}
	if reflect.DeepEqual(plan.Lines(), moi.Lines()) {
		t.Error("Plan and history should not share the auto help")
	}
	if got := moi.Lines()[0]; got != "HISTORY OF INJURY > AUTO GENERATE" {
		t.Errorf("Unexpected history heading: %q", got)
	}
}

func TestHelpPanelFallsBackToSection(t *testing.T) {
	h := NewHelpPanel("dx")
	want := []string{"DIAGNOSIS", "Numbered diagnosis list with ICD-10 codes.", "", "Regenerates from the blocks unless the list is locked."}
	if got := h.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected section summary %v, got %v", want, got)
	}

	h.SetField("no_such_field")
	if got := h.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Unknown field should show the section summary, got %v", got)
	}

	unknown := NewHelpPanel("")
	if got := unknown.Lines(); len(got) != 1 || got[0] != "Select a field to see help" {
		t.Errorf("Unexpected placeholder: %v", got)
	}
}

func TestHelpPanelSharedField(t *testing.T) {
	h := NewHelpPanel("patient")
	h.SetField("doi")
	lines := h.Lines()
	if lines[0] != "PATIENT > DATE OF INJURY" {
		t.Errorf("Unexpected heading: %q", lines[0])
	}
	if h.Field() != "doi" {
		t.Errorf("Expected field doi, got %s", h.Field())
	}
}

func TestHelpPanelViewClipsToHeight(t *testing.T) {
	h := NewHelpPanel("plan")
	h.SetField("auto")
	h.SetSize(60, 4)

	view := h.View()
	if !strings.Contains(view, "...") {
		t.Errorf("Expected clipped panel, got:\n%s", view)
	}
	if strings.Contains(view, "replaces the edit") {
		t.Errorf("Detail lines should be clipped, got:\n%s", view)
	}
	if !strings.Contains(view, "AUTO GENERATE") {
		t.Errorf("Heading should survive clipping, got:\n%s", view)
	}
}

func TestSectionBadge(t *testing.T) {
	got := SectionBadge("Plan", "manual", AutoDetail(true))
	for _, want := range []string{"Plan: ", "manual", "(auto on)"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in %q", want, got)
		}
	}

	got = SectionBadge("Diagnosis", "auto", "locked")
	if !strings.Contains(got, "(locked)") {
		t.Errorf("Expected lock detail in %q", got)
	}
	if strings.Contains(SectionBadge("ROF", "empty", ""), "(") {
		t.Error("Empty detail should print no parenthetical")
	}
}
