package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			MarginBottom(1)

	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// provenanceColors follows the narrative source: generated text is green,
// typed text amber, an empty section grey.
var provenanceColors = map[string]lipgloss.Color{
	"auto":   lipgloss.Color("42"),
	"manual": lipgloss.Color("214"),
	"empty":  lipgloss.Color("240"),
}

// SectionBadge renders "Name: provenance (auto on|off)" with the provenance
// colored. detail replaces the auto flag for sections without one.
func SectionBadge(name, provenance, detail string) string {
	color, ok := provenanceColors[provenance]
	if !ok {
		color = provenanceColors["empty"]
	}
	prov := lipgloss.NewStyle().Foreground(color).Bold(provenance == "manual").Render(provenance)
	if detail == "" {
		return fmt.Sprintf("%s: %s", name, prov)
	}
	return fmt.Sprintf("%s: %s (%s)", name, prov, detail)
}

// AutoDetail is the SectionBadge detail for a gated section.
func AutoDetail(auto bool) string {
	if auto {
		return "auto on"
	}
	return "auto off"
}
