package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/chiroforge/internal/narrative"
)

var (
	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	previewLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	previewEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)
)

// NarrativePreview renders the generated text of the section being edited,
// without its provenance markers.
type NarrativePreview struct {
	label    string
	text     string
	width    int
	maxLines int
}

func NewNarrativePreview(label string) *NarrativePreview {
	return &NarrativePreview{label: label, width: 80, maxLines: 12}
}

func (p *NarrativePreview) SetText(text string) { p.text = text }

func (p *NarrativePreview) SetWidth(width int) {
	if width > 20 {
		p.width = width
	}
}

func (p *NarrativePreview) View() string {
	body := strings.TrimSpace(narrative.StripSentinels(p.text))
	if body == "" {
		body = previewEmptyStyle.Render("(nothing generated yet)")
	} else if lines := strings.Split(body, "\n"); len(lines) > p.maxLines {
		body = strings.Join(lines[:p.maxLines], "\n") + "\n..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		previewLabelStyle.Render(p.label),
		previewStyle.Width(p.width-2).Render(body),
	)
}
