package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/help"
)

var (
	helpBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	helpCrumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	helpFieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Bold(true)

	helpBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpNoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)
)

// HelpPanel explains the focused field of one section screen. Fields
// without an entry fall back to the section summary and its
// regeneration rule.
type HelpPanel struct {
	section string
	field   string
	width   int
	height  int
}

// NewHelpPanel returns a panel for the screen keyed section.
func NewHelpPanel(section string) *HelpPanel {
	return &HelpPanel{section: section, width: 60}
}

// SetField selects the focused form key.
func (h *HelpPanel) SetField(field string) { h.field = field }

// SetSize bounds the panel. A height of zero leaves it unclipped.
func (h *HelpPanel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Field returns the focused form key.
func (h *HelpPanel) Field() string { return h.field }

// Lines returns the panel content before styling.
func (h *HelpPanel) Lines() []string {
	sec := help.Sections[h.section]

	crumb := sec.Title
	if text, ok := help.Lookup(h.section, h.field); ok {
		if crumb != "" {
			crumb += " > "
		}
		lines := []string{crumb + text.Title, text.Description}
		if text.Details != "" {
			lines = append(lines, "", text.Details)
		}
		return lines
	}

	if sec.Title == "" {
		return []string{"Select a field to see help"}
	}
	lines := []string{crumb, sec.Summary}
	if sec.Rule != "" {
		lines = append(lines, "", sec.Rule)
	}
	return lines
}

// View renders the panel, keeping at most height-2 content lines.
func (h *HelpPanel) View() string {
	lines := h.Lines()
	if h.height > 2 && len(lines) > h.height-2 {
		lines = append(lines[:h.height-3], "...")
	}

	rendered := make([]string, 0, len(lines))
	for i, l := range lines {
		switch {
		case i == 0:
			head, field, ok := strings.Cut(l, " > ")
			if ok {
				l = helpCrumbStyle.Render(head+" > ") + helpFieldStyle.Render(field)
			} else {
				l = helpFieldStyle.Render(l)
			}
		case i == 1:
			l = helpBodyStyle.Render(l)
		default:
			l = helpNoteStyle.Render(l)
		}
		rendered = append(rendered, l)
	}
	return helpBorder.Width(max(h.width-4, 30)).Render(strings.Join(rendered, "\n"))
}
