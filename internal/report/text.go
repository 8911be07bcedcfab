package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WriteText writes the report as plain text.
func WriteText(w io.Writer, r Report) error {
	var sb strings.Builder
	for _, line := range headerLines(r) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	for _, s := range r.Sections {
		sb.WriteString(strings.ToUpper(s.Heading))
		sb.WriteByte('\n')
		sb.WriteString(s.Body)
		sb.WriteString("\n\n")
	}
	sb.WriteString("Provider Signature: ________________________________\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func headerLines(r Report) []string {
	var lines []string
	for _, l := range []string{r.Clinic.ClinicName, r.Clinic.ClinicAddress, r.Clinic.ClinicPhone, r.ExamName, r.Patient} {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

var (
	clinicStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginTop(1)

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// RenderTerminal styles the report for a terminal of the given width.
func RenderTerminal(r Report, width int) string {
	if width <= 0 {
		width = 80
	}
	body := bodyStyle.Width(width)

	blocks := []string{
		clinicStyle.Render(r.Clinic.ClinicName),
		subtleStyle.Render(r.Clinic.ClinicAddress),
		subtleStyle.Render(r.Clinic.ClinicPhone),
		"",
		clinicStyle.Render(r.ExamName),
		subtleStyle.Render(r.Patient),
	}
	for _, s := range r.Sections {
		blocks = append(blocks, headingStyle.Render(s.Heading), body.Render(s.Body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
