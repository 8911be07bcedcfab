package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/components"
)

// formScreen is the shared shell of every section screen: a huh form, the
// contextual help panel and an optional narrative preview.
type formScreen struct {
	title     string
	form      *huh.Form
	helpPanel *components.HelpPanel
	preview   *components.NarrativePreview
	done      bool
	cancelled bool
	width     int
	height    int
}

// newFormScreen builds the shell for the screen keyed section, which selects
// the help entries shown next to the form.
func newFormScreen(title, section string, form *huh.Form, preview *components.NarrativePreview) formScreen {
	return formScreen{
		title:     title,
		form:      form.WithShowHelp(false).WithShowErrors(true),
		helpPanel: components.NewHelpPanel(section),
		preview:   preview,
	}
}

// Init implements tea.Model
func (s *formScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *formScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/3, msg.Height/2)
		if s.preview != nil {
			s.preview.SetWidth(msg.Width - 2)
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}
	return cmd
}

// View implements tea.Model
func (s *formScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	parts := []string{
		components.TitleStyle.Render(s.title),
		"",
		s.form.View(),
		"",
	}
	if s.preview != nil {
		parts = append(parts, s.preview.View(), "")
	}
	parts = append(parts,
		s.helpPanel.View(),
		"",
		"Tab: Next field | Enter: Submit | Esc: Cancel",
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Done returns true if the form was completed
func (s *formScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *formScreen) Cancelled() bool { return s.cancelled }

// SetPreview replaces the narrative shown under the form.
func (s *formScreen) SetPreview(text string) {
	if s.preview != nil {
		s.preview.SetText(text)
	}
}

func options(values []string) []huh.Option[string] {
	return huh.NewOptions(values...)
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// optional prepends a "(none)" option bound to the empty string.
func optional(values []string) []huh.Option[string] {
	return append([]huh.Option[string]{huh.NewOption("(none)", "")}, options(values)...)
}
