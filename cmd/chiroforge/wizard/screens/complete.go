package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/components"
)

// SavedMsg is sent once the exam has been written.
type SavedMsg struct {
	Path     string
	ExamName string
	Patient  string
}

// ErrorMsg is sent when saving fails.
type ErrorMsg struct {
	Error error
}

var (
	completionSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)

	completionLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	completionValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	completionCommandStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63"))

	errorTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))
)

// CompletionScreen confirms the saved exam.
type CompletionScreen struct {
	saved  SavedMsg
	done   bool
	width  int
	height int
}

// NewCompletionScreen creates a new completion screen
func NewCompletionScreen(msg SavedMsg) *CompletionScreen {
	return &CompletionScreen{saved: msg}
}

// Init implements tea.Model
func (s *CompletionScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *CompletionScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, exitOnKey(msg, &s.done, &s.width, &s.height)
}

// View implements tea.Model
func (s *CompletionScreen) View() string {
	var sb strings.Builder

	sb.WriteString(completionSuccessStyle.Render("✓ Exam saved"))
	sb.WriteString("\n\n")

	stats := []struct {
		label string
		value string
	}{
		{"Patient", s.saved.Patient},
		{"Exam", s.saved.ExamName},
		{"File", s.saved.Path},
	}
	for _, stat := range stats {
		sb.WriteString("  ")
		sb.WriteString(completionLabelStyle.Render(stat.label + ":"))
		sb.WriteString(" ")
		sb.WriteString(completionValueStyle.Render(stat.value))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(components.TitleStyle.Render("Next steps:"))
	sb.WriteString("\n")
	sb.WriteString("  • Print:       ")
	sb.WriteString(completionCommandStyle.Render(fmt.Sprintf("chiroforge render %q", s.saved.Path)))
	sb.WriteString("\n")
	sb.WriteString("  • Add imaging: ")
	sb.WriteString(completionCommandStyle.Render(fmt.Sprintf("chiroforge import-dicom %q <dicom dir>", s.saved.Path)))
	sb.WriteString("\n\n")
	sb.WriteString(components.HintStyle.Render("Press Enter or q to exit"))

	return sb.String()
}

// Done returns true if the user is finished
func (s *CompletionScreen) Done() bool { return s.done }

// ErrorScreen displays an error that occurred while saving.
type ErrorScreen struct {
	err    error
	done   bool
	width  int
	height int
}

// NewErrorScreen creates a new error screen
func NewErrorScreen(err error) *ErrorScreen {
	return &ErrorScreen{err: err}
}

// Init implements tea.Model
func (s *ErrorScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *ErrorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, exitOnKey(msg, &s.done, &s.width, &s.height)
}

// View implements tea.Model
func (s *ErrorScreen) View() string {
	var sb strings.Builder

	sb.WriteString(errorTitleStyle.Render("✗ Save failed"))
	sb.WriteString("\n\n")
	sb.WriteString(components.TitleStyle.Render("Error:"))
	sb.WriteString("\n  ")
	sb.WriteString(errorMessageStyle.Render(s.err.Error()))
	sb.WriteString("\n\n")
	sb.WriteString(components.HintStyle.Render("Press Enter or q to exit"))

	return sb.String()
}

// Done returns true if the user is finished
func (s *ErrorScreen) Done() bool { return s.done }

// Error returns the error
func (s *ErrorScreen) Error() error { return s.err }

func exitOnKey(msg tea.Msg, done *bool, width, height *int) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			*done = true
			return tea.Quit
		}
	case tea.WindowSizeMsg:
		*width = msg.Width
		*height = msg.Height
	}
	return nil
}
