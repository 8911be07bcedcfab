package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/components"
)

// SummaryAction is the user's choice on the summary screen.
type SummaryAction string

const (
	SummaryActionSave         SummaryAction = "save"
	SummaryActionEditMOI      SummaryAction = "edit_moi"
	SummaryActionEditROF      SummaryAction = "edit_rof"
	SummaryActionEditTherapy  SummaryAction = "edit_therapy"
	SummaryActionEditDx       SummaryAction = "edit_dx"
	SummaryActionEditPlan     SummaryAction = "edit_plan"
	SummaryActionSaveTemplate SummaryAction = "save_template"
	SummaryActionBack         SummaryAction = "back"
	SummaryActionCancel       SummaryAction = "cancel"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

// SummaryScreen shows the rendered report and the next action.
type SummaryScreen struct {
	form      *huh.Form
	report    string
	status    string
	message   string
	action    string
	offset    int
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewSummaryScreen creates the summary screen. report is the styled exam,
// status the provenance line of each section.
func NewSummaryScreen(report, status, message string) *SummaryScreen {
	s := &SummaryScreen{report: report, status: status, message: message, action: string(SummaryActionSave)}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("What next?").
				Options(
					huh.NewOption("Save exam", string(SummaryActionSave)),
					huh.NewOption("Edit history of injury narrative", string(SummaryActionEditMOI)),
					huh.NewOption("Edit review of findings paragraph", string(SummaryActionEditROF)),
					huh.NewOption("Edit therapy narrative", string(SummaryActionEditTherapy)),
					huh.NewOption("Edit diagnosis list", string(SummaryActionEditDx)),
					huh.NewOption("Edit plan narrative", string(SummaryActionEditPlan)),
					huh.NewOption("Save answers as template", string(SummaryActionSaveTemplate)),
					huh.NewOption("Start over", string(SummaryActionBack)),
					huh.NewOption("Quit without saving", string(SummaryActionCancel)),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		case "pgdown":
			s.offset += 10
			return s, nil
		case "pgup":
			s.offset = max(0, s.offset-10)
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *SummaryScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	parts := []string{components.TitleStyle.Render("SUMMARY")}
	if s.message != "" {
		parts = append(parts, messageStyle.Render(s.message))
	}
	parts = append(parts,
		statusStyle.Render(s.status),
		"",
		s.visibleReport(),
		"",
		s.form.View(),
		"",
		"PgUp/PgDn: Scroll | Enter: Select | Esc: Cancel",
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// visibleReport clips the report to the window, leaving room for the menu.
func (s *SummaryScreen) visibleReport() string {
	lines := strings.Split(s.report, "\n")
	room := len(lines)
	if s.height > 0 {
		room = max(5, s.height-18)
	}
	start := min(s.offset, max(0, len(lines)-1))
	end := min(len(lines), start+room)
	return strings.Join(lines[start:end], "\n")
}

// Done returns true if an action was chosen
func (s *SummaryScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *SummaryScreen) Cancelled() bool { return s.cancelled }

// Action returns the chosen action
func (s *SummaryScreen) Action() SummaryAction { return SummaryAction(s.action) }
