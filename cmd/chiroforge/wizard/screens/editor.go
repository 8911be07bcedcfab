package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// EditorScreen is a free-text editor for one generated narrative. Saving it
// records the text as typed by the clinician.
type EditorScreen struct {
	formScreen
	target string
	text   string
}

// NewEditorScreen opens text for editing. target identifies the section the
// wizard writes the result back to.
func NewEditorScreen(title, target, text string) *EditorScreen {
	s := &EditorScreen{target: target, text: text}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Key("narrative").
				Title(title).
				Lines(16).
				CharLimit(0).
				Value(&s.text),
		),
	)
	s.formScreen = newFormScreen("EDIT NARRATIVE", target, form, nil)
	return s
}

// Update implements tea.Model. Esc leaves the editor without saving.
func (s *EditorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		s.cancelled = true
		return s, nil
	}
	return s, s.update(msg)
}

// Target returns the section being edited.
func (s *EditorScreen) Target() string { return s.target }

// Text returns the edited narrative.
func (s *EditorScreen) Text() string { return s.text }
