package wizard

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/components"
	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/screens"
	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard/types"
	"github.com/mrsinham/chiroforge/internal/exam"
	"github.com/mrsinham/chiroforge/internal/narrative"
	"github.com/mrsinham/chiroforge/internal/reconcile"
	"github.com/mrsinham/chiroforge/internal/report"
	"github.com/mrsinham/chiroforge/internal/util"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhasePatient Phase = iota
	PhaseMOI
	PhaseROF
	PhaseSubjective
	PhaseTherapy
	PhaseObjectives
	PhaseDiagnosis
	PhaseSupplement
	PhasePlan
	PhaseSummary
	PhaseEditor
	PhaseSaveTemplate
	PhaseSaving
	PhaseComplete
	PhaseError
)

// Options configures a wizard run.
type Options struct {
	// FromTemplate prefills the answers from a YAML template.
	FromTemplate string
	// ExamPath opens an existing exam; saving writes back to it.
	ExamPath string
	// Store receives new exams.
	Store        *exam.Store
	Report       report.Settings
	MaxROFGroups int
	Log          zerolog.Logger
}

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	state *WizardState
	ws    *reconcile.Workspace
	opts  Options
	log   zerolog.Logger

	phase Phase

	patientScreen    *screens.PatientScreen
	moiScreen        *screens.MOIScreen
	rofScreen        *screens.ROFScreen
	subjectiveScreen *screens.SubjectiveScreen
	therapyScreen    *screens.TherapyScreen
	objectivesScreen *screens.ObjectivesScreen
	dxScreen         *screens.DiagnosisScreen
	supplementScreen *screens.DxSupplementScreen
	planScreen       *screens.PlanScreen
	summaryScreen    *screens.SummaryScreen
	editorScreen     *screens.EditorScreen
	completionScreen *screens.CompletionScreen
	errorScreen      *screens.ErrorScreen

	saveTemplateForm *huh.Form
	templatePath     string
	message          string

	// Index of the block edited by a repeating screen.
	blockIndex int
	descriptor *types.DescriptorForm
	dx         *types.DxForm
	editorBase string
	maxGroups  int

	width  int
	height int

	cancelled bool
	finished  bool
	err       error
}

func (o Options) workspaceOptions() []reconcile.Option {
	wsOpts := []reconcile.Option{reconcile.WithLogger(o.Log)}
	if o.MaxROFGroups > 0 {
		wsOpts = append(wsOpts, reconcile.WithMaxROFGroups(o.MaxROFGroups))
	}
	return wsOpts
}

// NewWizard creates a wizard over ws. A nil state is prefilled from ws.
func NewWizard(state *WizardState, ws *reconcile.Workspace, opts Options) *Wizard {
	if ws == nil {
		ws = reconcile.NewWorkspace(opts.workspaceOptions()...)
	}
	if state == nil {
		state = StateFromWorkspace(ws, "Initial")
	}
	maxGroups := opts.MaxROFGroups
	if maxGroups <= 0 {
		maxGroups = narrative.MaxROFGroups
	}

	w := &Wizard{
		state:     state,
		ws:        ws,
		opts:      opts,
		log:       opts.Log.With().Str("component", "wizard").Logger(),
		phase:     PhasePatient,
		maxGroups: maxGroups,
	}
	w.patientScreen = screens.NewPatientScreen(&w.state.Patient)
	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.patientScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhasePatient:
		return w.updatePatient(msg)
	case PhaseMOI:
		return w.updateMOI(msg)
	case PhaseROF:
		return w.updateROF(msg)
	case PhaseSubjective:
		return w.updateSubjective(msg)
	case PhaseTherapy:
		return w.updateTherapy(msg)
	case PhaseObjectives:
		return w.updateObjectives(msg)
	case PhaseDiagnosis:
		return w.updateDiagnosis(msg)
	case PhaseSupplement:
		return w.updateSupplement(msg)
	case PhasePlan:
		return w.updatePlan(msg)
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhaseEditor:
		return w.updateEditor(msg)
	case PhaseSaveTemplate:
		return w.updateSaveTemplate(msg)
	case PhaseSaving:
		return w.updateSaving(msg)
	case PhaseComplete:
		return w.updateComplete(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhasePatient:
		return w.patientScreen.View()
	case PhaseMOI:
		return w.moiScreen.View()
	case PhaseROF:
		return w.rofScreen.View()
	case PhaseSubjective:
		return w.subjectiveScreen.View()
	case PhaseTherapy:
		return w.therapyScreen.View()
	case PhaseObjectives:
		return w.objectivesScreen.View()
	case PhaseDiagnosis:
		return w.dxScreen.View()
	case PhaseSupplement:
		return w.supplementScreen.View()
	case PhasePlan:
		return w.planScreen.View()
	case PhaseSummary:
		return w.summaryScreen.View()
	case PhaseEditor:
		return w.editorScreen.View()
	case PhaseSaveTemplate:
		return w.viewSaveTemplate()
	case PhaseSaving:
		return components.SubtitleStyle.Render("Saving exam...")
	case PhaseComplete:
		return w.completionScreen.View()
	case PhaseError:
		return w.errorScreen.View()
	}

	return ""
}

// screen is what every section screen exposes to the wizard.
type screen interface {
	tea.Model
	Done() bool
	Cancelled() bool
}

// step forwards msg to s and reports whether it completed. Cancelling quits
// the program.
func (w *Wizard) step(s screen, msg tea.Msg) (done bool, cmd tea.Cmd) {
	_, cmd = s.Update(msg)
	if s.Cancelled() {
		w.cancelled = true
		return false, tea.Quit
	}
	return s.Done(), cmd
}

// sizeCmd replays the last window size to a freshly created screen.
func (w *Wizard) sizeCmd() tea.Cmd {
	if w.width == 0 {
		return nil
	}
	width, height := w.width, w.height
	return func() tea.Msg { return tea.WindowSizeMsg{Width: width, Height: height} }
}

func (w *Wizard) enter(phase Phase, s tea.Model) (tea.Model, tea.Cmd) {
	w.phase = phase
	return w, tea.Batch(s.Init(), w.sizeCmd())
}

func (w *Wizard) updatePatient(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := w.step(w.patientScreen, msg)
	if done {
		w.applyPatient()
		return w.transitionToMOI()
	}
	return w, cmd
}

func (w *Wizard) transitionToMOI() (tea.Model, tea.Cmd) {
	w.moiScreen = screens.NewMOIScreen(&w.state.MOI)
	w.moiScreen.SetPreview(w.ws.MOI.Text().Value)
	return w.enter(PhaseMOI, w.moiScreen)
}

// updateMOI applies the form on every update so the preview follows the
// auto/manual rules of the section.
func (w *Wizard) updateMOI(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := w.step(w.moiScreen, msg)
	if w.cancelled {
		return w, cmd
	}
	w.applyMOI()
	w.moiScreen.SetPreview(w.ws.MOI.Text().Value)
	if done {
		return w.transitionToROF(0)
	}
	return w, cmd
}

func (w *Wizard) transitionToROF(i int) (tea.Model, tea.Cmd) {
	w.blockIndex = i
	w.state.ROF.Entry = w.rofEntry(i)
	full := w.ws.ROF.Full() && i >= w.ws.ROF.Len()
	w.rofScreen = screens.NewROFScreen(&w.state.ROF, i, full)
	w.rofScreen.SetPreview(w.rofPreview(i))
	return w.enter(PhaseROF, w.rofScreen)
}

func (w *Wizard) updateROF(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := w.step(w.rofScreen, msg)
	if w.cancelled {
		return w, cmd
	}
	w.rofScreen.SetPreview(w.rofPreview(w.blockIndex))
	if done {
		if w.commitROF(w.blockIndex) {
			return w.transitionToROF(w.blockIndex + 1)
		}
		return w.transitionToSubjective(0)
	}
	return w, cmd
}

func (w *Wizard) transitionToSubjective(i int) (tea.Model, tea.Cmd) {
	w.blockIndex = i
	w.descriptor = w.descriptorForm(i)
	w.subjectiveScreen = screens.NewSubjectiveScreen(w.descriptor, i)
	w.subjectiveScreen.SetPreview(narrative.BuildDescriptor(w.descriptor.Block))
	return w.enter(PhaseSubjective, w.subjectiveScreen)
}

func (w *Wizard) updateSubjective(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := w.step(w.subjectiveScreen, msg)
	if done {
		if w.commitDescriptor(w.blockIndex, w.descriptor) {
			return w.transitionToSubjective(w.blockIndex + 1)
		}
		return w.transitionToTherapy()
	}
	return w, cmd
}

func (w *Wizard) transitionToTherapy() (tea.Model, tea.Cmd) {
	w.therapyScreen = screens.NewTherapyScreen(&w.state.Therapy)
	w.therapyScreen.SetPreview(w.ws.Therapy.Text().Value)
	return w.enter(PhaseTherapy, w.therapyScreen)
}

func (w *Wizard) updateTherapy(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := w.step(w.therapyScreen, msg)
	if w.cancelled {
		return w, cmd
	}
	w.applyTherapy()
	w.therapyScreen.SetPreview(w.ws.Therapy.Text().Value)
	if done {
		return w.transitionToObjectives()
	}
	return w, cmd
}

func (w *Wizard) transitionToObjectives() (tea.Model, tea.Cmd) {
	w.objectivesScreen = screens.NewObjectivesScreen(&w.state.Objectives)
	w.objectivesScreen.SetPreview(w.objectivesPreview())
	return w.enter(PhaseObjectives, w.objectivesScreen)
}

func (w *Wizard) updateObjectives(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := w.step(w.objectivesScreen, msg)
	if w.cancelled {
		return w, cmd
	}
	w.applyObjectives()
	w.objectivesScreen.SetPreview(w.objectivesPreview())
	if done {
		return w.transitionToDiagnosis(0)
	}
	return w, cmd
}

func (w *Wizard) transitionToDiagnosis(i int) (tea.Model, tea.Cmd) {
	w.blockIndex = i
	w.dx = w.dxForm(i)
	w.dxScreen = screens.NewDiagnosisScreen(w.dx, i)
	w.dxScreen.SetPreview(w.dxPreview(i, w.dx))
	return w.enter(PhaseDiagnosis, w.dxScreen)
}

func (w *Wizard) updateDiagnosis(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := w.step(w.dxScreen, msg)
	if w.cancelled {
		return w, cmd
	}
	w.dxScreen.SetPreview(w.dxPreview(w.blockIndex, w.dx))
	if done {
		if w.commitDx(w.blockIndex, w.dx) {
			return w.transitionToDiagnosis(w.blockIndex + 1)
		}
		w.supplementScreen = screens.NewDxSupplementScreen(&w.state.Supplement)
		w.supplementScreen.SetPreview(screens.SupplementText(w.state.Supplement))
		return w.enter(PhaseSupplement, w.supplementScreen)
	}
	return w, cmd
}

func (w *Wizard) updateSupplement(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := w.step(w.supplementScreen, msg)
	if done {
		w.applySupplement()
		w.planScreen = screens.NewPlanScreen(&w.state.Plan)
		w.planScreen.SetPreview(w.ws.Plan.Text().Value)
		return w.enter(PhasePlan, w.planScreen)
	}
	return w, cmd
}

func (w *Wizard) updatePlan(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := w.step(w.planScreen, msg)
	if w.cancelled {
		return w, cmd
	}
	w.applyPlan()
	w.planScreen.SetPreview(w.ws.Plan.Text().Value)
	if done {
		return w.transitionToSummary()
	}
	return w, cmd
}

// transitionToSummary renders the exam and shows the action menu.
func (w *Wizard) transitionToSummary() (tea.Model, tea.Cmd) {
	width := w.width
	if width <= 0 {
		width = 100
	}
	rendered := report.RenderTerminal(report.Build(w.toExam(), w.opts.Report), width-2)
	w.summaryScreen = screens.NewSummaryScreen(rendered, w.statusLine(), w.message)
	w.message = ""
	return w.enter(PhaseSummary, w.summaryScreen)
}

func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := w.step(w.summaryScreen, msg)
	if !done {
		return w, cmd
	}

	switch w.summaryScreen.Action() {
	case screens.SummaryActionSave:
		return w.startSave()
	case screens.SummaryActionEditMOI:
		return w.transitionToEditor("History of injury", "moi", w.ws.MOI.Text().Value)
	case screens.SummaryActionEditROF:
		return w.transitionToEditor("Review of findings (printed under the generated paragraph)", "rof", w.ws.ROF.ManualParagraph())
	case screens.SummaryActionEditTherapy:
		return w.transitionToEditor("Therapy", "therapy", w.ws.Therapy.Text().Value)
	case screens.SummaryActionEditDx:
		return w.transitionToEditor("Diagnosis", "dx", w.ws.Dx.Text().Value)
	case screens.SummaryActionEditPlan:
		return w.transitionToEditor("Plan of care", "plan", w.ws.Plan.Text().Value)
	case screens.SummaryActionSaveTemplate:
		return w.transitionToSaveTemplate()
	case screens.SummaryActionBack:
		w.state = StateFromWorkspace(w.ws, w.state.Patient.ExamName)
		w.patientScreen = screens.NewPatientScreen(&w.state.Patient)
		return w.enter(PhasePatient, w.patientScreen)
	case screens.SummaryActionCancel:
		w.cancelled = true
		return w, tea.Quit
	}
	return w, cmd
}

// transitionToEditor opens the text of one section without its markers.
func (w *Wizard) transitionToEditor(title, target, text string) (tea.Model, tea.Cmd) {
	w.editorBase = strings.TrimSpace(narrative.StripSentinels(text))
	w.editorScreen = screens.NewEditorScreen(title, target, w.editorBase)
	return w.enter(PhaseEditor, w.editorScreen)
}

func (w *Wizard) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := w.editorScreen.Update(msg)
	if w.editorScreen.Cancelled() {
		return w.transitionToSummary()
	}
	if !w.editorScreen.Done() {
		return w, cmd
	}

	w.applyEdit(w.editorScreen.Target(), w.editorScreen.Text())
	return w.transitionToSummary()
}

// applyEdit records typed text for target. Unchanged text is ignored so
// opening and closing the editor does not flip provenance.
func (w *Wizard) applyEdit(target, text string) {
	if strings.TrimSpace(text) == w.editorBase {
		return
	}
	switch target {
	case "moi":
		w.ws.MOI.Edit(text)
		w.state.MOI.Auto = w.ws.MOI.Auto()
	case "rof":
		w.ws.ROF.SetManual(text)
		w.state.ROF.Manual = text
	case "therapy":
		w.ws.Therapy.Edit(text)
		w.state.Therapy.Auto = w.ws.Therapy.Auto()
	case "dx":
		w.ws.Dx.Edit(text)
	case "plan":
		w.ws.Plan.Edit(text)
	}
	w.log.Debug().Str("section", target).Msg("narrative edited")
}

// transitionToSaveTemplate shows the save template dialog.
func (w *Wizard) transitionToSaveTemplate() (tea.Model, tea.Cmd) {
	w.phase = PhaseSaveTemplate
	if w.templatePath == "" {
		w.templatePath = util.SafeSlug(w.state.MOI.Snapshot.InjuryType) + ".yaml"
	}

	w.saveTemplateForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("template_path").
				Title("Save answers to").
				Description("Patient name and dates are not included").
				Value(&w.templatePath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	return w, w.saveTemplateForm.Init()
}

func (w *Wizard) updateSaveTemplate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			return w.transitionToSummary()
		case "ctrl+c":
			w.cancelled = true
			return w, tea.Quit
		}
	}

	form, cmd := w.saveTemplateForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.saveTemplateForm = f
	}

	if w.saveTemplateForm.State == huh.StateCompleted {
		if err := SaveToYAML(w.state, w.templatePath); err != nil {
			w.err = err
			w.errorScreen = screens.NewErrorScreen(err)
			w.phase = PhaseError
			return w, nil
		}
		w.message = "Template saved to " + w.templatePath
		return w.transitionToSummary()
	}

	return w, cmd
}

func (w *Wizard) viewSaveTemplate() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Save Template"),
		"",
		w.saveTemplateForm.View(),
		"",
		"Enter: Save | Esc: Back",
	)
}

// startSave writes the exam off the UI loop.
func (w *Wizard) startSave() (tea.Model, tea.Cmd) {
	w.phase = PhaseSaving
	return w, func() tea.Msg {
		path, err := w.save(context.Background())
		if err != nil {
			return screens.ErrorMsg{Error: err}
		}
		p := w.ws.Patient()
		return screens.SavedMsg{
			Path:     path,
			ExamName: w.toExam().ExamName,
			Patient:  util.LastFirst(p.First, p.Last),
		}
	}
}

func (w *Wizard) updateSaving(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.SavedMsg:
		w.completionScreen = screens.NewCompletionScreen(msg)
		w.phase = PhaseComplete
		return w, nil
	case screens.ErrorMsg:
		w.err = msg.Error
		w.errorScreen = screens.NewErrorScreen(msg.Error)
		w.phase = PhaseError
		return w, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			w.cancelled = true
			return w, tea.Quit
		}
	}
	return w, nil
}

func (w *Wizard) updateComplete(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := w.completionScreen.Update(msg)
	if w.completionScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}
	return w, cmd
}

func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := w.errorScreen.Update(msg)
	if w.errorScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}
	return w, cmd
}

// Run starts the interactive wizard. With opts.ExamPath set the exam is
// opened for editing; with opts.FromTemplate the answers are prefilled.
func Run(opts Options) error {
	wsOpts := opts.workspaceOptions()

	var (
		ws   *reconcile.Workspace
		name = "Initial"
	)
	if opts.ExamPath != "" {
		e, err := exam.Load(opts.ExamPath)
		if err != nil {
			return fmt.Errorf("opening exam: %w", err)
		}
		ws = reconcile.FromExam(e, wsOpts...)
		name = e.ExamName
	} else {
		ws = reconcile.FromExam(exam.New(exam.Patient{}, name), wsOpts...)
	}

	state := StateFromWorkspace(ws, name)
	if opts.FromTemplate != "" {
		absPath, err := filepath.Abs(opts.FromTemplate)
		if err != nil {
			return fmt.Errorf("resolving template path: %w", err)
		}
		cfg, err := readConfig(absPath)
		if err != nil {
			return err
		}
		if err := cfg.apply(state); err != nil {
			return err
		}
	}

	wizard := NewWizard(state, ws, opts)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	if w, ok := finalModel.(*Wizard); ok {
		if w.cancelled {
			return nil // User cancelled, not an error
		}
		if w.err != nil {
			return w.err
		}
	}

	return nil
}
