package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/gisuarez/expenso/internal/export"
)

type exportState int

const (
	exportStatePath exportState = iota
	exportStateExporting
	exportStateDecision
	exportStateDone
)

type exportResultMsg struct {
	result *export.Result
	err    error
}

type decisionDoneMsg struct {
	decision export.Decision
	err      error
}

// ExportModel writes the history to a CSV file and then asks whether to
// keep the records or reset them into a carryover balance.
type ExportModel struct {
	CommonModel
	exportService *export.Service
	ownerID       uuid.UUID

	state   exportState
	err     error
	form    *huh.Form
	spinner spinner.Model

	result   *export.Result
	decision export.Decision
}

func NewExportModel(svc *export.Service, ownerID uuid.UUID, defaultDir string) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := ExportModel{
		exportService: svc,
		ownerID:       ownerID,
		state:         exportStatePath,
		spinner:       s,
	}
	m.form = buildPathForm(defaultDir)

	return m
}

func buildPathForm(defaultDir string) *huh.Form {
	dir := defaultDir

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("dir").
				Title("Output Directory").
				Description("Directory will be created if it doesn't exist").
				Placeholder("./exports").
				Value(&dir),
		),
	).WithWidth(50).WithShowHelp(false)
}

func buildDecisionForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("decision").
				Title("Export complete. What should happen to the records?").
				Options(
					huh.NewOption("Keep everything as is", string(export.DecisionKeep)),
					huh.NewOption("Reset history, carry debt forward", string(export.DecisionReset)),
				),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m ExportModel) Title() string { return "Export Expenses" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateExporting:
		return "Exporting..."
	case exportStateDone:
		return "Esc: back to menu"
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case exportStatePath:
		return m.updatePath(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateDecision:
		return m.updateDecision(msg)
	case exportStateDone:
		return m.updateDone(msg)
	}

	return m, nil
}

func (m ExportModel) updatePath(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	dir := m.form.GetString("dir")
	m.state = exportStateExporting
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.runExportCmd(dir))
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportResultMsg); ok {
		if result.err != nil {
			m.state = exportStateDone
			m.err = result.err

			return m, nil
		}

		m.result = result.result
		m.state = exportStateDecision
		m.form = buildDecisionForm()

		return m, m.form.Init()
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m ExportModel) updateDecision(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(decisionDoneMsg); ok {
		m.state = exportStateDone
		m.err = done.err
		m.decision = done.decision

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	decision := export.Decision(m.form.GetString("decision"))

	return m, m.runDecisionCmd(decision)
}

func (m ExportModel) updateDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m ExportModel) runExportCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.exportService.Export(ctx, m.ownerID, dir)

		return exportResultMsg{result: result, err: err}
	}
}

func (m ExportModel) runDecisionCmd(decision export.Decision) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return decisionDoneMsg{
			decision: decision,
			err:      m.exportService.Finish(ctx, m.ownerID, decision),
		}
	}
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStatePath, exportStateDecision:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Writing expenses to CSV...", m.spinner.View()),
		)

	case exportStateDone:
		return m.viewDone()
	}

	return ""
}

func (m ExportModel) viewDone() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Export Complete!")

	lines := []string{header, ""}

	if m.result != nil {
		lines = append(lines,
			fmt.Sprintf("Wrote %d expenses to %s", m.result.Count, m.result.Path),
		)
	}

	if m.decision == export.DecisionReset {
		lines = append(lines, "History reset. Remaining debt carried forward.")
	}

	lines = append(lines, "", m.ShortHelp())

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
