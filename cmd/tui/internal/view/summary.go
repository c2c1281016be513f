package view

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/gisuarez/expenso/internal/ledger"
)

type loadSummaryMsg struct {
	summary *ledger.Summary
	err     error
}

type carryoverClearedMsg struct {
	err error
}

// SummaryModel shows the monthly total and the running debt balance.
type SummaryModel struct {
	CommonModel
	ledgerService *ledger.Service
	ownerID       uuid.UUID

	month   time.Time
	summary *ledger.Summary
	loading bool
	err     error
	status  string
}

func NewSummaryModel(ledgerSvc *ledger.Service, ownerID uuid.UUID) SummaryModel {
	return SummaryModel{
		ledgerService: ledgerSvc,
		ownerID:       ownerID,
		month:         time.Now(),
	}
}

func (m SummaryModel) Title() string { return "Summary" }

func (m SummaryModel) ShortHelp() string {
	return "Esc: back | h/l: previous/next month | c: clear carryover | r: refresh"
}

func (m SummaryModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadSummaryMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.summary = msg.summary
		m.err = nil

		return m, nil

	case carryoverClearedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = "Carryover cleared"

		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "h":
			m.month = m.month.AddDate(0, -1, 0)
			return m, m.loadCmd()
		case "l":
			m.month = m.month.AddDate(0, 1, 0)
			return m, m.loadCmd()
		case "c":
			return m, m.clearCarryoverCmd()
		}
	}

	return m, nil
}

func (m SummaryModel) loadCmd() tea.Cmd {
	month := m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		summary, err := m.ledgerService.Summarize(ctx, m.ownerID, month)

		return loadSummaryMsg{summary: summary, err: err}
	}
}

func (m SummaryModel) clearCarryoverCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return carryoverClearedMsg{err: m.ledgerService.ClearCarryover(ctx, m.ownerID)}
	}
}

func (m SummaryModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.summary == nil {
		return lipgloss.NewStyle().Padding(1).Render("Loading...")
	}

	header := lipgloss.NewStyle().Bold(true).Render(m.month.Format("January 2006"))

	label := lipgloss.NewStyle().Width(16)

	lines := []string{
		header,
		"",
		label.Render("Monthly Total:") + FormatMoney(m.summary.MonthlyTotal),
		label.Render("Carryover:") + FormatMoney(m.summary.Carryover),
		label.Render("Total Debt:") + FormatMoney(m.summary.TotalDebt),
	}

	if m.status != "" {
		lines = append(lines, "", m.status)
	}

	lines = append(lines, "", m.ShortHelp())

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
