package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/gisuarez/expenso/internal/expense"
)

type historyState int

const (
	historyStateBrowse historyState = iota
	historyStateEdit
)

type loadHistoryMsg struct {
	expenses []*expense.Expense
	err      error
}

type historySaveMsg struct {
	err error
}

// HistoryModel lists the user's expenses with edit and delete.
type HistoryModel struct {
	CommonModel
	expenseService *expense.Service
	ownerID        uuid.UUID

	state    historyState
	table    table.Model
	expenses []*expense.Expense
	form     *huh.Form
	editing  *expense.Expense

	thisMonthOnly bool
	loading       bool
	err           error
	status        string
}

func NewHistoryModel(expenseSvc *expense.Service, ownerID uuid.UUID) HistoryModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Name", Width: 24},
		{Title: "Type", Width: 16},
		{Title: "Cost", Width: 10},
		{Title: "Payment", Width: 12},
		{Title: "Remarks", Width: 24},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return HistoryModel{
		expenseService: expenseSvc,
		ownerID:        ownerID,
		table:          t,
	}
}

func (m HistoryModel) Title() string { return "Expense History" }

func (m HistoryModel) ShortHelp() string {
	if m.state == historyStateEdit {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | e: edit | d: delete | m: toggle this month | r: refresh"
}

func (m HistoryModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadHistoryMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.expenses = msg.expenses
		m.err = nil
		m.refreshTable()

		return m, nil

	case historySaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = ""
		}

		m.state = historyStateBrowse
		m.form = nil
		m.editing = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case historyStateBrowse:
		return m.updateBrowse(msg)
	case historyStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m HistoryModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "m":
			m.thisMonthOnly = !m.thisMonthOnly
			return m, m.loadCmd()
		case "d":
			if e := m.selected(); e != nil {
				return m, m.deleteCmd(e.ID)
			}
		case "e":
			if e := m.selected(); e != nil {
				m.editing = e
				m.state = historyStateEdit
				m.form = buildEditForm(e)
				m.table.Blur()

				return m, m.form.Init()
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m HistoryModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = historyStateBrowse
			m.form = nil
			m.editing = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveEditCmd()
}

func buildEditForm(e *expense.Expense) *huh.Form {
	typeOpts := make([]huh.Option[string], 0, len(expense.Types()))
	for _, t := range expense.Types() {
		typeOpts = append(typeOpts, huh.NewOption(string(t), string(t)))
	}

	payOpts := make([]huh.Option[string], 0, len(expense.PaymentMethods()))
	for _, p := range expense.PaymentMethods() {
		payOpts = append(payOpts, huh.NewOption(string(p), string(p)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("name").Title("Name").Value(ptr(e.Name)),
			huh.NewInput().Key("cost").Title("Cost").Value(ptr(e.Cost.String())),
			huh.NewSelect[string]().Key("type").Title("Type").Options(typeOpts...).Value(ptr(string(e.Type))),
			huh.NewSelect[string]().Key("payment_method").Title("Payment Method").Options(payOpts...).Value(ptr(string(e.PaymentMethod))),
			huh.NewInput().Key("remarks").Title("Remarks").Value(ptr(e.Remarks)),
			huh.NewInput().Key("date").Title("Date").Value(ptr(FormatDate(e.Date))),
		),
	).WithWidth(50).WithShowHelp(false)
}

func ptr(s string) *string { return &s }

func (m HistoryModel) saveEditCmd() tea.Cmd {
	form := m.form
	editing := m.editing

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		date, err := time.Parse(time.DateOnly, form.GetString("date"))
		if err != nil {
			return historySaveMsg{err: fmt.Errorf("date: want YYYY-MM-DD")}
		}

		_, err = m.expenseService.Update(ctx, m.ownerID, editing.ID, expense.Input{
			Name:          form.GetString("name"),
			CostText:      form.GetString("cost"),
			Type:          form.GetString("type"),
			PaymentMethod: form.GetString("payment_method"),
			Remarks:       form.GetString("remarks"),
			Date:          date,
		})

		return historySaveMsg{err: err}
	}
}

func (m HistoryModel) loadCmd() tea.Cmd {
	thisMonth := m.thisMonthOnly

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if thisMonth {
			expenses, err := m.expenseService.ListMonth(ctx, m.ownerID, time.Now())
			return loadHistoryMsg{expenses: expenses, err: err}
		}

		expenses, err := m.expenseService.List(ctx, expense.ListFilter{OwnerID: m.ownerID})

		return loadHistoryMsg{expenses: expenses, err: err}
	}
}

func (m HistoryModel) deleteCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return historySaveMsg{err: m.expenseService.Delete(ctx, m.ownerID, id)}
	}
}

func (m HistoryModel) selected() *expense.Expense {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.expenses) {
		return nil
	}

	return m.expenses[idx]
}

func (m *HistoryModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.expenses))
	for _, e := range m.expenses {
		rows = append(rows, table.Row{
			FormatDate(e.Date),
			e.Name,
			string(e.Type),
			FormatMoney(e.Cost),
			string(e.PaymentMethod),
			e.Remarks,
		})
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m HistoryModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == historyStateEdit {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	scope := "all time"
	if m.thisMonthOnly {
		scope = "this month"
	}

	header := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Expenses (%s)", scope))

	parts := []string{header, "", m.table.View()}
	if m.status != "" {
		parts = append(parts, "", m.status)
	}

	parts = append(parts, "", m.ShortHelp())

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
