package view

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/gisuarez/expenso/internal/expense"
)

type entryState int

const (
	entryStateForm entryState = iota
	entryStateSaved
)

type entrySaveMsg struct {
	saved *expense.Expense
	err   error
}

// EntryModel is the add-expense form.
type EntryModel struct {
	CommonModel
	expenseService *expense.Service
	ownerID        uuid.UUID

	state entryState
	form  *huh.Form
	err   error
	saved *expense.Expense
}

func NewEntryModel(expenseSvc *expense.Service, ownerID uuid.UUID) EntryModel {
	m := EntryModel{
		expenseService: expenseSvc,
		ownerID:        ownerID,
		state:          entryStateForm,
	}
	m.form = buildEntryForm()

	return m
}

func buildEntryForm() *huh.Form {
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
			huh.NewInput().Key("name").Title("Name"),
			huh.NewInput().Key("cost").Title("Cost").Placeholder("0.00"),
			huh.NewSelect[string]().Key("type").Title("Type").Options(typeOpts...),
			huh.NewSelect[string]().Key("payment_method").Title("Payment Method").Options(payOpts...),
			huh.NewInput().Key("remarks").Title("Remarks"),
			huh.NewInput().Key("date").Title("Date").Placeholder(FormatDate(time.Now())),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m EntryModel) Title() string { return "Add Expense" }

func (m EntryModel) ShortHelp() string {
	if m.state == entryStateSaved {
		return "a: add another | Esc: back"
	}

	return "Navigate form | Esc: back"
}

func (m EntryModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m EntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == entryStateSaved && msg.String() == "a" {
			m.state = entryStateForm
			m.err = nil
			m.saved = nil
			m.form = buildEntryForm()

			return m, m.form.Init()
		}

	case entrySaveMsg:
		if msg.err != nil {
			m.err = msg.err
			m.form = buildEntryForm()

			return m, m.form.Init()
		}

		m.state = entryStateSaved
		m.err = nil
		m.saved = msg.saved

		return m, nil
	}

	if m.state != entryStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m EntryModel) saveCmd() tea.Cmd {
	form := m.form

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var date time.Time
		if s := form.GetString("date"); s != "" {
			t, err := time.Parse(time.DateOnly, s)
			if err != nil {
				return entrySaveMsg{err: fmt.Errorf("date: want YYYY-MM-DD")}
			}

			date = t
		}

		saved, err := m.expenseService.Create(ctx, m.ownerID, expense.Input{
			Name:          form.GetString("name"),
			CostText:      form.GetString("cost"),
			Type:          form.GetString("type"),
			PaymentMethod: form.GetString("payment_method"),
			Remarks:       form.GetString("remarks"),
			Date:          date,
		})

		return entrySaveMsg{saved: saved, err: err}
	}
}

func (m EntryModel) View() string {
	if m.state == entryStateSaved && m.saved != nil {
		header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")).Render("Expense Saved")

		detail := fmt.Sprintf("%s  %s  %s (%s)",
			FormatDate(m.saved.Date), m.saved.Name, FormatMoney(m.saved.Cost), m.saved.PaymentMethod)

		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.JoinVertical(lipgloss.Left, header, "", detail, "", m.ShortHelp()),
		)
	}

	body := m.form.View()

	if m.err != nil {
		errLine := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err))
		body = lipgloss.JoinVertical(lipgloss.Left, errLine, "", body)
	}

	return lipgloss.NewStyle().Padding(1).Render(body)
}
