package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/gisuarez/expenso/cmd/tui/internal/view"
	"github.com/gisuarez/expenso/internal/config"
	"github.com/gisuarez/expenso/internal/database"
	"github.com/gisuarez/expenso/internal/expense"
	expenseStore "github.com/gisuarez/expenso/internal/expense/store"
	"github.com/gisuarez/expenso/internal/export"
	"github.com/gisuarez/expenso/internal/ledger"
	ledgerStore "github.com/gisuarez/expenso/internal/ledger/store"
	"github.com/gisuarez/expenso/internal/user"
	userStore "github.com/gisuarez/expenso/internal/user/store"
)

type model struct {
	userService    *user.Service
	expenseService *expense.Service
	ledgerService  *ledger.Service
	exportService  *export.Service
	exportDir      string

	currentUser *user.User
	currentView View

	loginView   view.LoginModel
	entryView   view.EntryModel
	historyView view.HistoryModel
	summaryView view.SummaryModel
	exportView  view.ExportModel
}

type View int

const (
	ViewLogin   View = 0
	ViewMenu    View = 1
	ViewEntry   View = 2
	ViewHistory View = 3
	ViewSummary View = 4
	ViewExport  View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	userSvc := user.NewService(userStore.New(db))
	expenseSvc := expense.NewService(expenseStore.New(db))
	ledgerSvc := ledger.NewService(expenseSvc, ledgerStore.New(db))
	exportSvc := export.NewService(expenseSvc, ledgerSvc)

	return model{
		userService:    userSvc,
		expenseService: expenseSvc,
		ledgerService:  ledgerSvc,
		exportService:  exportSvc,
		exportDir:      cfg.Export.Dir,
		currentView:    ViewLogin,
		loginView:      view.NewLoginModel(userSvc),
	}
}

func (m model) Init() tea.Cmd {
	return m.loginView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewEntry
				m.entryView = view.NewEntryModel(m.expenseService, m.currentUser.ID)

				return m, m.entryView.Init()
			case "2":
				m.currentView = ViewHistory
				m.historyView = view.NewHistoryModel(m.expenseService, m.currentUser.ID)

				return m, m.historyView.Init()
			case "3":
				m.currentView = ViewSummary
				m.summaryView = view.NewSummaryModel(m.ledgerService, m.currentUser.ID)

				return m, m.summaryView.Init()
			case "4":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService, m.currentUser.ID, m.exportDir)

				return m, m.exportView.Init()
			}
		}

	case view.LoggedInMsg:
		m.currentUser = msg.User
		m.currentView = ViewMenu

		return m, nil

	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLogin:
		var newModel tea.Model
		newModel, cmd = m.loginView.Update(msg)
		m.loginView = newModel.(view.LoginModel)
	case ViewEntry:
		var newModel tea.Model
		newModel, cmd = m.entryView.Update(msg)
		m.entryView = newModel.(view.EntryModel)
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.historyView.Update(msg)
		m.historyView = newModel.(view.HistoryModel)
	case ViewSummary:
		var newModel tea.Model
		newModel, cmd = m.summaryView.Update(msg)
		m.summaryView = newModel.(view.SummaryModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewLogin:
		return m.loginView.View()
	case ViewMenu:
		name := ""
		if m.currentUser != nil {
			name = " - " + m.currentUser.FirstName
		}

		return lipgloss.NewStyle().Padding(2).Render(
			"Expenso" + name + "\n\n" +
				"1. Add Expense\n" +
				"2. Expense History\n" +
				"3. Summary\n" +
				"4. Export Expenses\n\n" +
				"q. Quit",
		)
	case ViewEntry:
		return m.entryView.View()
	case ViewHistory:
		return m.historyView.View()
	case ViewSummary:
		return m.summaryView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
