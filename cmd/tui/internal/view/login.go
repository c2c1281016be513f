package view

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/gisuarez/expenso/internal/user"
)

type loginMode int

const (
	modeLogin loginMode = iota
	modeRegister
)

// LoggedInMsg is emitted once a user has signed in or registered.
type LoggedInMsg struct {
	User *user.User
}

type loginResultMsg struct {
	user *user.User
	err  error
}

type LoginModel struct {
	CommonModel
	userService *user.Service

	mode loginMode
	form *huh.Form
	err  error
}

func NewLoginModel(userSvc *user.Service) LoginModel {
	m := LoginModel{userService: userSvc, mode: modeLogin}
	m.form = m.buildForm()

	return m
}

func (m LoginModel) Title() string { return "Sign In" }

func (m LoginModel) ShortHelp() string {
	if m.mode == modeRegister {
		return "Enter: create account | Ctrl+L: back to sign in"
	}

	return "Enter: sign in | Ctrl+N: create account"
}

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+n":
			if m.mode == modeLogin {
				m.mode = modeRegister
				m.err = nil
				m.form = m.buildForm()

				return m, m.form.Init()
			}
		case "ctrl+l":
			if m.mode == modeRegister {
				m.mode = modeLogin
				m.err = nil
				m.form = m.buildForm()

				return m, m.form.Init()
			}
		}

	case loginResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.form = m.buildForm()

			return m, m.form.Init()
		}

		return m, func() tea.Msg { return LoggedInMsg{User: msg.user} }
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.submitCmd()
}

func (m LoginModel) buildForm() *huh.Form {
	if m.mode == modeRegister {
		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Key("first_name").Title("First Name"),
				huh.NewInput().Key("last_name").Title("Last Name"),
				huh.NewInput().Key("username").Title("Username"),
				huh.NewInput().Key("email").Title("Email"),
				huh.NewInput().Key("password").Title("Password").EchoMode(huh.EchoModePassword),
			),
		).WithWidth(50).WithShowHelp(false)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("username").Title("Username"),
			huh.NewInput().Key("password").Title("Password").EchoMode(huh.EchoModePassword),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m LoginModel) submitCmd() tea.Cmd {
	mode := m.mode
	form := m.form

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if mode == modeRegister {
			u, err := m.userService.Register(ctx, user.RegisterParams{
				FirstName: form.GetString("first_name"),
				LastName:  form.GetString("last_name"),
				Username:  form.GetString("username"),
				Email:     form.GetString("email"),
				Password:  form.GetString("password"),
			})

			return loginResultMsg{user: u, err: err}
		}

		u, err := m.userService.Authenticate(ctx, form.GetString("username"), form.GetString("password"))

		return loginResultMsg{user: u, err: err}
	}
}

func (m LoginModel) View() string {
	title := "Expenso"
	if m.mode == modeRegister {
		title = "Expenso - Create Account"
	}

	header := lipgloss.NewStyle().Bold(true).Render(title)

	body := m.form.View()

	if m.err != nil {
		errLine := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

		msg := fmt.Sprintf("Error: %v", m.err)
		if errors.Is(m.err, user.ErrInvalidCredentials) {
			msg = "Invalid username or password"
		}

		body = lipgloss.JoinVertical(lipgloss.Left, errLine.Render(msg), "", body)
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", m.ShortHelp()),
	)
}
