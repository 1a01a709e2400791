package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-sweet-shop/internal/service"
	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerUsername = iota
	registerFullName
	registerEmail
	registerPassword
	registerConfirm
)

// RegisterModel is the account creation form. After the account is created
// the user is signed in with the same credentials. If only that sign-in
// fails the user is sent to the login page with a notice.
type RegisterModel struct {
	ctx  context.Context
	auth service.AuthService

	form       inputGroup
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.AuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newInputGroup(
			inputField{label: "Username", placeholder: "username", charLimit: 64},
			inputField{label: "Full name", placeholder: "full name", charLimit: 128},
			inputField{label: "Email", placeholder: "you@example.com", charLimit: 254},
			inputField{label: "Password", placeholder: "at least 6 characters", charLimit: 256, secret: true},
			inputField{label: "Confirm password", placeholder: "repeat password", charLimit: 256, secret: true},
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Field errors come back from the service as
// validation errors and are shown one at a time.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = describeError(msg.err, service.MsgRegistrationFailed)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		if msg.result.Success {
			return m, func() tea.Msg { return authenticatedMsg{} }
		}
		notice := Notice{Text: msg.result.Error, Error: true}
		return m, func() tea.Msg { return NavigateTo{Route: service.RouteLogin, Payload: notice} }
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Route: service.RouteIndex} }
		case key.Matches(msg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(m.request())
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n\n[Creating account...]")
	} else {
		b.WriteString("\n\n[Create account]")
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("CREATE ACCOUNT", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) request() models.RegisterRequest {
	return models.RegisterRequest{
		Username:        m.form.trimmed(registerUsername),
		FullName:        m.form.trimmed(registerFullName),
		Email:           m.form.trimmed(registerEmail),
		Password:        m.form.value(registerPassword),
		ConfirmPassword: m.form.value(registerConfirm),
	}
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		result, err := auth.Register(ctx, req)
		return registerDoneMsg{result: result, err: err}
	}
}
