// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-sweet-shop/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginUsername = iota
	loginPassword
)

// LoginModel is the sign-in form. It runs [service.SessionService.Login] on
// submit. On success it emits authenticatedMsg and [RootModel] moves to the
// user's home view.
type LoginModel struct {
	ctx     context.Context
	session service.SessionService

	form       inputGroup
	submitting bool
	notice     Notice
}

func NewLoginModel(ctx context.Context, session service.SessionService) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		session: session,
		form: newInputGroup(
			inputField{label: "Username", placeholder: "username", charLimit: 64},
			inputField{label: "Password", placeholder: "password", charLimit: 256, secret: true},
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [Notice]      shown above the form, e.g. after the session expired.
//   - loginDoneMsg  clears the submitting state; on failure shows the reason.
//   - esc           back to the menu.
//   - tab/shift+tab move focus between inputs.
//   - enter         submits.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		m.notice = msg
		return m, nil
	case loginDoneMsg:
		m.submitting = false
		if !msg.result.Success {
			m.notice = Notice{Text: msg.result.Error, Error: true}
			return m, nil
		}
		m.form.reset()
		m.notice = Notice{}
		return m, func() tea.Msg { return authenticatedMsg{} }
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			m.notice = Notice{}
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
			m.notice = Notice{}
			m.submitting = true
			return m, m.cmdLogin(m.form.trimmed(loginUsername), m.form.value(loginPassword))
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	if n := renderNotice(m.notice); n != "" {
		b.WriteString(n)
		b.WriteString("\n\n")
	}

	b.WriteString(m.form.view())
	if m.submitting {
		b.WriteString("\n\n[Signing in...]")
	} else {
		b.WriteString("\n\n[Sign in]")
	}

	return renderPage("SIGN IN", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return loginDoneMsg{result: session.Login(ctx, username, password)}
	}
}
