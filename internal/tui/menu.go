package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sweet-shop/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	title string
	route service.Route
}

// MenuModel is the landing page for visitors without a session.
type MenuModel struct {
	items  []menuItem
	idx    int
	notice Notice
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{title: "Sign in", route: service.RouteLogin},
			{title: "Create account", route: service.RouteRegister},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		m.notice = msg
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			route := m.items[m.idx].route
			m.notice = Notice{}
			return m, func() tea.Msg { return NavigateTo{Route: route} }
		}
	}
	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if n := renderNotice(m.notice); n != "" {
		b.WriteString(n)
		b.WriteString("\n\n")
	}

	b.WriteString("Welcome to the Sweet Shop \U0001F36C\n\n")

	width := 0
	for _, item := range m.items {
		width = max(width, lipgloss.Width(item.title))
	}
	for i, item := range m.items {
		cursor := " "
		line := fmt.Sprintf("%s %d │ %-*s", cursor, i+1, width, item.title)
		if i == m.idx {
			line = selectedStyle.Render(fmt.Sprintf("> %d │ %-*s", i+1, width, item.title))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return renderPage("SWEET SHOP", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
