package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadingModel is the neutral placeholder shown while the session is being
// restored. It has no content and offers no navigation.
type LoadingModel struct {
	spinner spinner.Model
}

func NewLoadingModel() *LoadingModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &LoadingModel{spinner: s}
}

func (m *LoadingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *LoadingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m *LoadingModel) View() string {
	return appStyle.Render(m.spinner.View() + " Loading...")
}
