package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	outOfStockStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	lowStockStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
