package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputField describes one labelled text input.
type inputField struct {
	label       string
	placeholder string
	charLimit   int
	secret      bool
}

// inputGroup is an ordered set of text inputs with a single focus.
type inputGroup struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newInputGroup(fields ...inputField) inputGroup {
	g := inputGroup{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.Width = 40
		if f.charLimit > 0 {
			in.CharLimit = f.charLimit
		}
		if f.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		g.labels[i] = f.label
		g.inputs[i] = in
	}
	if len(g.inputs) > 0 {
		g.inputs[0].Focus()
	}
	return g
}

func (g *inputGroup) value(i int) string {
	return g.inputs[i].Value()
}

func (g *inputGroup) trimmed(i int) string {
	return strings.TrimSpace(g.inputs[i].Value())
}

func (g *inputGroup) setValue(i int, v string) {
	g.inputs[i].SetValue(v)
}

func (g *inputGroup) next() {
	g.inputs[g.focus].Blur()
	g.focus = (g.focus + 1) % len(g.inputs)
	g.inputs[g.focus].Focus()
}

func (g *inputGroup) prev() {
	g.inputs[g.focus].Blur()
	g.focus = (g.focus - 1 + len(g.inputs)) % len(g.inputs)
	g.inputs[g.focus].Focus()
}

func (g *inputGroup) reset() {
	for i := range g.inputs {
		g.inputs[i].SetValue("")
		g.inputs[i].Blur()
	}
	g.focus = 0
	g.inputs[0].Focus()
}

// update forwards msg to the focused input.
func (g *inputGroup) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	g.inputs[g.focus], cmd = g.inputs[g.focus].Update(msg)
	return cmd
}

// view renders the group as a two-column table.
func (g *inputGroup) view() string {
	width := len("Field")
	for _, l := range g.labels {
		width = max(width, len(l))
	}

	var b strings.Builder
	b.WriteString(padRight("Field", width))
	b.WriteString(" │ Value\n")
	b.WriteString(strings.Repeat("─", width+1))
	b.WriteString("┼")
	b.WriteString(strings.Repeat("─", 44))
	b.WriteString("\n")
	for i, in := range g.inputs {
		b.WriteString(padRight(g.labels[i], width))
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
