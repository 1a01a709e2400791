package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-sweet-shop/models"
	tea "github.com/charmbracelet/bubbletea"
)

const uiDivider = "──────────────────────────────────────────────────────"

// statusTTL is how long a transient notice stays on screen.
const statusTTL = 4 * time.Second

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return appStyle.Render(b.String())
}

func renderNotice(n Notice) string {
	if n.Text == "" {
		return ""
	}
	if n.Error {
		return errorStyle.Render("Error: " + n.Text)
	}
	return okStyle.Render(n.Text)
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func formatPrice(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

func stockLabel(s models.Sweet) string {
	switch {
	case s.Quantity == 0:
		return outOfStockStyle.Render("out of stock")
	case s.Quantity < models.LowStockThreshold:
		return lowStockStyle.Render(fmt.Sprintf("%d left", s.Quantity))
	default:
		return fmt.Sprintf("%d in stock", s.Quantity)
	}
}

func categoryLabel(category string) string {
	if category == "" {
		return "All"
	}
	return category
}

// nextCategory cycles "" -> models.Categories... -> "".
func nextCategory(current string) string {
	for i, c := range models.Categories {
		if c == current {
			if i+1 < len(models.Categories) {
				return models.Categories[i+1]
			}
			return ""
		}
	}
	return models.Categories[0]
}

// clearStatusAfter fires a clearStatusMsg tagged with seq so a newer notice
// is not wiped by an older timer.
func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}
