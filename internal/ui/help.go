package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay centred on the screen.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	full := m.help
	full.ShowAll = true
	b.WriteString(full.View(m.keys))
	b.WriteString("\n\n")

	b.WriteString(styles.AccentText.Bold(true).Render("Markers"))
	b.WriteString("\n")
	for _, mark := range []Mark{MarkVisited, MarkNext, MarkAhead, MarkPending} {
		b.WriteString(styles.MarkStyle(mark).Width(3).Render(mark.Glyph()))
		b.WriteString(styles.Text.Render(mark.String()))
		b.WriteString("\n")
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Frame)).
		Padding(1, 2).
		Width(44).
		Render(strings.TrimRight(b.String(), "\n"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Screen)),
	)
}
