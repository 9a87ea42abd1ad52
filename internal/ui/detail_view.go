package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

const maxDetailWidth = 72

// renderDetail draws a read-only inspector for the selected entry, centered
// in the body area.
func (m *Model) renderDetail() string {
	h := m.bodyHeight()
	e := m.sess.Selected()
	if e == nil {
		return padLines("", h)
	}

	w := m.width - 4
	if w > maxDetailWidth {
		w = maxDetailWidth
	}
	if w < 20 {
		w = 20
	}

	label := m.style(m.theme.HelpKey, nil).Bold(true)
	field := func(name, value string) string {
		return label.Render(padRight(name+":", 10)) + value
	}

	rows := []string{
		m.style(m.theme.NameColor, nil).Bold(true).Render(e.Name),
		"",
		field("Type", e.Type.String()),
		field("Value", e.Value),
	}
	if e.Modified() {
		rows = append(rows, field("Original", e.Original()))
	}
	if len(e.Allowed) > 0 {
		rows = append(rows, field("Allowed", strings.Join(e.Allowed, ", ")))
	}
	advanced := "no"
	if e.Advanced {
		advanced = "yes"
	}
	rows = append(rows, field("Advanced", advanced))
	if desc := strings.TrimSpace(e.Description); desc != "" {
		rows = append(rows, "", desc)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(w)
	if !m.noColor {
		box = box.BorderForeground(m.theme.BorderColor)
	}
	popup := box.Render(strings.Join(rows, "\n"))
	return padLines(lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, popup), h)
}

func padRight(s string, n int) string {
	if pad := n - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
