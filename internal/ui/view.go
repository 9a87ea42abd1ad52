package ui

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/oakwood-commons/ccx/internal/cache"
	"github.com/oakwood-commons/ccx/internal/session"
)

func (m *Model) style(fg, bg color.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if m.noColor {
		return s
	}
	if fg != nil {
		s = s.Foreground(fg)
	}
	if bg != nil {
		s = s.Background(bg)
	}
	return s
}

func (m *Model) render() string {
	var body string
	if m.sess.Mode() == session.Detail {
		body = m.renderDetail()
	} else {
		body = m.renderTable()
	}
	return strings.Join([]string{
		m.renderHeader(),
		body,
		m.renderFooter(),
		m.renderStatus(),
		m.renderHelp(),
	}, "\n")
}

// fitLine truncates s to the model width and pads it so backgrounds span
// the full line.
func (m *Model) fitLine(s string) string {
	s = ansi.Truncate(s, m.width, "…")
	if pad := m.width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func (m *Model) renderHeader() string {
	reg := m.sess.Registry()
	title := " " + m.appName
	if m.source != "" {
		title += "  " + m.source
	}
	advanced := "hidden"
	if reg.ShowAdvanced() {
		advanced = "shown"
	}
	counts := fmt.Sprintf("%d entries  %d modified  advanced %s ", len(reg.Visible()), reg.ModifiedCount(), advanced)
	// Long paths give way to the counts.
	if room := m.width - lipgloss.Width(counts) - 1; lipgloss.Width(title) > room && room > len(m.appName)+2 {
		title = ansi.Truncate(title, room, "…")
	}
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(counts)
	line := title
	if gap > 0 {
		line += strings.Repeat(" ", gap) + counts
	}
	return m.style(m.theme.HeaderFG, m.theme.HeaderBG).Bold(true).Render(m.fitLine(line))
}

func (m *Model) renderTable() string {
	h := m.bodyHeight()
	if len(m.sess.Visible()) == 0 {
		msg := "no entries"
		if m.sess.Registry().Len() > 0 {
			msg = "no entries (press " + m.firstKey(session.ActionToggleAdvanced) + " to show advanced entries)"
		}
		return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, m.style(m.theme.FooterFG, nil).Render(msg))
	}
	return padLines(m.tbl.View(), h)
}

// renderFooter shows the search prompt while editing a query, and otherwise
// the selected entry's description and how it can be changed.
func (m *Model) renderFooter() string {
	base := m.style(m.theme.FooterFG, m.theme.FooterBG)
	lines := make([]string, 0, footerLines)

	if m.sess.Mode() == session.SearchEditing {
		before, after := m.sess.Query().Split()
		cursor := " "
		if after != "" {
			r := []rune(after)
			cursor, after = string(r[0]), string(r[1:])
		}
		var caret string
		if m.noColor {
			caret = "_"
			if cursor != " " {
				caret = cursor
			}
		} else {
			caret = lipgloss.NewStyle().Reverse(true).Render(cursor)
		}
		lines = append(lines, "Search: /"+before+caret+after)
	} else if e := m.sess.Selected(); e != nil {
		lines = append(lines, m.style(m.theme.NameColor, m.theme.FooterBG).Bold(true).Render(e.Name))
		desc := strings.TrimSpace(e.Description)
		if desc == "" {
			desc = "(no description)"
		}
		lines = append(lines, desc, entryHint(e))
	}

	out := make([]string, footerLines)
	for i := range out {
		var s string
		if i < len(lines) {
			s = lines[i]
		}
		out[i] = base.Render(m.fitLine(" " + s))
	}
	return strings.Join(out, "\n")
}

// entryHint describes how the selected entry responds to the advance key.
func entryHint(e *cache.Entry) string {
	switch e.Type {
	case cache.Enum:
		if len(e.Allowed) == 0 {
			return "Enum without values"
		}
		return "Possible values: " + strings.Join(e.Allowed, ", ")
	case cache.Bool:
		return "Boolean: space toggles"
	case cache.String, cache.FilePath, cache.DirPath:
		return "Read-only " + strings.ToLower(e.Type.String()) + " value"
	case cache.Static:
		return ""
	}
	return ""
}

func (m *Model) renderStatus() string {
	fg := m.theme.StatusColor
	if m.statusWarn {
		fg = m.theme.StatusError
	}
	text := m.status
	if text == "" {
		if n := m.sess.Registry().ModifiedCount(); n > 0 {
			text = fmt.Sprintf("%d modified", n)
		}
	}
	return m.style(fg, nil).Render(m.fitLine(" " + text))
}

var helpOrder = []struct {
	kind  session.Kind
	label string
}{
	{session.ActionQuit, "quit"},
	{session.ActionDown, "down"},
	{session.ActionUp, "up"},
	{session.ActionAdvance, "toggle"},
	{session.ActionDetail, "detail"},
	{session.ActionSearch, "search"},
	{session.ActionNextMatch, "next"},
	{session.ActionToggleAdvanced, "advanced"},
	{session.ActionTop, "top"},
	{session.ActionBottom, "bottom"},
}

// aliasKeys are shown in help only when an action has no other binding.
var aliasKeys = map[string]bool{
	"esc": true, "up": true, "down": true, "home": true, "end": true,
}

func (m *Model) firstKey(kind session.Kind) string {
	keys := m.keys.KeysFor(kind)
	for _, k := range keys {
		if !aliasKeys[k] {
			return k
		}
	}
	if len(keys) > 0 {
		return keys[0]
	}
	return ""
}

func (m *Model) renderHelp() string {
	var pairs [][2]string
	switch m.sess.Mode() {
	case session.SearchEditing:
		pairs = [][2]string{{"enter", "confirm"}, {"esc", "cancel"}, {"←/→", "move"}, {"backspace", "delete"}}
	case session.Detail:
		pairs = [][2]string{{"enter/esc", "close"}}
	default:
		for _, h := range helpOrder {
			if k := m.firstKey(h.kind); k != "" {
				pairs = append(pairs, [2]string{k, h.label})
			}
		}
	}
	keyStyle := m.style(m.theme.HelpKey, nil).Bold(true)
	valStyle := m.style(m.theme.HelpValue, nil)
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, keyStyle.Render(p[0])+" "+valStyle.Render(p[1]))
	}
	return m.fitLine(" " + strings.Join(parts, "  "))
}

func padLines(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
