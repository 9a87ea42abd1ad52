package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// ApplyStartupKeys feeds scripted key presses to m before the program starts.
// Tokens are either literal text, typed rune by rune, or Vim-style key names
// in angle brackets ("<CR>", "<Esc>", "<Space>", "<Down>"); both may be mixed
// in one token ("/CMAKE<CR>"). A leading backslash forces the whole token to
// be literal. Processing stops once the model quits.
func ApplyStartupKeys(m *Model, keys []string) {
	if m == nil {
		return
	}
	send := func(msg tea.KeyPressMsg) bool {
		if m.quitting {
			return false
		}
		m.Update(msg)
		return true
	}
	sendText := func(text string) bool {
		for _, r := range text {
			if !send(tea.KeyPressMsg{Code: r, Text: string(r)}) {
				return false
			}
		}
		return true
	}

	for _, raw := range keys {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		if strings.HasPrefix(token, `\`) {
			if !sendText(strings.TrimPrefix(token, `\`)) {
				return
			}
			continue
		}
		for _, seg := range parseTokenSegments(token) {
			if !seg.isKey {
				if !sendText(seg.text) {
					return
				}
				continue
			}
			msgs, ok := keyMsgsFromToken(seg.text)
			if !ok {
				// unknown <...> names are typed literally
				if !sendText(seg.text) {
					return
				}
				continue
			}
			for _, msg := range msgs {
				if !send(msg) {
					return
				}
			}
		}
	}
}

type tokenSegment struct {
	text  string
	isKey bool
}

// parseTokenSegments splits "<F1>abc<CR>" into key and literal segments.
func parseTokenSegments(token string) []tokenSegment {
	var segments []tokenSegment
	remaining := token
	for remaining != "" {
		start := strings.Index(remaining, "<")
		if start == -1 {
			segments = append(segments, tokenSegment{text: remaining})
			break
		}
		if start > 0 {
			segments = append(segments, tokenSegment{text: remaining[:start]})
		}
		end := strings.Index(remaining[start:], ">")
		if end == -1 {
			segments = append(segments, tokenSegment{text: remaining[start:]})
			break
		}
		segments = append(segments, tokenSegment{text: remaining[start : start+end+1], isKey: true})
		remaining = remaining[start+end+1:]
	}
	return segments
}

// keyMsgsFromToken parses a Vim-like key name such as "<Esc>" or "<C-n>".
func keyMsgsFromToken(token string) ([]tea.KeyPressMsg, bool) {
	if !strings.HasPrefix(token, "<") || !strings.HasSuffix(token, ">") {
		return nil, false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(token, "<"), ">")
	lower := strings.ToLower(inner)
	switch lower {
	case "esc", "c-[", "escape":
		return []tea.KeyPressMsg{{Code: tea.KeyEscape}}, true
	case "cr", "enter", "return":
		return []tea.KeyPressMsg{{Code: tea.KeyEnter}}, true
	case "tab":
		return []tea.KeyPressMsg{{Code: tea.KeyTab}}, true
	case "space":
		return []tea.KeyPressMsg{{Code: ' ', Text: " "}}, true
	case "bs", "backspace":
		return []tea.KeyPressMsg{{Code: tea.KeyBackspace}}, true
	case "left":
		return []tea.KeyPressMsg{{Code: tea.KeyLeft}}, true
	case "right":
		return []tea.KeyPressMsg{{Code: tea.KeyRight}}, true
	case "up":
		return []tea.KeyPressMsg{{Code: tea.KeyUp}}, true
	case "down":
		return []tea.KeyPressMsg{{Code: tea.KeyDown}}, true
	case "home":
		return []tea.KeyPressMsg{{Code: tea.KeyHome}}, true
	case "end":
		return []tea.KeyPressMsg{{Code: tea.KeyEnd}}, true
	case "lt":
		return []tea.KeyPressMsg{{Code: '<', Text: "<"}}, true
	}
	// <C-x> and <M-x> chords
	if len(lower) == 3 && lower[1] == '-' {
		r := rune(inner[2])
		switch lower[0] {
		case 'c':
			return []tea.KeyPressMsg{{Code: rune(lower[2]), Mod: tea.ModCtrl}}, true
		case 'm', 'a':
			return []tea.KeyPressMsg{{Code: r, Mod: tea.ModAlt}}, true
		}
	}
	return nil, false
}
