package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/ccx/internal/session"
)

// KeyMode represents the keybinding mode for the UI.
type KeyMode string

const (
	// KeyModeVim enables vim-style keybindings (j/k navigation, / search).
	KeyModeVim KeyMode = "vim"
	// KeyModeEmacs enables ctrl/alt chords.
	KeyModeEmacs KeyMode = "emacs"
)

// DefaultKeyMode is the default keybinding mode.
const DefaultKeyMode = KeyModeVim

// ValidKeyModes lists all valid key modes for validation.
var ValidKeyModes = []KeyMode{KeyModeVim, KeyModeEmacs}

// IsValidKeyMode checks if a key mode string is valid.
func IsValidKeyMode(mode string) bool {
	for _, m := range ValidKeyModes {
		if string(m) == mode {
			return true
		}
	}
	return false
}

// KeyMap maps key strings (as reported by tea.KeyPressMsg.String) to
// browsing actions.
type KeyMap map[string]session.Kind

// VimKeyBindings is the default browsing map for vim mode.
func VimKeyBindings() KeyMap {
	return KeyMap{
		"q":     session.ActionQuit,
		"esc":   session.ActionQuit,
		"j":     session.ActionDown,
		"down":  session.ActionDown,
		"k":     session.ActionUp,
		"up":    session.ActionUp,
		"g":     session.ActionTop,
		"home":  session.ActionTop,
		"G":     session.ActionBottom,
		"end":   session.ActionBottom,
		"t":     session.ActionToggleAdvanced,
		"enter": session.ActionDetail,
		"space": session.ActionAdvance,
		" ":     session.ActionAdvance,
		"/":     session.ActionSearch,
		"n":     session.ActionNextMatch,
	}
}

// EmacsKeyBindings is the default browsing map for emacs mode. Arrow keys,
// enter and space keep working so the mode only adds chords.
func EmacsKeyBindings() KeyMap {
	return KeyMap{
		"ctrl+q": session.ActionQuit,
		"esc":    session.ActionQuit,
		"ctrl+n": session.ActionDown,
		"down":   session.ActionDown,
		"ctrl+p": session.ActionUp,
		"up":     session.ActionUp,
		"alt+<":  session.ActionTop,
		"home":   session.ActionTop,
		"alt+>":  session.ActionBottom,
		"end":    session.ActionBottom,
		"ctrl+t": session.ActionToggleAdvanced,
		"enter":  session.ActionDetail,
		"space":  session.ActionAdvance,
		" ":      session.ActionAdvance,
		"ctrl+s": session.ActionSearch,
		"ctrl+r": session.ActionNextMatch,
	}
}

// KeyBindingsFor returns the default map for mode with overrides applied.
// Each override rebinds one action: existing keys for that action are
// removed first, as with a remap in an editor.
func KeyBindingsFor(mode KeyMode, overrides map[string]string) (KeyMap, error) {
	var km KeyMap
	switch mode {
	case KeyModeEmacs:
		km = EmacsKeyBindings()
	case KeyModeVim, "":
		km = VimKeyBindings()
	default:
		return nil, fmt.Errorf("unknown keymap %q (valid: vim, emacs)", mode)
	}
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		key := strings.TrimSpace(overrides[name])
		kind, ok := session.KindFromName(name)
		if !ok || !session.Browsing.Accepts(kind) {
			return nil, fmt.Errorf("unknown action %q in %s key overrides", name, mode)
		}
		if key == "" {
			continue
		}
		for k, v := range km {
			if v == kind {
				delete(km, k)
			}
		}
		km[key] = kind
	}
	return km, nil
}

// KeysFor returns the keys bound to kind, sorted, for help text.
func (km KeyMap) KeysFor(kind session.Kind) []string {
	var keys []string
	for k, v := range km {
		if v == kind && k != " " {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// actionFor maps a key press to a session action for the given mode.
// Ctrl+C is handled by the model before this is consulted.
func actionFor(km KeyMap, mode session.Mode, msg tea.KeyPressMsg) (session.Action, bool) {
	key := msg.String()
	switch mode {
	case session.Browsing:
		kind, ok := km[key]
		if !ok {
			return session.Action{}, false
		}
		return session.Do(kind), true
	case session.SearchEditing:
		switch msg.Code {
		case tea.KeyEscape:
			return session.Do(session.ActionSearchCancel), true
		case tea.KeyEnter:
			return session.Do(session.ActionSearchConfirm), true
		case tea.KeyBackspace:
			return session.Do(session.ActionSearchBackspace), true
		case tea.KeyLeft:
			return session.Do(session.ActionSearchLeft), true
		case tea.KeyRight:
			return session.Do(session.ActionSearchRight), true
		}
		if msg.Mod&(tea.ModCtrl|tea.ModAlt) != 0 || msg.Text == "" {
			return session.Action{}, false
		}
		runes := []rune(msg.Text)
		if len(runes) != 1 {
			return session.Action{}, false
		}
		return session.Insert(runes[0]), true
	case session.Detail:
		switch msg.Code {
		case tea.KeyEscape, tea.KeyEnter:
			return session.Do(session.ActionDetailClose), true
		}
		// The key that opened the inspector also closes it.
		if km[key] == session.ActionDetail {
			return session.Do(session.ActionDetailClose), true
		}
	}
	return session.Action{}, false
}
