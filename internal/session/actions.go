package session

import (
	"fmt"

	"github.com/oakwood-commons/ccx/internal/cache"
	"github.com/oakwood-commons/ccx/internal/search"
)

// Kind identifies an action.
type Kind int

const (
	ActionNone Kind = iota
	ActionQuit
	ActionDown
	ActionUp
	ActionTop
	ActionBottom
	ActionToggleAdvanced
	ActionDetail
	ActionAdvance
	ActionSearch
	ActionNextMatch

	ActionSearchInsert
	ActionSearchBackspace
	ActionSearchLeft
	ActionSearchRight
	ActionSearchCancel
	ActionSearchConfirm

	ActionDetailClose
)

var kindNames = map[Kind]string{
	ActionNone:            "none",
	ActionQuit:            "quit",
	ActionDown:            "down",
	ActionUp:              "up",
	ActionTop:             "top",
	ActionBottom:          "bottom",
	ActionToggleAdvanced:  "toggle_advanced",
	ActionDetail:          "detail",
	ActionAdvance:         "advance",
	ActionSearch:          "search",
	ActionNextMatch:       "next_match",
	ActionSearchInsert:    "search_insert",
	ActionSearchBackspace: "search_backspace",
	ActionSearchLeft:      "search_left",
	ActionSearchRight:     "search_right",
	ActionSearchCancel:    "search_cancel",
	ActionSearchConfirm:   "search_confirm",
	ActionDetailClose:     "detail_close",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindFromName resolves the config name of an action.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name && k != ActionNone {
			return k, true
		}
	}
	return ActionNone, false
}

// Action is a single input event after key mapping.
type Action struct {
	Kind Kind
	// Rune is the character for ActionSearchInsert.
	Rune rune
}

// Do wraps a kind without payload.
func Do(k Kind) Action { return Action{Kind: k} }

// Insert wraps a search character.
func Insert(r rune) Action { return Action{Kind: ActionSearchInsert, Rune: r} }

// Accepts reports whether mode m accepts action kind k.
func (m Mode) Accepts(k Kind) bool {
	switch m {
	case Browsing:
		switch k {
		case ActionQuit, ActionDown, ActionUp, ActionTop, ActionBottom,
			ActionToggleAdvanced, ActionDetail, ActionAdvance, ActionSearch, ActionNextMatch:
			return true
		}
	case SearchEditing:
		switch k {
		case ActionSearchInsert, ActionSearchBackspace, ActionSearchLeft, ActionSearchRight,
			ActionSearchCancel, ActionSearchConfirm:
			return true
		}
	case Detail:
		return k == ActionDetailClose
	}
	return false
}

// Apply runs a over the session. Actions the current mode does not accept
// are ignored.
func (s *Session) Apply(a Action) Result {
	if !s.mode.Accepts(a.Kind) {
		return Result{}
	}
	switch s.mode {
	case Browsing:
		return s.browse(a)
	case SearchEditing:
		return s.editSearch(a)
	case Detail:
		s.mode = Browsing
		return Result{Handled: true}
	}
	return Result{}
}

func (s *Session) browse(a Action) Result {
	moved := len(s.reg.Visible()) > 0
	switch a.Kind {
	case ActionQuit:
		return Result{Handled: true, Quit: true}
	case ActionDown:
		s.sel.Next()
	case ActionUp:
		s.sel.Prev()
	case ActionTop:
		s.sel.First()
	case ActionBottom:
		s.sel.Last()
	case ActionToggleAdvanced:
		s.SetShowAdvanced(!s.reg.ShowAdvanced())
		state := "hidden"
		if s.reg.ShowAdvanced() {
			state = "shown"
		}
		return Result{Handled: true, Status: "advanced entries " + state}
	case ActionDetail:
		if s.Selected() == nil {
			return Result{}
		}
		s.mode = Detail
		return Result{Handled: true}
	case ActionAdvance:
		return s.advance()
	case ActionSearch:
		s.query.Reset()
		s.mode = SearchEditing
		return Result{Handled: true}
	case ActionNextMatch:
		return s.nextMatch()
	default:
		return Result{}
	}
	return Result{Handled: moved}
}

func (s *Session) advance() Result {
	e := s.Selected()
	if e == nil {
		return Result{}
	}
	switch e.Type {
	case cache.Bool, cache.Enum:
		if !e.Advance() {
			return Result{Handled: true, Status: fmt.Sprintf("%s unchanged", e.Name)}
		}
		return Result{Handled: true, Status: fmt.Sprintf("%s = %s", e.Name, e.Value)}
	case cache.String, cache.FilePath, cache.DirPath, cache.Static:
		return Result{Handled: true, Warn: true, Status: fmt.Sprintf("%s is a %s entry and cannot be toggled", e.Name, e.Type)}
	}
	return Result{}
}

func (s *Session) nextMatch() Result {
	query := s.query.String()
	if query == "" {
		return Result{}
	}
	idx, ok := search.FindNext(s.reg.VisibleNames(), s.sel.Index(), query)
	if !ok {
		return Result{Handled: true, Warn: true, Status: fmt.Sprintf("no match for %q", query)}
	}
	s.sel.Select(idx)
	return Result{Handled: true}
}

func (s *Session) editSearch(a Action) Result {
	switch a.Kind {
	case ActionSearchInsert:
		s.query.Insert(a.Rune)
	case ActionSearchBackspace:
		s.query.Backspace()
	case ActionSearchLeft:
		s.query.Left()
	case ActionSearchRight:
		s.query.Right()
	case ActionSearchCancel:
		s.query.Reset()
		s.mode = Browsing
	case ActionSearchConfirm:
		s.mode = Browsing
		res := s.nextMatch()
		res.Handled = true
		return res
	default:
		return Result{}
	}
	return Result{Handled: true}
}
