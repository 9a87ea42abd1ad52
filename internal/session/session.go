// Package session is the interaction state machine that routes user actions to
// the registry, selection, search buffer and value mutators.
package session

import (
	"fmt"

	"github.com/oakwood-commons/ccx/internal/cache"
	"github.com/oakwood-commons/ccx/internal/registry"
	"github.com/oakwood-commons/ccx/internal/search"
)

// Mode gates which actions are accepted.
type Mode int

const (
	// Browsing is the initial mode: navigation, mutation and mode switches.
	Browsing Mode = iota
	// SearchEditing accepts only query editing, cancel and confirm.
	SearchEditing
	// Detail is a read-only inspector of the selected entry.
	Detail
)

func (m Mode) String() string {
	switch m {
	case Browsing:
		return "browse"
	case SearchEditing:
		return "search"
	case Detail:
		return "detail"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Result describes the outcome of Apply.
type Result struct {
	// Handled is false when the current mode rejected the action or it had
	// nothing to act on.
	Handled bool
	// Quit asks the caller to end the session.
	Quit bool
	// Status is a short human readable note for a status line.
	Status string
	// Warn marks Status as a refusal or a miss rather than a confirmation.
	Warn bool
}

// Session owns all view state of one interactive run.
type Session struct {
	reg     *registry.Registry
	sel     registry.Selection
	// query survives a confirmed search so NextMatch can repeat it; entering
	// search mode or cancelling clears it.
	query   search.Query
	mode    Mode
	// hidden is the entry a visibility toggle hid while it was selected, and
	// clamped is where the selection landed instead. Showing the entry again
	// restores it while the selection is still on clamped.
	hidden  *cache.Entry
	clamped *cache.Entry
}

// New starts a session in Browsing mode over reg.
func New(reg *registry.Registry) *Session {
	if reg == nil {
		reg = registry.New(nil)
	}
	return &Session{
		reg:  reg,
		sel:  registry.NewSelection(len(reg.Visible())),
		mode: Browsing,
	}
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Registry returns the underlying registry.
func (s *Session) Registry() *registry.Registry { return s.reg }

// Visible returns the visible entries.
func (s *Session) Visible() []*cache.Entry { return s.reg.Visible() }

// SelectedIndex returns the selected visible row or registry.None.
func (s *Session) SelectedIndex() int { return s.sel.Index() }

// Selected returns the selected entry, or nil.
func (s *Session) Selected() *cache.Entry { return s.sel.Selected(s.reg.Visible()) }

// Query returns the search buffer.
func (s *Session) Query() *search.Query { return &s.query }

// ShowAdvanced reports whether advanced entries are visible.
func (s *Session) ShowAdvanced() bool { return s.reg.ShowAdvanced() }

// SetShowAdvanced changes advanced visibility and re-anchors the selection.
func (s *Session) SetShowAdvanced(show bool) {
	prev := s.Selected()
	target := prev
	if s.hidden != nil && prev == s.clamped {
		target = s.hidden
	}
	s.hidden, s.clamped = nil, nil

	s.reg.SetShowAdvanced(show)
	visible := s.reg.Visible()
	s.sel.Reanchor(target, visible)
	if target != nil && s.reg.IndexOf(target) < 0 {
		s.hidden, s.clamped = target, s.Selected()
	}
}
