// Package registry owns the sorted entry sequence, the advanced-visibility
// filter derived from it, and the selection over that filtered view.
package registry

import (
	"sort"

	"github.com/oakwood-commons/ccx/internal/cache"
)

// Registry holds every parsed entry in name order plus the visible subset.
// The order and length of the entry sequence never change after New.
type Registry struct {
	entries      []*cache.Entry
	visible      []*cache.Entry
	showAdvanced bool
}

// New builds a registry. Entries are sorted by name; Static entries are
// skipped in case a caller bypassed the parser.
func New(entries []*cache.Entry) *Registry {
	sorted := make([]*cache.Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil || e.Type == cache.Static {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	r := &Registry{entries: sorted}
	r.rebuild()
	return r
}

// rebuild recomputes the visible sequence from scratch.
func (r *Registry) rebuild() {
	visible := make([]*cache.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if !e.Advanced || r.showAdvanced {
			visible = append(visible, e)
		}
	}
	r.visible = visible
}

// Entries returns every entry in registry order.
func (r *Registry) Entries() []*cache.Entry {
	return r.entries
}

// Len returns the number of entries, visible or not.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Visible returns the entries eligible for display, in registry order.
func (r *Registry) Visible() []*cache.Entry {
	return r.visible
}

// VisibleNames returns the names of the visible entries.
func (r *Registry) VisibleNames() []string {
	names := make([]string, len(r.visible))
	for i, e := range r.visible {
		names[i] = e.Name
	}
	return names
}

// ShowAdvanced reports whether advanced entries are visible.
func (r *Registry) ShowAdvanced() bool {
	return r.showAdvanced
}

// SetShowAdvanced changes advanced visibility and rebuilds the visible view.
func (r *Registry) SetShowAdvanced(show bool) {
	if r.showAdvanced == show {
		return
	}
	r.showAdvanced = show
	r.rebuild()
}

// ToggleAdvanced flips advanced visibility.
func (r *Registry) ToggleAdvanced() {
	r.SetShowAdvanced(!r.showAdvanced)
}

// Lookup finds an entry by name.
func (r *Registry) Lookup(name string) (*cache.Entry, bool) {
	i := sort.Search(len(r.entries), func(i int) bool { return r.entries[i].Name >= name })
	if i < len(r.entries) && r.entries[i].Name == name {
		return r.entries[i], true
	}
	return nil, false
}

// IndexOf returns the position of e in the visible sequence, or -1.
func (r *Registry) IndexOf(e *cache.Entry) int {
	if e == nil {
		return -1
	}
	for i, v := range r.visible {
		if v == e {
			return i
		}
	}
	return -1
}

// ModifiedCount counts entries whose value differs from the file.
func (r *Registry) ModifiedCount() int {
	n := 0
	for _, e := range r.entries {
		if e.Modified() {
			n++
		}
	}
	return n
}

// AdvancedCount counts entries flagged advanced.
func (r *Registry) AdvancedCount() int {
	n := 0
	for _, e := range r.entries {
		if e.Advanced {
			n++
		}
	}
	return n
}
