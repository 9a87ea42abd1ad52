package registry

import "github.com/oakwood-commons/ccx/internal/cache"

// None is the selection index when nothing is selected.
const None = -1

// Selection tracks the selected row of a visible sequence of a given length.
// It is None only while that sequence is empty.
type Selection struct {
	index int
	size  int
}

// NewSelection selects the first row of a sequence of length size.
func NewSelection(size int) Selection {
	s := Selection{index: None}
	s.Resize(size)
	return s
}

// Index returns the selected position or None.
func (s Selection) Index() int {
	return s.index
}

// Len returns the length of the sequence the selection ranges over.
func (s Selection) Len() int {
	return s.size
}

// Resize adapts the selection to a sequence of a new length, clamping the
// current index.
func (s *Selection) Resize(size int) {
	s.size = size
	switch {
	case size <= 0:
		s.size = 0
		s.index = None
	case s.index < 0:
		s.index = 0
	case s.index >= size:
		s.index = size - 1
	}
}

// Select moves to i when it is in range.
func (s *Selection) Select(i int) {
	if i < 0 || i >= s.size {
		return
	}
	s.index = i
}

// Next moves down one row, stopping at the last row.
func (s *Selection) Next() {
	if s.size == 0 {
		return
	}
	if s.index < s.size-1 {
		s.index++
	}
}

// Prev moves up one row, stopping at the first row.
func (s *Selection) Prev() {
	if s.size == 0 {
		return
	}
	if s.index > 0 {
		s.index--
	}
}

// First selects the first row.
func (s *Selection) First() {
	if s.size == 0 {
		return
	}
	s.index = 0
}

// Last selects the last row.
func (s *Selection) Last() {
	if s.size == 0 {
		return
	}
	s.index = s.size - 1
}

// Selected returns the selected entry of visible, or nil.
func (s Selection) Selected(visible []*cache.Entry) *cache.Entry {
	if s.index < 0 || s.index >= len(visible) {
		return nil
	}
	return visible[s.index]
}

// Reanchor re-targets the selection after the visible sequence was rebuilt.
// If prev is still visible the selection follows it; otherwise the previous
// numeric index is clamped into the new range.
func (s *Selection) Reanchor(prev *cache.Entry, visible []*cache.Entry) {
	prevIndex := s.index
	s.size = len(visible)
	if s.size == 0 {
		s.index = None
		return
	}
	if prev != nil {
		for i, e := range visible {
			if e == prev {
				s.index = i
				return
			}
		}
	}
	switch {
	case prevIndex < 0:
		s.index = 0
	case prevIndex >= s.size:
		s.index = s.size - 1
	default:
		s.index = prevIndex
	}
}
