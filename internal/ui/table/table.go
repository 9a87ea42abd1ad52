// Package table is a typed wrapper around the bubbles table that derives its
// rows and column layout from a slice of values.
package table

import (
	"fmt"
	"image/color"

	bubtable "charm.land/bubbles/v2/table"
	"charm.land/lipgloss/v2"
)

// Column and Row are re-exported so callers need not import bubbles.
type (
	Column = bubtable.Column
	Row    = bubtable.Row
)

// LayoutFunc computes columns for the given total width and rows.
type LayoutFunc[V any] func(width int, rows []V) []Column

// Model displays a slice of V. The cursor is driven by the caller; the
// wrapper never moves it on its own.
type Model[V any] struct {
	table  bubtable.Model
	styles bubtable.Styles
	rows   []V

	toRow  func(V) Row
	layout LayoutFunc[V]

	width   int
	height  int
	noColor bool

	headerFG   color.Color
	headerBG   color.Color
	selectedFG color.Color
	selectedBG color.Color
}

// NewModel creates a table that renders each value with toRow and lays
// out columns with layout whenever rows or size change.
func NewModel[V any](layout LayoutFunc[V], toRow func(V) Row) *Model[V] {
	m := &Model[V]{
		toRow:  toRow,
		layout: layout,
		width:  80,
		height: 10,
	}
	t := bubtable.New(
		bubtable.WithColumns(layout(m.width, nil)),
		bubtable.WithFocused(true),
		bubtable.WithHeight(m.height),
		bubtable.WithWidth(m.width),
	)

	s := bubtable.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Bold(true).
		Align(lipgloss.Left).
		PaddingLeft(0).
		PaddingRight(1)
	s.Selected = s.Selected.
		PaddingLeft(0).
		PaddingRight(0)
	s.Cell = lipgloss.NewStyle().
		Align(lipgloss.Left).
		PaddingLeft(0).
		PaddingRight(1)
	t.SetStyles(s)

	m.table = t
	m.styles = s
	return m
}

// SetRows replaces the displayed values and relays out the columns. The
// cursor is clamped to the new row count.
func (m *Model[V]) SetRows(rows []V) {
	m.rows = rows
	tableRows := make([]Row, len(rows))
	for i, v := range rows {
		tableRows[i] = m.toRow(v)
	}
	m.relayout()
	m.table.SetRows(tableRows)
	if len(rows) > 0 && m.Cursor() >= len(rows) {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m *Model[V]) relayout() {
	m.table.SetColumns(m.layout(m.width, m.rows))
}

// Rows returns the displayed values.
func (m *Model[V]) Rows() []V {
	return m.rows
}

// Cursor returns the current cursor position.
func (m *Model[V]) Cursor() int {
	return m.table.Cursor()
}

// SetCursor moves the cursor. Out-of-range positions are ignored.
func (m *Model[V]) SetCursor(pos int) {
	if pos < 0 || pos >= len(m.rows) {
		return
	}
	m.table.SetCursor(pos)
}

// SelectedRow returns the value under the cursor, or nil if there are no rows.
func (m *Model[V]) SelectedRow() *V {
	cursor := m.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[cursor]
}

// SetSize sets the table dimensions. Height includes the header.
func (m *Model[V]) SetSize(width, height int) {
	if width > 0 {
		m.width = width
	}
	if height > 0 {
		m.height = height
	}
	m.table.SetWidth(m.width)
	m.table.SetHeight(m.height)
	m.relayout()
}

// SetNoColor enables/disables color output.
func (m *Model[V]) SetNoColor(noColor bool) {
	m.noColor = noColor
	m.applyColorScheme()
}

// SetColors sets custom theme colors.
func (m *Model[V]) SetColors(headerFG, headerBG, selectedFG, selectedBG color.Color) {
	m.headerFG = headerFG
	m.headerBG = headerBG
	m.selectedFG = selectedFG
	m.selectedBG = selectedBG
	m.applyColorScheme()
}

func (m *Model[V]) applyColorScheme() {
	s := m.styles

	if m.noColor {
		s.Header = s.Header.UnsetForeground().UnsetBackground()
		s.Selected = s.Selected.UnsetForeground().UnsetBackground().Reverse(true)
		s.Cell = s.Cell.UnsetForeground().UnsetBackground()
	} else {
		s.Selected = s.Selected.Reverse(false)
		if m.headerFG != nil {
			s.Header = s.Header.Foreground(m.headerFG)
		}
		if m.headerBG != nil {
			s.Header = s.Header.Background(m.headerBG)
		}
		if m.selectedFG != nil {
			s.Selected = s.Selected.Foreground(m.selectedFG)
		}
		if m.selectedBG != nil {
			s.Selected = s.Selected.Background(m.selectedBG)
		}
	}

	m.table.SetStyles(s)
	m.styles = s
}

// View renders the table to a string.
func (m *Model[V]) View() string {
	return m.table.View()
}

// Height returns the rendered height of the table (including header).
func (m *Model[V]) Height() int {
	return lipgloss.Height(m.View())
}

// Width returns the rendered width of the table.
func (m *Model[V]) Width() int {
	return lipgloss.Width(m.View())
}

func (m *Model[V]) String() string {
	return fmt.Sprintf("Table[rows=%d, cursor=%d, width=%d]", len(m.rows), m.Cursor(), m.width)
}
