// Package ui is the bubbletea front end of an editing session: it maps key
// presses to session actions and renders the entry table, footer and
// detail inspector.
package ui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/ccx/internal/cache"
	"github.com/oakwood-commons/ccx/internal/session"
	"github.com/oakwood-commons/ccx/internal/ui/table"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// footerLines is the fixed height of the description panel.
	footerLines = 3
	// chromeLines is header + footer + status + help.
	chromeLines = 1 + footerLines + 1 + 1

	typeColumnWidth = 9
	markerWidth     = 1
)

// Options configures a Model.
type Options struct {
	AppName string
	// Source is shown in the title bar, usually the cache file path.
	Source  string
	Theme   Theme
	KeyMode KeyMode
	// Keys overrides the default bindings for KeyMode when non-nil.
	Keys    KeyMap
	NoColor bool
	Width   int
	Height  int
}

// Model is the bubbletea model for one session.
type Model struct {
	sess *session.Session
	tbl  *table.Model[*cache.Entry]

	keys    KeyMap
	keyMode KeyMode
	theme   Theme
	noColor bool

	appName string
	source  string

	width  int
	height int

	status     string
	statusWarn bool
	quitting   bool
}

// NewModel wraps sess for display.
func NewModel(sess *session.Session, opts Options) *Model {
	if sess == nil {
		sess = session.New(nil)
	}
	mode := opts.KeyMode
	if mode == "" {
		mode = DefaultKeyMode
	}
	keys := opts.Keys
	if keys == nil {
		if mode == KeyModeEmacs {
			keys = EmacsKeyBindings()
		} else {
			keys = VimKeyBindings()
		}
	}
	theme := opts.Theme
	if theme == (Theme{}) {
		theme = fallbackDefaultTheme()
	}
	appName := opts.AppName
	if appName == "" {
		appName = "ccx"
	}

	m := &Model{
		sess:    sess,
		tbl:     table.NewModel(entryColumns, entryRow),
		keys:    keys,
		keyMode: mode,
		theme:   theme,
		noColor: opts.NoColor,
		appName: appName,
		source:  opts.Source,
	}
	m.tbl.SetColors(theme.HeaderFG, theme.HeaderBG, theme.SelectedFG, theme.SelectedBG)
	m.tbl.SetNoColor(opts.NoColor)
	m.setSize(opts.Width, opts.Height)
	m.sync()
	return m
}

// Session returns the wrapped session.
func (m *Model) Session() *session.Session { return m.sess }

// Status returns the current status line text.
func (m *Model) Status() string { return m.status }

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool { return m.quitting }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" || msg.Code == 0x03 {
			m.quitting = true
			return m, tea.Quit
		}
		action, ok := actionFor(m.keys, m.sess.Mode(), msg)
		if !ok {
			return m, nil
		}
		res := m.sess.Apply(action)
		if res.Handled {
			m.status = res.Status
			m.statusWarn = res.Warn
		}
		m.sync()
		if res.Quit {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	var content string
	if !m.quitting {
		content = m.render()
	}
	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m *Model) setSize(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	m.width = width
	m.height = height
	m.tbl.SetSize(width, m.bodyHeight())
}

// bodyHeight is the space left for the table or the detail popup.
func (m *Model) bodyHeight() int {
	h := m.height - chromeLines
	if h < 2 {
		return 2
	}
	return h
}

// sync copies the session's visible entries and selection into the table.
func (m *Model) sync() {
	m.tbl.SetRows(m.sess.Visible())
	m.tbl.SetCursor(m.sess.SelectedIndex())
}

// entryColumns sizes the name column to the longest visible name (plus a
// little air) but never lets it squeeze the value column below a third of
// the width.
func entryColumns(width int, rows []*cache.Entry) []table.Column {
	nameW := runewidth.StringWidth("Name")
	for _, e := range rows {
		if w := runewidth.StringWidth(e.Name); w > nameW {
			nameW = w
		}
	}
	nameW += 2
	// one cell of right padding per column
	avail := width - markerWidth - typeColumnWidth - 4
	if maxName := avail * 2 / 3; nameW > maxName {
		nameW = maxName
	}
	if nameW < 4 {
		nameW = 4
	}
	valueW := avail - nameW
	if valueW < 1 {
		valueW = 1
	}
	return []table.Column{
		{Title: "", Width: markerWidth},
		{Title: "Name", Width: nameW},
		{Title: "Type", Width: typeColumnWidth},
		{Title: "Value", Width: valueW},
	}
}

func entryRow(e *cache.Entry) table.Row {
	marker := " "
	if e.Modified() {
		marker = "*"
	}
	return table.Row{marker, e.Name, e.Type.String(), e.Value}
}
