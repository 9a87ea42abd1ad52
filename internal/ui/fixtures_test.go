package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/ccx/internal/cache"
	"github.com/oakwood-commons/ccx/internal/registry"
	"github.com/oakwood-commons/ccx/internal/session"
)

const fixtureCache = `# This is the CMakeCache file.
# For build in directory: /tmp/build

//Choose the type of build.
CMAKE_BUILD_TYPE:STRING=Debug
//Build the testing tree.
BUILD_TESTING:BOOL=ON
//Install path prefix, prepended onto install directories.
CMAKE_INSTALL_PREFIX:PATH=/usr/local
//CXX compiler
CMAKE_CXX_COMPILER:FILEPATH=/usr/bin/c++
//If this value is on, makefiles will be generated without the
// .SILENT directive.
CMAKE_VERBOSE_MAKEFILE:BOOL=FALSE
//Value Computed by CMake
Demo_BINARY_DIR:STATIC=/tmp/build

########################
# INTERNAL cache entries
########################

CMAKE_BUILD_TYPE-STRINGS:INTERNAL=Debug;Release;RelWithDebInfo;MinSizeRel
CMAKE_VERBOSE_MAKEFILE-ADVANCED:INTERNAL=1
CMAKE_CXX_COMPILER-ADVANCED:INTERNAL=1
`

// Visible without advanced entries, in order:
// BUILD_TESTING, CMAKE_BUILD_TYPE, CMAKE_INSTALL_PREFIX.

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	entries, err := cache.Parse(fixtureCache)
	require.NoError(t, err)
	if opts.Width == 0 {
		opts.Width = 100
	}
	if opts.Height == 0 {
		opts.Height = 20
	}
	opts.NoColor = true
	return NewModel(session.New(registry.New(entries)), opts)
}

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func keyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func press(m *Model, msgs ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(keyRune(r))
	}
}

func stripped(s string) string {
	return ansi.Strip(s)
}
