package ui

import (
	"context"
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"
)

// TerminalSize reports the size of stdout, falling back to 80x24 when stdout
// is not a terminal. Explicit positive width/height win.
func TerminalSize(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if width <= 0 {
				width = w
			}
			if height <= 0 {
				height = h
			}
		}
	}
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// RunModel starts the bubbletea program for m after replaying startKeys.
// The program resizes m from the terminal's WindowSizeMsg; extra
// ProgramOptions (e.g., custom IO) are passed through to tea.NewProgram.
func RunModel(ctx context.Context, m *Model, startKeys []string, opts ...tea.ProgramOption) error {
	ApplyStartupKeys(m, startKeys)
	if m.quitting {
		return nil
	}
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
