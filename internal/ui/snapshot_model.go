package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SnapshotConfig configures a one-frame render.
type SnapshotConfig struct {
	Width     int
	Height    int
	StartKeys []string
}

// RenderSnapshot applies cfg.StartKeys to m and returns the resulting frame
// as plain text when the model has color disabled, or with ANSI styling
// otherwise. The frame is padded to exactly cfg.Height lines.
func RenderSnapshot(m *Model, cfg SnapshotConfig) string {
	if cfg.Width > 0 || cfg.Height > 0 {
		m.setSize(cfg.Width, cfg.Height)
	}
	ApplyStartupKeys(m, cfg.StartKeys)
	view := m.render()
	if m.noColor {
		view = ansi.Strip(view)
	}
	return padSnapshotHeight(view, m.height, m.width)
}

func padSnapshotHeight(view string, height, width int) string {
	if height <= 0 {
		return view
	}
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
	if len(lines) >= height {
		return strings.Join(lines[:height], "\n")
	}
	padLine := " "
	if width > 1 {
		padLine = strings.Repeat(" ", width)
	}
	for len(lines) < height {
		lines = append(lines, padLine)
	}
	return strings.Join(lines, "\n")
}
