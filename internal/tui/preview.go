package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zuo-Peng/logdye/internal/render"
)

// previewRenderedMsg is sent when an async preview render completes.
type previewRenderedMsg struct {
	generation int
	content    string
}

// loadPreviewCmd renders the log with the current settings. The settings map
// is copied so later edits do not race with the render.
func (m model) loadPreviewCmd() tea.Cmd {
	gen := m.generation
	lines := m.lines
	settings := m.snapshot()
	width := m.layout().previewW
	return func() tea.Msg {
		msgs := render.Messages(lines, settings)
		return previewRenderedMsg{
			generation: gen,
			content:    render.Preview(msgs, render.PreviewOptions{Width: width}),
		}
	}
}
