package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// linesPerItem is the number of terminal lines each speaker occupies.
const linesPerItem = 2

// renderList renders the left panel: one entry per speaker with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.ids) == 0 {
		return styleDetail.
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No speakers")
	}

	var lines []string
	for i, id := range m.ids {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, m.formatSpeaker(id, width, i == m.cursor)...)
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// formatSpeaker formats a speaker as two lines:
//
//	line 1: [>] swatch  display name
//	line 2:    identity id and names seen (dimmed)
func (m model) formatSpeaker(id string, width int, selected bool) []string {
	s := m.settings[id]

	nameMax := width - 2 - 3 - 4
	if nameMax < 0 {
		nameMax = 0
	}
	name := s.DisplayName
	if runewidth.StringWidth(name) > nameMax {
		name = runewidth.Truncate(name, nameMax, "…")
	}

	style := styleSpeaker
	switch {
	case !s.Enabled:
		style = styleSpeakerHidden
	case selected:
		style = styleSpeakerCursor
	}

	line1 := fmt.Sprintf("%s %s", swatch(s.Color), style.Render(name))
	if selected {
		line1 = styleSpeakerCursor.Render("> ") + line1
	} else {
		line1 = "  " + line1
	}

	detail := id
	if names := m.names[id]; len(names) > 0 {
		detail += " " + strings.Join(names, "/")
	}
	detailMax := width - 4
	if detailMax < 0 {
		detailMax = 0
	}
	if runewidth.StringWidth(detail) > detailMax {
		detail = runewidth.Truncate(detail, detailMax, "")
	}
	line2 := "    " + styleDetail.Render(detail)

	return []string{line1, line2}
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
