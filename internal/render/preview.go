package render

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/logdye/internal/palette"
)

type PreviewOptions struct {
	Width    int  // wrap width (0 = no wrap)
	ShowTime bool // print the message time after the name
}

var timeStyle = lipgloss.NewStyle().Faint(true)

// nameStyle draws the speaker name as a swatch of its color.
func nameStyle(color string) lipgloss.Style {
	fg := "#ffffff"
	if palette.IsLight(color) {
		fg = "#000000"
	}
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(lipgloss.Color(palette.Hex(color))).
		Foreground(lipgloss.Color(fg))
}

// Preview renders messages for a terminal, each speaker in its color.
func Preview(msgs []Message, opts PreviewOptions) string {
	var b strings.Builder
	writeLine := func(s string) {
		for _, wl := range wrapLine(s, opts.Width) {
			b.WriteString(wl)
			b.WriteString("\n")
		}
	}

	for i, m := range msgs {
		if i > 0 {
			b.WriteString("\n")
		}
		header := nameStyle(m.Color).Render(m.Name)
		if opts.ShowTime && m.Time != "" {
			header += " " + timeStyle.Render(m.Time)
		}
		writeLine(header)

		text := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(m.Color)))
		for _, c := range m.Content {
			writeLine("  " + text.Render(c))
		}
	}
	return b.String()
}

// wrapLine breaks a single line into multiple lines that fit within maxWidth
// visible columns, correctly skipping ANSI escape sequences when measuring width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		// check for ANSI escape sequence: ESC[ ... m
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++ // include 'm'
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}

	if len(result) == 0 {
		return []string{""}
	}
	return result
}
