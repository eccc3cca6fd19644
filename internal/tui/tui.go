package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zuo-Peng/logdye/internal/group"
	"github.com/Zuo-Peng/logdye/internal/palette"
	"github.com/Zuo-Peng/logdye/internal/store"
)

// Input is what the configuration screen edits.
type Input struct {
	Identities []group.Identity
	Lines      []group.Line
	Settings   map[string]store.Setting // must hold a setting for every identity
	Palette    palette.Palette
}

// Result is the outcome of the configuration screen.
type Result struct {
	Settings map[string]store.Setting
	Saved    bool // false when the user cancelled
}

type model struct {
	ids      []string
	names    map[string][]string
	lines    []group.Line
	settings map[string]store.Setting
	palette  palette.Palette

	cursor     int
	listOffset int
	renaming   bool
	input      textinput.Model
	preview    viewport.Model
	generation int // bumped on every settings change to drop stale previews
	width      int
	height     int
	ready      bool
	quitting   bool
	saved      bool
}

func newModel(in Input) model {
	ti := textinput.New()
	ti.Placeholder = "display name"
	ti.Prompt = "rename> "
	ti.PromptStyle = styleRenamePrompt
	ti.TextStyle = styleRenameText
	ti.CharLimit = 64

	m := model{
		names:    make(map[string][]string, len(in.Identities)),
		lines:    in.Lines,
		settings: make(map[string]store.Setting, len(in.Settings)),
		palette:  in.Palette,
		input:    ti,
		preview:  viewport.New(0, 0),
	}
	for _, ident := range in.Identities {
		m.ids = append(m.ids, ident.ID)
		m.names[ident.ID] = ident.Names
	}
	for id, s := range in.Settings {
		m.settings[id] = s
	}
	return m
}

// Run starts the configuration screen and blocks until it exits.
func Run(in Input) (Result, error) {
	p := tea.NewProgram(newModel(in), tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: %w", err)
	}
	fm := finalModel.(model)
	return Result{Settings: fm.snapshot(), Saved: fm.saved}, nil
}

func (m model) snapshot() map[string]store.Setting {
	out := make(map[string]store.Setting, len(m.settings))
	for id, s := range m.settings {
		out[id] = s
	}
	return out
}

func (m model) Init() tea.Cmd {
	return m.loadPreviewCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		l := m.layout()
		m.preview = viewport.New(l.previewW, l.panelH)
		m.generation++
		return m, m.loadPreviewCmd()

	case tea.KeyMsg:
		if m.renaming {
			return m.updateRename(msg)
		}
		half := m.layout().panelH / 2
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Save):
			m.saved = true
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			m.move(-1)

		case key.Matches(msg, keys.Down):
			m.move(1)

		case key.Matches(msg, keys.Toggle):
			return m.edit(func(s *store.Setting) { s.Enabled = !s.Enabled })

		case key.Matches(msg, keys.ColorNext):
			return m.edit(func(s *store.Setting) { s.Color = m.palette.Next(s.Color, 1) })

		case key.Matches(msg, keys.ColorPrev):
			return m.edit(func(s *store.Setting) { s.Color = m.palette.Next(s.Color, -1) })

		case key.Matches(msg, keys.Rename):
			if id, ok := m.current(); ok {
				m.renaming = true
				m.input.SetValue(m.settings[id].DisplayName)
				m.input.CursorEnd()
				return m, m.input.Focus()
			}

		case key.Matches(msg, keys.PreviewUp):
			m.preview.LineUp(half)

		case key.Matches(msg, keys.PreviewDn):
			m.preview.LineDown(half)

		case key.Matches(msg, keys.PageUp):
			m.preview.LineUp(2 * half)

		case key.Matches(msg, keys.PageDown):
			m.preview.LineDown(2 * half)
		}
		return m, nil

	case tea.MouseMsg:
		if !m.ready || len(m.ids) == 0 {
			return m, nil
		}
		region, idx := m.hitTest(msg.X, msg.Y)
		switch region {
		case regionList:
			switch {
			case msg.Button == tea.MouseButtonWheelUp:
				m.move(-1)
			case msg.Button == tea.MouseButtonWheelDown:
				m.move(1)
			case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && idx < len(m.ids):
				m.cursor = idx
				m.adjustListScroll(m.layout().panelH)
			}
		case regionPreview:
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}
		return m, nil

	case previewRenderedMsg:
		if msg.generation != m.generation {
			return m, nil // stale preview
		}
		m.preview.SetContent(msg.content)
		return m, nil
	}

	return m, nil
}

// move shifts the cursor by delta speakers, clamped to the list.
func (m *model) move(delta int) {
	c := m.cursor + delta
	if c < 0 || c >= len(m.ids) {
		return
	}
	m.cursor = c
	m.adjustListScroll(m.layout().panelH)
}

func (m model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.renaming = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.renaming = false
		m.input.Blur()
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			return m, nil
		}
		return m.edit(func(s *store.Setting) { s.DisplayName = name })
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// edit applies fn to the selected speaker and re-renders the preview.
func (m model) edit(fn func(*store.Setting)) (tea.Model, tea.Cmd) {
	id, ok := m.current()
	if !ok {
		return m, nil
	}
	s := m.settings[id]
	fn(&s)
	m.settings[id] = s
	m.generation++
	return m, m.loadPreviewCmd()
}

func (m model) current() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.ids) {
		return "", false
	}
	return m.ids[m.cursor], true
}

func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}
	l := m.layout()

	header := styleHeader.Render(fmt.Sprintf("%d speakers · palette %s", len(m.ids), m.palette.ID))
	if m.renaming {
		header = m.input.View()
	}

	m.preview.Width = l.previewW
	m.preview.Height = l.panelH
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panel(l.listW, l.panelH, true).Render(m.renderList(l.listW, l.panelH)),
		panel(l.previewW, l.panelH, false).Render(m.preview.View()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.help())
}

// layout is the size of both panels' content areas. The screen is a header
// row, the two bordered panels side by side, and a help row.
type layout struct {
	listW    int
	previewW int
	panelH   int
}

func (m model) layout() layout {
	w, h := m.width, m.height
	if w <= 0 {
		w = 100
	}
	if h <= 0 {
		h = 26
	}
	// display names are short; the rest goes to the preview
	listW := min(max(w/3, 24), 40)
	return layout{
		listW:    listW,
		previewW: max(w-listW-4, 20),
		panelH:   max(h-4, 4),
	}
}

type mouseRegion int

const (
	regionNone mouseRegion = iota
	regionList
	regionPreview
)

// hitTest maps a mouse position to the panel under it and, inside the list,
// the index of the speaker there.
func (m model) hitTest(x, y int) (mouseRegion, int) {
	l := m.layout()
	row := y - 2 // header and top border
	if row < 0 || row >= l.panelH {
		return regionNone, -1
	}
	previewX := l.listW + 3 // list borders plus the preview's left border
	switch {
	case x >= 1 && x <= l.listW:
		return regionList, m.listOffset + row/linesPerItem
	case x >= previewX && x < previewX+l.previewW:
		return regionPreview, -1
	}
	return regionNone, -1
}

func (m model) help() string {
	bindings := []key.Binding{keys.Up, keys.Down, keys.Toggle, keys.ColorNext, keys.Rename, keys.PreviewDn, keys.Save, keys.Quit}
	if m.renaming {
		return styleHelp.Render("enter confirm · esc cancel")
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return styleHelp.Render(strings.Join(parts, " · "))
}
