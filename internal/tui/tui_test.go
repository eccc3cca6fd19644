package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/logdye/internal/group"
	"github.com/Zuo-Peng/logdye/internal/palette"
	"github.com/Zuo-Peng/logdye/internal/store"
)

func testModel(t *testing.T) model {
	t.Helper()
	p, ok := palette.Lookup(palette.BBS)
	require.True(t, ok)
	m := newModel(Input{
		Identities: []group.Identity{
			{ID: "acct:1", Names: []string{"白菜"}},
			{ID: "name:kp", Names: []string{"kp", "KP"}},
		},
		Lines: []group.Line{
			{IdentityID: "acct:1", Content: []string{"hello"}},
			{IdentityID: "name:kp", Content: []string{"roll"}},
		},
		Settings: map[string]store.Setting{
			"acct:1":  {DisplayName: "白菜", Color: "black", Enabled: true},
			"name:kp": {DisplayName: "KP", Color: "silver", Enabled: true},
		},
		Palette: p,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(model)
}

func press(t *testing.T, m model, msgs ...tea.KeyMsg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Navigate(t *testing.T) {
	m := testModel(t)
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)
}

func TestModel_EditSettings(t *testing.T) {
	m := testModel(t)
	gen := m.generation

	m = press(t, m, runes("x"))
	assert.False(t, m.settings["acct:1"].Enabled)
	assert.Greater(t, m.generation, gen)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "silver", m.settings["acct:1"].Color)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "pink", m.settings["acct:1"].Color)

	// the other speaker is untouched
	assert.Equal(t, store.Setting{DisplayName: "KP", Color: "silver", Enabled: true}, m.settings["name:kp"])
}

func TestModel_Rename(t *testing.T) {
	m := testModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("r"))
	require.True(t, m.renaming)
	assert.Equal(t, "KP", m.input.Value())

	// keys go to the input while renaming
	m = press(t, m, runes("x"))
	assert.True(t, m.settings["name:kp"].Enabled)

	m.input.SetValue("  Keeper ")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.renaming)
	assert.False(t, m.saved)
	assert.Equal(t, "Keeper", m.settings["name:kp"].DisplayName)

	// esc abandons the edit
	m = press(t, m, runes("r"))
	m.input.SetValue("Other")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "Keeper", m.settings["name:kp"].DisplayName)
}

func TestModel_SaveAndQuit(t *testing.T) {
	m := press(t, testModel(t), tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.saved)
	assert.True(t, m.quitting)

	m = press(t, testModel(t), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.saved)
	assert.True(t, m.quitting)
}

func TestModel_Preview(t *testing.T) {
	m := testModel(t)
	msg := m.loadPreviewCmd()()
	rendered, ok := msg.(previewRenderedMsg)
	require.True(t, ok)
	assert.Contains(t, rendered.content, "hello")
	assert.Contains(t, rendered.content, "roll")

	// a stale render is dropped
	m = press(t, m, runes("x"))
	next, _ := m.Update(rendered)
	assert.NotContains(t, next.(model).preview.View(), "hello")

	// disabled speakers are hidden from the preview
	msg = m.loadPreviewCmd()()
	assert.NotContains(t, msg.(previewRenderedMsg).content, "hello")
}

func TestModel_View(t *testing.T) {
	m := testModel(t)
	v := m.View()
	assert.Contains(t, v, "白菜")
	assert.Contains(t, v, "name:kp")
	assert.Contains(t, v, "enter save")
}
