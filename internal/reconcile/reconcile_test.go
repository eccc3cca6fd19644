package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zuo-Peng/logdye/internal/group"
	"github.com/Zuo-Peng/logdye/internal/palette"
	"github.com/Zuo-Peng/logdye/internal/store"
)

func grouped(ids ...string) group.Result {
	var g group.Result
	for _, id := range ids {
		g.Identities = append(g.Identities, group.Identity{ID: id, Names: []string{id[5:]}})
	}
	return g
}

func TestReconcile_Empty(t *testing.T) {
	got := Reconcile(grouped("name:a", "name:b"), nil, palette.Default())

	assert.Equal(t, []string{"name:a", "name:b"}, got.IDs)
	assert.Equal(t, []string{"name:a", "name:b"}, got.Created)
	assert.Equal(t, map[string]store.Setting{
		"name:a": {DisplayName: "a", Color: "black", Enabled: true},
		"name:b": {DisplayName: "b", Color: "silver", Enabled: true},
	}, got.Settings)
}

func TestReconcile_KeepsStored(t *testing.T) {
	stored := map[string]store.Setting{
		"name:a":     {DisplayName: "Alice", Color: "black", Enabled: false},
		"name:other": {DisplayName: "O", Color: "silver", Enabled: true},
	}
	got := Reconcile(grouped("name:a", "name:b"), stored, palette.Default())

	assert.Equal(t, stored["name:a"], got.Settings["name:a"])
	assert.Equal(t, stored["name:other"], got.Settings["name:other"])
	// black is taken by a; silver belongs to an identity absent from this log
	assert.Equal(t, "silver", got.Settings["name:b"].Color)
	assert.Equal(t, []string{"name:b"}, got.Created)
	assert.Len(t, got.Settings, 3)

	// input map is not modified
	assert.Len(t, stored, 2)
}

func TestReconcile_StoredColorLaterInOrder(t *testing.T) {
	stored := map[string]store.Setting{
		"name:b": {DisplayName: "b", Color: "black", Enabled: true},
	}
	got := Reconcile(grouped("name:a", "name:b"), stored, palette.Default())
	assert.Equal(t, "silver", got.Settings["name:a"].Color)
}

func TestReconcile_PaletteExhausted(t *testing.T) {
	p := palette.Palette{ID: "tiny", Colors: []palette.Color{{Value: "red"}, {Value: "blue"}}}
	got := Reconcile(grouped("name:a", "name:b", "name:c", "name:d"), nil, p)

	assert.Equal(t, "red", got.Settings["name:a"].Color)
	assert.Equal(t, "blue", got.Settings["name:b"].Color)
	assert.Equal(t, palette.DefaultColor, got.Settings["name:c"].Color)
	assert.Equal(t, palette.DefaultColor, got.Settings["name:d"].Color)
}

func TestReconcile_LastNameWins(t *testing.T) {
	g := group.Result{Identities: []group.Identity{{ID: "acct:1", Names: []string{"old", "new"}}}}
	got := Reconcile(g, nil, palette.Default())
	assert.Equal(t, "new", got.Settings["acct:1"].DisplayName)
}

func TestReconcile_Deterministic(t *testing.T) {
	g := grouped("name:a", "name:b", "name:c")
	stored := map[string]store.Setting{"name:b": {DisplayName: "b", Color: "#634200", Enabled: true}}
	assert.Equal(t, Reconcile(g, stored, palette.Default()), Reconcile(g, stored, palette.Default()))
}
