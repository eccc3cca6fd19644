package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	p, ok := Lookup(V2)
	require.True(t, ok)
	assert.Len(t, p.Colors, 31)
	assert.Equal(t, "black", p.Colors[0].Value)
	assert.Equal(t, "silver", p.Colors[1].Value)

	p, ok = Lookup(BBS)
	require.True(t, ok)
	assert.Len(t, p.Values(), 17)

	_, ok = Lookup("rainbow")
	assert.False(t, ok)

	assert.Equal(t, V2, Default().ID)
	assert.Equal(t, []string{V2, BBS}, IDs())
}

func TestPalettes_UniqueValues(t *testing.T) {
	for _, p := range All() {
		seen := make(map[string]bool)
		for _, v := range p.Values() {
			assert.False(t, seen[v], "%s repeats %s", p.ID, v)
			seen[v] = true
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"black", "#000000"},
		{"LimeGreen", "#32cd32"},
		{"#634200", "#634200"},
		{"#FC1956", "#fc1956"},
		{"#fff", "#ffffff"},
		{"not-a-color", "#000000"},
		{"", "#000000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Hex(tt.in), "Hex(%q)", tt.in)
	}
}

func TestIsLight(t *testing.T) {
	assert.False(t, IsLight("black"))
	assert.True(t, IsLight("white"))
	assert.True(t, IsLight("yellow"))
	assert.False(t, IsLight("navy"))
	assert.True(t, IsLight("#ebf0d8"))
	assert.False(t, IsLight("#26067d"))
	assert.False(t, IsLight("bogus"))

	for _, c := range Default().Colors {
		assert.Equal(t, IsLight(c.Value), c.IsLight())
		assert.Equal(t, Hex(c.Value), c.Hex())
	}
}

func TestNext(t *testing.T) {
	p, _ := Lookup(BBS)
	assert.Equal(t, "silver", p.Next("black", 1))
	assert.Equal(t, "black", p.Next("pink", 1))
	assert.Equal(t, "pink", p.Next("black", -1))
	assert.Equal(t, "black", p.Next("#123456", 1))
	assert.Equal(t, 2, p.Index("RED"))
}
