package ident

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{"distinct", []string{"a", "b"}, []string{"a", "b"}},
		{"leading digit stripped", []string{"a1", "1a"}, []string{"a1", "a"}},
		{"sanitized collision", []string{"a", "1a"}, []string{"_C2", "_C1"}},
		{"longer prefixes", []string{"a", "bbb3", "bbb4", "bc"}, []string{"a", "bbb3", "bbb4", "bc"}},
		{"keywords", []string{"_i", "_in", "_in1", "_in12"}, []string{"i", "_C1", "in1", "in12"}},
		{"exact duplicate", []string{"a", "a"}, []string{"a", "a1"}},
		{"chinese", []string{"张三", "李·四"}, []string{"张", "李"}},
		{"spaces only", []string{"                                  "}, []string{"_C1"}},
		{"empty", []string{""}, []string{"_C1"}},
		{"empty list", []string{}, []string{}},
		{"two empties", []string{"", ""}, []string{"_C1", "_C2"}},
		{"keyword whole name", []string{"if"}, []string{"i"}},
		{"keyword cannot grow", []string{"in", "i"}, []string{"_C1", "i"}},
		{"three way collision", []string{"a", "1a", "2a"}, []string{"_C4", "_C1", "_C3"}},
		{"shared dedup counter", []string{"x", "y", "x", "y"}, []string{"x", "y", "x1", "y2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Derive(tt.names)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDerive_Deterministic(t *testing.T) {
	names := []string{"Alice", "alice", "Alicia", "1Bob", "Bob", "鲍勃", "", "Bob"}
	first, err := Derive(names)
	require.NoError(t, err)
	second, err := Derive(names)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDerive_TotalAndUnique(t *testing.T) {
	inputs := [][]string{
		{"a", "a", "a", "a"},
		{"", "", "!!", "??"},
		{"ab", "abc", "abcd", "1ab", "_abc"},
		{"elif", "else", "el", "e"},
		{"丧 丧 熊", "丧丧熊", "Paul~K", "PaulK", "克里斯托夫·韦恩"},
		{"Ⅻ", "ア", "한국", "𠀀x"},
	}
	for _, names := range inputs {
		got, err := Derive(names)
		require.NoError(t, err, "names %q", names)
		require.Len(t, got, len(names))

		seen := make(map[string]bool)
		for _, id := range got {
			assert.False(t, seen[id], "duplicate identifier %q for %q", id, names)
			seen[id] = true
			if strings.HasPrefix(id, PlaceholderPrefix) {
				continue
			}
			first, _ := utf8.DecodeRuneInString(id)
			assert.True(t, IsStart(first), "bad start in %q", id)
			for _, r := range id {
				assert.True(t, IsContinue(r), "bad rune %q in %q", r, id)
			}
			assert.False(t, IsKeyword(id))
		}
	}
}

func TestDerive_DedupKeyCollision(t *testing.T) {
	// "a" twice synthesizes "a1", which already exists as a real name.
	_, err := Derive([]string{"a1", "a", "a"})
	require.Error(t, err)

	var inv *InvariantError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, []string{"a1", "a", "a1"}, inv.Keys)
	assert.Equal(t, 2, inv.Resolved)
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1a", "a"},
		{"_in12", "in12"},
		{"李·四", "李·四"},
		{"·李", "李"},
		{"a b-c", "abc"},
		{"123", ""},
		{"e\u0301x", "e\u0301x"},
		{"𠀀", "𠀀"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(Sanitize(tt.in)), "Sanitize(%q)", tt.in)
	}
}

func TestCharClasses(t *testing.T) {
	assert.True(t, IsStart('A'))
	assert.True(t, IsStart('ß'))
	assert.True(t, IsStart('あ'))
	assert.True(t, IsStart('가'))
	assert.True(t, IsStart('Ⅳ'))
	assert.True(t, IsStart(0x2A6D6))
	assert.False(t, IsStart('_'))
	assert.False(t, IsStart('1'))
	assert.False(t, IsStart('×'))
	assert.False(t, IsStart(' '))

	assert.True(t, IsContinue('_'))
	assert.True(t, IsContinue('9'))
	assert.True(t, IsContinue('·'))
	assert.True(t, IsContinue(0x0301))
	assert.False(t, IsContinue('-'))
	assert.False(t, IsContinue('~'))
}
