package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/logdye/internal/group"
	"github.com/Zuo-Peng/logdye/internal/ident"
	"github.com/Zuo-Peng/logdye/internal/store"
)

var (
	testLines = []group.Line{
		{IdentityID: "acct:1", Time: "9:00:00 PM", Content: []string{"hello", "<b>&"}},
		{IdentityID: "name:kp", Content: []string{"roll"}},
		{IdentityID: "name:off", Content: []string{"hidden"}},
		{IdentityID: "acct:1", Content: []string{"bye"}},
	}
	testSettings = map[string]store.Setting{
		"acct:1":   {DisplayName: "Alice", Color: "red", Enabled: true},
		"name:kp":  {DisplayName: "KP", Color: "#634200", Enabled: true},
		"name:off": {DisplayName: "Off", Color: "blue", Enabled: false},
	}
)

func TestMessages(t *testing.T) {
	msgs := Messages(testLines, testSettings)
	require.Len(t, msgs, 3)
	assert.Equal(t, "Alice", msgs[0].Name)
	assert.Equal(t, "9:00:00 PM", msgs[0].Time)
	assert.Equal(t, "KP", msgs[1].Name)

	msgs = Messages([]group.Line{{IdentityID: "name:ghost", Content: []string{"x"}}}, nil)
	require.Len(t, msgs, 1)
	assert.Equal(t, "错误", msgs[0].Name)
	assert.Equal(t, "black", msgs[0].Color)
}

func TestRender(t *testing.T) {
	tests := []struct {
		scheme string
		want   string
	}{
		{StandardText, "<Alice> hello\n<b>&\n<KP> roll\n<Alice> bye\n"},
		{BoldText, "【Alice】hello\n<b>&\n【KP】roll\n【Alice】bye\n"},
		{StandardBBS, "[color=red]<Alice> hello\n<b>&[/color]\n[color=#634200]<KP> roll[/color]\n[color=red]<Alice> bye[/color]\n"},
		{BoldHTML, `<p style="color: red">【Alice】hello<br/>&lt;b&gt;&amp;</p>` + "\n" +
			`<p style="color: #634200">【KP】roll</p>` + "\n" +
			`<p style="color: red">【Alice】bye</p>` + "\n"},
		{StandardHTML, `<p style="color: red">&lt;Alice&gt; hello<br/>&lt;b&gt;&amp;</p>` + "\n" +
			`<p style="color: #634200">&lt;KP&gt; roll</p>` + "\n" +
			`<p style="color: red">&lt;Alice&gt; bye</p>` + "\n"},
		{TabText, "\tAlice\thello\v<b>&\n\tKP\troll\n\tAlice\tbye\n"},
	}
	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			got, err := Render(tt.scheme, testLines, testSettings)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_UnknownScheme(t *testing.T) {
	_, err := Render("markdown", testLines, testSettings)
	assert.Error(t, err)
}

func TestRender_Renpy(t *testing.T) {
	got, err := Render(Renpy, testLines, testSettings)
	require.NoError(t, err)
	want := `define A = Character("Alice", color="#ff0000")
define K = Character("KP", color="#634200")

label start:
    A "hello\n<b>&"
    K "roll"
    A "bye"
    return
`
	assert.Equal(t, want, got)
}

func TestRender_RenpyPlaceholders(t *testing.T) {
	lines := []group.Line{
		{IdentityID: "name:1", Content: []string{"a"}},
		{IdentityID: "name:2", Content: []string{"b"}},
	}
	settings := map[string]store.Setting{
		"name:1": {DisplayName: "if", Color: "black", Enabled: true},
		"name:2": {DisplayName: "???", Color: "black", Enabled: true},
	}
	got, err := Render(Renpy, lines, settings)
	require.NoError(t, err)
	assert.Contains(t, got, `define i = Character("if", color="#000000")`)
	assert.Contains(t, got, `define _C1 = Character("???", color="#000000")`)
}

func TestRender_RenpyInvariantError(t *testing.T) {
	var lines []group.Line
	settings := make(map[string]store.Setting)
	for i, name := range []string{"a1", "a", "a"} {
		id := "name:" + string(rune('x'+i))
		lines = append(lines, group.Line{IdentityID: id, Content: []string{"."}})
		settings[id] = store.Setting{DisplayName: name, Color: "black", Enabled: true}
	}
	_, err := Render(Renpy, lines, settings)
	var inv *ident.InvariantError
	assert.True(t, errors.As(err, &inv))
}

func TestRenpyString(t *testing.T) {
	assert.Equal(t, `"plain"`, RenpyString("plain"))
	assert.Equal(t, `"say \"hi\" \\ [[x] {{b}"`, RenpyString(`say "hi" \ [x] {b}`))
	assert.Equal(t, `"a\nb"`, RenpyString("a\nb"))
}

func TestPreview(t *testing.T) {
	out := Preview(Messages(testLines, testSettings), PreviewOptions{ShowTime: true})
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "9:00:00 PM")
	assert.Contains(t, out, "hello")
	assert.NotContains(t, out, "hidden")
}

func TestWrapLine(t *testing.T) {
	assert.Equal(t, []string{"abc"}, wrapLine("abc", 0))
	assert.Equal(t, []string{"ab", "cd", "e"}, wrapLine("abcde", 2))
	// wide runes take two columns
	assert.Equal(t, []string{"你好", "世界"}, wrapLine("你好世界", 4))
	assert.Equal(t, []string{""}, wrapLine("", 10))

	colored := "\033[31mabcd\033[0m"
	got := wrapLine(colored, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "abcd", stripANSI(strings.Join(got, "")))
}

func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
