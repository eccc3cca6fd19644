package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Read(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "log.txt")
	require.NoError(t, os.WriteFile(file, []byte("\xEF\xBB\xBF<a> b\n"), 0o644))

	r := &Reader{
		Stdin:         strings.NewReader("from stdin"),
		ReadClipboard: func() (string, error) { return "from clipboard", nil },
	}

	got, err := r.Read(file)
	require.NoError(t, err)
	assert.Equal(t, "<a> b\n", got)

	got, err = r.Read(Stdin)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	got, err = r.Read(Clipboard)
	require.NoError(t, err)
	assert.Equal(t, "from clipboard", got)

	_, err = r.Read(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestReader_ClipboardError(t *testing.T) {
	r := &Reader{ReadClipboard: func() (string, error) { return "", errors.New("no clipboard") }}
	_, err := r.Read(Clipboard)
	assert.ErrorContains(t, err, "no clipboard")
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.LOG", "c.json", "sub/d.txt", ".hidden/e.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	files, err := Collect([]string{dir, filepath.Join(dir, "c.json")})
	require.NoError(t, err)

	var got []string
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f.Path)
		got = append(got, filepath.ToSlash(rel))
	}
	assert.ElementsMatch(t, []string{"a.txt", "b.LOG", "sub/d.txt", "c.json"}, got)

	_, err = Collect([]string{filepath.Join(dir, "nope")})
	assert.Error(t, err)
}
