package lexicon

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetHasWord(t *testing.T) {
	lex := NewSet("test", []string{"cat", "TAP", " pie ", ""})
	assert.Equal(t, 3, lex.Size())
	assert.True(t, lex.HasWord("CAT"))
	assert.True(t, lex.HasWord("cat"))
	assert.True(t, lex.HasWord("Tap"))
	assert.True(t, lex.HasWord("PIE"))
	assert.False(t, lex.HasWord("DOG"))
	assert.False(t, lex.HasWord(""))
}

func TestAcceptAll(t *testing.T) {
	lex := AcceptAll{}
	assert.True(t, lex.HasWord("ANYTHING"))
	assert.True(t, lex.HasWord("zzzzz"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "english.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ntap\npie\n"), 0644))

	lex, err := Load("english", dir)
	require.NoError(t, err)
	assert.Equal(t, "english", lex.Name())
	assert.Equal(t, 3, lex.Size())
	assert.True(t, lex.HasWord("TAP"))
}

func TestLoadZip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "english.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("english_dic.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("cat\ntap\npie\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	lex, err := Load("english", dir)
	require.NoError(t, err)
	assert.Equal(t, 3, lex.Size())
	assert.True(t, lex.HasWord("PIE"))
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("nosuch", t.TempDir())
	assert.Error(t, err)
}

func TestLoadEmptyList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "english.txt"), nil, 0644))
	_, err := Load("english", dir)
	assert.Error(t, err)
}
