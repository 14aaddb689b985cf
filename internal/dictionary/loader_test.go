package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVocabulary(t *testing.T) {
	data := []byte(`
version: 1
name: go
words:
  - func
  - "  defer  "
  - ""
  - "if err != nil"
`)

	file, err := ParseVocabulary(data)
	require.NoError(t, err)
	assert.Equal(t, "go", file.Name)
	assert.Equal(t, []string{"func", "defer", "if err != nil"}, file.Words)
}

func TestParseVocabulary_Errors(t *testing.T) {
	_, err := ParseVocabulary([]byte("words: [unclosed"))
	assert.Error(t, err)

	_, err = ParseVocabulary([]byte("version: 7\nwords: [a]"))
	assert.ErrorContains(t, err, "unsupported vocabulary version")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte("words:\n  - goroutine\n  - gofmt\n"), 0644))

	file, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, file.Name)

	trie := NewTrie()
	trie.InsertAll(file.Words)
	assert.Equal(t, []string{"gofmt", "goroutine"}, trie.Suggest("go"))

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
