package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willibrandon/smartedit/internal/dictionary"
)

func init() {
	color.NoColor = true
}

func TestSuggestionTree_NestsExtensions(t *testing.T) {
	dict := dictionary.NewTrie()
	dict.InsertAll([]string{"for", "force", "forEach", "format", "formatter", "float"})

	out := suggestionTree(dict, "for")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 6)
	assert.Equal(t, "for (5 words)", lines[0])
	assert.Contains(t, lines[1], "for")
	// format and formatter share a branch under "for"
	idx := strings.Index(out, "format")
	require.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, strings.Index(out, "formatter"))
	assert.NotContains(t, out, "float")
}

func TestSuggestionTree_NoMatches(t *testing.T) {
	dict := dictionary.NewTrie()
	dict.Insert("class")
	assert.Contains(t, suggestionTree(dict, "zz"), "zz (0 words)")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	printSuggestions(&buf, "cl", []string{"class", "clone"})
	assert.Equal(t, "class\nclone\n", buf.String())

	buf.Reset()
	printSuggestions(&buf, "zz", nil)
	assert.Equal(t, "no words start with \"zz\"\n", buf.String())
}

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"suggest", "words", "recent", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("vocab"))
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := newVersionCmd()
	cmd.SetOut(&buf)
	cmd.Run(cmd, nil)
	assert.Equal(t, "smartedit dev\n", buf.String())
}
