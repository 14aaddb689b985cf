package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookPathFor(found ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestDetectClipboard_PrefersFirstTool(t *testing.T) {
	c := detectClipboard("linux", lookPathFor("xsel", "wl-copy"))
	require.True(t, c.IsAvailable())
	assert.Equal(t, "xsel", c.tool.name)
}

func TestDetectClipboard_NoTool(t *testing.T) {
	c := detectClipboard("linux", lookPathFor())
	assert.False(t, c.IsAvailable())
	assert.Contains(t, c.Error(), "xclip, xsel, wl-copy")
	assert.Error(t, c.Write("text"))
}

func TestDetectClipboard_UnsupportedPlatform(t *testing.T) {
	c := detectClipboard("plan9", lookPathFor("pbcopy"))
	assert.False(t, c.IsAvailable())
	assert.Equal(t, "unsupported platform: plan9", c.Error())
}
