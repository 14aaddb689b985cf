// Package ui holds the terminal front end shared by the editor views.
package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// clipboardTool is an external command that reads the clipboard text on stdin.
type clipboardTool struct {
	name string
	args []string
}

// clipboardTools lists candidates per platform in order of preference.
var clipboardTools = map[string][]clipboardTool{
	"darwin": {{name: "pbcopy"}},
	"linux": {
		{name: "xclip", args: []string{"-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--input"}},
		{name: "wl-copy"},
	},
	"windows": {{name: "clip"}},
}

// Clipboard copies buffer text to the system clipboard by shelling out to
// the platform tool. It degrades gracefully when no tool is installed.
type Clipboard struct {
	tool   *clipboardTool
	errMsg string
}

// NewClipboard detects the clipboard tool for the running platform.
func NewClipboard() *Clipboard {
	return detectClipboard(runtime.GOOS, exec.LookPath)
}

func detectClipboard(goos string, lookPath func(string) (string, error)) *Clipboard {
	tools, ok := clipboardTools[goos]
	if !ok {
		return &Clipboard{errMsg: fmt.Sprintf("unsupported platform: %s", goos)}
	}
	names := make([]string, 0, len(tools))
	for i := range tools {
		if _, err := lookPath(tools[i].name); err == nil {
			return &Clipboard{tool: &tools[i]}
		}
		names = append(names, tools[i].name)
	}
	return &Clipboard{errMsg: "clipboard tool not found (install " + strings.Join(names, ", ") + ")"}
}

// IsAvailable reports whether a clipboard tool was found.
func (c *Clipboard) IsAvailable() bool {
	return c.tool != nil
}

// Error returns the reason the clipboard is unavailable.
func (c *Clipboard) Error() string {
	return c.errMsg
}

// Write copies text to the system clipboard.
func (c *Clipboard) Write(text string) error {
	if c.tool == nil {
		return fmt.Errorf("clipboard unavailable: %s", c.errMsg)
	}
	cmd := exec.Command(c.tool.name, c.tool.args...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", c.tool.name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
