// Package highlight provides syntax highlighting for buffer previews.
package highlight

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/x/ansi"
)

// DefaultLexer is used when no language is given. The built-in vocabulary
// is Java flavoured, so previews highlight as Java.
const DefaultLexer = "java"

// Code applies syntax highlighting using Chroma and the terminal256
// formatter. Returns the original string if highlighting fails.
func Code(text, lexer, style string) string {
	if text == "" {
		return ""
	}
	if lexer == "" {
		lexer = DefaultLexer
	}
	if style == "" {
		style = "smartedit"
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, text, lexer, "terminal256", style); err != nil {
		return text
	}

	// Chroma keeps a trailing newline from the source; previews are single line.
	return strings.TrimRight(buf.String(), "\n")
}

// Preview renders a one-line highlighted preview of text that fits width
// cells. Newlines are shown as a return symbol.
func Preview(text, style string, width int) string {
	flat := Flatten(text)
	if flat == "" {
		return ""
	}
	out := Code(flat, DefaultLexer, style)
	if width > 0 && ansi.StringWidth(out) > width {
		out = ansi.Truncate(out, width, "…")
	}
	return out
}

// Flatten collapses a multi-line buffer onto one line.
func Flatten(text string) string {
	text = strings.ReplaceAll(text, "\t", " ")
	return strings.ReplaceAll(text, "\n", "↵")
}
