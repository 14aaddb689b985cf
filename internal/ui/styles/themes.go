package styles

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

func init() {
	styles.Register(SmarteditTheme)
	styles.Register(SmarteditLightTheme)
}

// SmarteditTheme is a dark syntax theme for source previews
var SmarteditTheme = chroma.MustNewStyle("smartedit", chroma.StyleEntries{
	chroma.Background: "bg:#1a1a2e",
	chroma.Text:       "#eaeaea",
	chroma.Error:      "#ff5555 bold",

	chroma.Keyword:          "bold #50fa7b",
	chroma.KeywordConstant:  "#bd93f9", // true, false, null
	chroma.KeywordNamespace: "bold #50fa7b",
	chroma.KeywordType:      "#8be9fd", // int, boolean

	chroma.String:       "#f1fa8c",
	chroma.StringEscape: "#ffb86c",
	chroma.StringChar:   "#f1fa8c",

	chroma.Number:      "#bd93f9",
	chroma.NumberFloat: "#bd93f9",

	chroma.NameFunction:  "#ff79c6",
	chroma.NameBuiltin:   "#ff79c6",
	chroma.NameClass:     "#8be9fd",
	chroma.NameDecorator: "#ffb86c", // annotations

	chroma.Operator:    "#8be9fd",
	chroma.Punctuation: "#f8f8f2",

	chroma.Comment:          "italic #6272a4",
	chroma.CommentSingle:    "italic #6272a4",
	chroma.CommentMultiline: "italic #6272a4",

	chroma.Name:         "#f8f8f2",
	chroma.NameVariable: "#f8f8f2",
	chroma.NameConstant: "#bd93f9",
})

// SmarteditLightTheme is the light variant
var SmarteditLightTheme = chroma.MustNewStyle("smartedit-light", chroma.StyleEntries{
	chroma.Background: "bg:#fafafa",
	chroma.Text:       "#383a42",

	chroma.Keyword:          "bold #a626a4",
	chroma.KeywordConstant:  "#986801",
	chroma.KeywordNamespace: "bold #a626a4",
	chroma.KeywordType:      "#0184bc",

	chroma.String:       "#50a14f",
	chroma.StringEscape: "#986801",

	chroma.Number:      "#986801",
	chroma.NumberFloat: "#986801",

	chroma.NameFunction:  "#4078f2",
	chroma.NameBuiltin:   "#4078f2",
	chroma.NameDecorator: "#c18401",

	chroma.Operator:    "#383a42",
	chroma.Punctuation: "#383a42",

	chroma.Comment:       "italic #a0a1a7",
	chroma.CommentSingle: "italic #a0a1a7",

	chroma.Name:         "#383a42",
	chroma.NameVariable: "#e45649",
	chroma.NameConstant: "#986801",
})

// SyntaxStyleFor returns the chroma style name to use for a UI theme. An
// explicitly configured style wins.
func SyntaxStyleFor(theme, configured string) string {
	if configured != "" {
		return configured
	}
	if theme == "light" {
		return "smartedit-light"
	}
	return "smartedit"
}
