// Package theme is the syntax highlighting palette for code blocks: a static
// table mapping token categories to colors, exposed as a chroma style and as
// a generated stylesheet.
package theme

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// Name is the registered chroma style name.
const Name = "inkpress"

var entries = chroma.StyleEntries{
	chroma.Background:         "#d6deeb bg:#011627",
	chroma.Text:               "#d6deeb",
	chroma.Comment:            "italic #637777",
	chroma.CommentPreproc:     "#c792ea",
	chroma.Keyword:            "#c792ea",
	chroma.KeywordConstant:    "#82aaff",
	chroma.KeywordType:        "#ffcb8b",
	chroma.Operator:           "#7fdbca",
	chroma.Punctuation:        "#d6deeb",
	chroma.Name:               "#d6deeb",
	chroma.NameAttribute:      "#addb67",
	chroma.NameBuiltin:        "#82aaff",
	chroma.NameClass:          "#ffcb8b",
	chroma.NameConstant:       "#82aaff",
	chroma.NameDecorator:      "#82aaff",
	chroma.NameFunction:       "#82aaff",
	chroma.NameTag:            "#7fdbca",
	chroma.NameVariable:       "#addb67",
	chroma.LiteralString:      "#ecc48d",
	chroma.LiteralNumber:      "#f78c6c",
	chroma.GenericDeleted:     "#ef5350",
	chroma.GenericInserted:    "#addb67",
	chroma.GenericEmph:        "italic",
	chroma.GenericStrong:      "bold",
	chroma.Error:              "#ef5350",
	chroma.LineHighlight:      "bg:#01121f",
	chroma.LineNumbers:        "#4b6479",
	chroma.LineNumbersTable:   "#4b6479",
}

// Style is the palette registered with chroma. Code block rendering uses it
// for class assignment; CSS turns it into the shipped theme asset.
var Style = styles.Register(chroma.MustNewStyle(Name, entries))

// CSS writes the class-based stylesheet for the palette. The build pipeline
// saves the output as a static asset consumed by every generated page.
func CSS(w io.Writer) error {
	return formatter().WriteCSS(w, Style)
}

func formatter() *chromahtml.Formatter {
	return chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.ClassPrefix("hl-"),
	)
}

// Formatter returns the HTML formatter matching the generated stylesheet.
// The markdown code block renderer uses it so class names line up.
func Formatter(lineNumbers bool) *chromahtml.Formatter {
	if !lineNumbers {
		return formatter()
	}
	return chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.ClassPrefix("hl-"),
		chromahtml.WithLineNumbers(true),
	)
}
