package markdown

import (
	"bytes"
	"html"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"

	"github.com/inkpress/inkpress/theme"
)

// CodeDefaults is the static configuration merged into every code fence
// before it is handed to the highlighter.
type CodeDefaults struct {
	Filename    string // header label when the fence names no file
	LineNumbers bool
	CopyButton  bool
}

// DefaultCode matches the site's stock code block presentation.
var DefaultCode = CodeDefaults{
	CopyButton: true,
}

// codeOptions is a fence's effective configuration: defaults overridden by
// the fence info string.
type codeOptions struct {
	CodeDefaults
	lang string
}

// merge parses a fence info string such as
//
//	go title=main.go lines nocopy
//
// over the defaults. The first word is the language; the rest are options.
func (d CodeDefaults) merge(info string) codeOptions {
	opts := codeOptions{CodeDefaults: d}
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return opts
	}
	opts.lang = fields[0]
	for _, f := range fields[1:] {
		switch {
		case strings.HasPrefix(f, "title="):
			opts.Filename = strings.Trim(strings.TrimPrefix(f, "title="), `"`)
		case f == "lines":
			opts.LineNumbers = true
		case f == "nolines":
			opts.LineNumbers = false
		case f == "copy":
			opts.CopyButton = true
		case f == "nocopy":
			opts.CopyButton = false
		}
	}
	return opts
}

func (nr *nodeRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)
	info := ""
	if n.Info != nil {
		info = string(n.Info.Segment.Value(source))
	}
	var code bytes.Buffer
	for i := 0; i < n.Lines().Len(); i++ {
		line := n.Lines().At(i)
		code.Write(line.Value(source))
	}
	if err := writeCodeBlock(w, code.String(), nr.r.code.merge(info)); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkContinue, nil
}

func writeCodeBlock(w io.Writer, code string, opts codeOptions) error {
	if _, err := io.WriteString(w, `<div class="code-block">`); err != nil {
		return err
	}
	if opts.Filename != "" || opts.lang != "" || opts.CopyButton {
		io.WriteString(w, `<div class="code-block-header">`)
		if opts.Filename != "" {
			io.WriteString(w, `<span class="code-filename">`+html.EscapeString(opts.Filename)+`</span>`)
		}
		if opts.lang != "" {
			io.WriteString(w, `<span class="code-lang code-lang-`+html.EscapeString(opts.lang)+`">`+html.EscapeString(opts.lang)+`</span>`)
		}
		if opts.CopyButton {
			io.WriteString(w, `<button class="code-copy" type="button" aria-label="Copy code">Copy</button>`)
		}
		io.WriteString(w, `</div>`)
	}

	lexer := lexers.Get(opts.lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return err
	}
	if err := theme.Formatter(opts.LineNumbers).Format(w, theme.Style, it); err != nil {
		return err
	}
	_, err = io.WriteString(w, `</div>`)
	return err
}
