package markdown

import (
	"bytes"
	"context"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// nodeRenderer overrides the goldmark defaults for the node kinds the
// component layer cares about. Everything else keeps goldmark's default
// HTML rendering.
type nodeRenderer struct {
	r *Renderer
}

func (nr *nodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, nr.renderFencedCodeBlock)
	reg.Register(ast.KindHTMLBlock, nr.renderHTMLBlock)
	reg.Register(ast.KindRawHTML, nr.renderRawHTML)
	reg.Register(ast.KindLink, nr.renderLink)
	reg.Register(ast.KindAutoLink, nr.renderAutoLink)
}

func (nr *nodeRenderer) renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.HTMLBlock)
	var raw bytes.Buffer
	for i := 0; i < n.Lines().Len(); i++ {
		line := n.Lines().At(i)
		raw.Write(line.Value(source))
	}
	if n.HasClosure() {
		raw.Write(n.ClosureLine.Value(source))
	}
	return nr.renderCustom(w, raw.Bytes())
}

func (nr *nodeRenderer) renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}
	n := node.(*ast.RawHTML)
	var raw bytes.Buffer
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		raw.Write(seg.Value(source))
	}
	if _, err := nr.renderCustom(w, raw.Bytes()); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkSkipChildren, nil
}

// renderCustom dispatches capitalized component tags to the registry.
// Goldmark runs an HTML block to the next blank line, so a block may hold
// a component tag plus adjacent lines, or several stacked tags; everything
// past the dispatched tags keeps its raw HTML semantics. Unregistered tags
// and plain HTML pass through verbatim, never as an error.
func (nr *nodeRenderer) renderCustom(w util.BufWriter, raw []byte) (ast.WalkStatus, error) {
	rest := raw
	for len(rest) > 0 {
		name, attrs, end, ok := parseTag(string(rest))
		if !ok {
			break
		}
		fn, found := nr.r.registry.Lookup(name)
		if !found {
			break
		}
		if err := fn(attrs).Render(context.Background(), w); err != nil {
			return ast.WalkStop, err
		}
		rest = rest[end:]
	}
	_, _ = w.Write(rest)
	return ast.WalkContinue, nil
}
