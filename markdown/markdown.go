// Package markdown renders post bodies to HTML as a templ component.
// Parsing is delegated to goldmark; a node renderer overrides code fences,
// links, and custom component blocks with the presentational behavior the
// site ships.
package markdown

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Renderer converts markdown to HTML with a component registry and code
// fence defaults applied. Construct it once at startup; it is safe for
// concurrent use once built.
type Renderer struct {
	registry *Registry
	code     CodeDefaults
	md       goldmark.Markdown
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRegistry installs a pre-populated component registry.
func WithRegistry(reg *Registry) Option {
	return func(r *Renderer) {
		r.registry = reg
	}
}

// WithCodeDefaults sets the configuration merged into every code fence.
func WithCodeDefaults(d CodeDefaults) Option {
	return func(r *Renderer) {
		r.code = d
	}
}

// New builds a Renderer around a goldmark instance with GFM tables and
// auto heading IDs enabled.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		registry: NewRegistry(),
		code:     DefaultCode,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(util.Prioritized(&nodeRenderer{r: r}, 100)),
		),
	)
	return r
}

// Markdown returns a templ.Component that renders content as HTML.
func (r *Renderer) Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.Render(w, content)
	})
}

// Render writes the HTML representation of content to w.
func (r *Renderer) Render(w io.Writer, content string) error {
	return r.md.Convert([]byte(content), w)
}
