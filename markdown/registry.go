package markdown

import (
	"fmt"
	"regexp"

	"github.com/a-h/templ"
)

// Attributes holds the name="value" pairs of a custom block tag.
type Attributes map[string]string

// Get returns the attribute value, or "" when absent.
func (a Attributes) Get(name string) string {
	return a[name]
}

// ComponentFunc renders a registered custom block from its attributes.
type ComponentFunc func(attrs Attributes) templ.Component

// Registry maps custom block names (capitalized, MDX-style: <Intro/>,
// <Callout kind="warn"/>) to component renderers. It is populated once
// before the first render and read-only afterwards.
type Registry struct {
	components map[string]ComponentFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[string]ComponentFunc)}
}

// Register binds name to fn. Names are case-sensitive and must be unique;
// registering a name twice is an error.
func (r *Registry) Register(name string, fn ComponentFunc) error {
	if name == "" || fn == nil {
		return fmt.Errorf("markdown: component name and renderer are required")
	}
	if _, ok := r.components[name]; ok {
		return fmt.Errorf("markdown: component %q already registered", name)
	}
	r.components[name] = fn
	return nil
}

// MustRegister is Register that panics, for static registration at startup.
func (r *Registry) MustRegister(name string, fn ComponentFunc) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Lookup returns the renderer registered under name.
func (r *Registry) Lookup(name string) (ComponentFunc, bool) {
	fn, ok := r.components[name]
	return fn, ok
}

var (
	// Component tags start with an upper-case letter, the same convention
	// that separates components from plain HTML elements in MDX.
	reTag  = regexp.MustCompile(`^\s*<([A-Z][A-Za-z0-9]*)((?:\s+[A-Za-z][\w-]*(?:="[^"]*")?)*)\s*/?>`)
	reAttr = regexp.MustCompile(`([A-Za-z][\w-]*)(?:="([^"]*)")?`)
)

// parseTag extracts the component name and attributes of the tag opening a
// raw HTML-ish block, plus the offset just past the tag so callers can keep
// whatever follows it. ok is false for anything that is not a capitalized
// component tag.
func parseTag(raw string) (name string, attrs Attributes, end int, ok bool) {
	idx := reTag.FindStringSubmatchIndex(raw)
	if idx == nil {
		return "", nil, 0, false
	}
	name = raw[idx[2]:idx[3]]
	attrs = make(Attributes)
	if idx[4] >= 0 {
		for _, am := range reAttr.FindAllStringSubmatch(raw[idx[4]:idx[5]], -1) {
			attrs[am[1]] = am[2]
		}
	}
	return name, attrs, idx[1], true
}
