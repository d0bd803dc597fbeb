package markdown

import (
	"html"
	"net/url"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

// renderLink writes anchors with the site's link behavior: internal links
// render plain, absolute external links open in a new tab.
func (nr *nodeRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	if !entering {
		_, _ = w.WriteString("</a>")
		return ast.WalkContinue, nil
	}
	href := SafeURL(string(n.Destination))
	_, _ = w.WriteString(`<a href="`)
	_, _ = w.WriteString(href)
	_, _ = w.WriteString(`"`)
	if len(n.Title) > 0 {
		_, _ = w.WriteString(` title="`)
		_, _ = w.Write(util.EscapeHTML(n.Title))
		_, _ = w.WriteString(`"`)
	}
	writeExternalAttrs(w, href)
	_, _ = w.WriteString(">")
	return ast.WalkContinue, nil
}

func (nr *nodeRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.AutoLink)
	target := n.URL(source)
	label := n.Label(source)
	if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(string(target), "mailto:") {
		target = append([]byte("mailto:"), target...)
	}
	href := SafeURL(string(target))
	_, _ = w.WriteString(`<a href="`)
	_, _ = w.WriteString(href)
	_, _ = w.WriteString(`"`)
	writeExternalAttrs(w, href)
	_, _ = w.WriteString(">")
	_, _ = w.Write(util.EscapeHTML(label))
	_, _ = w.WriteString("</a>")
	return ast.WalkContinue, nil
}

func writeExternalAttrs(w util.BufWriter, href string) {
	if isExternal(href) {
		_, _ = w.WriteString(` target="_blank" rel="noopener noreferrer"`)
	}
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// SafeURL validates and sanitizes a URL for use in HTML attributes.
// Site-relative paths and fragments pass through; absolute URLs must carry
// an allowed scheme. Anything else renders as an empty href.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
