package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Page wraps a body component in the full HTML document shell: head metadata,
// OpenGraph tags, JSON-LD, and the theme stylesheet links.
func Page(site Site, meta PageMeta, jsonLD string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>` +
			`<meta name="viewport" content="width=device-width, initial-scale=1"/>` +
			`<title>` + esc(meta.Title) + `</title>`
		if meta.Description != "" {
			head += `<meta name="description" content="` + esc(meta.Description) + `"/>`
		}
		if meta.URL != "" {
			head += `<link rel="canonical" href="` + esc(meta.URL) + `"/>` +
				`<meta property="og:url" content="` + esc(meta.URL) + `"/>`
		}
		head += `<meta property="og:title" content="` + esc(meta.Title) + `"/>`
		if meta.OGType != "" {
			head += `<meta property="og:type" content="` + esc(meta.OGType) + `"/>`
		}
		if meta.OGImage != "" {
			head += `<meta property="og:image" content="` + esc(meta.OGImage) + `"/>`
		}
		head += `<link rel="alternate" type="application/rss+xml" href="/feed.xml"/>` +
			`<link rel="stylesheet" href="/assets/site.css"/>` +
			`<link rel="stylesheet" href="/assets/theme.css"/>`
		if jsonLD != "" {
			head += `<script type="application/ld+json">` + jsonLD + `</script>`
		}
		head += `</head><body><main class="container">`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		footer := `</main><footer class="footer"><p>` + esc(site.Name) + `</p></footer></body></html>`
		_, err := io.WriteString(w, footer)
		return err
	})
}

// Home composes the index page: intro banner, hero post, preview grid.
func Home(site Site, posts []Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := Intro(site).Render(ctx, w); err != nil {
			return err
		}
		if len(posts) == 0 {
			return nil
		}
		if err := HeroPost(posts[0]).Render(ctx, w); err != nil {
			return err
		}
		return MoreStories(posts[1:]).Render(ctx, w)
	})
}

// PostPage composes a single post page: header, rendered body, related posts.
func PostPage(site Site, post Post, body templ.Component, related []Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<article class="post">`); err != nil {
			return err
		}
		if err := PostHeader(post).Render(ctx, w); err != nil {
			return err
		}
		if err := PostBody(body).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</article>`); err != nil {
			return err
		}
		return MoreStories(related).Render(ctx, w)
	})
}
