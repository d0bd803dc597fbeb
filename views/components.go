// Package views holds the presentational components of the site: stateless
// functions from a view model to markup, in the same shape templ generates.
// Missing fields render blank; nothing here touches the filesystem or
// network, so rendering the same input twice yields identical bytes.
package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// component adapts a builder function into a templ.Component.
func component(render func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		render(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Intro renders the site banner shown at the top of the index page.
func Intro(site Site) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<section class="intro"><h1 class="intro-title">`)
		b.WriteString(esc(site.Name))
		b.WriteString(`.</h1>`)
		if site.Description != "" {
			b.WriteString(`<h4 class="intro-tagline">`)
			b.WriteString(esc(site.Description))
			b.WriteString(`</h4>`)
		}
		b.WriteString(`</section>`)
	})
}

// DateFormatter renders an ISO date as a machine-readable <time> element
// with a human-readable label.
func DateFormatter(iso string) templ.Component {
	return component(func(b *strings.Builder) {
		if iso == "" {
			return
		}
		b.WriteString(`<time datetime="`)
		b.WriteString(esc(iso))
		b.WriteString(`">`)
		b.WriteString(esc(FormatDate(iso)))
		b.WriteString(`</time>`)
	})
}

// Avatar renders an author byline. Both fields are optional; with no name
// the component renders nothing.
func Avatar(name, picture string) templ.Component {
	return component(func(b *strings.Builder) {
		if name == "" {
			return
		}
		b.WriteString(`<div class="avatar">`)
		if picture != "" {
			b.WriteString(`<img class="avatar-picture" src="`)
			b.WriteString(esc(picture))
			b.WriteString(`" alt="`)
			b.WriteString(esc(name))
			b.WriteString(`"/>`)
		}
		b.WriteString(`<span class="avatar-name">`)
		b.WriteString(esc(name))
		b.WriteString(`</span></div>`)
	})
}

// CoverImage renders a post's cover image. When href is non-empty the image
// links there, usually the post's Permalink.
func CoverImage(title, src, href string) templ.Component {
	return component(func(b *strings.Builder) {
		if src == "" {
			return
		}
		img := `<img class="cover-image" src="` + esc(src) + `" alt="Cover image for ` + esc(title) + `"/>`
		if href == "" {
			b.WriteString(img)
			return
		}
		b.WriteString(`<a href="` + esc(href) + `" aria-label="` + esc(title) + `">`)
		b.WriteString(img)
		b.WriteString(`</a>`)
	})
}

// PostPreview renders a self-contained preview block linking to the post.
func PostPreview(post Post) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<div class="post-preview">`)
		writeComponent(b, CoverImage(post.Title, post.CoverImage, post.Permalink()))
		b.WriteString(`<h3 class="post-preview-title"><a href="`)
		b.WriteString(esc(post.Permalink()))
		b.WriteString(`">`)
		b.WriteString(esc(post.Title))
		b.WriteString(`</a></h3><div class="post-preview-date">`)
		writeComponent(b, DateFormatter(post.Date))
		b.WriteString(`</div><p class="post-preview-excerpt">`)
		b.WriteString(esc(post.Excerpt))
		b.WriteString(`</p>`)
		writeComponent(b, Avatar(post.AuthorName, post.AuthorPicture))
		b.WriteString(`</div>`)
	})
}

// HeroPost renders the newest post, full width above the preview grid.
func HeroPost(post Post) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<section class="hero-post">`)
		writeComponent(b, CoverImage(post.Title, post.CoverImage, post.Permalink()))
		b.WriteString(`<h3 class="hero-post-title"><a href="`)
		b.WriteString(esc(post.Permalink()))
		b.WriteString(`">`)
		b.WriteString(esc(post.Title))
		b.WriteString(`</a></h3><div class="hero-post-date">`)
		writeComponent(b, DateFormatter(post.Date))
		b.WriteString(`</div><p class="hero-post-excerpt">`)
		b.WriteString(esc(post.Excerpt))
		b.WriteString(`</p>`)
		writeComponent(b, Avatar(post.AuthorName, post.AuthorPicture))
		b.WriteString(`</section>`)
	})
}

// MoreStories renders the preview grid for everything below the hero post.
// An empty slice renders nothing.
func MoreStories(posts []Post) templ.Component {
	return component(func(b *strings.Builder) {
		if len(posts) == 0 {
			return
		}
		b.WriteString(`<section class="more-stories"><h2 class="more-stories-title">More Stories</h2><div class="more-stories-grid">`)
		for _, p := range posts {
			writeComponent(b, PostPreview(p))
		}
		b.WriteString(`</div></section>`)
	})
}

// PostHeader renders the title block of a post page.
func PostHeader(post Post) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<header class="post-header"><h1 class="post-title">`)
		b.WriteString(esc(post.Title))
		b.WriteString(`</h1>`)
		writeComponent(b, Avatar(post.AuthorName, post.AuthorPicture))
		writeComponent(b, CoverImage(post.Title, post.CoverImage, ""))
		b.WriteString(`<div class="post-date">`)
		writeComponent(b, DateFormatter(post.Date))
		b.WriteString(`</div></header>`)
	})
}

// PostBody wraps the rendered markdown body of a post.
func PostBody(body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="post-body">`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// writeComponent renders a component into the builder. The components in
// this package never return errors from a builder write.
func writeComponent(b *strings.Builder, c templ.Component) {
	_ = c.Render(context.Background(), b)
}
