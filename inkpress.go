// Package inkpress is a static personal-blog generator. It loads Markdown
// posts with YAML front matter, renders them through a registry of templ
// components, and writes a self-contained site: pages, theme stylesheet,
// RSS feed, and sitemap.
//
// Users customize rendering by registering their own components on the
// markdown registry before the first build; everything else is driven by
// SiteConfig.
package inkpress

import (
	"github.com/a-h/templ"

	"github.com/inkpress/inkpress/markdown"
	"github.com/inkpress/inkpress/views"
)

// Renderer turns a markdown post body into a templ component.
type Renderer interface {
	Markdown(content string) templ.Component
}

// Site is the central engine. It wires together the content loader, the
// markdown renderer, and the component layer, and owns the output tree.
type Site struct {
	Config SiteConfig

	markdown      Renderer
	cache         *postCache
	maxImageWidth int
}

// New creates a Site with the given configuration.
func New(cfg SiteConfig, opts ...Option) *Site {
	cfg.setDefaults()

	s := &Site{
		Config:        cfg,
		cache:         newPostCache(),
		maxImageWidth: maxImageWidth,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.markdown == nil {
		s.markdown = markdown.New(markdown.WithRegistry(DefaultRegistry(cfg)))
	}
	return s
}

// DefaultRegistry returns the stock component registry: the custom blocks a
// post body may embed. It is built once at startup and never mutated.
func DefaultRegistry(cfg SiteConfig) *markdown.Registry {
	site := views.Site{
		Name:        cfg.Name,
		URL:         cfg.URL,
		Description: cfg.Description,
		Author:      cfg.Author,
	}
	reg := markdown.NewRegistry()
	reg.MustRegister("Intro", func(attrs markdown.Attributes) templ.Component {
		return views.Intro(site)
	})
	reg.MustRegister("Avatar", func(attrs markdown.Attributes) templ.Component {
		return views.Avatar(attrs.Get("name"), attrs.Get("picture"))
	})
	reg.MustRegister("CoverImage", func(attrs markdown.Attributes) templ.Component {
		href := ""
		if slug := attrs.Get("slug"); slug != "" {
			href = views.Post{Slug: slug}.Permalink()
		}
		return views.CoverImage(attrs.Get("title"), attrs.Get("src"), href)
	})
	return reg
}

func (s *Site) viewSite() views.Site {
	return views.Site{
		Name:        s.Config.Name,
		URL:         s.Config.URL,
		Description: s.Config.Description,
		Author:      s.Config.Author,
	}
}

func viewPost(p Post) views.Post {
	v := views.Post{
		Title:      p.Title,
		Excerpt:    p.Excerpt,
		Date:       p.Date,
		CoverImage: p.CoverImage,
		Slug:       p.Slug,
		Tags:       p.Tags,
	}
	if p.Author != nil {
		v.AuthorName = p.Author.Name
		v.AuthorPicture = p.Author.Picture
	}
	if p.OGImage != nil {
		v.OGImageURL = p.OGImage.URL
	}
	return v
}

func viewPosts(posts []Post) []views.Post {
	out := make([]views.Post, len(posts))
	for i, p := range posts {
		out[i] = viewPost(p)
	}
	return out
}
