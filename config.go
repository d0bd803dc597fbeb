package inkpress

// SiteConfig holds all configuration for an inkpress site.
type SiteConfig struct {
	Name        string // Site name (default "Blog")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD

	ContentDir string // Markdown post directory (default "_posts")
	StaticDir  string // User-owned static assets copied verbatim (default "public")
	OutputDir  string // Generated site directory (default "_site")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "_posts"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.OutputDir == "" {
		c.OutputDir = "_site"
	}
}

// Option configures additional Site behavior.
type Option func(*Site)

// WithMarkdown replaces the markdown renderer, letting callers register
// custom components before the first build.
func WithMarkdown(r Renderer) Option {
	return func(s *Site) {
		s.markdown = r
	}
}

// WithMaxImageWidth overrides the width cover images are downscaled to.
func WithMaxImageWidth(w int) Option {
	return func(s *Site) {
		s.maxImageWidth = w
	}
}
