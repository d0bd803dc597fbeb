package inkpress

import "time"

// Author identifies the writer of a post. Both fields are optional; a post
// without an author simply renders no byline.
type Author struct {
	Name    string `yaml:"name"`
	Picture string `yaml:"picture"`
}

// OGImage points at the image used for OpenGraph previews.
type OGImage struct {
	URL string `yaml:"url"`
}

// Post is the core content type loaded from a Markdown file and rendered by
// the component layer. It is populated once at build time and never mutated.
type Post struct {
	Title      string   `yaml:"title"`
	Excerpt    string   `yaml:"excerpt"`
	Date       string   `yaml:"date"` // ISO 8601, validated at load time
	CoverImage string   `yaml:"coverImage"`
	Author     *Author  `yaml:"author"`
	OGImage    *OGImage `yaml:"ogImage"`
	Tags       []string `yaml:"tags"`

	// Slug is derived from the source file name, not front matter.
	Slug string `yaml:"-"`
	// Content is the raw markdown body following the front matter block.
	Content string `yaml:"-"`
	// SourcePath is the content file the post was loaded from, kept for
	// error reporting.
	SourcePath string `yaml:"-"`
}

// Time parses the post date. Load validates the date, so rendering code can
// ignore the zero-value case.
func (p Post) Time() time.Time {
	t, _ := time.Parse(dateLayout, p.Date)
	return t
}

// Permalink is the site-relative path the post is published under.
func (p Post) Permalink() string {
	return "/posts/" + p.Slug + "/"
}
