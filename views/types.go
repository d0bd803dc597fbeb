package views

// Site holds the site-wide settings every component may read. Handed to
// templates once per build so nothing is hardcoded.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// Post is the view model rendered by the presentational components. The
// build pipeline maps loaded content onto it; components never read files.
type Post struct {
	Title         string
	Excerpt       string
	Date          string // ISO 8601
	CoverImage    string
	AuthorName    string
	AuthorPicture string
	OGImageURL    string
	Slug          string
	Tags          []string
}

// Permalink is the site-relative path of the post page.
func (p Post) Permalink() string {
	return "/posts/" + p.Slug + "/"
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	OGImage     string
}
