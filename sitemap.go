package inkpress

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// writeSitemap emits sitemap.xml listing the index and every post page.
func (s *Site) writeSitemap(posts []Post) error {
	f, err := os.Create(filepath.Join(s.Config.OutputDir, "sitemap.xml"))
	if err != nil {
		return fmt.Errorf("inkpress: write sitemap.xml: %w", err)
	}
	if err := s.encodeSitemap(f, posts); err != nil {
		f.Close()
		return fmt.Errorf("inkpress: encode sitemap: %w", err)
	}
	return f.Close()
}

func (s *Site) encodeSitemap(w io.Writer, posts []Post) error {
	base := s.Config.URL
	urls := []sitemapURL{
		{Loc: BuildURL(base)},
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(base, p.Permalink()),
			LastMod: p.Date,
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(sitemap)
}
