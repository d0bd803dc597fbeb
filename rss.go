package inkpress

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// writeFeed emits an RSS 2.0 feed at feed.xml in the output tree.
func (s *Site) writeFeed(posts []Post) error {
	f, err := os.Create(filepath.Join(s.Config.OutputDir, "feed.xml"))
	if err != nil {
		return fmt.Errorf("inkpress: write feed.xml: %w", err)
	}
	if err := s.encodeFeed(f, posts); err != nil {
		f.Close()
		return fmt.Errorf("inkpress: encode feed: %w", err)
	}
	return f.Close()
}

func (s *Site) encodeFeed(w io.Writer, posts []Post) error {
	base := s.Config.URL
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := ""
		if t, err := time.Parse(dateLayout, p.Date); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := BuildURL(base, p.Permalink())
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Excerpt,
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       s.Config.Name,
			Link:        base,
			Description: s.Config.Description,
			Items:       items,
		},
	}
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(feed)
}
