package inkpress

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/inkpress/inkpress/theme"
	"github.com/inkpress/inkpress/views"
)

// Build renders the whole site into Config.OutputDir: the index, one page
// per post, the theme assets, the RSS feed, and the sitemap, then copies
// static files. Rendering a page is synchronous; pages render concurrently.
// Building the same content twice yields byte-identical output.
func (s *Site) Build(ctx context.Context) error {
	start := time.Now()

	posts, err := s.loadPosts()
	if err != nil {
		return err
	}
	vposts := viewPosts(posts)

	if err := os.MkdirAll(filepath.Join(s.Config.OutputDir, "assets"), 0o755); err != nil {
		return fmt.Errorf("inkpress: create output dir: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.writeIndex(ctx, vposts) })
	for i := range posts {
		post, vpost := posts[i], vposts[i]
		g.Go(func() error { return s.writePostPage(ctx, post, vpost, posts) })
	}
	g.Go(func() error { return s.writeAssets() })
	g.Go(func() error { return s.writeFeed(posts) })
	g.Go(func() error { return s.writeSitemap(posts) })
	if err := g.Wait(); err != nil {
		return err
	}

	if err := s.copyStatic(); err != nil {
		return err
	}

	log.Printf("inkpress: built %d posts in %s", len(posts), time.Since(start).Round(time.Millisecond))
	return nil
}

// loadPosts reads the content directory through the parse cache.
func (s *Site) loadPosts() ([]Post, error) {
	return loadPosts(s.Config.ContentDir, s.cache)
}

func (s *Site) writeIndex(ctx context.Context, vposts []views.Post) error {
	site := s.viewSite()
	meta := views.PageMeta{
		Title:       site.Name,
		Description: site.Description,
		URL:         BuildURL(site.URL),
		OGType:      "website",
	}
	page := views.Page(site, meta, views.WebsiteJsonLD(site), views.Home(site, vposts))
	return writePage(ctx, filepath.Join(s.Config.OutputDir, "index.html"), page)
}

func (s *Site) writePostPage(ctx context.Context, post Post, vpost views.Post, all []Post) error {
	site := s.viewSite()
	meta := views.PageMeta{
		Title:       post.Title + " | " + site.Name,
		Description: post.Excerpt,
		URL:         BuildURL(site.URL, post.Permalink()),
		OGType:      "article",
		OGImage:     vpost.OGImageURL,
	}
	if meta.OGImage == "" {
		meta.OGImage = post.CoverImage
	}

	body := s.markdown.Markdown(post.Content)
	related := viewPosts(FilterRelatedPosts(post, all))
	page := views.Page(site, meta, views.BlogPostingJsonLD(site, vpost),
		views.PostPage(site, vpost, body, related))

	path := filepath.Join(s.Config.OutputDir, "posts", post.Slug, "index.html")
	return writePage(ctx, path, page)
}

// writeAssets emits the theme stylesheet generated from the highlight
// palette, plus the embedded base stylesheet.
func (s *Site) writeAssets() error {
	assets := filepath.Join(s.Config.OutputDir, "assets")

	f, err := os.Create(filepath.Join(assets, "theme.css"))
	if err != nil {
		return fmt.Errorf("inkpress: write theme.css: %w", err)
	}
	if err := theme.CSS(f); err != nil {
		f.Close()
		return fmt.Errorf("inkpress: generate theme.css: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	css, err := embeddedAssets.ReadFile("embedded/site.css")
	if err != nil {
		return fmt.Errorf("inkpress: embedded site.css: %w", err)
	}
	return os.WriteFile(filepath.Join(assets, "site.css"), css, 0o644)
}

// copyStatic mirrors the user-owned static directory into the output tree.
// JPEG images wider than the content column are downscaled on the way.
func (s *Site) copyStatic() error {
	src := s.Config.StaticDir
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(s.Config.OutputDir, rel)
		if info.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		if isJPEG(path) {
			return s.copyImage(path, dst)
		}
		return copyFile(path, dst)
	})
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
