package inkpress

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSite(t *testing.T) *Site {
	t.Helper()
	root := t.TempDir()
	content := filepath.Join(root, "_posts")
	static := filepath.Join(root, "public")
	require.NoError(t, os.MkdirAll(content, 0o755))
	require.NoError(t, os.MkdirAll(static, 0o755))

	writePost(t, content, "first-post.md", `---
title: "First Post"
excerpt: "The very first."
date: "2024-01-10"
---

Hello **world** with a [link](https://example.com).

`+"```go\npackage main\n```\n")
	writePost(t, content, "second-post.md", `---
title: "Second Post"
excerpt: "Another one."
date: "2024-02-20"
---

More *content*.
`)
	require.NoError(t, os.WriteFile(filepath.Join(static, "robots.txt"), []byte("User-agent: *\n"), 0o644))

	return New(SiteConfig{
		Name:        "Test Blog",
		URL:         "https://blog.example.com",
		Description: "Testing.",
		ContentDir:  content,
		StaticDir:   static,
		OutputDir:   filepath.Join(root, "_site"),
	})
}

func readOutput(t *testing.T, s *Site, parts ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(append([]string{s.Config.OutputDir}, parts...)...))
	require.NoError(t, err)
	return string(data)
}

func TestBuildWritesFullSite(t *testing.T) {
	s := newTestSite(t)
	require.NoError(t, s.Build(context.Background()))

	index := readOutput(t, s, "index.html")
	assert.Contains(t, index, "Test Blog")
	assert.Contains(t, index, `href="/posts/second-post/"`, "newest post is the hero")
	assert.Contains(t, index, `href="/posts/first-post/"`)
	assert.Contains(t, index, `"@type":"WebSite"`)

	post := readOutput(t, s, "posts", "first-post", "index.html")
	assert.Contains(t, post, "First Post")
	assert.Contains(t, post, "<strong>world</strong>")
	assert.Contains(t, post, `target="_blank"`)
	assert.Contains(t, post, `class="code-block"`)
	assert.Contains(t, post, `"@type":"BlogPosting"`)

	themeCSS := readOutput(t, s, "assets", "theme.css")
	assert.Contains(t, themeCSS, ".hl-chroma")

	siteCSS := readOutput(t, s, "assets", "site.css")
	assert.Contains(t, siteCSS, ".code-block")

	feed := readOutput(t, s, "feed.xml")
	assert.Contains(t, feed, "<rss")
	assert.Contains(t, feed, "https://blog.example.com/posts/first-post/")

	sitemap := readOutput(t, s, "sitemap.xml")
	assert.Contains(t, sitemap, "urlset")
	assert.Contains(t, sitemap, "https://blog.example.com/posts/second-post/")

	robots := readOutput(t, s, "robots.txt")
	assert.Contains(t, robots, "User-agent")
}

func TestBuildDeterministic(t *testing.T) {
	s := newTestSite(t)
	require.NoError(t, s.Build(context.Background()))
	first := readOutput(t, s, "posts", "first-post", "index.html")
	firstIndex := readOutput(t, s, "index.html")

	require.NoError(t, s.Build(context.Background()))
	second := readOutput(t, s, "posts", "first-post", "index.html")
	secondIndex := readOutput(t, s, "index.html")

	assert.Equal(t, first, second, "post page should be byte-identical across builds")
	assert.Equal(t, firstIndex, secondIndex, "index should be byte-identical across builds")
}

func TestBuildFailsOnInvalidFrontMatter(t *testing.T) {
	s := newTestSite(t)
	bad := filepath.Join(s.Config.ContentDir, "broken.md")
	require.NoError(t, os.WriteFile(bad, []byte("---\ntitle: \"No Date\"\nexcerpt: \"E\"\n---\n"), 0o644))

	err := s.Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.md", "error should name the offending file")

	// The failed build must not have produced a page for the broken post.
	_, statErr := os.Stat(filepath.Join(s.Config.OutputDir, "posts", "broken"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestPostCacheInvalidation(t *testing.T) {
	c := newPostCache()
	post := Post{Title: "T", Slug: "t"}
	mod := post.Time()

	c.put("a.md", mod, post)
	got, ok := c.get("a.md", mod)
	require.True(t, ok)
	assert.Equal(t, "T", got.Title)

	_, ok = c.get("a.md", mod.Add(1))
	assert.False(t, ok, "changed mtime must miss")

	c.Invalidate()
	_, ok = c.get("a.md", mod)
	assert.False(t, ok)
}
