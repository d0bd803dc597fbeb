package inkpress

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePost(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validPost = `---
title: "Dynamic Routing"
excerpt: "How slugs map to pages."
date: "2024-03-01"
coverImage: "/images/cover.jpg"
author:
  name: "Jamie Doe"
  picture: "/images/jamie.jpg"
ogImage:
  url: "/images/cover.jpg"
tags: [go, web]
---

Body **text** here.
`

func TestLoadPostPopulatesAllFields(t *testing.T) {
	dir := t.TempDir()
	path := writePost(t, dir, "dynamic-routing.md", validPost)

	post, err := LoadPost(path)
	require.NoError(t, err)

	assert.Equal(t, "Dynamic Routing", post.Title)
	assert.Equal(t, "How slugs map to pages.", post.Excerpt)
	assert.Equal(t, "2024-03-01", post.Date)
	assert.Equal(t, "/images/cover.jpg", post.CoverImage)
	require.NotNil(t, post.Author)
	assert.Equal(t, "Jamie Doe", post.Author.Name)
	require.NotNil(t, post.OGImage)
	assert.Equal(t, "/images/cover.jpg", post.OGImage.URL)
	assert.Equal(t, []string{"go", "web"}, post.Tags)
	assert.Equal(t, "dynamic-routing", post.Slug, "slug comes from the file name")
	assert.Contains(t, post.Content, "Body **text** here.")
	assert.Equal(t, path, post.SourcePath)
}

func TestLoadPostMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"missing date",
			"---\ntitle: \"T\"\nexcerpt: \"E\"\n---\nbody\n",
		},
		{
			"missing title",
			"---\nexcerpt: \"E\"\ndate: \"2024-03-01\"\n---\nbody\n",
		},
		{
			"empty title",
			"---\ntitle: \"  \"\nexcerpt: \"E\"\ndate: \"2024-03-01\"\n---\nbody\n",
		},
		{
			"missing excerpt",
			"---\ntitle: \"T\"\ndate: \"2024-03-01\"\n---\nbody\n",
		},
		{
			"malformed date",
			"---\ntitle: \"T\"\nexcerpt: \"E\"\ndate: \"March 1st\"\n---\nbody\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writePost(t, dir, "bad.md", tt.content)

			_, err := LoadPost(path)
			require.Error(t, err)

			var invalid *InvalidPostError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, path, invalid.Path, "error should name the offending file")
		})
	}
}

func TestLoadPostsOrdersNewestFirst(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "older.md", "---\ntitle: \"Older\"\nexcerpt: \"E\"\ndate: \"2023-01-01\"\n---\n")
	writePost(t, dir, "newer.md", "---\ntitle: \"Newer\"\nexcerpt: \"E\"\ndate: \"2024-06-15\"\n---\n")
	writePost(t, dir, "middle.md", "---\ntitle: \"Middle\"\nexcerpt: \"E\"\ndate: \"2023-09-09\"\n---\n")

	posts, err := LoadPosts(dir)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "Newer", posts[0].Title)
	assert.Equal(t, "Middle", posts[1].Title)
	assert.Equal(t, "Older", posts[2].Title)
}

func TestLoadPostsRejectsDuplicateSlugs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	writePost(t, dir, "hello.md", "---\ntitle: \"A\"\nexcerpt: \"E\"\ndate: \"2024-01-01\"\n---\n")
	writePost(t, filepath.Join(dir, "sub"), "hello.md", "---\ntitle: \"B\"\nexcerpt: \"E\"\ndate: \"2024-01-02\"\n---\n")

	_, err := LoadPosts(dir)
	require.Error(t, err)
	var invalid *InvalidPostError
	assert.True(t, errors.As(err, &invalid))
}

func TestLoadPostsSkipsNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "post.md", "---\ntitle: \"A\"\nexcerpt: \"E\"\ndate: \"2024-01-01\"\n---\n")
	writePost(t, dir, "notes.txt", "not a post")

	posts, err := LoadPosts(dir)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestLoadPostMDXExtension(t *testing.T) {
	dir := t.TempDir()
	path := writePost(t, dir, "with-components.mdx", validPost)

	post, err := LoadPost(path)
	require.NoError(t, err)
	assert.Equal(t, "with-components", post.Slug)
}

func TestPostPermalink(t *testing.T) {
	p := Post{Slug: "hello-world"}
	assert.Equal(t, "/posts/hello-world/", p.Permalink())
}
