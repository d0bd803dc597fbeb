package inkpress

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"  Already-slugged  ", "already-slugged"},
		{"Chars: & Stuff!", "chars-stuff"},
		{"2024 in review", "2024-in-review"},
		{"trailing---", "trailing"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.expected {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		expected string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"posts", "hello"}, "https://example.com/posts/hello/"},
		{"https://example.com/base", []string{"posts"}, "https://example.com/base/posts/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.expected {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.expected)
		}
	}
}

func TestFilterRelatedPosts(t *testing.T) {
	current := Post{Slug: "a", Tags: []string{"go", "web"}}
	posts := []Post{
		{Slug: "a", Tags: []string{"go"}},       // current itself, excluded
		{Slug: "b", Tags: []string{"GO"}},       // tag match is case-insensitive
		{Slug: "c", Tags: []string{"cooking"}},  // no shared tag
		{Slug: "d", Tags: []string{"web", "x"}}, // shared tag
	}
	related := FilterRelatedPosts(current, posts)
	if len(related) != 2 {
		t.Fatalf("expected 2 related posts, got %d", len(related))
	}
	if related[0].Slug != "b" || related[1].Slug != "d" {
		t.Errorf("unexpected related posts: %v, %v", related[0].Slug, related[1].Slug)
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"a", " ", "", "b"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("FilterEmpty = %v", got)
	}
}
