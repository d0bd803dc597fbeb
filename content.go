package inkpress

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

const dateLayout = "2006-01-02"

var contentExtensions = []string{".md", ".mdx", ".markdown"}

// InvalidPostError reports a content file that failed front matter
// validation. The build stops rather than emitting a partial post.
type InvalidPostError struct {
	Path   string
	Reason string
}

func (e *InvalidPostError) Error() string {
	return fmt.Sprintf("inkpress: invalid post %s: %s", e.Path, e.Reason)
}

// LoadPosts reads every markdown file under dir, parses front matter and
// body, and returns the posts ordered by date descending. A file with
// missing or malformed required fields fails the whole load.
func LoadPosts(dir string) ([]Post, error) {
	return loadPosts(dir, nil)
}

func loadPosts(dir string, cache *postCache) ([]Post, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return err
		case d.IsDir():
			return nil
		case !hasContentExt(path):
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inkpress: scan %s: %w", dir, err)
	}

	seen := make(map[string]string, len(paths))
	posts := make([]Post, 0, len(paths))
	for _, path := range paths {
		post, err := loadPostCached(path, cache)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[post.Slug]; ok {
			return nil, &InvalidPostError{
				Path:   path,
				Reason: fmt.Sprintf("slug %q already used by %s", post.Slug, prev),
			}
		}
		seen[post.Slug] = path
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Time().After(posts[j].Time())
	})
	return posts, nil
}

// loadPostCached consults the parse cache before reading from disk, so
// watch-mode rebuilds re-parse only files whose mtime changed.
func loadPostCached(path string, cache *postCache) (Post, error) {
	if cache == nil {
		return LoadPost(path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return Post{}, fmt.Errorf("inkpress: stat %s: %w", path, err)
	}
	if post, ok := cache.get(path, info.ModTime()); ok {
		return post, nil
	}
	post, err := LoadPost(path)
	if err != nil {
		return Post{}, err
	}
	cache.put(path, info.ModTime(), post)
	return post, nil
}

// LoadPost reads a single content file into a Post. The slug is derived
// from the file name, never from front matter.
func LoadPost(path string) (Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return Post{}, fmt.Errorf("inkpress: open %s: %w", path, err)
	}
	defer f.Close()

	var post Post
	body, err := frontmatter.Parse(f, &post)
	if err != nil {
		return Post{}, &InvalidPostError{Path: path, Reason: "front matter: " + err.Error()}
	}
	post.Content = string(body)
	post.Slug = slugFromPath(path)
	post.SourcePath = path

	if err := post.validate(); err != nil {
		return Post{}, &InvalidPostError{Path: path, Reason: err.Error()}
	}
	return post, nil
}

func (p Post) validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("missing required field %q", "title")
	}
	if strings.TrimSpace(p.Excerpt) == "" {
		return fmt.Errorf("missing required field %q", "excerpt")
	}
	if strings.TrimSpace(p.Date) == "" {
		return fmt.Errorf("missing required field %q", "date")
	}
	if _, err := time.Parse(dateLayout, p.Date); err != nil {
		return fmt.Errorf("date %q is not ISO 8601 (YYYY-MM-DD)", p.Date)
	}
	return nil
}

func slugFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return Slugify(base)
}

func hasContentExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range contentExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
