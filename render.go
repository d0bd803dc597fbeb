package inkpress

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
)

// writePage renders a templ component into an HTML file, creating parent
// directories as needed.
func writePage(ctx context.Context, path string, cmp templ.Component) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("inkpress: create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("inkpress: create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := cmp.Render(ctx, w); err != nil {
		f.Close()
		return fmt.Errorf("inkpress: render %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
