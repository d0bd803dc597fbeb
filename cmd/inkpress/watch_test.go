package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
)

func newWatcher(t *testing.T) *fsnotify.Watcher {
	t.Helper()
	w, err := fsnotify.NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func watching(w *fsnotify.Watcher, dir string) bool {
	for _, p := range w.WatchList() {
		if p == dir {
			return true
		}
	}
	return false
}

func TestWatchTreeRegistersSubdirectories(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	w := newWatcher(t)
	if err := watchTree(w, root); err != nil {
		t.Fatalf("watchTree failed: %v", err)
	}
	for _, dir := range []string{root, filepath.Join(root, "a"), nested} {
		if !watching(w, dir) {
			t.Errorf("directory %s is not watched: %v", dir, w.WatchList())
		}
	}
}

func TestWatchTreeSkipsMissingDir(t *testing.T) {
	w := newWatcher(t)
	if err := watchTree(w, filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Errorf("missing directory should be skipped, got %v", err)
	}
}

func TestHandleEventAddsCreatedDirectory(t *testing.T) {
	root := t.TempDir()
	w := newWatcher(t)
	if err := watchTree(w, root); err != nil {
		t.Fatal(err)
	}

	created := filepath.Join(root, "drafts")
	if err := os.Mkdir(created, 0o755); err != nil {
		t.Fatal(err)
	}
	if !handleEvent(w, fsnotify.Event{Name: created, Op: fsnotify.Create}) {
		t.Fatal("creating a directory should trigger a rebuild")
	}
	if !watching(w, created) {
		t.Errorf("created directory should join the watch set: %v", w.WatchList())
	}
}

func TestHandleEventIgnoresChmod(t *testing.T) {
	w := newWatcher(t)
	if handleEvent(w, fsnotify.Event{Name: "x", Op: fsnotify.Chmod}) {
		t.Error("chmod alone should not trigger a rebuild")
	}
}
