package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/inkpress/inkpress"
)

const rebuildDelay = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Build the site and rebuild on content changes",
	Long: `Watch performs an initial build, then watches the content and static
directories and rebuilds the site whenever a file changes.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	site := inkpress.New(siteConfig)

	log.Println("inkpress: performing initial build")
	if err := site.Build(cmd.Context()); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range []string{siteConfig.ContentDir, siteConfig.StaticDir} {
		if err := watchTree(watcher, dir); err != nil {
			return err
		}
	}

	// Editors fire bursts of events per save; collapse them into one rebuild.
	debounce := time.NewTimer(rebuildDelay)
	if !debounce.Stop() {
		<-debounce.C
	}

	log.Println("inkpress: watching for changes")
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !handleEvent(watcher, ev) {
				continue
			}
			debounce.Reset(rebuildDelay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("inkpress: watch error: %v", err)
		case <-debounce.C:
			if err := site.Build(cmd.Context()); err != nil {
				// Keep watching so the author can fix the offending file.
				log.Printf("inkpress: rebuild failed: %v", err)
			}
		}
	}
}

// handleEvent reports whether the event warrants a rebuild. Freshly created
// directories join the watch set first, so files written into them later
// still trigger rebuilds.
func handleEvent(watcher *fsnotify.Watcher, ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if ev.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := watchTree(watcher, ev.Name); err != nil {
				log.Printf("inkpress: watch %s: %v", ev.Name, err)
			}
		}
	}
	return true
}

// watchTree registers dir and its subdirectories with the watcher. A
// missing directory is skipped, matching the builder's behavior for the
// static directory.
func watchTree(watcher *fsnotify.Watcher, dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
