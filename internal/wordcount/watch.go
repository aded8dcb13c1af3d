package wordcount

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/quillnotes/quill/internal/q/health"
)

// Watch recomputes progress whenever a note in the tracked folder changes and
// calls onChange with the fresh value. It blocks until ctx is done or the
// watcher fails. Newly created subdirectories are added to the watch.
func (t *Tracker) Watch(ctx context.Context, onChange func(Progress)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return health.Wrap("wordcount: start watcher", err)
	}
	defer watcher.Close()

	if err := watchDir(watcher, t.Dir); err != nil {
		return health.Wrap("wordcount: watch folder", err, "dir", t.Dir)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-watcher.Events:
			// No need to react to chmod, and the baseline file would
			// otherwise re-trigger on every recompute.
			if event.Has(fsnotify.Chmod) || filepath.Base(event.Name) == stateFileName {
				continue
			}
			if event.Has(fsnotify.Create) {
				// New directories need their own watch.
				_ = watchDir(watcher, event.Name)
			}
			progress, err := t.Progress(time.Now())
			if err != nil {
				continue
			}
			onChange(progress)
		case err := <-watcher.Errors:
			return health.Wrap("wordcount: watching", err)
		}
	}
}

// watchDir registers path and all its non-hidden subdirectories. Non-directory
// paths are ignored.
func watchDir(watcher *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && p != path {
			return filepath.SkipDir
		}
		return watcher.Add(p)
	})
}
