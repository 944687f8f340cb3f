// Package watch reports changes to a fortune corpus directory.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event kinds passed to an EventCallback.
const (
	KindCreated = "created"
	KindUpdated = "updated"
	KindDeleted = "deleted"
)

// DefaultDebounce is the quiet period used when Watch is given zero.
const DefaultDebounce = 200 * time.Millisecond

// EventCallback is called once per burst of corpus changes with the kind
// and path of the last event in the burst.
type EventCallback func(kind string, path string)

// Watch starts an fsnotify watcher on root and its subdirectories and
// runs until ctx is cancelled. Events closer together than debounce are
// coalesced into a single callback. Directories created at runtime are
// added to the watch list.
func Watch(ctx context.Context, root string, debounce time.Duration, logger *slog.Logger, cb EventCallback) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	logger.Debug("watcher: started", slog.String("root", root))

	var (
		timer    *time.Timer
		timerCh  <-chan time.Time
		lastKind string
		lastPath string
	)

	schedule := func(kind, path string) {
		lastKind, lastPath = kind, path
		if timer == nil {
			timer = time.NewTimer(debounce)
			timerCh = timer.C
		} else {
			timer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Debug("watcher: stopped")
			return nil

		case <-timerCh:
			logger.Debug("watcher: corpus changed",
				slog.String("kind", lastKind),
				slog.String("path", lastPath))
			if cb != nil {
				cb(lastKind, lastPath)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					}
				}
			}

			switch {
			case ev.Op&fsnotify.Create != 0:
				schedule(KindCreated, ev.Name)
			case ev.Op&fsnotify.Write != 0:
				schedule(KindUpdated, ev.Name)
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				// Rename fires on the old path; the new one arrives as Create.
				schedule(KindDeleted, ev.Name)
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
