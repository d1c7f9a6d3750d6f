package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/citemark/pkg/core"
)

// Watch observes the reference tree and emits a core.Event for every change
// to a stored record (.md file). The returned channel is closed when ctx is
// cancelled or the watcher fails. Events for in-flight atomic temp files and
// the git bookkeeping directory are suppressed.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := r.recursiveAdd(watcher); err != nil {
		watcher.Close()
		return nil, err
	}

	events := make(chan core.Event, 16)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return fmt.Errorf("watcher events channel closed")
				}
				r.handleWatchEvent(ctx, watcher, event, events)

			case wErr, ok := <-watcher.Errors:
				if !ok {
					return fmt.Errorf("watcher errors channel closed")
				}
				if r.config.Logger != nil {
					r.config.Logger.Error("fsnotify error", "error", wErr)
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		if r.config.Logger != nil {
			r.config.Logger.Error("watcher stopped", "error", err)
		}
	}))

	return events, nil
}

// recursiveAdd registers the tree root and every existing subdirectory,
// skipping git internals. fsnotify does not watch recursively by itself.
func (r *Repository) recursiveAdd(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(r.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func (r *Repository) handleWatchEvent(ctx context.Context, watcher *fsnotify.Watcher, event fsnotify.Event, events chan<- core.Event) {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, TempFilePrefix) || name == ".citemark.lock" {
		return
	}

	// New shard directories appear while records are being written; start
	// watching them as they show up.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if filepath.Base(event.Name) != ".git" {
				_ = watcher.Add(event.Name)
			}
			return
		}
	}

	if filepath.Ext(event.Name) != ".md" {
		return
	}

	eType := mapEventType(event)
	if eType == "" {
		return
	}

	rel, err := filepath.Rel(r.Path, event.Name)
	if err != nil {
		return
	}

	select {
	case events <- core.Event{
		Type:      eType,
		Path:      filepath.ToSlash(rel),
		Timestamp: time.Now().Unix(),
	}:
	case <-ctx.Done():
	}
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}
