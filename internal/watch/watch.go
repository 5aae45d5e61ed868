// Package watch re-runs a callback whenever a file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events editors produce for one save
const DefaultDebounce = 50 * time.Millisecond

// Options configures Run
type Options struct {
	Debounce time.Duration
	Logger   *slog.Logger
}

// Run calls fn once, then again after every write or create of path, until
// ctx is cancelled. The parent directory is watched so that editors which save
// by renaming a temporary file are seen. Errors from fn are logged and do not
// stop the watch.
func Run(ctx context.Context, path string, opts Options, fn func() error) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	run := func() {
		if err := fn(); err != nil {
			opts.Logger.Error("rescan failed", "path", path, "error", err)
		}
	}
	run()

	timer := time.NewTimer(opts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				opts.Logger.Debug("change detected", "path", path, "op", ev.Op.String())
				timer.Reset(opts.Debounce)
			}

		case <-timer.C:
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			opts.Logger.Warn("watch error", "path", path, "error", err)
		}
	}
}
