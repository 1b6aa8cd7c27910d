package scene

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/logger"
)

// Watch reports changes to any of files on the returned channel, coalescing
// bursts within debounce into one notification carrying the last changed path.
// Directories are watched rather than files so editors that replace files on
// save are still seen, and files that do not exist yet are reported once
// created. Directories that cannot be watched are skipped; Watch fails only
// when none can be. The channel closes when ctx is done.
func Watch(ctx context.Context, files []string, debounce time.Duration) (<-chan string, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	wanted := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("resolving %s: %w", f, err)
		}
		wanted[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	log := logger.Named("watch")
	var (
		watched int
		lastErr error
	)
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			log.Debug("skipping directory", zap.String("dir", dir), zap.Error(err))
			lastErr = fmt.Errorf("watching %s: %w", dir, err)
			continue
		}
		watched++
	}
	if watched == 0 {
		w.Close()
		if lastErr == nil {
			lastErr = errors.New("no files to watch")
		}
		return nil, lastErr
	}

	out := make(chan string, 1)
	go func() {
		defer close(out)
		defer w.Close()

		var (
			timer   *time.Timer
			fire    <-chan time.Time
			pending string
		)
		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				abs, err := filepath.Abs(ev.Name)
				if err != nil || !wanted[abs] {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				log.Debug("scene file changed", zap.String("path", abs), zap.Stringer("op", ev.Op))
				pending = abs
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C

			case <-fire:
				fire = nil
				select {
				case out <- pending:
				default: // a reload is already queued
				}

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("watcher error", zap.Error(err))
			}
		}
	}()
	return out, nil
}
