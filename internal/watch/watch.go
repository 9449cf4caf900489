// Package watch reloads the rule engine when the rule file changes on disk.
//
// Used by "codeowner serve --watch" so long-running MCP sessions see rule
// edits without a restart. Events are debounced: editors typically emit a
// burst of writes (write, chmod, rename for atomic saves) and we want one
// reload per save, not one per syscall.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period required before a reload fires.
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches a rule file and invokes a reload callback on change.
type Watcher struct {
	path     string
	debounce time.Duration
	reload   func() error

	fsw *fsnotify.Watcher
}

// New creates a watcher for the rule file at path. The reload callback runs
// after each debounced change burst. A zero debounce uses DefaultDebounce.
func New(path string, debounce time.Duration, reload func() error) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the parent directory rather than the file itself: atomic saves
	// replace the file, and a watch on the old inode goes stale.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:     path,
		debounce: debounce,
		reload:   reload,
		fsw:      fsw,
	}, nil
}

// Run processes events until ctx is cancelled. It always returns a non-nil
// reason: ctx.Err() on cancellation, or the watcher error that stopped it.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	base := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			if err := w.reload(); err != nil {
				// Keep serving the previous snapshot; a broken edit
				// mid-save should not take the server down.
				slog.Warn("rule file reload failed", "path", w.path, "error", err)
				continue
			}
			slog.Info("rule file reloaded", "path", w.path)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			return fmt.Errorf("watch %s: %w", w.path, err)
		}
	}
}
