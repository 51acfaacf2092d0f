package record

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Reload is published after the data directory changes. Exactly one of
// Dataset and Err is set.
type Reload struct {
	Dataset *Dataset
	Err     error
	Files   []string
	Time    time.Time
}

// Watcher monitors a fixture directory and re-fetches on change.
type Watcher struct {
	src      Source
	watcher  *fsnotify.Watcher
	debounce time.Duration
	dir      string
	logger   *zap.Logger
}

// NewWatcher sets up an fsnotify watch on dir. Changes are re-fetched
// through src, which is normally a FileSource rooted at the same dir.
func NewWatcher(dir string, src Source, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch directory %s: %w", dir, err)
	}

	return &Watcher{
		src:      src,
		watcher:  fsw,
		debounce: 150 * time.Millisecond,
		dir:      dir,
		logger:   logger,
	}, nil
}

// SetDebounce overrides the coalescing window. Must be called before Watch.
func (w *Watcher) SetDebounce(d time.Duration) {
	if d > 0 {
		w.debounce = d
	}
}

// Watch starts watching and returns a channel of reloads. Cancelling the
// context stops watching; the channel is closed when the goroutine exits.
func (w *Watcher) Watch(ctx context.Context) <-chan Reload {
	out := make(chan Reload, 8)

	go func() {
		defer close(out)

		// Coalesce bursts of writes (editors save in several steps).
		debounceTimer := time.NewTimer(0)
		if !debounceTimer.Stop() {
			<-debounceTimer.C
		}
		defer debounceTimer.Stop()

		pending := make(map[string]struct{})

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !isFixture(event.Name) {
					continue
				}
				pending[filepath.Base(event.Name)] = struct{}{}
				debounceTimer.Reset(w.debounce)

			case <-debounceTimer.C:
				if len(pending) == 0 {
					continue
				}
				files := make([]string, 0, len(pending))
				for f := range pending {
					files = append(files, f)
				}
				clear(pending)

				r := Reload{Files: files, Time: time.Now()}
				ds, err := w.src.Fetch(ctx)
				if err != nil {
					w.logger.Warn("record reload failed", zap.Strings("files", files), zap.Error(err))
					r.Err = err
				} else {
					w.logger.Info("records reloaded", zap.Strings("files", files), zap.Int("records", ds.Len()))
					r.Dataset = ds
				}

				select {
				case out <- r:
				case <-ctx.Done():
					return
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				// Keep watching.
				w.logger.Warn("fsnotify error", zap.String("dir", w.dir), zap.Error(err))
			}
		}
	}()

	return out
}

// Close stops watching and releases the fsnotify handle.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// isFixture skips editor swap files and anything that is not a fixture.
func isFixture(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.HasSuffix(base, ".yaml")
}
