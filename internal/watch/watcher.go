// Package watch reports changes below a directory tree so cached deck data
// can be dropped and open viewers reloaded.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups bursts of events (an exporter rewriting a whole
// deck) into one notification.
const DefaultDebounce = 150 * time.Millisecond

// Watcher watches a directory and all of its subdirectories.
type Watcher struct {
	fsw      *fsnotify.Watcher
	root     string
	logger   *clog.Logger
	debounce time.Duration
	onChange []func()
}

// New creates a Watcher for root. Each callback runs once per debounced
// burst of filesystem events, on the watcher goroutine.
func New(root string, logger *clog.Logger, onChange ...func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:      fsw,
		root:     root,
		logger:   logger,
		debounce: DefaultDebounce,
		onChange: onChange,
	}
	if err := w.addTree(root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// SetDebounce changes the quiet period before callbacks fire.
func (w *Watcher) SetDebounce(d time.Duration) { w.debounce = d }

// addTree registers dir and every directory below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == dir {
				return walkErr
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			w.logger.Warn("watch: cannot watch directory", "dir", path, "err", err)
		}
		return nil
	})
}

// Run processes events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = w.addTree(ev.Name)
				}
			}
			w.logger.Debug("watch: event", "op", ev.Op.String(), "path", ev.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch: error", "err", err)

		case <-fire:
			fire = nil
			for _, fn := range w.onChange {
				fn()
			}
		}
	}
}
