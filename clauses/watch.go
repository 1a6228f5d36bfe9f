package clauses

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultReloadDelay is how long a watcher waits for writes to settle
const DefaultReloadDelay = 250 * time.Millisecond

// CatalogWatcher reloads a YAML catalog file into a LiveSelector whenever
// the file changes. A file that fails to load leaves the previous catalog
// in place.
type CatalogWatcher struct {
	path   string
	live   *LiveSelector
	logger *zap.Logger
	delay  time.Duration

	// OnReload, if set, is called after every reload attempt
	OnReload func(catalog *Catalog, err error)
}

// NewCatalogWatcher creates a watcher for path feeding live
func NewCatalogWatcher(path string, live *LiveSelector, logger *zap.Logger) *CatalogWatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogWatcher{
		path:   filepath.Clean(path),
		live:   live,
		logger: logger,
		delay:  DefaultReloadDelay,
	}
}

// SetDelay changes the settle delay
func (w *CatalogWatcher) SetDelay(d time.Duration) {
	w.delay = d
}

// Run watches until ctx is cancelled. The parent directory is watched
// rather than the file so editors that save by rename are picked up.
func (w *CatalogWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.logger.Info("Watching clause catalog", zap.String("path", w.path))

	timer := time.NewTimer(w.delay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.delay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Catalog watcher error", zap.Error(err))

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *CatalogWatcher) reload() {
	catalog, err := LoadCatalogFile(w.path)
	if err != nil {
		w.logger.Warn("Catalog reload failed, keeping previous catalog", zap.String("path", w.path), zap.Error(err))
	} else {
		w.live.Swap(catalog)
		w.logger.Info("Clause catalog reloaded", zap.String("path", w.path), zap.Int("clauses", catalog.Len()))
		for _, warning := range catalog.Check() {
			w.logger.Warn("Clause catalog problem", zap.String("warning", warning))
		}
	}
	if w.OnReload != nil {
		w.OnReload(catalog, err)
	}
}
