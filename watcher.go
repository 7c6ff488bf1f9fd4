package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"shelf_backend/logging"
)

// Scanner imports every supported file under a directory. Satisfied by
// *importer.Importer.
type Scanner interface {
	ScanDirectory(ctx context.Context, dir string) (imported, skipped, failed int, err error)
}

// Watcher polls the library directory and imports files dropped into it.
// Duplicate detection in the importer makes repeated scans of the same
// files cheap no-ops.
type Watcher struct {
	scanner  Scanner
	dir      string
	interval time.Duration
	logger   *logging.Logger
	done     chan struct{}
}

// NewWatcher creates a Watcher. interval must be positive.
func NewWatcher(scanner Scanner, dir string, interval time.Duration, logger *logging.Logger) *Watcher {
	return &Watcher{
		scanner:  scanner,
		dir:      dir,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Done returns a channel that is closed when the watcher has stopped.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Start scans immediately and then on every tick until ctx is cancelled.
// Scan errors are logged and the next tick retries; a transient read
// failure must not kill the watch loop.
func (w *Watcher) Start(ctx context.Context) {
	defer close(w.done)

	w.scanOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stopping watcher", zap.Error(ctx.Err()))
			return
		case <-ticker.C:
			w.scanOnce(ctx)
		}
	}
}

func (w *Watcher) scanOnce(ctx context.Context) {
	imported, skipped, failed, err := w.scanner.ScanDirectory(ctx, w.dir)
	if err != nil {
		w.logger.Error("library scan failed",
			zap.String("dir", w.dir),
			zap.Error(err),
		)
		return
	}
	if imported > 0 || failed > 0 {
		w.logger.Info("library scan complete",
			zap.Int("imported", imported),
			zap.Int("skipped", skipped),
			zap.Int("failed", failed),
		)
	}
}
