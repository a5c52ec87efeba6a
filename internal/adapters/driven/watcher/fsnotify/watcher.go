// Package fsnotify watches the community record directory for changes.
package fsnotify

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/calgarypulse/pulse-qa/internal/core/ports/driven"
	"github.com/calgarypulse/pulse-qa/internal/logger"
)

// Ensure RecordWatcher implements the interface.
var _ driven.RecordWatcher = (*RecordWatcher)(nil)

// RecordWatcher delivers record file changes using fsnotify.
type RecordWatcher struct {
	watcher *fsnotify.Watcher
}

// NewRecordWatcher creates a watcher on the record directory.
func NewRecordWatcher(dir string) (*RecordWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	return &RecordWatcher{watcher: w}, nil
}

// Watch blocks and delivers record changes until the context is cancelled.
// Only .json files produce events; Rename counts as removal, the same way
// fsnotify reports a file moved out of the directory.
func (w *RecordWatcher) Watch(ctx context.Context, events chan<- driven.RecordEvent) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(event.Name) != ".json" {
				continue
			}

			var op driven.RecordEventOp
			switch {
			case event.Op.Has(fsnotify.Create), event.Op.Has(fsnotify.Write):
				op = driven.RecordWritten
			case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
				op = driven.RecordRemoved
			default:
				continue
			}

			select {
			case events <- driven.RecordEvent{Path: event.Name, Op: op}:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// Close releases resources.
func (w *RecordWatcher) Close() error {
	return w.watcher.Close()
}
