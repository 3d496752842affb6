package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 200 * time.Millisecond

type OnChange func(ctx context.Context)

// FileWatcher calls OnChange when a file is written, created or renamed into
// place. The parent directory is watched since editors replace files on save.
type FileWatcher struct {
	logger   *slog.Logger
	path     string
	onChange OnChange
}

func NewFileWatcher(logger *slog.Logger, path string, onChange OnChange) *FileWatcher {
	return &FileWatcher{logger, path, onChange}
}

// Watch blocks until ctx is done. A missing parent directory is created so a
// config written later is still picked up.
func (w *FileWatcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher: could not create. %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("watcher: could not create %s. %w", dir, err)
	}

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watcher: could not watch %s. %w", dir, err)
	}

	w.logger.InfoContext(ctx, "watcher: watching", slog.String("path", w.path))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			w.logger.DebugContext(ctx, "watcher: change", slog.String("op", event.Op.String()))
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.ErrorContext(ctx, "watcher: error", slog.Any("error", err))
		case <-timer.C:
			w.onChange(ctx)
		}
	}
}
