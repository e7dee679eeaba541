package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"

	"github.com/solemarket/storefront/internal/core/port"
)

// Watcher reloads the catalog file on change and swaps the result into
// the receiver. A file that fails to load keeps the previous catalog.
type Watcher struct {
	file     string
	receiver port.CatalogReceiver
	fsw      *fsnotify.Watcher
}

func NewWatcher(file string, receiver port.CatalogReceiver) (*Watcher, error) {
	const op = "NewWatcher"

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := fsw.Add(file); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("%s: failed to watch %q: %w", op, file, err)
	}

	return &Watcher{file: file, receiver: receiver, fsw: fsw}, nil
}

// Run blocks until the context ends or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	const op = "Watcher.Run"
	log := slog.With("op", op, "file", w.file)

	log.Info("watching catalog file")
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload(log)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Error("watch error", "err", err)
		}
	}
}

func (w *Watcher) reload(log *slog.Logger) {
	ps, err := Load(w.file)
	if err != nil {
		log.Error("failed to reload catalog, keeping previous", "err", err)
		return
	}
	w.receiver.Replace(ps)
	log.Info("catalog reloaded", "products", len(ps))
}

func (w *Watcher) Close() {
	if err := w.fsw.Close(); err != nil {
		slog.Error("failed to close catalog watcher", "err", err)
	}
}
