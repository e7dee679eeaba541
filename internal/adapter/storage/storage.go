// Package storage implements the durable local key-value store behind
// the cart and category snapshots, backed by an embedded LevelDB
// database.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/solemarket/storefront/internal/core/port"
)

var _ port.SnapshotStore = (*SnapshotStore)(nil)

type SnapshotStore struct {
	db *leveldb.DB
}

func NewSnapshotStore(path string) (*SnapshotStore, error) {
	const op = "NewSnapshotStore"

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open %q: %w", op, path, err)
	}

	slog.Info("snapshot store is open", "op", op, "path", path)
	return &SnapshotStore{db}, nil
}

func (s *SnapshotStore) Read(ctx context.Context, key string) ([]byte, error) {
	const op = "SnapshotStore.Read"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := s.db.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, port.ErrSnapshotNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return data, nil
}

// Write replaces the whole value under key.
func (s *SnapshotStore) Write(ctx context.Context, key string, value []byte) error {
	const op = "SnapshotStore.Write"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.db.Put([]byte(key), value, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *SnapshotStore) Close() {
	const op = "SnapshotStore.Close"
	log := slog.With("op", op)

	if err := s.db.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("snapshot store is closed")
}
