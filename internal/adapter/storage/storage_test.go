package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solemarket/storefront/internal/adapter/storage"
	"github.com/solemarket/storefront/internal/core/port"
)

func openStore(t *testing.T) *storage.SnapshotStore {
	t.Helper()
	s, err := storage.NewSnapshotStore(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestSnapshotStore(t *testing.T) {

	t.Run("MissingKey", func(t *testing.T) {
		s := openStore(t)

		_, err := s.Read(t.Context(), "cart")
		require.Error(t, err)
		assert.ErrorIs(t, err, port.ErrSnapshotNotFound)
	})

	t.Run("WriteReadRoundTrip", func(t *testing.T) {
		s := openStore(t)

		want := []byte("opaque snapshot blob")
		require.NoError(t, s.Write(t.Context(), "cart", want))

		got, err := s.Read(t.Context(), "cart")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("WriteReplacesWholeValue", func(t *testing.T) {
		s := openStore(t)

		require.NoError(t, s.Write(t.Context(), "cart", []byte("first")))
		require.NoError(t, s.Write(t.Context(), "cart", []byte("second")))

		got, err := s.Read(t.Context(), "cart")
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), got)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		s := openStore(t)

		require.NoError(t, s.Write(t.Context(), "cart", []byte("cart blob")))
		require.NoError(t, s.Write(t.Context(), "categories", []byte("category blob")))

		got, err := s.Read(t.Context(), "categories")
		require.NoError(t, err)
		assert.Equal(t, []byte("category blob"), got)
	})
}
