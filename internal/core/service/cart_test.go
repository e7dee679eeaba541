package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solemarket/storefront/internal/core/domain"
	"github.com/solemarket/storefront/internal/core/port"
	"github.com/solemarket/storefront/internal/core/service"
	"github.com/solemarket/storefront/pkg/schema"
)

type memStore struct {
	mu       sync.Mutex
	data     map[string][]byte
	writeErr error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (s *memStore) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, port.ErrSnapshotNotFound
	}
	return v, nil
}

func (s *memStore) Write(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.data[key] = value
	return nil
}

func cartSerde(t *testing.T) schema.Serde {
	t.Helper()
	serde, err := schema.NewSerdeCartSnapshotV1()
	require.NoError(t, err)
	return serde
}

func sneaker(id string, price float64) domain.Product {
	rating := 4.5
	return domain.Product{
		ID:           id,
		Name:         "Sneaker " + id,
		Brand:        "Nike",
		Category:     "Zapatillas",
		Type:         "Running",
		Price:        price,
		Image:        "sneaker-" + id + ".jpg",
		Images:       []string{"sneaker-" + id + ".jpg"},
		Availability: domain.InStock,
		Stock:        10,
		Rating:       &rating,
	}
}

func TestCartService(t *testing.T) {

	t.Run("StartsEmpty", func(t *testing.T) {
		s := service.NewCartService(t.Context(), newMemStore(), cartSerde(t), "cart")
		assert.Empty(t, s.Cart().Items)
		assert.Zero(t, s.Cart().Subtotal)
		assert.Zero(t, s.ItemCount())
	})

	t.Run("SubtotalInvariant", func(t *testing.T) {
		s := service.NewCartService(t.Context(), newMemStore(), cartSerde(t), "cart")

		checkInvariant := func() {
			cart := s.Cart()
			var want float64
			for _, it := range cart.Items {
				want += it.Product.Price * float64(it.Quantity)
			}
			assert.InDelta(t, want, cart.Subtotal, 1e-9)
			assert.InDelta(t, cart.Subtotal, cart.Total, 1e-9)
		}

		require.NoError(t, s.Add(t.Context(), sneaker("1", 129.99), 1))
		checkInvariant()
		require.NoError(t, s.Add(t.Context(), sneaker("2", 89.99), 3))
		checkInvariant()
		require.NoError(t, s.SetQuantity(t.Context(), "1", 5))
		checkInvariant()
		require.NoError(t, s.Remove(t.Context(), "2"))
		checkInvariant()
		require.NoError(t, s.Clear(t.Context()))
		checkInvariant()
	})

	t.Run("AddMergesSameProduct", func(t *testing.T) {
		s := service.NewCartService(t.Context(), newMemStore(), cartSerde(t), "cart")

		require.NoError(t, s.Add(t.Context(), sneaker("1", 129.99), 2))
		require.NoError(t, s.Add(t.Context(), sneaker("1", 129.99), 3))

		cart := s.Cart()
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Quantity)
	})

	t.Run("AddRejectsNonPositiveQuantity", func(t *testing.T) {
		s := service.NewCartService(t.Context(), newMemStore(), cartSerde(t), "cart")

		err := s.Add(t.Context(), sneaker("1", 129.99), 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

		err = s.Add(t.Context(), sneaker("1", 129.99), -2)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		assert.Empty(t, s.Cart().Items)
	})

	t.Run("SetQuantityZeroEqualsRemove", func(t *testing.T) {
		mk := func() *service.CartService {
			s := service.NewCartService(t.Context(), newMemStore(), cartSerde(t), "cart")
			require.NoError(t, s.Add(t.Context(), sneaker("1", 129.99), 2))
			require.NoError(t, s.Add(t.Context(), sneaker("2", 89.99), 1))
			return s
		}

		byZero := mk()
		require.NoError(t, byZero.SetQuantity(t.Context(), "1", 0))

		byRemove := mk()
		require.NoError(t, byRemove.Remove(t.Context(), "1"))

		assert.Equal(t, byRemove.Cart(), byZero.Cart())
	})

	t.Run("SetQuantityUnknownIDIsDropped", func(t *testing.T) {
		s := service.NewCartService(t.Context(), newMemStore(), cartSerde(t), "cart")
		require.NoError(t, s.Add(t.Context(), sneaker("1", 129.99), 2))

		require.NoError(t, s.SetQuantity(t.Context(), "nope", 7))

		cart := s.Cart()
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("RemoveUnknownIDIsNoop", func(t *testing.T) {
		s := service.NewCartService(t.Context(), newMemStore(), cartSerde(t), "cart")
		require.NoError(t, s.Add(t.Context(), sneaker("1", 129.99), 1))
		require.NoError(t, s.Remove(t.Context(), "nope"))
		assert.Len(t, s.Cart().Items, 1)
	})

	t.Run("ItemCountSumsQuantities", func(t *testing.T) {
		s := service.NewCartService(t.Context(), newMemStore(), cartSerde(t), "cart")
		require.NoError(t, s.Add(t.Context(), sneaker("1", 129.99), 2))
		require.NoError(t, s.Add(t.Context(), sneaker("2", 89.99), 3))
		assert.Equal(t, 5, s.ItemCount())
	})

	t.Run("RestoreRoundTrip", func(t *testing.T) {
		store := newMemStore()
		serde := cartSerde(t)

		s1 := service.NewCartService(t.Context(), store, serde, "cart")
		require.NoError(t, s1.Add(t.Context(), sneaker("1", 129.99), 2))
		require.NoError(t, s1.Add(t.Context(), sneaker("2", 89.99), 1))

		s2 := service.NewCartService(t.Context(), store, serde, "cart")
		assert.Equal(t, s1.Cart(), s2.Cart())
	})

	t.Run("CorruptSnapshotStartsEmpty", func(t *testing.T) {
		store := newMemStore()
		store.data["cart"] = []byte("definitely not avro")

		s := service.NewCartService(t.Context(), store, cartSerde(t), "cart")
		assert.Empty(t, s.Cart().Items)
		assert.Zero(t, s.Cart().Subtotal)
	})

	t.Run("WriteFailureSurfacedStateKept", func(t *testing.T) {
		store := newMemStore()
		store.writeErr = errors.New("disk full")

		s := service.NewCartService(t.Context(), store, cartSerde(t), "cart")
		err := s.Add(t.Context(), sneaker("1", 129.99), 1)
		require.Error(t, err)

		cart := s.Cart()
		require.Len(t, cart.Items, 1)
		assert.InDelta(t, 129.99, cart.Subtotal, 1e-9)
	})

	t.Run("ClearPersistsEmptyCart", func(t *testing.T) {
		store := newMemStore()
		serde := cartSerde(t)

		s1 := service.NewCartService(t.Context(), store, serde, "cart")
		require.NoError(t, s1.Add(t.Context(), sneaker("1", 129.99), 1))
		require.NoError(t, s1.Clear(t.Context()))

		s2 := service.NewCartService(t.Context(), store, serde, "cart")
		assert.Empty(t, s2.Cart().Items)
	})
}
