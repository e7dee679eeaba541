package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/solemarket/storefront/internal/core/domain"
	"github.com/solemarket/storefront/internal/core/port"
	"github.com/solemarket/storefront/pkg/retry"
	"github.com/solemarket/storefront/pkg/schema"
)

var _ port.CategoryManager = (*CategoryService)(nil)

// CategoryService is the admin-side category record: a managed list
// with its own persisted snapshot, independent from the catalog-derived
// facets shoppers filter by.
type CategoryService struct {
	store      port.SnapshotStore
	serde      schema.Serde
	key        string
	retryCfg   retry.Config
	categories []domain.Category
}

// NewCategoryService restores the managed category list, seeding the
// default category when no snapshot exists or the snapshot cannot be
// read.
func NewCategoryService(
	ctx context.Context, store port.SnapshotStore, serde schema.Serde, key string,
) *CategoryService {
	const op = "NewCategoryService"
	log := slog.With("op", op)

	s := &CategoryService{
		store: store,
		serde: serde,
		key:   key,
		retryCfg: retry.Config{
			MaxAttempts: 3,
			Backoff:     retry.LinearBackoff(50 * time.Millisecond),
		},
		categories: seedCategories(),
	}

	data, err := store.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, port.ErrSnapshotNotFound) {
			log.Warn("failed to read category snapshot, using seed", "err", err)
		}
		return s
	}

	var list schema.CategoryListV1
	if err := serde.Decode(data, &list); err != nil {
		log.Warn("failed to decode category snapshot, using seed", "err", err)
		return s
	}

	s.categories = categoriesFromSchema(list)
	return s
}

func seedCategories() []domain.Category {
	return []domain.Category{{
		ID:          "1",
		Name:        "Zapatillas",
		Description: "Categoría principal de calzado deportivo",
		Active:      true,
	}}
}

// Add assigns a fresh id and appends the category.
func (s *CategoryService) Add(
	ctx context.Context, name, description string, active bool,
) (domain.Category, error) {
	const op = "CategoryService.Add"

	c := domain.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Active:      active,
	}
	s.categories = append(s.categories, c)

	if err := s.persist(ctx, op); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

// Edit merges the non-nil patch fields into the category.
func (s *CategoryService) Edit(
	ctx context.Context, id string, patch domain.CategoryPatch,
) error {
	const op = "CategoryService.Edit"

	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.categories[i].Name = *patch.Name
		}
		if patch.Description != nil {
			s.categories[i].Description = *patch.Description
		}
		if patch.Active != nil {
			s.categories[i].Active = *patch.Active
		}
		return s.persist(ctx, op)
	}
	return fmt.Errorf("%s: %w", op, domain.ErrCategoryNotFound)
}

// Delete removes the category; an unknown id is a no-op.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	const op = "CategoryService.Delete"

	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	return s.persist(ctx, op)
}

func (s *CategoryService) List() []domain.Category {
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *CategoryService) Active() []domain.Category {
	var out []domain.Category
	for _, c := range s.categories {
		if c.Active {
			out = append(out, c)
		}
	}
	return out
}

func (s *CategoryService) persist(ctx context.Context, op string) error {
	data, err := s.serde.Encode(categoriesToSchema(s.categories))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = retry.Do(ctx, s.retryCfg, func() error {
		return s.store.Write(ctx, s.key, data)
	})
	if err != nil {
		slog.Error("failed to persist category snapshot", "op", op, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func categoriesToSchema(cs []domain.Category) schema.CategoryListV1 {
	list := schema.CategoryListV1{Categories: make([]schema.CategoryV1, 0, len(cs))}
	for _, c := range cs {
		list.Categories = append(list.Categories, schema.CategoryV1{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Active:      c.Active,
		})
	}
	return list
}

func categoriesFromSchema(list schema.CategoryListV1) []domain.Category {
	cs := make([]domain.Category, 0, len(list.Categories))
	for _, c := range list.Categories {
		cs = append(cs, domain.Category{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Active:      c.Active,
		})
	}
	return cs
}
