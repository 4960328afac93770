// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"skillsite/internal/models"
)

const allItemsKey = "catalog:all"

// CatalogStore reads the site catalog. Rows change rarely, so the full
// list is kept in an in-process cache for ttl after each load.
type CatalogStore struct {
	db    *sql.DB
	cache *gocache.Cache
}

// NewCatalogStore creates a CatalogStore. A non-positive ttl disables the
// in-process cache.
func NewCatalogStore(db *sql.DB, ttl time.Duration) *CatalogStore {
	s := &CatalogStore{db: db}
	if ttl > 0 {
		s.cache = gocache.New(ttl, 2*ttl)
	}
	return s
}

// All returns every catalog item ordered by section and position.
func (s *CatalogStore) All(ctx context.Context) ([]models.Item, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(allItemsKey); ok {
			return v.([]models.Item), nil
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, section, position, title, subtitle, body, tag, author, date,
		       rating, url, image_url, modal_title, modal_body, created_at, updated_at
		FROM catalog_items
		ORDER BY section, position, title
	`)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	if s.cache != nil {
		s.cache.SetDefault(allItemsKey, items)
	}
	return items, nil
}

// FindBySlug returns the item with the given slug, or nil if none exists.
func (s *CatalogStore) FindBySlug(ctx context.Context, slug string) (*models.Item, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Slug == slug {
			it := all[i]
			return &it, nil
		}
	}
	return nil, nil
}

// Invalidate drops the in-process copy so the next read hits Postgres.
func (s *CatalogStore) Invalidate() {
	if s.cache != nil {
		s.cache.Flush()
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(sc scanner) (models.Item, error) {
	var it models.Item
	var section string
	err := sc.Scan(
		&it.ID, &it.Slug, &section, &it.Position, &it.Title, &it.Subtitle, &it.Body,
		&it.Tag, &it.Author, &it.Date, &it.Rating, &it.URL, &it.ImageURL,
		&it.ModalTitle, &it.ModalBody, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return it, fmt.Errorf("scan catalog item: %w", err)
	}
	it.Section = models.Section(section)
	return it, nil
}
