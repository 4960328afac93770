package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the catalog with the initial site content. It does nothing
// if any catalog row exists, so edits made directly in the database survive
// restarts. Returns true if rows were inserted.
func Seed(ctx context.Context, db *sql.DB) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM catalog_items").Scan(&count); err != nil {
		return false, fmt.Errorf("seed check catalog: %w", err)
	}

	if count > 0 {
		slog.Info("catalog already seeded, skipping")
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	items := SeedItems()
	for _, it := range items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO catalog_items
				(slug, section, position, title, subtitle, body, tag, author, date,
				 rating, url, image_url, modal_title, modal_body)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		`, it.Slug, string(it.Section), it.Position, it.Title, it.Subtitle, it.Body, it.Tag,
			it.Author, it.Date, it.Rating, it.URL, it.ImageURL, it.ModalTitle, it.ModalBody)
		if err != nil {
			return false, fmt.Errorf("seed insert %s: %w", it.Slug, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("catalog seeded", "items", len(items))
	return true, nil
}
