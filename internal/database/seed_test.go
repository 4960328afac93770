package database

import (
	"context"
	"testing"

	"skillsite/internal/models"
)

func TestSeedItems(t *testing.T) {
	items := SeedItems()

	counts := map[models.Section]int{}
	slugs := map[string]bool{}
	for _, it := range items {
		if !it.Section.Valid() {
			t.Errorf("item %q has invalid section %q", it.Title, it.Section)
		}
		if it.Slug == "" {
			t.Errorf("item %q has empty slug", it.Title)
		}
		if slugs[it.Slug] {
			t.Errorf("duplicate slug %q", it.Slug)
		}
		slugs[it.Slug] = true
		if it.Position != counts[it.Section] {
			t.Errorf("item %q position = %d, want %d", it.Title, it.Position, counts[it.Section])
		}
		counts[it.Section]++
		if it.Rating < 0 || it.Rating > 5 {
			t.Errorf("item %q rating %v out of range", it.Title, it.Rating)
		}
	}

	want := map[models.Section]int{
		models.SectionAbout:        1,
		models.SectionService:      9,
		models.SectionWorkshop:     3,
		models.SectionTestimonial:  9,
		models.SectionBlog:         3,
		models.SectionConsultation: 2,
		models.SectionEvent:        2,
		models.SectionVideo:        6,
	}
	for section, n := range want {
		if counts[section] != n {
			t.Errorf("section %s: got %d items, want %d", section, counts[section], n)
		}
	}

	for _, it := range items {
		switch it.Section {
		case models.SectionWorkshop, models.SectionConsultation, models.SectionEvent:
			if !it.HasModal() {
				t.Errorf("item %q should open an info modal", it.Title)
			}
		}
	}
}

func TestSeedItemsReturnsCopy(t *testing.T) {
	a := SeedItems()
	a[0].Title = "changed"
	if b := SeedItems(); b[0].Title == "changed" {
		t.Error("SeedItems shares backing storage between calls")
	}
}

func TestSeedIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(ctx, testDSN(), testRetry)
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed should be callable safely: it inserts only when the catalog is
	// empty. We don't clear the table first because other test packages may
	// be running concurrently against the same database.
	if _, err := Seed(ctx, db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	inserted, err := Seed(ctx, db)
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if inserted {
		t.Error("second Seed should not insert")
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM catalog_items").Scan(&count); err != nil {
		t.Fatalf("count catalog: %v", err)
	}
	if count < len(SeedItems()) {
		t.Errorf("expected at least %d catalog rows, got %d", len(SeedItems()), count)
	}
}
