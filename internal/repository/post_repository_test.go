package repository

import (
	"testing"
	"time"

	"github.com/linque-cms/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Post{}, &models.Job{}, &models.ContactMessage{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestPostListOrdersUnpublishedLast(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	older := timePtr(time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC))
	newer := timePtr(time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC))

	rows := []*models.Post{
		{Slug: "draft-post", Title: "Draft", Status: strPtr("draft")},
		{Slug: "older-post", Title: "Older", Status: strPtr("published"), PublishedAt: older},
		{Slug: "newer-post", Title: "Newer", Status: strPtr("published"), PublishedAt: newer},
	}
	for _, row := range rows {
		if err := repo.Upsert(row); err != nil {
			t.Fatalf("upsert %s: %v", row.Slug, err)
		}
	}

	got, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	wantOrder := []string{"newer-post", "older-post", "draft-post"}
	for i, slug := range wantOrder {
		if got[i].Slug != slug {
			t.Fatalf("position %d: expected %s, got %s", i, slug, got[i].Slug)
		}
	}
}

func TestPostUpsertBySlugOverwrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	first := &models.Post{Slug: "hiring-trends", Title: "Original", Status: strPtr("draft")}
	if err := repo.Upsert(first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := &models.Post{Slug: "hiring-trends", Title: "Updated", Status: strPtr("published")}
	if err := repo.Upsert(second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var count int64
	if err := db.Model(&models.Post{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row after re-upsert, got %d", count)
	}

	saved, err := repo.GetBySlug("hiring-trends")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if saved == nil {
		t.Fatal("expected row, got nil")
	}
	if saved.Title != "Updated" {
		t.Fatalf("expected updated title, got %s", saved.Title)
	}
	if saved.ID != first.ID {
		t.Fatalf("expected stable id %s, got %s", first.ID, saved.ID)
	}
}

func TestPostGetBySlugMissingReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	got, err := repo.GetBySlug("no-such-slug")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestPostDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	row := &models.Post{Slug: "to-delete", Title: "Bye"}
	if err := repo.Upsert(row); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Delete(row.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := repo.GetByID(row.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got != nil {
		t.Fatal("expected row gone after delete")
	}
}

func TestJobListOrdersUndatedLast(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobRepository(db)

	dated := timePtr(time.Date(2024, 2, 26, 8, 0, 0, 0, time.UTC))
	rows := []*models.Job{
		{Slug: "undated-role", Title: "Undated", Status: strPtr("published")},
		{Slug: "dated-role", Title: "Dated", Status: strPtr("published"), PostedAt: dated},
	}
	for _, row := range rows {
		if err := repo.Upsert(row); err != nil {
			t.Fatalf("upsert %s: %v", row.Slug, err)
		}
	}

	got, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Slug != "dated-role" || got[1].Slug != "undated-role" {
		t.Fatalf("unexpected order: %s, %s", got[0].Slug, got[1].Slug)
	}
}

func TestPostListGuardsNullUpdatedAtTiebreak(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	published := timePtr(time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC))
	rows := []*models.Post{
		{Slug: "touched", Title: "Touched", Status: strPtr("published"), PublishedAt: published},
		{Slug: "untouched", Title: "Untouched", Status: strPtr("published"), PublishedAt: published},
	}
	for _, row := range rows {
		if err := repo.Upsert(row); err != nil {
			t.Fatalf("upsert %s: %v", row.Slug, err)
		}
	}
	// Rows written outside the ORM can carry a NULL updated_at; those sort
	// after dated rows on the tiebreak, same as the primary column.
	if err := db.Exec("UPDATE posts SET updated_at = NULL WHERE slug = ?", "untouched").Error; err != nil {
		t.Fatalf("null updated_at: %v", err)
	}

	var slugs []string
	if err := db.Model(&models.Post{}).Order(publishedOrder("published_at")).Pluck("slug", &slugs).Error; err != nil {
		t.Fatalf("list slugs: %v", err)
	}
	if len(slugs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(slugs))
	}
	if slugs[0] != "touched" || slugs[1] != "untouched" {
		t.Fatalf("expected touched before untouched, got %s, %s", slugs[0], slugs[1])
	}
}
