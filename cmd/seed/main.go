package main

import (
	"github.com/linque-cms/internal/config"
	"github.com/linque-cms/internal/content"
	"github.com/linque-cms/internal/logger"
	"github.com/linque-cms/internal/models"
	"github.com/linque-cms/internal/repository"

	"github.com/joho/godotenv"
)

// Seeds the remote content store with the compiled-in catalog so a fresh
// deployment starts from the same content the catalog-only site serves.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if !cfg.Database.Configured() {
		stdLog.Fatalf("no content store configured, nothing to seed")
	}

	db, err := models.OpenDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	})
	if err != nil {
		stdLog.Fatalf("failed to connect to content store: %v", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		stdLog.Fatalf("failed to migrate content store: %v", err)
	}

	postRepo := repository.NewPostRepository(db)
	for _, post := range content.CatalogPosts() {
		row := content.ToPostRow(post)
		if err := postRepo.Upsert(&row); err != nil {
			stdLog.Fatalf("failed to seed post %s: %v", post.Slug, err)
		}
		logger.Infow("seeded_post", "slug", post.Slug)
	}

	jobRepo := repository.NewJobRepository(db)
	for _, job := range content.CatalogJobs() {
		row := content.ToJobRow(job)
		if err := jobRepo.Upsert(&row); err != nil {
			stdLog.Fatalf("failed to seed job %s: %v", job.Slug, err)
		}
		logger.Infow("seeded_job", "slug", job.Slug)
	}

	stdLog.Printf("seed complete: %d posts, %d jobs", len(content.CatalogPosts()), len(content.CatalogJobs()))
}
