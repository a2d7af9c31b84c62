package provider

import (
	"context"
	"time"

	"github.com/linque-cms/internal/cache"
	"github.com/linque-cms/internal/config"
	"github.com/linque-cms/internal/logger"
	"github.com/linque-cms/internal/queue"
	"github.com/linque-cms/internal/repository"
	"github.com/linque-cms/internal/service"
	"github.com/linque-cms/internal/storage"

	"gorm.io/gorm"
)

// Container wires repositories and services once at startup. A nil db means
// no content store is configured; the content services then run catalog-only
// and writes fail closed.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Store       storage.Storage

	// Repositories
	AdminRepo   repository.AdminRepository
	PostRepo    repository.PostRepository
	JobRepo     repository.JobRepository
	ContactRepo repository.ContactMessageRepository

	// Services
	AuthService    *service.AuthService
	ContentService *service.ContentService
	ContentCache   *service.ContentCache
	SitemapService *service.SitemapService
	UploadService  *service.UploadService
	ContactService *service.ContactService
}

// NewContainer builds the dependency graph.
func NewContainer(cfg *config.Config, db *gorm.DB) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initStorage()
	c.initRepositories(db)
	c.initServices()

	return c
}

func (c *Container) initStorage() {
	if !c.Config.Storage.Configured() {
		logger.Infow("asset_storage_disabled")
		return
	}
	store, err := storage.NewS3StorageFromEnv(context.Background(), c.Config.Storage.Region, c.Config.Storage.Bucket)
	if err != nil {
		logger.Warnw("asset_storage_init_failed", "error", err)
		return
	}
	c.Store = store
}

func (c *Container) initRepositories(db *gorm.DB) {
	if db == nil {
		logger.Infow("content_store_disabled")
		return
	}
	c.AdminRepo = repository.NewAdminRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
	c.JobRepo = repository.NewJobRepository(db)
	c.ContactRepo = repository.NewContactMessageRepository(db)
}

func (c *Container) initServices() {
	cfg := c.Config

	c.AuthService = service.NewAuthService(cfg, c.AdminRepo)
	c.ContentService = service.NewContentService(c.PostRepo, c.JobRepo)
	c.ContentCache = service.NewContentCache(c.ContentService, time.Duration(cfg.Content.CacheTTLSeconds)*time.Second)
	c.SitemapService = service.NewSitemapService(cfg, c.ContentService)
	c.UploadService = service.NewUploadService(cfg, c.Store)
	c.ContactService = service.NewContactService(c.ContactRepo)
}
