package worker

import (
	"context"
	"errors"
	"time"

	"github.com/linque-cms/internal/config"
	"github.com/linque-cms/internal/queue"

	"github.com/hibiken/asynq"
)

const sitemapRefreshInterval = time.Hour

// Service runs the asynq consumer alongside a periodic sitemap refresh.
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService creates the worker service. Errors when the queue is disabled;
// callers skip registering the worker in that case.
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.SitemapService != nil {
		go s.runSitemapRefreshLoop(ctx)
	}
	return s.server.Run(s.mux)
}

func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runSitemapRefreshLoop keeps the sitemap current even when no write lands,
// so lastmod dates track content edited directly in the store.
func (s *Service) runSitemapRefreshLoop(ctx context.Context) {
	s.consumer.SitemapService.Rebuild()

	ticker := time.NewTicker(sitemapRefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.consumer.SitemapService.Rebuild()
		}
	}
}
