package worker

import (
	"context"
	"encoding/json"

	"github.com/linque-cms/internal/logger"
	"github.com/linque-cms/internal/provider"
	"github.com/linque-cms/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer executes queued tasks against the shared services.
type Consumer struct {
	*provider.Container
}

func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register attaches task handlers to the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskSitemapRebuild, c.handleSitemapRebuild)
}

func (c *Consumer) handleSitemapRebuild(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_sitemap_rebuild_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.SitemapRebuildPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_sitemap_rebuild_unmarshal_failed", "error", err)
		return err
	}
	if c.SitemapService == nil {
		logger.Warnw("worker_sitemap_rebuild_skip_service_nil", "resource", payload.Resource)
		return nil
	}
	c.SitemapService.Rebuild()
	logger.Debugw("worker_sitemap_rebuilt", "resource", payload.Resource)
	return nil
}
