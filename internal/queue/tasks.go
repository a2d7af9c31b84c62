package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// DefaultQueue is the queue all tasks land on unless overridden.
	DefaultQueue = "default"

	// TaskSitemapRebuild regenerates the sitemap after a content write.
	TaskSitemapRebuild = "sitemap:rebuild"
)

// SitemapRebuildPayload names the content type whose write triggered the
// rebuild, for logging only.
type SitemapRebuildPayload struct {
	Resource string `json:"resource"`
}

// NewSitemapRebuildTask builds the rebuild task.
func NewSitemapRebuildTask(payload SitemapRebuildPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSitemapRebuild, body), nil
}
