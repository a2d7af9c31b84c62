package admin

import (
	"github.com/linque-cms/internal/content"
	"github.com/linque-cms/internal/http/response"
	"github.com/linque-cms/internal/queue"

	"github.com/gin-gonic/gin"
)

// GetPosts lists every post, drafts included. Admin reads skip the cache so
// edits are visible immediately.
func (h *Handler) GetPosts(c *gin.Context) {
	response.Success(c, h.ContentService.ListPosts(true))
}

// GetPost fetches one post by slug, drafts included.
func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.ContentService.GetPostBySlug(c.Param("slug"), true)
	if err != nil {
		respondContentError(c, err, "post fetch failed")
		return
	}
	response.Success(c, post)
}

// UpsertPost creates or overwrites a post keyed on its slug.
func (h *Handler) UpsertPost(c *gin.Context) {
	var input content.Post
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid post payload")
		return
	}
	saved, err := h.ContentService.UpsertPost(input)
	if err != nil {
		respondContentError(c, err, "post save failed")
		return
	}
	h.afterContentWrite("posts")
	response.Success(c, saved)
}

// DeletePost removes a post by id.
func (h *Handler) DeletePost(c *gin.Context) {
	if err := h.ContentService.DeletePost(c.Param("id")); err != nil {
		respondContentError(c, err, "post delete failed")
		return
	}
	h.afterContentWrite("posts")
	response.SuccessWithMsg(c, "deleted", nil)
}

// GetJobs lists every job posting, drafts included.
func (h *Handler) GetJobs(c *gin.Context) {
	response.Success(c, h.ContentService.ListJobs(true))
}

// GetJob fetches one job posting by slug, drafts included.
func (h *Handler) GetJob(c *gin.Context) {
	job, err := h.ContentService.GetJobBySlug(c.Param("slug"), true)
	if err != nil {
		respondContentError(c, err, "job fetch failed")
		return
	}
	response.Success(c, job)
}

// UpsertJob creates or overwrites a job posting keyed on its slug.
func (h *Handler) UpsertJob(c *gin.Context) {
	var input content.Job
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid job payload")
		return
	}
	saved, err := h.ContentService.UpsertJob(input)
	if err != nil {
		respondContentError(c, err, "job save failed")
		return
	}
	h.afterContentWrite("jobs")
	response.Success(c, saved)
}

// DeleteJob removes a job posting by id.
func (h *Handler) DeleteJob(c *gin.Context) {
	if err := h.ContentService.DeleteJob(c.Param("id")); err != nil {
		respondContentError(c, err, "job delete failed")
		return
	}
	h.afterContentWrite("jobs")
	response.SuccessWithMsg(c, "deleted", nil)
}

// afterContentWrite invalidates the read cache and schedules a sitemap
// rebuild. With the queue disabled the sitemap is rebuilt inline.
func (h *Handler) afterContentWrite(resource string) {
	switch resource {
	case "posts":
		h.ContentCache.InvalidatePosts()
	case "jobs":
		h.ContentCache.InvalidateJobs()
	}
	if h.QueueClient.Enabled() {
		if err := h.QueueClient.EnqueueSitemapRebuild(queue.SitemapRebuildPayload{Resource: resource}); err == nil {
			return
		}
	}
	h.SitemapService.Rebuild()
}
