package public

import (
	"errors"

	"github.com/linque-cms/internal/http/response"
	"github.com/linque-cms/internal/service"

	"github.com/gin-gonic/gin"
)

// GetPosts lists published posts.
func (h *Handler) GetPosts(c *gin.Context) {
	response.Success(c, h.ContentCache.ListPosts(false))
}

// GetPost fetches one published post by slug.
func (h *Handler) GetPost(c *gin.Context) {
	slug := c.Param("slug")
	post, err := h.ContentCache.GetPostBySlug(slug, false)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		respondError(c, response.CodeInternal, "post fetch failed", err)
		return
	}
	response.Success(c, post)
}

// GetJobs lists published job postings.
func (h *Handler) GetJobs(c *gin.Context) {
	response.Success(c, h.ContentCache.ListJobs(false))
}

// GetJob fetches one published job posting by slug.
func (h *Handler) GetJob(c *gin.Context) {
	slug := c.Param("slug")
	job, err := h.ContentCache.GetJobBySlug(slug, false)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "job not found")
			return
		}
		respondError(c, response.CodeInternal, "job fetch failed", err)
		return
	}
	response.Success(c, job)
}
