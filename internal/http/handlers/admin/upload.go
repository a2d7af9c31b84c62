package admin

import (
	"github.com/linque-cms/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UploadAsset stores a post asset and returns its public URL. The post form
// field scopes the bucket key; it defaults to a shared folder.
func (h *Handler) UploadAsset(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	postSlug := c.DefaultPostForm("post", "shared")

	url, err := h.UploadService.SaveAsset(c.Request.Context(), file, postSlug)
	if err != nil {
		respondContentError(c, err, "upload failed")
		return
	}
	response.Success(c, gin.H{"url": url})
}
