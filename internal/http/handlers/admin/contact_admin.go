package admin

import (
	"strconv"

	handlershared "github.com/linque-cms/internal/http/handlers/shared"
	"github.com/linque-cms/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetContactMessages lists contact form submissions, newest first.
func (h *Handler) GetContactMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	msgs, total, err := h.ContactService.List(page, pageSize)
	if err != nil {
		respondContentError(c, err, "contact list failed")
		return
	}

	totalPage := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPage++
	}
	response.SuccessWithPage(c, msgs, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}
