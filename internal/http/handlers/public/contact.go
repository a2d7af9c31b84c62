package public

import (
	"github.com/linque-cms/internal/http/response"
	"github.com/linque-cms/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitContact accepts a contact form submission.
func (h *Handler) SubmitContact(c *gin.Context) {
	var input service.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	msg, err := h.ContactService.Submit(input)
	if err != nil {
		respondContactError(c, err)
		return
	}
	response.SuccessWithMsg(c, "message received", gin.H{"id": msg.ID})
}
