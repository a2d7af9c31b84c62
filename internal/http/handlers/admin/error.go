package admin

import (
	"errors"

	handlershared "github.com/linque-cms/internal/http/handlers/shared"
	"github.com/linque-cms/internal/http/response"
	"github.com/linque-cms/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

// respondContentError maps resolver errors onto the envelope. Configuration
// errors surface explicitly; writes have no fallback.
func respondContentError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "record not found")
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, err.Error(), nil)
	case errors.Is(err, service.ErrStoreNotConfigured):
		respondError(c, response.CodeBadRequest, "content store not configured", err)
	case errors.Is(err, service.ErrStorageNotConfigured):
		respondError(c, response.CodeBadRequest, "asset storage not configured", err)
	default:
		respondError(c, response.CodeInternal, fallbackMsg, err)
	}
}
