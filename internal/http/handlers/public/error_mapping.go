package public

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

func respondContactError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, err.Error(), nil)
	case errors.Is(err, service.ErrStoreNotConfigured):
		respondError(c, response.CodeInternal, "contact inbox unavailable", err)
	default:
		respondError(c, response.CodeInternal, "contact submission failed", err)
	}
}
