package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/iryswiki/iryswiki/internal/api/shared/errors"
	"github.com/iryswiki/iryswiki/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(400, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(404, apierrors.NewNotFoundError(message, details...))
}

// respondDomainError maps a forum error to its status and logs server-side failures
func respondDomainError(c *gin.Context, err error, message string) {
	status, apiErr := apierrors.FromDomainError(err)
	if status >= 500 {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path), zap.String("message", message))
	}
	c.JSON(status, apiErr)
}
