package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/pkg/apperrors"
	"github.com/yigit/eduhub/internal/pkg/logger"
)

// HandleAPIError maps a service error to its response. Errors that carry a
// client message answer 4xx with that message. Anything else is a store
// failure: it is logged and answered with a 500 carrying the handler's
// fallback message and the cause.
func HandleAPIError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse(apperrors.MessageOf(err, "Resource not found")))
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrResourceAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse(apperrors.MessageOf(err, "Bad request")))
	case apperrors.Is(err, apperrors.ErrUnauthorized, apperrors.ErrTokenExpired, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewMessageResponse(apperrors.MessageOf(err, "Authentication required")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewMessageResponse(apperrors.MessageOf(err, "Access denied")))
	default:
		logger.Error().Err(err).
			Str("requestID", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg(fallback)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(fallback, err))
	}
}
