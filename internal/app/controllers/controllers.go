package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/middleware"
	"github.com/yigit/eduhub/internal/pkg/apperrors"
)

// bindBody decodes the JSON body into dst. Required fields were already
// checked by the route's validation rule, which also cached the body.
func bindBody(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindBodyWith(dst, binding.JSON); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid request body"), "")
		return false
	}
	return true
}

// deleted answers a successful unconditional delete
func deleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.NewMessageResponse(message))
}
