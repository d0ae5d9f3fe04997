package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/pkg/validation"
)

// Require rejects the request with a 400 and the rule's message when a
// required input is missing, before any handler or store work runs.
// Body rules keep the raw body cached so handlers can bind it again.
func Require(rule validation.Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		var values map[string]interface{}

		switch rule.Source {
		case validation.Query:
			values = make(map[string]interface{})
			for key, vals := range c.Request.URL.Query() {
				if len(vals) > 0 {
					values[key] = vals[0]
				}
			}
		default:
			// a malformed or empty body leaves values nil, so every field is missing
			if err := c.ShouldBindBodyWith(&values, binding.JSON); err != nil {
				values = nil
			}
		}

		if !rule.Check(values) {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewMessageResponse(rule.Message))
			return
		}
		c.Next()
	}
}
