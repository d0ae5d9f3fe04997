package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/eduhub/internal/app/models"
	"github.com/yigit/eduhub/internal/pkg/apperrors"
	"github.com/yigit/eduhub/internal/pkg/auth"
	"github.com/yigit/eduhub/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"not found", apperrors.NewResourceNotFoundError("No users found."), http.StatusNotFound, `{"message":"No users found."}`},
		{"bad request", apperrors.NewBadRequestError("User already exists"), http.StatusBadRequest, `{"message":"User already exists"}`},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, `{"message":"Authentication required"}`},
		{"forbidden", apperrors.NewForbiddenError("Access denied"), http.StatusForbidden, `{"message":"Access denied"}`},
		{"store failure", errors.New("connection reset by peer"), http.StatusInternalServerError,
			`{"message":"Error fetching users","error":"connection reset by peer"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) { HandleAPIError(c, tt.err, "Error fetching users") })

			w := perform(r, http.MethodGet, "/", "", nil)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestRequireBody(t *testing.T) {
	reached := false
	r := gin.New()
	r.PUT("/role", Require(validation.RequireBody("id and role are required", "id", "role")), func(c *gin.Context) {
		reached = true
		var req struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		}
		require.NoError(t, c.ShouldBindBodyWith(&req, binding.JSON))
		c.JSON(http.StatusOK, gin.H{"id": req.ID, "role": req.Role})
	})

	w := perform(r, http.MethodPut, "/role", `{"id":"64f0"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"id and role are required"}`, w.Body.String())
	assert.False(t, reached)

	w = perform(r, http.MethodPut, "/role", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodPut, "/role", `{"id":"64f0","role":"lecturer"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"64f0","role":"lecturer"}`, w.Body.String())
	assert.True(t, reached)
}

func TestRequireQuery(t *testing.T) {
	r := gin.New()
	r.GET("/profile", Require(validation.RequireQuery("uid is required", "uid")), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusBadRequest, perform(r, http.MethodGet, "/profile", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, perform(r, http.MethodGet, "/profile?uid=", "", nil).Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/profile?uid=u1", "", nil).Code)
}

func TestRequestIDPropagation(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := perform(r, http.MethodGet, "/", "", map[string]string{RequestIDHeader: "req-42"})
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-42", w.Body.String())

	w = perform(r, http.MethodGet, "/", "", nil)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
}

func TestAdminGuard(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "eduhub"})
	m := NewAuthMiddleware(jwtService)

	r := gin.New()
	r.GET("/admin", m.JWTAuth(), m.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(UIDKey))
	})

	adminToken, err := jwtService.GenerateToken(&models.User{UID: "admin-1", Role: models.RoleAdmin})
	require.NoError(t, err)
	studentToken, err := jwtService.GenerateToken(&models.User{UID: "student-1", Role: models.RoleStudent})
	require.NoError(t, err)

	w := perform(r, http.MethodGet, "/admin", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = perform(r, http.MethodGet, "/admin", "", map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid token"}`, w.Body.String())

	w = perform(r, http.MethodGet, "/admin", "", map[string]string{"Authorization": "Bearer " + studentToken})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = perform(r, http.MethodGet, "/admin", "", map[string]string{"Authorization": "Bearer " + adminToken})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin-1", w.Body.String())
}
