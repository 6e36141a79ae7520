package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(t *testing.T) (*gin.Engine, *services.JWTService) {
	t.Helper()
	jwtService, err := services.NewJWTService("secret")
	require.NoError(t, err)

	r := gin.New()
	r.Use(AdminAuthMiddleware(jwtService, zap.NewNop()))
	r.GET("/me", func(c *gin.Context) {
		id, _ := GetAdminIDFromContext(c)
		email, _ := GetAdminEmailFromContext(c)
		c.String(http.StatusOK, id+" "+email)
	})
	return r, jwtService
}

func TestAdminAuthMiddleware(t *testing.T) {
	r, jwtService := newAuthRouter(t)
	token, err := jwtService.GenerateAdminJWT("admin-7", "ops@modeva.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		setup  func(*http.Request)
		status int
		body   string
	}{
		{"no token", func(*http.Request) {}, http.StatusUnauthorized, ""},
		{"bad format", func(r *http.Request) { r.Header.Set("Authorization", "Token "+token) }, http.StatusUnauthorized, ""},
		{"bad token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized, ""},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, http.StatusOK, "admin-7 ops@modeva.com"},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "admin_token", Value: token}) }, http.StatusOK, "admin-7 ops@modeva.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestRateInfoClamps(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	rate := rateInfo(100, 3, now.Add(30*time.Second), now)
	assert.Equal(t, 97, rate.Remaining)
	assert.Equal(t, 30, rate.ResetInSeconds)

	rate = rateInfo(100, 150, now.Add(-time.Second), now)
	assert.Equal(t, 0, rate.Remaining)
	assert.Equal(t, 0, rate.ResetInSeconds)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/admin/orders", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/orders?q=%22x%22", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/admin/orders", fields["route"])
	assert.Equal(t, `q=%22x%22`, fields["query"])
	assert.Equal(t, int64(http.StatusNoContent), fields["status"])
}
