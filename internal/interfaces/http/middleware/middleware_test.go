package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/domain/permission"
	"campus/internal/infrastructure/auth"
	"campus/internal/infrastructure/ratelimit"
	"campus/internal/shared/authorization"
	"campus/internal/shared/config"
	"campus/internal/shared/constants"
	"campus/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeVerifier struct {
	tokens map[string]*auth.Claims
}

func (f fakeVerifier) Verify(token string) (*auth.Claims, error) {
	claims, ok := f.tokens[token]
	if !ok {
		return nil, stderrors.New("bad token")
	}
	return claims, nil
}

type fakeEnforcer struct {
	allowed map[string]bool
	err     error
}

func (f fakeEnforcer) Enforce(role string, resource permission.Resource, action permission.Action) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.allowed[role+":"+string(resource)+":"+string(action)], nil
}

type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allow, s.err
}

var _ ratelimit.RateLimiter = (*stubLimiter)(nil)

func newAuth() *AuthMiddleware {
	return NewAuthMiddleware(fakeVerifier{tokens: map[string]*auth.Claims{
		"staff-token": {UserID: 5, Role: authorization.RoleStaff},
		"user-token":  {UserID: 9, Role: authorization.RoleUser},
	}}, logger.NewNopLogger())
}

func whoami(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id": c.GetUint(constants.ContextKeyUserID),
		"role":    c.GetString(constants.ContextKeyUserRole),
	})
}

func serve(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := gin.New()
	r.GET("/me", newAuth().RequireAuth(), whoami)

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic staff-token", http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer staff-token", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, http.MethodGet, "/me", tt.header)
			assert.Equal(t, tt.code, w.Code)
		})
	}

	w := serve(r, http.MethodGet, "/me", "Bearer staff-token")
	assert.JSONEq(t, `{"user_id":5,"role":"staff"}`, w.Body.String())
}

func TestOptionalAuth(t *testing.T) {
	r := gin.New()
	r.GET("/feed", newAuth().OptionalAuth(), whoami)

	w := serve(r, http.MethodGet, "/feed", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":0,"role":""}`, w.Body.String())

	w = serve(r, http.MethodGet, "/feed", "Bearer nope")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":0,"role":""}`, w.Body.String())

	w = serve(r, http.MethodGet, "/feed", "Bearer user-token")
	assert.JSONEq(t, `{"user_id":9,"role":"user"}`, w.Body.String())
}

func TestRequirePermission(t *testing.T) {
	enforcer := fakeEnforcer{allowed: map[string]bool{
		"staff:assets:read":  true,
		"staff:assets:write": true,
		"user:news:read":     true,
	}}
	perms := NewPermissionMiddleware(enforcer, logger.NewNopLogger())
	read, write := perms.Guards(permission.ResourceAssets)

	r := gin.New()
	r.Use(newAuth().OptionalAuth())
	r.GET("/assets", read, whoami)
	r.POST("/assets", write, whoami)

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/assets", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/assets", "Bearer staff-token").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/assets", "Bearer staff-token").Code)
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/assets", "Bearer user-token").Code)
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodPost, "/assets", "Bearer user-token").Code)
}

func TestRequirePermission_EnforcerError(t *testing.T) {
	perms := NewPermissionMiddleware(fakeEnforcer{err: stderrors.New("adapter down")}, logger.NewNopLogger())

	r := gin.New()
	r.Use(newAuth().OptionalAuth())
	r.GET("/assets", perms.RequirePermission(permission.ResourceAssets, permission.ActionRead), whoami)

	assert.Equal(t, http.StatusInternalServerError, serve(r, http.MethodGet, "/assets", "Bearer staff-token").Code)
}

func TestRateLimit(t *testing.T) {
	limiter := &stubLimiter{allow: false}
	r := gin.New()
	r.POST("/login", RateLimit(limiter, logger.NewNopLogger()), whoami)

	w := serve(r, http.MethodPost, "/login", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Len(t, limiter.keys, 1)
	assert.Contains(t, limiter.keys[0], "/login:")

	limiter.allow = true
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/login", "").Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	limiter := &stubLimiter{err: stderrors.New("redis down")}
	r := gin.New()
	r.POST("/login", RateLimit(limiter, logger.NewNopLogger()), whoami)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/login", "").Code)
}

func TestRateLimit_WithMemoryLimiter(t *testing.T) {
	limiter := ratelimit.NewMemoryRateLimiter(ratelimit.RateLimitConfig{Requests: 2, Window: time.Minute})
	r := gin.New()
	r.POST("/apply", RateLimit(limiter, logger.NewNopLogger()), whoami)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/apply", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/apply", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/apply", "").Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNopLogger()))
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	assert.Equal(t, http.StatusInternalServerError, serve(r, http.MethodGet, "/boom", "").Code)
}

func TestCORS(t *testing.T) {
	cfg := config.ServerConfig{
		AllowedOrigins: []string{"https://portal.example.edu"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		AllowedMethods: []string{"GET", "POST"},
		ExposedHeaders: []string{"X-Request-ID"},
		CORSMaxAge:     600,
	}
	r := gin.New()
	r.Use(CORS(cfg))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(method, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/ping", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("listed origin", func(t *testing.T) {
		w := send(http.MethodGet, "https://portal.example.edu")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://portal.example.edu", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
		assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "X-Request-ID", w.Header().Get("Access-Control-Expose-Headers"))
		assert.Equal(t, "600", w.Header().Get("Access-Control-Max-Age"))
		assert.NotContains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-CSRF-Token")
	})

	t.Run("unlisted origin", func(t *testing.T) {
		w := send(http.MethodGet, "https://evil.example.com")
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		w := send(http.MethodOptions, "https://portal.example.edu")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("wildcard echoes origin", func(t *testing.T) {
		wild := gin.New()
		wild.Use(CORS(config.ServerConfig{AllowedOrigins: []string{"*"}}))
		wild.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://any.example.org")
		w := httptest.NewRecorder()
		wild.ServeHTTP(w, req)
		assert.Equal(t, "https://any.example.org", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Headers"))
		assert.Empty(t, w.Header().Get("Access-Control-Max-Age"))
	})
}
