package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"campus/internal/application/user/dto"
	"campus/internal/infrastructure/config"
	"campus/internal/infrastructure/persistence/models"
	"campus/internal/interfaces/http/handlers/testutil"
	sharedConfig "campus/internal/shared/config"
	"campus/internal/shared/logger"
)

const testPassword = "correct-horse-battery"

func testConfig() *config.Config {
	return &config.Config{
		Server:   sharedConfig.ServerConfig{Mode: "test", AllowedOrigins: []string{"*"}},
		Database: sharedConfig.DatabaseConfig{Driver: sharedConfig.DriverSQLite},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT:      sharedConfig.JWTConfig{Secret: "router-test-secret", AccessExpMinutes: 5},
		},
		RateLimit: sharedConfig.RateLimitConfig{Requests: 1000, WindowSeconds: 60},
		Metrics:   sharedConfig.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

type testServer struct {
	t         *testing.T
	container *Container
	engine    *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	c, err := NewContainer(context.Background(), gdb, testConfig(), logger.NewNopLogger())
	require.NoError(t, err)
	c.SetupRoutes()
	t.Cleanup(c.Shutdown)

	return &testServer{t: t, container: c, engine: c.Engine()}
}

// token creates an account with the given role and logs in through the API.
func (s *testServer) token(email, role string) string {
	s.t.Helper()
	_, err := s.container.svcs.createUser.Execute(context.Background(), dto.CreateUserRequest{
		Email:    email,
		FullName: "Test " + role,
		Password: testPassword,
		Role:     role,
	})
	require.NoError(s.t, err)

	w := s.do(http.MethodPost, "/api/auth/login", "", fmt.Sprintf(`{"email":%q,"password":%q}`, email, testPassword))
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var login dto.LoginResponse
	s.data(w, &login)
	require.NotEmpty(s.t, login.AccessToken)
	return login.AccessToken
}

func (s *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) data(w *httptest.ResponseRecorder, target any) {
	s.t.Helper()
	var resp testutil.APIResponse
	require.NoError(s.t, testutil.ParseResponse(w, &resp))
	require.True(s.t, resp.Success, w.Body.String())
	require.NoError(s.t, json.Unmarshal(resp.Data, target))
}

func (s *testServer) errorMessage(w *httptest.ResponseRecorder) string {
	s.t.Helper()
	var resp testutil.APIResponse
	require.NoError(s.t, testutil.ParseResponse(w, &resp))
	require.NotNil(s.t, resp.Error, w.Body.String())
	return resp.Error.Message
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = s.do(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "campus_build_info")
}

func TestRouter_LoginAndMe(t *testing.T) {
	s := newTestServer(t)
	token := s.token("registrar@campus.edu", "staff")

	w := s.do(http.MethodPost, "/api/auth/login", "", `{"email":"registrar@campus.edu","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/auth/me", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var me dto.UserResponse
	s.data(w, &me)
	assert.Equal(t, "registrar@campus.edu", me.Email)
}

func TestRouter_AdminPermissions(t *testing.T) {
	s := newTestServer(t)
	admin := s.token("admin@campus.edu", "admin")
	staff := s.token("staff@campus.edu", "staff")
	student := s.token("student@campus.edu", "user")

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/admin/dashboard", "", "").Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/admin/dashboard", student, "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/admin/dashboard", staff, "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/admin/dashboard", admin, "").Code)

	// user accounts are admin only
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/admin/users", staff, "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/admin/users", admin, "").Code)

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/admin/visits/departments", student, "").Code)
}

func TestRouter_VisitRespond(t *testing.T) {
	s := newTestServer(t)
	staff := s.token("head@campus.edu", "staff")
	student := s.token("student@campus.edu", "user")

	w := s.do(http.MethodPost, "/api/admin/visits/departments", staff, `{"name":"Registry"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var dept struct {
		ID uint `json:"id"`
	}
	s.data(w, &dept)

	w = s.do(http.MethodPost, "/api/visits/requests", student, fmt.Sprintf(`{"department_id":%d,"reason":"Transcript"}`, dept.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var visit struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	s.data(w, &visit)
	assert.Equal(t, "PENDING", visit.Status)

	respond := fmt.Sprintf("/api/visits/requests/%d/respond", visit.ID)

	w = s.do(http.MethodPost, respond, student, `{"status":"APPROVED"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	outsider := s.token("outsider@campus.edu", "user")
	w = s.do(http.MethodPost, respond, outsider, `{"status":"APPROVED"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, respond, staff, `{"status":"MAYBE"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid status", s.errorMessage(w))

	w = s.do(http.MethodPost, respond, staff, `{"status":"APPROVED","note":"Bring ID"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	s.data(w, &visit)
	assert.Equal(t, "APPROVED", visit.Status)

	w = s.do(http.MethodGet, "/api/admin/history?entity_type=visit_request", staff, "")
	require.Equal(t, http.StatusOK, w.Code)
	var history testutil.ListData
	s.data(w, &history)
	assert.Equal(t, int64(1), history.Total)
}

func TestRouter_NewsWrites(t *testing.T) {
	s := newTestServer(t)
	staff := s.token("press@campus.edu", "staff")
	student := s.token("student@campus.edu", "user")
	body := `{"title":"Graduation","content":"Ceremony on Friday"}`

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/news", "", body).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/api/news", student, body).Code)

	w := s.do(http.MethodPost, "/api/news", staff, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/news", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list testutil.ListData
	s.data(w, &list)
	assert.Equal(t, int64(1), list.Total)
}

func TestRouter_OutreachPublicAndAdmin(t *testing.T) {
	s := newTestServer(t)
	staff := s.token("outreach@campus.edu", "staff")
	student := s.token("student@campus.edu", "user")
	body := `{"name":"Coastal University","website":"https://coastal.example.edu"}`

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/api/admin/outreach/partners", student, body).Code)

	w := s.do(http.MethodPost, "/api/admin/outreach/partners", staff, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var partner struct {
		ID   uint   `json:"id"`
		Slug string `json:"slug"`
	}
	s.data(w, &partner)
	assert.Equal(t, "coastal-university", partner.Slug)

	w = s.do(http.MethodPost, "/api/admin/outreach/affiliates", staff, fmt.Sprintf(`{"partner_id":%d,"name":"Marine Lab"}`, partner.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	_ = s.do(http.MethodPost, "/api/admin/outreach/partners", staff, `{"name":"Paused College","is_active":false}`)

	w = s.do(http.MethodGet, "/api/public/partners", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list testutil.ListData
	s.data(w, &list)
	assert.Equal(t, int64(1), list.Total)

	w = s.do(http.MethodGet, "/api/public/partners/coastal-university", "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var detail struct {
		Name       string `json:"name"`
		Affiliates []struct {
			Slug string `json:"slug"`
		} `json:"affiliates"`
	}
	s.data(w, &detail)
	assert.Equal(t, "Coastal University", detail.Name)
	require.Len(t, detail.Affiliates, 1)
	assert.Equal(t, "marine-lab", detail.Affiliates[0].Slug)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/public/partners/paused-college", "", "").Code)
}

func TestRouter_TemplateRender(t *testing.T) {
	s := newTestServer(t)
	staff := s.token("comms@campus.edu", "staff")

	w := s.do(http.MethodPost, "/api/admin/announcements/templates", staff,
		`{"name":"Closure","content_template":"{{ building }} closes at {{time}}."}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var tpl struct {
		ID           uint     `json:"id"`
		Placeholders []string `json:"placeholders"`
	}
	s.data(w, &tpl)
	assert.Equal(t, []string{"building", "time"}, tpl.Placeholders)

	w = s.do(http.MethodPost, fmt.Sprintf("/api/admin/announcements/templates/%d/render", tpl.ID), staff, `{"values":{"building":"Library"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rendered struct {
		Content string   `json:"content"`
		Missing []string `json:"missing"`
	}
	s.data(w, &rendered)
	assert.Equal(t, "Library closes at {{time}}.", rendered.Content)
	assert.Equal(t, []string{"time"}, rendered.Missing)

	w = s.do(http.MethodPost, "/api/admin/announcements/templates", staff, `{"name":"Closure","content_template":"again"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}
