package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/folio/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "s3cret-pass"
)

func setupTestDB(t *testing.T) (*API, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	if _, err := db.EnsureUser(gdb, testAdminUser, testAdminPassword); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	api := NewAPI(gdb, Options{
		UploadDir: t.TempDir(),
		UploadURL: "/static/uploads",
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return api, func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

// newTestEngine 注册与线上一致的路由，便于带会话的请求测试。
func newTestEngine(api *API) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	r.GET("/healthz", api.HealthCheck)
	r.GET("/api/clients", api.ListClients)
	r.POST("/api/clients", api.SubmitClient)
	r.GET("/api/reviews", api.ListReviews)
	r.POST("/api/reviews", api.SubmitReview)
	r.GET("/api/projects", api.ListProjects)
	r.POST("/api/contact", api.SubmitContact)

	r.POST("/admin/login", api.Login)
	r.POST("/admin/logout", api.Logout)
	r.GET("/admin/session", api.Session)

	auth := r.Group("/admin/api", AuthRequired())
	auth.GET("/dashboard", api.Dashboard)
	auth.POST("/projects", api.CreateProject)
	auth.POST("/uploads", api.UploadImage)
	auth.GET("/:kind", api.ListRecords)
	auth.POST("/:kind/:id/toggle", api.ToggleApproval)
	auth.PUT("/:kind/:id/approval", api.SetApproval)
	auth.DELETE("/:kind/:id", api.DeleteRecord)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, payload any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r http.Handler) []*http.Cookie {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/admin/login", map[string]string{
		"username": testAdminUser,
		"password": testAdminPassword,
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected login to succeed, got %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected session cookie after login")
	}
	return cookies
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}
