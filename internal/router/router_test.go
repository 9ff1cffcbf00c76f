package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/folio/internal/config"
	"github.com/folio/internal/db"
	"github.com/folio/internal/handler"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T, cfg config.AppConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := handler.NewAPI(gdb, handler.Options{
		UploadDir: cfg.UploadDir,
		UploadURL: cfg.UploadURLPath,
		Logger:    quiet,
	})
	return SetupRouter(cfg, api, quiet)
}

func TestSetupRouterServesUploads(t *testing.T) {
	uploadDir := t.TempDir()
	fileName := "example.txt"
	fileContent := []byte("hello uploads")
	if err := os.WriteFile(filepath.Join(uploadDir, fileName), fileContent, 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	r := setupRouter(t, config.AppConfig{
		SessionSecret: "test-secret",
		UploadDir:     uploadDir,
		UploadURLPath: "/static/uploads",
	})

	req := httptest.NewRequest(http.MethodGet, "/static/uploads/"+fileName, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if rr.Body.String() != string(fileContent) {
		t.Fatalf("unexpected body, got %q", rr.Body.String())
	}
}

func TestSetupRouterRoutes(t *testing.T) {
	r := setupRouter(t, config.AppConfig{SessionSecret: "test-secret"})

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/api/clients", http.StatusOK},
		{http.MethodGet, "/api/reviews", http.StatusOK},
		{http.MethodGet, "/api/projects", http.StatusOK},
		{http.MethodGet, "/admin/api/dashboard", http.StatusUnauthorized},
		{http.MethodGet, "/admin/api/clients", http.StatusUnauthorized},
		{http.MethodPost, "/admin/api/projects", http.StatusUnauthorized},
		{http.MethodGet, "/admin/session", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			if rr.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rr.Code)
			}
		})
	}
}

func TestMetricsEndpointExposesHTTPCounters(t *testing.T) {
	r := setupRouter(t, config.AppConfig{SessionSecret: "test-secret"})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/clients", nil))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `folio_http_requests_total{method="GET",path="/api/clients",status="200"}`) {
		t.Fatalf("expected request counter in metrics output")
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := setupRouter(t, config.AppConfig{
		SessionSecret:      "test-secret",
		CORSAllowedOrigins: []string{"https://portfolio.example.com"},
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/reviews", nil)
	req.Header.Set("Origin", "https://portfolio.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://portfolio.example.com" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
}
