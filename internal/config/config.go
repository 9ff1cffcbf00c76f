package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DevSessionSecret 仅用于 debug/test 模式的会话签名密钥。
	DevSessionSecret = "folio-dev-secret"

	// DriverSQLite 使用本地 SQLite 文件作为记录存储。
	DriverSQLite = "sqlite"
	// DriverPostgres 使用托管的 PostgreSQL 作为记录存储。
	DriverPostgres = "postgres"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr         string
	Port               string
	DatabaseDriver     string
	DatabasePath       string
	DatabaseURL        string
	SessionSecret      string
	GinMode            string
	UploadDir          string
	UploadURLPath      string
	SuperRootUserName  string
	SuperRootPassword  string
	AvatarBaseURL      string
	CORSAllowedOrigins []string
	LogLevel           slog.Level
	LogFormat          string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
// 工作目录下存在 .env 文件时会先加载它，已设置的环境变量优先。
func Load() AppConfig {
	_ = godotenv.Load()

	port := envOrDefault("PORT", "8080")

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	driver := strings.ToLower(envOrDefault("DATABASE_DRIVER", DriverSQLite))
	if driver != DriverPostgres {
		driver = DriverSQLite
	}

	return AppConfig{
		ListenAddr:         listenAddr,
		Port:               port,
		DatabaseDriver:     driver,
		DatabasePath:       envOrDefault("DATABASE_PATH", "folio.db"),
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SessionSecret:      envOrDefault("SESSION_SECRET", DevSessionSecret),
		GinMode:            envOrDefault("GIN_MODE", "release"),
		UploadDir:          envOrDefault("UPLOAD_DIR", "web/static/uploads"),
		UploadURLPath:      envOrDefault("UPLOAD_URL_PATH", "/static/uploads"),
		SuperRootUserName:  strings.TrimSpace(os.Getenv("SUPER_ROOT_USER_NAME")),
		SuperRootPassword:  strings.TrimSpace(os.Getenv("SUPER_ROOT_PASSWORD")),
		AvatarBaseURL:      envOrDefault("AVATAR_BASE_URL", "https://api.dicebear.com/7.x"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		LogLevel:           parseLogLevel(os.Getenv("LOG_LEVEL")),
		LogFormat:          strings.ToLower(envOrDefault("LOG_FORMAT", "text")),
	}
}

// ErrInsecureSessionSecret 表示 release 模式下未配置独立的会话密钥。
var ErrInsecureSessionSecret = errors.New("SESSION_SECRET must be set to a private value in release mode")

// Validate 检查启动前必须满足的配置。release 模式下拒绝空密钥和内置的开发密钥。
func (c AppConfig) Validate() error {
	secret := strings.TrimSpace(c.SessionSecret)
	if secret == "" {
		return ErrInsecureSessionSecret
	}
	switch strings.ToLower(c.GinMode) {
	case "debug", "test":
		return nil
	}
	if secret == DevSessionSecret {
		return ErrInsecureSessionSecret
	}
	return nil
}

// DSN 返回当前驱动对应的数据源。
func (c AppConfig) DSN() string {
	if c.DatabaseDriver == DriverPostgres {
		return c.DatabaseURL
	}
	return c.DatabasePath
}

// SetupLogger 根据配置构建 slog 日志器并设为默认。
func SetupLogger(cfg AppConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
