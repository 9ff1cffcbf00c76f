package config

import (
	"errors"
	"log/slog"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LISTEN_ADDR", "DATABASE_DRIVER", "DATABASE_PATH", "AVATAR_BASE_URL", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen addr :8080, got %q", cfg.ListenAddr)
	}
	if cfg.DatabaseDriver != DriverSQLite || cfg.DSN() != "folio.db" {
		t.Fatalf("expected sqlite folio.db, got %q %q", cfg.DatabaseDriver, cfg.DSN())
	}
	if cfg.AvatarBaseURL != "https://api.dicebear.com/7.x" {
		t.Fatalf("unexpected avatar base url %q", cfg.AvatarBaseURL)
	}
	if len(cfg.CORSAllowedOrigins) != 0 {
		t.Fatalf("expected no cors origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestLoadPostgresAndLists(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://folio@localhost/folio")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.dev, ,https://b.dev ")
	t.Setenv("LOG_LEVEL", "warning")

	cfg := Load()
	if cfg.ListenAddr != ":9090" {
		t.Fatalf("expected listen addr to follow PORT, got %q", cfg.ListenAddr)
	}
	if cfg.DatabaseDriver != DriverPostgres || cfg.DSN() != "postgres://folio@localhost/folio" {
		t.Fatalf("expected postgres dsn, got %q %q", cfg.DatabaseDriver, cfg.DSN())
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.dev" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Fatalf("expected warn level, got %v", cfg.LogLevel)
	}
}

func TestUnknownDriverFallsBackToSQLite(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")
	if cfg := Load(); cfg.DatabaseDriver != DriverSQLite {
		t.Fatalf("expected sqlite fallback, got %q", cfg.DatabaseDriver)
	}
}

func TestValidateRejectsDevSecretInRelease(t *testing.T) {
	t.Setenv("GIN_MODE", "")
	t.Setenv("SESSION_SECRET", "")

	cfg := Load()
	if cfg.GinMode != "release" || cfg.SessionSecret != DevSessionSecret {
		t.Fatalf("unexpected defaults mode=%q secret=%q", cfg.GinMode, cfg.SessionSecret)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInsecureSessionSecret) {
		t.Fatalf("expected ErrInsecureSessionSecret, got %v", err)
	}

	cfg.SessionSecret = "   "
	if err := cfg.Validate(); !errors.Is(err, ErrInsecureSessionSecret) {
		t.Fatalf("expected blank secret to be rejected, got %v", err)
	}
}

func TestValidateAllowsDevSecretOutsideRelease(t *testing.T) {
	for _, mode := range []string{"debug", "test"} {
		t.Setenv("GIN_MODE", mode)
		t.Setenv("SESSION_SECRET", "")
		if err := Load().Validate(); err != nil {
			t.Fatalf("mode %s: expected dev secret to be accepted, got %v", mode, err)
		}
	}

	t.Setenv("GIN_MODE", "release")
	t.Setenv("SESSION_SECRET", "a-private-production-secret")
	if err := Load().Validate(); err != nil {
		t.Fatalf("expected private secret to be accepted, got %v", err)
	}
}
