package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/folio/internal/config"
	"github.com/folio/internal/db"
	"github.com/folio/internal/handler"
	"github.com/folio/internal/router"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	gdb, err := db.Init(cfg.DatabaseDriver, cfg.DSN())
	if err != nil {
		logger.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	created, err := db.EnsureUser(gdb, cfg.SuperRootUserName, cfg.SuperRootPassword)
	if err != nil {
		logger.Error("failed to ensure admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if created {
		logger.Info("admin user created", slog.String("username", cfg.SuperRootUserName))
	}

	api := handler.NewAPI(gdb, handler.Options{
		AvatarBaseURL: cfg.AvatarBaseURL,
		UploadDir:     cfg.UploadDir,
		UploadURL:     cfg.UploadURLPath,
		Logger:        logger,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router.SetupRouter(cfg, api, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := run(srv, logger); err != nil {
		logger.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run 启动 HTTP 服务，收到 SIGINT/SIGTERM 后优雅退出。
func run(srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	logger.Info("http server stopped")
	return nil
}
