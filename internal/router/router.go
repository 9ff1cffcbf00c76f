package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/folio/internal/config"
	"github.com/folio/internal/handler"
	"github.com/folio/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const sessionName = "folio_session"

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg config.AppConfig, api *handler.API, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics(), middleware.RequestLogger(logger))

	// 前端单独部署时需要跨域访问公开接口和后台会话
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((7 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	// 上传的作品图片
	if cfg.UploadURLPath != "" && cfg.UploadDir != "" {
		r.Static(cfg.UploadURLPath, cfg.UploadDir)
	}

	r.GET("/healthz", api.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := r.Group("/api")
	{
		public.GET("/clients", api.ListClients)
		public.POST("/clients", api.SubmitClient)
		public.GET("/reviews", api.ListReviews)
		public.POST("/reviews", api.SubmitReview)
		public.GET("/projects", api.ListProjects)
		public.POST("/contact", api.SubmitContact)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)
		admin.GET("/session", api.Session)

		// 需要认证的后台 API
		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.Dashboard)
			auth.POST("/projects", api.CreateProject)
			auth.POST("/uploads", api.UploadImage)

			auth.GET("/:kind", api.ListRecords)
			auth.POST("/:kind/:id/toggle", api.ToggleApproval)
			auth.PUT("/:kind/:id/approval", api.SetApproval)
			auth.DELETE("/:kind/:id", api.DeleteRecord)
		}
	}

	return r
}
