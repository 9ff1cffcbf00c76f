package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/folio/internal/middleware"
	"github.com/folio/internal/service"
	"github.com/folio/internal/store"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// handleServiceError 将服务层错误翻译为 HTTP 响应。
// 存储错误只返回通用提示，细节写入日志。
func (a *API) handleServiceError(c *gin.Context, err error, message string) {
	var fieldErr *service.ValidationError
	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid " + fieldErr.Field,
			"field": fieldErr.Field,
			"rule":  fieldErr.Rule,
		})
	case errors.Is(err, service.ErrUnknownKind):
		respondError(c, http.StatusNotFound, "unknown content type")
	case errors.Is(err, service.ErrNotModerated):
		respondError(c, http.StatusBadRequest, "this content type has no approval state")
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, "record not found")
	case errors.Is(err, service.ErrStore):
		a.logger.ErrorContext(c.Request.Context(), message, slog.String("error", err.Error()))
		respondError(c, http.StatusBadGateway, message+", please try again")
	default:
		a.logger.ErrorContext(c.Request.Context(), message, slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, message)
	}
	c.Error(err)
}

// recordSubmission 统计前台提交结果。
func recordSubmission(kind string, err error) {
	result := middleware.ResultAccepted
	switch {
	case err == nil:
	case errors.Is(err, service.ErrValidation):
		result = middleware.ResultInvalid
	default:
		result = middleware.ResultFailed
	}
	middleware.SubmissionsTotal.WithLabelValues(kind, result).Inc()
}
