package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

type clientRequest struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
}

func (r clientRequest) toInput() service.ClientInput {
	return service.ClientInput{
		Name:        r.Name,
		Industry:    r.Industry,
		Description: r.Description,
	}
}

type reviewRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Content  string `json:"content"`
	Rating   *int   `json:"rating"`
}

// toInput 未提供评分时按表单默认值 5 星处理，显式的越界值交给服务层拒绝。
func (r reviewRequest) toInput() service.ReviewInput {
	rating := service.DefaultRating
	if r.Rating != nil {
		rating = *r.Rating
	}
	return service.ReviewInput{
		Name:     r.Name,
		Position: r.Position,
		Content:  r.Content,
		Rating:   rating,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r contactRequest) toInput() service.ContactInput {
	return service.ContactInput{
		Name:    r.Name,
		Email:   r.Email,
		Message: r.Message,
	}
}

// ListClients 返回已审核的客户，没有数据时返回样例。
func (a *API) ListClients(c *gin.Context) {
	c.JSON(http.StatusOK, a.listings.Clients(c.Request.Context()))
}

// ListReviews 返回已审核的评价，没有数据时返回样例。
func (a *API) ListReviews(c *gin.Context) {
	c.JSON(http.StatusOK, a.listings.Reviews(c.Request.Context()))
}

// ListProjects 返回全部作品，没有数据时返回样例。
func (a *API) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, a.listings.Projects(c.Request.Context()))
}

// SubmitClient 接收客户提交，写入后等待审核。
func (a *API) SubmitClient(c *gin.Context) {
	var req clientRequest
	if !bindJSON(c, &req, "invalid client payload") {
		return
	}

	err := a.submissions.SubmitClient(c.Request.Context(), req.toInput())
	recordSubmission(string(service.KindClients), err)
	if err != nil {
		a.handleServiceError(c, err, "failed to submit client")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thanks! Your submission is pending review."})
}

// SubmitReview 接收评价提交，写入后等待审核。
func (a *API) SubmitReview(c *gin.Context) {
	var req reviewRequest
	if !bindJSON(c, &req, "invalid review payload") {
		return
	}

	err := a.submissions.SubmitReview(c.Request.Context(), req.toInput())
	recordSubmission(string(service.KindReviews), err)
	if err != nil {
		a.handleServiceError(c, err, "failed to submit review")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thanks! Your review is pending approval."})
}

// SubmitContact 接收联系留言。
func (a *API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if !bindJSON(c, &req, "invalid contact payload") {
		return
	}

	err := a.contacts.Submit(c.Request.Context(), req.toInput())
	recordSubmission(string(service.KindMessages), err)
	if err != nil {
		a.handleServiceError(c, err, "failed to send message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully!"})
}

// HealthCheck 检查数据库连接。
func (a *API) HealthCheck(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		a.logger.WarnContext(c.Request.Context(), "health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
