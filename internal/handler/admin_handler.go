package handler

import (
	"errors"
	"net/http"

	"github.com/folio/internal/db"
	"github.com/folio/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
)

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type approvalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type projectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	TechStack   []string `json:"tech_stack"`
	GithubURL   string   `json:"github_url"`
	LiveURL     string   `json:"live_url"`
}

func (r projectRequest) toInput() service.ProjectInput {
	return service.ProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		TechStack:   r.TechStack,
		GithubURL:   r.GithubURL,
		LiveURL:     r.LiveURL,
	}
}

// Login 校验管理员账号并建立会话，支持 JSON 与表单提交。
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := db.Authenticate(a.db, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, db.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "invalid username or password")
			return
		}
		a.handleServiceError(c, err, "failed to sign in")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserIDKey, user.ID)
	session.Set(sessionUsernameKey, user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": user.Username})
}

// Logout 清除会话
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to clear session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// Session 返回当前登录的管理员。
func (a *API) Session(c *gin.Context) {
	session := sessions.Default(c)
	username, ok := session.Get(sessionUsernameKey).(string)
	if !ok || session.Get(sessionUserIDKey) == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "username": username})
}

// AuthRequired 拦截未登录的后台 API 请求。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserIDKey) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// Dashboard 返回各类型的记录数与待审核数。
func (a *API) Dashboard(c *gin.Context) {
	counts, err := a.moderation.Counts(c.Request.Context())
	if err != nil {
		a.handleServiceError(c, err, "failed to load dashboard")
		return
	}

	session := sessions.Default(c)
	c.JSON(http.StatusOK, gin.H{
		"username": session.Get(sessionUsernameKey),
		"counts":   counts,
	})
}

// ListRecords 返回某一类型的全部记录（含未审核）。
func (a *API) ListRecords(c *gin.Context) {
	kind, err := service.ParseKind(c.Param("kind"))
	if err != nil {
		a.handleServiceError(c, err, "unknown content type")
		return
	}

	items, err := a.moderation.ListAll(c.Request.Context(), kind)
	if err != nil {
		a.handleServiceError(c, err, "failed to load "+string(kind))
		return
	}

	c.JSON(http.StatusOK, gin.H{"kind": kind, "items": items})
}

// ToggleApproval 翻转审核状态并返回新值。
func (a *API) ToggleApproval(c *gin.Context) {
	kind, err := service.ParseKind(c.Param("kind"))
	if err != nil {
		a.handleServiceError(c, err, "unknown content type")
		return
	}

	id := c.Param("id")
	approved, err := a.moderation.ToggleApproval(c.Request.Context(), kind, id)
	if err != nil {
		a.handleServiceError(c, err, "failed to update approval")
		return
	}

	a.logger.InfoContext(c.Request.Context(), "approval toggled",
		"kind", kind, "id", id, "approved", approved)
	c.JSON(http.StatusOK, gin.H{"id": id, "approved": approved})
}

// SetApproval 将审核状态设为请求中的值。
func (a *API) SetApproval(c *gin.Context) {
	kind, err := service.ParseKind(c.Param("kind"))
	if err != nil {
		a.handleServiceError(c, err, "unknown content type")
		return
	}

	var req approvalRequest
	if !bindJSON(c, &req, "approved is required") {
		return
	}

	id := c.Param("id")
	if err := a.moderation.SetApproval(c.Request.Context(), kind, id, *req.Approved); err != nil {
		a.handleServiceError(c, err, "failed to update approval")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "approved": *req.Approved})
}

// DeleteRecord 永久删除一条记录。
func (a *API) DeleteRecord(c *gin.Context) {
	kind, err := service.ParseKind(c.Param("kind"))
	if err != nil {
		a.handleServiceError(c, err, "unknown content type")
		return
	}

	id := c.Param("id")
	if err := a.moderation.Delete(c.Request.Context(), kind, id); err != nil {
		a.handleServiceError(c, err, "failed to delete record")
		return
	}

	a.logger.InfoContext(c.Request.Context(), "record deleted", "kind", kind, "id", id)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// CreateProject 由后台新增作品。
func (a *API) CreateProject(c *gin.Context) {
	var req projectRequest
	if !bindJSON(c, &req, "invalid project payload") {
		return
	}

	if err := a.moderation.AddProject(c.Request.Context(), req.toInput()); err != nil {
		a.handleServiceError(c, err, "failed to add project")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "project added"})
}
