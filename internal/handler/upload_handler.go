package handler

import (
	"errors"
	"net/http"

	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

// UploadImage 处理作品封面上传，返回可直接填入 image 字段的地址。
func (a *API) UploadImage(c *gin.Context) {
	const bodyLimit = service.MaxUploadBytes + 1<<20
	if c.Request.ContentLength > bodyLimit {
		respondError(c, http.StatusRequestEntityTooLarge, "image exceeds 8MB")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, bodyLimit)

	header, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, "image exceeds 8MB")
			return
		}
		respondError(c, http.StatusBadRequest, "image file is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "cannot read uploaded file")
		return
	}
	defer file.Close()

	saved, err := a.uploader.Save(file, header.Size)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadTooLarge):
			respondError(c, http.StatusRequestEntityTooLarge, "image exceeds 8MB")
		case errors.Is(err, service.ErrUploadNotImage):
			respondError(c, http.StatusBadRequest, "only gif, jpeg, png and webp images are allowed")
		default:
			a.logger.ErrorContext(c.Request.Context(), "save upload", "error", err)
			respondError(c, http.StatusInternalServerError, "failed to save image")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "upload succeeded",
		"image":   saved,
		"url":     saved.URL,
	})
}
