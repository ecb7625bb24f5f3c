package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"egramseva-backend/internal/service"
	"egramseva-backend/pkg/logger"
	"egramseva-backend/pkg/validator"
)

type UploadHandler struct {
	editorService *service.EditorService
	maxSize       int64
}

func NewUploadHandler(editorService *service.EditorService, maxSize int64) *UploadHandler {
	return &UploadHandler{editorService: editorService, maxSize: maxSize}
}

// UploadImage proxies an image to the media API and returns its
// permanent URL. The editor swaps the blob: preview for this URL before
// saving.
// POST /api/editor/uploads
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	if h.maxSize > 0 && !validator.ValidateFileSize(fileHeader.Size, h.maxSize) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds the maximum upload size"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error(err, "Failed to open uploaded file", map[string]interface{}{"filename": fileHeader.Filename})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.editorService.UploadImage(c.Request.Context(), fileHeader.Filename, contentType, file)
	if err != nil {
		if errors.Is(err, service.ErrUploaderDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads are not configured"})
			return
		}
		logger.Error(err, "Upload failed", map[string]interface{}{"filename": fileHeader.Filename})
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
