package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"egramseva-backend/internal/models"
	"egramseva-backend/internal/service"
)

type RenderHandler struct {
	renderService *service.RenderService
}

func NewRenderHandler(renderService *service.RenderService) *RenderHandler {
	return &RenderHandler{renderService: renderService}
}

// RenderPage returns the public HTML for a page's sections.
// GET /api/render/pages/:pageId
func (h *RenderHandler) RenderPage(c *gin.Context) {
	html, err := h.renderService.RenderPage(c.Request.Context(), c.Param("pageId"))
	if err != nil {
		respondServiceError(c, err, "Failed to render page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// RenderSection returns the public HTML for one section.
// GET /api/render/sections/:id
func (h *RenderHandler) RenderSection(c *gin.Context) {
	html, err := h.renderService.RenderSection(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to render section")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Preview renders unsaved sections for the editor's live preview. The
// cache is bypassed entirely.
// POST /api/render/preview
func (h *RenderHandler) Preview(c *gin.Context) {
	var req struct {
		Sections []models.Section `json:"sections" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.renderService.Preview(req.Sections)))
}
