package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"egramseva-backend/internal/collab"
	"egramseva-backend/internal/models"
	"egramseva-backend/internal/service"
	"egramseva-backend/pkg/logger"
)

type EditorHandler struct {
	editorService *service.EditorService
}

func NewEditorHandler(editorService *service.EditorService) *EditorHandler {
	return &EditorHandler{editorService: editorService}
}

// CreateSection seeds and persists a new section on a page.
// POST /api/pages/:pageId/sections
func (h *EditorHandler) CreateSection(c *gin.Context) {
	var req models.AddSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	section, err := h.editorService.CreateSection(c.Request.Context(), c.Param("pageId"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create section")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"section": section})
}

// RenderForm returns the editing form HTML for a section type and its
// current content.
// POST /api/editor/form
func (h *EditorHandler) RenderForm(c *gin.Context) {
	var req models.SaveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	html, err := h.editorService.RenderForm(req.SectionType, req.Content, nil)
	if err != nil {
		respondServiceError(c, err, "Failed to render form")
		return
	}
	c.JSON(http.StatusOK, gin.H{"html": html})
}

// ApplyUpdates runs edit messages through the reducer and returns the
// updated content without persisting.
// POST /api/editor/updates
func (h *EditorHandler) ApplyUpdates(c *gin.Context) {
	var req models.ApplyUpdatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.editorService.ApplyUpdates(req)
	if err != nil {
		respondServiceError(c, err, "Failed to apply updates")
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": updated})
}

type arrayItemRequest struct {
	SectionType string      `json:"section_type" binding:"required"`
	Content     interface{} `json:"content"`
	Path        string      `json:"path" binding:"required,dotpath"`
	Index       *int        `json:"index,omitempty"`
}

// AddItem appends a default-seeded item to an array field.
// POST /api/editor/items/add
func (h *EditorHandler) AddItem(c *gin.Context) {
	var req arrayItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.editorService.AddArrayItem(req.SectionType, req.Content, req.Path)
	if err != nil {
		respondServiceError(c, err, "Failed to add item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": updated})
}

// RemoveItem removes an array item by index.
// POST /api/editor/items/remove
func (h *EditorHandler) RemoveItem(c *gin.Context) {
	var req arrayItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Index == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index is required"})
		return
	}

	updated, err := h.editorService.RemoveArrayItem(req.SectionType, req.Content, req.Path, *req.Index)
	if err != nil {
		respondServiceError(c, err, "Failed to remove item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": updated})
}

// SaveSection validates and persists edited content. Validation failures
// come back as 422 with per-field messages keyed by dot path.
// PUT /api/sections/:id
func (h *EditorHandler) SaveSection(c *gin.Context) {
	var req models.SaveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	section, err := h.editorService.SaveSection(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		var failure *service.ValidationFailure
		if errors.As(err, &failure) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":        "content failed validation",
				"field_errors": failure.FieldErrorMap(),
			})
			return
		}
		respondServiceError(c, err, "Failed to save section")
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": section})
}

// DuplicateSection copies a section onto the same page.
// POST /api/pages/:pageId/sections/:id/duplicate
func (h *EditorHandler) DuplicateSection(c *gin.Context) {
	section, err := h.editorService.DuplicateSection(c.Request.Context(), c.Param("pageId"), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to duplicate section")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"section": section})
}

// Reorder rewrites a page's section order from an id list.
// PUT /api/pages/:pageId/sections/order
func (h *EditorHandler) Reorder(c *gin.Context) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.editorService.ReorderSections(c.Request.Context(), c.Param("pageId"), req.SectionIDs); err != nil {
		respondServiceError(c, err, "Failed to reorder sections")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sections reordered"})
}

// ToggleVisibility shows or hides a section.
// PATCH /api/sections/:id/visibility?visible=true
func (h *EditorHandler) ToggleVisibility(c *gin.Context) {
	visible, err := strconv.ParseBool(c.DefaultQuery("visible", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid visible flag"})
		return
	}

	if err := h.editorService.ToggleVisibility(c.Request.Context(), c.Param("id"), visible); err != nil {
		respondServiceError(c, err, "Failed to toggle visibility")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "visibility updated"})
}

// DeleteSection removes a section permanently.
// DELETE /api/sections/:id
func (h *EditorHandler) DeleteSection(c *gin.Context) {
	if err := h.editorService.DeleteSection(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete section")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "section deleted"})
}

// CheckVideoURL classifies a video URL for the editor preview.
// POST /api/editor/video/check
func (h *EditorHandler) CheckVideoURL(c *gin.Context) {
	var req models.VideoCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.editorService.CheckVideoURL(req.URL))
}

func respondServiceError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrUnknownSectionType):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown section type"})
	case errors.Is(err, collab.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		logger.Error(err, msg, map[string]interface{}{"path": c.FullPath()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
