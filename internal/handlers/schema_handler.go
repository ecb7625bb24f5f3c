package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"egramseva-backend/internal/schema"
	"egramseva-backend/internal/service"
)

type SchemaHandler struct {
	editorService *service.EditorService
}

func NewSchemaHandler(editorService *service.EditorService) *SchemaHandler {
	return &SchemaHandler{editorService: editorService}
}

// List returns the section schemas available to the requesting tenant.
// GET /api/schemas?tenant=panchayat
func (h *SchemaHandler) List(c *gin.Context) {
	tenant := tenantFromQuery(c)
	schemas := h.editorService.ListSchemas(tenant)
	c.JSON(http.StatusOK, gin.H{"schemas": schemas, "tenant": tenant})
}

// Get returns one section schema, resolving legacy type aliases.
// GET /api/schemas/:type
func (h *SchemaHandler) Get(c *gin.Context) {
	sch, err := h.editorService.GetSchema(c.Param("type"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownSectionType) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown section type"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schema": sch})
}

func tenantFromQuery(c *gin.Context) schema.TenantContext {
	if c.Query("tenant") == string(schema.TenantPlatform) {
		return schema.TenantPlatform
	}
	return schema.TenantPanchayat
}
