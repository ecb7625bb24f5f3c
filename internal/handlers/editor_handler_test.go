package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"egramseva-backend/internal/collab"
	"egramseva-backend/internal/models"
	"egramseva-backend/internal/schema"
	"egramseva-backend/internal/service"
	"egramseva-backend/pkg/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Init()
	os.Exit(m.Run())
}

type memorySectionAPI struct {
	sections map[string]models.Section
	nextID   int
	order    []string
}

func newMemorySectionAPI() *memorySectionAPI {
	return &memorySectionAPI{sections: make(map[string]models.Section)}
}

func (m *memorySectionAPI) GetSections(ctx context.Context, pageID string) ([]models.Section, error) {
	out := make([]models.Section, 0, len(m.sections))
	for _, s := range m.sections {
		out = append(out, s)
	}
	return out, nil
}

func (m *memorySectionAPI) GetSection(ctx context.Context, sectionID string) (*models.Section, error) {
	s, ok := m.sections[sectionID]
	if !ok {
		return nil, collab.ErrNotFound
	}
	return &s, nil
}

func (m *memorySectionAPI) CreateSection(ctx context.Context, pageID string, section models.Section) (*models.Section, error) {
	m.nextID++
	section.ID = fmt.Sprintf("sec-%d", m.nextID)
	m.sections[section.ID] = section
	return &section, nil
}

func (m *memorySectionAPI) UpdateSection(ctx context.Context, sectionID string, section models.Section) (*models.Section, error) {
	if _, ok := m.sections[sectionID]; !ok {
		return nil, collab.ErrNotFound
	}
	section.ID = sectionID
	m.sections[sectionID] = section
	return &section, nil
}

func (m *memorySectionAPI) DeleteSection(ctx context.Context, sectionID string) error {
	if _, ok := m.sections[sectionID]; !ok {
		return collab.ErrNotFound
	}
	delete(m.sections, sectionID)
	return nil
}

func (m *memorySectionAPI) UpdateOrder(ctx context.Context, pageID string, sectionIDs []string) error {
	m.order = sectionIDs
	return nil
}

func (m *memorySectionAPI) ToggleVisibility(ctx context.Context, sectionID string, visible bool) error {
	s, ok := m.sections[sectionID]
	if !ok {
		return collab.ErrNotFound
	}
	s.IsVisible = visible
	m.sections[sectionID] = s
	return nil
}

func newTestRouter(api collab.SectionAPI) *gin.Engine {
	editorService := service.NewEditorService(schema.DefaultCatalog(), api, nil, nil)
	renderService := service.NewRenderService(api, nil)

	editor := NewEditorHandler(editorService)
	schemas := NewSchemaHandler(editorService)
	renderer := NewRenderHandler(renderService)

	router := gin.New()
	router.GET("/schemas", schemas.List)
	router.GET("/schemas/:type", schemas.Get)
	router.POST("/pages/:pageId/sections", editor.CreateSection)
	router.PUT("/sections/:id", editor.SaveSection)
	router.POST("/editor/updates", editor.ApplyUpdates)
	router.POST("/editor/items/add", editor.AddItem)
	router.POST("/editor/items/remove", editor.RemoveItem)
	router.POST("/editor/video/check", editor.CheckVideoURL)
	router.GET("/render/pages/:pageId", renderer.RenderPage)
	router.POST("/render/preview", renderer.Preview)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSchemaEndpoints(t *testing.T) {
	router := newTestRouter(newMemorySectionAPI())

	w := doJSON(t, router, http.MethodGet, "/schemas?tenant=panchayat", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "HERO_BANNER") {
		t.Fatalf("expected built-in schemas, got %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/schemas/hero", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected alias lookup to succeed, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/schemas/NOPE", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown type, got %d", w.Code)
	}
}

func TestCreateSectionEndpoint(t *testing.T) {
	router := newTestRouter(newMemorySectionAPI())

	w := doJSON(t, router, http.MethodPost, "/pages/p1/sections", models.AddSectionRequest{
		SectionType: "hero",
		Title:       "Welcome",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Section models.Section `json:"section"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Section.SectionType != schema.TypeHeroBanner {
		t.Fatalf("expected canonical type, got %s", resp.Section.SectionType)
	}

	w = doJSON(t, router, http.MethodPost, "/pages/p1/sections", map[string]interface{}{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing section_type, got %d", w.Code)
	}
}

func TestCreateSectionEndpoint_RejectsMarkupInTitle(t *testing.T) {
	router := newTestRouter(newMemorySectionAPI())

	w := doJSON(t, router, http.MethodPost, "/pages/p1/sections", models.AddSectionRequest{
		SectionType: "hero",
		Title:       "<script>alert(1)</script>",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for markup in title, got %d", w.Code)
	}
}

func TestCreateSectionEndpoint_LayoutTagFormat(t *testing.T) {
	router := newTestRouter(newMemorySectionAPI())

	w := doJSON(t, router, http.MethodPost, "/pages/p1/sections", models.AddSectionRequest{
		SectionType: "TEXT",
		LayoutType:  "full width!",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed layout tag, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/pages/p1/sections", models.AddSectionRequest{
		SectionType: "TEXT",
		LayoutType:  "FULL_WIDTH",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for valid layout tag, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Section models.Section `json:"section"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Section.LayoutType != "FULL_WIDTH" {
		t.Fatalf("expected requested layout kept, got %s", resp.Section.LayoutType)
	}
}

func TestSaveSectionEndpoint_ValidationErrors(t *testing.T) {
	api := newMemorySectionAPI()
	router := newTestRouter(api)

	w := doJSON(t, router, http.MethodPost, "/pages/p1/sections", models.AddSectionRequest{SectionType: "TEXT"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var created struct {
		Section models.Section `json:"section"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	w = doJSON(t, router, http.MethodPut, "/sections/"+created.Section.ID, models.SaveSectionRequest{
		SectionType: "TEXT",
		Content:     map[string]interface{}{"body": ""},
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for invalid content, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "field_errors") {
		t.Fatalf("expected field_errors payload, got %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodPut, "/sections/ghost", models.SaveSectionRequest{
		SectionType: "TEXT",
		Content:     map[string]interface{}{"body": "hello"},
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing section, got %d", w.Code)
	}
}

func TestApplyUpdatesEndpoint(t *testing.T) {
	router := newTestRouter(newMemorySectionAPI())

	w := doJSON(t, router, http.MethodPost, "/editor/updates", models.ApplyUpdatesRequest{
		SectionType: "TEXT",
		Content:     map[string]interface{}{"body": "old"},
		Updates:     []models.FieldUpdate{{Path: "body", Value: "new"}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"body":"new"`) {
		t.Fatalf("expected reduced content, got %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/editor/updates", models.ApplyUpdatesRequest{
		SectionType: "TEXT",
		Updates:     []models.FieldUpdate{{Path: "bad path!", Value: "x"}},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed path, got %d", w.Code)
	}
}

func TestArrayItemEndpoints(t *testing.T) {
	router := newTestRouter(newMemorySectionAPI())

	w := doJSON(t, router, http.MethodPost, "/editor/items/add", map[string]interface{}{
		"section_type": "FAQ",
		"content":      map[string]interface{}{},
		"path":         "items",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for add, got %d: %s", w.Code, w.Body.String())
	}

	var addResp struct {
		Content map[string]interface{} `json:"content"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &addResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	items, _ := addResp.Content["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected one item after add, got %d", len(items))
	}

	index := 0
	w = doJSON(t, router, http.MethodPost, "/editor/items/remove", map[string]interface{}{
		"section_type": "FAQ",
		"content":      addResp.Content,
		"path":         "items",
		"index":        index,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for remove, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/editor/items/remove", map[string]interface{}{
		"section_type": "FAQ",
		"content":      map[string]interface{}{},
		"path":         "items",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when index missing, got %d", w.Code)
	}
}

func TestVideoCheckEndpoint(t *testing.T) {
	router := newTestRouter(newMemorySectionAPI())

	w := doJSON(t, router, http.MethodPost, "/editor/video/check", models.VideoCheckRequest{
		URL: "https://youtu.be/dQw4w9WgXcQ",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"kind":"youtube"`) {
		t.Fatalf("expected youtube classification, got %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/editor/video/check", models.VideoCheckRequest{URL: "not a url"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for invalid URL classification, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"valid":false`) {
		t.Fatalf("expected invalid classification, got %s", w.Body.String())
	}
}

func TestRenderEndpoints(t *testing.T) {
	api := newMemorySectionAPI()
	api.sections["s1"] = models.Section{
		ID: "s1", SectionType: "TEXT", IsVisible: true,
		Content: map[string]interface{}{"body": "<p>Village notice</p>"},
	}
	router := newTestRouter(api)

	w := doJSON(t, router, http.MethodGet, "/render/pages/p1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected HTML content type, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Village notice") {
		t.Fatalf("expected rendered body, got %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/render/preview", map[string]interface{}{
		"sections": []models.Section{
			{ID: "p", SectionType: "hero", IsVisible: true,
				Content: map[string]interface{}{"title": "Preview Title"}},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for preview, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Preview Title") {
		t.Fatalf("expected preview HTML, got %s", w.Body.String())
	}
}
