package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"egramseva-backend/internal/collab"
	"egramseva-backend/internal/models"
)

func TestRenderSection_SanitizesAndRenders(t *testing.T) {
	api := newFakeSectionAPI()
	api.sections["s1"] = models.Section{
		ID:          "s1",
		SectionType: "TEXT",
		IsVisible:   true,
		Content: map[string]interface{}{
			"body": `<p>Notice</p><script>alert("x")</script>`,
		},
	}
	svc := NewRenderService(api, nil)

	html, err := svc.RenderSection(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "Notice") {
		t.Fatalf("expected rendered body, got %s", html)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("expected script stripped, got %s", html)
	}
}

func TestRenderSection_MissingSection(t *testing.T) {
	svc := NewRenderService(newFakeSectionAPI(), nil)
	if _, err := svc.RenderSection(context.Background(), "ghost"); !errors.Is(err, collab.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRenderPage_OrdersAndSkipsHidden(t *testing.T) {
	api := newFakeSectionAPI()
	api.sections["a"] = models.Section{
		ID: "a", SectionType: "TEXT", IsVisible: true, DisplayOrder: 2,
		Content: map[string]interface{}{"body": "second block"},
	}
	api.sections["b"] = models.Section{
		ID: "b", SectionType: "TEXT", IsVisible: true, DisplayOrder: 1,
		Content: map[string]interface{}{"body": "first block"},
	}
	api.sections["c"] = models.Section{
		ID: "c", SectionType: "TEXT", IsVisible: false, DisplayOrder: 0,
		Content: map[string]interface{}{"body": "never shown"},
	}
	svc := NewRenderService(api, nil)

	html, err := svc.RenderPage(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := strings.Index(html, "first block")
	second := strings.Index(html, "second block")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected display order respected, got %s", html)
	}
	if strings.Contains(html, "never shown") {
		t.Fatalf("expected hidden section skipped, got %s", html)
	}
}

func sectionRenderCount(t *testing.T, sectionType string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, family := range families {
		if family.GetName() != "egramseva_render_sections_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "section_type" && label.GetValue() == sectionType {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestRenderSection_CountsRender(t *testing.T) {
	api := newFakeSectionAPI()
	api.sections["s1"] = models.Section{
		ID: "s1", SectionType: "TEXT", IsVisible: true,
		Content: map[string]interface{}{"body": "counted"},
	}
	svc := NewRenderService(api, nil)

	before := sectionRenderCount(t, "RICH_TEXT")
	if _, err := svc.RenderSection(context.Background(), "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after := sectionRenderCount(t, "RICH_TEXT"); after != before+1 {
		t.Fatalf("expected render counted under canonical type, got %v -> %v", before, after)
	}
}

func TestRenderPage_CountsVisibleRenders(t *testing.T) {
	api := newFakeSectionAPI()
	api.sections["a"] = models.Section{
		ID: "a", SectionType: "hero", IsVisible: true,
		Content: map[string]interface{}{"title": "Counted"},
	}
	api.sections["b"] = models.Section{
		ID: "b", SectionType: "hero", IsVisible: false,
		Content: map[string]interface{}{"title": "Skipped"},
	}
	svc := NewRenderService(api, nil)

	before := sectionRenderCount(t, "HERO_BANNER")
	if _, err := svc.RenderPage(context.Background(), "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after := sectionRenderCount(t, "HERO_BANNER"); after != before+1 {
		t.Fatalf("expected only the visible section counted, got %v -> %v", before, after)
	}
}

func TestRenderPage_ServesFromCache(t *testing.T) {
	rc := newFakeRenderCache()
	rc.pages["p1"] = "<main>cached page</main>"
	svc := NewRenderService(newFakeSectionAPI(), rc)

	html, err := svc.RenderPage(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<main>cached page</main>" {
		t.Fatalf("expected cached page body, got %s", html)
	}
}

func TestPreview_DoesNotTouchStore(t *testing.T) {
	svc := NewRenderService(newFakeSectionAPI(), nil)
	html := svc.Preview([]models.Section{
		{ID: "draft", SectionType: "hero", IsVisible: true,
			Content: map[string]interface{}{"title": "Draft Hero"}},
	})
	if !strings.Contains(html, "Draft Hero") {
		t.Fatalf("expected draft rendered, got %s", html)
	}
}
