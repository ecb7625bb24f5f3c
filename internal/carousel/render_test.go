package carousel

import (
	"strings"
	"testing"

	"egramseva-backend/internal/models"
)

func TestRender_EmptyItemsRendersNothing(t *testing.T) {
	e := NewEngine(models.DefaultCarouselConfig(), 0)
	defer e.Close()

	if got := Render(e, "egs", nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestRender_SlidesCarryPerViewWidth(t *testing.T) {
	cfg := models.DefaultCarouselConfig()
	cfg.AutoPlay = false
	cfg.ItemsPerView = 2
	cfg.TransitionDurationMS = 0

	e := NewEngine(cfg, 4)
	defer e.Close()

	html := Render(e, "egs", []string{"<p>a</p>", "<p>b</p>", "<p>c</p>", "<p>d</p>"})

	if !strings.Contains(html, "flex: 0 0 50.0000%") {
		t.Fatalf("expected 50%% slide basis for 2 per view, got %q", html)
	}
	if strings.Count(html, `class="egs__carousel-slide"`) != 4 {
		t.Fatalf("expected 4 slides, got %q", html)
	}
	if !strings.Contains(html, `data-loop="true"`) {
		t.Fatalf("expected loop data attribute, got %q", html)
	}
}

func TestRender_DotIndicatorsMarkActiveSlide(t *testing.T) {
	cfg := models.DefaultCarouselConfig()
	cfg.AutoPlay = false
	cfg.ItemsPerView = 1
	cfg.TransitionDurationMS = 0

	e := NewEngine(cfg, 3)
	defer e.Close()
	e.GoToSlide(1)

	html := Render(e, "egs", []string{"a", "b", "c"})

	if strings.Count(html, "egs__carousel-dot--active") != 1 {
		t.Fatalf("expected exactly one active dot, got %q", html)
	}
	if !strings.Contains(html, `data-slide="1" aria-label="Go to slide 2"`) {
		t.Fatalf("expected dot metadata for slide 2, got %q", html)
	}
}

func TestRender_ProgressIndicatorFill(t *testing.T) {
	cfg := models.DefaultCarouselConfig()
	cfg.AutoPlay = false
	cfg.ItemsPerView = 1
	cfg.TransitionDurationMS = 0
	cfg.IndicatorType = models.IndicatorProgress

	e := NewEngine(cfg, 4)
	defer e.Close()
	e.GoToSlide(1)

	html := Render(e, "egs", []string{"a", "b", "c", "d"})

	if !strings.Contains(html, "width: 50.00%") {
		t.Fatalf("expected progress fill at 50%% on slide 2 of 4, got %q", html)
	}
}

func TestRender_ArrowsOnlySuppressesIndicators(t *testing.T) {
	cfg := models.DefaultCarouselConfig()
	cfg.AutoPlay = false
	cfg.ItemsPerView = 1
	cfg.TransitionDurationMS = 0
	cfg.IndicatorType = models.IndicatorArrows

	e := NewEngine(cfg, 3)
	defer e.Close()

	html := Render(e, "egs", []string{"a", "b", "c"})

	if strings.Contains(html, "egs__carousel-indicators") {
		t.Fatalf("expected no indicator block in arrows-only mode, got %q", html)
	}
	if !strings.Contains(html, "egs__carousel-arrow--next") {
		t.Fatalf("expected arrows to render, got %q", html)
	}
}

func TestRender_SingleViewHidesControls(t *testing.T) {
	cfg := models.DefaultCarouselConfig()
	cfg.AutoPlay = false
	cfg.ItemsPerView = 3
	cfg.TransitionDurationMS = 0

	e := NewEngine(cfg, 2)
	defer e.Close()

	html := Render(e, "egs", []string{"a", "b"})

	if strings.Contains(html, "egs__carousel-arrow") {
		t.Fatalf("expected no arrows when everything fits, got %q", html)
	}
	if strings.Contains(html, "egs__carousel-dot") {
		t.Fatalf("expected no indicators for a single slide, got %q", html)
	}
}
