package carousel

import (
	"fmt"
	"html/template"
	"strings"

	"egramseva-backend/internal/models"
)

// Render produces the carousel widget HTML for pre-rendered item bodies.
// Zero items render nothing. When every item fits in one view the track is
// a single static slide with arrows and indicators suppressed.
func Render(e *Engine, prefix string, itemsHTML []string) string {
	if e == nil || len(itemsHTML) == 0 {
		return ""
	}

	cfg := e.Config()
	perView := e.EffectiveItemsPerView()
	total := e.TotalSlides()

	rootClass := fmt.Sprintf("%s__carousel %s__carousel--%s", prefix, prefix, template.HTMLEscapeString(string(cfg.LayoutType)))
	trackClass := fmt.Sprintf("%s__carousel-track", prefix)
	slideClass := fmt.Sprintf("%s__carousel-slide", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + rootClass + `" tabindex="0"`)
	sb.WriteString(fmt.Sprintf(` data-interval="%d" data-autoplay="%t" data-loop="%t" data-pause-on-hover="%t"`,
		cfg.IntervalMS, cfg.AutoPlay, cfg.Loop, cfg.PauseOnHover))
	sb.WriteString(`>`)

	sb.WriteString(fmt.Sprintf(
		`<div class="%s" style="transform: translateX(%.4f%%); transition-duration: %dms; gap: %dpx">`,
		trackClass, e.TranslatePercent(), cfg.TransitionDurationMS, cfg.GapPX,
	))

	slideWidth := 100 / float64(perView)
	for i, item := range itemsHTML {
		classes := slideClass
		style := fmt.Sprintf("flex: 0 0 %.4f%%", slideWidth)
		switch e.VisibilityOf(i) {
		case SlideDimmed:
			classes += " " + slideClass + "--dimmed"
		case SlideHidden:
			classes += " " + slideClass + "--hidden"
			style += "; opacity: 0; pointer-events: none"
		}
		sb.WriteString(`<div class="` + classes + `" style="` + style + `">`)
		sb.WriteString(item)
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)

	if show, prevOK, nextOK := e.ArrowsEnabled(); show {
		writeArrow(&sb, prefix, "prev", prevOK)
		writeArrow(&sb, prefix, "next", nextOK)
	}

	if cfg.ShowIndicators && total > 1 && cfg.IndicatorType != models.IndicatorArrows {
		writeIndicators(&sb, e, prefix)
	}

	sb.WriteString(`</div>`)
	return sb.String()
}

func writeArrow(sb *strings.Builder, prefix, direction string, enabled bool) {
	class := fmt.Sprintf("%s__carousel-arrow %s__carousel-arrow--%s", prefix, prefix, direction)
	disabled := ""
	if !enabled {
		disabled = " disabled"
	}
	symbol := "&#8249;"
	label := "Previous slide"
	if direction == "next" {
		symbol = "&#8250;"
		label = "Next slide"
	}
	sb.WriteString(`<button type="button" class="` + class + `" aria-label="` + label + `"` + disabled + `>` + symbol + `</button>`)
}

func writeIndicators(sb *strings.Builder, e *Engine, prefix string) {
	cfg := e.Config()
	total := e.TotalSlides()
	current := e.CurrentIndex()

	wrapClass := fmt.Sprintf("%s__carousel-indicators %s__carousel-indicators--%s", prefix, prefix, cfg.IndicatorType)
	sb.WriteString(`<div class="` + wrapClass + `">`)

	switch cfg.IndicatorType {
	case models.IndicatorProgress:
		fill := float64(current+1) / float64(total) * 100
		sb.WriteString(fmt.Sprintf(
			`<div class="%s__carousel-progress"><div class="%s__carousel-progress-fill" style="width: %.2f%%"></div></div>`,
			prefix, prefix, fill,
		))
	case models.IndicatorNumbered:
		sb.WriteString(fmt.Sprintf(
			`<span class="%s__carousel-counter">%d / %d</span>`,
			prefix, current+1, total,
		))
	default: // dots
		dotClass := fmt.Sprintf("%s__carousel-dot", prefix)
		for i := 0; i < total; i++ {
			classes := dotClass
			if i == current {
				classes += " " + dotClass + "--active"
			}
			sb.WriteString(fmt.Sprintf(
				`<button type="button" class="%s" data-slide="%d" aria-label="Go to slide %d"></button>`,
				classes, i, i+1,
			))
		}
	}

	sb.WriteString(`</div>`)
}
