package render

import (
	"fmt"
	"strings"

	"egramseva-backend/internal/content"
	"egramseva-backend/internal/models"
)

// containerStyle builds the inline style for a section wrapper from the
// section's colors plus the background and spacing sub-configs on its
// content. These apply independently of section and layout type.
func containerStyle(section models.Section, cnt content.Map) string {
	var parts []string

	if section.BackgroundColor != "" {
		parts = append(parts, "background-color: "+esc(section.BackgroundColor))
	}
	if section.TextColor != "" {
		parts = append(parts, "color: "+esc(section.TextColor))
	}

	if bg, ok := cnt["background"].(map[string]interface{}); ok {
		if color := getString(bg, "color"); color != "" {
			parts = append(parts, "background-color: "+esc(color))
		}
		if image := safeURL(getString(bg, "image")); image != "" {
			parts = append(parts, fmt.Sprintf("background-image: url('%s')", esc(image)))
			parts = append(parts, "background-size: cover", "background-position: center")
		}
	}

	if spacing, ok := cnt["spacing"].(map[string]interface{}); ok {
		if top, ok := getFloat(spacing, "top"); ok {
			parts = append(parts, fmt.Sprintf("padding-top: %.0fpx", top))
		}
		if bottom, ok := getFloat(spacing, "bottom"); ok {
			parts = append(parts, fmt.Sprintf("padding-bottom: %.0fpx", bottom))
		}
	}

	return strings.Join(parts, "; ")
}

// animationClass resolves the CSS animation class from the animation
// sub-config, if any.
func animationClass(prefix string, cnt content.Map) string {
	animation, ok := cnt["animation"].(map[string]interface{})
	if !ok {
		return ""
	}
	name := strings.ToLower(strings.TrimSpace(getString(animation, "type")))
	switch name {
	case "fade", "slide-up", "slide-in", "zoom":
		return fmt.Sprintf("%s__animate %s__animate--%s", prefix, prefix, name)
	default:
		return ""
	}
}

// renderSectionCTA renders the optional cta sub-config appended after the
// section body.
func renderSectionCTA(prefix string, cnt content.Map) string {
	cta, ok := cnt["cta"].(map[string]interface{})
	if !ok {
		return ""
	}
	label := strings.TrimSpace(getString(cta, "label"))
	url := safeURL(getString(cta, "url"))
	if label == "" || url == "" {
		return ""
	}
	return fmt.Sprintf(
		`<a class="%s__cta" href="%s">%s</a>`,
		prefix, esc(url), esc(label),
	)
}

// carouselConfigFromSection reads carousel overrides from section metadata,
// falling back to defaults. Misconfigured values degrade to sane ones in
// the engine rather than erroring.
func carouselConfigFromSection(section models.Section) models.CarouselConfig {
	cfg := models.DefaultCarouselConfig()

	raw, ok := section.Metadata["carousel"].(map[string]interface{})
	if !ok {
		return cfg
	}

	if v, ok := getFloat(raw, "items_per_view"); ok && v >= 1 {
		cfg.ItemsPerView = int(v)
	}
	if v, ok := getFloat(raw, "items_per_view_tablet"); ok && v >= 1 {
		cfg.ItemsPerViewTablet = int(v)
	}
	if v, ok := getFloat(raw, "items_per_view_mobile"); ok && v >= 1 {
		cfg.ItemsPerViewMobile = int(v)
	}
	if v, ok := getFloat(raw, "interval_ms"); ok && v >= 1000 {
		cfg.IntervalMS = int(v)
	}
	if v, ok := getFloat(raw, "transition_duration_ms"); ok && v >= 0 {
		cfg.TransitionDurationMS = int(v)
	}
	if v, ok := getFloat(raw, "gap_px"); ok && v >= 0 {
		cfg.GapPX = int(v)
	}
	if v, ok := raw["auto_play"]; ok {
		cfg.AutoPlay = parseBool(v, cfg.AutoPlay)
	}
	if v, ok := raw["loop"]; ok {
		cfg.Loop = parseBool(v, cfg.Loop)
	}
	if v, ok := raw["pause_on_hover"]; ok {
		cfg.PauseOnHover = parseBool(v, cfg.PauseOnHover)
	}
	if v, ok := raw["show_arrows"]; ok {
		cfg.ShowArrows = parseBool(v, cfg.ShowArrows)
	}
	if v, ok := raw["show_indicators"]; ok {
		cfg.ShowIndicators = parseBool(v, cfg.ShowIndicators)
	}
	if v := getString(raw, "layout_type"); v != "" {
		cfg.LayoutType = models.CarouselLayout(v)
	}
	if v := getString(raw, "indicator_type"); v != "" {
		cfg.IndicatorType = models.IndicatorStyle(v)
	}
	if v, ok := raw["centered_slides"]; ok {
		cfg.CenteredSlides = parseBool(v, cfg.CenteredSlides)
	}
	if v, ok := raw["partial_visible"]; ok {
		cfg.PartialVisible = parseBool(v, cfg.PartialVisible)
	}

	return cfg
}
