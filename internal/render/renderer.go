package render

import (
	"strings"

	"egramseva-backend/internal/models"
	"egramseva-backend/internal/schema"
)

// ClassPrefix is the BEM-style prefix applied to every rendered class name.
const ClassPrefix = "egs"

// Engine turns stored sections into HTML. Dispatch is two-level: by
// canonical section type through the registry, then by layout type inside
// item-list renderers.
type Engine struct {
	registry *Registry
	ctx      RenderContext
}

// NewEngine creates a renderer with the built-in section registry.
func NewEngine(ctx RenderContext) *Engine {
	return &Engine{
		registry: DefaultRegistry(),
		ctx:      ctx,
	}
}

// NewEngineWithRegistry creates a renderer over a custom registry.
func NewEngineWithRegistry(ctx RenderContext, registry *Registry) *Engine {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Engine{registry: registry, ctx: ctx}
}

// Registry returns the engine's section registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Render produces the full HTML for one section, or the empty string when
// the section is hidden or has nothing to show. Unknown section types
// degrade to a minimal fallback instead of failing.
func (e *Engine) Render(section models.Section) string {
	if !section.IsVisible {
		return ""
	}

	cnt := sectionContent(section)

	// Empty sections are invisible, not placeholders.
	if len(cnt) == 0 && strings.TrimSpace(section.Title) == "" &&
		strings.TrimSpace(section.Subtitle) == "" && strings.TrimSpace(section.ImageURL) == "" {
		return ""
	}

	canonical := schema.Canonicalize(section.SectionType)
	section.SectionType = canonical
	section.Content = cnt

	renderer, ok := e.registry.Get(canonical)
	var body string
	if ok {
		body = renderer(e.ctx, ClassPrefix, section)
	} else {
		body = renderFallback(e.ctx, ClassPrefix, section)
	}

	var sb strings.Builder
	sb.WriteString(`<section class="` + ClassPrefix + `__section ` + ClassPrefix + `__section--` + strings.ToLower(canonical) + `"`)
	if section.ID != "" {
		sb.WriteString(` id="section-` + esc(section.ID) + `"`)
	}
	if classes := animationClass(ClassPrefix, cnt); classes != "" {
		sb.WriteString(` data-animate="true"`)
		sb.WriteString(` data-animation-class="` + classes + `"`)
	}
	if style := containerStyle(section, cnt); style != "" {
		sb.WriteString(` style="` + style + `"`)
	}
	sb.WriteString(`>`)

	writeSectionHeading(&sb, section)
	sb.WriteString(body)
	sb.WriteString(renderSectionCTA(ClassPrefix, cnt))
	sb.WriteString(`</section>`)
	return sb.String()
}

// RenderAll renders visible sections ordered by display order, assuming the
// caller already sorted them (the content API returns them ordered).
func (e *Engine) RenderAll(sections []models.Section) string {
	var sb strings.Builder
	for _, section := range sections {
		sb.WriteString(e.Render(section))
	}
	return sb.String()
}

func writeSectionHeading(sb *strings.Builder, section models.Section) {
	// Hero renders its own heading from content.
	if section.SectionType == schema.TypeHeroBanner {
		return
	}
	if strings.TrimSpace(section.Title) != "" {
		sb.WriteString(`<h2 class="` + ClassPrefix + `__section-title">` + esc(section.Title) + `</h2>`)
	}
	if strings.TrimSpace(section.Subtitle) != "" {
		sb.WriteString(`<p class="` + ClassPrefix + `__section-subtitle">` + esc(section.Subtitle) + `</p>`)
	}
}

// renderFallback handles unrecognised section types: item-list content
// renders as a bare list, otherwise any body text is dumped sanitised.
func renderFallback(ctx RenderContext, prefix string, section models.Section) string {
	cnt := section.ContentMap()

	if items := itemsFromContent(cnt); len(items) > 0 {
		return renderItemList(ctx, prefix, section, cnt, items)
	}

	for _, key := range []string{"body", "text", "description"} {
		if text := getString(cnt, key); strings.TrimSpace(text) != "" {
			return `<div class="` + prefix + `__fallback">` + ctx.SanitizeHTML(text) + `</div>`
		}
	}
	return ""
}
