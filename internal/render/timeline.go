package render

import (
	"fmt"
	"strings"

	"egramseva-backend/internal/models"
)

func renderTimeline(ctx RenderContext, prefix string, section models.Section) string {
	cnt := section.ContentMap()

	raw, ok := cnt["items"].([]interface{})
	if !ok || len(raw) == 0 {
		return ""
	}

	timelineClass := fmt.Sprintf("%s__timeline", prefix)

	var sb strings.Builder
	sb.WriteString(`<ol class="` + timelineClass + `">`)
	for _, entry := range raw {
		item, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		title := strings.TrimSpace(getString(item, "title"))
		if title == "" {
			continue
		}
		sb.WriteString(`<li class="` + timelineClass + `-item">`)
		if date := strings.TrimSpace(getString(item, "date")); date != "" {
			sb.WriteString(`<time class="` + timelineClass + `-date">` + esc(date) + `</time>`)
		}
		sb.WriteString(`<h3 class="` + timelineClass + `-title">` + esc(title) + `</h3>`)
		if desc := strings.TrimSpace(getString(item, "description")); desc != "" {
			sb.WriteString(`<div class="` + timelineClass + `-description">` + ctx.SanitizeHTML(desc) + `</div>`)
		}
		sb.WriteString(`</li>`)
	}
	sb.WriteString(`</ol>`)
	return sb.String()
}

// renderTestimonials maps quote items onto the uniform card model and
// reuses the layout dispatcher, so testimonials can rotate in a carousel
// like any other item list.
func renderTestimonials(ctx RenderContext, prefix string, section models.Section) string {
	cnt := section.ContentMap()

	raw, ok := cnt["items"].([]interface{})
	if !ok || len(raw) == 0 {
		return ""
	}

	items := make([]Item, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		quote := strings.TrimSpace(getString(m, "quote"))
		if quote == "" {
			continue
		}
		items = append(items, Item{
			ID:          getString(m, "id"),
			Title:       getString(m, "author"),
			Subtitle:    getString(m, "role"),
			Description: quote,
			Image:       getString(m, "image"),
		})
	}
	return renderItemList(ctx, prefix, section, cnt, items)
}

func renderStats(ctx RenderContext, prefix string, section models.Section) string {
	cnt := section.ContentMap()

	items := itemsFromContent(cnt)
	if len(items) == 0 {
		return ""
	}

	cards := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Value) == "" && strings.TrimSpace(item.Label) == "" {
			continue
		}
		cards = append(cards, renderStatCard(prefix, item))
	}
	if len(cards) == 0 {
		return ""
	}
	return wrapAll(prefix+"__stats", cards)
}
