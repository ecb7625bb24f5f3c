package render

import (
	"fmt"
	"strings"

	"egramseva-backend/internal/content"
)

// Item is the uniform card model shared by every item-list layout. STATS
// items use Value/Label/Icon; everything else uses the remaining fields.
type Item struct {
	ID          string
	Title       string
	Subtitle    string
	Description string
	Image       string
	Link        string

	Value string
	Label string
	Icon  string
}

// itemsFromContent reads the "items" array out of section content. Entries
// that are not objects are skipped.
func itemsFromContent(cnt content.Map) []Item {
	raw, ok := cnt["items"].([]interface{})
	if !ok {
		return nil
	}

	items := make([]Item, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		items = append(items, Item{
			ID:          getString(m, "id"),
			Title:       getString(m, "title"),
			Subtitle:    getString(m, "subtitle"),
			Description: getString(m, "description"),
			Image:       getString(m, "image"),
			Link:        getString(m, "link"),
			Value:       getString(m, "value"),
			Label:       getString(m, "label"),
			Icon:        getString(m, "icon"),
		})
	}
	return items
}

// imageFitPolicy resolves the object-fit applied to item images.
func imageFitPolicy(cnt content.Map) string {
	switch strings.ToLower(getString(cnt, "imageFit")) {
	case "contain":
		return "contain"
	case "fill":
		return "fill"
	default:
		return "cover"
	}
}

func renderItemCard(ctx RenderContext, prefix string, item Item, imageFit string) string {
	cardClass := fmt.Sprintf("%s__card", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + cardClass + `">`)

	if url := safeURL(item.Image); url != "" {
		sb.WriteString(fmt.Sprintf(
			`<img class="%s-image" src="%s" alt="%s" style="object-fit: %s" />`,
			cardClass, esc(url), esc(item.Title), imageFit,
		))
	}
	if strings.TrimSpace(item.Title) != "" {
		sb.WriteString(`<h3 class="` + cardClass + `-title">` + esc(item.Title) + `</h3>`)
	}
	if strings.TrimSpace(item.Subtitle) != "" {
		sb.WriteString(`<h4 class="` + cardClass + `-subtitle">` + esc(item.Subtitle) + `</h4>`)
	}
	if strings.TrimSpace(item.Description) != "" {
		sb.WriteString(`<div class="` + cardClass + `-description">` + ctx.SanitizeHTML(item.Description) + `</div>`)
	}
	if url := safeURL(item.Link); url != "" {
		sb.WriteString(`<a class="` + cardClass + `-link" href="` + esc(url) + `">&rarr;</a>`)
	}

	sb.WriteString(`</div>`)
	return sb.String()
}

func renderStatCard(prefix string, item Item) string {
	cardClass := fmt.Sprintf("%s__stat", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + cardClass + `">`)
	if strings.TrimSpace(item.Icon) != "" {
		sb.WriteString(`<span class="` + cardClass + `-icon" data-icon="` + esc(item.Icon) + `"></span>`)
	}
	sb.WriteString(`<span class="` + cardClass + `-value">` + esc(item.Value) + `</span>`)
	sb.WriteString(`<span class="` + cardClass + `-label">` + esc(item.Label) + `</span>`)
	sb.WriteString(`</div>`)
	return sb.String()
}
