package render

import (
	"fmt"
	"strings"

	"egramseva-backend/internal/carousel"
	"egramseva-backend/internal/content"
	"egramseva-backend/internal/models"
	"egramseva-backend/internal/schema"
)

// renderItemList arranges item cards according to the section's layout
// type. The per-item card is identical across layouts; only the
// arrangement differs.
func renderItemList(ctx RenderContext, prefix string, section models.Section, cnt content.Map, items []Item) string {
	if len(items) == 0 {
		return ""
	}

	imageFit := imageFitPolicy(cnt)
	cards := make([]string, len(items))
	for i, item := range items {
		cards[i] = renderItemCard(ctx, prefix, item, imageFit)
	}

	switch normaliseLayout(section.LayoutType) {
	case schema.LayoutGrid:
		return renderGrid(prefix, cnt, cards)
	case schema.LayoutRow:
		return wrapAll(prefix+"__row", cards)
	case schema.LayoutScrollingRow:
		return renderScrollingRow(prefix, cards)
	case schema.LayoutCarousel:
		return renderCarouselLayout(prefix, section, cards)
	case schema.LayoutMasonry:
		return wrapAll(prefix+"__masonry", cards)
	case schema.LayoutList:
		return wrapAll(prefix+"__list", cards)
	case schema.LayoutSplit:
		return renderSplitLayout(ctx, prefix, items[0], imageFit)
	case schema.LayoutFullWidth:
		return wrapAll(prefix+"__full-width", cards)
	default: // CONTAINED
		return wrapAll(prefix+"__contained", cards)
	}
}

func wrapAll(class string, cards []string) string {
	var sb strings.Builder
	sb.WriteString(`<div class="` + class + `">`)
	for _, card := range cards {
		sb.WriteString(card)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func renderGrid(prefix string, cnt content.Map, cards []string) string {
	columns := 3
	if v, ok := getFloat(cnt, "columns"); ok && v >= 1 && v <= 6 {
		columns = int(v)
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<div class="%s__grid" style="display: grid; grid-template-columns: repeat(%d, 1fr)">`,
		prefix, columns,
	))
	for _, card := range cards {
		sb.WriteString(card)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func renderScrollingRow(prefix string, cards []string) string {
	var sb strings.Builder
	sb.WriteString(`<div class="` + prefix + `__scrolling-row" style="overflow-x: auto">`)
	for _, card := range cards {
		sb.WriteString(`<div class="` + prefix + `__scrolling-row-item" style="flex: 0 0 280px">` + card + `</div>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func renderCarouselLayout(prefix string, section models.Section, cards []string) string {
	cfg := carouselConfigFromSection(section)
	engine := carousel.NewEngine(cfg, len(cards))
	defer engine.Close()
	return carousel.Render(engine, prefix, cards)
}

// renderSplitLayout shows the first item only, image beside text.
func renderSplitLayout(ctx RenderContext, prefix string, item Item, imageFit string) string {
	splitClass := prefix + "__split"

	var sb strings.Builder
	sb.WriteString(`<div class="` + splitClass + `">`)
	if url := safeURL(item.Image); url != "" {
		sb.WriteString(fmt.Sprintf(
			`<div class="%s-media"><img src="%s" alt="%s" style="object-fit: %s" /></div>`,
			splitClass, esc(url), esc(item.Title), imageFit,
		))
	}
	sb.WriteString(`<div class="` + splitClass + `-body">`)
	if item.Title != "" {
		sb.WriteString(`<h3>` + esc(item.Title) + `</h3>`)
	}
	if item.Subtitle != "" {
		sb.WriteString(`<h4>` + esc(item.Subtitle) + `</h4>`)
	}
	if item.Description != "" {
		sb.WriteString(`<div>` + ctx.SanitizeHTML(item.Description) + `</div>`)
	}
	if url := safeURL(item.Link); url != "" {
		sb.WriteString(`<a href="` + esc(url) + `">&rarr;</a>`)
	}
	sb.WriteString(`</div></div>`)
	return sb.String()
}
