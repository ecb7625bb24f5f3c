package render

import (
	"strings"

	"egramseva-backend/internal/models"
)

func renderRichText(ctx RenderContext, prefix string, section models.Section) string {
	cnt := section.ContentMap()

	body := getString(cnt, "body")
	if strings.TrimSpace(body) == "" {
		body = getString(cnt, "text")
	}
	if strings.TrimSpace(body) == "" {
		return ""
	}

	return `<div class="` + prefix + `__richtext">` + ctx.SanitizeHTML(body) + `</div>`
}

// renderItemListSection is the shared renderer for sections whose content
// is a uniform item list; arrangement comes entirely from the layout type.
func renderItemListSection(ctx RenderContext, prefix string, section models.Section) string {
	cnt := section.ContentMap()
	items := itemsFromContent(cnt)
	return renderItemList(ctx, prefix, section, cnt, items)
}
