package render

import (
	"fmt"
	"strings"

	"egramseva-backend/internal/models"
)

func renderSplitContent(ctx RenderContext, prefix string, section models.Section) string {
	cnt := section.ContentMap()

	heading := getString(cnt, "heading")
	body := getString(cnt, "body")
	image := safeURL(getString(cnt, "image"))

	if strings.TrimSpace(heading) == "" && strings.TrimSpace(body) == "" && image == "" {
		return ""
	}

	position := strings.ToLower(getString(cnt, "imagePosition"))
	if position != "right" {
		position = "left"
	}

	splitClass := fmt.Sprintf("%s__split-content %s__split-content--image-%s", prefix, prefix, position)

	var sb strings.Builder
	sb.WriteString(`<div class="` + splitClass + `">`)
	if image != "" {
		sb.WriteString(fmt.Sprintf(
			`<div class="%s__split-content-media"><img src="%s" alt="%s" /></div>`,
			prefix, esc(image), esc(heading),
		))
	}
	sb.WriteString(`<div class="` + prefix + `__split-content-body">`)
	if strings.TrimSpace(heading) != "" {
		sb.WriteString(`<h3>` + esc(heading) + `</h3>`)
	}
	if strings.TrimSpace(body) != "" {
		sb.WriteString(`<div>` + ctx.SanitizeHTML(body) + `</div>`)
	}
	sb.WriteString(`</div></div>`)
	return sb.String()
}
