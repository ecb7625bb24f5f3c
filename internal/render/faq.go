package render

import (
	"fmt"
	"strings"

	"egramseva-backend/internal/models"
)

func renderFAQ(ctx RenderContext, prefix string, section models.Section) string {
	cnt := section.ContentMap()

	raw, ok := cnt["items"].([]interface{})
	if !ok || len(raw) == 0 {
		return ""
	}

	faqClass := fmt.Sprintf("%s__faq", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + faqClass + `">`)
	for _, entry := range raw {
		item, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		question := strings.TrimSpace(getString(item, "question"))
		answer := strings.TrimSpace(getString(item, "answer"))
		if question == "" || answer == "" {
			continue
		}
		sb.WriteString(`<details class="` + faqClass + `-item">`)
		sb.WriteString(`<summary class="` + faqClass + `-question">` + esc(question) + `</summary>`)
		sb.WriteString(`<div class="` + faqClass + `-answer">` + ctx.SanitizeHTML(answer) + `</div>`)
		sb.WriteString(`</details>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}
