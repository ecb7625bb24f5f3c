package render

import (
	"fmt"
	"strings"

	"egramseva-backend/internal/models"
)

func renderHeroBanner(ctx RenderContext, prefix string, section models.Section) string {
	cnt := section.ContentMap()

	title := getString(cnt, "title")
	if strings.TrimSpace(title) == "" {
		title = section.Title
	}
	subtitle := getString(cnt, "subtitle")
	if strings.TrimSpace(subtitle) == "" {
		subtitle = section.Subtitle
	}
	background := safeURL(getString(cnt, "backgroundImage"))
	if background == "" {
		background = safeURL(section.ImageURL)
	}

	if strings.TrimSpace(title) == "" && background == "" {
		return ""
	}

	heroClass := fmt.Sprintf("%s__hero", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + heroClass + `"`)
	if background != "" {
		sb.WriteString(fmt.Sprintf(` style="background-image: url('%s')"`, esc(background)))
	}
	sb.WriteString(`>`)

	sb.WriteString(`<div class="` + heroClass + `-content">`)
	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h1 class="` + heroClass + `-title">` + ctx.SanitizeHTML(title) + `</h1>`)
	}
	if strings.TrimSpace(subtitle) != "" {
		sb.WriteString(`<h2 class="` + heroClass + `-subtitle">` + ctx.SanitizeHTML(subtitle) + `</h2>`)
	}

	if parseBool(cnt["showCta"], false) {
		if cta, ok := cnt["cta"].(map[string]interface{}); ok {
			label := strings.TrimSpace(getString(cta, "label"))
			url := safeURL(getString(cta, "url"))
			if label == "" {
				label = "Learn more"
			}
			if url != "" {
				sb.WriteString(`<a class="` + heroClass + `-button" href="` + esc(url) + `">` + esc(label) + `</a>`)
			}
		}
	}

	sb.WriteString(`</div></div>`)
	return sb.String()
}
