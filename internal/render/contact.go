package render

import (
	"fmt"
	"strings"

	"egramseva-backend/internal/models"
)

func renderMap(ctx RenderContext, prefix string, section models.Section) string {
	cnt := section.ContentMap()

	lat, latOK := getFloat(cnt, "latitude")
	lng, lngOK := getFloat(cnt, "longitude")
	if !latOK || !lngOK {
		return ""
	}

	zoom := 14.0
	if z, ok := getFloat(cnt, "zoom"); ok && z >= 1 && z <= 20 {
		zoom = z
	}

	mapClass := fmt.Sprintf("%s__map", prefix)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<div class="%s" data-lat="%.6f" data-lng="%.6f" data-zoom="%.0f"`,
		mapClass, lat, lng, zoom,
	))
	if label := strings.TrimSpace(getString(cnt, "markerLabel")); label != "" {
		sb.WriteString(` data-marker-label="` + esc(label) + `"`)
	}
	sb.WriteString(`></div>`)
	return sb.String()
}

func renderContactInfo(ctx RenderContext, prefix string, section models.Section) string {
	cnt := section.ContentMap()

	address := strings.TrimSpace(getString(cnt, "address"))
	phone := strings.TrimSpace(getString(cnt, "phone"))
	email := strings.TrimSpace(getString(cnt, "email"))
	hours := strings.TrimSpace(getString(cnt, "hours"))

	if address == "" && phone == "" && email == "" && hours == "" {
		return ""
	}

	infoClass := fmt.Sprintf("%s__contact", prefix)

	var sb strings.Builder
	sb.WriteString(`<address class="` + infoClass + `">`)
	if address != "" {
		sb.WriteString(`<p class="` + infoClass + `-address">` + esc(address) + `</p>`)
	}
	if phone != "" {
		sb.WriteString(`<p class="` + infoClass + `-phone"><a href="tel:` + esc(phone) + `">` + esc(phone) + `</a></p>`)
	}
	if email != "" {
		sb.WriteString(`<p class="` + infoClass + `-email"><a href="mailto:` + esc(email) + `">` + esc(email) + `</a></p>`)
	}
	if hours != "" {
		sb.WriteString(`<p class="` + infoClass + `-hours">` + esc(hours) + `</p>`)
	}
	sb.WriteString(`</address>`)
	return sb.String()
}

func renderCTABanner(ctx RenderContext, prefix string, section models.Section) string {
	cnt := section.ContentMap()

	heading := strings.TrimSpace(getString(cnt, "heading"))
	label := strings.TrimSpace(getString(cnt, "buttonLabel"))
	url := safeURL(getString(cnt, "buttonUrl"))

	if heading == "" && (label == "" || url == "") {
		return ""
	}

	ctaClass := fmt.Sprintf("%s__cta-banner", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + ctaClass + `">`)
	if heading != "" {
		sb.WriteString(`<h3 class="` + ctaClass + `-heading">` + esc(heading) + `</h3>`)
	}
	if label != "" && url != "" {
		sb.WriteString(`<a class="` + ctaClass + `-button" href="` + esc(url) + `">` + esc(label) + `</a>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func renderSocialLinks(ctx RenderContext, prefix string, section models.Section) string {
	cnt := section.ContentMap()

	raw, ok := cnt["items"].([]interface{})
	if !ok || len(raw) == 0 {
		return ""
	}

	socialClass := fmt.Sprintf("%s__social", prefix)

	var sb strings.Builder
	sb.WriteString(`<ul class="` + socialClass + `">`)
	count := 0
	for _, entry := range raw {
		item, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		platform := strings.ToLower(strings.TrimSpace(getString(item, "platform")))
		url := safeURL(getString(item, "url"))
		if platform == "" || url == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf(
			`<li class="%s-item"><a href="%s" rel="noopener" data-platform="%s">%s</a></li>`,
			socialClass, esc(url), esc(platform), esc(platform),
		))
		count++
	}
	sb.WriteString(`</ul>`)

	if count == 0 {
		return ""
	}
	return sb.String()
}
