package render

import (
	"fmt"
	"strings"

	"egramseva-backend/internal/models"
)

// renderContactForm renders a form section whose inputs are declared by
// the section's own formFields list. Submission targets the public form
// endpoint; answers are collected client-side.
func renderContactForm(ctx RenderContext, prefix string, section models.Section) string {
	cnt := section.ContentMap()

	raw, ok := cnt["formFields"].([]interface{})
	if !ok || len(raw) == 0 {
		return ""
	}

	formClass := fmt.Sprintf("%s__form", prefix)
	submitLabel := strings.TrimSpace(getString(cnt, "submitLabel"))
	if submitLabel == "" {
		submitLabel = "Submit"
	}

	var sb strings.Builder
	sb.WriteString(`<form class="` + formClass + `" method="post" data-section="` + esc(section.ID) + `">`)

	if heading := strings.TrimSpace(getString(cnt, "heading")); heading != "" {
		sb.WriteString(`<h3 class="` + formClass + `-heading">` + esc(heading) + `</h3>`)
	}

	for i, entry := range raw {
		field, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		label := strings.TrimSpace(getString(field, "label"))
		if label == "" {
			continue
		}
		fieldType := strings.ToLower(getString(field, "fieldType"))
		required := parseBool(field["required"], false)
		name := fmt.Sprintf("field_%d", i)

		sb.WriteString(`<label class="` + formClass + `-label">` + esc(label))
		if required {
			sb.WriteString(`<span class="` + formClass + `-required">*</span>`)
		}

		switch fieldType {
		case "textarea":
			sb.WriteString(`<textarea name="` + name + `"`)
			if required {
				sb.WriteString(` required`)
			}
			sb.WriteString(`></textarea>`)
		case "select":
			sb.WriteString(`<select name="` + name + `"`)
			if required {
				sb.WriteString(` required`)
			}
			sb.WriteString(`>`)
			for _, choice := range strings.Split(getString(field, "choices"), ",") {
				choice = strings.TrimSpace(choice)
				if choice == "" {
					continue
				}
				sb.WriteString(`<option value="` + esc(choice) + `">` + esc(choice) + `</option>`)
			}
			sb.WriteString(`</select>`)
		case "email", "tel", "text":
			sb.WriteString(`<input type="` + fieldType + `" name="` + name + `"`)
			if required {
				sb.WriteString(` required`)
			}
			sb.WriteString(` />`)
		default:
			sb.WriteString(`<input type="text" name="` + name + `"`)
			if required {
				sb.WriteString(` required`)
			}
			sb.WriteString(` />`)
		}
		sb.WriteString(`</label>`)
	}

	sb.WriteString(`<button type="submit" class="` + formClass + `-submit">` + esc(submitLabel) + `</button>`)
	sb.WriteString(`</form>`)
	return sb.String()
}
