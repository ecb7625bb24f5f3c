package forms

import (
	"fmt"
	"strconv"
	"strings"

	"egramseva-backend/internal/schema"
)

func registerDefaultWidgets(b *Builder) {
	b.widgets[schema.FieldText] = renderTextWidget
	b.widgets[schema.FieldRichText] = renderRichTextWidget
	b.widgets[schema.FieldNumber] = renderNumberWidget
	b.widgets[schema.FieldBoolean] = renderBooleanWidget
	b.widgets[schema.FieldURL] = renderURLWidget
	b.widgets[schema.FieldImage] = renderImageWidget
	b.widgets[schema.FieldDate] = renderDateWidget
	b.widgets[schema.FieldSelect] = renderSelectWidget
}

func stringValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func inputAttrs(field schema.FieldDefinition, path string) string {
	var sb strings.Builder
	sb.WriteString(` id="` + esc(path) + `" name="` + esc(path) + `"`)
	if field.Placeholder != "" {
		sb.WriteString(` placeholder="` + esc(field.Placeholder) + `"`)
	}
	if field.Required {
		sb.WriteString(` required`)
	}
	return sb.String()
}

func renderTextWidget(b *Builder, field schema.FieldDefinition, path string, value interface{}) string {
	return fmt.Sprintf(
		`<input type="text" class="%s__input"%s value="%s">`,
		ClassPrefix, inputAttrs(field, path), esc(stringValue(value)),
	)
}

func renderRichTextWidget(b *Builder, field schema.FieldDefinition, path string, value interface{}) string {
	return fmt.Sprintf(
		`<textarea class="%s__input %s__input--rich"%s rows="6">%s</textarea>`,
		ClassPrefix, ClassPrefix, inputAttrs(field, path), esc(stringValue(value)),
	)
}

func renderNumberWidget(b *Builder, field schema.FieldDefinition, path string, value interface{}) string {
	return fmt.Sprintf(
		`<input type="number" class="%s__input"%s value="%s">`,
		ClassPrefix, inputAttrs(field, path), esc(stringValue(value)),
	)
}

func renderBooleanWidget(b *Builder, field schema.FieldDefinition, path string, value interface{}) string {
	checked := ""
	if isTruthy(value) {
		checked = " checked"
	}
	return fmt.Sprintf(
		`<label class="%s__toggle"><input type="checkbox"%s value="true"%s> %s</label>`,
		ClassPrefix, inputAttrs(field, path), checked, esc(labelOf(field)),
	)
}

func renderURLWidget(b *Builder, field schema.FieldDefinition, path string, value interface{}) string {
	return fmt.Sprintf(
		`<input type="url" class="%s__input"%s value="%s">`,
		ClassPrefix, inputAttrs(field, path), esc(stringValue(value)),
	)
}

// renderImageWidget shows a preview with a remove control when a value is
// set and an upload control otherwise. Freshly picked files surface as
// blob: URLs which never reach persisted content.
func renderImageWidget(b *Builder, field schema.FieldDefinition, path string, value interface{}) string {
	url := stringValue(value)
	var sb strings.Builder
	sb.WriteString(`<div class="` + ClassPrefix + `__image">`)
	if url != "" {
		sb.WriteString(`<img class="` + ClassPrefix + `__image-preview" src="` + esc(url) + `" alt="">`)
		sb.WriteString(fmt.Sprintf(
			`<button type="button" class="%s__image-remove" data-action="remove-image" data-path="%s">Remove</button>`,
			ClassPrefix, esc(path),
		))
	} else {
		sb.WriteString(fmt.Sprintf(
			`<input type="file" class="%s__image-upload" accept="image/*"%s>`,
			ClassPrefix, inputAttrs(field, path),
		))
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func renderDateWidget(b *Builder, field schema.FieldDefinition, path string, value interface{}) string {
	return fmt.Sprintf(
		`<input type="date" class="%s__input"%s value="%s">`,
		ClassPrefix, inputAttrs(field, path), esc(stringValue(value)),
	)
}

func renderSelectWidget(b *Builder, field schema.FieldDefinition, path string, value interface{}) string {
	current := stringValue(value)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<select class="%s__input"%s>`, ClassPrefix, inputAttrs(field, path)))
	if !field.Required {
		sb.WriteString(`<option value=""></option>`)
	}
	for _, opt := range field.Options {
		selected := ""
		if opt.Value == current {
			selected = " selected"
		}
		sb.WriteString(`<option value="` + esc(opt.Value) + `"` + selected + `>` + esc(opt.Label) + `</option>`)
	}
	sb.WriteString(`</select>`)
	return sb.String()
}

func isTruthy(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1"
	case float64:
		return v != 0
	default:
		return false
	}
}
