package forms

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"egramseva-backend/internal/content"
	"egramseva-backend/internal/schema"
)

// ClassPrefix is the BEM-style prefix applied to editor form class names.
const ClassPrefix = "egs-editor"

// Builder renders an editing form from a field schema and current content.
// It holds no authoritative state: every input's name is the field's dot
// path, edits travel back as FieldUpdate messages, and the only transient
// UI state (collapsed items, field errors) lives in the markup itself.
type Builder struct {
	widgets map[schema.FieldType]WidgetFunc
}

// WidgetFunc renders the input element for one field. path is the field's
// full dot path; value is the current content value at that path.
type WidgetFunc func(b *Builder, field schema.FieldDefinition, path string, value interface{}) string

// NewBuilder creates a form builder with the built-in widget table.
func NewBuilder() *Builder {
	b := &Builder{widgets: make(map[schema.FieldType]WidgetFunc)}
	registerDefaultWidgets(b)
	return b
}

// RegisterWidget overrides or adds the widget used for a field type.
func (b *Builder) RegisterWidget(fieldType schema.FieldType, fn WidgetFunc) {
	if fn != nil {
		b.widgets[fieldType] = fn
	}
}

// Render produces the form body for a field list against current content.
// Fields render in ascending display order (stable for ties), hidden
// fields are skipped entirely, and errors appear inline keyed by dot path.
func (b *Builder) Render(fields []schema.FieldDefinition, cnt content.Map, errors map[string]string) string {
	var sb strings.Builder
	b.renderLevel(&sb, fields, cnt, cnt, "", errors)
	return sb.String()
}

func (b *Builder) renderLevel(sb *strings.Builder, fields []schema.FieldDefinition, level content.Map, root content.Map, prefix string, errors map[string]string) {
	ordered := make([]schema.FieldDefinition, len(fields))
	copy(ordered, fields)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DisplayOrder < ordered[j].DisplayOrder
	})

	for _, field := range ordered {
		if !content.IsVisible(field, level) {
			continue
		}

		path := field.Name
		if prefix != "" {
			path = prefix + "." + field.Name
		}
		value, _ := content.Get(level, field.Name)

		b.renderField(sb, field, path, value, root, errors)
	}
}

func (b *Builder) renderField(sb *strings.Builder, field schema.FieldDefinition, path string, value interface{}, root content.Map, errors map[string]string) {
	fieldClass := fmt.Sprintf("%s__field %s__field--%s", ClassPrefix, ClassPrefix, strings.ToLower(string(field.Type)))

	sb.WriteString(`<div class="` + fieldClass + `" data-field="` + esc(path) + `">`)

	if field.Type != schema.FieldBoolean {
		sb.WriteString(`<label class="` + ClassPrefix + `__label" for="` + esc(path) + `">` + esc(labelOf(field)))
		if field.Required {
			sb.WriteString(`<span class="` + ClassPrefix + `__required">*</span>`)
		}
		sb.WriteString(`</label>`)
	}

	switch field.Type {
	case schema.FieldArray:
		b.renderArrayField(sb, field, path, value, errors)
	case schema.FieldGroup:
		b.renderGroupField(sb, field, path, value, errors)
	default:
		widget, ok := b.widgets[field.Type]
		if !ok {
			widget = renderTextWidget
		}
		sb.WriteString(widget(b, field, path, value))
	}

	if msg, ok := errors[path]; ok && msg != "" {
		sb.WriteString(`<p class="` + ClassPrefix + `__error">` + esc(msg) + `</p>`)
	}

	sb.WriteString(`</div>`)
}

// renderArrayField renders one collapsible sub-form per item plus
// add/remove controls when the field is repeatable.
func (b *Builder) renderArrayField(sb *strings.Builder, field schema.FieldDefinition, path string, value interface{}, errors map[string]string) {
	items, _ := value.([]interface{})

	listClass := fmt.Sprintf("%s__array", ClassPrefix)
	sb.WriteString(`<div class="` + listClass + `" data-array="` + esc(path) + `">`)

	for i, raw := range items {
		item, _ := raw.(map[string]interface{})
		itemPath := fmt.Sprintf("%s.%d", path, i)
		itemID := content.GetString(item, content.ItemIDKey)

		sb.WriteString(`<details class="` + listClass + `-item" open data-item-id="` + esc(itemID) + `">`)
		sb.WriteString(fmt.Sprintf(
			`<summary class="%s-item-summary">%s %d</summary>`,
			listClass, esc(labelOf(field)), i+1,
		))
		b.renderLevel(sb, field.NestedFields, item, item, itemPath, errors)
		if field.IsRepeatable {
			sb.WriteString(fmt.Sprintf(
				`<button type="button" class="%s-remove" data-action="remove-item" data-path="%s" data-index="%d">Remove</button>`,
				listClass, esc(path), i,
			))
		}
		sb.WriteString(`</details>`)
	}

	if field.IsRepeatable {
		sb.WriteString(fmt.Sprintf(
			`<button type="button" class="%s-add" data-action="add-item" data-path="%s">Add %s</button>`,
			listClass, esc(path), esc(labelOf(field)),
		))
	}

	sb.WriteString(`</div>`)
}

// renderGroupField renders nested fields against the group's sub-object.
// Groups have no repeat or remove affordance.
func (b *Builder) renderGroupField(sb *strings.Builder, field schema.FieldDefinition, path string, value interface{}, errors map[string]string) {
	sub, _ := value.(map[string]interface{})

	sb.WriteString(`<fieldset class="` + ClassPrefix + `__group" data-group="` + esc(path) + `">`)
	sb.WriteString(`<legend>` + esc(labelOf(field)) + `</legend>`)
	b.renderLevel(sb, field.NestedFields, sub, sub, path, errors)
	sb.WriteString(`</fieldset>`)
}

func labelOf(field schema.FieldDefinition) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func esc(s string) string {
	return template.HTMLEscapeString(s)
}
