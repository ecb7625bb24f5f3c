package content

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"egramseva-backend/internal/schema"
)

// ItemIDKey is the synthetic key carrying the stable per-item id used for
// UI keying inside ARRAY field items. It is not part of any schema.
const ItemIDKey = "id"

// FieldDefault resolves the initial value for a field. A declared default
// is coerced to the field's type; otherwise a type-indexed zero value is
// used.
func FieldDefault(field schema.FieldDefinition) interface{} {
	if field.DefaultValue != "" {
		switch field.Type {
		case schema.FieldNumber:
			parsed, err := strconv.ParseFloat(field.DefaultValue, 64)
			if err != nil {
				return float64(0)
			}
			return parsed
		case schema.FieldBoolean:
			trimmed := strings.ToLower(strings.TrimSpace(field.DefaultValue))
			return trimmed == "true" || trimmed == "1"
		default:
			return field.DefaultValue
		}
	}

	switch field.Type {
	case schema.FieldNumber:
		return float64(0)
	case schema.FieldBoolean:
		return false
	case schema.FieldArray:
		return []interface{}{}
	case schema.FieldGroup:
		return map[string]interface{}{}
	default:
		return ""
	}
}

// NewArrayItem builds the initial content for a fresh ARRAY item: every
// nested field's default plus a synthetic unique id.
func NewArrayItem(field schema.FieldDefinition) map[string]interface{} {
	item := make(map[string]interface{}, len(field.NestedFields)+1)
	item[ItemIDKey] = uuid.New().String()
	for _, nested := range field.NestedFields {
		item[nested.Name] = FieldDefault(nested)
	}
	return item
}

// Defaults builds a content object holding every field's default value.
// Used to seed the editor when a section is first added.
func Defaults(fields []schema.FieldDefinition) Map {
	out := make(Map, len(fields))
	for _, field := range fields {
		out[field.Name] = FieldDefault(field)
	}
	return out
}
