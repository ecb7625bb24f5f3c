package content

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"egramseva-backend/internal/schema"
)

// FieldError reports a single field validation failure. Field holds the
// full dot-path of the offending field so errors can be surfaced inline.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks one value against its field definition. Required-ness is
// checked first and short-circuits; empty optional values always pass.
// Validation rules run in declaration order and the first failure wins.
func Validate(field schema.FieldDefinition, value interface{}) *FieldError {
	if isEmpty(value) {
		if field.Required {
			return &FieldError{Field: field.Name, Message: fmt.Sprintf("%s is required", fieldLabel(field))}
		}
		return nil
	}

	for _, rule := range field.ValidationRules {
		if err := applyRule(field, rule, value); err != nil {
			return err
		}
	}
	return nil
}

func applyRule(field schema.FieldDefinition, rule schema.ValidationRule, value interface{}) *FieldError {
	fail := func(fallback string) *FieldError {
		msg := rule.ErrorMessage
		if msg == "" {
			msg = fallback
		}
		return &FieldError{Field: field.Name, Message: msg}
	}

	switch rule.Type {
	case schema.RuleMinLength:
		limit, err := strconv.Atoi(rule.Value)
		if err != nil {
			return nil
		}
		if len([]rune(asString(value))) < limit {
			return fail(fmt.Sprintf("%s must be at least %d characters", fieldLabel(field), limit))
		}
	case schema.RuleMaxLength:
		limit, err := strconv.Atoi(rule.Value)
		if err != nil {
			return nil
		}
		if len([]rune(asString(value))) > limit {
			return fail(fmt.Sprintf("%s must be at most %d characters", fieldLabel(field), limit))
		}
	case schema.RuleMin:
		limit, err := strconv.ParseFloat(rule.Value, 64)
		if err != nil {
			return nil
		}
		number, ok := asNumber(value)
		if ok && number < limit {
			return fail(fmt.Sprintf("%s must be at least %v", fieldLabel(field), limit))
		}
	case schema.RuleMax:
		limit, err := strconv.ParseFloat(rule.Value, 64)
		if err != nil {
			return nil
		}
		number, ok := asNumber(value)
		if ok && number > limit {
			return fail(fmt.Sprintf("%s must be at most %v", fieldLabel(field), limit))
		}
	case schema.RuleRegex:
		pattern, err := regexp.Compile(rule.Value)
		if err != nil {
			return nil
		}
		if !pattern.MatchString(asString(value)) {
			return fail(fmt.Sprintf("%s has an invalid format", fieldLabel(field)))
		}
	}
	return nil
}

// ValidateAll walks a field list against content and collects one error per
// failing field, keyed by dot-path. Hidden fields and the contents of
// hidden groups are skipped entirely. Array items are validated
// per-item with index-qualified paths.
func ValidateAll(fields []schema.FieldDefinition, cnt Map) []FieldError {
	return validateLevel(fields, cnt, cnt, "")
}

func validateLevel(fields []schema.FieldDefinition, level Map, root Map, prefix string) []FieldError {
	var errs []FieldError

	for _, field := range fields {
		if !IsVisible(field, level) {
			continue
		}

		path := field.Name
		if prefix != "" {
			path = prefix + "." + field.Name
		}
		value, _ := Get(level, field.Name)

		switch field.Type {
		case schema.FieldGroup:
			sub, _ := value.(map[string]interface{})
			errs = append(errs, validateLevel(field.NestedFields, sub, root, path)...)
		case schema.FieldArray:
			items, _ := value.([]interface{})
			if field.Required && len(items) == 0 {
				errs = append(errs, FieldError{Field: path, Message: fmt.Sprintf("%s is required", fieldLabel(field))})
				continue
			}
			for i, raw := range items {
				item, _ := raw.(map[string]interface{})
				itemPath := fmt.Sprintf("%s.%d", path, i)
				errs = append(errs, validateLevel(field.NestedFields, item, root, itemPath)...)
			}
		default:
			if err := Validate(field, value); err != nil {
				errs = append(errs, FieldError{Field: path, Message: err.Message})
			}
		}
	}
	return errs
}

func fieldLabel(field schema.FieldDefinition) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func isEmpty(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	default:
		return false
	}
}

func asString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
