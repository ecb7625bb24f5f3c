package content

import (
	"fmt"
	"strconv"

	"egramseva-backend/internal/schema"
)

// IsVisible evaluates a field's conditional logic against the current
// content. Rules run top to bottom; the first rule whose condition matches
// decides visibility. A field without rules is visible. When no rule
// matches, a field governed by SHOW rules stays hidden (its show condition
// is unmet) while HIDE-only rule sets leave the field visible.
func IsVisible(field schema.FieldDefinition, content Map) bool {
	rules := field.ConditionalLogic
	if len(rules) == 0 {
		return true
	}

	for _, rule := range rules {
		controlling, _ := Get(content, rule.ControllingField)
		matched := false
		switch rule.Operator {
		case schema.OperatorEquals:
			matched = valueEquals(controlling, rule.Value)
		case schema.OperatorNotEquals:
			matched = !valueEquals(controlling, rule.Value)
		}
		if matched {
			return rule.Action == schema.ActionShow
		}
	}

	for _, rule := range rules {
		if rule.Action == schema.ActionShow {
			return false
		}
	}
	return true
}

// valueEquals compares a stored content value against a rule's string
// value. Booleans and numbers compare through their canonical string form
// so "true" matches a stored bool and "3" a stored float64.
func valueEquals(stored interface{}, ruleValue string) bool {
	switch v := stored.(type) {
	case nil:
		return ruleValue == ""
	case string:
		return v == ruleValue
	case bool:
		return strconv.FormatBool(v) == ruleValue
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64) == ruleValue
	case int:
		return strconv.Itoa(v) == ruleValue
	default:
		return fmt.Sprintf("%v", v) == ruleValue
	}
}
