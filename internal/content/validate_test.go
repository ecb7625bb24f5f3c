package content

import (
	"strings"
	"testing"

	"egramseva-backend/internal/schema"
)

func TestValidate_RequiredShortCircuits(t *testing.T) {
	field := schema.FieldDefinition{
		Name:     "title",
		Label:    "Title",
		Type:     schema.FieldText,
		Required: true,
		ValidationRules: []schema.ValidationRule{
			{Type: schema.RuleMinLength, Value: "5", ErrorMessage: "too short"},
		},
	}

	err := Validate(field, "")
	if err == nil {
		t.Fatalf("expected required error for empty value")
	}
	if !strings.Contains(err.Message, "required") {
		t.Fatalf("expected required message before rule messages, got %q", err.Message)
	}
}

func TestValidate_EmptyOptionalPasses(t *testing.T) {
	field := schema.FieldDefinition{
		Name: "subtitle",
		Type: schema.FieldText,
		ValidationRules: []schema.ValidationRule{
			{Type: schema.RuleMinLength, Value: "5"},
		},
	}

	if err := Validate(field, ""); err != nil {
		t.Fatalf("expected empty optional value to pass, got %v", err)
	}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	field := schema.FieldDefinition{
		Name: "slug",
		Type: schema.FieldText,
		ValidationRules: []schema.ValidationRule{
			{Type: schema.RuleMinLength, Value: "10", ErrorMessage: "first"},
			{Type: schema.RuleRegex, Value: "^[a-z]+$", ErrorMessage: "second"},
		},
	}

	err := Validate(field, "ABC")
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if err.Message != "first" {
		t.Fatalf("expected first declared rule to win, got %q", err.Message)
	}
}

func TestValidate_NumericBounds(t *testing.T) {
	field := schema.FieldDefinition{
		Name: "zoom",
		Type: schema.FieldNumber,
		ValidationRules: []schema.ValidationRule{
			{Type: schema.RuleMin, Value: "1"},
			{Type: schema.RuleMax, Value: "20"},
		},
	}

	if err := Validate(field, float64(14)); err != nil {
		t.Fatalf("expected in-range number to pass, got %v", err)
	}
	if err := Validate(field, float64(0.5)); err == nil {
		t.Fatalf("expected below-minimum number to fail")
	}
	if err := Validate(field, "25"); err == nil {
		t.Fatalf("expected above-maximum string number to fail")
	}
}

func TestValidate_RuneLengthNotByteLength(t *testing.T) {
	field := schema.FieldDefinition{
		Name: "name",
		Type: schema.FieldText,
		ValidationRules: []schema.ValidationRule{
			{Type: schema.RuleMaxLength, Value: "4"},
		},
	}

	if err := Validate(field, "ग्राम"); err != nil {
		t.Fatalf("expected multibyte string within rune limit to pass, got %v", err)
	}
}

func TestValidateAll_SkipsHiddenFields(t *testing.T) {
	fields := []schema.FieldDefinition{
		{Name: "showCta", Type: schema.FieldBoolean},
		{
			Name:     "ctaLabel",
			Type:     schema.FieldText,
			Required: true,
			ConditionalLogic: []schema.ConditionalRule{
				{ControllingField: "showCta", Operator: schema.OperatorEquals, Value: "true", Action: schema.ActionShow},
			},
		},
	}

	cnt := Map{"showCta": false, "ctaLabel": ""}
	if errs := ValidateAll(fields, cnt); len(errs) != 0 {
		t.Fatalf("expected hidden required field to be skipped, got %v", errs)
	}

	cnt = Map{"showCta": true, "ctaLabel": ""}
	errs := ValidateAll(fields, cnt)
	if len(errs) != 1 || errs[0].Field != "ctaLabel" {
		t.Fatalf("expected visible required field to fail, got %v", errs)
	}
}

func TestValidateAll_QualifiesArrayItemPaths(t *testing.T) {
	fields := []schema.FieldDefinition{
		{
			Name: "items",
			Type: schema.FieldArray,
			NestedFields: []schema.FieldDefinition{
				{Name: "title", Type: schema.FieldText, Required: true},
			},
		},
	}

	cnt := Map{
		"items": []interface{}{
			map[string]interface{}{"title": "ok"},
			map[string]interface{}{"title": ""},
		},
	}

	errs := ValidateAll(fields, cnt)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[0].Field != "items.1.title" {
		t.Fatalf("expected index-qualified path, got %q", errs[0].Field)
	}
}

func TestValidateAll_RecursesIntoGroups(t *testing.T) {
	fields := []schema.FieldDefinition{
		{
			Name: "cta",
			Type: schema.FieldGroup,
			NestedFields: []schema.FieldDefinition{
				{Name: "url", Type: schema.FieldURL, Required: true},
			},
		},
	}

	errs := ValidateAll(fields, Map{"cta": map[string]interface{}{"url": ""}})
	if len(errs) != 1 || errs[0].Field != "cta.url" {
		t.Fatalf("expected group-qualified path, got %v", errs)
	}
}
