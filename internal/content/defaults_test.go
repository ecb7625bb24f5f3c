package content

import (
	"testing"

	"egramseva-backend/internal/schema"
)

func TestFieldDefault_CoercesDeclaredDefaults(t *testing.T) {
	tests := []struct {
		name  string
		field schema.FieldDefinition
		want  interface{}
	}{
		{"number", schema.FieldDefinition{Type: schema.FieldNumber, DefaultValue: "14"}, float64(14)},
		{"bad number", schema.FieldDefinition{Type: schema.FieldNumber, DefaultValue: "abc"}, float64(0)},
		{"bool true", schema.FieldDefinition{Type: schema.FieldBoolean, DefaultValue: "true"}, true},
		{"bool one", schema.FieldDefinition{Type: schema.FieldBoolean, DefaultValue: "1"}, true},
		{"bool other", schema.FieldDefinition{Type: schema.FieldBoolean, DefaultValue: "no"}, false},
		{"text", schema.FieldDefinition{Type: schema.FieldText, DefaultValue: "hello"}, "hello"},
	}

	for _, tt := range tests {
		if got := FieldDefault(tt.field); got != tt.want {
			t.Fatalf("%s: expected %v (%T), got %v (%T)", tt.name, tt.want, tt.want, got, got)
		}
	}
}

func TestFieldDefault_ZeroValuesByType(t *testing.T) {
	if got := FieldDefault(schema.FieldDefinition{Type: schema.FieldNumber}); got != float64(0) {
		t.Fatalf("expected zero number, got %v", got)
	}
	if got := FieldDefault(schema.FieldDefinition{Type: schema.FieldBoolean}); got != false {
		t.Fatalf("expected false, got %v", got)
	}
	if got := FieldDefault(schema.FieldDefinition{Type: schema.FieldText}); got != "" {
		t.Fatalf("expected empty string, got %v", got)
	}
	if got, ok := FieldDefault(schema.FieldDefinition{Type: schema.FieldArray}).([]interface{}); !ok || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
	if got, ok := FieldDefault(schema.FieldDefinition{Type: schema.FieldGroup}).(map[string]interface{}); !ok || len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestNewArrayItem_SeedsDefaultsAndUniqueID(t *testing.T) {
	field := schema.FieldDefinition{
		Name: "items",
		Type: schema.FieldArray,
		NestedFields: []schema.FieldDefinition{
			{Name: "title", Type: schema.FieldText, DefaultValue: "Untitled"},
			{Name: "order", Type: schema.FieldNumber},
		},
	}

	first := NewArrayItem(field)
	second := NewArrayItem(field)

	if first["title"] != "Untitled" {
		t.Fatalf("expected nested default, got %v", first["title"])
	}
	if first["order"] != float64(0) {
		t.Fatalf("expected zero number default, got %v", first["order"])
	}

	firstID, _ := first[ItemIDKey].(string)
	secondID, _ := second[ItemIDKey].(string)
	if firstID == "" || secondID == "" {
		t.Fatalf("expected synthetic ids to be set")
	}
	if firstID == secondID {
		t.Fatalf("expected distinct ids per item")
	}
}
