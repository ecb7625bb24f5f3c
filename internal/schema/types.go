package schema

// FieldType identifies the editing widget and value shape of a field.
type FieldType string

const (
	FieldText     FieldType = "TEXT"
	FieldRichText FieldType = "RICHTEXT"
	FieldNumber   FieldType = "NUMBER"
	FieldBoolean  FieldType = "BOOLEAN"
	FieldURL      FieldType = "URL"
	FieldImage    FieldType = "IMAGE"
	FieldDate     FieldType = "DATE"
	FieldSelect   FieldType = "SELECT"
	FieldArray    FieldType = "ARRAY"
	FieldGroup    FieldType = "GROUP"
)

// RuleType identifies a validation rule kind.
type RuleType string

const (
	RuleMinLength RuleType = "MIN_LENGTH"
	RuleMaxLength RuleType = "MAX_LENGTH"
	RuleMin       RuleType = "MIN"
	RuleMax       RuleType = "MAX"
	RuleRegex     RuleType = "REGEX"
)

// ValidationRule is a single constraint on a field value. Rules are
// evaluated in declaration order and the first failure wins.
type ValidationRule struct {
	Type         RuleType `json:"rule_type"`
	Value        string   `json:"rule_value"`
	ErrorMessage string   `json:"error_message"`
}

// SelectOption is one choice of a SELECT field.
type SelectOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ConditionOperator string

const (
	OperatorEquals    ConditionOperator = "EQUALS"
	OperatorNotEquals ConditionOperator = "NOT_EQUALS"
)

type ConditionAction string

const (
	ActionShow ConditionAction = "SHOW"
	ActionHide ConditionAction = "HIDE"
)

// ConditionalRule makes a field's visibility depend on another field's
// value. Rules are evaluated top to bottom; the first rule whose condition
// matches decides visibility. No match means visible.
type ConditionalRule struct {
	ControllingField string            `json:"controlling_field"`
	Operator         ConditionOperator `json:"operator"`
	Value            string            `json:"value"`
	Action           ConditionAction   `json:"action"`
}

// FieldDefinition describes one editable property of a section.
type FieldDefinition struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"` // dot-path key into section content
	Type         FieldType `json:"type"`
	Label        string    `json:"label"`
	Placeholder  string    `json:"placeholder,omitempty"`
	Required     bool      `json:"required"`
	DefaultValue string    `json:"default_value,omitempty"`
	DisplayOrder int       `json:"display_order"`

	ValidationRules  []ValidationRule  `json:"validation_rules,omitempty"`
	Options          []SelectOption    `json:"options,omitempty"`
	IsRepeatable     bool              `json:"is_repeatable,omitempty"`
	NestedFields     []FieldDefinition `json:"nested_fields,omitempty"`
	ConditionalLogic []ConditionalRule `json:"conditional_logic,omitempty"`
}

// LayoutType is the structural arrangement used for item-list content.
type LayoutType string

const (
	LayoutGrid         LayoutType = "GRID"
	LayoutRow          LayoutType = "ROW"
	LayoutScrollingRow LayoutType = "SCROLLING_ROW"
	LayoutCarousel     LayoutType = "CAROUSEL"
	LayoutMasonry      LayoutType = "MASONRY"
	LayoutList         LayoutType = "LIST"
	LayoutSplit        LayoutType = "SPLIT"
	LayoutFullWidth    LayoutType = "FULL_WIDTH"
	LayoutContained    LayoutType = "CONTAINED"
)

// SectionSchema bundles the field definitions and layout capabilities of
// one section type.
type SectionSchema struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     int    `json:"version"`
	Category    string `json:"category"`
	Icon        string `json:"icon,omitempty"`

	Fields           []FieldDefinition `json:"fields"`
	SupportedLayouts []LayoutType      `json:"supported_layouts"`
	DefaultLayout    LayoutType        `json:"default_layout"`

	IsActive bool `json:"is_active"`
	IsSystem bool `json:"is_system"`

	AvailableForPlatform  bool `json:"available_for_platform"`
	AvailableForPanchayat bool `json:"available_for_panchayat"`
}

// SupportsLayout reports whether the schema allows the given layout.
func (s SectionSchema) SupportsLayout(layout LayoutType) bool {
	for _, l := range s.SupportedLayouts {
		if l == layout {
			return true
		}
	}
	return false
}

// TenantContext distinguishes the two editing surfaces gated by schema
// availability flags.
type TenantContext string

const (
	TenantPlatform  TenantContext = "platform"
	TenantPanchayat TenantContext = "panchayat"
)

// AvailableFor reports whether the schema may be used in the given tenant context.
func (s SectionSchema) AvailableFor(tenant TenantContext) bool {
	switch tenant {
	case TenantPlatform:
		return s.AvailableForPlatform
	case TenantPanchayat:
		return s.AvailableForPanchayat
	default:
		return false
	}
}
