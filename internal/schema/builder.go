package schema

import "fmt"

// SchemaBuilder provides a fluent interface for assembling section schemas.
type SchemaBuilder struct {
	schema SectionSchema
	errors []error
}

// NewSchemaBuilder creates a builder for the given canonical section type.
func NewSchemaBuilder(sectionType string) *SchemaBuilder {
	return &SchemaBuilder{
		schema: SectionSchema{
			Type:                  Canonicalize(sectionType),
			Version:               1,
			IsActive:              true,
			AvailableForPlatform:  true,
			AvailableForPanchayat: true,
		},
	}
}

// WithName sets the display name of the section type.
func (b *SchemaBuilder) WithName(name string) *SchemaBuilder {
	b.schema.Name = name
	return b
}

// WithDescription sets the description shown in the section picker.
func (b *SchemaBuilder) WithDescription(desc string) *SchemaBuilder {
	b.schema.Description = desc
	return b
}

// WithCategory sets the category for grouping section types in the UI.
func (b *SchemaBuilder) WithCategory(category string) *SchemaBuilder {
	b.schema.Category = category
	return b
}

// WithIcon sets the icon identifier for the section type.
func (b *SchemaBuilder) WithIcon(icon string) *SchemaBuilder {
	b.schema.Icon = icon
	return b
}

// WithLayouts sets the default layout and the full supported list. The
// default is prepended when not already present.
func (b *SchemaBuilder) WithLayouts(def LayoutType, supported ...LayoutType) *SchemaBuilder {
	layouts := make([]LayoutType, 0, len(supported)+1)
	layouts = append(layouts, def)
	for _, l := range supported {
		if l != def {
			layouts = append(layouts, l)
		}
	}
	b.schema.DefaultLayout = def
	b.schema.SupportedLayouts = layouts
	return b
}

// WithVersion overrides the schema version (defaults to 1).
func (b *SchemaBuilder) WithVersion(version int) *SchemaBuilder {
	if version < 1 {
		b.errors = append(b.errors, fmt.Errorf("version must be >= 1"))
	}
	b.schema.Version = version
	return b
}

// System marks the schema as system-owned (not deletable by tenants).
func (b *SchemaBuilder) System() *SchemaBuilder {
	b.schema.IsSystem = true
	return b
}

// PlatformOnly restricts the schema to the super-admin context.
func (b *SchemaBuilder) PlatformOnly() *SchemaBuilder {
	b.schema.AvailableForPlatform = true
	b.schema.AvailableForPanchayat = false
	return b
}

// PanchayatOnly restricts the schema to the village administrator context.
func (b *SchemaBuilder) PanchayatOnly() *SchemaBuilder {
	b.schema.AvailableForPlatform = false
	b.schema.AvailableForPanchayat = true
	return b
}

// AddField appends a fully specified field definition.
func (b *SchemaBuilder) AddField(field FieldDefinition) *SchemaBuilder {
	if field.Name == "" {
		b.errors = append(b.errors, fmt.Errorf("field name is required"))
		return b
	}
	if field.Type == "" {
		b.errors = append(b.errors, fmt.Errorf("field %s: type is required", field.Name))
		return b
	}
	if field.DisplayOrder == 0 {
		field.DisplayOrder = (len(b.schema.Fields) + 1) * 10
	}
	if field.ID == "" {
		field.ID = b.schema.Type + ":" + field.Name
	}
	b.schema.Fields = append(b.schema.Fields, field)
	return b
}

// AddTextField is a convenience method for adding a TEXT field.
func (b *SchemaBuilder) AddTextField(name, label string, required bool, rules ...ValidationRule) *SchemaBuilder {
	return b.AddField(FieldDefinition{
		Name:            name,
		Type:            FieldText,
		Label:           label,
		Required:        required,
		ValidationRules: rules,
	})
}

// AddRichTextField is a convenience method for adding a RICHTEXT field.
func (b *SchemaBuilder) AddRichTextField(name, label string, required bool) *SchemaBuilder {
	return b.AddField(FieldDefinition{
		Name:     name,
		Type:     FieldRichText,
		Label:    label,
		Required: required,
	})
}

// AddNumberField is a convenience method for adding a NUMBER field.
func (b *SchemaBuilder) AddNumberField(name, label string, required bool, rules ...ValidationRule) *SchemaBuilder {
	return b.AddField(FieldDefinition{
		Name:            name,
		Type:            FieldNumber,
		Label:           label,
		Required:        required,
		ValidationRules: rules,
	})
}

// AddBooleanField is a convenience method for adding a BOOLEAN field.
func (b *SchemaBuilder) AddBooleanField(name, label string, defaultValue string) *SchemaBuilder {
	return b.AddField(FieldDefinition{
		Name:         name,
		Type:         FieldBoolean,
		Label:        label,
		DefaultValue: defaultValue,
	})
}

// AddURLField is a convenience method for adding a URL field.
func (b *SchemaBuilder) AddURLField(name, label string, required bool) *SchemaBuilder {
	return b.AddField(FieldDefinition{
		Name:     name,
		Type:     FieldURL,
		Label:    label,
		Required: required,
	})
}

// AddImageField is a convenience method for adding an IMAGE field.
func (b *SchemaBuilder) AddImageField(name, label string, required bool) *SchemaBuilder {
	return b.AddField(FieldDefinition{
		Name:     name,
		Type:     FieldImage,
		Label:    label,
		Required: required,
	})
}

// AddSelectField is a convenience method for adding a SELECT field.
func (b *SchemaBuilder) AddSelectField(name, label string, options []SelectOption, defaultValue string) *SchemaBuilder {
	if len(options) == 0 {
		b.errors = append(b.errors, fmt.Errorf("field %s: select requires options", name))
	}
	return b.AddField(FieldDefinition{
		Name:         name,
		Type:         FieldSelect,
		Label:        label,
		Options:      options,
		DefaultValue: defaultValue,
	})
}

// AddArrayField is a convenience method for adding a repeatable ARRAY field.
func (b *SchemaBuilder) AddArrayField(name, label string, itemFields ...FieldDefinition) *SchemaBuilder {
	return b.AddField(FieldDefinition{
		Name:         name,
		Type:         FieldArray,
		Label:        label,
		IsRepeatable: true,
		NestedFields: itemFields,
	})
}

// AddGroupField is a convenience method for adding a fixed GROUP field.
func (b *SchemaBuilder) AddGroupField(name, label string, subFields ...FieldDefinition) *SchemaBuilder {
	return b.AddField(FieldDefinition{
		Name:         name,
		Type:         FieldGroup,
		Label:        label,
		NestedFields: subFields,
	})
}

// Build validates and returns the assembled schema.
func (b *SchemaBuilder) Build() (SectionSchema, error) {
	if len(b.errors) > 0 {
		return SectionSchema{}, fmt.Errorf("schema %s has %d error(s): %v", b.schema.Type, len(b.errors), b.errors[0])
	}
	if b.schema.Type == "" {
		return SectionSchema{}, fmt.Errorf("section type is required")
	}
	if b.schema.Name == "" {
		return SectionSchema{}, fmt.Errorf("schema %s: name is required", b.schema.Type)
	}
	if len(b.schema.SupportedLayouts) == 0 {
		return SectionSchema{}, fmt.Errorf("schema %s: at least one layout is required", b.schema.Type)
	}
	if !b.schema.SupportsLayout(b.schema.DefaultLayout) {
		return SectionSchema{}, fmt.Errorf("schema %s: default layout %s is not in supported layouts", b.schema.Type, b.schema.DefaultLayout)
	}
	if err := checkDuplicateNames(b.schema.Fields); err != nil {
		return SectionSchema{}, fmt.Errorf("schema %s: %w", b.schema.Type, err)
	}
	return b.schema, nil
}

// MustBuild builds the schema and panics on configuration errors. Catalog
// defaults use this since they are fixed at compile time.
func (b *SchemaBuilder) MustBuild() SectionSchema {
	s, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build section schema: %v", err))
	}
	return s
}

func checkDuplicateNames(fields []FieldDefinition) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("duplicate field name %q", f.Name)
		}
		seen[f.Name] = struct{}{}
		if len(f.NestedFields) > 0 {
			if err := checkDuplicateNames(f.NestedFields); err != nil {
				return err
			}
		}
	}
	return nil
}
