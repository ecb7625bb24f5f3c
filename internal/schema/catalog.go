package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Source provides section schemas to the form builder and renderer. The
// static catalog implements it today; a remote fetch can replace it without
// touching either consumer.
type Source interface {
	// Get returns the schema for a section type, resolving legacy aliases.
	Get(sectionType string) (SectionSchema, bool)
	// List returns the active schemas available in the given tenant
	// context, ordered by category then name.
	List(tenant TenantContext) []SectionSchema
}

// Catalog is an in-memory schema source keyed by canonical section type.
type Catalog struct {
	mu      sync.RWMutex
	schemas map[string]SectionSchema
}

// NewCatalog creates an empty schema catalog.
func NewCatalog() *Catalog {
	return &Catalog{schemas: make(map[string]SectionSchema)}
}

// Register adds a schema to the catalog. The section type is canonicalised
// before storage so legacy tags can never shadow a canonical entry.
func (c *Catalog) Register(s SectionSchema) error {
	if c == nil {
		return fmt.Errorf("catalog is nil")
	}

	sectionType := Canonicalize(s.Type)
	if sectionType == "" {
		return fmt.Errorf("section type is empty")
	}
	s.Type = sectionType

	if len(s.SupportedLayouts) == 0 {
		return fmt.Errorf("schema %s: supported layouts are empty", sectionType)
	}
	if !s.SupportsLayout(s.DefaultLayout) {
		return fmt.Errorf("schema %s: default layout %s unsupported", sectionType, s.DefaultLayout)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.schemas == nil {
		c.schemas = make(map[string]SectionSchema)
	}
	c.schemas[sectionType] = s
	return nil
}

// MustRegister registers the schema and panics if registration fails.
func (c *Catalog) MustRegister(s SectionSchema) {
	if err := c.Register(s); err != nil {
		panic(err)
	}
}

// Get retrieves the schema for the provided section type if it exists.
func (c *Catalog) Get(sectionType string) (SectionSchema, bool) {
	if c == nil {
		return SectionSchema{}, false
	}

	sectionType = Canonicalize(sectionType)
	if sectionType == "" {
		return SectionSchema{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.schemas[sectionType]
	return s, ok
}

// List returns active schemas visible to the tenant, ordered by category
// then display name for stable section-picker output.
func (c *Catalog) List(tenant TenantContext) []SectionSchema {
	if c == nil {
		return nil
	}

	c.mu.RLock()
	result := make([]SectionSchema, 0, len(c.schemas))
	for _, s := range c.schemas {
		if s.IsActive && s.AvailableFor(tenant) {
			result = append(result, s)
		}
	}
	c.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// Types returns all registered canonical section types.
func (c *Catalog) Types() []string {
	if c == nil {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	types := make([]string, 0, len(c.schemas))
	for t := range c.schemas {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
