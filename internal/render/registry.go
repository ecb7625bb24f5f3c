package render

import (
	"fmt"
	"strings"
	"sync"

	"egramseva-backend/internal/models"
	"egramseva-backend/internal/schema"
)

// RenderContext exposes the minimal capabilities required by section renderers.
type RenderContext interface {
	// SanitizeHTML should clean potentially unsafe markup before rendering.
	SanitizeHTML(input string) string
}

// Renderer renders one section into HTML output.
type Renderer func(ctx RenderContext, prefix string, section models.Section) string

// Registry stores the mapping between canonical section types and their
// renderers. Adding a section type is a table entry, not a new branch.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates an empty section renderer registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register associates a renderer with a canonicalised section type.
func (r *Registry) Register(sectionType string, renderer Renderer) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}

	sectionType = schema.Canonicalize(sectionType)
	if sectionType == "" {
		return fmt.Errorf("section type is empty")
	}
	if renderer == nil {
		return fmt.Errorf("renderer is nil for type %s", sectionType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.renderers == nil {
		r.renderers = make(map[string]Renderer)
	}
	r.renderers[sectionType] = renderer
	return nil
}

// MustRegister registers the renderer and panics if registration fails.
func (r *Registry) MustRegister(sectionType string, renderer Renderer) {
	if err := r.Register(sectionType, renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer for the provided section type if it exists.
// Legacy tags resolve through the same alias table as registration, so an
// old tag and its canonical form always reach the same renderer.
func (r *Registry) Get(sectionType string) (Renderer, bool) {
	if r == nil {
		return nil, false
	}

	sectionType = schema.Canonicalize(sectionType)
	if sectionType == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[sectionType]
	return renderer, ok
}

// Types returns the registered canonical section types.
func (r *Registry) Types() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.renderers))
	for t := range r.renderers {
		types = append(types, t)
	}
	return types
}

// Clone creates a copy of the registry with the same renderer mappings.
func (r *Registry) Clone() *Registry {
	if r == nil {
		return NewRegistry()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for key, renderer := range r.renderers {
		cloned.renderers[key] = renderer
	}
	return cloned
}

// normaliseLayout maps a stored layout tag onto a known layout type,
// defaulting to CONTAINED for anything unrecognised.
func normaliseLayout(tag string) schema.LayoutType {
	switch schema.LayoutType(strings.ToUpper(strings.TrimSpace(tag))) {
	case schema.LayoutGrid:
		return schema.LayoutGrid
	case schema.LayoutRow:
		return schema.LayoutRow
	case schema.LayoutScrollingRow:
		return schema.LayoutScrollingRow
	case schema.LayoutCarousel:
		return schema.LayoutCarousel
	case schema.LayoutMasonry:
		return schema.LayoutMasonry
	case schema.LayoutList:
		return schema.LayoutList
	case schema.LayoutSplit:
		return schema.LayoutSplit
	case schema.LayoutFullWidth:
		return schema.LayoutFullWidth
	case schema.LayoutContained:
		return schema.LayoutContained
	default:
		return schema.LayoutContained
	}
}
