package render

import "egramseva-backend/internal/schema"

// DefaultRegistry returns a registry pre-populated with the built-in
// section renderers.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	RegisterDefaults(reg)
	return reg
}

// RegisterDefaults adds the built-in section renderers to the provided registry.
func RegisterDefaults(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(schema.TypeHeroBanner, renderHeroBanner)
	reg.MustRegister(schema.TypeRichText, renderRichText)
	reg.MustRegister(schema.TypeSplitContent, renderSplitContent)
	reg.MustRegister(schema.TypeVideo, renderVideo)
	reg.MustRegister(schema.TypeFAQ, renderFAQ)
	reg.MustRegister(schema.TypeContactForm, renderContactForm)
	reg.MustRegister(schema.TypeMap, renderMap)
	reg.MustRegister(schema.TypeContactInfo, renderContactInfo)
	reg.MustRegister(schema.TypeCTABanner, renderCTABanner)
	reg.MustRegister(schema.TypeSocialLinks, renderSocialLinks)
	reg.MustRegister(schema.TypeTimeline, renderTimeline)
	reg.MustRegister(schema.TypeTestimonials, renderTestimonials)
	reg.MustRegister(schema.TypeStats, renderStats)

	// Generic item-list sections share the layout dispatcher.
	reg.MustRegister(schema.TypeImageGallery, renderItemListSection)
	reg.MustRegister(schema.TypeServicesList, renderItemListSection)
}
