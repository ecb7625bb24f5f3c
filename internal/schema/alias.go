package schema

import "strings"

// Canonical section type tags. Legacy tags from earlier releases map onto
// these through Canonicalize, which is the single source of truth consulted
// by both the editor and the public renderer.
const (
	TypeHeroBanner   = "HERO_BANNER"
	TypeRichText     = "RICH_TEXT"
	TypeImageGallery = "IMAGE_GALLERY"
	TypeSplitContent = "SPLIT_CONTENT"
	TypeVideo        = "VIDEO"
	TypeFAQ          = "FAQ"
	TypeContactForm  = "CONTACT_FORM"
	TypeMap          = "MAP"
	TypeContactInfo  = "CONTACT_INFO"
	TypeCTABanner    = "CTA_BANNER"
	TypeSocialLinks  = "SOCIAL_LINKS"
	TypeTimeline     = "TIMELINE"
	TypeTestimonials = "TESTIMONIALS"
	TypeStats        = "STATS"
	TypeServicesList = "SERVICES_LIST"
)

var legacyAliases = map[string]string{
	"HERO":            TypeHeroBanner,
	"BANNER":          TypeHeroBanner,
	"TEXT":            TypeRichText,
	"PARAGRAPH":       TypeRichText,
	"GALLERY":         TypeImageGallery,
	"IMAGES":          TypeImageGallery,
	"IMAGE_WITH_TEXT": TypeSplitContent,
	"FAQS":            TypeFAQ,
	"FORM":            TypeContactForm,
	"CONTACT":         TypeContactInfo,
	"CTA":             TypeCTABanner,
	"SOCIAL":          TypeSocialLinks,
	"STAT":            TypeStats,
	"STATISTICS":      TypeStats,
	"SERVICES":        TypeServicesList,
}

// Canonicalize maps a legacy section type tag to its current canonical tag.
// The function is total: tags without an alias pass through unchanged, so
// unknown types still reach the renderer's graceful fallback.
func Canonicalize(tag string) string {
	normalised := strings.ToUpper(strings.TrimSpace(tag))
	if canonical, ok := legacyAliases[normalised]; ok {
		return canonical
	}
	return normalised
}
