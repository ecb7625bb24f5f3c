package models

import (
	"egramseva-backend/internal/content"
)

// Section is the persisted unit of a composed page. Persistence belongs to
// the external content API; this process only shapes the content payload
// and renders whatever it receives.
type Section struct {
	ID          string      `json:"id"`
	SectionType string      `json:"section_type"`
	Title       string      `json:"title,omitempty"`
	Subtitle    string      `json:"subtitle,omitempty"`
	Content     interface{} `json:"content"`
	LayoutType  string      `json:"layout_type"`

	DisplayOrder int  `json:"display_order"`
	IsVisible    bool `json:"is_visible"`

	BackgroundColor string `json:"background_color,omitempty"`
	TextColor       string `json:"text_color,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`

	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// ContentMap returns the section content normalised to a map. Content
// stored as a JSON string decodes transparently; anything unparseable is
// treated as empty.
func (s Section) ContentMap() content.Map {
	return content.Coerce(s.Content)
}

// AddSectionRequest creates a new section through the content API.
// Layout tags are SCREAMING_SNAKE; titles carry no markup.
type AddSectionRequest struct {
	SectionType string      `json:"section_type" binding:"required"`
	Title       string      `json:"title" binding:"omitempty,no_html"`
	Subtitle    string      `json:"subtitle" binding:"omitempty,no_html"`
	LayoutType  string      `json:"layout_type" binding:"omitempty,layout_tag"`
	Content     interface{} `json:"content"`
}

// FieldUpdate is a single (path, value) edit message produced by the form
// builder. Updates flow through a pure reducer rather than widget-local
// state.
type FieldUpdate struct {
	Path  string      `json:"path" binding:"required,dotpath"`
	Value interface{} `json:"value"`
}

// ApplyUpdatesRequest carries a batch of edit messages plus the content
// they apply to.
type ApplyUpdatesRequest struct {
	SectionType string        `json:"section_type" binding:"required"`
	Content     interface{}   `json:"content"`
	Updates     []FieldUpdate `json:"updates" binding:"required,dive"`
}

// ReorderRequest rewrites section display order to match the id list.
type ReorderRequest struct {
	SectionIDs []string `json:"section_ids" binding:"required,min=1"`
}

// SaveSectionRequest validates and persists edited content for a section.
type SaveSectionRequest struct {
	SectionType string      `json:"section_type" binding:"required"`
	Title       string      `json:"title" binding:"omitempty,no_html"`
	Subtitle    string      `json:"subtitle" binding:"omitempty,no_html"`
	LayoutType  string      `json:"layout_type" binding:"omitempty,layout_tag"`
	Content     interface{} `json:"content"`
}

// VideoCheckRequest asks the editor to classify a video URL.
type VideoCheckRequest struct {
	URL string `json:"url" binding:"required"`
}
