package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"egramseva-backend/internal/collab"
	"egramseva-backend/internal/content"
	"egramseva-backend/internal/forms"
	"egramseva-backend/internal/models"
	"egramseva-backend/internal/render"
	"egramseva-backend/internal/schema"
	"egramseva-backend/pkg/logger"
	"egramseva-backend/pkg/validator"
)

var (
	ErrUnknownSectionType = errors.New("unknown section type")
	ErrUploaderDisabled   = errors.New("image uploads are not configured")
)

// ValidationFailure carries per-field errors keyed by dot path. It is a
// business outcome, not an infrastructure error.
type ValidationFailure struct {
	Errors []content.FieldError
}

func (v *ValidationFailure) Error() string {
	return fmt.Sprintf("content failed validation on %d field(s)", len(v.Errors))
}

// FieldErrorMap reshapes the failures into a path keyed map for form
// rendering and JSON responses.
func (v *ValidationFailure) FieldErrorMap() map[string]string {
	out := make(map[string]string, len(v.Errors))
	for _, fe := range v.Errors {
		if _, exists := out[fe.Field]; !exists {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// EditorService implements the section editing workflow: schema lookup,
// default seeding, update reduction, validation and persistence through
// the content API.
type EditorService struct {
	schemas  schema.Source
	api      collab.SectionAPI
	uploader collab.Uploader
	cache    RenderCache
	builder  *forms.Builder
}

func NewEditorService(schemas schema.Source, api collab.SectionAPI, uploader collab.Uploader, cacheClient RenderCache) *EditorService {
	return &EditorService{
		schemas:  schemas,
		api:      api,
		uploader: uploader,
		cache:    cacheClient,
		builder:  forms.NewBuilder(),
	}
}

// ListSchemas returns the section schemas available to a tenant, ordered
// by category then name.
func (s *EditorService) ListSchemas(tenant schema.TenantContext) []schema.SectionSchema {
	return s.schemas.List(tenant)
}

// GetSchema resolves a section type, legacy aliases included.
func (s *EditorService) GetSchema(sectionType string) (schema.SectionSchema, error) {
	sch, ok := s.schemas.Get(sectionType)
	if !ok {
		return schema.SectionSchema{}, ErrUnknownSectionType
	}
	return sch, nil
}

// CreateSection seeds a new section with schema defaults and persists it.
// Caller-provided content wins over defaults key by key.
func (s *EditorService) CreateSection(ctx context.Context, pageID string, req models.AddSectionRequest) (*models.Section, error) {
	sch, err := s.GetSchema(req.SectionType)
	if err != nil {
		return nil, err
	}

	cnt := content.Defaults(sch.Fields)
	for key, value := range content.Coerce(req.Content) {
		cnt = content.Set(cnt, key, value)
	}

	layout := strings.TrimSpace(req.LayoutType)
	if layout == "" || !sch.SupportsLayout(schema.LayoutType(strings.ToUpper(layout))) {
		layout = string(sch.DefaultLayout)
	}

	section := models.Section{
		SectionType: sch.Type,
		Title:       validator.SanitizeString(req.Title),
		Subtitle:    validator.SanitizeString(req.Subtitle),
		LayoutType:  layout,
		Content:     content.StripEphemeralURLs(cnt),
		IsVisible:   true,
	}

	created, err := s.api.CreateSection(ctx, pageID, section)
	if err != nil {
		return nil, err
	}

	s.invalidateRendered(ctx, created.ID)
	logger.WithContext(ctx).
		WithField("section_id", created.ID).
		WithField("section_type", created.SectionType).
		WithField("page_id", pageID).
		Info("Section created")
	return created, nil
}

// ApplyUpdates runs a batch of edit messages through the reducer and
// returns the resulting content. Nothing is persisted.
func (s *EditorService) ApplyUpdates(req models.ApplyUpdatesRequest) (content.Map, error) {
	if _, err := s.GetSchema(req.SectionType); err != nil {
		return nil, err
	}
	return forms.Reduce(content.Coerce(req.Content), req.Updates), nil
}

// AddArrayItem appends a default-seeded item to the array at path and
// returns the updated content.
func (s *EditorService) AddArrayItem(sectionType string, cnt interface{}, path string) (content.Map, error) {
	field, err := s.arrayFieldAt(sectionType, path)
	if err != nil {
		return nil, err
	}
	return forms.AddItem(content.Coerce(cnt), path, field), nil
}

// RemoveArrayItem removes the item at the given index, closing the gap.
func (s *EditorService) RemoveArrayItem(sectionType string, cnt interface{}, path string, index int) (content.Map, error) {
	if _, err := s.arrayFieldAt(sectionType, path); err != nil {
		return nil, err
	}
	return forms.RemoveItem(content.Coerce(cnt), path, index), nil
}

// RenderForm produces the editing form HTML for a section's current
// content, with inline errors when a previous save failed validation.
func (s *EditorService) RenderForm(sectionType string, cnt interface{}, fieldErrors map[string]string) (string, error) {
	sch, err := s.GetSchema(sectionType)
	if err != nil {
		return "", err
	}
	return s.builder.Render(sch.Fields, content.Coerce(cnt), fieldErrors), nil
}

// SaveSection validates edited content against its schema and persists
// it. Ephemeral preview URLs are stripped before validation so a
// required image backed only by a local preview fails its rule.
func (s *EditorService) SaveSection(ctx context.Context, sectionID string, req models.SaveSectionRequest) (*models.Section, error) {
	sch, err := s.GetSchema(req.SectionType)
	if err != nil {
		return nil, err
	}

	cnt := content.StripEphemeralURLs(content.Coerce(req.Content))

	if fieldErrors := content.ValidateAll(sch.Fields, cnt); len(fieldErrors) > 0 {
		return nil, &ValidationFailure{Errors: fieldErrors}
	}

	current, err := s.api.GetSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	layout := strings.TrimSpace(req.LayoutType)
	if layout == "" || !sch.SupportsLayout(schema.LayoutType(strings.ToUpper(layout))) {
		layout = current.LayoutType
	}
	if layout == "" {
		layout = string(sch.DefaultLayout)
	}

	updated := *current
	updated.SectionType = sch.Type
	updated.Title = validator.SanitizeString(req.Title)
	updated.Subtitle = validator.SanitizeString(req.Subtitle)
	updated.LayoutType = layout
	updated.Content = cnt

	saved, err := s.api.UpdateSection(ctx, sectionID, updated)
	if err != nil {
		return nil, err
	}

	s.invalidateRendered(ctx, sectionID)
	logger.WithContext(ctx).
		WithField("section_id", sectionID).
		WithField("section_type", saved.SectionType).
		Info("Section saved")
	return saved, nil
}

// DuplicateSection copies a persisted section onto the same page, placed
// right after the original.
func (s *EditorService) DuplicateSection(ctx context.Context, pageID, sectionID string) (*models.Section, error) {
	original, err := s.api.GetSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	duplicate := *original
	duplicate.ID = ""
	duplicate.DisplayOrder = original.DisplayOrder + 1
	duplicate.Content = content.RegenerateItemIDs(original.ContentMap())
	if strings.TrimSpace(duplicate.Title) != "" {
		duplicate.Title = duplicate.Title + " (Copy)"
	}

	created, err := s.api.CreateSection(ctx, pageID, duplicate)
	if err != nil {
		return nil, err
	}
	s.invalidateRendered(ctx, created.ID)
	return created, nil
}

// ReorderSections persists a new section order from an id list.
func (s *EditorService) ReorderSections(ctx context.Context, pageID string, sectionIDs []string) error {
	if err := s.api.UpdateOrder(ctx, pageID, sectionIDs); err != nil {
		return err
	}
	s.invalidateRendered(ctx, "")
	return nil
}

// ToggleVisibility flips a section's visibility flag.
func (s *EditorService) ToggleVisibility(ctx context.Context, sectionID string, visible bool) error {
	if err := s.api.ToggleVisibility(ctx, sectionID, visible); err != nil {
		return err
	}
	s.invalidateRendered(ctx, sectionID)
	return nil
}

// DeleteSection removes a section permanently.
func (s *EditorService) DeleteSection(ctx context.Context, sectionID string) error {
	if err := s.api.DeleteSection(ctx, sectionID); err != nil {
		return err
	}
	s.invalidateRendered(ctx, sectionID)
	return nil
}

// UploadImage proxies an asset to the media API and returns its URL.
func (s *EditorService) UploadImage(ctx context.Context, filename, contentType string, data io.Reader) (string, error) {
	if s.uploader == nil {
		return "", ErrUploaderDisabled
	}
	if !validator.ValidateImageExtension(filename) {
		return "", fmt.Errorf("unsupported image extension: %s", filename)
	}
	if contentType != "" && !validator.ValidateImageContentType(contentType) {
		return "", fmt.Errorf("unsupported image content type: %s", contentType)
	}
	return s.uploader.Upload(ctx, filename, contentType, data)
}

// CheckVideoURL classifies a video URL for the editor preview.
func (s *EditorService) CheckVideoURL(raw string) render.VideoClassification {
	return render.ClassifyVideoURL(raw)
}

// arrayFieldAt resolves the ARRAY field definition addressed by a dot
// path, descending through GROUP and ARRAY levels.
func (s *EditorService) arrayFieldAt(sectionType, path string) (schema.FieldDefinition, error) {
	sch, err := s.GetSchema(sectionType)
	if err != nil {
		return schema.FieldDefinition{}, err
	}

	fields := sch.Fields
	segments := strings.Split(path, ".")
	var found *schema.FieldDefinition
	for _, segment := range segments {
		if isIndexSegment(segment) {
			continue
		}
		found = nil
		for i := range fields {
			if fields[i].Name == segment {
				found = &fields[i]
				break
			}
		}
		if found == nil {
			return schema.FieldDefinition{}, fmt.Errorf("no field at path %s", path)
		}
		fields = found.NestedFields
	}
	if found == nil || found.Type != schema.FieldArray {
		return schema.FieldDefinition{}, fmt.Errorf("path %s is not an array field", path)
	}
	return *found, nil
}

func isIndexSegment(segment string) bool {
	if segment == "" {
		return false
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// invalidateRendered drops the cached HTML a section mutation makes stale.
// Page bodies embed section HTML, so every mutation clears the page cache
// as well; an empty sectionID clears everything.
func (s *EditorService) invalidateRendered(ctx context.Context, sectionID string) {
	if s.cache == nil {
		return
	}
	if sectionID == "" {
		if err := s.cache.InvalidateRenderedSections(); err != nil {
			logger.WithContext(ctx).
				WithField("error", err.Error()).
				Warn("Failed to invalidate rendered cache")
		}
		return
	}
	if err := s.cache.InvalidateSection(sectionID); err != nil {
		logger.WithContext(ctx).
			WithField("section_id", sectionID).
			WithField("error", err.Error()).
			Warn("Failed to invalidate section cache")
	}
	if err := s.cache.InvalidatePageHTML(); err != nil {
		logger.WithContext(ctx).
			WithField("section_id", sectionID).
			WithField("error", err.Error()).
			Warn("Failed to invalidate page cache")
	}
}

// SortSections orders sections by display order, stable for ties. Used
// when the upstream store does not guarantee ordering.
func SortSections(sections []models.Section) []models.Section {
	out := make([]models.Section, len(sections))
	copy(out, sections)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}
