package service

import (
	"context"

	"egramseva-backend/internal/collab"
	"egramseva-backend/internal/middleware"
	"egramseva-backend/internal/models"
	"egramseva-backend/internal/render"
	"egramseva-backend/internal/schema"
	"egramseva-backend/pkg/logger"
	"egramseva-backend/pkg/validator"
)

// SanitizingContext backs section renderers with the shared bluemonday
// policy. It satisfies render.RenderContext.
type SanitizingContext struct{}

func (SanitizingContext) SanitizeHTML(input string) string {
	return validator.SanitizeHTML(input)
}

// RenderCache is the slice of pkg/cache the editor and render services
// depend on. *cache.Cache implements it; tests substitute an in-memory
// recorder.
type RenderCache interface {
	GetRenderedSection(sectionID string) (string, error)
	CacheRenderedSection(sectionID string, html string) error
	GetPageHTML(scope string) (string, error)
	CachePageHTML(scope string, html string) error
	InvalidateSection(sectionID string) error
	InvalidatePageHTML() error
	InvalidateRenderedSections() error
}

// RenderService turns persisted sections into public HTML, with a Redis
// cache in front of the renderer when one is configured.
type RenderService struct {
	engine *render.Engine
	api    collab.SectionAPI
	cache  RenderCache
}

func NewRenderService(api collab.SectionAPI, cacheClient RenderCache) *RenderService {
	return &RenderService{
		engine: render.NewEngine(SanitizingContext{}),
		api:    api,
		cache:  cacheClient,
	}
}

// Engine exposes the underlying renderer, mainly for previews that skip
// the cache.
func (s *RenderService) Engine() *render.Engine {
	return s.engine
}

// RenderSection renders one section, serving from cache when possible.
// Hidden and empty sections render to the empty string, which is cached
// like any other result.
func (s *RenderService) RenderSection(ctx context.Context, sectionID string) (string, error) {
	if s.cache != nil {
		if html, err := s.cache.GetRenderedSection(sectionID); err == nil {
			return html, nil
		}
	}

	section, err := s.api.GetSection(ctx, sectionID)
	if err != nil {
		return "", err
	}

	html := s.engine.Render(*section)
	middleware.CountSectionRender(schema.Canonicalize(section.SectionType))
	if s.cache != nil {
		if err := s.cache.CacheRenderedSection(sectionID, html); err != nil {
			logger.WithContext(ctx).
				WithField("section_id", sectionID).
				WithField("error", err.Error()).
				Warn("Failed to cache rendered section")
		}
	}
	return html, nil
}

// RenderPage renders a page's visible sections in display order.
func (s *RenderService) RenderPage(ctx context.Context, pageID string) (string, error) {
	if s.cache != nil {
		if html, err := s.cache.GetPageHTML(pageID); err == nil {
			return html, nil
		}
	}

	sections, err := s.api.GetSections(ctx, pageID)
	if err != nil {
		return "", err
	}

	html := s.engine.RenderAll(SortSections(sections))
	countRenders(sections)
	if s.cache != nil {
		if err := s.cache.CachePageHTML(pageID, html); err != nil {
			logger.WithContext(ctx).
				WithField("page_id", pageID).
				WithField("error", err.Error()).
				Warn("Failed to cache rendered page")
		}
	}
	return html, nil
}

// Preview renders sections the editor has not persisted yet. No cache is
// consulted or written.
func (s *RenderService) Preview(sections []models.Section) string {
	html := s.engine.RenderAll(SortSections(sections))
	countRenders(sections)
	return html
}

func countRenders(sections []models.Section) {
	for _, section := range sections {
		if !section.IsVisible {
			continue
		}
		middleware.CountSectionRender(schema.Canonicalize(section.SectionType))
	}
}
