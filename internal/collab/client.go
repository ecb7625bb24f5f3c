package collab

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"egramseva-backend/internal/models"
)

// SectionAPI is the contract for the upstream content store that owns
// persisted sections. Ordering within a page follows DisplayOrder.
type SectionAPI interface {
	GetSections(ctx context.Context, pageID string) ([]models.Section, error)
	GetSection(ctx context.Context, sectionID string) (*models.Section, error)
	CreateSection(ctx context.Context, pageID string, section models.Section) (*models.Section, error)
	UpdateSection(ctx context.Context, sectionID string, section models.Section) (*models.Section, error)
	DeleteSection(ctx context.Context, sectionID string) error
	UpdateOrder(ctx context.Context, pageID string, sectionIDs []string) error
	ToggleVisibility(ctx context.Context, sectionID string, visible bool) error
}

// ErrNotFound marks a section or page the upstream store does not know.
var ErrNotFound = errors.New("collab: resource not found")

// ClientOptions tunes the HTTP section client.
type ClientOptions struct {
	HTTPClient *http.Client
	AuthToken  string
}

// Client talks to the content API over HTTP and implements SectionAPI.
type Client struct {
	baseURL   string
	authToken string
	client    *http.Client
}

// NewClient constructs an HTTP section client against the given base URL.
func NewClient(baseURL string, opts ClientOptions) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("collab: content api base url is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL:   trimmed,
		authToken: strings.TrimSpace(opts.AuthToken),
		client:    httpClient,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("collab: failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("collab: failed to build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		request.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	response, err := c.client.Do(request)
	if err != nil {
		return fmt.Errorf("collab: request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if response.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(io.LimitReader(response.Body, 4096))
		message := strings.TrimSpace(string(data))
		if message == "" {
			message = response.Status
		}
		return fmt.Errorf("collab: request returned status %s: %s", response.Status, message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("collab: failed to decode response: %w", err)
	}
	return nil
}

// GetSections returns the sections of a page ordered by DisplayOrder.
func (c *Client) GetSections(ctx context.Context, pageID string) ([]models.Section, error) {
	var sections []models.Section
	if err := c.do(ctx, http.MethodGet, "/pages/"+pageID+"/sections", nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// GetSection fetches a single section by id.
func (c *Client) GetSection(ctx context.Context, sectionID string) (*models.Section, error) {
	var section models.Section
	if err := c.do(ctx, http.MethodGet, "/sections/"+sectionID, nil, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

// CreateSection persists a new section on the given page.
func (c *Client) CreateSection(ctx context.Context, pageID string, section models.Section) (*models.Section, error) {
	var created models.Section
	if err := c.do(ctx, http.MethodPost, "/pages/"+pageID+"/sections", section, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSection replaces a persisted section's payload.
func (c *Client) UpdateSection(ctx context.Context, sectionID string, section models.Section) (*models.Section, error) {
	var updated models.Section
	if err := c.do(ctx, http.MethodPut, "/sections/"+sectionID, section, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSection removes a section.
func (c *Client) DeleteSection(ctx context.Context, sectionID string) error {
	return c.do(ctx, http.MethodDelete, "/sections/"+sectionID, nil, nil)
}

// UpdateOrder persists a full reordering of a page's sections.
func (c *Client) UpdateOrder(ctx context.Context, pageID string, sectionIDs []string) error {
	payload := map[string]interface{}{"section_ids": sectionIDs}
	return c.do(ctx, http.MethodPut, "/pages/"+pageID+"/sections/order", payload, nil)
}

// ToggleVisibility flips a section's visibility without touching content.
func (c *Client) ToggleVisibility(ctx context.Context, sectionID string, visible bool) error {
	payload := map[string]interface{}{"is_visible": visible}
	return c.do(ctx, http.MethodPatch, "/sections/"+sectionID+"/visibility", payload, nil)
}
