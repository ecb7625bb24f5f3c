package collab

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Uploader stores a binary asset and returns its permanent URL.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, data io.Reader) (string, error)
}

// UploaderOptions tunes the HTTP uploader.
type UploaderOptions struct {
	HTTPClient *http.Client
	AuthToken  string
}

// HTTPUploader proxies uploads to the media API and implements Uploader.
type HTTPUploader struct {
	endpoint  string
	authToken string
	client    *http.Client
}

// NewHTTPUploader constructs an uploader against the given upload endpoint.
func NewHTTPUploader(endpoint string, opts UploaderOptions) (*HTTPUploader, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, errors.New("collab: upload endpoint is required")
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 2 * time.Minute}
	}

	return &HTTPUploader{
		endpoint:  trimmed,
		authToken: strings.TrimSpace(opts.AuthToken),
		client:    client,
	}, nil
}

// Upload streams the asset as multipart form data and returns the URL the
// media API assigned to it.
func (u *HTTPUploader) Upload(ctx context.Context, filename, contentType string, data io.Reader) (string, error) {
	if u == nil || u.client == nil {
		return "", errors.New("collab: uploader is not configured")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		writer.Close()
		return "", fmt.Errorf("collab: failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, data); err != nil {
		writer.Close()
		return "", fmt.Errorf("collab: failed to stream upload: %w", err)
	}
	if contentType != "" {
		if err := writer.WriteField("content_type", contentType); err != nil {
			writer.Close()
			return "", fmt.Errorf("collab: failed to set content type field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("collab: failed to finalise upload: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("collab: failed to build upload request: %w", err)
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())
	if u.authToken != "" {
		request.Header.Set("Authorization", "Bearer "+u.authToken)
	}

	response, err := u.client.Do(request)
	if err != nil {
		return "", fmt.Errorf("collab: upload request failed: %w", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("collab: failed to read upload response: %w", err)
	}
	if response.StatusCode >= http.StatusMultipleChoices {
		message := strings.TrimSpace(string(raw))
		if message == "" {
			message = response.Status
		}
		return "", fmt.Errorf("collab: upload returned status %s: %s", response.Status, message)
	}

	var parsed struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("collab: failed to decode upload response: %w", err)
	}
	if strings.TrimSpace(parsed.URL) == "" {
		return "", errors.New("collab: upload response did not include a url")
	}
	return parsed.URL, nil
}
