package collab

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"egramseva-backend/internal/models"
)

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient("   ", ClientOptions{}); err == nil {
		t.Fatalf("expected error for empty base URL")
	}
	client, err := NewClient("http://content.local/api/", ClientOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.baseURL != "http://content.local/api" {
		t.Fatalf("expected trailing slash trimmed, got %s", client.baseURL)
	}
}

func TestClientGetSection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/sections/s1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-123" {
			t.Errorf("expected bearer token, got %q", got)
		}
		json.NewEncoder(w).Encode(models.Section{ID: "s1", SectionType: "HERO_BANNER"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, ClientOptions{AuthToken: "token-123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	section, err := client.GetSection(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if section.ID != "s1" || section.SectionType != "HERO_BANNER" {
		t.Fatalf("unexpected section %+v", section)
	}
}

func TestClientNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, ClientOptions{})
	if _, err := client.GetSection(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := client.DeleteSection(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestClientCreateSectionPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/pages/p1/sections" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		var received models.Section
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		if received.SectionType != "FAQ" {
			t.Errorf("unexpected payload section type %s", received.SectionType)
		}
		received.ID = "sec-9"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(received)
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, ClientOptions{})
	created, err := client.CreateSection(context.Background(), "p1", models.Section{SectionType: "FAQ", IsVisible: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "sec-9" {
		t.Fatalf("expected assigned id, got %q", created.ID)
	}
}

func TestClientUpdateOrderPayload(t *testing.T) {
	var captured map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/pages/p1/sections/order" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&captured)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, ClientOptions{})
	if err := client.UpdateOrder(context.Background(), "p1", []string{"b", "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(captured["section_ids"]) != 2 || captured["section_ids"][0] != "b" {
		t.Fatalf("unexpected order payload %v", captured)
	}
}

func TestClientToggleVisibilityPayload(t *testing.T) {
	var captured map[string]bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/sections/s1/visibility" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&captured)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, ClientOptions{})
	if err := client.ToggleVisibility(context.Background(), "s1", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if visible, ok := captured["is_visible"]; !ok || visible {
		t.Fatalf("unexpected visibility payload %v", captured)
	}
}

func TestClientServerErrorIncludesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream unavailable")
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, ClientOptions{})
	_, err := client.GetSections(context.Background(), "p1")
	if err == nil || !strings.Contains(err.Error(), "upstream unavailable") {
		t.Fatalf("expected error with body excerpt, got %v", err)
	}
}
