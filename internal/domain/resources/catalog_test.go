package resources

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestCatalog_EveryEntryIsComplete(t *testing.T) {
	known := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		known[c] = true
	}

	seen := make(map[string]bool)
	for _, r := range All() {
		if r.ID == "" || r.Title == "" || r.Description == "" || r.URL == "" {
			t.Errorf("resource %q has empty fields", r.ID)
		}
		if !known[r.Category] {
			t.Errorf("resource %q has unknown category %q", r.ID, r.Category)
		}
		if seen[r.ID] {
			t.Errorf("duplicate resource id %q", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestByCategory(t *testing.T) {
	sleep := ByCategory("Sleep")
	if len(sleep) == 0 {
		t.Fatal("expected sleep resources")
	}
	for _, r := range sleep {
		if r.Category != "Sleep" {
			t.Errorf("expected Sleep, got %s", r.Category)
		}
	}

	// Case-insensitive match.
	if len(ByCategory("sleep")) != len(sleep) {
		t.Error("expected case-insensitive category match")
	}

	if got := ByCategory("Astrology"); len(got) != 0 {
		t.Errorf("expected no resources for unknown category, got %d", len(got))
	}
}

func TestListResources_HTTP(t *testing.T) {
	h := NewHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/resources", nil)
	rec := httptest.NewRecorder()
	if err := h.ListResources(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []Resource
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != len(All()) {
		t.Errorf("expected %d resources, got %d", len(All()), len(items))
	}
}

func TestListResources_HTTP_CategoryFilter(t *testing.T) {
	h := NewHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/resources?category=Anxiety", nil)
	rec := httptest.NewRecorder()
	if err := h.ListResources(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var items []Resource
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected anxiety resources")
	}
	for _, r := range items {
		if r.Category != "Anxiety" {
			t.Errorf("expected Anxiety, got %s", r.Category)
		}
	}
}

func TestListResources_HTTP_UnknownCategory(t *testing.T) {
	h := NewHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/resources?category=Nope", nil)
	rec := httptest.NewRecorder()
	if err := h.ListResources(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Unknown categories degrade to an empty list, not an error.
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}
