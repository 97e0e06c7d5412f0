package feedback

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestSubmitFeedback_HTTP(t *testing.T) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	e := echo.New()

	body := `{"user_id":"u1","feedback_text":"Great app","rating":4}`
	req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.SubmitFeedback(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(repo.entries) != 1 {
		t.Errorf("expected 1 stored entry, got %d", len(repo.entries))
	}
}

func TestSubmitFeedback_HTTP_BadRating(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()

	body := `{"user_id":"u1","feedback_text":"meh","rating":9}`
	req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.SubmitFeedback(e.NewContext(req, rec))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestListFeatured_HTTP(t *testing.T) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	e := echo.New()

	visible := &Feedback{UserID: "u1", Text: "love it"}
	hidden := &Feedback{UserID: "u2", Text: "hidden"}
	h.svc.SubmitFeedback(context.Background(), visible)
	h.svc.SubmitFeedback(context.Background(), hidden)
	repo.entries[hidden.ID].IsFeatured = false

	req := httptest.NewRequest(http.MethodGet, "/feedback", nil)
	rec := httptest.NewRecorder()
	if err := h.ListFeatured(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out struct {
		Data  []*Feedback `json:"data"`
		Total int         `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Total != 1 || len(out.Data) != 1 {
		t.Fatalf("expected 1 featured entry, got %d", out.Total)
	}
	if out.Data[0].Text != "love it" {
		t.Errorf("expected the featured entry, got %q", out.Data[0].Text)
	}
}

func TestFeatureFeedback_HTTP(t *testing.T) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	e := echo.New()

	f := &Feedback{UserID: "u1", Text: "ok"}
	h.svc.SubmitFeedback(context.Background(), f)
	repo.entries[f.ID].IsFeatured = false

	req := httptest.NewRequest(http.MethodPost, "/admin/feedback/"+f.ID.String()+"/feature", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(f.ID.String())

	if err := h.FeatureFeedback(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !repo.entries[f.ID].IsFeatured {
		t.Error("expected entry to be featured")
	}
}
