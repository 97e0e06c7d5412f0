package forum

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *mockRepo) {
	repo := newMockRepo()
	return NewHandler(NewService(repo)), repo
}

func TestCreatePost_HTTP(t *testing.T) {
	h, repo := newTestHandler()
	e := echo.New()

	body := `{"user_id":"u1","title":"Sleep tips","content":"What works?","author":"Sam"}`
	req := httptest.NewRequest(http.MethodPost, "/forum", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.CreatePost(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(repo.posts) != 1 {
		t.Errorf("expected 1 stored post, got %d", len(repo.posts))
	}

	var out Post
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.IsApproved {
		t.Error("expected created post to be approved")
	}
}

func TestCreatePost_HTTP_MissingTitle(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	body := `{"user_id":"u1","content":"c","author":"a"}`
	req := httptest.NewRequest(http.MethodPost, "/forum", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.CreatePost(e.NewContext(req, rec))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestListPosts_HTTP_ApprovedOnly(t *testing.T) {
	h, repo := newTestHandler()
	e := echo.New()

	visible := &Post{UserID: "u1", Title: "visible", Content: "c", Author: "a"}
	hidden := &Post{UserID: "u2", Title: "hidden", Content: "c", Author: "b"}
	h.svc.CreatePost(context.Background(), visible)
	h.svc.CreatePost(context.Background(), hidden)
	repo.posts[hidden.ID].IsApproved = false

	req := httptest.NewRequest(http.MethodGet, "/forum", nil)
	rec := httptest.NewRecorder()
	if err := h.ListPosts(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var out struct {
		Data  []*Post `json:"data"`
		Total int     `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Total != 1 || len(out.Data) != 1 {
		t.Fatalf("expected 1 visible post, got %d", out.Total)
	}
	if out.Data[0].Title != "visible" {
		t.Errorf("expected the approved post, got %q", out.Data[0].Title)
	}
}

func TestGetPost_HTTP_NotFound(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/forum/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	err := h.GetPost(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}

func TestApprovePost_HTTP(t *testing.T) {
	h, repo := newTestHandler()
	e := echo.New()

	p := &Post{UserID: "u1", Title: "t", Content: "c", Author: "a"}
	h.svc.CreatePost(context.Background(), p)
	repo.posts[p.ID].IsApproved = false

	req := httptest.NewRequest(http.MethodPost, "/admin/forum/"+p.ID.String()+"/approve", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())

	if err := h.ApprovePost(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !repo.posts[p.ID].IsApproved {
		t.Error("expected post to be approved")
	}
}
