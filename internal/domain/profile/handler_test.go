package profile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestSaveProfile_HTTP(t *testing.T) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	e := echo.New()

	body := `{"email":"sam@example.com","full_name":"Sam","age":30,"gender":"other"}`
	req := httptest.NewRequest(http.MethodPut, "/profile/u1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.SaveProfile(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var out Profile
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// The path parameter wins over any user_id in the body.
	if out.UserID != "u1" {
		t.Errorf("expected user_id u1, got %s", out.UserID)
	}
	if _, ok := repo.profiles["u1"]; !ok {
		t.Error("expected profile to be stored")
	}
}

func TestSaveProfile_HTTP_InvalidEmail(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()

	body := `{"email":"nope","full_name":"Sam"}`
	req := httptest.NewRequest(http.MethodPut, "/profile/u1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	err := h.SaveProfile(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestGetProfile_HTTP_NotFound(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/profile/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.GetProfile(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}
