package assessment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	log, err := OpenResultLog(filepath.Join(t.TempDir(), "results.json"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open result log: %v", err)
	}
	return NewHandler(NewService(log, zerolog.Nop()))
}

func doJSON(e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, echo.Context) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func startTestSession(t *testing.T, e *echo.Echo, h *Handler, code string) sessionView {
	t.Helper()
	rec, c := doJSON(e, http.MethodPost, "/api/v1/assessments/sessions", `{"test_type":"`+code+`"}`)
	if err := h.StartSession(c); err != nil {
		t.Fatalf("start session: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var view sessionView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode session view: %v", err)
	}
	return view
}

func answerQuestion(t *testing.T, e *echo.Echo, h *Handler, sessionID, questionID string, value int) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(answerRequest{QuestionID: questionID, Value: value})
	rec, c := doJSON(e, http.MethodPut, "/api/v1/assessments/sessions/"+sessionID+"/answers", string(body))
	c.SetParamNames("id")
	c.SetParamValues(sessionID)
	if err := h.Answer(c); err != nil {
		t.Fatalf("answer %s: %v", questionID, err)
	}
	return rec
}

func TestListInstruments(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	rec, c := doJSON(e, http.MethodGet, "/api/v1/assessments/instruments", "")
	if err := h.ListInstruments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var instruments []Instrument
	if err := json.Unmarshal(rec.Body.Bytes(), &instruments); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(instruments) != 2 {
		t.Fatalf("expected 2 instruments, got %d", len(instruments))
	}
	if instruments[0].Code != CodePHQ9 || instruments[1].Code != CodeGAD7 {
		t.Errorf("unexpected instrument order: %s, %s", instruments[0].Code, instruments[1].Code)
	}
}

func TestGetInstrument_NotFound(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	_, c := doJSON(e, http.MethodGet, "/api/v1/assessments/instruments/PCL-5", "")
	c.SetParamNames("code")
	c.SetParamValues("PCL-5")

	err := h.GetInstrument(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestStartSession_UnknownInstrument(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	_, c := doJSON(e, http.MethodPost, "/api/v1/assessments/sessions", `{"test_type":"BDI-II"}`)
	err := h.StartSession(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestSubmit_IncompleteReturnsConflict(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	view := startTestSession(t, e, h, CodePHQ9)
	answerQuestion(t, e, h, view.ID.String(), "phq9-1", 2)

	rec, c := doJSON(e, http.MethodPost, "/api/v1/assessments/sessions/"+view.ID.String()+"/submit", "")
	c.SetParamNames("id")
	c.SetParamValues(view.ID.String())
	if err := h.Submit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var body struct {
		Unanswered []string `json:"unanswered"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Unanswered) != 8 {
		t.Errorf("expected 8 unanswered ids, got %d", len(body.Unanswered))
	}
}

func TestAssessmentFlow_SubmitAndListResults(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	view := startTestSession(t, e, h, CodeGAD7)
	inst, _ := InstrumentByCode(CodeGAD7)
	for _, q := range inst.Items {
		answerQuestion(t, e, h, view.ID.String(), q.ID, 2)
	}

	rec, c := doJSON(e, http.MethodPost, "/api/v1/assessments/sessions/"+view.ID.String()+"/submit", "")
	c.SetParamNames("id")
	c.SetParamValues(view.ID.String())
	if err := h.Submit(c); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Score != 14 || result.Severity != "Moderate Anxiety" {
		t.Errorf("unexpected result: score %d severity %s", result.Score, result.Severity)
	}

	// The session is gone after submit.
	getRec, getCtx := doJSON(e, http.MethodGet, "/api/v1/assessments/sessions/"+view.ID.String(), "")
	_ = getRec
	getCtx.SetParamNames("id")
	getCtx.SetParamValues(view.ID.String())
	err := h.GetSession(getCtx)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404 for submitted session, got %v", err)
	}

	// The result shows up in the listing.
	listRec, listCtx := doJSON(e, http.MethodGet, "/api/v1/assessments/results", "")
	if err := h.ListResults(listCtx); err != nil {
		t.Fatalf("list results: %v", err)
	}
	var page struct {
		Data  []Result `json:"data"`
		Total int      `json:"total"`
	}
	if err := json.Unmarshal(listRec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if page.Total != 1 || len(page.Data) != 1 {
		t.Fatalf("expected 1 result, got total %d len %d", page.Total, len(page.Data))
	}
	if page.Data[0].TestType != CodeGAD7 {
		t.Errorf("unexpected test type %s", page.Data[0].TestType)
	}
}

func TestAnswer_UnknownSession(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	_, c := doJSON(e, http.MethodPut, "/api/v1/assessments/sessions/6a9c5f9e-66ad-4b4e-bb39-6dbe2db3d2f0/answers",
		`{"question_id":"phq9-1","value":1}`)
	c.SetParamNames("id")
	c.SetParamValues("6a9c5f9e-66ad-4b4e-bb39-6dbe2db3d2f0")

	err := h.Answer(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown session, got %v", err)
	}
}

func TestAnswer_InvalidValue(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	view := startTestSession(t, e, h, CodePHQ9)

	body := `{"question_id":"phq9-1","value":7}`
	_, c := doJSON(e, http.MethodPut, "/api/v1/assessments/sessions/"+view.ID.String()+"/answers", body)
	c.SetParamNames("id")
	c.SetParamValues(view.ID.String())

	err := h.Answer(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for off-scale value, got %v", err)
	}
}
