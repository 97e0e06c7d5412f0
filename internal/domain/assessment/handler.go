package assessment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/calmnest/calmnest/pkg/pagination"
)

// Handler provides HTTP handlers for the assessment domain.
type Handler struct {
	svc *Service
}

// NewHandler creates a new assessment domain handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers all assessment domain routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/assessments/instruments", h.ListInstruments)
	api.GET("/assessments/instruments/:code", h.GetInstrument)
	api.POST("/assessments/sessions", h.StartSession)
	api.GET("/assessments/sessions/:id", h.GetSession)
	api.PUT("/assessments/sessions/:id/answers", h.Answer)
	api.POST("/assessments/sessions/:id/submit", h.Submit)
	api.GET("/assessments/results", h.ListResults)
}

// sessionView is the wire representation of a session's current state.
type sessionView struct {
	ID         uuid.UUID `json:"id"`
	TestType   string    `json:"test_type"`
	State      State     `json:"state"`
	Answered   int       `json:"answered"`
	Unanswered []string  `json:"unanswered,omitempty"`
}

func viewOf(s *Session) sessionView {
	return sessionView{
		ID:         s.ID,
		TestType:   s.Instrument.Code,
		State:      s.State(),
		Answered:   len(s.Answers()),
		Unanswered: s.Unanswered(),
	}
}

func (h *Handler) ListInstruments(c echo.Context) error {
	return c.JSON(http.StatusOK, Instruments())
}

func (h *Handler) GetInstrument(c echo.Context) error {
	inst, err := InstrumentByCode(c.Param("code"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, inst)
}

type startSessionRequest struct {
	TestType string `json:"test_type"`
}

func (h *Handler) StartSession(c echo.Context) error {
	var req startSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sess, err := h.svc.StartSession(req.TestType)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, viewOf(sess))
}

func (h *Handler) GetSession(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}
	sess, err := h.svc.GetSession(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return c.JSON(http.StatusOK, viewOf(sess))
}

type answerRequest struct {
	QuestionID string `json:"question_id"`
	Value      int    `json:"value"`
}

func (h *Handler) Answer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}
	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.svc.Answer(id, req.QuestionID, req.Value)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	case errors.Is(err, ErrSubmitted):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, viewOf(sess))
}

func (h *Handler) Submit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}

	result, err := h.svc.Submit(id)
	var incomplete *IncompleteError
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	case errors.As(err, &incomplete):
		return c.JSON(http.StatusConflict, map[string]interface{}{
			"error":      incomplete.Error(),
			"unanswered": incomplete.Missing,
		})
	case errors.Is(err, ErrSubmitted):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) ListResults(c echo.Context) error {
	pg := pagination.FromContext(c)
	results := h.svc.Results()
	total := len(results)

	start := pg.Offset
	if start > total {
		start = total
	}
	end := start + pg.Limit
	if end > total {
		end = total
	}

	return c.JSON(http.StatusOK, pagination.NewResponse(results[start:end], total, pg.Limit, pg.Offset))
}
