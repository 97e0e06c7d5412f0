package tracking

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/calmnest/calmnest/internal/platform/auth"
	"github.com/calmnest/calmnest/pkg/pagination"
)

// Handler provides HTTP handlers for the tracking domain.
type Handler struct {
	svc *Service
}

// NewHandler creates a new tracking domain handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers all tracking domain routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/test-submissions", h.CreateSubmission)
	api.GET("/test-submissions", h.ListSubmissions)
	api.POST("/mood-groove", h.CreateMoodResult)
	api.GET("/mood-groove", h.ListMoodResults)
	api.POST("/facial-analysis", h.CreateFacialSession)
	api.GET("/facial-analysis/:email", h.ListFacialSessions)
	api.POST("/chat-logs", h.CreateChatLog)
	api.GET("/chat-logs", h.ListChatLogs)
	api.POST("/breathing-exercises", h.CreateBreathingLog)
	api.POST("/interactions", h.CreateInteraction)
	api.GET("/dashboard/:user_id", h.Dashboard)
}

func (h *Handler) CreateSubmission(c echo.Context) error {
	var sub TestSubmission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if sub.UserID == "" {
		sub.UserID = auth.UserIDFromContext(c.Request().Context())
	}
	if err := h.svc.RecordSubmission(c.Request().Context(), &sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, sub)
}

func (h *Handler) ListSubmissions(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		userID = auth.UserIDFromContext(c.Request().Context())
	}
	onDate, err := parseDateParam(c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	items, err := h.svc.ListSubmissions(c.Request().Context(), userID, onDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateMoodResult(c echo.Context) error {
	var m MoodGrooveResult
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if m.UserID == "" {
		m.UserID = auth.UserIDFromContext(ctx)
	}
	if m.UserEmail == "" {
		m.UserEmail = auth.UserEmailFromContext(ctx)
	}
	if err := h.svc.RecordMoodResult(ctx, &m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) ListMoodResults(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		email = auth.UserEmailFromContext(c.Request().Context())
	}
	pg := pagination.FromContext(c)

	items, total, err := h.svc.ListMoodResults(c.Request().Context(), email, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) CreateFacialSession(c echo.Context) error {
	var f FacialAnalysisSession
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if f.UserEmail == "" {
		f.UserEmail = auth.UserEmailFromContext(c.Request().Context())
	}
	if err := h.svc.RecordFacialSession(c.Request().Context(), &f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *Handler) ListFacialSessions(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListFacialSessions(c.Request().Context(), c.Param("email"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) CreateChatLog(c echo.Context) error {
	var l ChatLog
	if err := c.Bind(&l); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if l.UserID == "" {
		l.UserID = auth.UserIDFromContext(c.Request().Context())
	}
	if err := h.svc.RecordChatLog(c.Request().Context(), &l); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *Handler) ListChatLogs(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		userID = auth.UserIDFromContext(c.Request().Context())
	}
	pg := pagination.FromContext(c)

	items, total, err := h.svc.ListChatLogs(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) CreateBreathingLog(c echo.Context) error {
	var b BreathingExerciseLog
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if b.UserID == "" {
		b.UserID = auth.UserIDFromContext(c.Request().Context())
	}
	if err := h.svc.RecordBreathingLog(c.Request().Context(), &b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) CreateInteraction(c echo.Context) error {
	var i UserInteraction
	if err := c.Bind(&i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if i.UserID == "" {
		i.UserID = auth.UserIDFromContext(c.Request().Context())
	}
	if err := h.svc.RecordInteraction(c.Request().Context(), &i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, i)
}

func (h *Handler) Dashboard(c echo.Context) error {
	onDate, err := parseDateParam(c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	dash, err := h.svc.Dashboard(c.Request().Context(), c.Param("user_id"), onDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dash)
}

// parseDateParam parses an optional YYYY-MM-DD query value.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
