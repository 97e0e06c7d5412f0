package feedback

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/calmnest/calmnest/internal/platform/auth"
	"github.com/calmnest/calmnest/pkg/pagination"
)

// Handler provides HTTP handlers for the feedback domain.
type Handler struct {
	svc *Service
}

// NewHandler creates a new feedback domain handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the public feedback routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/feedback", h.SubmitFeedback)
	api.GET("/feedback", h.ListFeatured)
}

// RegisterAdminRoutes registers the moderation routes. The caller attaches
// the role guard on the group.
func (h *Handler) RegisterAdminRoutes(admin *echo.Group) {
	admin.POST("/feedback/:id/feature", h.FeatureFeedback)
}

func (h *Handler) SubmitFeedback(c echo.Context) error {
	var f Feedback
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if f.UserID == "" {
		f.UserID = auth.UserIDFromContext(c.Request().Context())
	}
	if err := h.svc.SubmitFeedback(c.Request().Context(), &f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *Handler) ListFeatured(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListFeatured(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) FeatureFeedback(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.FeatureFeedback(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "feedback not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "feedback featured"})
}
