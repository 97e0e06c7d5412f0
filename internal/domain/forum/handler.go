package forum

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/calmnest/calmnest/internal/platform/auth"
	"github.com/calmnest/calmnest/pkg/pagination"
)

// Handler provides HTTP handlers for the forum domain.
type Handler struct {
	svc *Service
}

// NewHandler creates a new forum domain handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the public forum routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/forum", h.CreatePost)
	api.GET("/forum", h.ListPosts)
	api.GET("/forum/:id", h.GetPost)
}

// RegisterAdminRoutes registers the moderation routes. The caller attaches
// the role guard on the group.
func (h *Handler) RegisterAdminRoutes(admin *echo.Group) {
	admin.GET("/forum/pending", h.ListPendingPosts)
	admin.POST("/forum/:id/approve", h.ApprovePost)
}

func (h *Handler) CreatePost(c echo.Context) error {
	var p Post
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if p.UserID == "" {
		p.UserID = auth.UserIDFromContext(c.Request().Context())
	}
	if err := h.svc.CreatePost(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) ListPosts(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListPosts(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetPost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, err := h.svc.GetPost(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPendingPosts(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListPendingPosts(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) ApprovePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.ApprovePost(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "post approved"})
}
