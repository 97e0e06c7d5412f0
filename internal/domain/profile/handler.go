package profile

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler provides HTTP handlers for the profile domain.
type Handler struct {
	svc *Service
}

// NewHandler creates a new profile domain handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers all profile routes. PUT and POST both upsert; the
// original clients used them interchangeably.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.PUT("/profile/:id", h.SaveProfile)
	api.POST("/profile/:id", h.SaveProfile)
	api.GET("/profile/:id", h.GetProfile)
}

func (h *Handler) SaveProfile(c echo.Context) error {
	var p Profile
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.UserID = c.Param("id")
	if err := h.svc.SaveProfile(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) GetProfile(c echo.Context) error {
	p, err := h.svc.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "profile not found")
	}
	return c.JSON(http.StatusOK, p)
}
