package resources

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler serves the static resource catalog.
type Handler struct{}

// NewHandler creates a new resources handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes registers the resource catalog routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/resources", h.ListResources)
	api.GET("/resources/categories", h.ListCategories)
}

func (h *Handler) ListResources(c echo.Context) error {
	if category := c.QueryParam("category"); category != "" {
		items := ByCategory(category)
		if items == nil {
			items = []Resource{}
		}
		return c.JSON(http.StatusOK, items)
	}
	return c.JSON(http.StatusOK, All())
}

func (h *Handler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, Categories)
}
