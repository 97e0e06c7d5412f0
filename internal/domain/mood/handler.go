package mood

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// moodNote accompanies every mood response so the scores are never mistaken
// for a clinical measurement.
const moodNote = "Heuristic wellbeing indicator derived from facial expressions; not a clinical assessment."

// Handler provides HTTP handlers for the mood domain.
type Handler struct {
	agg *Aggregator
}

// NewHandler creates a new mood domain handler.
func NewHandler(agg *Aggregator) *Handler {
	return &Handler{agg: agg}
}

// RegisterRoutes registers all mood domain routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/mood/frames", h.IngestFrames)
	api.GET("/mood/current", h.Current)
	api.DELETE("/mood/current", h.Reset)
}

type ingestRequest struct {
	Frames []Frame `json:"frames"`
}

type ingestResponse struct {
	Accepted int `json:"accepted"`
	Dropped  int `json:"dropped"`
}

func (h *Handler) IngestFrames(c echo.Context) error {
	var req ingestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Frames) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "frames is required")
	}

	accepted, dropped := h.agg.AddFrames(req.Frames)
	return c.JSON(http.StatusAccepted, ingestResponse{Accepted: accepted, Dropped: dropped})
}

func (h *Handler) Current(c echo.Context) error {
	result, ok := h.agg.Snapshot()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no expression frames received yet")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"result": result,
		"note":   moodNote,
	})
}

func (h *Handler) Reset(c echo.Context) error {
	h.agg.Reset()
	return c.NoContent(http.StatusNoContent)
}
