package handler

import (
	"net/http"

	"portfolio/internal/delivery/api/response"
	"portfolio/internal/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler tracks views and serves the admin dashboard.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler.
func NewAnalyticsHandler(analyticsUC usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC}
}

// TrackViewRequest is the body of POST /analytics/track.
type TrackViewRequest struct {
	ProjectID string `json:"projectId"`
}

func (h *AnalyticsHandler) TrackView(c echo.Context) error {
	var req TrackViewRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.analyticsUC.TrackView(c.Request().Context(), req.ProjectID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "View tracked")
}

func (h *AnalyticsHandler) Summary(c echo.Context) error {
	summary, err := h.analyticsUC.Summary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}

func (h *AnalyticsHandler) Details(c echo.Context) error {
	stats, err := h.analyticsUC.ProjectStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}
