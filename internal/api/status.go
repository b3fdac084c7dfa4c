package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rmss-studio/tutorbot/internal/history"
	"github.com/rmss-studio/tutorbot/internal/logger"
)

type statusCheckRequest struct {
	ClientName string `json:"client_name"`
}

// CreateStatusCheck records a health-check entry.
// POST /api/status
func (h *Handler) CreateStatusCheck(c echo.Context) error {
	var req statusCheckRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.ClientName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "client_name is required"})
	}

	check := history.StatusCheck{
		ID:         uuid.New().String(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := h.store.SaveStatusCheck(c.Request().Context(), check); err != nil {
		logger.L.Error("status check write failed", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to record status check"})
	}

	return c.JSON(http.StatusOK, check)
}

// ListStatusChecks returns all recorded health checks.
// GET /api/status
func (h *Handler) ListStatusChecks(c echo.Context) error {
	checks, err := h.store.ListStatusChecks(c.Request().Context())
	if err != nil {
		logger.L.Error("status check read failed", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to list status checks"})
	}
	if checks == nil {
		checks = []history.StatusCheck{}
	}

	return c.JSON(http.StatusOK, checks)
}
