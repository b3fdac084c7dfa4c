package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rmss-studio/tutorbot/internal/history"
	"github.com/rmss-studio/tutorbot/internal/logger"
	"github.com/rmss-studio/tutorbot/internal/relay"
)

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	UserType  string `json:"user_type"`
}

// Chat forwards one user message through the relay.
// POST /api/chat
func (h *Handler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}
	if req.UserType == "" {
		req.UserType = "visitor"
	}

	resp, err := h.chat.Chat(c.Request().Context(), relay.Request{
		Message:   req.Message,
		SessionID: req.SessionID,
		UserType:  req.UserType,
	})
	if err != nil {
		// No distinction between a failed model call and a failed write; the
		// caller sees one generic error either way.
		logger.L.Error("chat request failed", "error", err, "session_id", req.SessionID)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "chat service temporarily unavailable"})
	}

	return c.JSON(http.StatusOK, resp)
}

// ChatHistory returns every stored turn of a session in order.
// GET /api/chat/history/:session_id
func (h *Handler) ChatHistory(c echo.Context) error {
	sessionID := c.Param("session_id")

	messages, err := h.store.ListMessages(c.Request().Context(), sessionID)
	if err != nil {
		logger.L.Error("history retrieval failed", "error", err, "session_id", sessionID)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to retrieve chat history"})
	}
	if messages == nil {
		messages = []history.Message{}
	}

	return c.JSON(http.StatusOK, messages)
}
