// Package api provides the HTTP handlers for the chatbot backend.
package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rmss-studio/tutorbot/internal/history"
	"github.com/rmss-studio/tutorbot/internal/relay"
)

// Chatter is the chat round trip the handler delegates to; narrowed to an
// interface so handler tests can stub the completion path.
type Chatter interface {
	Chat(ctx context.Context, req relay.Request) (relay.Response, error)
}

// Handler handles HTTP requests.
type Handler struct {
	chat  Chatter
	store *history.Store
}

// NewHandler creates a new handler.
func NewHandler(chat Chatter, store *history.Store) *Handler {
	return &Handler{chat: chat, store: store}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/", h.Root)
	e.POST("/api/chat", h.Chat)
	e.GET("/api/chat/history/:session_id", h.ChatHistory)
	e.POST("/api/status", h.CreateStatusCheck)
	e.GET("/api/status", h.ListStatusChecks)
}

// Root returns the liveness message.
// GET /api/
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "RMSS AI Chatbot API"})
}
