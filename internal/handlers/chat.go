package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/propdesk/property-management-api/internal/realtime"
	"go.uber.org/zap"
)

// ChatHandler serves the support chat websocket.
type ChatHandler struct {
	hub *realtime.Hub
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(hub *realtime.Hub) *ChatHandler {
	return &ChatHandler{
		hub: hub,
	}
}

// Connect upgrades the request and joins the shared chat channel. Every
// message a client sends is rebroadcast to all connected clients.
func (h *ChatHandler) Connect(c *gin.Context) {
	if err := realtime.ServeWS(h.hub, c.Writer, c.Request); err != nil {
		zap.L().Warn("Chat upgrade failed", zap.Error(err))
	}
}
