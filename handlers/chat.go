package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"museumguide-backend/chat"
)

// ChatHandler exposes the museum assistant. The completer may be nil when no
// model endpoint is configured; the route then answers 503.
type ChatHandler struct {
	completer chat.Completer
	log       *logrus.Logger
}

func NewChatHandler(completer chat.Completer, log *logrus.Logger) *ChatHandler {
	return &ChatHandler{completer: completer, log: log}
}

type chatRequest struct {
	Message   string         `json:"message" binding:"required"`
	SessionID string         `json:"session_id"`
	Stream    bool           `json:"stream"`
	Messages  []chat.Message `json:"messages"`
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No message provided"})
		return
	}

	if h.completer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chat is not configured"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	messages := chat.BuildMessages(req.Message, req.Messages)

	if req.Stream {
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")

		err := h.completer.Stream(c, messages, func(chunk string) {
			fmt.Fprintf(c.Writer, "data: %s\n\n", chunk)
			c.Writer.Flush()
		})
		if err != nil {
			h.log.WithError(err).Error("chat stream failed")
		}
		return
	}

	response, err := h.completer.Complete(c, messages)
	if err != nil {
		h.log.WithError(err).Error("chat completion failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response, "session_id": sessionID})
}
