package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"devstudio/internal/repository"
	"devstudio/internal/services"
	"devstudio/pkg/constants"
)

type ChatHandler struct {
	chat     *repository.ChatRepository
	sessions *services.SessionService
}

func NewChatHandler(chat *repository.ChatRepository, sessions *services.SessionService) *ChatHandler {
	return &ChatHandler{
		chat:     chat,
		sessions: sessions,
	}
}

func (h *ChatHandler) StartSession(c *gin.Context) {
	sessionID, err := h.sessions.Start(c.Request.Context())
	if err != nil {
		log.Printf("StartSession error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start chat session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session_id": sessionID})
}

type PostMessageRequest struct {
	SessionID string  `json:"session_id" binding:"required"`
	Message   *string `json:"message"`
	Response  *string `json:"response"`
}

// PostMessage records one exchange of the support chat. The bot reply is
// produced upstream and stored alongside the user message.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alive, err := h.sessions.Validate(c.Request.Context(), req.SessionID)
	if err != nil {
		log.Printf("PostMessage error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate chat session"})
		return
	}
	if !alive {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrSessionNotFound})
		return
	}

	msg, err := h.chat.Create(c.Request.Context(), repository.NewChatMessage{
		SessionID: req.SessionID,
		Message:   req.Message,
		Response:  req.Response,
	})
	if err != nil {
		log.Printf("PostMessage error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store chat message"})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *ChatHandler) GetHistory(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session id"})
		return
	}

	messages, err := h.chat.GetBySession(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("GetHistory error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list chat messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
