package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/internal/middleware"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
	"github.com/smartdiet-sl/smartdiet/backend/internal/types"
)

// ChatbotHandler proxies the nutrition advisor chat.
type ChatbotHandler struct {
	chatbot service.IChatbotService
	users   middleware.UserLookup
}

func NewChatbotHandler(chatbot service.IChatbotService, users middleware.UserLookup) *ChatbotHandler {
	return &ChatbotHandler{chatbot: chatbot, users: users}
}

func (h *ChatbotHandler) RegisterRoutes(router *gin.RouterGroup, g Guards) {
	chat := router.Group("/chatbot")
	{
		chat.POST("/new", h.NewConversation)
		chat.POST("/chat", g.ChatLimit, h.Chat)
		chat.POST("/clear", g.OptionalAuth, h.Clear)
	}
}

func (h *ChatbotHandler) NewConversation(c *gin.Context) {
	reply, err := h.chatbot.NewConversation(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// Chat handles POST /chatbot/chat {message, conversationId}.
func (h *ChatbotHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	reply, err := h.chatbot.Chat(c.Request.Context(), req.ConversationID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// Clear deletes one conversation. Without a conversationId every
// conversation is cleared, which only an admin may do.
func (h *ChatbotHandler) Clear(c *gin.Context) {
	var req types.ClearChatRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, err)
		return
	}

	if req.ConversationID == "" {
		userID, ok := middleware.GetUserID(c)
		if !ok {
			respondError(c, service.ErrUnauthorized)
			return
		}
		user, err := h.users.GetUserByID(c.Request.Context(), userID)
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, service.ErrUnauthorized)
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}
		if !user.IsAdmin() {
			respondError(c, service.ErrForbidden)
			return
		}
	}

	if err := h.chatbot.Clear(c.Request.Context(), req.ConversationID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation cleared"})
}
