package handler

import (
	"errors"
	"net/http"

	"mascot-chat/internal/openai"
	"mascot-chat/internal/services"
	"mascot-chat/internal/transport/httpdto"
	"mascot-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	service *services.ChatService
	logger  *logger.Logger
}

func NewChatHandler(service *services.ChatService, l *logger.Logger) *ChatHandler {
	return &ChatHandler{service: service, logger: l}
}

// Chat proxies one user message to the upstream completion API. Validation
// and configuration failures answer locally; upstream failures answer with
// the upstream's status and a fixed friendly reply, with the detail logged
// server-side only.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req httpdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "Missing 'message' in body."})
		return
	}
	message := req.MessageText()
	if message == "" {
		c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "Missing 'message' in body."})
		return
	}

	if !h.service.Configured() {
		c.JSON(http.StatusInternalServerError, httpdto.ChatReply{Reply: services.ReplyNotConfigured})
		return
	}

	reply, err := h.service.Reply(c.Request.Context(), message)
	if err != nil {
		status, friendly := services.FriendlyReply(err)
		if h.logger != nil {
			h.logger.ErrorfCtx(c.Request.Context(), "chat completion failed: %s", err.Error())
		}
		c.JSON(status, httpdto.ChatReply{Reply: friendly})
		return
	}
	c.JSON(http.StatusOK, httpdto.ChatReply{Reply: reply})
}

// ChatUsage answers GET /chat with guidance only.
func (h *ChatHandler) ChatUsage(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, httpdto.ChatUsage{
		Error:   "Use POST /chat",
		Example: gin.H{"message": "Hello!"},
	})
}

// Ping checks upstream reachability by listing models.
func (h *ChatHandler) Ping(c *gin.Context) {
	if !h.service.Configured() {
		c.JSON(http.StatusInternalServerError, httpdto.PingResponse{OK: false, Detail: "OPENAI_API_KEY not set"})
		return
	}

	count, err := h.service.CountModels(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		detail := err.Error()
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			if apiErr.StatusCode != 0 {
				status = apiErr.StatusCode
			}
			detail = apiErr.Detail
		}
		if h.logger != nil {
			h.logger.ErrorfCtx(c.Request.Context(), "openai ping failed: %s", err.Error())
		}
		c.JSON(status, httpdto.PingResponse{OK: false, Detail: detail})
		return
	}
	c.JSON(http.StatusOK, httpdto.PingResponse{OK: true, Count: &count})
}
