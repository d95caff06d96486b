package copilot

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chipchop/chipchop/internal/domain"
	"github.com/chipchop/chipchop/internal/service"
)

// Handler handles copilot chat requests
type Handler struct {
	copilotService *service.CopilotService
}

// NewHandler creates a new copilot handler
func NewHandler(copilotService *service.CopilotService) *Handler {
	return &Handler{copilotService: copilotService}
}

// RegisterRoutes registers copilot routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat", h.Chat)
}

// Chat returns a canned assistant reply for the message
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.copilotService.Chat(c.Request.Context(), &req))
}
