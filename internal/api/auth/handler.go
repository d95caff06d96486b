package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chipchop/chipchop/internal/api/httputil"
	"github.com/chipchop/chipchop/internal/domain"
	"github.com/chipchop/chipchop/internal/service"
)

// Handler handles authentication requests
type Handler struct {
	authService *service.AuthService
}

// NewHandler creates a new auth handler
func NewHandler(authService *service.AuthService) *Handler {
	return &Handler{authService: authService}
}

// RegisterRoutes registers auth routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/login", h.Login)
	r.GET("/me", h.Me)
}

// Login issues a new session token
func (h *Handler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Me resolves the token query parameter to its session
func (h *Handler) Me(c *gin.Context) {
	user, err := h.authService.WhoAmI(c.Request.Context(), c.Query("token"))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
