package git

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chipchop/chipchop/internal/api/httputil"
	"github.com/chipchop/chipchop/internal/domain"
	"github.com/chipchop/chipchop/internal/service"
)

// Handler handles version control requests
type Handler struct {
	gitService *service.GitService
}

// NewHandler creates a new git handler
func NewHandler(gitService *service.GitService) *Handler {
	return &Handler{gitService: gitService}
}

// RegisterRoutes registers git routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/:id/status", h.Status)
	r.POST("/:id/init", h.Init)
	r.POST("/:id/commit", h.Commit)
}

// Status reports the version-control state of a project
func (h *Handler) Status(c *gin.Context) {
	status, err := h.gitService.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Init initializes version control in a project directory
func (h *Handler) Init(c *gin.Context) {
	if err := h.gitService.Init(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Git repository initialized"})
}

// Commit stages and commits all pending changes
func (h *Handler) Commit(c *gin.Context) {
	var req domain.CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := h.gitService.Commit(c.Request.Context(), c.Param("id"), req.Message); err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Changes committed"})
}
