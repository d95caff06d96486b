package projects

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chipchop/chipchop/internal/api/httputil"
	"github.com/chipchop/chipchop/internal/domain"
	"github.com/chipchop/chipchop/internal/service"
)

// Handler handles project and project-file requests
type Handler struct {
	projectService *service.ProjectService
}

// NewHandler creates a new projects handler
func NewHandler(projectService *service.ProjectService) *Handler {
	return &Handler{projectService: projectService}
}

// RegisterRoutes registers project routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.List)
	r.POST("/", h.Create)
	r.GET("/:id/files/*filename", h.ReadFile)
	r.PUT("/:id/files/*filename", h.WriteFile)
}

// List returns all projects
func (h *Handler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Create creates a project with its scaffold files
func (h *Handler) Create(c *gin.Context) {
	var req domain.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// ReadFile returns the content of a project file
func (h *Handler) ReadFile(c *gin.Context) {
	content, err := h.projectService.ReadFile(c.Request.Context(), c.Param("id"), fileParam(c))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.FileContent{Content: content})
}

// WriteFile creates or overwrites a project file
func (h *Handler) WriteFile(c *gin.Context) {
	var req domain.WriteFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := h.projectService.WriteFile(c.Request.Context(), c.Param("id"), fileParam(c), req.Content); err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// fileParam extracts the relative filename from the wildcard route param,
// which gin reports with a leading slash.
func fileParam(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("filename"), "/")
}
