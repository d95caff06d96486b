package cloud

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chipchop/chipchop/internal/api/httputil"
	"github.com/chipchop/chipchop/internal/domain"
	"github.com/chipchop/chipchop/internal/service"
)

// Handler handles mock cloud deployment requests
type Handler struct {
	cloudService *service.CloudService
}

// NewHandler creates a new cloud handler
func NewHandler(cloudService *service.CloudService) *Handler {
	return &Handler{cloudService: cloudService}
}

// RegisterRoutes registers cloud routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/deploy", h.Deploy)
}

// Deploy runs a simulated bitstream deployment
func (h *Handler) Deploy(c *gin.Context) {
	var req domain.DeployRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	resp, err := h.cloudService.Deploy(c.Request.Context(), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
