package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chipchop/chipchop/internal/api/auth"
	"github.com/chipchop/chipchop/internal/api/cloud"
	"github.com/chipchop/chipchop/internal/api/collab"
	"github.com/chipchop/chipchop/internal/api/copilot"
	"github.com/chipchop/chipchop/internal/api/git"
	"github.com/chipchop/chipchop/internal/api/projects"
	"github.com/chipchop/chipchop/internal/presence"
	"github.com/chipchop/chipchop/internal/service"
)

// RouterConfig holds the services the router wires up
type RouterConfig struct {
	AuthService    *service.AuthService
	ProjectService *service.ProjectService
	GitService     *service.GitService
	CopilotService *service.CopilotService
	CloudService   *service.CloudService
	Hub            *presence.Hub
	Logger         *zap.Logger
	AllowOrigins   []string
}

// SetupRouter sets up the Gin router
func SetupRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(cfg.AllowOrigins))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the ChipChop backend"})
	})
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth.NewHandler(cfg.AuthService).RegisterRoutes(r.Group("/api/auth"))
	projects.NewHandler(cfg.ProjectService).RegisterRoutes(r.Group("/api/projects"))
	git.NewHandler(cfg.GitService).RegisterRoutes(r.Group("/api/git"))
	collab.NewHandler(cfg.Hub, cfg.Logger).RegisterRoutes(r.Group("/api/collab"))
	copilot.NewHandler(cfg.CopilotService).RegisterRoutes(r.Group("/api/copilot"))
	cloud.NewHandler(cfg.CloudService).RegisterRoutes(r.Group("/api/cloud"))

	return r
}

func corsMiddleware(allowOrigins []string) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Requested-With"},
	}
	if len(allowOrigins) == 1 && allowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowOrigins
		corsCfg.AllowCredentials = true
	}
	return cors.New(corsCfg)
}
