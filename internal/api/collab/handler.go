package collab

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/chipchop/chipchop/internal/presence"
)

// Handler upgrades collaboration connections and feeds them into the
// presence hub
type Handler struct {
	hub      *presence.Hub
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewHandler creates a new collaboration handler
func NewHandler(hub *presence.Hub, logger *zap.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			// Origin policy is handled by the process-wide CORS config.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// RegisterRoutes registers collaboration routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/ws/:username", h.ServeWS)
}

// ServeWS upgrades the request to a websocket and blocks reading it until
// the remote end closes
func (h *Handler) ServeWS(c *gin.Context) {
	username := c.Param("username")

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed",
			zap.String("username", username),
			zap.Error(err),
		)
		return
	}
	defer conn.Close()

	h.hub.Connect(conn, username)
	defer h.hub.Disconnect(conn, username)

	for {
		// Incoming payloads are accepted but not interpreted yet,
		// reserved for per-file lock negotiation.
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
