package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chipchop/chipchop/internal/presence"
	"github.com/chipchop/chipchop/internal/repository"
	"github.com/chipchop/chipchop/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := repository.NewProjectRepository(t.TempDir())
	require.NoError(t, err)

	logger := zap.NewNop()
	return SetupRouter(RouterConfig{
		AuthService:    service.NewAuthService(logger),
		ProjectService: service.NewProjectService(repo, logger),
		GitService:     service.NewGitService(repo, "Test", "test@example.com", logger),
		CopilotService: service.NewCopilotService(),
		CloudService:   service.NewCloudService(logger),
		Hub:            presence.NewHub(logger),
		Logger:         logger,
		AllowOrigins:   []string{"*"},
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, w))
}

func TestAuthFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "alice", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)
	user := decode[map[string]string](t, w)
	require.NotEmpty(t, user["token"])

	w = doJSON(t, router, http.MethodGet, "/api/auth/me?token="+user["token"], nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", decode[map[string]string](t, w)["username"])

	w = doJSON(t, router, http.MethodGet, "/api/auth/me?token=bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProjectLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/projects/", map[string]string{
		"name":        "gcd_test",
		"description": "Test",
		"rtl_content": "// custom",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/projects/gcd_test/files/rtl/gcd_accelerator.v", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "// custom", decode[map[string]string](t, w)["content"])

	// A document that was never supplied reads as empty content.
	w = doJSON(t, router, http.MethodGet, "/api/projects/gcd_test/files/architecture.md", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[map[string]string](t, w)["content"])

	w = doJSON(t, router, http.MethodPut, "/api/projects/gcd_test/files/architecture.md",
		map[string]string{"content": "# Updated"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", decode[map[string]string](t, w)["status"])

	w = doJSON(t, router, http.MethodGet, "/api/projects/gcd_test/files/architecture.md", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "# Updated", decode[map[string]string](t, w)["content"])

	w = doJSON(t, router, http.MethodPost, "/api/projects/", map[string]string{"name": "gcd_test"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/projects/missing/files/x.v", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/projects/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)
}

func TestGitEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/git/missing/status", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/projects/", map[string]string{"name": "vc"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/git/vc/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decode[map[string]any](t, w)
	assert.Equal(t, "none", status["branch"])
	assert.Equal(t, true, status["is_clean"])
	assert.Empty(t, status["changed_files"])

	w = doJSON(t, router, http.MethodPost, "/api/git/vc/init", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/git/vc/commit",
		map[string]string{"message": "initial"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/git/vc/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "master", decode[map[string]any](t, w)["branch"])
}

func TestCopilotChat(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/copilot/chat",
		map[string]string{"message": "please help me build a counter"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reply   string   `json:"reply"`
		Actions []string `json:"actions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reply, "module counter")
	assert.Equal(t, []string{"Create File"}, resp.Actions)
}

func TestCloudDeployRejectsUnknownProvider(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/cloud/deploy", map[string]any{
		"provider":   "DigitalOcean",
		"project_id": "p",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPresenceWebsocket(t *testing.T) {
	router := newTestRouter(t)
	srv := httptest.NewServer(router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	readUpdate := func(conn *websocket.Conn) presence.StatusMessage {
		t.Helper()
		var msg presence.StatusMessage
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		require.NoError(t, conn.ReadJSON(&msg))
		return msg
	}

	alice, _, err := websocket.DefaultDialer.Dial(wsURL+"/api/collab/ws/alice", nil)
	require.NoError(t, err)
	defer alice.Close()

	msg := readUpdate(alice)
	assert.Equal(t, "users_update", msg.Type)
	assert.Equal(t, map[string]string{"alice": "online"}, msg.Users)

	// Arbitrary incoming payloads are tolerated.
	require.NoError(t, alice.WriteMessage(websocket.TextMessage, []byte("lock rtl/top.v")))

	bob, _, err := websocket.DefaultDialer.Dial(wsURL+"/api/collab/ws/bob", nil)
	require.NoError(t, err)

	msg = readUpdate(alice)
	assert.Equal(t, map[string]string{"alice": "online", "bob": "online"}, msg.Users)

	require.NoError(t, bob.Close())

	msg = readUpdate(alice)
	assert.Equal(t, map[string]string{"alice": "online"}, msg.Users)
}
