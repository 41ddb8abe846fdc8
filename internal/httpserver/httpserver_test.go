package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiring-orchestrator/internal/agent/orchestrator"
	"hiring-orchestrator/internal/conversation"
	"hiring-orchestrator/internal/middleware"
	"hiring-orchestrator/pkg/log"
)

type stubOrchestrator struct{}

func (stubOrchestrator) Process(context.Context, orchestrator.ProcessInput) (orchestrator.ProcessOutput, error) {
	return orchestrator.ProcessOutput{}, nil
}
func (stubOrchestrator) StartSession() string { return "sess-1" }
func (stubOrchestrator) Status(id string) orchestrator.SessionStatus {
	return orchestrator.SessionStatus{SessionID: id}
}
func (stubOrchestrator) History(string, int) []conversation.Message { return nil }
func (stubOrchestrator) Export(string) (conversation.Export, bool) {
	return conversation.Export{}, false
}
func (stubOrchestrator) ClearSession(string) {}

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:       l,
		Port:         8080,
		Mode:         "test",
		Environment:  EnvironmentProduction,
		Orchestrator: stubOrchestrator{},
		Middleware:   middleware.New(l, middleware.Config{RequestsPerMin: 600}),
	})
	require.NoError(t, err)
	return srv
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	cases := map[string]Config{
		"no mode":         {Port: 1, Orchestrator: stubOrchestrator{}},
		"no port":         {Mode: "test", Orchestrator: stubOrchestrator{}},
		"no orchestrator": {Mode: "test", Port: 1},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(l, cfg)
			assert.Error(t, err)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for path, status := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)

		var body struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, status, body.Data["status"])
		assert.Equal(t, ServiceName, body.Data["service"])
		assert.Equal(t, Version, body.Data["version"])
		assert.NotEmpty(t, body.Data["uptime"])
	}
}

func TestReadyCheck_NotReadyWithoutOrchestrator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := HTTPServer{gin: gin.New(), startedAt: time.Now()}
	srv.gin.GET("/ready", srv.readyCheck)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, StateNotReady, body.Message)
	assert.Equal(t, StateNotReady, body.Data["status"])
}

func TestSessionRoutesMounted(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sess-1")
}
