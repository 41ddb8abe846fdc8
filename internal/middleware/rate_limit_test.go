package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"hiring-orchestrator/pkg/log"
)

func newEngine(perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), Config{RequestsPerMin: perMin})

	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func get(r *gin.Engine, remote string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remote
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit_BurstThenReject(t *testing.T) {
	// 20/min gives a burst of 2.
	r := newEngine(20)

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.1:1234"))
}

func TestRateLimit_ClientsAreIsolated(t *testing.T) {
	r := newEngine(10)

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2:1234"))
}

func TestNew_Defaults(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	assert.Equal(t, 6, mw.burst)

	mw = New(log.NewNop(), Config{RequestsPerMin: 3})
	assert.Equal(t, 1, mw.burst)
}
