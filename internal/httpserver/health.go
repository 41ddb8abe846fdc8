package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hiring-orchestrator/pkg/response"
)

const ServiceName = "hiring-orchestrator"

// Version is stamped at build time with -ldflags "-X hiring-orchestrator/internal/httpserver.Version=...".
var Version = "dev"

// Values of systemStatus.State.
const (
	StateHealthy  = "healthy"
	StateReady    = "ready"
	StateNotReady = "not_ready"
	StateAlive    = "alive"
)

// systemStatus is the body shared by /health, /ready and /live.
type systemStatus struct {
	State   string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

func (srv HTTPServer) systemStatus(state string) systemStatus {
	return systemStatus{
		State:   state,
		Service: ServiceName,
		Version: Version,
		Uptime:  time.Since(srv.startedAt).Truncate(time.Second).String(),
	}
}

// healthCheck reports that the process serves HTTP.
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags System
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.systemStatus(StateHealthy))
}

// readyCheck reports whether the hiring routes can take turns.
// @Summary Readiness Check
// @Description Check if the orchestrator is wired and the API can take conversation turns
// @Tags System
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Orchestrator not wired"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.orchestrator == nil {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   StateNotReady,
			Data:      srv.systemStatus(StateNotReady),
		})
		return
	}
	response.OK(c, srv.systemStatus(StateReady))
}

// liveCheck
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags System
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.systemStatus(StateAlive))
}
