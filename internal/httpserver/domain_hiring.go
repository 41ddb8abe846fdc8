package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	hiringHTTP "hiring-orchestrator/internal/agent/delivery/http"
)

// setupHiringDomain registers the session routes: /api/v1/sessions/...
func (srv HTTPServer) setupHiringDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := hiringHTTP.New(srv.l, srv.orchestrator)
	hiringHTTP.RegisterRoutes(api, h, srv.middleware)

	srv.l.Infof(ctx, "Hiring domain registered")
	return nil
}
