package http

import (
	"github.com/gin-gonic/gin"

	"hiring-orchestrator/internal/middleware"
)

// RegisterRoutes maps the session endpoints. Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions", mw.RateLimit())
	{
		sessions.POST("", h.StartSession)
		sessions.POST("/:id/messages", h.SendMessage)
		sessions.GET("/:id/messages", h.History)
		sessions.GET("/:id/status", h.Status)
		sessions.GET("/:id/export", h.Export)
		sessions.DELETE("/:id", h.ClearSession)
	}
}
