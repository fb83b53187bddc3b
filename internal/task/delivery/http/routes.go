package http

import (
	"github.com/gin-gonic/gin"

	"family-task-parser/internal/middleware"
)

// RegisterRoutes maps the task endpoints. Only enhance reaches the language model,
// so only enhance is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/parse", h.Parse)
		tasks.POST("/edit-tag", h.EditTag)
		tasks.POST("/enhance", mw.RateLimit(), h.Enhance)
	}
	rg.GET("/roster", h.Roster)
}
