package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
	}
}
