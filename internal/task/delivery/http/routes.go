package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The fixed view routes are registered before the :id routes so that
// "calendar" and "priority-matrix" are never captured as task IDs.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/calendar", h.Calendar)
	rg.GET("/priority-matrix", h.PriorityMatrix)

	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Detail)
	rg.PUT("/:id", h.Update)
	rg.PATCH("/:id/complete", h.Complete)
	rg.DELETE("/:id", h.Delete)
}
