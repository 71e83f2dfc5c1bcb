package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the command endpoint onto the router group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("", h.Execute)
}
