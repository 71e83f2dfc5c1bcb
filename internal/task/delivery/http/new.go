package http

import (
	"github.com/gin-gonic/gin"

	"personal-secretary/internal/task"
	"personal-secretary/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Complete(c *gin.Context)
	Delete(c *gin.Context)
	Calendar(c *gin.Context)
	PriorityMatrix(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
