package http

import (
	"github.com/gin-gonic/gin"

	"personal-secretary/internal/command"
	"personal-secretary/pkg/log"
)

// Handler is the public interface for the command HTTP delivery layer.
type Handler interface {
	Execute(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc command.UseCase
}

// New creates a new HTTP handler for the command domain.
func New(l log.Logger, uc command.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
