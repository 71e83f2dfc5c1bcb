package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	commandHTTP "personal-secretary/internal/command/delivery/http"
	"personal-secretary/internal/middleware"
	taskHTTP "personal-secretary/internal/task/delivery/http"
	"personal-secretary/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw             middleware.Middleware
	taskHandler    taskHTTP.Handler
	commandHandler commandHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware     middleware.Middleware
	TaskHandler    taskHTTP.Handler
	CommandHandler commandHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             cfg.Middleware,
		taskHandler:    cfg.TaskHandler,
		commandHandler: cfg.CommandHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	if srv.commandHandler == nil {
		return errors.New("command handler is required")
	}
	return nil
}
