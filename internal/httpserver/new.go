package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"smart-task-scheduler/internal/middleware"
	taskHTTP "smart-task-scheduler/internal/task/delivery/http"
	"smart-task-scheduler/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Task domain
	taskHandler taskHTTP.Handler
	middleware  middleware.Middleware

	// Metrics; nil disables /metrics
	gatherer prometheus.Gatherer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Task domain
	TaskHandler taskHTTP.Handler
	Middleware  middleware.Middleware

	// Gatherer backs the /metrics endpoint when set.
	Gatherer prometheus.Gatherer
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		taskHandler: cfg.TaskHandler,
		middleware:  cfg.Middleware,
		gatherer:    cfg.Gatherer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
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
	return nil
}
