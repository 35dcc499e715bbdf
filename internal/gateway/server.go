// Package gateway provides the HTTP front end for the Kivai runtime.
//
// It exposes payload validation and intent execution over a small JSON
// API. The gateway only parses requests and maps ACKs to HTTP responses;
// all sequencing and policy lives in the execution pipeline.
//
// The server follows the standard lifecycle pattern:
//
//	srv, err := gateway.New(deps)
//	srv.Start(ctx)
//	defer srv.Close()
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/tech4life-beyond/kivai/internal/infrastructure/config"
	"github.com/tech4life-beyond/kivai/internal/infrastructure/logging"
	"github.com/tech4life-beyond/kivai/internal/runtime"
	"github.com/tech4life-beyond/kivai/internal/schema"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight
// requests to complete during shutdown.
const gracefulShutdownTimeout = 10 * time.Second

// Deps holds the dependencies required by the gateway server.
type Deps struct {
	Config    config.GatewayConfig
	Execution config.ExecutionConfig
	Logger    *logging.Logger
	Executor  *runtime.Executor
	Validator *schema.Validator
	Version   string
}

// Server is the HTTP gateway for the Kivai runtime.
type Server struct {
	cfg       config.GatewayConfig
	execCfg   config.ExecutionConfig
	logger    *logging.Logger
	executor  *runtime.Executor
	validator *schema.Validator
	version   string
	server    *http.Server
}

// New creates a gateway server with the given dependencies.
// The server is not started until Start() is called.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Executor == nil {
		return nil, fmt.Errorf("executor is required")
	}
	if deps.Validator == nil {
		return nil, fmt.Errorf("validator is required")
	}

	return &Server{
		cfg:       deps.Config,
		execCfg:   deps.Execution,
		logger:    deps.Logger,
		executor:  deps.Executor,
		validator: deps.Validator,
		version:   deps.Version,
	}, nil
}

// Start begins serving HTTP requests in a background goroutine.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.buildRouter(),
		ReadTimeout:  time.Duration(s.cfg.Timeouts.Read) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Timeouts.Write) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.Timeouts.Idle) * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	go func() {
		s.logger.Info("gateway listening", "addr", addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("gateway server error", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts the server down, waiting for in-flight requests.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down gateway: %w", err)
	}
	return nil
}
