// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/itsatony/temperature-detector/api"
	"github.com/itsatony/temperature-detector/internal/config"
	"github.com/itsatony/temperature-detector/internal/monitoring"
	"github.com/itsatony/temperature-detector/internal/service"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	service    *service.Service
	monitoring *monitoring.Service
	listener   net.Listener
}

// New creates a new server instance with all components wired but not yet
// listening.
func New(cfg *config.Config) *Server {
	opts := api.Options{AllowedOrigins: cfg.Server.AllowedOrigins}

	var mon *monitoring.Service
	var svc *service.Service
	if cfg.Monitoring.Enabled {
		mon = monitoring.NewService(monitoring.Config{Namespace: cfg.Monitoring.Namespace})
		opts.Monitoring = mon
		svc = service.New(cfg.Sensor, mon)
	} else {
		// a nil *monitoring.Service must not end up in the Recorder interface
		svc = service.New(cfg.Sensor, nil)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.NewRouter(svc, opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		config:     cfg,
		srv:        srv,
		service:    svc,
		monitoring: mon,
	}
}

// Listen binds the configured address. Bind failures (port in use,
// permission denied) are returned here rather than from a goroutine.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("error binding %s: %w", s.srv.Addr, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.srv.Addr
}

// Start binds, serves and blocks until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run binds, serves and blocks until ctx is done or serving fails
func (s *Server) Run(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	s.setupEventHandlers()

	errChan := make(chan error, 1)
	go func() {
		nuts.L.Infof("[Server] Starting server on http://%s", s.Addr())
		if err := s.srv.Serve(s.listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return s.shutdown()
}

func (s *Server) shutdown() error {
	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

func (s *Server) setupEventHandlers() {
	if s.monitoring == nil {
		return
	}

	s.monitoring.OnReading(func(sensorID, location, resolution string) {
		nuts.L.Debugf("[Monitoring] Reading generated for sensor %s in %s (%s)", sensorID, location, resolution)
	})
}
