package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Server owns the HTTP listener. Listen moves it from Starting to
// Listening; Serve blocks until Shutdown.
type Server struct {
	Logger *zap.Logger
	HTTP   *http.Server
	port   int

	mu       sync.RWMutex
	listener net.Listener
}

// New creates a server for handler on the given port.
func New(port int, handler http.Handler, l *zap.Logger) *Server {
	return &Server{
		Logger: l,
		port:   port,
		HTTP: &http.Server{
			Addr:              address(port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

func address(port int) string {
	return ":" + strconv.Itoa(port)
}

// Listen binds the configured port and logs the bound port once.
func (s *Server) Listen(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return errors.New("server is already listening")
	}

	lc := net.ListenConfig{}
	lis, err := lc.Listen(ctx, "tcp", s.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}
	s.listener = lis

	s.Logger.Info("Server running on port", zap.Int("port", s.boundPort()))
	return nil
}

// Port returns the bound port, or the configured one before Listen.
func (s *Server) Port() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.boundPort()
}

func (s *Server) boundPort() int {
	if s.listener == nil {
		return s.port
	}
	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return s.port
}

// Serve handles requests until the server is shut down. It returns nil
// after a graceful Shutdown.
func (s *Server) Serve() error {
	s.mu.RLock()
	lis := s.listener
	s.mu.RUnlock()

	if lis == nil {
		return errors.New("server is not listening")
	}

	if err := s.HTTP.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Start binds and serves.
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(ctx); err != nil {
		return err
	}
	return s.Serve()
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.HTTP.Shutdown(ctx)
}
