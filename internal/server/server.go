package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gofrs/flock"

	"groove/internal/catalog"
	"groove/internal/config"
	"groove/internal/logging"
	"groove/internal/orders"
	"groove/internal/store"
)

// Server serves the groove HTTP API.
type Server struct {
	bind     string
	logger   *slog.Logger
	store    *store.Store
	catalog  *catalog.Service
	orders   *orders.Service
	lockPath string
	lock     *flock.Flock

	listener net.Listener
	server   *http.Server
}

// New constructs a server around the provided services.
func New(cfg *config.Config, st *store.Store, catalogSvc *catalog.Service, orderSvc *orders.Service, logger *slog.Logger) (*Server, error) {
	if cfg == nil || st == nil || catalogSvc == nil || orderSvc == nil {
		return nil, errors.New("server requires config, store, and services")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	srv := &Server{
		bind:     cfg.Paths.APIBind,
		logger:   logger.With(logging.String("component", "api-server")),
		store:    st,
		catalog:  catalogSvc,
		orders:   orderSvc,
		lockPath: cfg.LockPath(),
		lock:     flock.New(cfg.LockPath()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", srv.handleHealth)
	mux.HandleFunc("/api/records", srv.handleRecords)
	mux.HandleFunc("/api/records/", srv.handleRecord)
	mux.HandleFunc("/api/orders", srv.handleOrders)
	mux.HandleFunc("/api/orders/", srv.handleOrder)

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Start acquires the daemon lock and begins serving until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another groove daemon is already serving this data directory")
	}

	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		_ = s.lock.Unlock()
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	s.logger.Info("api server listening",
		logging.String("address", listener.Addr().String()),
		logging.String("lock", s.lockPath))
	return nil
}

// Stop shuts the server down gracefully and releases the daemon lock.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
	_ = s.lock.Unlock()
}

// Addr returns the bound listener address, useful when binding to port 0.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.bind
	}
	return s.listener.Addr().String()
}

// Handler exposes the HTTP handler for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
