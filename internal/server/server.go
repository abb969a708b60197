// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	nuts "github.com/vaudience/go-nuts"

	"github.com/honeyroute/honeyroute/api"
	"github.com/honeyroute/honeyroute/internal/analysis"
	"github.com/honeyroute/honeyroute/internal/config"
	"github.com/honeyroute/honeyroute/internal/fleet"
	"github.com/honeyroute/honeyroute/internal/kvstore"
	"github.com/honeyroute/honeyroute/internal/localstore"
	"github.com/honeyroute/honeyroute/internal/monitoring"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	fleet      *fleet.FleetService
	analysis   *analysis.Service
	monitoring *monitoring.Service
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
	}
}

// Start wires the services, begins listening and blocks until shutdown.
func (s *Server) Start() error {
	store, err := initStore(s.config.Store)
	if err != nil {
		return fmt.Errorf("error initializing store: %w", err)
	}

	s.fleet = fleet.New(localstore.New(store))
	s.analysis = analysis.NewService(s.config.Analysis.JobTTL)
	s.monitoring = monitoring.NewService(monitoring.Config{
		LogLevel: s.config.Monitoring.LogLevel,
	})

	s.setupFleetEventHandlers()

	if s.config.Store.SeedDemo {
		if seeded, err := s.fleet.SeedDemo(context.Background()); err != nil {
			nuts.L.Warnf("[Server] Demo seed failed: %v", err)
		} else if seeded {
			nuts.L.Infof("[Server] First run, demo data seeded")
		}
	}

	router := api.NewRouter(s.fleet, s.analysis)
	handler := handlers.RecoveryHandler()(
		handlers.CORS(
			handlers.AllowedOrigins(s.config.Server.AllowedOrigins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
			handlers.AllowedHeaders([]string{"Content-Type"}),
		)(handlers.LoggingHandler(os.Stdout, router)),
	)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// setupFleetEventHandlers forwards fleet events into monitoring.
func (s *Server) setupFleetEventHandlers() {
	s.fleet.OnEvent("apiary.created", func(id string) {
		s.monitoring.RecordEvent("apiary_created", map[string]string{
			"apiary_id": id,
		})
	})

	s.fleet.OnEvent("hive.created", func(id string) {
		s.monitoring.RecordEvent("hive_created", map[string]string{
			"hive_id": id,
		})
	})

	s.fleet.OnEvent("alert.resolved", func(id string) {
		s.monitoring.RecordEvent("alert_resolved", map[string]string{
			"alert_id": id,
		})
	})

	s.fleet.OnEvent("demo.seeded", func(id string) {
		s.monitoring.RecordEvent("demo_seeded", nil)
	})
}

// initStore selects and connects the configured key-value backend.
func initStore(cfg config.StoreConfig) (kvstore.Store, error) {
	switch cfg.Backend {
	case "memory":
		nuts.L.Infof("[Server] Using in-memory store")
		return kvstore.NewMemoryStore(), nil
	case "file":
		nuts.L.Infof("[Server] Using file store at %s", cfg.Path)
		return kvstore.NewFileStore(cfg.Path)
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return kvstore.NewRedisStore(ctx, kvstore.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
