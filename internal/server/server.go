// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/guitarkeep/hub/api"
	"github.com/guitarkeep/hub/internal/cache"
	"github.com/guitarkeep/hub/internal/category"
	"github.com/guitarkeep/hub/internal/config"
	"github.com/guitarkeep/hub/internal/database"
	"github.com/guitarkeep/hub/internal/monitoring"
	"github.com/guitarkeep/hub/internal/repository/postgres"
	"github.com/guitarkeep/hub/internal/service"
	"github.com/guitarkeep/hub/internal/tip"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	db         database.DB
	cache      cache.Cache
	service    *service.Service
	monitoring *monitoring.Service
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		config:     cfg,
		srv:        srv,
		monitoring: monitoring.NewService(cfg.Monitoring),
	}
}

// Start initializes every dependency, begins listening for requests and
// blocks until the process is asked to stop.
func (s *Server) Start() error {
	if err := s.initialize(context.Background()); err != nil {
		s.close()
		return err
	}

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// initialize builds the dependency graph. Configuration problems and an
// unreachable store stop startup.
func (s *Server) initialize(ctx context.Context) error {
	categories, err := category.Load(s.config.Categories.RoomTypes, s.config.Categories.DataTypes)
	if err != nil {
		return fmt.Errorf("invalid categories: %w", err)
	}
	nuts.L.Infof("[Server] Loaded %d room types and %d data types",
		len(categories.Rooms.Categories()), len(categories.Data.Categories()))

	table, err := tip.LoadTable(s.config.Thresholds.File)
	if err != nil {
		return fmt.Errorf("invalid thresholds: %w", err)
	}

	db, err := database.Open(ctx, s.config.Database)
	if err != nil {
		return fmt.Errorf("failed to open row store: %w", err)
	}
	s.db = db
	s.monitoring.RegisterDB(db.GetDB().DB, s.config.Database.DBName)

	readings := postgres.NewReadingRepository(db, s.config.Database.Table, s.config.Database.QueryTimeout)

	opts := []service.Option{service.WithRecorder(s.monitoring)}
	if s.config.Cache.Enabled {
		nuts.L.Warnf("[Server] Response cache enabled: results may be up to %s older than the store", s.config.Cache.TTL)
		rc, err := cache.NewRedisCache(ctx, s.config.Redis, s.config.Cache, s.monitoring)
		if err != nil {
			// The cache is optional; serve from the store.
			nuts.L.Warnf("[Server] Response cache disabled: %v", err)
		} else {
			s.cache = rc
			opts = append(opts, service.WithCache(rc))
		}
	}

	s.service = service.New(readings, categories, tip.NewClassifier(table), opts...)
	if err := s.service.Validate(); err != nil {
		return err
	}
	s.setupEventHandlers()

	s.srv.Handler = s.handler()
	return nil
}

// handler wraps the router with recovery, CORS and access logging
func (s *Server) handler() http.Handler {
	router := api.NewRouter(s.service, s.monitoring.Handler(), s.config.Monitoring.MetricsPath)

	var h http.Handler = router
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
	h = handlers.CORS(
		handlers.AllowedOrigins(s.config.Server.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Accept"}),
	)(h)
	return handlers.CombinedLoggingHandler(os.Stdout, h)
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
		s.close()
		return fmt.Errorf("error shutting down server: %w", err)
	}
	s.close()

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// close releases the store and the cache
func (s *Server) close() {
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			nuts.L.Warnf("[Server] Error closing cache: %v", err)
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			nuts.L.Warnf("[Server] Error closing row store: %v", err)
		}
		s.monitoring.RecordEvent("store_closed", map[string]string{"table": s.config.Database.Table})
	}
}

func (s *Server) setupEventHandlers() {
	s.service.OnEvent(service.EventStoreUnavailable, func(labels map[string]string) {
		s.monitoring.RecordEvent("store_unavailable", labels)
	})
	s.service.OnEvent(service.EventStoreFailed, func(labels map[string]string) {
		s.monitoring.RecordEvent("store_failed", labels)
	})
	s.service.OnEvent(service.EventCacheDegraded, func(labels map[string]string) {
		s.monitoring.RecordEvent("cache_degraded", labels)
	})
}
