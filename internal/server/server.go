package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bysam-catalog/internal/config"
	custommiddleware "bysam-catalog/internal/middleware"
	"bysam-catalog/internal/repository"
	"bysam-catalog/internal/service"
	"bysam-catalog/internal/store"
	"bysam-catalog/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	store  store.Store
}

// NewServer wires the store, repository, auth gate and handlers behind
// a chi router.
func NewServer(ctx context.Context, cfg *config.Config, logger *zap.Logger, st store.Store) (*Server, error) {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Hydrate the catalog from the store, seeding it on first run
	catalog, err := repository.NewCatalogRepository(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog: %w", err)
	}

	authService := service.NewAuthService(
		st,
		cfg.Auth.AdminUsername,
		cfg.Auth.AdminPassword,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessExpiry)*time.Minute,
	)

	catalogHandler := transport.NewCatalogHandler(catalog, logger)
	authHandler := transport.NewAuthHandler(authService, logger)

	authMiddleware := custommiddleware.AuthMiddleware(authService, logger)
	adminMiddleware := custommiddleware.RequireAdmin(logger)

	authHandler.RegisterRoutes(router, authMiddleware)
	catalogHandler.RegisterRoutes(router, authMiddleware, adminMiddleware)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		store:  st,
	}

	return server, nil
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Error("Failed to close store", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
