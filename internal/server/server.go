package server

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gutwise/backend/config"
	"github.com/gutwise/backend/internal/router"
	"github.com/gutwise/backend/internal/service"
)

// Server represents the HTTP server.
type Server struct {
	http   *http.Server
	logger *zap.Logger
}

// New creates a server instance with the full service graph wired up.
// redisClient may be nil; caching and rate limiting then degrade to
// pass-through.
func New(cfg *config.Config, redisClient *redis.Client, logger *zap.Logger) *Server {
	llm := service.NewLLMService(cfg, redisClient, logger)
	session := service.NewSession(llm, logger)
	research := service.NewResearchService(llm, logger)

	engine := router.SetupRouter(router.Deps{
		Session:  session,
		Gateway:  llm,
		Research: research,
		Redis:    redisClient,
		Logger:   logger,
		Origins:  cfg.AllowedOrigins,
	})

	return &Server{
		http: &http.Server{
			Addr:         cfg.ServerAddr(),
			Handler:      engine,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// Start runs the server until it fails or is shut down.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
