package wire

import (
	"fmt"

	"movie-social/internal/adaptor"
	"movie-social/internal/data/repository"
	"movie-social/internal/usecase"
	"movie-social/pkg/middleware"
	"movie-social/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Options carries the process-level collaborators the router exposes.
type Options struct {
	// Health maps a store name to its readiness check
	Health map[string]adaptor.Pinger
	// Registry receives the HTTP metrics and backs /metrics. A nil registry
	// gets a private one.
	Registry *prometheus.Registry
}

// Wiring builds services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger, opts Options) (*App, error) {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, opts.Health, logger)

	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics, err := middleware.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	cookie := adaptor.NewSessionCookie(config.Session)
	identity := middleware.NewIdentity(repo.Session, service.Tokens, cookie.Name, logger)

	router := setupRouter(handler, identity, metrics, registry, config, logger)

	return &App{
		Router: router,
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	identity *middleware.Identity,
	metrics *middleware.Metrics,
	registry *prometheus.Registry,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.HTTP.CORSOrigins))
	r.Use(metrics.Handler)

	r.NotFound(handler.Health.NotFound)
	r.MethodNotAllowed(handler.Health.MethodNotAllowed)

	wireAuth(r, handler.Auth, identity, config)
	wireUser(r, handler.User, config)
	wireMessage(r, handler.Message, identity)
	wireProfile(r, handler.Profile, identity)
	wireMovie(r, handler.Movie, identity)
	wireRating(r, handler.Rating, identity)
	wireComment(r, handler.Comment, identity)

	r.Get("/health", handler.Health.Health)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}
