package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/thejerf/suture/v4"
	"go.uber.org/zap"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	defaultCleanup    = 15 * time.Minute
)

// HTTPServer matches the lifecycle methods of *http.Server
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs an HTTP server under the supervisor and shuts it
// down gracefully when the supervisor context ends.
type HTTPServerService struct {
	server  HTTPServer
	timeout time.Duration
}

func NewHTTPServerService(server HTTPServer, timeout time.Duration) *HTTPServerService {
	if timeout <= 0 {
		timeout = shutdownTimeout
	}
	return &HTTPServerService{server: server, timeout: timeout}
}

// Serve implements suture.Service
func (s *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		<-errCh
		return ctx.Err()
	}
}

func (s *HTTPServerService) String() string {
	return "http-server"
}

// SessionCleaner is the part of the session store the janitor drives
type SessionCleaner interface {
	CleanExpiredSessions(ctx context.Context) (int, error)
	CollectGarbage() error
}

// SessionJanitor periodically drops expired sessions and compacts the store.
type SessionJanitor struct {
	sessions SessionCleaner
	interval time.Duration
	log      *zap.Logger
}

func NewSessionJanitor(sessions SessionCleaner, interval time.Duration, log *zap.Logger) *SessionJanitor {
	if interval <= 0 {
		interval = defaultCleanup
	}
	return &SessionJanitor{
		sessions: sessions,
		interval: interval,
		log:      log.With(zap.String("service", "session-janitor")),
	}
}

// Serve implements suture.Service
func (j *SessionJanitor) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *SessionJanitor) sweep(ctx context.Context) {
	removed, err := j.sessions.CleanExpiredSessions(ctx)
	if err != nil {
		j.log.Warn("Failed to clean expired sessions", zap.Error(err))
		return
	}
	if removed > 0 {
		j.log.Info("Removed expired sessions", zap.Int("count", removed))
	}

	if err := j.sessions.CollectGarbage(); err != nil {
		j.log.Warn("Session store garbage collection failed", zap.Error(err))
	}
}

func (j *SessionJanitor) String() string {
	return "session-janitor"
}

// APIServer serves the router on the given port next to the session janitor
// until ctx is cancelled.
func APIServer(
	ctx context.Context,
	route http.Handler,
	port string,
	sessions SessionCleaner,
	cleanupInterval time.Duration,
	logger *zap.Logger,
) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           route,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	sup := suture.New("movie-social", suture.Spec{
		EventHook: func(e suture.Event) {
			logger.Warn("Supervisor event", zap.String("event", e.String()))
		},
		FailureThreshold: 5,
		FailureBackoff:   time.Second,
		Timeout:          shutdownTimeout + time.Second,
	})
	sup.Add(NewHTTPServerService(server, shutdownTimeout))
	sup.Add(NewSessionJanitor(sessions, cleanupInterval, logger))

	logger.Info("Server running", zap.String("addr", "http://localhost"+server.Addr))

	err := sup.Serve(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
