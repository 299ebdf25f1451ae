// Package rest serves the CSS validation endpoint over HTTP.
package rest

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/heptiolabs/healthcheck"
	"go.uber.org/zap"

	"github.com/cssbridge/cssbridge/internal/adapters/outbound/metrics"
	"github.com/cssbridge/cssbridge/internal/domain"
)

const (
	// shutdownTimeout leaves in-flight requests time to finish a validator run.
	shutdownTimeout   = 2 * domain.DefaultTimeout
	readHeaderTimeout = 10 * time.Second
)

// Validator produces a report for one request.
type Validator interface {
	Validate(ctx context.Context, raw domain.RawRequest) (*domain.Report, error)
}

// Server routes the validation endpoint, health checks and metrics.
type Server struct {
	route        string
	validator    Validator
	engine       *gin.Engine
	health       healthcheck.Handler
	shuttingDown atomic.Bool
	logger       *zap.SugaredLogger
}

// NewServer builds the router. route is the path of the validation endpoint.
func NewServer(validator Validator, route string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		route:     route,
		validator: validator,
		engine:    gin.New(),
		health:    healthcheck.NewHandler(),
		logger:    logger.Sugar().Named("http"),
	}

	// Access log and panic recovery, RFC3339 in UTC.
	s.engine.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	s.engine.Use(ginzap.RecoveryWithZap(logger, true))

	s.health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(10000))
	s.health.AddReadinessCheck("shutdown", s.notShuttingDown)

	s.engine.Any(route, s.handleValidate)
	s.engine.GET("/live", gin.WrapF(s.health.LiveEndpoint))
	s.engine.GET("/ready", gin.WrapF(s.health.ReadyEndpoint))
	s.engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	return s
}

// AddReadinessCheck registers an extra check reported by /ready.
func (s *Server) AddReadinessCheck(name string, check healthcheck.Check) {
	s.health.AddReadinessCheck(name, check)
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) notShuttingDown() error {
	if s.shuttingDown.Load() {
		return errors.New("shutting down")
	}
	return nil
}

// Run listens on addr and serves until ctx is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then fails readiness
// and waits for in-flight requests before returning.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Infow("Listening", "addr", ln.Addr().String(), "route", s.route)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.shuttingDown.Store(true)
	s.logger.Infow("Shutting down", "timeout", shutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
