// Package server exposes the solver over HTTP.
//
// Routes:
//
//	POST /v1/solve   System document in, Solution JSON out
//	GET  /healthz    liveness
//	GET  /metrics    Prometheus exposition
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/linsolve/gaussjordan"
	"github.com/katalvlaran/linsolve/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

// Config contains server configuration.
// MaxDimension caps n for POST /v1/solve; 0 disables the cap.
type Config struct {
	Addr         string
	MaxDimension int
	CORSOrigins  []string
}

// Server wraps the gin engine and its dependencies.
type Server struct {
	cfg     Config
	router  *gin.Engine
	solver  *gaussjordan.Solver
	metrics *metrics.Metrics
	log     *zap.Logger
}

// New wires middleware and routes. A nil logger disables logging.
func New(cfg Config, solver *gaussjordan.Solver, m *metrics.Metrics, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if m == nil {
		m = metrics.New()
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestID(),
		AccessLog(log),
		CORS(CORSConfigFor(cfg.CORSOrigins)),
		metrics.Middleware(m),
	)

	s := &Server{
		cfg:     cfg,
		router:  router,
		solver:  solver,
		metrics: m,
		log:     log.Named("server"),
	}

	router.GET("/healthz", s.health)
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.POST("/v1/solve", s.solve)

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
