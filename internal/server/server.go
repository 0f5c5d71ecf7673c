package server

import (
	"context"
	"net/http"
	"time"

	"github.com/ambienthq/ambient/internal/config"
	"github.com/ambienthq/ambient/internal/observability"
	obslogger "github.com/ambienthq/ambient/internal/observability/logger"
	obsmetrics "github.com/ambienthq/ambient/internal/observability/metrics"
	signupdomain "github.com/ambienthq/ambient/internal/signup/domain"
	tenantdomain "github.com/ambienthq/ambient/internal/tenant/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

// NewEngine builds the gin engine with recovery, request logging, metrics and
// error-mapping middleware plus the /metrics endpoint.
func NewEngine(log *zap.Logger, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics, registry *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log, obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

type Server struct {
	engine    *gin.Engine
	cfg       config.Config
	log       *zap.Logger
	db        *gorm.DB
	signupsvc signupdomain.Service
	resolver  tenantdomain.Resolver
}

type ServerParams struct {
	fx.In

	Gin       *gin.Engine
	Cfg       config.Config
	Log       *zap.Logger
	DB        *gorm.DB
	Signupsvc signupdomain.Service
	Resolver  tenantdomain.Resolver
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:    p.Gin,
		cfg:       p.Cfg,
		log:       p.Log,
		db:        p.DB,
		signupsvc: p.Signupsvc,
		resolver:  p.Resolver,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func registerRoutes(s *Server) {
	s.RegisterRoutes()
}

// RegisterRoutes installs tenant enforcement and all route handlers.
// Enforcement must be attached before any route so it runs for every path.
func (s *Server) RegisterRoutes() {
	s.engine.Use(s.TenantEnforcement())

	internal := s.engine.Group("/internal")
	internal.GET("/healthz", s.Health)
	internal.GET("/tenant", s.ResolveTenant)

	v1 := s.engine.Group("/v1")
	v1.GET("/health", s.Health)

	auth := v1.Group("/auth")
	auth.GET("/health", s.Health)
	auth.POST("/signup", s.Signup)
	auth.GET("/whoami", s.Whoami)
}

// Health answers liveness probes.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func run(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.log.Info("http server starting", zap.String("addr", s.cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					s.log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
