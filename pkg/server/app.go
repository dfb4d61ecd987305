package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"InsightFlow/internal/domain/repository"
	"InsightFlow/internal/handler/api"
	"InsightFlow/internal/handler/ws"
	mid "InsightFlow/internal/middleware"
	"InsightFlow/internal/usecase"
	"InsightFlow/pkg/config"
	xhttp "InsightFlow/pkg/http"
	applogger "InsightFlow/pkg/logger"
	"InsightFlow/pkg/queue"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg       *config.Config
	log       *applogger.Logger
	registry  *usecase.Registry
	refresher *usecase.Refresher
	pipeline  *mid.EventPipeline
	hub       *ws.Hub
	handler   *api.StoresEchoHandler
	audit     repository.SnapshotAudit
	publisher repository.EventPublisher
	// nil when Redis is disabled
	jobs *queue.RedisQueue

	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	registry *usecase.Registry,
	refresher *usecase.Refresher,
	pipeline *mid.EventPipeline,
	hub *ws.Hub,
	handler *api.StoresEchoHandler,
	jobs *queue.RedisQueue,
	audit repository.SnapshotAudit,
	publisher repository.EventPublisher,
) *App {
	return &App{
		cfg:       cfg,
		log:       log,
		registry:  registry,
		refresher: refresher,
		pipeline:  pipeline,
		hub:       hub,
		handler:   handler,
		jobs:      jobs,
		audit:     audit,
		publisher: publisher,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.pipeline.Start(ctx)

	if a.jobs != nil {
		if err := a.jobs.Start(); err != nil {
			a.log.Error("refresh queue start error", applogger.Error(err))
			return err
		}
		a.jobs.StartRetryProcessor()
		a.log.Info("refresh queue started")
	}

	a.refresher.Start(ctx)
	a.log.Info("background refresher started",
		applogger.Duration("interval", a.cfg.Refresh.Interval),
		applogger.Int("workers", a.cfg.Refresh.Workers),
	)

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	e := a.httpServer.Echo()
	e.GET("/ws/board", a.hub.Handle)
	e.GET("/healthz", a.health)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("gateway listening",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("upstream", a.cfg.Upstream.BaseURL),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	a.refresher.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if a.httpServer != nil {
		if err := a.httpServer.Stop(shutdownCtx); err != nil {
			a.log.Error("http shutdown error", applogger.Error(err))
		}
	}

	a.hub.Close()
	a.pipeline.Stop()

	if a.jobs != nil {
		if err := a.jobs.Stop(shutdownCtx); err != nil {
			a.log.Warn("refresh queue stop error", applogger.Error(err))
		}
	}

	if err := a.publisher.Close(); err != nil {
		a.log.Warn("event publisher close error", applogger.Error(err))
	}
	if err := a.audit.Close(); err != nil {
		a.log.Warn("audit close error", applogger.Error(err))
	}

	a.log.Info("shutdown complete")
	return nil
}

func (a *App) health(c echo.Context) error {
	checks := map[string]string{"gateway": "ok"}
	status := http.StatusOK

	if err := a.audit.Health(c.Request().Context()); err != nil {
		checks["audit"] = err.Error()
		status = http.StatusServiceUnavailable
	} else {
		checks["audit"] = "ok"
	}

	return c.JSON(status, checks)
}
