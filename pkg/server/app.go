// Package server owns the application lifecycle: HTTP server, queue
// consumer and graceful shutdown.
package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"rugcheck/pkg/config"
	xhttp "rugcheck/pkg/http"
	"rugcheck/pkg/logger"
	"rugcheck/pkg/queue"
)

// Closer is anything the app must close on shutdown.
type Closer interface {
	Close() error
}

// App encapsulates the running service.
type App struct {
	cfg      *config.Config
	log      *logger.Logger
	handler  xhttp.Handler
	consumer *queue.RedisQueue
	closers  []Closer

	httpServer *xhttp.Server
}

// New creates an App. The consumer may be nil when async scans are
// disabled; closers are closed in reverse order on shutdown.
func New(cfg *config.Config, log *logger.Logger, handler xhttp.Handler, consumer *queue.RedisQueue, closers ...Closer) *App {
	return &App{
		cfg:      cfg,
		log:      log,
		handler:  handler,
		consumer: consumer,
		closers:  closers,
	}
}

// Run starts the service and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	if a.consumer != nil {
		if err := a.consumer.Start(); err != nil {
			a.log.Error("queue consumer start failed", logger.Error(err))
			return err
		}
		a.log.Info("queue consumer started", logger.Int("workers", a.cfg.Queue.Workers))
	}

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start failed", logger.Error(err))
		return err
	}
	a.log.Info("server started", logger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown(ctx)
}

func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", logger.Error(err))
	}

	if a.consumer != nil {
		if err := a.consumer.Stop(shutdownCtx); err != nil {
			a.log.Warn("queue consumer stop error", logger.Error(err))
		}
	}

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.log.Warn("close error", logger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
