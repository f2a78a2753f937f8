package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/freddytc/checkout-agent/internal/backend"
	"github.com/freddytc/checkout-agent/internal/checkout"
	"github.com/freddytc/checkout-agent/internal/checkout/ports"
	"github.com/freddytc/checkout-agent/internal/config"
	"github.com/freddytc/checkout-agent/internal/handler"
	"github.com/freddytc/checkout-agent/internal/middleware"
	"github.com/freddytc/checkout-agent/internal/notification"
	"github.com/freddytc/checkout-agent/internal/router"
	"github.com/freddytc/checkout-agent/internal/scheduler"
	"github.com/freddytc/checkout-agent/internal/store"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg             *config.Config
	log             logger.Logger
	httpServer      *http.Server
	scheduler       *scheduler.Scheduler
	checkoutService *checkout.Service
	redisStore      *store.RedisStore
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"CheckoutAgent",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStore() (ports.SessionStore, error) {
	switch a.cfg.Store.Engine {
	case "redis":
		rs, err := store.NewRedisStore(
			a.cfg.Store.Redis.Addr,
			a.cfg.Store.Redis.Password,
			a.cfg.Store.Redis.DB,
		)
		if err != nil {
			return nil, fmt.Errorf("init redis store: %w", err)
		}
		a.redisStore = rs
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis session store ready",
			logger.String("addr", a.cfg.Store.Redis.Addr),
		)
		return rs, nil

	case "memory":
		return store.NewMemoryStore(), nil

	default:
		fs, err := store.NewFileStore(a.cfg.Store.FilePath)
		if err != nil {
			return nil, fmt.Errorf("init file store: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "file session store ready",
			logger.String("path", a.cfg.Store.FilePath),
		)
		return fs, nil
	}
}

func (a *App) initServices() error {
	sessionStore, err := a.initStore()
	if err != nil {
		return err
	}

	client := backend.New(
		a.cfg.Backend.BaseURL,
		a.cfg.Backend.Token,
		a.cfg.Backend.Timeout,
	)

	n, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.ChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.checkoutService = checkout.NewService(
		client,
		sessionStore,
		n,
		a.cfg.Checkout.HoldWindow,
		a.log,
	)

	// A persisted session from a previous run keeps its original deadline.
	if _, err := a.checkoutService.Resume(context.Background()); err != nil {
		a.log.LogAttrs(context.Background(), logger.ErrorLevel, "could not resume persisted session",
			logger.String("error", err.Error()),
		)
	}

	a.scheduler = scheduler.New(
		a.checkoutService,
		a.cfg.Checkout.TickInterval,
		a.log,
	)

	h := handler.NewHandler(a.checkoutService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	// Best-effort release of an unfinished session before the process exits,
	// the same cleanup the browser ran on page unload.
	a.checkoutService.Shutdown(shutdownCtx)

	if a.redisStore != nil {
		if err := a.redisStore.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
