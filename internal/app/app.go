package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fundraiser/internal/config"
	"github.com/GlebRadaev/fundraiser/internal/dispatcher"
	"github.com/GlebRadaev/fundraiser/internal/handlers"
	"github.com/GlebRadaev/fundraiser/internal/metrics"
	"github.com/GlebRadaev/fundraiser/internal/payout"
	"github.com/GlebRadaev/fundraiser/internal/pg"
	"github.com/GlebRadaev/fundraiser/internal/repo"
	"github.com/GlebRadaev/fundraiser/internal/service"
	"github.com/GlebRadaev/fundraiser/pkg/auth"
	"github.com/GlebRadaev/fundraiser/pkg/clients"
	"github.com/GlebRadaev/fundraiser/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	metrics *metrics.Registry
	ext     *dispatcher.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}

	if err := a.wire(cfg, pg.New(pool), pg.NewTXManager(pool)); err != nil {
		return err
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startDispatcher(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) wire(cfg *config.Config, conn pg.Database, txManager pg.TXManager) error {
	repos, err := repo.New(conn, cfg.ProfileCacheSize)
	if err != nil {
		return fmt.Errorf("can't build repositories: %w", err)
	}

	a.cfg = cfg
	a.repo = repos
	a.metrics = metrics.NewRegistry()
	a.srv = service.New(
		a.repo,
		txManager,
		payout.New(cfg, clients.NewHTTPClient()),
		metrics.NewLedgerMetrics(a.metrics),
	)
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret), a.metrics.Handler())

	if cfg.WebhookURL != "" {
		a.ext = dispatcher.New(cfg, a.srv.EventService, clients.NewHTTPClient(), metrics.NewDispatchMetrics(a.metrics))
	}
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startDispatcher(ctx context.Context) {
	if a.ext == nil {
		zap.L().Info("observer webhook not configured, event dispatch disabled")
		return
	}
	a.ext.Start(ctx)
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
