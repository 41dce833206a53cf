package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ite2blog/app/config"
	"ite2blog/app/logging"
	"ite2blog/app/repositories"
	"ite2blog/app/routes"

	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// App is one running instance of the blog service: the store it owns and the
// HTTP handler in front of it.
type App struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Store   repositories.Store
	Handler http.Handler
}

// NewApp builds the logger, opens and seeds the store and mounts the routes.
func NewApp(cfg *config.Config) (*App, error) {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	return NewAppWithLogger(cfg, logger)
}

func NewAppWithLogger(cfg *config.Config, logger *logrus.Logger) (*App, error) {
	store, err := repositories.Open(cfg.Store.Driver, repositories.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if cfg.Store.Seed {
		if err := repositories.Seed(store); err != nil {
			store.Close()
			return nil, err
		}
	}
	logger.WithFields(logrus.Fields{
		"driver": cfg.Store.Driver,
		"seeded": cfg.Store.Seed,
	}).Info("store ready")

	return &App{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Handler: routes.NewHandler(store, logger),
	}, nil
}

// Run serves HTTP on the configured port until ctx is cancelled, then drains
// in-flight requests and closes the store.
func (a *App) Run(ctx context.Context) error {
	defer a.Store.Close()

	srv := &http.Server{
		Addr:              a.Config.Addr(),
		Handler:           a.Handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Infof("Starting blog API on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
