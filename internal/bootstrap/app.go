package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"faqpilot/internal/domain/qa"
	"faqpilot/internal/infra/config"
)

// App encapsulates the HTTP server lifecycle.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
	svc    qa.Service
	seed   []qa.FAQEntry
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, svc qa.Service, seed []qa.FAQEntry) *App {
	return &App{
		cfg:    cfg,
		logger: logger.With("component", "bootstrap"),
		server: server,
		svc:    svc,
		seed:   seed,
	}
}

// Run primes the embedding cache, then starts the HTTP server and blocks
// until shutdown.
func (a *App) Run(ctx context.Context) error {
	a.primeCache(ctx)

	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// primeCache embeds the seed set before serving. A failure leaves the cache
// partially primed and is logged rather than fatal: the external fallback
// still answers every question, and POST /api/v1/prime can retry later.
func (a *App) primeCache(ctx context.Context) {
	primeCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	if err := a.svc.PrimeCache(primeCtx, a.seed); err != nil {
		a.logger.Error("seed priming failed", "error", err)
		return
	}
}
