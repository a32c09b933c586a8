package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/pantry-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pantry-backend/internal/adapter/postgres/pantryitem"
	"github.com/heartmarshall/pantry-backend/internal/adapter/postgres/pricehistory"
	"github.com/heartmarshall/pantry-backend/internal/adapter/postgres/recommendation"
	"github.com/heartmarshall/pantry-backend/internal/adapter/postgres/shopping"
	"github.com/heartmarshall/pantry-backend/internal/auth"
	"github.com/heartmarshall/pantry-backend/internal/config"
	"github.com/heartmarshall/pantry-backend/internal/notify"
	dashboardsvc "github.com/heartmarshall/pantry-backend/internal/service/dashboard"
	pantrysvc "github.com/heartmarshall/pantry-backend/internal/service/pantry"
	pricingsvc "github.com/heartmarshall/pantry-backend/internal/service/pricing"
	recommendationsvc "github.com/heartmarshall/pantry-backend/internal/service/recommendation"
	shoppingsvc "github.com/heartmarshall/pantry-backend/internal/service/shopping"
	"github.com/heartmarshall/pantry-backend/internal/transport/middleware"
	"github.com/heartmarshall/pantry-backend/internal/transport/rest"
)

// Run loads configuration, connects to PostgreSQL and serves the HTTP API
// until ctx is cancelled. In-flight requests get server.shutdown_timeout to
// finish.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newHandler(cfg, pool, limiter, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

// newHandler wires repositories, services and handlers into the router.
func newHandler(cfg *config.Config, db *pgxpool.Pool, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	items := pantryitem.New(db)
	prices := pricehistory.New(db)
	entries := shopping.New(db)
	recs := recommendation.New(db)
	tx := postgres.NewTxManager(db)

	notifier := notify.NewLogDispatcher(logger)

	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(db, BuildVersion()),
		Pantry: rest.NewPantryHandler(
			pantrysvc.NewService(logger, items, prices, entries, tx, cfg.Pantry), notifier, logger),
		Shopping: rest.NewShoppingHandler(
			shoppingsvc.NewService(logger, entries), notifier, logger),
		Recommendations: rest.NewRecommendationHandler(
			recommendationsvc.NewService(logger, recs, entries, tx), notifier, logger),
		Pricing: rest.NewPricingHandler(
			pricingsvc.NewService(logger, items, prices), logger),
		Dashboard: rest.NewDashboardHandler(
			dashboardsvc.NewService(logger, items, entries, recs, cfg.Pantry), logger),
	}

	return rest.NewRouter(handlers,
		middleware.Auth(auth.NewTokenValidator(cfg.Auth)),
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Middleware(),
	)
}
