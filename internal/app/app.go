package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/authority-backend/internal/adapter/postgres"
	"github.com/heartmarshall/authority-backend/internal/config"
	"github.com/heartmarshall/authority-backend/internal/transport/middleware"
	"github.com/heartmarshall/authority-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration from configPath
// (or CONFIG_PATH when empty), connects to the database, runs the startup
// hooks and serves the REST API until ctx is cancelled.
func Run(ctx context.Context, configPath string) error {
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	return run(ctx, cfg)
}

func run(ctx context.Context, cfg *config.Config) error {
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

	db := postgres.OpenDB(pool)
	defer db.Close()

	svc := NewServices(logger, cfg, pool)

	if err := runHooks(ctx, logger, startupHooks(cfg, logger, db, svc.Authority)); err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := newHandler(cfg, logger, pool, db, svc, limiter)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	if err := serve(ctx, logger, srv, ln, cfg.Server.ShutdownTimeout); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// newHandler assembles the REST router and its middleware chain.
func newHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, db *sql.DB, svc *Services, limiter *middleware.RateLimiter) http.Handler {
	return rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, schemaState{db: db}, BuildVersion()),
		Normalize: rest.NewNormalizeHandler(svc.Authority.Canonicalize),
		Authority: rest.NewAuthorityHandler(svc.Authority, logger),
		Admin:     rest.NewAdminHandler(svc.Authority, logger),
	}, rest.RouterOptions{
		Global: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.ForwardedHeaders(cfg.Proxy),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(svc.Tokens),
		},
		NormalizeLimit: limiter.Limit(cfg.RateLimit.NormalizePerMinute),
	})
}
