package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/authority-backend/internal/config"
	"github.com/heartmarshall/authority-backend/internal/service/authority"
	"github.com/heartmarshall/authority-backend/migrations"
)

// startupHook is one step run before the server accepts traffic.
type startupHook struct {
	name string
	run  func(ctx context.Context) error
}

type keyRecomputer interface {
	RecomputeKeys(ctx context.Context) (*authority.RecomputeResult, error)
}

// startupHooks selects the hooks enabled by cfg: schema migration first,
// then canonical key recomputation.
func startupHooks(cfg *config.Config, logger *slog.Logger, db *sql.DB, keys keyRecomputer) []startupHook {
	var hooks []startupHook

	if cfg.Migrations.AutoMigrate {
		hooks = append(hooks, startupHook{
			name: "migrate",
			run: func(ctx context.Context) error {
				applied, err := migrations.Up(ctx, db, logger)
				if err != nil {
					return err
				}
				logger.InfoContext(ctx, "schema up to date", slog.Int("applied", applied))
				return nil
			},
		})
	}

	if cfg.Authority.RecomputeOnStart {
		hooks = append(hooks, startupHook{
			name: "recompute-keys",
			run: func(ctx context.Context) error {
				_, err := keys.RecomputeKeys(ctx)
				return err
			},
		})
	}

	return hooks
}

// runHooks runs hooks in order and stops at the first failure.
func runHooks(ctx context.Context, logger *slog.Logger, hooks []startupHook) error {
	for _, h := range hooks {
		start := time.Now()
		if err := h.run(ctx); err != nil {
			return fmt.Errorf("startup hook %s: %w", h.name, err)
		}
		logger.InfoContext(ctx, "startup hook done",
			slog.String("hook", h.name),
			slog.Duration("duration", time.Since(start)),
		)
	}
	return nil
}

// schemaState reports pending migrations to the health endpoint.
type schemaState struct {
	db *sql.DB
}

func (s schemaState) Pending(ctx context.Context) (int, error) {
	return migrations.Pending(ctx, s.db)
}
