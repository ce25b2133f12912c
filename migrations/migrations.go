// Package migrations holds the versioned database schema: embedded SQL files
// plus Go migrations that need application code.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var sqlFiles embed.FS

// NewProvider returns a goose provider over the embedded SQL files and the
// registered Go migrations.
func NewProvider(db *sql.DB) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, sqlFiles,
		goose.WithGoMigrations(backfillKeys()),
	)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, nil
}

// Up applies every pending migration and logs each applied version.
// It returns the number of migrations applied.
func Up(ctx context.Context, db *sql.DB, log *slog.Logger) (int, error) {
	provider, err := NewProvider(db)
	if err != nil {
		return 0, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		log.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("type", string(r.Source.Type)),
			slog.String("path", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	return len(results), nil
}

// State is the applied/pending status of one migration version.
type State struct {
	Version int64
	Source  string
	Applied bool
}

// Status reports every known migration in version order.
func Status(ctx context.Context, db *sql.DB) ([]State, error) {
	provider, err := NewProvider(db)
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}

	states := make([]State, len(statuses))
	for i, s := range statuses {
		source := s.Source.Path
		if source == "" {
			source = string(s.Source.Type)
		}
		states[i] = State{
			Version: s.Source.Version,
			Source:  source,
			Applied: s.State == goose.StateApplied,
		}
	}
	return states, nil
}

// Pending counts the migrations Up would apply.
func Pending(ctx context.Context, db *sql.DB) (int, error) {
	states, err := Status(ctx, db)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, s := range states {
		if !s.Applied {
			n++
		}
	}
	return n, nil
}
