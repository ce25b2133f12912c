// Package merge stores the log of duplicate authorities collapsed into a survivor.
package merge

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/authority-backend/internal/adapter/postgres"
	"github.com/heartmarshall/authority-backend/internal/domain"
)

// Repo provides merge log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new merge log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO authority_merges (id, kind, canonical_key, survivor_id, merged_id, merged_label, refs_moved, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const listRecentSQL = `
SELECT id, kind, canonical_key, survivor_id, merged_id, merged_label, refs_moved, created_at
FROM authority_merges
ORDER BY created_at DESC, id
LIMIT $1`

// Log appends merge records in one round-trip.
func (r *Repo) Log(ctx context.Context, merges ...domain.AuthorityMerge) error {
	if len(merges) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	batch := &pgx.Batch{}
	for _, m := range merges {
		batch.Queue(insertSQL,
			m.ID, string(m.Kind), m.CanonicalKey, m.SurvivorID, m.MergedID, m.MergedLabel, m.RefsMoved, m.CreatedAt)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for _, m := range merges {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "authority_merge", m.ID)
		}
	}
	return nil
}

// ListRecent returns the newest merge records first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.AuthorityMerge, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listRecentSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list merges: %w", err)
	}

	merges, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuthorityMerge, error) {
		var (
			m    domain.AuthorityMerge
			kind string
		)
		err := row.Scan(&m.ID, &kind, &m.CanonicalKey, &m.SurvivorID, &m.MergedID, &m.MergedLabel, &m.RefsMoved, &m.CreatedAt)
		m.Kind = domain.AuthorityKind(kind)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan merges: %w", err)
	}
	if merges == nil {
		merges = []domain.AuthorityMerge{}
	}
	return merges, nil
}
