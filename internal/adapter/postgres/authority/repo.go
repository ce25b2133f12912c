// Package authority implements the Authority repository using PostgreSQL.
package authority

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/authority-backend/internal/adapter/postgres"
	"github.com/heartmarshall/authority-backend/internal/domain"
)

// Repo provides authority persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new authority repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = "id, kind, label, canonical_key, created_at, updated_at"

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO authorities (id, kind, label, canonical_key, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + columns

const getByIDSQL = `SELECT ` + columns + ` FROM authorities WHERE id = $1`

const listByKeySQL = `
SELECT ` + columns + `
FROM authorities
WHERE kind = $1 AND canonical_key = $2
ORDER BY created_at, id`

const updateLabelSQL = `
UPDATE authorities
SET label = $2, canonical_key = $3, updated_at = now()
WHERE id = $1
RETURNING ` + columns

const duplicateCandidatesSQL = `
SELECT ` + columns + `
FROM authorities a
WHERE canonical_key <> ''
  AND ($1::text IS NULL OR kind = $1)
  AND EXISTS (
      SELECT 1 FROM authorities b
      WHERE b.kind = a.kind AND b.canonical_key = a.canonical_key AND b.id <> a.id
  )
ORDER BY kind, canonical_key, created_at, id`

const keysAfterSQL = `
SELECT id, label, canonical_key
FROM authorities
WHERE id > $1
ORDER BY id
LIMIT $2`

const lockKeySQL = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

const updateKeySQL = `UPDATE authorities SET canonical_key = $2, updated_at = now() WHERE id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an authority and returns the stored row.
func (r *Repo) Create(ctx context.Context, a domain.Authority) (domain.Authority, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, insertSQL, a.ID, string(a.Kind), a.Label, a.CanonicalKey, a.CreatedAt, a.UpdatedAt)
	created, err := scanAuthority(row)
	if err != nil {
		return domain.Authority{}, postgres.MapError(err, "authority", a.ID)
	}
	return created, nil
}

// UpdateLabel replaces the label and canonical key of an authority.
func (r *Repo) UpdateLabel(ctx context.Context, id uuid.UUID, label, key string) (domain.Authority, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanAuthority(q.QueryRow(ctx, updateLabelSQL, id, label, key))
	if err != nil {
		return domain.Authority{}, postgres.MapError(err, "authority", id)
	}
	return updated, nil
}

// UpdateKeys writes recomputed canonical keys in one batch round-trip.
// Returns the number of rows updated.
func (r *Repo) UpdateKeys(ctx context.Context, updates []domain.KeyUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(updateKeySQL, u.ID, u.CanonicalKey)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	updated := 0
	for _, u := range updates {
		tag, err := results.Exec()
		if err != nil {
			return updated, postgres.MapError(err, "authority", u.ID)
		}
		updated += int(tag.RowsAffected())
	}

	return updated, nil
}

// LockKey takes a transaction-scoped advisory lock on (kind, key) so that
// concurrent writers of the same canonical key serialise. It must run inside
// a transaction; outside one the lock is released immediately.
func (r *Repo) LockKey(ctx context.Context, kind domain.AuthorityKind, key string) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, lockKeySQL, string(kind)+"/"+key)
	if err != nil {
		return fmt.Errorf("lock key %s/%s: %w", kind, key, err)
	}
	return nil
}

// DeleteByIDs removes authorities; their references are removed by cascade.
// Returns the number of rows deleted.
func (r *Repo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := postgres.Builder().
		Delete("authorities").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete authorities: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete authorities: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an authority by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Authority, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAuthority(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.Authority{}, postgres.MapError(err, "authority", id)
	}
	return a, nil
}

// ListByKey returns every authority of kind whose canonical key equals key,
// oldest first. Returns an empty slice (not nil) when none match.
func (r *Repo) ListByKey(ctx context.Context, kind domain.AuthorityKind, key string) ([]domain.Authority, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByKeySQL, string(kind), key)
	if err != nil {
		return nil, fmt.Errorf("list authorities by key: %w", err)
	}
	return collectAuthorities(rows)
}

// List returns a page of authorities matching the filter and the total
// number of matches. The filter must already be normalized.
func (r *Repo) List(ctx context.Context, filter domain.AuthorityFilter) ([]domain.Authority, int, error) {
	where := filterConditions(filter)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From("authorities").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count authorities: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count authorities: %w", err)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns).
		From("authorities").
		Where(where).
		OrderBy(filter.SortBy+" "+filter.SortOrder, "id "+filter.SortOrder).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list authorities: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list authorities: %w", err)
	}
	items, err := collectAuthorities(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListDuplicateCandidates returns every authority whose (kind, canonical key)
// is shared with at least one other row. A nil kind covers every kind.
func (r *Repo) ListDuplicateCandidates(ctx context.Context, kind *domain.AuthorityKind) ([]domain.Authority, error) {
	var kindArg *string
	if kind != nil {
		k := string(*kind)
		kindArg = &k
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, duplicateCandidatesSQL, kindArg)
	if err != nil {
		return nil, fmt.Errorf("list duplicate candidates: %w", err)
	}
	return collectAuthorities(rows)
}

// ListKeysAfter returns up to limit (id, label, key) triples with id > after,
// ordered by id. Used for keyset-paginated key recomputation.
func (r *Repo) ListKeysAfter(ctx context.Context, after uuid.UUID, limit int) ([]domain.LabelKey, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, keysAfterSQL, after, limit)
	if err != nil {
		return nil, fmt.Errorf("list keys after %s: %w", after, err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LabelKey, error) {
		var lk domain.LabelKey
		err := row.Scan(&lk.ID, &lk.Label, &lk.CanonicalKey)
		return lk, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan keys: %w", err)
	}
	return items, nil
}

// Count returns the number of authorities, optionally restricted to one kind.
func (r *Repo) Count(ctx context.Context, kind *domain.AuthorityKind) (int, error) {
	b := postgres.Builder().Select("count(*)").From("authorities")
	if kind != nil {
		b = b.Where(sq.Eq{"kind": string(*kind)})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count authorities: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count authorities: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func filterConditions(f domain.AuthorityFilter) sq.And {
	where := sq.And{}
	if f.Kind != nil {
		where = append(where, sq.Eq{"kind": string(*f.Kind)})
	}
	if key := domain.NormalizeEntry(f.Search); key != "" {
		for _, word := range strings.Split(key, " ") {
			where = append(where, sq.Like{"canonical_key": "%" + escapeLike(word) + "%"})
		}
	}
	return where
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanAuthority(row pgx.Row) (domain.Authority, error) {
	var (
		a    domain.Authority
		kind string
	)
	if err := row.Scan(&a.ID, &kind, &a.Label, &a.CanonicalKey, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Authority{}, err
	}
	a.Kind = domain.AuthorityKind(kind)
	return a, nil
}

func collectAuthorities(rows pgx.Rows) ([]domain.Authority, error) {
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Authority, error) {
		return scanAuthority(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan authorities: %w", err)
	}
	if items == nil {
		items = []domain.Authority{}
	}
	return items, nil
}
