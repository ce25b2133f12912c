// Package reference implements persistence for document references to
// authorities.
package reference

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/authority-backend/internal/adapter/postgres"
	"github.com/heartmarshall/authority-backend/internal/domain"
)

// Repo provides reference persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reference repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO authority_refs (id, authority_id, document_id, role, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, authority_id, document_id, role, created_at`

const listByAuthoritySQL = `
SELECT id, authority_id, document_id, role, created_at
FROM authority_refs
WHERE authority_id = $1
ORDER BY created_at, id`

const countByAuthoritySQL = `SELECT count(*) FROM authority_refs WHERE authority_id = $1`

// Refs of from that the target already has (same document and role) would
// violate uq_authority_refs once moved, so they are dropped first.
const dropShadowedSQL = `
DELETE FROM authority_refs r
WHERE r.authority_id = $1
  AND EXISTS (
      SELECT 1 FROM authority_refs t
      WHERE t.authority_id = $2 AND t.document_id = r.document_id AND t.role = r.role
  )`

const moveSQL = `UPDATE authority_refs SET authority_id = $2 WHERE authority_id = $1`

// Create inserts a reference. A second reference with the same authority,
// document and role returns domain.ErrAlreadyExists; an unknown authority
// returns domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, ref domain.AuthorityRef) (domain.AuthorityRef, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.AuthorityRef
	err := q.QueryRow(ctx, insertSQL, ref.ID, ref.AuthorityID, ref.DocumentID, ref.Role, ref.CreatedAt).
		Scan(&out.ID, &out.AuthorityID, &out.DocumentID, &out.Role, &out.CreatedAt)
	if err != nil {
		return domain.AuthorityRef{}, postgres.MapError(err, "authority_ref", ref.ID)
	}
	return out, nil
}

// ListByAuthority returns the references of one authority, oldest first.
func (r *Repo) ListByAuthority(ctx context.Context, authorityID uuid.UUID) ([]domain.AuthorityRef, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByAuthoritySQL, authorityID)
	if err != nil {
		return nil, fmt.Errorf("list refs of %s: %w", authorityID, err)
	}

	refs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuthorityRef, error) {
		var ref domain.AuthorityRef
		err := row.Scan(&ref.ID, &ref.AuthorityID, &ref.DocumentID, &ref.Role, &ref.CreatedAt)
		return ref, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan refs: %w", err)
	}
	if refs == nil {
		refs = []domain.AuthorityRef{}
	}
	return refs, nil
}

// CountByAuthority returns how many references point at the authority.
func (r *Repo) CountByAuthority(ctx context.Context, authorityID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countByAuthoritySQL, authorityID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count refs of %s: %w", authorityID, err)
	}
	return n, nil
}

// Redirect moves every reference of from onto to. References that to
// already holds are dropped instead of moved. Both statements run in the
// caller's transaction when there is one.
func (r *Repo) Redirect(ctx context.Context, from, to uuid.UUID) (moved, dropped int, err error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, dropShadowedSQL, from, to)
	if err != nil {
		return 0, 0, fmt.Errorf("drop shadowed refs of %s: %w", from, err)
	}
	dropped = int(tag.RowsAffected())

	tag, err = q.Exec(ctx, moveSQL, from, to)
	if err != nil {
		return 0, dropped, postgres.MapError(err, "authority_ref", from)
	}
	return int(tag.RowsAffected()), dropped, nil
}
