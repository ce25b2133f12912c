package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/authority-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAuthority inserts an authority built from label, created now.
func SeedAuthority(t *testing.T, pool *pgxpool.Pool, kind domain.AuthorityKind, label string) domain.Authority {
	t.Helper()
	return SeedAuthorityAt(t, pool, kind, label, time.Now().UTC().Truncate(time.Microsecond))
}

// SeedAuthorityAt inserts an authority with an explicit creation time.
func SeedAuthorityAt(t *testing.T, pool *pgxpool.Pool, kind domain.AuthorityKind, label string, created time.Time) domain.Authority {
	t.Helper()

	a := domain.NewAuthority(kind, label, created.UTC().Truncate(time.Microsecond))
	_, err := pool.Exec(context.Background(),
		`INSERT INTO authorities (id, kind, label, canonical_key, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, string(a.Kind), a.Label, a.CanonicalKey, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAuthority insert: %v", err)
	}
	return a
}

// SeedRef links a new random document to the authority under role.
func SeedRef(t *testing.T, pool *pgxpool.Pool, authorityID uuid.UUID, role string) domain.AuthorityRef {
	t.Helper()
	return SeedRefFor(t, pool, authorityID, uuid.New(), role)
}

// SeedRefFor links documentID to the authority under role.
func SeedRefFor(t *testing.T, pool *pgxpool.Pool, authorityID, documentID uuid.UUID, role string) domain.AuthorityRef {
	t.Helper()

	ref := domain.AuthorityRef{
		ID:          uuid.New(),
		AuthorityID: authorityID,
		DocumentID:  documentID,
		Role:        role,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO authority_refs (id, authority_id, document_id, role, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		ref.ID, ref.AuthorityID, ref.DocumentID, ref.Role, ref.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRef insert: %v", err)
	}
	return ref
}
