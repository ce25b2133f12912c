// Package authority implements authority index operations: creation with
// equivalence checks, lookup, renaming, document references, duplicate
// merging and canonical key maintenance.
package authority

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/authority-backend/internal/config"
	"github.com/heartmarshall/authority-backend/internal/domain"
)

type authorityRepo interface {
	Create(ctx context.Context, a domain.Authority) (domain.Authority, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Authority, error)
	List(ctx context.Context, filter domain.AuthorityFilter) ([]domain.Authority, int, error)
	ListByKey(ctx context.Context, kind domain.AuthorityKind, key string) ([]domain.Authority, error)
	UpdateLabel(ctx context.Context, id uuid.UUID, label, key string) (domain.Authority, error)
	LockKey(ctx context.Context, kind domain.AuthorityKind, key string) error
	Count(ctx context.Context, kind *domain.AuthorityKind) (int, error)

	// Deduplication and key maintenance
	ListDuplicateCandidates(ctx context.Context, kind *domain.AuthorityKind) ([]domain.Authority, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int, error)
	ListKeysAfter(ctx context.Context, after uuid.UUID, limit int) ([]domain.LabelKey, error)
	UpdateKeys(ctx context.Context, updates []domain.KeyUpdate) (int, error)
}

type refRepo interface {
	Create(ctx context.Context, ref domain.AuthorityRef) (domain.AuthorityRef, error)
	ListByAuthority(ctx context.Context, authorityID uuid.UUID) ([]domain.AuthorityRef, error)
	CountByAuthority(ctx context.Context, authorityID uuid.UUID) (int, error)
	Redirect(ctx context.Context, from, to uuid.UUID) (moved, dropped int, err error)
}

type mergeLog interface {
	Log(ctx context.Context, merges ...domain.AuthorityMerge) error
	ListRecent(ctx context.Context, limit int) ([]domain.AuthorityMerge, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides authority management operations.
type Service struct {
	authorities authorityRepo
	refs        refRepo
	merges      mergeLog
	tx          txManager
	cfg         config.AuthorityConfig
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new Authority service.
func NewService(
	log *slog.Logger,
	authorities authorityRepo,
	refs refRepo,
	merges mergeLog,
	tx txManager,
	cfg config.AuthorityConfig,
) *Service {
	return &Service{
		authorities: authorities,
		refs:        refs,
		merges:      merges,
		tx:          tx,
		cfg:         cfg,
		log:         log.With("service", "authority"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Canonicalize returns the canonical key of a free-text label.
func (s *Service) Canonicalize(label string) string {
	return domain.NormalizeEntry(label)
}
