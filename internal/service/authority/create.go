package authority

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/authority-backend/internal/domain"
)

// Create adds an authority. Unless duplicates are allowed, an existing
// authority of the same kind with the same canonical key yields a
// *domain.DuplicateAuthorityError naming it.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Authority, error) {
	if err := input.Validate(s.cfg.MaxLabelLength); err != nil {
		return domain.Authority{}, err
	}

	a := domain.NewAuthority(input.Kind, input.Label, s.now())

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if !s.cfg.AllowDuplicates {
			if err := s.ensureUnique(txCtx, a.Kind, a.CanonicalKey, a.ID); err != nil {
				return err
			}
		}

		created, err := s.authorities.Create(txCtx, a)
		if err != nil {
			return fmt.Errorf("create authority: %w", err)
		}
		a = created
		return nil
	})
	if err != nil {
		return domain.Authority{}, err
	}

	s.log.InfoContext(ctx, "authority created",
		slog.String("authority_id", a.ID.String()),
		slog.String("kind", a.Kind.String()),
		slog.String("canonical_key", a.CanonicalKey),
	)

	return a, nil
}

// ensureUnique serialises writers of (kind, key) and fails when another
// authority than self already holds the key.
func (s *Service) ensureUnique(ctx context.Context, kind domain.AuthorityKind, key string, self uuid.UUID) error {
	if err := s.authorities.LockKey(ctx, kind, key); err != nil {
		return err
	}

	existing, err := s.authorities.ListByKey(ctx, kind, key)
	if err != nil {
		return fmt.Errorf("check equivalents: %w", err)
	}
	for _, e := range existing {
		if e.ID != self {
			return &domain.DuplicateAuthorityError{ExistingID: e.ID, CanonicalKey: key}
		}
	}
	return nil
}

// lockKeys locks several keys of one kind in sorted order, so two writers
// locking overlapping keys cannot deadlock.
func (s *Service) lockKeys(ctx context.Context, kind domain.AuthorityKind, keys ...string) error {
	keys = slices.Clone(keys)
	slices.Sort(keys)
	for _, key := range slices.Compact(keys) {
		if err := s.authorities.LockKey(ctx, kind, key); err != nil {
			return err
		}
	}
	return nil
}
