package authority

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/authority-backend/internal/domain"
)

// Rename replaces the label of an authority and recomputes its canonical key.
// The same uniqueness rule as Create applies to the new key.
func (s *Service) Rename(ctx context.Context, input RenameInput) (domain.Authority, error) {
	if err := input.Validate(s.cfg.MaxLabelLength); err != nil {
		return domain.Authority{}, err
	}

	label := domain.NormalizeText(input.Label)
	key := domain.NormalizeEntry(label)

	var (
		before  domain.Authority
		updated domain.Authority
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		before, err = s.authorities.GetByID(txCtx, input.ID)
		if err != nil {
			return err
		}

		if key != before.CanonicalKey {
			// Both keys are locked so a merge of either group re-reads a
			// settled row.
			if err := s.lockKeys(txCtx, before.Kind, before.CanonicalKey, key); err != nil {
				return err
			}
			if !s.cfg.AllowDuplicates {
				if err := s.ensureUnique(txCtx, before.Kind, key, before.ID); err != nil {
					return err
				}
			}
		}

		updated, err = s.authorities.UpdateLabel(txCtx, input.ID, label, key)
		if err != nil {
			return fmt.Errorf("update label: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Authority{}, err
	}

	s.log.InfoContext(ctx, "authority renamed",
		slog.String("authority_id", updated.ID.String()),
		slog.String("old_key", before.CanonicalKey),
		slog.String("new_key", updated.CanonicalKey),
	)

	return updated, nil
}
