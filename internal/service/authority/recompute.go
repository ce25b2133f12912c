package authority

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/authority-backend/internal/domain"
)

// RecomputeKeys walks every authority in id order, in batches of the
// configured size, and rewrites canonical keys that no longer match the
// current normalization rule. Each batch is written in one round-trip.
func (s *Service) RecomputeKeys(ctx context.Context) (*RecomputeResult, error) {
	res := &RecomputeResult{}
	after := uuid.Nil
	batch := s.cfg.KeyBatchSize

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		page, err := s.authorities.ListKeysAfter(ctx, after, batch)
		if err != nil {
			return res, fmt.Errorf("list keys after %s: %w", after, err)
		}
		if len(page) == 0 {
			break
		}
		res.Scanned += len(page)

		var updates []domain.KeyUpdate
		for _, lk := range page {
			if upd, stale := lk.Stale(); stale {
				updates = append(updates, upd)
			}
		}

		if len(updates) > 0 {
			n, err := s.authorities.UpdateKeys(ctx, updates)
			if err != nil {
				return res, fmt.Errorf("update keys: %w", err)
			}
			res.Updated += n
		}

		after = page[len(page)-1].ID
		if len(page) < batch {
			break
		}
	}

	s.log.InfoContext(ctx, "canonical keys recomputed",
		slog.Int("scanned", res.Scanned),
		slog.Int("updated", res.Updated),
	)

	return res, nil
}
