package authority

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/authority-backend/internal/domain"
)

const (
	defaultMergeListLimit = 50
	maxMergeListLimit     = 500
)

// ListDuplicates returns the groups of equivalent authorities, optionally
// restricted to one kind.
func (s *Service) ListDuplicates(ctx context.Context, kind *domain.AuthorityKind) ([]domain.DuplicateGroup, error) {
	if kind != nil && !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be one of PERSON, PLACE, SUBJECT")
	}

	candidates, err := s.authorities.ListDuplicateCandidates(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list duplicate candidates: %w", err)
	}
	return domain.GroupDuplicates(candidates), nil
}

// Merge collapses every duplicate group into its survivor: references move to
// the survivor, duplicates are deleted and each one is logged. Every group is
// merged in its own transaction; on failure the report covers the groups
// already committed. A dry run only reports.
func (s *Service) Merge(ctx context.Context, input MergeInput) (*MergeReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	groups, err := s.ListDuplicates(ctx, input.Kind)
	if err != nil {
		return nil, err
	}

	report := &MergeReport{DryRun: input.DryRun, Groups: []MergedGroup{}}
	if len(groups) > s.cfg.MaxMergeGroupsPerRun {
		groups = groups[:s.cfg.MaxMergeGroupsPerRun]
		report.Truncated = true
	}

	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		var (
			mg    MergedGroup
			stale bool
		)
		if input.DryRun {
			mg, err = s.previewGroup(ctx, g)
		} else {
			mg, stale, err = s.mergeGroup(ctx, g)
		}
		if err != nil {
			return report, fmt.Errorf("merge %s/%q: %w", g.Kind, g.CanonicalKey, err)
		}
		if stale {
			report.Skipped++
			continue
		}

		report.Groups = append(report.Groups, mg)
		report.Merged += len(mg.MergedIDs)
		report.RefsMoved += mg.RefsMoved
	}

	s.log.InfoContext(ctx, "merge finished",
		slog.Bool("dry_run", input.DryRun),
		slog.Int("groups", len(report.Groups)),
		slog.Int("merged", report.Merged),
		slog.Int("refs_moved", report.RefsMoved),
		slog.Int("skipped", report.Skipped),
		slog.Bool("truncated", report.Truncated),
	)

	return report, nil
}

func newMergedGroup(g domain.DuplicateGroup) MergedGroup {
	return MergedGroup{
		Kind:         g.Kind,
		CanonicalKey: g.CanonicalKey,
		SurvivorID:   g.Survivor.ID,
		Survivor:     g.Survivor.Label,
		MergedIDs:    g.DuplicateIDs(),
	}
}

// previewGroup counts the references a merge would move. References the
// survivor already holds are counted too, so RefsMoved is an upper bound.
func (s *Service) previewGroup(ctx context.Context, g domain.DuplicateGroup) (MergedGroup, error) {
	mg := newMergedGroup(g)
	for _, d := range g.Duplicates {
		n, err := s.refs.CountByAuthority(ctx, d.ID)
		if err != nil {
			return mg, err
		}
		mg.RefsMoved += n
	}
	return mg, nil
}

// mergeGroup merges one group inside a transaction holding the lock on its
// key. The group is re-read under the lock and only members that were listed
// and still share the key are merged; stale reports a group that no longer
// has duplicates.
func (s *Service) mergeGroup(ctx context.Context, listed domain.DuplicateGroup) (mg MergedGroup, stale bool, err error) {
	now := s.now()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.authorities.LockKey(txCtx, listed.Kind, listed.CanonicalKey); err != nil {
			return err
		}
		current, err := s.authorities.ListByKey(txCtx, listed.Kind, listed.CanonicalKey)
		if err != nil {
			return fmt.Errorf("re-read group: %w", err)
		}

		g, ok := confirmGroup(listed, current)
		if !ok {
			stale = true
			return nil
		}
		mg = newMergedGroup(g)

		logs := make([]domain.AuthorityMerge, 0, len(g.Duplicates))
		for _, d := range g.Duplicates {
			moved, dropped, err := s.refs.Redirect(txCtx, d.ID, g.Survivor.ID)
			if err != nil {
				return fmt.Errorf("redirect refs of %s: %w", d.ID, err)
			}
			mg.RefsMoved += moved
			mg.RefsDropped += dropped

			logs = append(logs, domain.AuthorityMerge{
				ID:           uuid.New(),
				Kind:         g.Kind,
				CanonicalKey: g.CanonicalKey,
				SurvivorID:   g.Survivor.ID,
				MergedID:     d.ID,
				MergedLabel:  d.Label,
				RefsMoved:    moved,
				CreatedAt:    now,
			})
		}

		deleted, err := s.authorities.DeleteByIDs(txCtx, mg.MergedIDs)
		if err != nil {
			return fmt.Errorf("delete duplicates: %w", err)
		}
		if deleted != len(mg.MergedIDs) {
			return fmt.Errorf("delete duplicates: %d of %d rows deleted: %w",
				deleted, len(mg.MergedIDs), domain.ErrConflict)
		}
		if err := s.merges.Log(txCtx, logs...); err != nil {
			return fmt.Errorf("log merges: %w", err)
		}
		return nil
	})
	if err != nil {
		return MergedGroup{}, false, err
	}

	if stale {
		s.log.InfoContext(ctx, "duplicate group changed before merge, skipped",
			slog.String("kind", listed.Kind.String()),
			slog.String("canonical_key", listed.CanonicalKey),
		)
		return MergedGroup{}, true, nil
	}

	s.log.InfoContext(ctx, "duplicates merged",
		slog.String("kind", mg.Kind.String()),
		slog.String("canonical_key", mg.CanonicalKey),
		slog.String("survivor_id", mg.SurvivorID.String()),
		slog.Int("merged", len(mg.MergedIDs)),
		slog.Int("refs_moved", mg.RefsMoved),
	)

	return mg, false, nil
}

// confirmGroup rebuilds a listed group from the rows currently holding its
// key. Rows added since listing are left alone; ok is false when fewer than
// two listed members remain.
func confirmGroup(listed domain.DuplicateGroup, current []domain.Authority) (domain.DuplicateGroup, bool) {
	members := make(map[uuid.UUID]struct{}, len(listed.Duplicates)+1)
	members[listed.Survivor.ID] = struct{}{}
	for _, d := range listed.Duplicates {
		members[d.ID] = struct{}{}
	}

	kept := make([]domain.Authority, 0, len(current))
	for _, a := range current {
		if _, ok := members[a.ID]; ok && a.Kind == listed.Kind && a.CanonicalKey == listed.CanonicalKey {
			kept = append(kept, a)
		}
	}

	groups := domain.GroupDuplicates(kept)
	if len(groups) != 1 {
		return domain.DuplicateGroup{}, false
	}
	return groups[0], true
}

// ListMerges returns the most recent merge log records.
func (s *Service) ListMerges(ctx context.Context, limit int) ([]domain.AuthorityMerge, error) {
	switch {
	case limit <= 0:
		limit = defaultMergeListLimit
	case limit > maxMergeListLimit:
		limit = maxMergeListLimit
	}
	return s.merges.ListRecent(ctx, limit)
}
