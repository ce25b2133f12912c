package authority

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/authority-backend/internal/domain"
)

// ListResult contains one page of authorities.
type ListResult struct {
	Items       []domain.Authority
	TotalCount  int
	HasNextPage bool
}

// MergedGroup describes one duplicate group collapsed (or, in a dry run,
// that would be collapsed) into its survivor.
type MergedGroup struct {
	Kind         domain.AuthorityKind
	CanonicalKey string
	SurvivorID   uuid.UUID
	Survivor     string
	MergedIDs    []uuid.UUID
	RefsMoved    int
	RefsDropped  int
}

// MergeReport summarises a merge run.
type MergeReport struct {
	DryRun    bool
	Groups    []MergedGroup
	Merged    int
	RefsMoved int
	// Skipped counts groups that no longer had duplicates once locked.
	Skipped int
	// Truncated is set when more groups exist than one run may process.
	Truncated bool
}

// RecomputeResult summarises a canonical key recomputation.
type RecomputeResult struct {
	Scanned int
	Updated int
}

// Stats counts authorities per kind.
type Stats struct {
	Total  int
	ByKind map[domain.AuthorityKind]int
}
