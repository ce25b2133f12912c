package domain

import (
	"bytes"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Authority is an index entry (person, place, subject) that documents reference.
// Equivalent authorities share the same CanonicalKey.
type Authority struct {
	ID           uuid.UUID
	Kind         AuthorityKind
	Label        string
	CanonicalKey string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAuthority builds an authority from a raw label, deriving the stored
// label and its canonical key.
func NewAuthority(kind AuthorityKind, label string, now time.Time) Authority {
	label = NormalizeText(label)
	return Authority{
		ID:           uuid.New(),
		Kind:         kind,
		Label:        label,
		CanonicalKey: NormalizeEntry(label),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// AuthorityRef links a document to an authority under a role (author, subject, ...).
type AuthorityRef struct {
	ID          uuid.UUID
	AuthorityID uuid.UUID
	DocumentID  uuid.UUID
	Role        string
	CreatedAt   time.Time
}

// AuthorityMerge records one duplicate collapsed into its survivor.
type AuthorityMerge struct {
	ID           uuid.UUID
	Kind         AuthorityKind
	CanonicalKey string
	SurvivorID   uuid.UUID
	MergedID     uuid.UUID
	MergedLabel  string
	RefsMoved    int
	CreatedAt    time.Time
}

// LabelKey is the stored label and key of one authority, read when keys are
// recomputed.
type LabelKey struct {
	ID           uuid.UUID
	Label        string
	CanonicalKey string
}

// Stale reports whether the stored key differs from the current rule.
func (lk LabelKey) Stale() (KeyUpdate, bool) {
	key := NormalizeEntry(lk.Label)
	return KeyUpdate{ID: lk.ID, CanonicalKey: key}, key != lk.CanonicalKey
}

// KeyUpdate is a recomputed canonical key for one authority.
type KeyUpdate struct {
	ID           uuid.UUID
	CanonicalKey string
}

// DuplicateGroup is a set of authorities of the same kind sharing a canonical key.
// Survivor is the record that the duplicates are collapsed into.
type DuplicateGroup struct {
	Kind         AuthorityKind
	CanonicalKey string
	Survivor     Authority
	Duplicates   []Authority
}

// DuplicateIDs returns the IDs of the records to be merged into the survivor.
func (g DuplicateGroup) DuplicateIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(g.Duplicates))
	for i, d := range g.Duplicates {
		ids[i] = d.ID
	}
	return ids
}

// GroupDuplicates groups authorities by (kind, canonical key) and returns only
// groups with more than one member. Empty keys never group. The survivor of
// each group is the oldest record, ties broken by the smallest ID. Groups are
// ordered by kind, then key.
func GroupDuplicates(authorities []Authority) []DuplicateGroup {
	type groupKey struct {
		kind AuthorityKind
		key  string
	}

	buckets := make(map[groupKey][]Authority)
	for _, a := range authorities {
		if a.CanonicalKey == "" {
			continue
		}
		k := groupKey{kind: a.Kind, key: a.CanonicalKey}
		buckets[k] = append(buckets[k], a)
	}

	groups := make([]DuplicateGroup, 0, len(buckets))
	for k, members := range buckets {
		if len(members) < 2 {
			continue
		}
		slices.SortFunc(members, compareAge)
		groups = append(groups, DuplicateGroup{
			Kind:         k.kind,
			CanonicalKey: k.key,
			Survivor:     members[0],
			Duplicates:   members[1:],
		})
	}

	slices.SortFunc(groups, func(a, b DuplicateGroup) int {
		if a.Kind != b.Kind {
			if a.Kind < b.Kind {
				return -1
			}
			return 1
		}
		switch {
		case a.CanonicalKey < b.CanonicalKey:
			return -1
		case a.CanonicalKey > b.CanonicalKey:
			return 1
		}
		return 0
	})

	return groups
}

func compareAge(a, b Authority) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}
