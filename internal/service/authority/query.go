package authority

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/authority-backend/internal/domain"
)

// Get returns one authority.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Authority, error) {
	if id == uuid.Nil {
		return domain.Authority{}, domain.NewValidationError("id", "required")
	}
	return s.authorities.GetByID(ctx, id)
}

// List returns a page of authorities.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.AuthorityFilter{
		Kind:      input.Kind,
		Search:    input.Search,
		SortBy:    input.SortBy,
		SortOrder: strings.ToUpper(input.SortOrder),
		Limit:     input.Limit,
		Offset:    input.Offset,
	}
	filter.Normalize(s.cfg.DefaultListLimit)

	items, total, err := s.authorities.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list authorities: %w", err)
	}

	return &ListResult{
		Items:       items,
		TotalCount:  total,
		HasNextPage: filter.Offset+len(items) < total,
	}, nil
}

// FindEquivalent returns the authorities of kind whose canonical key equals
// that of label. A label without indexable words has no equivalents.
func (s *Service) FindEquivalent(ctx context.Context, kind domain.AuthorityKind, label string) ([]domain.Authority, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be one of PERSON, PLACE, SUBJECT")
	}

	key := domain.NormalizeEntry(label)
	if key == "" {
		return []domain.Authority{}, nil
	}

	found, err := s.authorities.ListByKey(ctx, kind, key)
	if err != nil {
		return nil, fmt.Errorf("find equivalents: %w", err)
	}
	return found, nil
}

// ListReferences returns the document references of an authority.
func (s *Service) ListReferences(ctx context.Context, authorityID uuid.UUID) ([]domain.AuthorityRef, error) {
	if _, err := s.Get(ctx, authorityID); err != nil {
		return nil, err
	}
	return s.refs.ListByAuthority(ctx, authorityID)
}

// Stats counts authorities per kind.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{ByKind: make(map[domain.AuthorityKind]int)}
	for _, kind := range domain.AuthorityKinds() {
		n, err := s.authorities.Count(ctx, &kind)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", kind, err)
		}
		st.ByKind[kind] = n
		st.Total += n
	}
	return st, nil
}
