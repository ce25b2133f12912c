package authority

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/authority-backend/internal/domain"
)

// AddReference records that a document refers to an authority under a role.
// Roles are stored lowercase.
func (s *Service) AddReference(ctx context.Context, input AddReferenceInput) (domain.AuthorityRef, error) {
	if err := input.Validate(); err != nil {
		return domain.AuthorityRef{}, err
	}

	ref, err := s.refs.Create(ctx, domain.AuthorityRef{
		ID:          uuid.New(),
		AuthorityID: input.AuthorityID,
		DocumentID:  input.DocumentID,
		Role:        strings.ToLower(strings.TrimSpace(input.Role)),
		CreatedAt:   s.now(),
	})
	if err != nil {
		return domain.AuthorityRef{}, fmt.Errorf("add reference: %w", err)
	}
	return ref, nil
}
