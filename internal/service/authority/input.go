package authority

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/authority-backend/internal/domain"
)

const maxRoleLength = 64

// CreateInput holds the parameters for creating an authority.
type CreateInput struct {
	Kind  domain.AuthorityKind
	Label string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate(maxLabel int) error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be one of PERSON, PLACE, SUBJECT"})
	}
	errs = append(errs, validateLabel(i.Label, maxLabel)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameInput holds the parameters for relabelling an authority.
type RenameInput struct {
	ID    uuid.UUID
	Label string
}

// Validate checks all fields and collects all errors.
func (i RenameInput) Validate(maxLabel int) error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateLabel(i.Label, maxLabel)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateLabel(label string, maxLabel int) []domain.FieldError {
	label = domain.NormalizeText(label)
	switch {
	case label == "":
		return []domain.FieldError{{Field: "label", Message: "required"}}
	case utf8.RuneCountInString(label) > maxLabel:
		return []domain.FieldError{{Field: "label", Message: "too long"}}
	case domain.NormalizeEntry(label) == "":
		return []domain.FieldError{{Field: "label", Message: "has no indexable words"}}
	}
	return nil
}

// ListInput holds the parameters for listing authorities.
type ListInput struct {
	Kind      *domain.AuthorityKind
	Search    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be one of PERSON, PLACE, SUBJECT"})
	}
	if i.Limit < 0 || i.Limit > domain.MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	switch i.SortBy {
	case "", domain.SortByLabel, domain.SortByCreatedAt:
	default:
		errs = append(errs, domain.FieldError{Field: "sort_by", Message: "must be label or created_at"})
	}
	switch strings.ToUpper(i.SortOrder) {
	case "", domain.SortASC, domain.SortDESC:
	default:
		errs = append(errs, domain.FieldError{Field: "sort_order", Message: "must be ASC or DESC"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddReferenceInput holds the parameters for referencing an authority from a document.
type AddReferenceInput struct {
	AuthorityID uuid.UUID
	DocumentID  uuid.UUID
	Role        string
}

// Validate checks all fields and collects all errors.
func (i AddReferenceInput) Validate() error {
	var errs []domain.FieldError

	if i.AuthorityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "authority_id", Message: "required"})
	}
	if i.DocumentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "document_id", Message: "required"})
	}
	role := strings.TrimSpace(i.Role)
	if role == "" {
		errs = append(errs, domain.FieldError{Field: "role", Message: "required"})
	}
	if len(role) > maxRoleLength {
		errs = append(errs, domain.FieldError{Field: "role", Message: "max 64 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MergeInput selects which duplicate groups to collapse.
type MergeInput struct {
	Kind   *domain.AuthorityKind
	DryRun bool
}

// Validate checks all fields.
func (i MergeInput) Validate() error {
	if i.Kind != nil && !i.Kind.IsValid() {
		return domain.NewValidationError("kind", "must be one of PERSON, PLACE, SUBJECT")
	}
	return nil
}
