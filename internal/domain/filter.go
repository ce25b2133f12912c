package domain

// AuthorityFilter contains filtering/pagination parameters for authority listings.
type AuthorityFilter struct {
	// Kind restricts results to one kind; nil means every kind.
	Kind *AuthorityKind

	// Search is matched against canonical keys after canonicalisation, so
	// "Éléonore" finds "eleonore". Empty means no text filter.
	Search string

	// SortBy: "label" or "created_at". Default: "label".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "ASC".
	SortOrder string

	Limit  int
	Offset int
}

const (
	SortByLabel     = "label"
	SortByCreatedAt = "created_at"

	SortASC  = "ASC"
	SortDESC = "DESC"

	MaxListLimit = 200
)

// Normalize applies defaults and clamps values. defaultLimit is used when
// Limit is not positive.
func (f *AuthorityFilter) Normalize(defaultLimit int) {
	switch f.SortBy {
	case SortByLabel, SortByCreatedAt:
	default:
		f.SortBy = SortByLabel
	}

	switch f.SortOrder {
	case SortASC, SortDESC:
	default:
		f.SortOrder = SortASC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
