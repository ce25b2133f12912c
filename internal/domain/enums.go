package domain

// AuthorityKind is the category of an authority record.
type AuthorityKind string

const (
	AuthorityKindPerson  AuthorityKind = "PERSON"
	AuthorityKindPlace   AuthorityKind = "PLACE"
	AuthorityKindSubject AuthorityKind = "SUBJECT"
)

func (k AuthorityKind) String() string { return string(k) }

func (k AuthorityKind) IsValid() bool {
	switch k {
	case AuthorityKindPerson, AuthorityKindPlace, AuthorityKindSubject:
		return true
	}
	return false
}

// AuthorityKinds lists every kind in a stable order.
func AuthorityKinds() []AuthorityKind {
	return []AuthorityKind{AuthorityKindPerson, AuthorityKindPlace, AuthorityKindSubject}
}

// UserRole represents the authorization level of a token holder.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
