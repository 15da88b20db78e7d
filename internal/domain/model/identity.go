package model

// Identity is the verified caller decoded from a bearer credential.
// It is placed in the request context by the auth middleware and threaded
// through the application services for authorization decisions.
type Identity struct {
	UserID string
	Email  string
	Role   Role
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
