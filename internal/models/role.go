package models

// Role is the closed set of account roles
type Role string

const (
	RoleLibrarian Role = "librarian"
	RoleMember    Role = "member"
)

// ParseRole converts a raw value into a Role.
//
// Anything other than "librarian" or "member" is rejected with ErrInvalidInput.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleLibrarian:
		return RoleLibrarian, nil
	case RoleMember:
		return RoleMember, nil
	default:
		return "", NewError(ErrInvalidInput, "unknown user_type %q", raw)
	}
}

// String returns the wire representation of the role
func (r Role) String() string {
	return string(r)
}
