package models

import "fmt"

// Role is the closed set of identities a token can carry.
type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	return r == RolePlayer || r == RoleAdmin
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// RoleForUser maps the stored isAdmin flag onto a Role.
func RoleForUser(u User) Role {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RolePlayer
}
