package user

import (
	"fmt"

	"tracker/internal/shared/auth"
)

// Role is a named role row from the closed {USER, ADMIN} enumeration. Rows
// are seed data; registration fails if the default USER role is missing.
type Role struct {
	id   uint
	name string
}

func ReconstructRole(id uint, name string) (*Role, error) {
	if id == 0 {
		return nil, fmt.Errorf("role ID cannot be zero")
	}
	if !auth.IsValidRole(name) {
		return nil, fmt.Errorf("unknown role: %s", name)
	}
	return &Role{id: id, name: name}, nil
}

func (r *Role) ID() uint {
	return r.id
}

func (r *Role) Name() string {
	return r.name
}
