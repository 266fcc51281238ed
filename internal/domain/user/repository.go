package user

import "context"

// Repository persists users and their role assignments. Single-entity
// lookups return (nil, nil) when the row is absent; the service layer
// decides the not-found semantics.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context) ([]*User, error)
}

// RoleRepository reads the seeded role rows.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*Role, error)
}

// PasswordHasher is the one-way adaptive hash used at registration and login.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
