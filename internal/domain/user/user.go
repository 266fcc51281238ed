package user

import (
	"fmt"
	"strings"
	"time"

	"tracker/internal/shared/auth"
	"tracker/internal/shared/biztime"
)

// User is the user aggregate. Roles are stored as the closed set of role
// names; every user carries at least the USER role.
type User struct {
	id           uint
	firstName    string
	lastName     string
	email        string
	passwordHash string
	roles        []string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(firstName, lastName, email, passwordHash string) (*User, error) {
	if len(strings.TrimSpace(firstName)) == 0 {
		return nil, fmt.Errorf("first name is required")
	}
	if len(strings.TrimSpace(lastName)) == 0 {
		return nil, fmt.Errorf("last name is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: passwordHash,
		roles:        []string{},
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	firstName, lastName, email, passwordHash string,
	roles []string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	if roles == nil {
		roles = []string{}
	}

	return &User{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: passwordHash,
		roles:        roles,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

// SetID assigns the persistence-generated identifier after the first save.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

// FullName returns the display name used in summaries.
func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Roles() []string {
	return u.roles
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) IsAdmin() bool {
	return auth.IsAdmin(u.roles)
}

// AssignRole adds a role to the user's role set. Assigning an already-held
// role is a no-op.
func (u *User) AssignRole(name string) error {
	if !auth.IsValidRole(name) {
		return fmt.Errorf("unknown role: %s", name)
	}
	if auth.HasRole(u.roles, name) {
		return nil
	}
	u.roles = append(u.roles, name)
	u.updatedAt = biztime.NowUTC()
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	return hasher.Verify(password, u.passwordHash)
}
