package project

import (
	"fmt"
	"time"

	"tracker/internal/shared/biztime"
)

// Project groups issues under a single owning user. The owner is fixed at
// creation and never changes through updates.
type Project struct {
	id          uint
	name        string
	description string
	ownerID     uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProject(name, description string, ownerID uint) (*Project, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := biztime.NowUTC()
	return &Project{
		name:        name,
		description: description,
		ownerID:     ownerID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProject(
	id uint,
	name, description string,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Project{
		id:          id,
		name:        name,
		description: description,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Project) ID() uint {
	return p.id
}

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) Description() string {
	return p.description
}

func (p *Project) OwnerID() uint {
	return p.ownerID
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) UpdatedAt() time.Time {
	return p.updatedAt
}

// UpdateDetails replaces name and description. The owner is immutable.
func (p *Project) UpdateDetails(name, description string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	p.name = name
	p.description = description
	p.updatedAt = biztime.NowUTC()
	return nil
}

// IsOwnedBy reports whether the given user owns this project.
func (p *Project) IsOwnedBy(userID uint) bool {
	return p.ownerID == userID
}
