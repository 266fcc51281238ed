package project

import "context"

// Repository persists projects. FindByID returns (nil, nil) when the row is
// absent; the service layer decides the not-found semantics.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Project, error)
	FindAll(ctx context.Context) ([]*Project, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
}
