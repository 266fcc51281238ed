package usecases

import (
	domainProject "tracker/internal/domain/project"
)

// ProjectResult is the project representation returned to the transport layer.
type ProjectResult struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     uint   `json:"owner_id"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

func newProjectResult(p *domainProject.Project) ProjectResult {
	return ProjectResult{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		OwnerID:     p.OwnerID(),
		CreatedAt:   p.CreatedAt().UnixMilli(),
		UpdatedAt:   p.UpdatedAt().UnixMilli(),
	}
}
