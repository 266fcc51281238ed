package project

import (
	"tracker/internal/application/project/usecases"
	sharedAuth "tracker/internal/shared/auth"
)

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=5000"`
}

func (r *CreateProjectRequest) ToCommand(actor sharedAuth.Actor) usecases.CreateProjectCommand {
	return usecases.CreateProjectCommand{
		Actor:       actor,
		Name:        r.Name,
		Description: r.Description,
	}
}

type UpdateProjectRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=5000"`
}

func (r *UpdateProjectRequest) ToCommand(actor sharedAuth.Actor, projectID uint) usecases.UpdateProjectCommand {
	return usecases.UpdateProjectCommand{
		Actor:       actor,
		ProjectID:   projectID,
		Name:        r.Name,
		Description: r.Description,
	}
}
