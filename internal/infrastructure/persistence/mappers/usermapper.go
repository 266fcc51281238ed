package mappers

import (
	"tracker/internal/domain/user"
	"tracker/internal/infrastructure/persistence/models"
	"tracker/internal/shared/biztime"
)

// UserMapper handles the conversion between User domain entities and
// persistence models. Role names are loaded separately by the repository
// and supplied to ToDomain.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel, roles []string) (*user.User, error)
	RoleToDomain(model *models.RoleModel) (*user.Role, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel, roles []string) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.FirstName,
		model.LastName,
		model.Email,
		model.PasswordHash,
		roles,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *UserMapperImpl) RoleToDomain(model *models.RoleModel) (*user.Role, error) {
	return user.ReconstructRole(model.ID, model.Name)
}
