package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tracker/internal/domain/user"
	"tracker/internal/infrastructure/persistence/mappers"
	"tracker/internal/infrastructure/persistence/models"
	db "tracker/internal/shared/db"
)

type RoleRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*user.Role, error) {
	var model models.RoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	return r.mapper.RoleToDomain(&model)
}
