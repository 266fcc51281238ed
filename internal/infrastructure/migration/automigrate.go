package migration

import (
	"fmt"

	"gorm.io/gorm"

	"tracker/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in migration order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.RoleModel{},
		&models.UserRoleModel{},
		&models.ProjectModel{},
		&models.IssueModel{},
		&models.CommentModel{},
	}
}

// Run applies the schema for all models.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
