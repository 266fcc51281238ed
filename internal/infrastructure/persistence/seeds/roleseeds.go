// Package seeds populates baseline rows the system needs to function.
package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"tracker/internal/infrastructure/persistence/models"
	"tracker/internal/shared/auth"
	"tracker/internal/shared/logger"
)

// SeedRoles ensures the USER and ADMIN role rows exist. Registration
// depends on the USER role being present; idempotent across restarts.
func SeedRoles(db *gorm.DB) error {
	for _, name := range []string{auth.RoleUser, auth.RoleAdmin} {
		role := models.RoleModel{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", name, err)
		}
	}
	logger.Info("role seed data verified")
	return nil
}
