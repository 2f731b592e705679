package configs

import (
	"github.com/asher5712/LittleLemonAPI/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedManager creates the first manager account from the environment, so the
// manager-gated endpoints are reachable on a fresh database. No-op when the
// variables are absent or the user already exists.
func SeedManager(db *gorm.DB) error {
	username := getEnv("MANAGER_USERNAME", "")
	password := getEnv("MANAGER_PASSWORD", "")
	if username == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		manager := entity.User{
			Username: username,
			Email:    getEnv("MANAGER_EMAIL", ""),
			Password: string(hash),
		}
		if err := tx.Create(&manager).Error; err != nil {
			return err
		}
		return tx.Create(&entity.UserRole{UserID: manager.ID, Role: entity.RoleManager}).Error
	})
}
