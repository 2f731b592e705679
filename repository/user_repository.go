package repository

import (
	"errors"

	"github.com/asher5712/LittleLemonAPI/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Preload("Roles").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Preload("Roles").Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

// ListByRole returns all members of a role group.
func (r *UserRepository) ListByRole(role entity.Role) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.
		Joins("JOIN user_roles ON user_roles.user_id = users.id AND user_roles.role = ?", role).
		Find(&users).Error
	return users, err
}

func (r *UserRepository) HasRole(userID uint, role entity.Role) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) AddRole(userID uint, role entity.Role) error {
	err := r.DB.Create(&entity.UserRole{UserID: userID, Role: role}).Error
	// concurrent add of the same membership is still "already present"
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// RemoveRole is idempotent; removing an absent membership is a no-op.
func (r *UserRepository) RemoveRole(userID uint, role entity.Role) error {
	return r.DB.Where("user_id = ? AND role = ?", userID, role).
		Delete(&entity.UserRole{}).Error
}
