package repository

import (
	"github.com/asher5712/LittleLemonAPI/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{DB: db} }

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.DB.Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var category entity.Category
	if err := r.DB.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) Save(category *entity.Category) error {
	return r.DB.Save(category).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

// CountMenuItems backs the referential protection on category delete.
func (r *CategoryRepository) CountMenuItems(categoryID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
