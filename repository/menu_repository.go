package repository

import (
	"github.com/asher5712/LittleLemonAPI/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// MenuFilter narrows the menu listing; zero fields mean no filtering.
type MenuFilter struct {
	CategoryTitle string
	Featured      *bool
	OrderByPrice  bool
}

func (r *MenuRepository) List(f MenuFilter) ([]entity.MenuItem, error) {
	q := r.DB.Joins("Category")
	if f.CategoryTitle != "" {
		q = q.Where(`"Category"."title" = ?`, f.CategoryTitle)
	}
	if f.Featured != nil {
		q = q.Where("menu_items.featured = ?", *f.Featured)
	}
	if f.OrderByPrice {
		q = q.Order("menu_items.price")
	}

	var items []entity.MenuItem
	err := q.Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Save(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
