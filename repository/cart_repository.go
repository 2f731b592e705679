package repository

import (
	"github.com/asher5712/LittleLemonAPI/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListByUser returns the calling user's lines only; cart queries are never
// global.
func (r *CartRepository) ListByUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).
		Preload("MenuItem").
		Preload("MenuItem.Category").
		Find(&items).Error
	return items, err
}

// Create relies on the (user_id, menu_item_id) unique index: a duplicate add
// comes back as gorm.ErrDuplicatedKey, never as a silent overwrite.
func (r *CartRepository) Create(item *entity.CartItem) error {
	return r.DB.Create(item).Error
}

// DeleteAllByUser flushes the cart and reports how many lines went. Deleting
// an already-empty cart succeeds with zero.
func (r *CartRepository) DeleteAllByUser(tx *gorm.DB, userID uint) (int64, error) {
	res := tx.Where("user_id = ?", userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}
