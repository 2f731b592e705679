package services

import (
	"errors"
	"fmt"

	"github.com/asher5712/LittleLemonAPI/entity"
	"github.com/asher5712/LittleLemonAPI/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	cartRepo *repository.CartRepository
	menuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, cartRepo: cr, menuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"gte=0"`
}

func (s *CartService) List(userID uint) ([]entity.CartItem, error) {
	return s.cartRepo.ListByUser(userID)
}

// Add prices the line from the menu item's current price: unit price is
// copied, line price is unit * quantity, decimal exact. Client-supplied
// prices are never trusted. A line already present for (user, menuitem) is a
// conflict; the unique index enforces it, including under concurrent adds.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.CartItem, error) {
	menu, err := s.menuRepo.FindByID(in.MenuItemID)
	if err != nil {
		return nil, notFoundOr(err, "menu item")
	}

	line := &entity.CartItem{
		UserID:     userID,
		MenuItemID: menu.ID,
		Quantity:   in.Quantity,
		UnitPrice:  menu.Price,
		Price:      menu.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}
	if err := s.cartRepo.Create(line); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("menu item already in cart: %w", ErrConflict)
		}
		return nil, err
	}

	line.MenuItem = *menu
	return line, nil
}

// Flush deletes every line of the user's cart and reports the count. An
// already-empty cart flushes to zero without error.
func (s *CartService) Flush(userID uint) (int64, error) {
	return s.cartRepo.DeleteAllByUser(s.DB, userID)
}
