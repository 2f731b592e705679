package entity

import "github.com/shopspring/decimal"

// CartItem is one line of a user's cart. The (user, menuitem) unique index is
// the enforcement point for duplicate adds: a second add conflicts instead of
// merging quantities.
type CartItem struct {
	ID uint `gorm:"primarykey" json:"id"`

	UserID uint `gorm:"uniqueIndex:idx_cart_user_menuitem;not null" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_menuitem;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2)" json:"unitPrice"`
	Price     decimal.Decimal `gorm:"type:decimal(6,2)" json:"price"`
}
