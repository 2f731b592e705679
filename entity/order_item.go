package entity

import "github.com/shopspring/decimal"

type OrderItem struct {
	ID uint `gorm:"primarykey" json:"id"`

	OrderID uint `gorm:"uniqueIndex:idx_order_menuitem;not null" json:"orderId"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_order_menuitem;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2)" json:"unitPrice"`
	Price     decimal.Decimal `gorm:"type:decimal(6,2)" json:"price"`
}
