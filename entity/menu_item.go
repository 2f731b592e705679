package entity

import "github.com/shopspring/decimal"

type MenuItem struct {
	ID       uint            `gorm:"primarykey" json:"id"`
	Title    string          `gorm:"size:150;uniqueIndex;uniqueIndex:idx_menuitem_title_category" json:"title"`
	Price    decimal.Decimal `gorm:"type:decimal(6,2);index" json:"price"`
	Featured bool            `gorm:"index" json:"featured"`

	CategoryID uint     `gorm:"uniqueIndex:idx_menuitem_title_category;not null" json:"categoryId"`
	Category   Category `json:"category"`
}
