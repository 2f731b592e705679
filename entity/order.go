package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID uint `gorm:"primarykey" json:"id"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	// Unset at checkout; a manager assigns crew later via PATCH.
	DeliveryCrewID *uint `gorm:"index" json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Status bool            `gorm:"index" json:"status"`
	Total  decimal.Decimal `gorm:"type:decimal(6,2)" json:"total"`
	Date   time.Time       `gorm:"index" json:"date"`

	OrderItems []OrderItem `json:"orderItems"`
}
