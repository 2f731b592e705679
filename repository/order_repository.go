package repository

import (
	"time"

	"github.com/asher5712/LittleLemonAPI/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// VisibleTo is the single visibility rule for orders: managers see all, crew
// see their assignments, everyone else their own. List, get and update all go
// through here so the scoping cannot diverge.
func (r *OrderRepository) VisibleTo(q *gorm.DB, actor entity.Actor) *gorm.DB {
	switch {
	case actor.IsManager():
		return q
	case actor.IsCrew():
		return q.Where("delivery_crew_id = ?", actor.ID)
	default:
		return q.Where("orders.user_id = ?", actor.ID)
	}
}

// OrderFilter narrows the order listing; zero fields mean no filtering.
type OrderFilter struct {
	Status *bool
	Date   *time.Time
}

func (r *OrderRepository) ListVisible(actor entity.Actor, f OrderFilter) ([]entity.Order, error) {
	q := r.VisibleTo(r.DB, actor)
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Date != nil {
		q = q.Where("date = ?", *f.Date)
	}

	var orders []entity.Order
	err := q.Preload("OrderItems").
		Preload("OrderItems.MenuItem").
		Preload("OrderItems.MenuItem.Category").
		Find(&orders).Error
	return orders, err
}

// FindVisible treats an out-of-scope id exactly like a missing one, so callers
// cannot probe for the existence of other users' orders.
func (r *OrderRepository) FindVisible(actor entity.Actor, id uint) (*entity.Order, error) {
	var order entity.Order
	err := r.VisibleTo(r.DB, actor).
		Preload("OrderItems").
		Preload("OrderItems.MenuItem").
		Preload("OrderItems.MenuItem.Category").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

// UpdateFields writes only the named columns; everything else on the row is
// untouched by construction.
func (r *OrderRepository) UpdateFields(orderID uint, fields map[string]any) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Updates(fields).Error
}

func (r *OrderRepository) Delete(tx *gorm.DB, orderID uint) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, orderID).Error
}
