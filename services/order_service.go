package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/asher5712/LittleLemonAPI/entity"
	"github.com/asher5712/LittleLemonAPI/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	orderRepo *repository.OrderRepository
	cartRepo  *repository.CartRepository
	userRepo  *repository.UserRepository
}

func NewOrderService(db *gorm.DB, or *repository.OrderRepository, cr *repository.CartRepository, ur *repository.UserRepository) *OrderService {
	return &OrderService{DB: db, orderRepo: or, cartRepo: cr, userRepo: ur}
}

func (s *OrderService) List(actor entity.Actor, f repository.OrderFilter) ([]entity.Order, error) {
	return s.orderRepo.ListVisible(actor, f)
}

func (s *OrderService) Get(actor entity.Actor, id uint) (*entity.Order, error) {
	order, err := s.orderRepo.FindVisible(actor, id)
	if err != nil {
		return nil, notFoundOr(err, "order")
	}
	return order, nil
}

// Checkout converts the user's cart into an order. An empty cart is a
// designed short-circuit: it returns (nil, nil) and creates nothing.
// Order, order items and cart drain commit as one transaction; a failure
// anywhere leaves no partial order and the cart intact.
func (s *OrderService) Checkout(userID uint) (*entity.Order, error) {
	lines, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price)
	}

	now := time.Now()
	order := &entity.Order{
		UserID: userID,
		Total:  total,
		Date:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(tx, order); err != nil {
			return err
		}
		for _, line := range lines {
			item := &entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				Price:      line.Price,
			}
			if err := s.orderRepo.CreateItem(tx, item); err != nil {
				return err
			}
		}
		_, err := s.cartRepo.DeleteAllByUser(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	// reload with nested items for the response
	return s.Get(entity.Actor{ID: userID}, order.ID)
}

// OrderPatch carries the only two fields mutable after creation. User, total
// and date are never written by Update, so they survive unchanged.
type OrderPatch struct {
	DeliveryCrewID *uint `json:"deliveryCrewId"`
	Status         *bool `json:"status"`
}

// Update applies a patch under the same visibility rule as reads: an order
// outside the caller's scope is a NotFound, never a Forbidden. Crew callers
// cannot reassign; any deliveryCrewId they send is silently discarded.
func (s *OrderService) Update(actor entity.Actor, id uint, patch *OrderPatch) (*entity.Order, error) {
	order, err := s.Get(actor, id)
	if err != nil {
		return nil, err
	}

	if actor.IsCrew() {
		patch.DeliveryCrewID = nil
	}

	fields := map[string]any{}
	if patch.DeliveryCrewID != nil {
		if _, err := s.userRepo.FindByID(*patch.DeliveryCrewID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("unknown delivery crew user: %w", ErrValidation)
			}
			return nil, err
		}
		fields["delivery_crew_id"] = *patch.DeliveryCrewID
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}

	if len(fields) > 0 {
		if err := s.orderRepo.UpdateFields(order.ID, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(actor, id)
}

func (s *OrderService) Delete(actor entity.Actor, id uint) error {
	order, err := s.Get(actor, id)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.Delete(tx, order.ID)
	})
}
