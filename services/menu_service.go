package services

import (
	"errors"
	"fmt"

	"github.com/asher5712/LittleLemonAPI/entity"
	"github.com/asher5712/LittleLemonAPI/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuService struct {
	menuRepo     *repository.MenuRepository
	categoryRepo *repository.CategoryRepository
}

func NewMenuService(mr *repository.MenuRepository, cr *repository.CategoryRepository) *MenuService {
	return &MenuService{menuRepo: mr, categoryRepo: cr}
}

type MenuItemIn struct {
	Title      string          `json:"title" binding:"required,max=150"`
	Price      decimal.Decimal `json:"price"`
	Featured   bool            `json:"featured"`
	CategoryID uint            `json:"categoryId" binding:"required"`
}

func (s *MenuService) List(f repository.MenuFilter) ([]entity.MenuItem, error) {
	return s.menuRepo.List(f)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.menuRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "menu item")
	}
	return item, nil
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Title:      in.Title,
		Price:      in.Price,
		Featured:   in.Featured,
		CategoryID: in.CategoryID,
	}
	if err := s.menuRepo.Create(item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("menu item title already taken: %w", ErrValidation)
		}
		return nil, err
	}
	return s.Get(item.ID)
}

func (s *MenuService) Update(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	item.Title = in.Title
	item.Price = in.Price
	item.Featured = in.Featured
	item.CategoryID = in.CategoryID
	item.Category = entity.Category{}
	if err := s.menuRepo.Save(item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("menu item title already taken: %w", ErrValidation)
		}
		return nil, err
	}
	return s.Get(id)
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.menuRepo.Delete(id)
}

func (s *MenuService) validate(in *MenuItemIn) error {
	if !in.Price.IsPositive() {
		return fmt.Errorf("price must be greater than zero: %w", ErrValidation)
	}
	if _, err := s.categoryRepo.FindByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("unknown category: %w", ErrValidation)
		}
		return err
	}
	return nil
}
