package services

import (
	"fmt"

	"github.com/asher5712/LittleLemonAPI/entity"
	"github.com/asher5712/LittleLemonAPI/repository"
)

type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

type CategoryIn struct {
	Slug  string `json:"slug" binding:"required,max=50"`
	Title string `json:"title" binding:"required,max=255"`
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.repo.List()
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "category")
	}
	return category, nil
}

func (s *CategoryService) Create(in *CategoryIn) (*entity.Category, error) {
	category := &entity.Category{Slug: in.Slug, Title: in.Title}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(id uint, in *CategoryIn) (*entity.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	category.Slug = in.Slug
	category.Title = in.Title
	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete refuses to remove a category that menu items still reference.
// Referential protection, not a cascade.
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	count, err := s.repo.CountMenuItems(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("category still referenced by menu items: %w", ErrConflict)
	}
	return s.repo.Delete(id)
}
