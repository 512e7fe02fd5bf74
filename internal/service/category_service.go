package service

import (
	"context"
	"errors"

	"shopstock/internal/dto"
	"shopstock/internal/model"
	"shopstock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryService manages the label catalog. Categories do not constrain
// Product.Category, so deleting one never cascades.
type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func mapCategory(c *model.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
	}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateKey
	}

	c := &model.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return mapCategory(c), nil
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapCategory(&list[i]))
	}
	return result, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != c.Name {
		existing, err := s.repo.FindByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateKey
		}
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = req.Description
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return mapCategory(c), nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
