package service

import (
	"context"
	"errors"
	"time"

	"shopstock/internal/dto"
	"shopstock/internal/model"
	"shopstock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductService defines the business logic contract for products.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	LowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	// SKU uniqueness pre-check; the unique index is the final arbiter under
	// concurrent creates.
	existing, err := s.repo.FindBySKU(ctx, req.SKU)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateKey
	}

	p := &model.Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return productsToResponses(products), nil
}

func (s *productService) LowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error) {
	products, err := s.repo.LowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return productsToResponses(products), nil
}

// Update merges only the provided fields. SKU is immutable: the request type
// has no SKU field, so unknown or disallowed fields sent by a client are
// simply dropped during binding.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Cost != nil {
		p.Cost = *req.Cost
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Description != nil {
		p.Description = req.Description
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

// Delete is unconditional: existing sales keep their dangling product
// reference and drop out of profit reports from this point on.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		SKU:         p.SKU,
		Category:    p.Category,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func productsToResponses(products []model.Product) []dto.ProductResponse {
	resp := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, *productToResponse(&products[i]))
	}
	return resp
}
