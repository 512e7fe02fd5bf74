package service

import (
	"context"
	"errors"
	"time"

	"shopstock/internal/dto"
	"shopstock/internal/model"
	"shopstock/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleService records and lists sales. Recording a sale and decrementing the
// product's stock are one logical unit: either both commit or neither does.
type SaleService interface {
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error)
	ListSales(ctx context.Context) ([]dto.SaleResponse, error)
}

type saleService struct {
	repo        repository.SaleRepository
	productRepo repository.ProductRepository
}

func NewSaleService(repo repository.SaleRepository, productRepo repository.ProductRepository) SaleService {
	return &saleService{repo: repo, productRepo: productRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// RecordSale validates the request against current inventory, persists the
// sale, and decrements stock.
//
// Validation order: product lookup first (NotFound), then the stock check
// (InsufficientStock). The pre-flight stock check gives the caller an exact
// remaining-stock figure; the guarded decrement inside the transaction
// re-checks, so a concurrent sale that raced past the pre-flight still cannot
// oversell — the loser of the race gets InsufficientStock and a rollback.
//
// The unit price is taken from the request and snapshotted into the sale row;
// the total is always recomputed as price × quantity, never trusted from the
// client.
func (s *saleService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, ErrNotFound
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if product.Stock < req.Quantity {
		return nil, &InsufficientStockError{Available: product.Stock}
	}

	sale := &model.Sale{
		ProductID: productID,
		Quantity:  req.Quantity,
		Price:     req.Price,
		Total:     req.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, sale); err != nil {
			return err
		}
		ok, err := s.productRepo.DecrementStockTx(tx, productID, req.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			// Lost a race: stock changed between the pre-flight check and
			// the guarded UPDATE. Rolling back removes the sale row.
			return &InsufficientStockError{Available: currentStock(ctx, s.productRepo, productID)}
		}
		return nil
	})
	if txErr != nil {
		var insufficient *InsufficientStockError
		if errors.As(txErr, &insufficient) {
			return nil, insufficient
		}
		return nil, &TransactionError{Err: txErr}
	}

	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}
	return saleToResponse(sale), nil
}

// currentStock is best-effort: 0 when the re-read fails.
func currentStock(ctx context.Context, repo repository.ProductRepository, id uuid.UUID) int {
	p, err := repo.FindByID(ctx, id)
	if err != nil {
		return 0
	}
	return p.Stock
}

func (s *saleService) ListSales(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		resp = append(resp, *saleToResponse(&sales[i]))
	}
	return resp, nil
}

func saleToResponse(s *model.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:        s.ID.String(),
		ProductID: s.ProductID.String(),
		Quantity:  s.Quantity,
		Price:     s.Price,
		Total:     s.Total,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}
