package repository

import (
	"context"

	"shopstock/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleRepository defines data access for sale records. Sales are append-only:
// there is no update or delete.
type SaleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context) ([]model.Sale, error)
	ListRecent(ctx context.Context, limit int) ([]model.Sale, error)
	TotalSales(ctx context.Context) (decimal.Decimal, error)
	TotalProfit(ctx context.Context) (decimal.Decimal, error)
	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error {
	return tx.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *saleRepo) List(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) ListRecent(ctx context.Context, limit int) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&sales).Error
	return sales, err
}

func (r *saleRepo) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(total), 0) FROM sales").
		Scan(&total).Error
	return total, err
}

// TotalProfit joins each sale against the product's CURRENT cost. The inner
// join drops sales whose product was deleted, so they contribute 0 — this is
// the documented degraded behavior, not an accident.
func (r *saleRepo) TotalProfit(ctx context.Context) (decimal.Decimal, error) {
	var profit decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(s.total - p.cost * s.quantity), 0)
		     FROM sales s
		     JOIN products p ON p.id = s.product_id`).
		Scan(&profit).Error
	return profit, err
}

func (r *saleRepo) DB() *gorm.DB { return r.db }
