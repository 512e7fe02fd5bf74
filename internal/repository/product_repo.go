package repository

import (
	"context"

	"shopstock/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	LowStock(ctx context.Context, threshold int) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	// Delete is a hard delete; returns false when no row matched the id.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// DecrementStockTx decrements stock inside a transaction with a guarded
	// compare-and-set: the UPDATE only matches when stock >= qty, so two
	// concurrent sales can never jointly drive stock negative. Returns false
	// when the guard rejected the decrement.
	DecrementStockTx(tx *gorm.DB, id uuid.UUID, qty int) (bool, error)

	// InventoryValue is Σ cost × stock over all products.
	InventoryValue(ctx context.Context) (decimal.Decimal, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) LowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	var products []model.Product
	// Inclusive boundary: stock == threshold is flagged
	err := r.db.WithContext(ctx).Where("stock <= ?", threshold).Order("stock ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *productRepo) DecrementStockTx(tx *gorm.DB, id uuid.UUID, qty int) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	return res.RowsAffected > 0, res.Error
}

func (r *productRepo) InventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var value decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(cost * stock), 0) FROM products").
		Scan(&value).Error
	return value, err
}

func (r *productRepo) DB() *gorm.DB { return r.db }
