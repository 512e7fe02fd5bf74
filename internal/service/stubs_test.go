package service

import (
	"context"
	"sort"
	"sync"

	"shopstock/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory ProductRepository stub ─────────────────────────────────────────

type stubProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return gorm.ErrDuplicatedKey
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) FindBySKU(_ context.Context, sku string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *stubProductRepo) LowStock(_ context.Context, threshold int) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.Product
	for _, p := range r.products {
		if p.Stock <= threshold {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

// DecrementStockTx mirrors the guarded UPDATE: compare-and-set under a lock,
// false when stock < qty.
func (r *stubProductRepo) DecrementStockTx(_ *gorm.DB, id uuid.UUID, qty int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (r *stubProductRepo) InventoryValue(_ context.Context) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	value := decimal.Zero
	for _, p := range r.products {
		value = value.Add(p.Cost.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return value, nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

// ── In-memory SaleRepository stub ────────────────────────────────────────────

type stubSaleRepo struct {
	mu       sync.Mutex
	sales    []*model.Sale
	products *stubProductRepo // for the profit join
	seq      int
}

func newStubSaleRepo(products *stubProductRepo) *stubSaleRepo {
	return &stubSaleRepo{products: products}
}

func (r *stubSaleRepo) Create(_ context.Context, _ *gorm.DB, s *model.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sales = append(r.sales, s)
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSaleRepo) List(_ context.Context) ([]model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *stubSaleRepo) ListRecent(ctx context.Context, limit int) ([]model.Sale, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *stubSaleRepo) TotalSales(_ context.Context) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, s := range r.sales {
		total = total.Add(s.Total)
	}
	return total, nil
}

func (r *stubSaleRepo) TotalProfit(ctx context.Context) (decimal.Decimal, error) {
	r.mu.Lock()
	sales := make([]*model.Sale, len(r.sales))
	copy(sales, r.sales)
	r.mu.Unlock()

	profit := decimal.Zero
	for _, s := range sales {
		p, err := r.products.FindByID(ctx, s.ProductID)
		if err != nil {
			continue // deleted product contributes nothing
		}
		profit = profit.Add(s.Total.Sub(p.Cost.Mul(decimal.NewFromInt(int64(s.Quantity)))))
	}
	return profit, nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

// ── In-memory UserRepository stub ────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	result := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Username < result[j].Username })
	return result, nil
}

// ── In-memory CategoryRepository stub ────────────────────────────────────────

type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	result := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.categories[id]; !ok {
		return false, nil
	}
	delete(r.categories, id)
	return true, nil
}

// ── Seed helpers ─────────────────────────────────────────────────────────────

func seedProduct(repo *stubProductRepo, name, sku string, price, cost string, stock int) *model.Product {
	p := &model.Product{
		ID:       uuid.New(),
		SKU:      sku,
		Name:     name,
		Category: "Test",
		Price:    decimal.RequireFromString(price),
		Cost:     decimal.RequireFromString(cost),
		Stock:    stock,
	}
	repo.products[p.ID] = p
	return p
}
