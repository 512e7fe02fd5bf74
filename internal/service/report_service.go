package service

import (
	"context"

	"shopstock/internal/dto"
	"shopstock/internal/repository"

	"github.com/shopspring/decimal"
)

const recentSalesLimit = 5

// ReportService derives business metrics on demand. No caching: every call
// re-scans the store, so reports always reflect the latest committed writes.
type ReportService interface {
	TotalSales(ctx context.Context) (decimal.Decimal, error)
	TotalProfit(ctx context.Context) (decimal.Decimal, error)
	LowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error)
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type reportService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository

	// lowStockThreshold is the dashboard default; the low-stock endpoint
	// accepts an explicit threshold.
	lowStockThreshold int
}

func NewReportService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, lowStockThreshold int) ReportService {
	return &reportService{
		saleRepo:          saleRepo,
		productRepo:       productRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

func (s *reportService) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	return s.saleRepo.TotalSales(ctx)
}

// TotalProfit uses each product's current cost, not a cost snapshot; sales
// whose product has been deleted contribute nothing.
func (s *reportService) TotalProfit(ctx context.Context) (decimal.Decimal, error) {
	return s.saleRepo.TotalProfit(ctx)
}

func (s *reportService) LowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error) {
	products, err := s.productRepo.LowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return productsToResponses(products), nil
}

func (s *reportService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	totalSales, err := s.saleRepo.TotalSales(ctx)
	if err != nil {
		return nil, err
	}
	totalProfit, err := s.saleRepo.TotalProfit(ctx)
	if err != nil {
		return nil, err
	}
	inventoryValue, err := s.productRepo.InventoryValue(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.saleRepo.ListRecent(ctx, recentSalesLimit)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.productRepo.LowStock(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, err
	}

	recentSales := make([]dto.SaleResponse, 0, len(recent))
	for i := range recent {
		recentSales = append(recentSales, *saleToResponse(&recent[i]))
	}

	return &dto.DashboardResponse{
		TotalSales:       totalSales,
		InventoryValue:   inventoryValue,
		TotalProfit:      totalProfit,
		LowStockCount:    len(lowStock),
		RecentSales:      recentSales,
		LowStockProducts: productsToResponses(lowStock),
	}, nil
}
