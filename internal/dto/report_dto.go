package dto

import "github.com/shopspring/decimal"

// TotalSalesResponse is returned by GET /api/reports/sales.
type TotalSalesResponse struct {
	TotalSales decimal.Decimal `json:"totalSales"`
}

// TotalProfitResponse is returned by GET /api/reports/profit.
type TotalProfitResponse struct {
	TotalProfit decimal.Decimal `json:"totalProfit"`
}

// DashboardResponse bundles the metrics rendered on the dashboard page.
// Everything is recomputed on demand; nothing is cached.
type DashboardResponse struct {
	TotalSales       decimal.Decimal   `json:"totalSales"`
	InventoryValue   decimal.Decimal   `json:"inventoryValue"`
	TotalProfit      decimal.Decimal   `json:"totalProfit"`
	LowStockCount    int               `json:"lowStockCount"`
	RecentSales      []SaleResponse    `json:"recentSales"`
	LowStockProducts []ProductResponse `json:"lowStockProducts"`
}
