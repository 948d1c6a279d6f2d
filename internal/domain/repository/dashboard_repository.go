package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CatalogTotals totales del catálogo.
type CatalogTotals struct {
	ProductCount int
	StockValue   decimal.Decimal // Σ price × stock
}

// SalesTotals totales del libro de ventas.
type SalesTotals struct {
	SaleCount int
	Revenue   decimal.Decimal
}

// MonthlyRevenue ingresos agrupados por mes (YYYY-MM).
type MonthlyRevenue struct {
	Month   string
	Revenue decimal.Decimal
}

// CategoryCount cantidad de productos por categoría.
type CategoryCount struct {
	Category string
	Count    int
}

// DashboardRepository consultas de solo lectura para el dashboard.
type DashboardRepository interface {
	CatalogTotals(ctx context.Context) (CatalogTotals, error)
	SalesTotals(ctx context.Context) (SalesTotals, error)
	CountBidsByStatus(ctx context.Context, statuses ...entity.BidStatus) (int, error)
	RevenueByMonth(ctx context.Context) ([]MonthlyRevenue, error)
	ProductsByCategory(ctx context.Context) ([]CategoryCount, error)
	RecentSales(ctx context.Context, limit int) ([]*entity.Sale, error)
}
