package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Los *Label son montos formateados según APP_LOCALE / APP_CURRENCY.
type DashboardSummaryDTO struct {
	ProductCount    int             `json:"product_count"`
	StockValue      decimal.Decimal `json:"stock_value"` // Σ price × stock
	StockValueLabel string          `json:"stock_value_label"`

	SaleCount    int             `json:"sale_count"`
	Revenue      decimal.Decimal `json:"revenue"`
	RevenueLabel string          `json:"revenue_label"`

	ActiveBids int `json:"active_bids"` // OPEN + UNDER_REVIEW

	RevenueByMonth     []MonthlyRevenueDTO `json:"revenue_by_month"`
	ProductsByCategory []CategoryCountDTO  `json:"products_by_category"`
	RecentSales        []SaleResponse      `json:"recent_sales"`

	Currency string `json:"currency"`
	Locale   string `json:"locale"`
}

// MonthlyRevenueDTO ingresos de un mes (YYYY-MM).
type MonthlyRevenueDTO struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Label   string          `json:"label"`
}

// CategoryCountDTO productos por categoría.
type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
