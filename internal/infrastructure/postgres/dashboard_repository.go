package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para los KPIs del dashboard.
type DashboardRepo struct {
	q     Querier
	sales *SaleRepo
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q, sales: NewSaleRepository(q)}
}

// CatalogTotals cuenta productos y valoriza el stock (Σ price × stock).
func (r *DashboardRepo) CatalogTotals(ctx context.Context) (repository.CatalogTotals, error) {
	var out repository.CatalogTotals
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(price * stock), 0)::NUMERIC(14,2)
		FROM products`).Scan(&out.ProductCount, &out.StockValue)
	if err != nil {
		return out, fmt.Errorf("dashboard.CatalogTotals: %w", err)
	}
	return out, nil
}

// SalesTotals cuenta ventas y suma sus totales.
func (r *DashboardRepo) SalesTotals(ctx context.Context) (repository.SalesTotals, error) {
	var out repository.SalesTotals
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total), 0)::NUMERIC(14,2)
		FROM sales`).Scan(&out.SaleCount, &out.Revenue)
	if err != nil {
		return out, fmt.Errorf("dashboard.SalesTotals: %w", err)
	}
	return out, nil
}

// CountBidsByStatus cuenta licitaciones en cualquiera de los estados indicados.
func (r *DashboardRepo) CountBidsByStatus(ctx context.Context, statuses ...entity.BidStatus) (int, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM bids WHERE status = ANY($1)`, values).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountBidsByStatus: %w", err)
	}
	return n, nil
}

// RevenueByMonth agrupa ingresos por mes de la venta, en orden cronológico.
func (r *DashboardRepo) RevenueByMonth(ctx context.Context) ([]repository.MonthlyRevenue, error) {
	const query = `
	SELECT to_char(date_trunc('month', sale_date), 'YYYY-MM') AS month,
	       SUM(total)::NUMERIC(14,2)                          AS revenue
	FROM sales
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard.RevenueByMonth: %w", err)
	}
	defer rows.Close()

	results := make([]repository.MonthlyRevenue, 0)
	for rows.Next() {
		var m repository.MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.Revenue); err != nil {
			return nil, fmt.Errorf("dashboard.RevenueByMonth scan: %w", err)
		}
		results = append(results, m)
	}
	return results, rows.Err()
}

// ProductsByCategory cuenta productos por categoría; categoría vacía se agrupa tal cual.
func (r *DashboardRepo) ProductsByCategory(ctx context.Context) ([]repository.CategoryCount, error) {
	rows, err := r.q.Query(ctx, `
		SELECT category, COUNT(*)
		FROM products
		GROUP BY category
		ORDER BY COUNT(*) DESC, category`)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ProductsByCategory: %w", err)
	}
	defer rows.Close()

	results := make([]repository.CategoryCount, 0)
	for rows.Next() {
		var c repository.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("dashboard.ProductsByCategory scan: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// RecentSales últimas ventas con nombre de producto.
func (r *DashboardRepo) RecentSales(ctx context.Context, limit int) ([]*entity.Sale, error) {
	return r.sales.ListRecent(ctx, limit)
}
