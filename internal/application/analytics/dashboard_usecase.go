// Package analytics contiene el caso de uso del Dashboard: KPIs agregados de
// catálogo, ventas y licitaciones.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

const dashboardRecentSales = 5 // ventas en el widget "recientes"

// DashboardUseCase genera el resumen del dashboard.
//
// Fuente de datos: DashboardRepository (consultas read-only).
type DashboardUseCase struct {
	repo    repository.DashboardRepository
	locale  language.Tag
	unit    currency.Unit
	printer *message.Printer
}

// NewDashboardUseCase construye el caso de uso. locale es un tag BCP 47 (ej. "pt-BR")
// y currencyCode un código ISO 4217 (ej. "BRL").
func NewDashboardUseCase(repo repository.DashboardRepository, locale, currencyCode string) (*DashboardUseCase, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("dashboard: locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("dashboard: moneda %q: %w", currencyCode, err)
	}
	return &DashboardUseCase{
		repo:    repo,
		locale:  tag,
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// GetSummary construye el DashboardSummaryDTO. Las consultas corren en paralelo;
// la primera que falle cancela el resto.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var (
		catalog    repository.CatalogTotals
		salesTotal repository.SalesTotals
		activeBids int
		monthly    []repository.MonthlyRevenue
		categories []repository.CategoryCount
		recent     []*entity.Sale
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if catalog, err = uc.repo.CatalogTotals(gctx); err != nil {
			return fmt.Errorf("dashboard: catálogo: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if salesTotal, err = uc.repo.SalesTotals(gctx); err != nil {
			return fmt.Errorf("dashboard: ventas: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if activeBids, err = uc.repo.CountBidsByStatus(gctx, entity.BidStatusOpen, entity.BidStatusUnderReview); err != nil {
			return fmt.Errorf("dashboard: licitaciones activas: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if monthly, err = uc.repo.RevenueByMonth(gctx); err != nil {
			return fmt.Errorf("dashboard: ingresos por mes: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if categories, err = uc.repo.ProductsByCategory(gctx); err != nil {
			return fmt.Errorf("dashboard: productos por categoría: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if recent, err = uc.repo.RecentSales(gctx, dashboardRecentSales); err != nil {
			return fmt.Errorf("dashboard: ventas recientes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.DashboardSummaryDTO{
		ProductCount:       catalog.ProductCount,
		StockValue:         catalog.StockValue.Round(2),
		StockValueLabel:    uc.FormatMoney(catalog.StockValue),
		SaleCount:          salesTotal.SaleCount,
		Revenue:            salesTotal.Revenue.Round(2),
		RevenueLabel:       uc.FormatMoney(salesTotal.Revenue),
		ActiveBids:         activeBids,
		RevenueByMonth:     make([]dto.MonthlyRevenueDTO, 0, len(monthly)),
		ProductsByCategory: make([]dto.CategoryCountDTO, 0, len(categories)),
		RecentSales:        dto.NewSaleResponses(recent),
		Currency:           uc.unit.String(),
		Locale:             uc.locale.String(),
	}
	for _, m := range monthly {
		out.RevenueByMonth = append(out.RevenueByMonth, dto.MonthlyRevenueDTO{
			Month:   m.Month,
			Revenue: m.Revenue.Round(2),
			Label:   uc.FormatMoney(m.Revenue),
		})
	}
	for _, c := range categories {
		out.ProductsByCategory = append(out.ProductsByCategory, dto.CategoryCountDTO{Category: c.Category, Count: c.Count})
	}
	return out, nil
}

// FormatMoney formatea un monto con el símbolo de la moneda configurada según el locale.
func (uc *DashboardUseCase) FormatMoney(amount decimal.Decimal) string {
	return uc.printer.Sprint(currency.Symbol(uc.unit.Amount(amount.Round(2).InexactFloat64())))
}
