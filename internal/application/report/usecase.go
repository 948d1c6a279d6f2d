// Package report genera el reporte PDF de ventas.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// DeletedProductLabel se muestra en lugar del nombre cuando el producto ya no existe.
const DeletedProductLabel = "(producto eliminado)"

// SalesReportUseCase arma el reporte con todas las ventas y su total general.
type SalesReportUseCase struct {
	saleRepo  repository.SaleRepository
	generator SalesReportGenerator
	money     MoneyFormatter
	now       func() time.Time
}

// NewSalesReportUseCase construye el caso de uso.
func NewSalesReportUseCase(saleRepo repository.SaleRepository, generator SalesReportGenerator, money MoneyFormatter) *SalesReportUseCase {
	return &SalesReportUseCase{saleRepo: saleRepo, generator: generator, money: money, now: time.Now}
}

// Build carga las ventas y devuelve el modelo del reporte (sin renderizar).
func (uc *SalesReportUseCase) Build(ctx context.Context) (SalesReport, error) {
	list, err := uc.saleRepo.List(ctx)
	if err != nil {
		return SalesReport{}, fmt.Errorf("reporte: listar ventas: %w", err)
	}

	out := SalesReport{
		Title:       "Reporte de ventas",
		GeneratedAt: uc.now(),
		Lines:       make([]SalesReportLine, 0, len(list)),
		SaleCount:   len(list),
	}
	total := decimal.Zero
	for _, s := range list {
		product := DeletedProductLabel
		if s.ProductName != nil {
			product = *s.ProductName
		}
		out.Lines = append(out.Lines, SalesReportLine{
			Date:     s.Date.Format("02/01/2006"),
			Customer: s.Customer,
			Product:  product,
			Quantity: s.Quantity,
			Total:    uc.money.FormatMoney(s.Total),
		})
		out.Units += s.Quantity
		total = total.Add(s.Total)
	}
	out.GrandTotal = uc.money.FormatMoney(total)
	return out, nil
}

// Download genera el PDF. Devuelve los bytes y el nombre de archivo sugerido.
func (uc *SalesReportUseCase) Download(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	rep, err := uc.Build(ctx)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateSalesReport(ctx, rep)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("ventas_%s.pdf", rep.GeneratedAt.Format("20060102"))
	return pdfBytes, filename, nil
}
