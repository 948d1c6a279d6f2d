package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesReportGenerator renderiza el reporte de ventas (implementado en infrastructure/pdf).
type SalesReportGenerator interface {
	GenerateSalesReport(ctx context.Context, report SalesReport) ([]byte, error)
}

// MoneyFormatter formatea montos según la moneda/locale de la aplicación.
type MoneyFormatter interface {
	FormatMoney(amount decimal.Decimal) string
}

// SalesReport datos ya formateados para el documento.
type SalesReport struct {
	Title       string
	GeneratedAt time.Time
	Lines       []SalesReportLine
	SaleCount   int
	Units       int
	GrandTotal  string
}

// SalesReportLine una fila por venta.
type SalesReportLine struct {
	Date     string
	Customer string
	Product  string
	Quantity int
	Total    string
}
