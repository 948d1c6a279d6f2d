package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

type stubSales struct {
	repository.SaleRepository
	list []*entity.Sale
	err  error
}

func (s stubSales) List(context.Context) ([]*entity.Sale, error) { return s.list, s.err }

type plainMoney struct{}

func (plainMoney) FormatMoney(d decimal.Decimal) string { return "R$ " + d.StringFixed(2) }

type captureGenerator struct {
	got SalesReport
	err error
}

func (g *captureGenerator) GenerateSalesReport(_ context.Context, r SalesReport) ([]byte, error) {
	g.got = r
	return []byte("%PDF-fake"), g.err
}

func TestSalesReportUseCase_Download(t *testing.T) {
	name := "Caneta"
	pid := int64(1)
	sales := stubSales{list: []*entity.Sale{
		{ID: 2, Customer: "Ana", ProductID: &pid, ProductName: &name, Quantity: 2,
			Date: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), Total: decimal.RequireFromString("20.00")},
		{ID: 1, Customer: "Bia", Quantity: 1,
			Date: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), Total: decimal.RequireFromString("10.50")},
	}}
	gen := &captureGenerator{}
	uc := NewSalesReportUseCase(sales, gen, plainMoney{})
	uc.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }

	pdf, filename, err := uc.Download(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, "ventas_20240301.pdf", filename)
	assert.Equal(t, 2, gen.got.SaleCount)
	assert.Equal(t, 3, gen.got.Units)
	assert.Equal(t, "R$ 30.50", gen.got.GrandTotal)
	require.Len(t, gen.got.Lines, 2)
	assert.Equal(t, "03/02/2024", gen.got.Lines[0].Date)
	assert.Equal(t, "Caneta", gen.got.Lines[0].Product)
	assert.Equal(t, DeletedProductLabel, gen.got.Lines[1].Product)
}

func TestSalesReportUseCase_Errors(t *testing.T) {
	boom := errors.New("db")
	uc := NewSalesReportUseCase(stubSales{err: boom}, &captureGenerator{}, plainMoney{})
	_, _, err := uc.Download(context.Background())
	assert.ErrorIs(t, err, boom)

	genErr := errors.New("fuente")
	uc = NewSalesReportUseCase(stubSales{}, &captureGenerator{err: genErr}, plainMoney{})
	_, _, err = uc.Download(context.Background())
	assert.ErrorIs(t, err, genErr)
}
