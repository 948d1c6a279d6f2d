package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
)

var demoProducts = []dto.ProductRequest{
	{Name: "Caneta esferográfica azul", Category: "Papelaria", Price: decimal.RequireFromString("2.50"), Stock: 500},
	{Name: "Papel A4 500 folhas", Category: "Papelaria", Price: decimal.RequireFromString("27.90"), Stock: 120},
	{Name: "Toner HP 85A", Category: "Informática", Price: decimal.RequireFromString("289.00"), Stock: 15},
	{Name: "Cadeira de escritório", Category: "Mobiliário", Price: decimal.RequireFromString("649.90"), Stock: 8},
	{Name: "Álcool em gel 500ml", Category: "Limpeza", Price: decimal.RequireFromString("9.99"), Stock: 300},
}

var demoBids = []dto.BidRequest{
	{Number: "PE-014/2024", PublicEntity: "Prefeitura de Campinas", EstimatedValue: decimal.RequireFromString("45000.00"), OpeningDate: "2024-03-12", Status: "WON"},
	{Number: "PE-031/2024", PublicEntity: "Secretaria de Educação SP", EstimatedValue: decimal.RequireFromString("128500.00"), OpeningDate: "2024-05-20", Status: "UNDER_REVIEW"},
	{Number: "DL-007/2024", PublicEntity: "Câmara Municipal de Santos", EstimatedValue: decimal.RequireFromString("9800.00"), OpeningDate: "2024-06-03"},
	{Number: "PE-002/2024", PublicEntity: "Hospital Regional", EstimatedValue: decimal.RequireFromString("73200.00"), OpeningDate: "2024-01-25", Status: "LOST"},
}

type demoSale struct {
	customer string
	product  int // índice en demoProducts
	quantity int
	daysAgo  int
}

var demoSales = []demoSale{
	{"Escola Estadual Rui Barbosa", 0, 200, 75},
	{"Escola Estadual Rui Barbosa", 1, 40, 75},
	{"Clínica Vida", 4, 60, 48},
	{"Contabilidade Souza", 2, 3, 30},
	{"Contabilidade Souza", 3, 2, 30},
	{"Prefeitura de Campinas", 1, 25, 12},
	{"Clínica Vida", 4, 35, 3},
}

// seedCounts cantidades insertadas.
type seedCounts struct {
	products, bids, sales int
}

type seeder struct {
	products *usecase.ProductUseCase
	bids     *usecase.BidUseCase
	sales    *usecase.SaleUseCase
	now      func() time.Time
}

// run inserta el catálogo, las licitaciones y luego las ventas por el coordinador,
// de modo que el stock de demostración queda descontado.
func (s seeder) run(ctx context.Context) (seedCounts, error) {
	var n seedCounts
	now := time.Now
	if s.now != nil {
		now = s.now
	}

	ids := make([]int64, 0, len(demoProducts))
	for _, in := range demoProducts {
		p, err := s.products.Create(ctx, in)
		if err != nil {
			return n, fmt.Errorf("producto %q: %w", in.Name, err)
		}
		ids = append(ids, p.ID)
		n.products++
	}

	for _, in := range demoBids {
		if _, err := s.bids.Create(ctx, in); err != nil {
			return n, fmt.Errorf("licitación %s: %w", in.Number, err)
		}
		n.bids++
	}

	today := now()
	for _, ds := range demoSales {
		in := dto.SaleRequest{
			Customer:  ds.customer,
			ProductID: ids[ds.product],
			Quantity:  ds.quantity,
			Date:      today.AddDate(0, 0, -ds.daysAgo).Format(dto.DateLayout),
		}
		if _, err := s.sales.Create(ctx, in); err != nil {
			return n, fmt.Errorf("venta a %s: %w", ds.customer, err)
		}
		n.sales++
	}
	return n, nil
}
