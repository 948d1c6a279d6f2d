// Package pdf implementa el reporte de ventas en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Cliente | Producto | Cant. | Total           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: ventas / unidades / TOTAL GENERAL                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Ventas-api/internal/application/report"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorZebra   = &props.Color{Red: 240, Green: 244, Blue: 248}
)

var _ report.SalesReportGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa report.SalesReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador. author se escribe en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateSalesReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSalesReport(_ context.Context, rep report.SalesReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(rep.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(rep.Lines) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin ventas registradas", props.Text{Size: 9, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	m.AddRows(tableRows(rep.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rep))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(rep report.SalesReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(rep.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+rep.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Cliente", 3, align.Left),
		h("Producto", 3, align.Left),
		h("Cant.", 1, align.Center),
		h("Total", 3, align.Right),
	)
}

// tableRows una fila por venta, con fondo alterno.
func tableRows(lines []report.SalesReportLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for i, l := range lines {
		r := row.New(7).Add(
			col.New(2).Add(text.New(l.Date, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(l.Customer, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(l.Product, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(l.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(l.Total, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorZebra})
		}
		result = append(result, r)
	}
	return result
}

func totalsRow(rep report.SalesReport) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Ventas:", 2),
			label("Unidades:", 8),
			text.New("TOTAL GENERAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 14,
			}),
		),
		col.New(3).Add(
			value(strconv.Itoa(rep.SaleCount), 2),
			value(strconv.Itoa(rep.Units), 8),
			text.New(rep.GrandTotal, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 14,
			}),
		),
	)
}
