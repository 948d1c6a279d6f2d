package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
)

var productColumns = []string{"name", "category", "price", "stock"}

// parseProductsCSV lee un CSV con encabezado name,category,price,stock (separador , o ;).
// Con latin1 el contenido se decodifica desde ISO-8859-1.
func parseProductsCSV(r io.Reader, latin1 bool) ([]dto.ProductRequest, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	text := strings.TrimPrefix(string(raw), "\ufeff")

	cr := csv.NewReader(strings.NewReader(text))
	cr.TrimLeadingSpace = true
	if first, _, _ := strings.Cut(text, "\n"); strings.Count(first, ";") > strings.Count(first, ",") {
		cr.Comma = ';'
	}

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("CSV vacío")
		}
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range productColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("falta la columna %q", col)
		}
	}

	var out []dto.ProductRequest
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		field := func(col string) string { return strings.TrimSpace(rec[idx[col]]) }

		price, err := decimal.NewFromString(strings.Replace(field("price"), ",", ".", 1))
		if err != nil {
			return nil, fmt.Errorf("línea %d: precio inválido %q", line, field("price"))
		}
		stock, err := strconv.Atoi(field("stock"))
		if err != nil {
			return nil, fmt.Errorf("línea %d: stock inválido %q", line, field("stock"))
		}
		out = append(out, dto.ProductRequest{
			Name:     field("name"),
			Category: field("category"),
			Price:    price,
			Stock:    stock,
		})
	}
	return out, nil
}
