package dto

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// NewProductResponse convierte la entidad en su representación HTTP.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// NewSaleResponse convierte la venta; conserva los null del producto eliminado.
func NewSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:          s.ID,
		Customer:    s.Customer,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		Date:        s.Date.Format(DateLayout),
		Total:       s.Total,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// NewSaleResponses convierte una lista de ventas.
func NewSaleResponses(list []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, NewSaleResponse(s))
	}
	return out
}

// NewBidResponse convierte la licitación.
func NewBidResponse(b *entity.Bid) BidResponse {
	return BidResponse{
		ID:             b.ID,
		Number:         b.Number,
		PublicEntity:   b.PublicEntity,
		EstimatedValue: b.EstimatedValue,
		OpeningDate:    b.OpeningDate.Format(DateLayout),
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
