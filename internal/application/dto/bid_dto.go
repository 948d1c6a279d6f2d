package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BidRequest entrada para crear o modificar una licitación. Status vacío = OPEN.
type BidRequest struct {
	Number         string          `json:"number" validate:"required,notblank,max=100"`
	PublicEntity   string          `json:"public_entity" validate:"required,notblank,max=200"`
	EstimatedValue decimal.Decimal `json:"estimated_value" validate:"dgt=0"`
	OpeningDate    string          `json:"opening_date" validate:"required,datetime=2006-01-02"`
	Status         string          `json:"status" validate:"omitempty,oneof=OPEN UNDER_REVIEW WON LOST"`
}

// BidResponse salida de una licitación.
type BidResponse struct {
	ID             int64           `json:"id"`
	Number         string          `json:"number"`
	PublicEntity   string          `json:"public_entity"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	OpeningDate    string          `json:"opening_date"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
