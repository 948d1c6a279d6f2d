package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BidStatus estado de una licitación.
type BidStatus string

const (
	BidStatusOpen        BidStatus = "OPEN"
	BidStatusUnderReview BidStatus = "UNDER_REVIEW"
	BidStatusWon         BidStatus = "WON"
	BidStatusLost        BidStatus = "LOST"
)

// Valid indica si el estado pertenece al enum.
func (s BidStatus) Valid() bool {
	switch s {
	case BidStatusOpen, BidStatusUnderReview, BidStatusWon, BidStatusLost:
		return true
	}
	return false
}

// IsActive: licitaciones en curso (abiertas o en análisis).
func (s BidStatus) IsActive() bool {
	return s == BidStatusOpen || s == BidStatusUnderReview
}

// Bid representa una licitación pública. Entidad independiente del stock.
type Bid struct {
	ID             int64
	Number         string
	PublicEntity   string
	EstimatedValue decimal.Decimal
	OpeningDate    time.Time
	Status         BidStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
