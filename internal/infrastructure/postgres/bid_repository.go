package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.BidRepository = (*BidRepo)(nil)

const bidColumns = `id, number, public_entity, estimated_value, opening_date, status, created_at, updated_at`

// BidRepo implementación de BidRepository sobre PostgreSQL.
type BidRepo struct {
	q Querier
}

// NewBidRepository construye el adaptador de licitaciones.
func NewBidRepository(q Querier) *BidRepo {
	return &BidRepo{q: q}
}

// Create persiste una nueva licitación.
func (r *BidRepo) Create(ctx context.Context, bid *entity.Bid) error {
	query := `
		INSERT INTO bids (number, public_entity, estimated_value, opening_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, bid.Number, bid.PublicEntity, bid.EstimatedValue, bid.OpeningDate, string(bid.Status)).
		Scan(&bid.ID, &bid.CreatedAt, &bid.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert bid: %w", err)
	}
	return nil
}

// GetByID obtiene una licitación por ID. Devuelve (nil, nil) si no existe.
func (r *BidRepo) GetByID(ctx context.Context, id int64) (*entity.Bid, error) {
	b, err := scanBid(r.q.QueryRow(ctx, `SELECT `+bidColumns+` FROM bids WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bid: %w", err)
	}
	return b, nil
}

// List devuelve las licitaciones por fecha de apertura.
func (r *BidRepo) List(ctx context.Context) ([]*entity.Bid, error) {
	rows, err := r.q.Query(ctx, `SELECT `+bidColumns+` FROM bids ORDER BY opening_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Bid, 0)
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Update reemplaza todos los campos editables.
func (r *BidRepo) Update(ctx context.Context, bid *entity.Bid) error {
	query := `
		UPDATE bids SET number = $2, public_entity = $3, estimated_value = $4, opening_date = $5, status = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query, bid.ID, bid.Number, bid.PublicEntity, bid.EstimatedValue, bid.OpeningDate, string(bid.Status)).
		Scan(&bid.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrBidNotFound
		}
		return fmt.Errorf("update bid: %w", err)
	}
	return nil
}

// Delete elimina una licitación.
func (r *BidRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM bids WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bid: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrBidNotFound
	}
	return nil
}

func scanBid(row pgx.Row) (*entity.Bid, error) {
	var (
		b      entity.Bid
		status string
	)
	if err := row.Scan(&b.ID, &b.Number, &b.PublicEntity, &b.EstimatedValue, &b.OpeningDate, &status,
		&b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Status = entity.BidStatus(status)
	return &b, nil
}
