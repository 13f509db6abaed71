package repository

import (
	"context"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BagRepository interface {
	ListByPassenger(ctx context.Context, passengerID int64) ([]domain.BagDrop, error)
	CountByPassenger(ctx context.Context, passengerID int64) (int, error)
	Create(ctx context.Context, bag *domain.BagDrop) error
}

type PGBagRepository struct {
	db *pgxpool.Pool
}

func NewBagRepository(db *pgxpool.Pool) BagRepository {
	return &PGBagRepository{db: db}
}

// Weights are stored as numeric(5,2) kilograms and read back in hundredths.
const bagColumns = `id, passenger_id, bag_tag_number, (weight_kg * 100)::bigint, status, registered_at`

func (r *PGBagRepository) ListByPassenger(ctx context.Context, passengerID int64) ([]domain.BagDrop, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bagColumns+` FROM bag_drops WHERE passenger_id=$1 ORDER BY id`, passengerID)
	if err != nil {
		return nil, translate("list bags", err)
	}
	defer rows.Close()

	bags := make([]domain.BagDrop, 0)
	for rows.Next() {
		b, err := scanBag(rows)
		if err != nil {
			return nil, translate("scan bag", err)
		}
		bags = append(bags, b)
	}
	return bags, translate("list bags", rows.Err())
}

func (r *PGBagRepository) CountByPassenger(ctx context.Context, passengerID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bag_drops WHERE passenger_id=$1`, passengerID).Scan(&n)
	return n, translate("count bags", err)
}

func (r *PGBagRepository) Create(ctx context.Context, b *domain.BagDrop) error {
	err := r.db.QueryRow(ctx, `INSERT INTO bag_drops (passenger_id, bag_tag_number, weight_kg, status, registered_at)
		VALUES ($1, $2, $3::numeric / 100, $4, $5)
		RETURNING id`,
		b.PassengerID, b.BagTagNumber, int64(b.Weight), b.Status, b.RegisteredAt).
		Scan(&b.ID)
	return translate("create bag", err)
}

func scanBag(row pgx.Row) (domain.BagDrop, error) {
	var b domain.BagDrop
	var weight int64
	if err := row.Scan(&b.ID, &b.PassengerID, &b.BagTagNumber, &weight, &b.Status, &b.RegisteredAt); err != nil {
		return b, err
	}
	b.Weight = domain.Weight(weight)
	return b, nil
}

var _ BagRepository = (*PGBagRepository)(nil)
