package repository

import (
	"context"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PassengerRepository interface {
	Create(ctx context.Context, passenger *domain.Passenger) error
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	GetByBookingReference(ctx context.Context, bookingReference string) (*domain.Passenger, error)
	// List returns every passenger without bags.
	List(ctx context.Context) ([]domain.Passenger, error)
	// ListByFlight returns the passengers booked on flightNumber with their bags loaded.
	ListByFlight(ctx context.Context, flightNumber string) ([]domain.Passenger, error)
	CountByFlight(ctx context.Context) (map[string]int, error)
	Update(ctx context.Context, passenger *domain.Passenger) error
	// Delete removes the passenger and every bag it owns.
	Delete(ctx context.Context, id int64) error
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

const passengerColumns = `id, full_name, booking_reference, flight_number, COALESCE(seat_number, ''), check_in_status, created_at, updated_at`

func (r *PGPassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	err := r.db.QueryRow(ctx, `INSERT INTO passengers (full_name, booking_reference, flight_number, seat_number, check_in_status, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
		RETURNING id`,
		p.FullName, p.BookingReference, p.FlightNumber, p.SeatNumber, p.CheckInStatus, p.CreatedAt, p.UpdatedAt).
		Scan(&p.ID)
	return translate("create passenger", err)
}

func (r *PGPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	p, err := scanPassenger(r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE id=$1`, id))
	if err != nil {
		return nil, translate("get passenger", err)
	}
	return &p, nil
}

func (r *PGPassengerRepository) GetByBookingReference(ctx context.Context, bookingReference string) (*domain.Passenger, error) {
	p, err := scanPassenger(r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE booking_reference=$1`, bookingReference))
	if err != nil {
		return nil, translate("get passenger "+bookingReference, err)
	}
	return &p, nil
}

func (r *PGPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	return r.query(ctx, "list passengers", `SELECT `+passengerColumns+` FROM passengers ORDER BY id`)
}

func (r *PGPassengerRepository) ListByFlight(ctx context.Context, flightNumber string) ([]domain.Passenger, error) {
	passengers, err := r.query(ctx, "list passengers by flight", `SELECT `+passengerColumns+` FROM passengers WHERE flight_number=$1 ORDER BY id`, flightNumber)
	if err != nil || len(passengers) == 0 {
		return passengers, err
	}

	ids := make([]int64, len(passengers))
	byID := make(map[int64]int, len(passengers))
	for i, p := range passengers {
		ids[i] = p.ID
		byID[p.ID] = i
	}

	rows, err := r.db.Query(ctx, `SELECT `+bagColumns+` FROM bag_drops WHERE passenger_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, translate("load bags", err)
	}
	defer rows.Close()
	for rows.Next() {
		b, err := scanBag(rows)
		if err != nil {
			return nil, translate("scan bag", err)
		}
		i := byID[b.PassengerID]
		passengers[i].Bags = append(passengers[i].Bags, b)
	}
	return passengers, translate("load bags", rows.Err())
}

func (r *PGPassengerRepository) CountByFlight(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `SELECT flight_number, COUNT(*) FROM passengers GROUP BY flight_number`)
	if err != nil {
		return nil, translate("count passengers", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var number string
		var n int
		if err := rows.Scan(&number, &n); err != nil {
			return nil, translate("scan passenger count", err)
		}
		counts[number] += n
	}
	return counts, translate("count passengers", rows.Err())
}

func (r *PGPassengerRepository) Update(ctx context.Context, p *domain.Passenger) error {
	cmd, err := r.db.Exec(ctx, `UPDATE passengers SET seat_number=NULLIF($1, ''), check_in_status=$2, updated_at=$3 WHERE id=$4`,
		p.SeatNumber, p.CheckInStatus, p.UpdatedAt, p.ID)
	if err != nil {
		return translate("update passenger", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundf("passenger %d", p.ID)
	}
	return nil
}

func (r *PGPassengerRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM passengers WHERE id=$1`, id)
	if err != nil {
		return translate("delete passenger", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundf("passenger %d", id)
	}
	return nil
}

func (r *PGPassengerRepository) query(ctx context.Context, op, sql string, args ...any) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translate(op, err)
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, translate("scan passenger", err)
		}
		passengers = append(passengers, p)
	}
	return passengers, translate(op, rows.Err())
}

func scanPassenger(row pgx.Row) (domain.Passenger, error) {
	var p domain.Passenger
	err := row.Scan(&p.ID, &p.FullName, &p.BookingReference, &p.FlightNumber, &p.SeatNumber, &p.CheckInStatus, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
