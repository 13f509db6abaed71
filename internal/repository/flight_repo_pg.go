package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, flight_number, origin, destination, scheduled_departure, status, COALESCE(gate, '')`

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY scheduled_departure, id`)
	if err != nil {
		return nil, translate("list flights", err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, translate("scan flight", err)
		}
		flights = append(flights, f)
	}
	return flights, translate("list flights", rows.Err())
}

func (r *PGFlightRepository) GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE flight_number=$1 ORDER BY id LIMIT 1`, flightNumber)
	f, err := scanFlight(row)
	if err != nil {
		return nil, translate("get flight "+flightNumber, err)
	}
	return &f, nil
}

// Create inserts the flight unless a flight with the same number exists.
func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	err := r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, origin, destination, scheduled_departure, status, gate)
		SELECT $1, $2, $3, $4, $5, NULLIF($6, '')
		WHERE NOT EXISTS (SELECT 1 FROM flights WHERE flight_number=$1)
		RETURNING id`,
		flight.FlightNumber, flight.Origin, flight.Destination, flight.ScheduledDeparture, flight.Status, flight.Gate).
		Scan(&flight.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Conflictf("flight %s already exists", flight.FlightNumber)
	}
	return translate("create flight", err)
}

func scanFlight(row pgx.Row) (domain.Flight, error) {
	var f domain.Flight
	err := row.Scan(&f.ID, &f.FlightNumber, &f.Origin, &f.Destination, &f.ScheduledDeparture, &f.Status, &f.Gate)
	return f, err
}

var _ FlightRepository = (*PGFlightRepository)(nil)
