package repository

import "github.com/jackc/pgx/v5/pgxpool"

// Store groups the repositories backing one storage engine.
type Store struct {
	Flights    FlightRepository
	Passengers PassengerRepository
	Bags       BagRepository
}

func NewPGStore(db *pgxpool.Pool) Store {
	return Store{
		Flights:    NewFlightRepository(db),
		Passengers: NewPassengerRepository(db),
		Bags:       NewBagRepository(db),
	}
}

func (s *MemoryStore) Store() Store {
	return Store{
		Flights:    s.Flights(),
		Passengers: s.Passengers(),
		Bags:       s.Bags(),
	}
}
