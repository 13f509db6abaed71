package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Domenick1991/airport-pps/internal/domain"
)

// passengerRecord is the primary passenger row together with the bags it owns.
type passengerRecord struct {
	passenger domain.Passenger
	bags      []domain.BagDrop
}

// MemoryStore keeps every entity in process memory. Passengers are keyed by id
// and own their bags; flight number lookups go through a secondary index.
// Reads return copies so callers always see a point-in-time view.
type MemoryStore struct {
	mu sync.RWMutex

	nextFlightID    int64
	nextPassengerID int64
	nextBagID       int64

	flights        map[int64]domain.Flight
	flightByNumber map[string]int64

	passengers         map[int64]*passengerRecord
	passengerByRef     map[string]int64
	passengersByFlight map[string]map[int64]struct{}
	bagTags            map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		flights:            make(map[int64]domain.Flight),
		flightByNumber:     make(map[string]int64),
		passengers:         make(map[int64]*passengerRecord),
		passengerByRef:     make(map[string]int64),
		passengersByFlight: make(map[string]map[int64]struct{}),
		bagTags:            make(map[string]int64),
	}
}

func (s *MemoryStore) Flights() FlightRepository       { return memFlights{s} }
func (s *MemoryStore) Passengers() PassengerRepository { return memPassengers{s} }
func (s *MemoryStore) Bags() BagRepository             { return memBags{s} }

type memFlights struct{ s *MemoryStore }

func (r memFlights) List(ctx context.Context) ([]domain.Flight, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	flights := make([]domain.Flight, 0, len(r.s.flights))
	for _, f := range r.s.flights {
		flights = append(flights, f)
	}
	sort.Slice(flights, func(i, j int) bool {
		if !flights[i].ScheduledDeparture.Equal(flights[j].ScheduledDeparture) {
			return flights[i].ScheduledDeparture.Before(flights[j].ScheduledDeparture)
		}
		return flights[i].ID < flights[j].ID
	})
	return flights, nil
}

func (r memFlights) GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.flightByNumber[flightNumber]
	if !ok {
		return nil, domain.NotFoundf("flight %s", flightNumber)
	}
	f := r.s.flights[id]
	return &f, nil
}

func (r memFlights) Create(ctx context.Context, flight *domain.Flight) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.flightByNumber[flight.FlightNumber]; ok {
		return domain.Conflictf("flight %s already exists", flight.FlightNumber)
	}
	r.s.nextFlightID++
	flight.ID = r.s.nextFlightID
	r.s.flights[flight.ID] = *flight
	r.s.flightByNumber[flight.FlightNumber] = flight.ID
	return nil
}

type memPassengers struct{ s *MemoryStore }

func (r memPassengers) Create(ctx context.Context, p *domain.Passenger) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.passengerByRef[p.BookingReference]; ok {
		return domain.Conflictf("booking reference %s already exists", p.BookingReference)
	}
	r.s.nextPassengerID++
	p.ID = r.s.nextPassengerID

	rec := &passengerRecord{passenger: *p}
	rec.passenger.Bags = nil
	r.s.passengers[p.ID] = rec
	r.s.passengerByRef[p.BookingReference] = p.ID
	r.s.index(p.FlightNumber, p.ID)
	return nil
}

func (r memPassengers) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.passengers[id]
	if !ok {
		return nil, domain.NotFoundf("passenger %d", id)
	}
	p := rec.passenger
	return &p, nil
}

func (r memPassengers) GetByBookingReference(ctx context.Context, bookingReference string) (*domain.Passenger, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.passengerByRef[bookingReference]
	if !ok {
		return nil, domain.NotFoundf("passenger %s", bookingReference)
	}
	p := r.s.passengers[id].passenger
	return &p, nil
}

func (r memPassengers) List(ctx context.Context) ([]domain.Passenger, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	passengers := make([]domain.Passenger, 0, len(r.s.passengers))
	for _, rec := range r.s.passengers {
		passengers = append(passengers, rec.passenger)
	}
	sortByID(passengers)
	return passengers, nil
}

func (r memPassengers) ListByFlight(ctx context.Context, flightNumber string) ([]domain.Passenger, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := r.s.passengersByFlight[flightNumber]
	passengers := make([]domain.Passenger, 0, len(ids))
	for id := range ids {
		rec := r.s.passengers[id]
		p := rec.passenger
		p.Bags = append([]domain.BagDrop(nil), rec.bags...)
		passengers = append(passengers, p)
	}
	sortByID(passengers)
	return passengers, nil
}

func (r memPassengers) CountByFlight(ctx context.Context) (map[string]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[string]int, len(r.s.passengersByFlight))
	for number, ids := range r.s.passengersByFlight {
		counts[number] = len(ids)
	}
	return counts, nil
}

// Update writes the mutable passenger fields. Last write wins.
func (r memPassengers) Update(ctx context.Context, p *domain.Passenger) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.passengers[p.ID]
	if !ok {
		return domain.NotFoundf("passenger %d", p.ID)
	}
	rec.passenger.SeatNumber = p.SeatNumber
	rec.passenger.CheckInStatus = p.CheckInStatus
	rec.passenger.UpdatedAt = p.UpdatedAt
	return nil
}

func (r memPassengers) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.passengers[id]
	if !ok {
		return domain.NotFoundf("passenger %d", id)
	}
	for _, b := range rec.bags {
		delete(r.s.bagTags, b.BagTagNumber)
	}
	delete(r.s.passengerByRef, rec.passenger.BookingReference)
	if ids := r.s.passengersByFlight[rec.passenger.FlightNumber]; ids != nil {
		delete(ids, id)
		if len(ids) == 0 {
			delete(r.s.passengersByFlight, rec.passenger.FlightNumber)
		}
	}
	delete(r.s.passengers, id)
	return nil
}

type memBags struct{ s *MemoryStore }

func (r memBags) ListByPassenger(ctx context.Context, passengerID int64) ([]domain.BagDrop, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.passengers[passengerID]
	if !ok {
		return []domain.BagDrop{}, nil
	}
	return append([]domain.BagDrop{}, rec.bags...), nil
}

func (r memBags) CountByPassenger(ctx context.Context, passengerID int64) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if rec, ok := r.s.passengers[passengerID]; ok {
		return len(rec.bags), nil
	}
	return 0, nil
}

func (r memBags) Create(ctx context.Context, b *domain.BagDrop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.passengers[b.PassengerID]
	if !ok {
		return domain.NotFoundf("passenger %d", b.PassengerID)
	}
	if _, dup := r.s.bagTags[b.BagTagNumber]; dup {
		return domain.Conflictf("bag tag %s already registered", b.BagTagNumber)
	}
	r.s.nextBagID++
	b.ID = r.s.nextBagID
	rec.bags = append(rec.bags, *b)
	r.s.bagTags[b.BagTagNumber] = b.PassengerID
	return nil
}

func (s *MemoryStore) index(flightNumber string, id int64) {
	ids, ok := s.passengersByFlight[flightNumber]
	if !ok {
		ids = make(map[int64]struct{})
		s.passengersByFlight[flightNumber] = ids
	}
	ids[id] = struct{}{}
}

func sortByID(passengers []domain.Passenger) {
	sort.Slice(passengers, func(i, j int) bool { return passengers[i].ID < passengers[j].ID })
}

var (
	_ FlightRepository    = memFlights{}
	_ PassengerRepository = memPassengers{}
	_ BagRepository       = memBags{}
)
