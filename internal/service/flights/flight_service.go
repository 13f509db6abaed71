package flights

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/Domenick1991/airport-pps/internal/logger"
	"github.com/Domenick1991/airport-pps/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type FlightUseCase interface {
	Register(ctx context.Context, input RegisterFlightInput) (*domain.FlightSummary, error)
	List(ctx context.Context) ([]domain.FlightSummary, error)
	GetByNumber(ctx context.Context, flightNumber string) (*domain.FlightSummary, error)
	Manifest(ctx context.Context, flightNumber string) ([]domain.ManifestEntry, error)
	Stats(ctx context.Context, flightNumber string) (*domain.FlightStats, error)
}

type RegisterFlightInput struct {
	FlightNumber       string    `json:"flightNumber"`
	Origin             string    `json:"origin"`
	Destination        string    `json:"destination"`
	ScheduledDeparture time.Time `json:"scheduledDeparture"`
	Status             string    `json:"status"`
	Gate               string    `json:"gate"`
}

// FlightCache holds the raw flight rows. Passenger counts are never cached.
type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

var tracer = otel.Tracer("github.com/Domenick1991/airport-pps/internal/service/flights")

type FlightService struct {
	flights    repository.FlightRepository
	passengers repository.PassengerRepository
	cache      FlightCache
	log        *logger.Logger
}

// NewFlightService accepts a nil cache.
func NewFlightService(
	flights repository.FlightRepository,
	passengers repository.PassengerRepository,
	cache FlightCache,
	log *logger.Logger,
) *FlightService {
	return &FlightService{flights: flights, passengers: passengers, cache: cache, log: log}
}

func (s *FlightService) Register(ctx context.Context, input RegisterFlightInput) (*domain.FlightSummary, error) {
	number := domain.NormalizeFlightNumber(input.FlightNumber)
	if !domain.ValidFlightNumber(number) {
		return nil, domain.InvalidArgumentf("invalid flight number %q", input.FlightNumber)
	}
	origin := strings.ToUpper(strings.TrimSpace(input.Origin))
	destination := strings.ToUpper(strings.TrimSpace(input.Destination))
	if !domain.ValidAirportCode(origin) || !domain.ValidAirportCode(destination) {
		return nil, domain.InvalidArgumentf("origin and destination must be 3-letter airport codes")
	}
	if input.ScheduledDeparture.IsZero() {
		return nil, domain.InvalidArgumentf("scheduled departure is required")
	}

	status := domain.FlightStatusScheduled
	if input.Status != "" {
		parsed, ok := domain.ParseFlightStatus(input.Status)
		if !ok {
			return nil, domain.InvalidArgumentf("unknown flight status %q", input.Status)
		}
		status = parsed
	}

	flight := &domain.Flight{
		FlightNumber:       number,
		Origin:             origin,
		Destination:        destination,
		ScheduledDeparture: input.ScheduledDeparture.UTC(),
		Status:             status,
		Gate:               strings.ToUpper(strings.TrimSpace(input.Gate)),
	}
	if err := s.flights.Create(ctx, flight); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			s.log.Warn("failed to invalidate flight cache", "error", err)
		}
	}

	s.log.Info("flight registered", "flight", flight.FlightNumber, "origin", flight.Origin, "destination", flight.Destination)
	return &domain.FlightSummary{Flight: *flight}, nil
}

// List returns every flight with a live passenger count.
func (s *FlightService) List(ctx context.Context) ([]domain.FlightSummary, error) {
	flights, err := s.listFlights(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.passengers.CountByFlight(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.FlightSummary, 0, len(flights))
	for _, f := range flights {
		summaries = append(summaries, domain.FlightSummary{
			Flight:         f,
			PassengerCount: counts[domain.NormalizeFlightNumber(f.FlightNumber)],
		})
	}
	return summaries, nil
}

func (s *FlightService) listFlights(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.log.Debug("flight cache read failed", "error", err)
		}
	}

	flights, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			s.log.Debug("flight cache write failed", "error", err)
		}
	}
	return flights, nil
}

func (s *FlightService) GetByNumber(ctx context.Context, flightNumber string) (*domain.FlightSummary, error) {
	flight, err := s.flights.GetByNumber(ctx, domain.NormalizeFlightNumber(flightNumber))
	if err != nil {
		return nil, err
	}
	counts, err := s.passengers.CountByFlight(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.FlightSummary{
		Flight:         *flight,
		PassengerCount: counts[flight.FlightNumber],
	}, nil
}

// Manifest lists the flight's passengers seated first, by row then seat, with
// unseated passengers last. Name breaks any remaining tie.
func (s *FlightService) Manifest(ctx context.Context, flightNumber string) ([]domain.ManifestEntry, error) {
	ctx, span := tracer.Start(ctx, "flights.Manifest")
	defer span.End()

	passengers, err := s.flightPassengers(ctx, flightNumber)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("pps.passengers", len(passengers)))

	sort.SliceStable(passengers, func(i, j int) bool {
		return manifestLess(&passengers[i], &passengers[j])
	})

	entries := make([]domain.ManifestEntry, 0, len(passengers))
	for _, p := range passengers {
		bags := p.Bags
		if bags == nil {
			bags = []domain.BagDrop{}
		}
		entries = append(entries, domain.ManifestEntry{
			FullName:         p.FullName,
			BookingReference: p.BookingReference,
			SeatNumber:       p.SeatNumber,
			CheckInStatus:    p.CheckInStatus,
			Bags:             bags,
		})
	}
	return entries, nil
}

func manifestLess(a, b *domain.Passenger) bool {
	if a.HasSeat() != b.HasSeat() {
		return a.HasSeat()
	}
	if a.HasSeat() {
		if ra, rb := domain.SeatRow(a.SeatNumber), domain.SeatRow(b.SeatNumber); ra != rb {
			return ra < rb
		}
		if a.SeatNumber != b.SeatNumber {
			return a.SeatNumber < b.SeatNumber
		}
	}
	return a.FullName < b.FullName
}

func (s *FlightService) Stats(ctx context.Context, flightNumber string) (*domain.FlightStats, error) {
	ctx, span := tracer.Start(ctx, "flights.Stats")
	defer span.End()

	passengers, err := s.flightPassengers(ctx, flightNumber)
	if err != nil {
		return nil, err
	}

	stats := &domain.FlightStats{
		FlightNumber:              domain.NormalizeFlightNumber(flightNumber),
		TotalPassengers:           len(passengers),
		AllPassengersAccountedFor: true,
	}
	for i := range passengers {
		p := &passengers[i]
		switch p.CheckInStatus {
		case domain.CheckInStatusCheckedIn:
			stats.CheckedIn++
		case domain.CheckInStatusBoarded:
			stats.Boarded++
		case domain.CheckInStatusNotCheckedIn:
			stats.NotCheckedIn++
		case domain.CheckInStatusNoShow:
			stats.NoShows++
		default:
			return nil, domain.InvalidArgumentf("passenger %s has unknown check-in status %q", p.BookingReference, p.CheckInStatus)
		}
		if !p.AccountedFor() {
			stats.AllPassengersAccountedFor = false
		}
		for _, bag := range p.Bags {
			stats.TotalBagWeight += bag.Weight
			stats.TotalBags++
		}
	}
	return stats, nil
}

// flightPassengers resolves the flight first so an unknown flight is NotFound
// rather than an empty list.
func (s *FlightService) flightPassengers(ctx context.Context, flightNumber string) ([]domain.Passenger, error) {
	flight, err := s.flights.GetByNumber(ctx, domain.NormalizeFlightNumber(flightNumber))
	if err != nil {
		return nil, err
	}
	return s.passengers.ListByFlight(ctx, flight.FlightNumber)
}

var _ FlightUseCase = (*FlightService)(nil)
