package passengers

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/Domenick1991/airport-pps/internal/logger"
	"github.com/Domenick1991/airport-pps/internal/notifier"
	"github.com/Domenick1991/airport-pps/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type PassengerUseCase interface {
	Register(ctx context.Context, input RegisterPassengerInput) (*domain.Passenger, error)
	Lookup(ctx context.Context, bookingReference string) (*domain.Passenger, error)
	CheckIn(ctx context.Context, input CheckInInput) (*domain.Passenger, error)
	Board(ctx context.Context, bookingReference string) (*BoardResult, error)
	Search(ctx context.Context, query SearchQuery) ([]domain.Passenger, error)
}

type RegisterPassengerInput struct {
	FullName         string `json:"fullName"`
	BookingReference string `json:"bookingReference"`
	FlightNumber     string `json:"flightNumber"`
}

type CheckInInput struct {
	BookingReference string `json:"bookingReference"`
	SeatNumber       string `json:"seatNumber"`
}

// BoardResult carries the boarded passenger. NotifyErr is set when the
// boarding event could not be published; the status change stands regardless.
type BoardResult struct {
	Passenger *domain.Passenger
	NotifyErr error
}

const defaultPublishTimeout = 3 * time.Second

var tracer = otel.Tracer("github.com/Domenick1991/airport-pps/internal/service/passengers")

type PassengerService struct {
	passengers     repository.PassengerRepository
	notifier       notifier.Notifier
	log            *logger.Logger
	publishTimeout time.Duration
	now            func() time.Time
	newEventID     func() string
}

type PassengerServiceOption func(*PassengerService)

// WithPublishTimeout bounds the synchronous notifier call made by Board.
func WithPublishTimeout(d time.Duration) PassengerServiceOption {
	return func(s *PassengerService) {
		if d > 0 {
			s.publishTimeout = d
		}
	}
}

func WithClock(now func() time.Time) PassengerServiceOption {
	return func(s *PassengerService) {
		s.now = now
	}
}

func NewPassengerService(
	passengers repository.PassengerRepository,
	n notifier.Notifier,
	log *logger.Logger,
	opts ...PassengerServiceOption,
) *PassengerService {
	service := &PassengerService{
		passengers:     passengers,
		notifier:       n,
		log:            log,
		publishTimeout: defaultPublishTimeout,
		now:            time.Now,
		newEventID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *PassengerService) Register(ctx context.Context, input RegisterPassengerInput) (*domain.Passenger, error) {
	name := strings.TrimSpace(input.FullName)
	if name == "" {
		return nil, domain.InvalidArgumentf("full name is required")
	}
	ref := domain.NormalizeBookingReference(input.BookingReference)
	if !domain.ValidBookingReference(ref) {
		return nil, domain.InvalidArgumentf("booking reference must be exactly 6 alphanumeric characters, got %q", input.BookingReference)
	}
	flight := domain.NormalizeFlightNumber(input.FlightNumber)
	if flight == "" {
		return nil, domain.InvalidArgumentf("flight number is required")
	}

	now := s.now().UTC()
	p := &domain.Passenger{
		FullName:         name,
		BookingReference: ref,
		FlightNumber:     flight,
		CheckInStatus:    domain.CheckInStatusNotCheckedIn,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.passengers.Create(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("passenger registered", "passenger_id", p.ID, "booking_reference", p.BookingReference, "flight", p.FlightNumber)
	return p, nil
}

func (s *PassengerService) Lookup(ctx context.Context, bookingReference string) (*domain.Passenger, error) {
	return s.passengers.GetByBookingReference(ctx, domain.NormalizeBookingReference(bookingReference))
}

func (s *PassengerService) CheckIn(ctx context.Context, input CheckInInput) (*domain.Passenger, error) {
	seat := strings.TrimSpace(input.SeatNumber)
	if seat == "" {
		return nil, domain.InvalidArgumentf("seat number is required")
	}

	p, err := s.passengers.GetByBookingReference(ctx, domain.NormalizeBookingReference(input.BookingReference))
	if err != nil {
		return nil, err
	}
	if err := p.CheckIn(seat, s.now().UTC()); err != nil {
		return nil, err
	}
	if err := s.passengers.Update(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("passenger checked in",
		"passenger_id", p.ID,
		"full_name", p.FullName,
		"seat", p.SeatNumber,
		"flight", p.FlightNumber)
	return p, nil
}

// Board commits the Boarded status first and then publishes exactly one
// boarding event. A publish failure is logged and returned in the result but
// never reverts the status.
func (s *PassengerService) Board(ctx context.Context, bookingReference string) (*BoardResult, error) {
	ctx, span := tracer.Start(ctx, "passengers.Board")
	defer span.End()

	ref := domain.NormalizeBookingReference(bookingReference)
	span.SetAttributes(attribute.String("pps.booking_reference", ref))

	p, err := s.passengers.GetByBookingReference(ctx, ref)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if err := p.Board(now); err != nil {
		return nil, err
	}
	if err := s.passengers.Update(ctx, p); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.log.Info("passenger boarded",
		"passenger_id", p.ID,
		"full_name", p.FullName,
		"flight", p.FlightNumber)

	result := &BoardResult{Passenger: p}
	event := domain.BoardingEvent{
		EventID:          s.newEventID(),
		BookingReference: p.BookingReference,
		FlightNumber:     p.FlightNumber,
		PassengerName:    p.FullName,
		SeatNumber:       p.SeatNumber,
		BoardedAtUtc:     now,
	}
	if err := s.publish(ctx, event); err != nil {
		span.RecordError(err)
		s.log.Warn("boarding event not published",
			"booking_reference", p.BookingReference,
			"event_id", event.EventID,
			"error", err)
		result.NotifyErr = err
	}
	return result, nil
}

// publish runs detached from the caller's cancellation so a dropped client
// connection does not abort it; the publish timeout still bounds it.
func (s *PassengerService) publish(ctx context.Context, event domain.BoardingEvent) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	err := s.notifier.Publish(ctx, event)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrExternalDependency) {
		return err
	}
	return domain.External("publish boarding event", err)
}

// Search returns passengers matching every supplied filter, ordered by full name.
func (s *PassengerService) Search(ctx context.Context, query SearchQuery) ([]domain.Passenger, error) {
	var candidates []domain.Passenger
	var err error
	if flight := domain.NormalizeFlightNumber(query.FlightNumber); flight != "" {
		candidates, err = s.passengers.ListByFlight(ctx, flight)
	} else {
		candidates, err = s.passengers.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	match := query.predicate()
	results := make([]domain.Passenger, 0, len(candidates))
	for i := range candidates {
		p := candidates[i]
		if !match(&p) {
			continue
		}
		p.Bags = nil
		results = append(results, p)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FullName < results[j].FullName
	})
	return results, nil
}

var _ PassengerUseCase = (*PassengerService)(nil)
