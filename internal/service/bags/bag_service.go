package bags

import (
	"context"
	"time"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/Domenick1991/airport-pps/internal/logger"
	"github.com/Domenick1991/airport-pps/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type BagUseCase interface {
	ListForPassenger(ctx context.Context, passengerID int64) ([]domain.BagDrop, error)
	Register(ctx context.Context, input RegisterBagInput) (*domain.BagDrop, error)
}

type RegisterBagInput struct {
	PassengerID  int64   `json:"passengerId"`
	BagTagNumber string  `json:"bagTagNumber"`
	WeightKg     float64 `json:"weightKg"`
}

// Locker serialises bag registration for one passenger across processes.
type Locker interface {
	AcquireBagLock(ctx context.Context, passengerID int64, ttl time.Duration) (token string, ok bool, err error)
	ReleaseBagLock(ctx context.Context, passengerID int64, token string) error
}

var tracer = otel.Tracer("github.com/Domenick1991/airport-pps/internal/service/bags")

type BagService struct {
	bags       repository.BagRepository
	passengers repository.PassengerRepository
	log        *logger.Logger
	locker     Locker
	lockTTL    time.Duration
	now        func() time.Time
}

type BagServiceOption func(*BagService)

// WithLocker makes Register hold a per-passenger lock around the
// count-then-insert sequence.
func WithLocker(locker Locker, ttl time.Duration) BagServiceOption {
	return func(s *BagService) {
		s.locker = locker
		s.lockTTL = ttl
	}
}

func WithClock(now func() time.Time) BagServiceOption {
	return func(s *BagService) {
		s.now = now
	}
}

func NewBagService(
	bags repository.BagRepository,
	passengers repository.PassengerRepository,
	log *logger.Logger,
	opts ...BagServiceOption,
) *BagService {
	service := &BagService{
		bags:       bags,
		passengers: passengers,
		log:        log,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BagService) ListForPassenger(ctx context.Context, passengerID int64) ([]domain.BagDrop, error) {
	return s.bags.ListByPassenger(ctx, passengerID)
}

// Register checks, in order: the passenger exists, is checked in, the weight
// is within limits, the tag is well formed and the passenger has room for
// another bag. Duplicate tags are rejected by the store.
func (s *BagService) Register(ctx context.Context, input RegisterBagInput) (*domain.BagDrop, error) {
	ctx, span := tracer.Start(ctx, "bags.Register")
	defer span.End()
	span.SetAttributes(attribute.Int64("pps.passenger_id", input.PassengerID))

	p, err := s.passengers.GetByID(ctx, input.PassengerID)
	if err != nil {
		return nil, err
	}
	if err := p.CanRegisterBag(); err != nil {
		return nil, err
	}
	weight, err := domain.ValidateBagWeight(input.WeightKg)
	if err != nil {
		return nil, err
	}
	if !domain.ValidBagTag(input.BagTagNumber) {
		return nil, domain.InvalidArgumentf("bag tag number must be exactly 10 digits, got %q", input.BagTagNumber)
	}

	if s.locker != nil {
		release, err := s.lock(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	count, err := s.bags.CountByPassenger(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxBagsPerPassenger {
		return nil, domain.Conflictf("passenger already has the maximum of %d bags registered", domain.MaxBagsPerPassenger)
	}

	bag := &domain.BagDrop{
		PassengerID:  p.ID,
		BagTagNumber: input.BagTagNumber,
		Weight:       weight,
		Status:       domain.BagStatusRegistered,
		RegisteredAt: s.now().UTC(),
	}
	if err := s.bags.Create(ctx, bag); err != nil {
		return nil, err
	}

	s.log.Info("bag registered",
		"bag_tag", bag.BagTagNumber,
		"weight_kg", bag.Weight.Kg(),
		"passenger_id", bag.PassengerID)
	return bag, nil
}

// lock takes the passenger's bag lock. Lock backend errors degrade to an
// unguarded registration.
func (s *BagService) lock(ctx context.Context, passengerID int64) (func(), error) {
	token, ok, err := s.locker.AcquireBagLock(ctx, passengerID, s.lockTTL)
	if err != nil {
		s.log.Warn("bag lock unavailable, registering without it", "passenger_id", passengerID, "error", err)
		return func() {}, nil
	}
	if !ok {
		return nil, domain.Conflictf("bag registration already in progress for passenger %d", passengerID)
	}
	return func() {
		if err := s.locker.ReleaseBagLock(context.WithoutCancel(ctx), passengerID, token); err != nil {
			s.log.Warn("failed to release bag lock", "passenger_id", passengerID, "error", err)
		}
	}, nil
}

var _ BagUseCase = (*BagService)(nil)
