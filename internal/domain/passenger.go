package domain

import (
	"fmt"
	"strings"
	"time"
)

type CheckInStatus string

const (
	CheckInStatusNotCheckedIn CheckInStatus = "NotCheckedIn"
	CheckInStatusCheckedIn    CheckInStatus = "CheckedIn"
	CheckInStatusBoarded      CheckInStatus = "Boarded"
	CheckInStatusNoShow       CheckInStatus = "NoShow"
)

var checkInStatuses = []CheckInStatus{
	CheckInStatusNotCheckedIn,
	CheckInStatusCheckedIn,
	CheckInStatusBoarded,
	CheckInStatusNoShow,
}

// ParseCheckInStatus matches s case-insensitively against the known statuses.
func ParseCheckInStatus(s string) (CheckInStatus, bool) {
	for _, st := range checkInStatuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, true
		}
	}
	return "", false
}

// Passenger owns its bags; Bags is only populated by reads that load them.
type Passenger struct {
	ID               int64
	FullName         string
	BookingReference string
	FlightNumber     string
	SeatNumber       string
	CheckInStatus    CheckInStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Bags             []BagDrop
}

// HasSeat reports whether a seat has been allocated.
func (p *Passenger) HasSeat() bool {
	return p.SeatNumber != ""
}

// CheckIn allocates seat and moves the passenger to CheckedIn. It may be
// repeated until the passenger boards; a repeat simply replaces the seat.
func (p *Passenger) CheckIn(seat string, now time.Time) error {
	switch p.CheckInStatus {
	case CheckInStatusBoarded:
		return Conflictf("passenger %s has already boarded and cannot be re-checked in", p.BookingReference)
	case CheckInStatusNotCheckedIn, CheckInStatusCheckedIn, CheckInStatusNoShow:
	default:
		return unknownStatus(p.CheckInStatus)
	}
	p.SeatNumber = seat
	p.CheckInStatus = CheckInStatusCheckedIn
	p.UpdatedAt = now
	return nil
}

// Board moves a checked-in passenger to Boarded.
func (p *Passenger) Board(now time.Time) error {
	switch p.CheckInStatus {
	case CheckInStatusCheckedIn:
	case CheckInStatusNotCheckedIn, CheckInStatusBoarded, CheckInStatusNoShow:
		return Conflictf("cannot board passenger with status '%s'; passenger must be checked in first", p.CheckInStatus)
	default:
		return unknownStatus(p.CheckInStatus)
	}
	p.CheckInStatus = CheckInStatusBoarded
	p.UpdatedAt = now
	return nil
}

// CanRegisterBag reports whether bags may be dropped for the passenger.
func (p *Passenger) CanRegisterBag() error {
	switch p.CheckInStatus {
	case CheckInStatusCheckedIn:
		return nil
	case CheckInStatusNotCheckedIn, CheckInStatusBoarded, CheckInStatusNoShow:
		return Conflictf("bags can only be registered for checked-in passengers (status '%s')", p.CheckInStatus)
	default:
		return unknownStatus(p.CheckInStatus)
	}
}

// AccountedFor reports whether the passenger needs no further action at the gate.
func (p *Passenger) AccountedFor() bool {
	switch p.CheckInStatus {
	case CheckInStatusBoarded, CheckInStatusNoShow:
		return true
	case CheckInStatusNotCheckedIn, CheckInStatusCheckedIn:
		return false
	default:
		return false
	}
}

func unknownStatus(s CheckInStatus) error {
	return fmt.Errorf("%w: unknown check-in status %q", ErrInvalidArgument, s)
}
