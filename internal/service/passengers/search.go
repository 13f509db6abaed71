package passengers

import (
	"strings"

	"github.com/Domenick1991/airport-pps/internal/domain"
)

// SearchQuery holds the optional passenger filters. Empty fields are not applied.
type SearchQuery struct {
	FlightNumber  string `form:"flightNumber"`
	FullName      string `form:"fullName"`
	CheckInStatus string `form:"checkInStatus"`
}

type predicate func(p *domain.Passenger) bool

// predicate builds one closure per supplied filter and ANDs them together.
// A status that does not parse is ignored rather than rejected.
func (q SearchQuery) predicate() predicate {
	var preds []predicate

	if flight := domain.NormalizeFlightNumber(q.FlightNumber); flight != "" {
		preds = append(preds, func(p *domain.Passenger) bool {
			return p.FlightNumber == flight
		})
	}
	if name := strings.TrimSpace(q.FullName); name != "" {
		needle := strings.ToLower(name)
		preds = append(preds, func(p *domain.Passenger) bool {
			return strings.Contains(strings.ToLower(p.FullName), needle)
		})
	}
	if status, ok := domain.ParseCheckInStatus(q.CheckInStatus); ok {
		preds = append(preds, func(p *domain.Passenger) bool {
			return p.CheckInStatus == status
		})
	}

	return func(p *domain.Passenger) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}
