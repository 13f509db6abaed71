package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

const (
	MaxBagWeightKg      = 32.0
	MaxBagsPerPassenger = 5
)

type BagStatus string

const (
	BagStatusRegistered BagStatus = "Registered"
	BagStatusScreened   BagStatus = "Screened"
	BagStatusLoaded     BagStatus = "Loaded"
	BagStatusOffloaded  BagStatus = "Offloaded"
)

type BagDrop struct {
	ID           int64
	PassengerID  int64
	BagTagNumber string
	Weight       Weight
	Status       BagStatus
	RegisteredAt time.Time
}

// Weight is a bag weight in hundredths of a kilogram, so sums stay exact.
type Weight int64

// WeightFromKg rounds kg to the nearest hundredth.
func WeightFromKg(kg float64) Weight {
	return Weight(math.Round(kg * 100))
}

func (w Weight) Kg() float64 {
	return float64(w) / 100
}

func (w Weight) String() string {
	return strconv.FormatFloat(w.Kg(), 'f', -1, 64)
}

func (w Weight) MarshalJSON() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *Weight) UnmarshalJSON(data []byte) error {
	var kg float64
	if err := json.Unmarshal(data, &kg); err != nil {
		return err
	}
	*w = WeightFromKg(kg)
	return nil
}

// ValidateBagWeight rejects weights outside (0, 32] kg, including values that
// round to zero at the stored precision.
func ValidateBagWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || kg <= 0 || kg > MaxBagWeightKg {
		return 0, InvalidArgumentf("bag weight must be greater than 0 and at most %gkg, got %g", MaxBagWeightKg, kg)
	}
	w := WeightFromKg(kg)
	if w <= 0 {
		return 0, InvalidArgumentf("bag weight %gkg is below the recorded precision", kg)
	}
	return w, nil
}
