package load

import (
	"encoding/json"
	"math"
	"strconv"
)

const (
	// smallThreshold is the largest raw load, in kg, rounded to whole kilos.
	smallThreshold = 20.0
	smallIncrement = 1.0
	plateIncrement = 2.5
)

// Kg is a load in kilograms.
type Kg float64

// String formats the load with one decimal, e.g. "22.5 kg".
func (k Kg) String() string {
	return strconv.FormatFloat(float64(k), 'f', 1, 64) + " kg"
}

// MarshalJSON encodes the load with one decimal so 40 is sent as 40.0.
func (k Kg) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(k), 'f', 1, 64)), nil
}

// UnmarshalJSON decodes a plain JSON number.
func (k *Kg) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*k = Kg(f)
	return nil
}

// Increment returns the rounding step for a raw load: 1 kg up to and
// including 20 kg, 2.5 kg above.
func Increment(raw float64) float64 {
	if raw > smallThreshold {
		return plateIncrement
	}
	return smallIncrement
}

// Round rounds a raw load to the nearest increment. Ties go away from
// zero (math.Round).
func Round(raw float64) Kg {
	inc := Increment(raw)
	return Kg(math.Round(raw/inc) * inc)
}
