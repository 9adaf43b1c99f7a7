package dims

import (
	"time"

	"github.com/teranos/quanta/engine"
)

// DurationData is the payload of a duration token.
type DurationData struct {
	Value float64
	Unit  Grain
}

// DurationValue is the resolved value of a duration span. Normalized
// approximates months as 30 days and years as 365.
type DurationValue struct {
	Value      float64       `json:"value"`
	Unit       Grain         `json:"unit"`
	Normalized time.Duration `json:"normalized"`
}

func convertDuration(payload any, _ engine.ResolutionContext) any {
	d, ok := payload.(DurationData)
	if !ok {
		return nil
	}
	return DurationValue{
		Value:      d.Value,
		Unit:       d.Unit,
		Normalized: time.Duration(d.Value * float64(d.Unit.unit())),
	}
}
