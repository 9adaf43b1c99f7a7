package dims

import "github.com/teranos/quanta/engine"

// NumeralData is the payload of a numeral token.
type NumeralData struct {
	Value float64

	// Grain counts the trailing decimal zeros of the value: 1 for
	// "twenty", 3 for "thousand", 0 when unset. Composition rules use it
	// to decide whether a following value may be absorbed ("two hundred
	// five" fires because 5 fits under 10^2).
	Grain int

	// Multipliable marks values eligible to combine with a following
	// magnitude word ("two" in "two hundred").
	Multipliable bool
}

// NumericValue implements engine.NumericPayload.
func (n NumeralData) NumericValue() float64 {
	return n.Value
}

// NumeralValue is the resolved value of a numeral span.
type NumeralValue struct {
	Value float64 `json:"value"`
}

func convertNumeral(payload any, _ engine.ResolutionContext) any {
	n, ok := payload.(NumeralData)
	if !ok {
		return nil
	}
	return NumeralValue{Value: n.Value}
}

// OrdinalData is the payload of an ordinal token.
type OrdinalData struct {
	Value int
}

// NumericValue implements engine.NumericPayload.
func (o OrdinalData) NumericValue() float64 {
	return float64(o.Value)
}

// OrdinalValue is the resolved value of an ordinal span.
type OrdinalValue struct {
	Value int `json:"value"`
}

func convertOrdinal(payload any, _ engine.ResolutionContext) any {
	o, ok := payload.(OrdinalData)
	if !ok {
		return nil
	}
	return OrdinalValue{Value: o.Value}
}
