package dims

import "github.com/teranos/quanta/engine"

// AmountData is the payload shared by the unit-bearing dimensions
// (distance, temperature, volume): a value plus a normalized unit name.
type AmountData struct {
	Value float64
	Unit  string
}

// NumericValue implements engine.NumericPayload.
func (a AmountData) NumericValue() float64 {
	return a.Value
}

// AmountValue is the resolved value of a unit-bearing span.
type AmountValue struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func convertAmount(payload any, _ engine.ResolutionContext) any {
	a, ok := payload.(AmountData)
	if !ok {
		return nil
	}
	return AmountValue{Value: a.Value, Unit: a.Unit}
}

// FinanceData is the payload of a currency amount token.
type FinanceData struct {
	Value    float64
	Currency string
}

// NumericValue implements engine.NumericPayload.
func (f FinanceData) NumericValue() float64 {
	return f.Value
}

// FinanceValue is the resolved value of a currency span.
type FinanceValue struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

func convertFinance(payload any, _ engine.ResolutionContext) any {
	f, ok := payload.(FinanceData)
	if !ok {
		return nil
	}
	return FinanceValue{Value: f.Value, Currency: f.Currency}
}
