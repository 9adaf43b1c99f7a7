package dims

import "github.com/teranos/quanta/engine"

// QuantityData is the payload of a quantity token: a measured amount of an
// optional product ("two cups of sugar").
type QuantityData struct {
	Value   float64
	Unit    string
	Product string
}

// NumericValue implements engine.NumericPayload.
func (q QuantityData) NumericValue() float64 {
	return q.Value
}

// QuantityValue is the resolved value of a quantity span.
type QuantityValue struct {
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Product string  `json:"product,omitempty"`
}

func convertQuantity(payload any, _ engine.ResolutionContext) any {
	q, ok := payload.(QuantityData)
	if !ok {
		return nil
	}
	return QuantityValue{Value: q.Value, Unit: q.Unit, Product: q.Product}
}
