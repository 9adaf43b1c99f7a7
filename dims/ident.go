package dims

import "github.com/teranos/quanta/engine"

// IdentData is the payload of the purely textual dimensions: phone numbers,
// email addresses, URLs, and ad-hoc regex matches.
type IdentData struct {
	Value string
}

// IdentValue is the resolved value of a textual span.
type IdentValue struct {
	Value string `json:"value"`
}

func convertIdent(payload any, _ engine.ResolutionContext) any {
	d, ok := payload.(IdentData)
	if !ok {
		return nil
	}
	return IdentValue{Value: d.Value}
}
