// Package dims defines the built-in dimensions of quanta: their tags,
// payload types, and value converters.
//
// Payload types are the engine-internal shape carried by tokens; converters
// turn them into the caller-facing resolved values. All payload types are
// comparable structs so the token pool can collapse duplicates. New
// dimensions are added by registering a tag, payload, rules, and converter
// on the parser; nothing here is special to the engine.
package dims

import (
	"sort"
	"strings"

	"github.com/teranos/quanta/engine"
	"github.com/teranos/quanta/errors"
)

// The closed set of built-in dimensions.
const (
	Numeral     engine.Dimension = "numeral"
	Ordinal     engine.Dimension = "ordinal"
	Time        engine.Dimension = "time"
	Duration    engine.Dimension = "duration"
	Distance    engine.Dimension = "distance"
	Temperature engine.Dimension = "temperature"
	Volume      engine.Dimension = "volume"
	Quantity    engine.Dimension = "quantity"
	Finance     engine.Dimension = "finance"
	PhoneNumber engine.Dimension = "phone-number"
	Email       engine.Dimension = "email"
	Url         engine.Dimension = "url"
	RegexMatch  engine.Dimension = "regex"
)

// All returns the built-in dimensions in a stable order.
func All() []engine.Dimension {
	return []engine.Dimension{
		Numeral, Ordinal, Time, Duration, Distance, Temperature,
		Volume, Quantity, Finance, PhoneNumber, Email, Url, RegexMatch,
	}
}

// FromString resolves a dimension name as used on the CLI and in requests.
func FromString(s string) (engine.Dimension, error) {
	d := engine.Dimension(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range All() {
		if d == known {
			return d, nil
		}
	}
	return "", errors.Wrapf(errors.ErrUnknownDimension, "%q", s)
}

// Names returns the built-in dimension names, sorted, for help output.
func Names() []string {
	out := make([]string, 0, len(All()))
	for _, d := range All() {
		out = append(out, string(d))
	}
	sort.Strings(out)
	return out
}

// Converters returns the value converters for every built-in dimension.
func Converters() map[engine.Dimension]engine.Converter {
	return map[engine.Dimension]engine.Converter{
		Numeral:     convertNumeral,
		Ordinal:     convertOrdinal,
		Time:        convertTime,
		Duration:    convertDuration,
		Distance:    convertAmount,
		Temperature: convertAmount,
		Volume:      convertAmount,
		Quantity:    convertQuantity,
		Finance:     convertFinance,
		PhoneNumber: convertIdent,
		Email:       convertIdent,
		Url:         convertIdent,
		RegexMatch:  convertIdent,
	}
}
