package dims

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/quanta/engine"
	"github.com/teranos/quanta/errors"
)

func TestFromString(t *testing.T) {
	d, err := FromString("numeral")
	require.NoError(t, err)
	assert.Equal(t, Numeral, d)

	d, err = FromString("  Phone-Number ")
	require.NoError(t, err)
	assert.Equal(t, PhoneNumber, d)

	_, err = FromString("astrology")
	assert.True(t, errors.Is(err, errors.ErrUnknownDimension))
}

func TestConvertersCoverEveryDimension(t *testing.T) {
	converters := Converters()
	for _, d := range All() {
		assert.Contains(t, converters, d)
	}
	assert.Len(t, converters, len(All()))
}

func TestConvertNumeralAndOrdinal(t *testing.T) {
	rctx := engine.ResolutionContext{}

	assert.Equal(t, NumeralValue{Value: 33.5}, convertNumeral(NumeralData{Value: 33.5}, rctx))
	assert.Equal(t, OrdinalValue{Value: 31}, convertOrdinal(OrdinalData{Value: 31}, rctx))

	assert.Nil(t, convertNumeral(OrdinalData{Value: 3}, rctx), "foreign payloads are declined")
	assert.Nil(t, convertOrdinal(NumeralData{Value: 3}, rctx))
}

func TestConvertDurationNormalizes(t *testing.T) {
	rctx := engine.ResolutionContext{}

	v := convertDuration(DurationData{Value: 1.5, Unit: GrainHour}, rctx)
	require.IsType(t, DurationValue{}, v)
	assert.Equal(t, 90*time.Minute, v.(DurationValue).Normalized)

	v = convertDuration(DurationData{Value: 2, Unit: GrainMonth}, rctx)
	assert.Equal(t, 60*24*time.Hour, v.(DurationValue).Normalized, "months normalize as 30 days")
}

func TestConvertAmountAndFinance(t *testing.T) {
	rctx := engine.ResolutionContext{}

	assert.Equal(t, AmountValue{Value: 3, Unit: "mile"}, convertAmount(AmountData{Value: 3, Unit: "mile"}, rctx))
	assert.Equal(t, FinanceValue{Value: 20, Currency: "USD"}, convertFinance(FinanceData{Value: 20, Currency: "USD"}, rctx))
	assert.Equal(t, QuantityValue{Value: 2, Unit: "cup", Product: "sugar"},
		convertQuantity(QuantityData{Value: 2, Unit: "cup", Product: "sugar"}, rctx))
	assert.Equal(t, IdentValue{Value: "a@b.com"}, convertIdent(IdentData{Value: "a@b.com"}, rctx))
}
