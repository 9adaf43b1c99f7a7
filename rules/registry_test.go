package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/teranos/quanta/dims"
	"github.com/teranos/quanta/engine"
	"github.com/teranos/quanta/errors"
)

func numeralRule(name string) engine.Rule {
	return engine.Rule{
		Name:    name,
		Dim:     dims.Numeral,
		Pattern: []engine.PatternItem{engine.Regex(`(\d+)`)},
		Produce: func(m engine.Match) any { return dims.NumeralData{Value: 1} },
	}
}

func timeRule(name string) engine.Rule {
	return engine.Rule{
		Name: name,
		Dim:  dims.Time,
		Pattern: []engine.PatternItem{
			engine.Regex(`(at)\s+`),
			engine.AnyToken(dims.Numeral),
		},
		Produce: func(m engine.Match) any { return dims.TimeData{Form: dims.FormNow} },
	}
}

func TestRegistryLocaleFallback(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(language.English, dims.Numeral, numeralRule("digits")))

	for _, locale := range []string{"en", "en-US", "en-GB"} {
		rs, err := r.RuleSet(locale, nil)
		require.NoError(t, err, locale)
		assert.Equal(t, 1, rs.Len(), locale)
	}
}

func TestRegistryUnknownLocale(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(language.English, dims.Numeral, numeralRule("digits")))

	_, err := r.RuleSet("zz-not-a-tag!", nil)
	assert.True(t, errors.Is(err, errors.ErrUnknownLocale))
}

func TestRegistryEmpty(t *testing.T) {
	r := NewRegistry()
	_, err := r.RuleSet("en", nil)
	assert.True(t, errors.Is(err, errors.ErrUnknownLocale))
}

func TestRegistryValidatesAtRegisterTime(t *testing.T) {
	r := NewRegistry()

	bad := engine.Rule{
		Name:    "no-capture-group",
		Dim:     dims.Numeral,
		Pattern: []engine.PatternItem{engine.Regex(`\d+`)},
		Produce: func(m engine.Match) any { return nil },
	}
	err := r.Register(language.English, dims.Numeral, bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidRule))

	// Nothing was registered.
	_, err = r.RuleSet("en", nil)
	assert.True(t, errors.Is(err, errors.ErrUnknownLocale))
}

func TestRegistryDependencyClosure(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(language.English, dims.Numeral, numeralRule("digits")))
	require.NoError(t, r.Register(language.English, dims.Time, timeRule("at-numeral")))
	require.NoError(t, r.Register(language.English, dims.Email, engine.Rule{
		Name:    "email",
		Dim:     dims.Email,
		Pattern: []engine.PatternItem{engine.Regex(`(\S+@\S+)`)},
		Produce: func(m engine.Match) any { return dims.IdentData{Value: m.Captures[0].Group(0)} },
	}))

	// Requesting time pulls in the numeral rules its pattern consumes,
	// but not the unrelated email rule.
	rs, err := r.RuleSet("en", []engine.Dimension{dims.Time})
	require.NoError(t, err)
	assert.Equal(t, 2, rs.Len())

	// An empty request activates everything.
	rs, err = r.RuleSet("en", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, rs.Len())
}

func TestRegistryLocalesAndDimensions(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(language.English, dims.Numeral, numeralRule("digits")))
	require.NoError(t, r.Register(language.English, dims.Time, timeRule("at-numeral")))

	assert.Equal(t, []language.Tag{language.English}, r.Locales())
	assert.Equal(t, []engine.Dimension{dims.Numeral, dims.Time}, r.Dimensions(language.English))
	assert.Empty(t, r.Dimensions(language.French))
}
