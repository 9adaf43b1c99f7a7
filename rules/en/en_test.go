package en_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/teranos/quanta/dims"
	"github.com/teranos/quanta/engine"
	"github.com/teranos/quanta/rules"
	"github.com/teranos/quanta/rules/en"
)

// fixture is one testdata corpus file: a reference instant plus cases.
type fixture struct {
	Reference string        `yaml:"reference"`
	Cases     []fixtureCase `yaml:"cases"`
}

type fixtureCase struct {
	Text   string        `yaml:"text"`
	Dims   []string      `yaml:"dims"`
	Latent bool          `yaml:"latent"`
	Want   []expectation `yaml:"want"`
}

// expectation describes one resolved span. Only the fields relevant to the
// expected dimension are set.
type expectation struct {
	Dim     string   `yaml:"dim"`
	Text    string   `yaml:"text"`
	Number  *float64 `yaml:"number"`
	Unit    string   `yaml:"unit"`
	Product string   `yaml:"product"`
	Value   string   `yaml:"value"`
	Instant string   `yaml:"instant"`
	Grain   string   `yaml:"grain"`
	Latent  bool     `yaml:"latent"`
}

func newRegistry(t *testing.T) *rules.Registry {
	t.Helper()
	r := rules.NewRegistry()
	for dim, set := range en.Rules() {
		require.NoError(t, r.Register(language.English, dim, set...))
	}
	for dim, set := range rules.CommonRules() {
		require.NoError(t, r.Register(language.English, dim, set...))
	}
	return r
}

func TestEnglishCorpus(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "corpus fixtures missing")

	registry := newRegistry(t)
	driver := engine.NewDriver(engine.Config{Workers: 4}, nil)
	converters := dims.Converters()

	for _, file := range files {
		file := file
		t.Run(filepath.Base(file), func(t *testing.T) {
			raw, err := os.ReadFile(file)
			require.NoError(t, err)

			var fx fixture
			require.NoError(t, yaml.Unmarshal(raw, &fx))
			ref, err := time.Parse(time.RFC3339, fx.Reference)
			require.NoError(t, err)

			for _, tc := range fx.Cases {
				tc := tc
				t.Run(tc.Text, func(t *testing.T) {
					var requested []engine.Dimension
					for _, name := range tc.Dims {
						dim, err := dims.FromString(name)
						require.NoError(t, err)
						requested = append(requested, dim)
					}

					rs, err := registry.RuleSet("en", requested)
					require.NoError(t, err)

					pool := driver.Parse(context.Background(), tc.Text, rs)
					got := engine.Resolve(tc.Text, pool, engine.ResolutionContext{
						Locale:        "en",
						ReferenceTime: ref,
						Timezone:      time.UTC,
						Dimensions:    requested,
						IncludeLatent: tc.Latent,
					}, converters)

					require.Len(t, got, len(tc.Want), "resolved spans: %+v", got)
					for i, want := range tc.Want {
						checkSpan(t, want, got[i])
					}
				})
			}
		})
	}
}

func checkSpan(t *testing.T, want expectation, got engine.ResolvedSpan) {
	t.Helper()
	assert.Equal(t, engine.Dimension(want.Dim), got.Dim)
	if want.Text != "" {
		assert.Equal(t, want.Text, got.Text)
	}
	assert.Equal(t, want.Latent, got.Latent)

	switch v := got.Value.(type) {
	case dims.NumeralValue:
		require.NotNil(t, want.Number)
		assert.InDelta(t, *want.Number, v.Value, 1e-9)
	case dims.OrdinalValue:
		require.NotNil(t, want.Number)
		assert.Equal(t, int(*want.Number), v.Value)
	case dims.TimeValue:
		wantInstant, err := time.Parse(time.RFC3339, want.Instant)
		require.NoError(t, err)
		assert.True(t, v.Instant.Equal(wantInstant), "instant: got %v want %v", v.Instant, wantInstant)
		if want.Grain != "" {
			assert.Equal(t, dims.Grain(want.Grain), v.Grain)
		}
	case dims.DurationValue:
		require.NotNil(t, want.Number)
		assert.InDelta(t, *want.Number, v.Value, 1e-9)
		assert.Equal(t, dims.Grain(want.Unit), v.Unit)
	case dims.AmountValue:
		require.NotNil(t, want.Number)
		assert.InDelta(t, *want.Number, v.Value, 1e-9)
		assert.Equal(t, want.Unit, v.Unit)
	case dims.FinanceValue:
		require.NotNil(t, want.Number)
		assert.InDelta(t, *want.Number, v.Value, 1e-9)
		assert.Equal(t, want.Unit, v.Currency)
	case dims.QuantityValue:
		require.NotNil(t, want.Number)
		assert.InDelta(t, *want.Number, v.Value, 1e-9)
		assert.Equal(t, want.Unit, v.Unit)
		assert.Equal(t, want.Product, v.Product)
	case dims.IdentValue:
		assert.Equal(t, want.Value, v.Value)
	default:
		t.Fatalf("unexpected value type %T", got.Value)
	}
}
