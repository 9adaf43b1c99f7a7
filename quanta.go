// Package quanta extracts structured values from natural-language text.
//
// A Parser owns a rule registry, a pass driver, and a converter table. It is
// built once and shared: Parse is safe for concurrent use.
//
//	p, err := quanta.New(quanta.Options{})
//	if err != nil {
//	    return err
//	}
//	spans, err := p.Parse(ctx, quanta.Request{
//	    Text:   "meet me tomorrow at 6pm",
//	    Locale: "en",
//	})
package quanta

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/teranos/quanta/config"
	"github.com/teranos/quanta/dims"
	"github.com/teranos/quanta/engine"
	"github.com/teranos/quanta/errors"
	"github.com/teranos/quanta/rules"
	"github.com/teranos/quanta/rules/en"
)

// Dimension identifies a class of extractable values. See the dims package
// for the built-in set.
type Dimension = engine.Dimension

// ResolvedSpan is one extracted value with its source span.
type ResolvedSpan = engine.ResolvedSpan

// Span is a half-open byte range into the request text.
type Span = engine.Span

// Rule is a single declarative extraction rule.
type Rule = engine.Rule

// Converter turns a dimension's internal payloads into resolved values.
type Converter = engine.Converter

// ResolutionContext is the per-parse context handed to converters.
type ResolutionContext = engine.ResolutionContext

// Options configures a Parser. The zero value uses built-in defaults.
type Options struct {
	// Config supplies engine bounds and request defaults; nil loads
	// defaults without touching the filesystem.
	Config *config.Config

	// Logger receives structured parse diagnostics; nil disables logging.
	Logger *zap.SugaredLogger
}

// Request is one parse call.
type Request struct {
	// Text is the document to scan.
	Text string

	// Locale is a BCP-47 identifier; unregistered variants fall back to
	// their base language ("en-US" to "en"). Empty means the configured
	// default.
	Locale string

	// ReferenceTime anchors relative temporal expressions. The zero value
	// means time.Now.
	ReferenceTime time.Time

	// Timezone interprets clock times and renders instants. Nil means the
	// configured default.
	Timezone *time.Location

	// Dimensions restricts the output. Empty means all registered
	// dimensions.
	Dimensions []Dimension

	// IncludeLatent admits low-confidence tokens (a bare "5" as an hour)
	// where nothing better covers them. Defaults to the configured value.
	IncludeLatent *bool
}

// Parser is the top-level entry point.
type Parser struct {
	cfg        *config.Config
	log        *zap.SugaredLogger
	registry   *rules.Registry
	driver     *engine.Driver
	converters map[engine.Dimension]engine.Converter

	timeNow func() time.Time // mockable for tests
}

// New builds a Parser with the built-in English rule tables and the
// locale-independent identifier rules registered.
func New(opts Options) (*Parser, error) {
	cfg := opts.Config
	if cfg == nil {
		v, err := config.LoadWithViper(defaultViper())
		if err != nil {
			return nil, err
		}
		cfg = v
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	registry := rules.NewRegistry()
	if err := registerAll(registry, language.English, en.Rules()); err != nil {
		return nil, err
	}
	if err := registerAll(registry, language.English, rules.CommonRules()); err != nil {
		return nil, err
	}

	p := &Parser{
		cfg:      cfg,
		log:      log,
		registry: registry,
		driver: engine.NewDriver(engine.Config{
			Workers:    cfg.Engine.Workers,
			MaxPasses:  cfg.Engine.MaxPasses,
			MaxMatches: cfg.Engine.MaxMatches,
		}, log),
		converters: dims.Converters(),
		timeNow:    time.Now,
	}
	return p, nil
}

// Register adds custom rules producing dim for the given locale, together
// with the converter resolving the dimension's payloads. A nil converter
// keeps the one already installed for dim; a brand-new dimension must bring
// its own, since its tokens could otherwise never resolve. Rules are
// validated immediately; a returned error means nothing was added. Register
// must not race with Parse.
func (p *Parser) Register(locale string, dim Dimension, set []Rule, conv Converter) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return errors.Wrapf(errors.ErrUnknownLocale, "%q: %v", locale, err)
	}
	if conv == nil {
		if _, ok := p.converters[dim]; !ok {
			return errors.Wrapf(errors.ErrUnknownDimension, "%q needs a converter", dim)
		}
	}
	if err := p.registry.Register(tag, dim, set...); err != nil {
		return err
	}
	if conv != nil {
		p.converters[dim] = conv
	}
	return nil
}

// Locales returns the locales with registered rule tables.
func (p *Parser) Locales() []language.Tag {
	return p.registry.Locales()
}

// Dimensions returns the dimensions registered for a locale, in
// registration order.
func (p *Parser) Dimensions(tag language.Tag) []Dimension {
	return p.registry.Dimensions(tag)
}

// Parse scans the request text and returns resolved spans ordered by start
// offset. Text that matches nothing yields an empty slice, not an error;
// errors report malformed requests only.
func (p *Parser) Parse(ctx context.Context, req Request) ([]ResolvedSpan, error) {
	if !utf8.ValidString(req.Text) {
		return nil, errors.New("request text is not valid UTF-8")
	}
	locale := req.Locale
	if locale == "" {
		locale = p.cfg.Parse.DefaultLocale
	}
	tz := req.Timezone
	if tz == nil {
		loc, err := time.LoadLocation(p.cfg.Parse.DefaultTimezone)
		if err != nil {
			return nil, errors.Wrapf(err, "default timezone %q", p.cfg.Parse.DefaultTimezone)
		}
		tz = loc
	}
	ref := req.ReferenceTime
	if ref.IsZero() {
		ref = p.timeNow()
	}
	includeLatent := p.cfg.Engine.IncludeLatent
	if req.IncludeLatent != nil {
		includeLatent = *req.IncludeLatent
	}
	for _, dim := range req.Dimensions {
		if _, ok := p.converters[dim]; !ok {
			return nil, errors.Wrapf(errors.ErrUnknownDimension, "%q", dim)
		}
	}

	rs, err := p.registry.RuleSet(locale, req.Dimensions)
	if err != nil {
		return nil, err
	}

	parseID := uuid.NewString()
	start := p.timeNow()
	pool := p.driver.Parse(ctx, req.Text, rs)
	spans := engine.Resolve(req.Text, pool, engine.ResolutionContext{
		Locale:        locale,
		ReferenceTime: ref,
		Timezone:      tz,
		Dimensions:    req.Dimensions,
		IncludeLatent: includeLatent,
	}, p.converters)

	p.log.Debugw("parse complete",
		"parse_id", parseID,
		"locale", locale,
		"text_bytes", len(req.Text),
		"pool_size", pool.Size(),
		"resolved", len(spans),
		"duration", time.Since(start))
	return spans, nil
}

func defaultViper() *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)
	return v
}

func registerAll(r *rules.Registry, tag language.Tag, byDim map[engine.Dimension][]engine.Rule) error {
	for _, dim := range dims.All() {
		set, ok := byDim[dim]
		if !ok {
			continue
		}
		if err := r.Register(tag, dim, set...); err != nil {
			return err
		}
	}
	return nil
}
