package i18n

import (
	"github.com/rohanthewiz/rweb-i18n/route"
	"github.com/rs/zerolog"
)

// RoutesParser adds localized variants to the routes of a delegate parser.
//
// Each default route is kept, then one route per locale is added: first the
// default locale, then every locale with an available bundle. A locale
// without a bundle keeps the untranslated segments.
type RoutesParser[T any] struct {
	router        *route.Router[T]
	resources     RoutesResources
	delegate      route.Parser[T]
	defaultLocale Locale
	logger        zerolog.Logger
}

// Option configures a RoutesParser.
type Option func(*parserOptions)

type parserOptions struct {
	defaultLocale Locale
	logger        zerolog.Logger
	hasLogger     bool
}

// WithDefaultLocale sets the locale whose prefixed routes are always emitted.
func WithDefaultLocale(locale Locale) Option {
	return func(o *parserOptions) {
		if !locale.IsZero() {
			o.defaultLocale = locale
		}
	}
}

// WithLogger sets the parser logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *parserOptions) {
		o.logger = logger
		o.hasLogger = true
	}
}

// NewRoutesParser creates a localized parser. Default routes come from a
// route.PathParser on the same router unless WithDelegate replaces it.
// A nil resources means no bundles.
func NewRoutesParser[T any](router *route.Router[T], resources RoutesResources, opts ...Option) *RoutesParser[T] {
	o := parserOptions{defaultLocale: DefaultLocale, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	if resources == nil {
		resources = StaticResources(nil)
	}

	var delegateOpts []route.Option
	if o.hasLogger {
		delegateOpts = append(delegateOpts, route.WithLogger(o.logger))
	}

	return &RoutesParser[T]{
		router:        router,
		resources:     resources,
		delegate:      route.NewPathParser(router, delegateOpts...),
		defaultLocale: o.defaultLocale,
		logger:        o.logger,
	}
}

// WithDelegate replaces the parser producing the default routes.
func (p *RoutesParser[T]) WithDelegate(delegate route.Parser[T]) *RoutesParser[T] {
	if delegate != nil {
		p.delegate = delegate
	}
	return p
}

// DefaultLocale returns the locale always emitted.
func (p *RoutesParser[T]) DefaultLocale() Locale {
	return p.defaultLocale
}

// RulesFor returns the default routes of the controller, each followed by its localized variants.
func (p *RoutesParser[T]) RulesFor(c route.Controller[T]) []*route.Route[T] {
	defaults := p.delegate.RulesFor(c)
	locales := p.localeBundles()

	routes := make([]*route.Route[T], 0, len(defaults)*(1+len(locales)))
	for _, rt := range defaults {
		routes = append(routes, rt)

		for _, lb := range locales {
			pattern := lb.locale.Prefix() + translatePath(rt.Pattern(), lb.bundle, p.logger)

			localized := p.router.BuilderFor(pattern).
				With(rt.Methods()...).
				Is(rt.Controller(), rt.Action()).
				Handler(rt.Handler()).
				Locale(lb.locale.Tag()).
				Build()
			routes = append(routes, localized)
		}
	}

	p.logger.Debug().Str("controller", c.Name).Int("routes", len(routes)).
		Int("locales", len(locales)).Msg("localized routes derived")
	return routes
}

// Locales returns the locales RulesFor emits, default first.
func (p *RoutesParser[T]) Locales() []Locale {
	lbs := p.localeBundles()
	locales := make([]Locale, len(lbs))
	for i, lb := range lbs {
		locales[i] = lb.locale
	}
	return locales
}

type localeBundle struct {
	locale Locale
	bundle Bundle // nil for a locale without translations
}

// localeBundles pairs each emitted locale with its bundle.
// The first bundle seen for a locale wins.
func (p *RoutesParser[T]) localeBundles() []localeBundle {
	bundles := p.resources.AvailableBundles()
	out := make([]localeBundle, 0, len(bundles)+1)
	out = append(out, localeBundle{locale: p.defaultLocale})

	for _, b := range bundles {
		if b == nil {
			continue
		}
		loc := b.Locale()
		if loc.IsZero() {
			p.logger.Warn().Msg("bundle without locale ignored")
			continue
		}

		if i := indexOfLocale(out, loc); i >= 0 {
			if out[i].bundle == nil {
				out[i].bundle = b
			} else {
				p.logger.Debug().Str("locale", loc.String()).Msg("duplicate bundle ignored")
			}
			continue
		}
		out = append(out, localeBundle{locale: loc, bundle: b})
	}
	return out
}

func indexOfLocale(lbs []localeBundle, loc Locale) int {
	for i, lb := range lbs {
		if lb.locale == loc {
			return i
		}
	}
	return -1
}
