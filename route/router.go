package route

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rohanthewiz/rweb-i18n/consts"
	"github.com/rohanthewiz/rweb-i18n/core/rtr"
	"github.com/rohanthewiz/serr"
	"github.com/rs/zerolog"
)

// ErrRouteConflict reports a route that cannot live next to the registered ones.
var ErrRouteConflict = serr.New("conflicting route")

// Router is the route registry. It hands out builders for patterns and
// resolves request paths to the registered routes.
// Static patterns are served from a hash router, the rest from radix trees.
// Registration is not safe for concurrent use; lookups are once registration is done.
type Router[T any] struct {
	hash   *rtr.HashRouter[*Route[T]]
	radix  *rtr.RadixRouter[*Route[T]]
	routes []*Route[T]
	logger zerolog.Logger
}

// Option configures a Router.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the logger used for registration messages.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewRouter creates an empty router.
func NewRouter[T any](opts ...Option) *Router[T] {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Router[T]{
		hash:   rtr.NewHashRouter[*Route[T]](),
		radix:  rtr.New[*Route[T]](),
		logger: o.logger,
	}
}

// BuilderFor returns a builder for the given pattern.
func (r *Router[T]) BuilderFor(pattern string) *Builder[T] {
	return NewBuilder[T](pattern)
}

// Add registers routes. A route replaces an earlier one with the same
// pattern and verbs. Adding two parameterized patterns that name the same
// position differently panics.
func (r *Router[T]) Add(routes ...*Route[T]) {
	for _, rt := range routes {
		if rt == nil {
			continue
		}

		methods := rt.methods
		if len(methods) == 0 {
			methods = consts.Methods
		}

		replaced := false
		for _, m := range methods {
			if rt.Static() {
				if r.hash.Has(m, rt.pattern) {
					replaced = true
				}
				r.hash.Add(m, rt.pattern, rt)
				continue
			}
			r.radix.Add(m, rt.pattern, rt)
		}

		if i := r.indexOf(rt); i >= 0 {
			r.routes[i] = rt
			replaced = true
		} else {
			r.routes = append(r.routes, rt)
		}

		if replaced {
			r.logger.Warn().Str("route", rt.String()).Msg("route replaced")
			continue
		}
		r.logger.Debug().Str("route", rt.String()).Msg("route added")
	}
}

// Register runs the parser over each controller and adds the resulting routes.
// Controllers that fail validation are skipped and their errors returned.
// A route conflicting with the registered ones stops its controller with an
// ErrRouteConflict; the routes added before it stay registered.
func (r *Router[T]) Register(parser Parser[T], controllers ...Controller[T]) []error {
	var errs []error

	for _, c := range controllers {
		if err := c.Validate(); err != nil {
			r.logger.Error().Err(err).Str("controller", c.Name).Msg("controller skipped")
			errs = append(errs, err)
			continue
		}

		if err := r.addControllerRoutes(c.Name, parser.RulesFor(c)); err != nil {
			r.logger.Error().Err(err).Str("controller", c.Name).Msg("controller routes conflict")
			errs = append(errs, err)
		}
	}
	return errs
}

// addControllerRoutes is Add for one controller, with a conflict panic turned into an error.
func (r *Router[T]) addControllerRoutes(controller string, routes []*Route[T]) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = serr.Wrap(ErrRouteConflict, "controller", controller, "reason", fmt.Sprint(rec))
		}
	}()

	r.Add(routes...)
	return nil
}

// Routes returns the registered routes in registration order.
func (r *Router[T]) Routes() []*Route[T] {
	return slices.Clone(r.routes)
}

// Find resolves a request. It returns nil when nothing matches.
func (r *Router[T]) Find(method string, requestPath string) (*Route[T], []rtr.Parameter) {
	method = strings.ToUpper(method)
	if !slices.Contains(consts.Methods, method) {
		return nil, nil
	}

	requestPath = trimTrailingSlash(requestPath)

	if rt := r.hash.Lookup(method, requestPath); rt != nil {
		return rt, nil
	}

	rt, params := r.radix.Lookup(method, requestPath)
	if rt == nil {
		return nil, nil
	}
	return rt, params
}

// RoutesFor returns every route bound to the controller action, localized ones included.
func (r *Router[T]) RoutesFor(controller, action string) []*Route[T] {
	var found []*Route[T]
	for _, rt := range r.routes {
		if rt.controller == controller && rt.action == action {
			found = append(found, rt)
		}
	}
	return found
}

// Table flattens the registry into one row per verb, for listings.
func (r *Router[T]) Table() []rtr.RouteList {
	rows := make([]rtr.RouteList, 0, len(r.routes))

	for _, rt := range r.routes {
		methods := rt.methods
		if len(methods) == 0 {
			methods = []string{"*"}
		}

		locale := ""
		if rt.Localized() {
			locale = strings.ToLower(rt.tag.String())
		}

		for _, m := range methods {
			rows = append(rows, rtr.RouteList{
				Method:     m,
				Path:       rt.pattern,
				HandlerRef: rt.controller + "." + rt.action,
				Locale:     locale,
			})
		}
	}
	return rows
}

func (r *Router[T]) indexOf(rt *Route[T]) int {
	for i, existing := range r.routes {
		if existing.pattern == rt.pattern && slices.Equal(existing.methods, rt.methods) {
			return i
		}
	}
	return -1
}
