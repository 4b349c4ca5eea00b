package route

import (
	"strings"

	"github.com/rs/zerolog"
)

// Parser derives the routes of a controller.
type Parser[T any] interface {
	RulesFor(controller Controller[T]) []*Route[T]
}

// PathParser derives routes from explicit paths and naming conventions.
//
//	Path "/prefix", action "WithoutPath"            -> /prefix/withoutPath
//	Path "/prefix", action path "/absolutePath"     -> /prefix/absolutePath
//	"ConventionController", action "WithoutPath"    -> /convention/withoutPath
//	"ConventionController", action path "/absolute" -> /absolute
type PathParser[T any] struct {
	router *Router[T]
	logger zerolog.Logger
}

// NewPathParser creates a parser that builds its routes through router.
func NewPathParser[T any](router *Router[T], opts ...Option) *PathParser[T] {
	o := options{logger: router.logger}
	for _, opt := range opts {
		opt(&o)
	}
	return &PathParser[T]{router: router, logger: o.logger}
}

// RulesFor returns one route per action. Actions without a name are skipped.
func (p *PathParser[T]) RulesFor(c Controller[T]) []*Route[T] {
	routes := make([]*Route[T], 0, len(c.Actions))

	for _, a := range c.Actions {
		if err := a.validate(); err != nil {
			p.logger.Warn().Err(err).Str("controller", c.Name).Msg("action skipped")
			continue
		}

		rt := p.router.BuilderFor(PathFor(c, a)).
			With(a.Methods...).
			Is(c.Name, ActionName(a.Name)).
			Handler(a.Handler).
			Build()
		routes = append(routes, rt)
	}
	return routes
}

// PathFor derives the pattern of one action.
func PathFor[T any](c Controller[T], a Action[T]) string {
	base := ""
	if c.Path != "" {
		base = strings.TrimSuffix(NormalizePattern(c.Path), "/")
	}

	if a.Path != "" {
		return NormalizePattern(base + "/" + strings.TrimPrefix(a.Path, "/"))
	}

	if base == "" {
		base = "/" + ConventionName(c.Name)
	}
	return NormalizePattern(base + "/" + ActionName(a.Name))
}
