package route

import (
	"slices"
	"strings"

	"github.com/rohanthewiz/rweb-i18n/core/rtr"
	"golang.org/x/text/language"
)

// Builder assembles one Route for a pattern.
type Builder[T any] struct {
	pattern    string
	controller string
	action     string
	methods    []string
	tag        language.Tag
	handler    T
}

// NewBuilder starts a route for the given pattern.
func NewBuilder[T any](pattern string) *Builder[T] {
	return &Builder[T]{pattern: NormalizePattern(pattern)}
}

// With restricts the route to the given verbs. Calling it again adds to the set.
func (b *Builder[T]) With(methods ...string) *Builder[T] {
	for _, m := range methods {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m == "" || slices.Contains(b.methods, m) {
			continue
		}
		b.methods = append(b.methods, m)
	}
	return b
}

// Is binds the route to a controller action.
func (b *Builder[T]) Is(controller, action string) *Builder[T] {
	b.controller = controller
	b.action = action
	return b
}

// Handler sets the handler served by the route.
func (b *Builder[T]) Handler(handler T) *Builder[T] {
	b.handler = handler
	return b
}

// Locale marks the route as belonging to a locale.
func (b *Builder[T]) Locale(tag language.Tag) *Builder[T] {
	b.tag = tag
	return b
}

// Build creates the Route.
func (b *Builder[T]) Build() *Route[T] {
	r := &Route[T]{
		pattern:    b.pattern,
		controller: b.controller,
		action:     b.action,
		methods:    append([]string(nil), b.methods...),
		tag:        b.tag,
		handler:    b.handler,
	}

	if !IsStatic(r.pattern) {
		r.matcher = &rtr.Tree[bool]{}
		r.matcher.Add(r.pattern, true)
	}
	return r
}
