package route

import (
	"path"
	"slices"
	"strings"

	"github.com/rohanthewiz/rweb-i18n/consts"
	"github.com/rohanthewiz/rweb-i18n/core/rtr"
	"golang.org/x/text/language"
)

// Route binds a URL pattern to one controller action.
// Routes are immutable once built; use a Builder to create them.
type Route[T any] struct {
	pattern    string
	controller string
	action     string
	methods    []string
	tag        language.Tag
	handler    T

	// matcher holds the single pattern for parameterized routes, nil for static ones
	matcher *rtr.Tree[bool]
}

// Pattern returns the normalized URL pattern, e.g. "/pt-br/produtos/:id".
func (r *Route[T]) Pattern() string { return r.pattern }

// Controller returns the controller type name.
func (r *Route[T]) Controller() string { return r.controller }

// Action returns the action name.
func (r *Route[T]) Action() string { return r.action }

// Methods returns the allowed verbs. Empty means any.
func (r *Route[T]) Methods() []string { return slices.Clone(r.methods) }

// Tag returns the route locale, or language.Und for locale-agnostic routes.
func (r *Route[T]) Tag() language.Tag { return r.tag }

// Localized reports whether the route carries a locale prefix.
func (r *Route[T]) Localized() bool { return r.tag != language.Und }

// Handler returns the bound handler.
func (r *Route[T]) Handler() T { return r.handler }

// Static reports whether the pattern has neither parameters nor wildcards.
func (r *Route[T]) Static() bool { return r.matcher == nil }

// CanHandle reports whether the request path matches the pattern.
// A single trailing slash on the path is ignored.
func (r *Route[T]) CanHandle(requestPath string) bool {
	requestPath = trimTrailingSlash(requestPath)

	if r.matcher == nil {
		return requestPath == r.pattern
	}

	matched, _ := r.matcher.Lookup(requestPath)
	return matched
}

// Params returns the values captured from the request path.
// It returns nil when the path does not match or the route is static.
func (r *Route[T]) Params(requestPath string) []rtr.Parameter {
	if r.matcher == nil {
		return nil
	}

	matched, params := r.matcher.Lookup(trimTrailingSlash(requestPath))
	if !matched {
		return nil
	}
	return params
}

// Allows reports whether the route accepts the given verb.
func (r *Route[T]) Allows(method string) bool {
	if len(r.methods) == 0 {
		return true
	}
	return slices.Contains(r.methods, strings.ToUpper(method))
}

// String renders the route for logs: "GET|POST /pt-br/prefixo/absoluto -> AnnotatedController.withAbsolutePath".
func (r *Route[T]) String() string {
	var sb strings.Builder

	if len(r.methods) == 0 {
		sb.WriteString("*")
	} else {
		sb.WriteString(strings.Join(r.methods, "|"))
	}
	sb.WriteByte(' ')
	sb.WriteString(r.pattern)

	if r.controller != "" || r.action != "" {
		sb.WriteString(" -> ")
		sb.WriteString(r.controller)
		sb.WriteByte('.')
		sb.WriteString(r.action)
	}
	if r.Localized() {
		sb.WriteString(" [")
		sb.WriteString(r.tag.String())
		sb.WriteByte(']')
	}
	return sb.String()
}

// NormalizePattern brings a pattern into the form the matcher expects:
// a leading slash, no trailing slash, no empty segments,
// and "{name}" / "{name*}" rewritten to ":name" / "*name".
// A regex constraint ("{id:[0-9]+}") is dropped.
func NormalizePattern(pattern string) string {
	if strings.IndexByte(pattern, consts.RuneOpenBrace) >= 0 {
		pattern = convertBraces(pattern)
	}

	pattern = path.Clean("/" + pattern)
	return pattern
}

func convertBraces(pattern string) string {
	segments := strings.Split(pattern, "/")

	for i, seg := range segments {
		if len(seg) < 3 || seg[0] != consts.RuneOpenBrace || seg[len(seg)-1] != consts.RuneCloseBrace {
			continue
		}

		name := seg[1 : len(seg)-1]
		if j := strings.IndexByte(name, consts.RuneColon); j >= 0 {
			name = name[:j]
		}

		if trimmed, ok := strings.CutSuffix(name, "*"); ok {
			segments[i] = "*" + trimmed
			continue
		}
		segments[i] = ":" + name
	}

	return strings.Join(segments, "/")
}

// IsStatic reports whether a normalized pattern has no parameter or wildcard segment.
func IsStatic(pattern string) bool {
	return strings.IndexByte(pattern, consts.RuneColon) < 0 &&
		strings.IndexByte(pattern, consts.RuneAsterisk) < 0
}

func trimTrailingSlash(p string) string {
	if len(p) > 1 && p[len(p)-1] == consts.RuneFwdSlash {
		return p[:len(p)-1]
	}
	return p
}
