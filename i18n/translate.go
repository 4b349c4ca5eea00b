package i18n

import (
	"strings"

	"github.com/rohanthewiz/rweb-i18n/route"
	"github.com/rs/zerolog"
)

// routeSyntax lists the bytes that would turn a translated segment into a
// parameter or wildcard, or that a request path can never carry.
const routeSyntax = ":*{}?#"

// TranslatePath translates each static segment of pattern with bundle.
// Parameter and wildcard segments are left alone, as is any segment the
// bundle has no translation for. A translation carrying route syntax is
// ignored and the original segment kept. A nil bundle returns the pattern unchanged.
//
//	/prefix/withoutPath/:id + pt-BR -> /prefixo/semPath/:id
func TranslatePath(pattern string, bundle Bundle) string {
	return translatePath(pattern, bundle, zerolog.Nop())
}

func translatePath(pattern string, bundle Bundle, logger zerolog.Logger) string {
	pattern = route.NormalizePattern(pattern)
	if bundle == nil || pattern == "/" {
		return pattern
	}

	segments := strings.Split(pattern, "/")
	for i, seg := range segments {
		if seg == "" || !route.IsStatic(seg) {
			continue
		}

		translated, ok := bundle.Translate(seg)
		if !ok {
			continue
		}

		translated = strings.Trim(translated, "/ ")
		if translated == "" || strings.ContainsAny(translated, routeSyntax) {
			logger.Warn().Str("key", seg).Str("translation", translated).
				Str("locale", bundle.Locale().String()).Msg("translation is not a literal path segment, key kept")
			continue
		}
		segments[i] = translated
	}

	return route.NormalizePattern(strings.Join(segments, "/"))
}
