package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DetectLocale reads the locale prefix of a request path.
// Only locales in the given list are recognized: "/pt-br/prefixo" -> pt-BR.
func DetectLocale(requestPath string, locales []Locale) (Locale, bool) {
	seg := strings.TrimPrefix(requestPath, "/")
	if i := strings.IndexByte(seg, '/'); i >= 0 {
		seg = seg[:i]
	}
	if seg == "" {
		return Locale{}, false
	}

	seg = strings.ToLower(seg)
	for _, l := range locales {
		if l.String() == seg {
			return l, true
		}
	}
	return Locale{}, false
}

// Negotiate picks the best locale for an Accept-Language header value.
// It returns fallback when the header is empty, malformed or matches nothing.
func Negotiate(acceptLanguage string, locales []Locale, fallback Locale) Locale {
	if acceptLanguage == "" || len(locales) == 0 {
		return fallback
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	supported := make([]language.Tag, len(locales))
	for i, l := range locales {
		supported[i] = l.Tag()
	}

	_, index, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No {
		return fallback
	}
	return locales[index]
}
