// Package i18n derives localized routes from controller descriptors and
// translation bundles.
//
// For every default route, one extra route is produced per locale: the
// pattern is prefixed with the locale ("/pt-br") and each static segment is
// replaced by its translation, falling back to the segment itself.
//
//	/prefix/absolutePath  ->  /en-us/prefix/absolutePath
//	                      ->  /pt-br/prefixo/absoluto
package i18n

import (
	"strings"

	"github.com/rohanthewiz/serr"
	"golang.org/x/text/language"
)

// DefaultLocale is used when no default locale is configured.
var DefaultLocale = MustLocale("en-US")

// Locale is a language and region pair, e.g. pt-BR.
// Its canonical string form is lowercase and hyphenated ("pt-br") and doubles as URL prefix.
type Locale struct {
	tag language.Tag
}

// ParseLocale accepts "pt-BR", "pt_BR" and "pt-br".
func ParseLocale(s string) (Locale, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return Locale{}, serr.New("empty locale")
	}

	tag, err := language.Parse(s)
	if err != nil {
		return Locale{}, serr.Wrap(err, "unable to parse locale", "locale", s)
	}
	return Locale{tag: tag}, nil
}

// MustLocale is ParseLocale that panics on error. Use it for constants.
func MustLocale(s string) Locale {
	l, err := ParseLocale(s)
	if err != nil {
		panic(err)
	}
	return l
}

// LocaleOf wraps a language tag.
func LocaleOf(tag language.Tag) Locale {
	return Locale{tag: tag}
}

// Tag returns the underlying language tag.
func (l Locale) Tag() language.Tag {
	if l.tag == (language.Tag{}) {
		return language.Und
	}
	return l.tag
}

// IsZero reports whether the locale is unset.
func (l Locale) IsZero() bool {
	return l.Tag() == language.Und
}

// String returns the canonical form, e.g. "en-us".
func (l Locale) String() string {
	if l.IsZero() {
		return ""
	}
	return strings.ToLower(l.tag.String())
}

// Prefix returns the URL prefix for the locale, e.g. "/en-us".
func (l Locale) Prefix() string {
	if l.IsZero() {
		return ""
	}
	return "/" + l.String()
}
