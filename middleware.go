package rweb

import (
	"net/url"
	"time"

	"github.com/rohanthewiz/rweb-i18n/consts"
	"github.com/rohanthewiz/rweb-i18n/i18n"
	"golang.org/x/text/language"
)

// RequestInfo is a middleware logging one line per request with basic request / response stats.
func RequestInfo(ctx Context) error {
	start := time.Now()

	defer func() {
		logger := ctx.Logger()
		event := logger.Info().
			Str("method", ctx.Request().Method()).
			Str("path", ctx.Request().Path()).
			Int("status", ctx.Response().Status()).
			Dur("took", time.Since(start))

		if tag := ctx.Locale(); tag != language.Und {
			event = event.Str("locale", tag.String())
		}
		event.Msg("request")
	}()

	return ctx.Next()
}

// LocaleRedirect sends GET requests for an unprefixed route to its localized
// variant, picked from the Accept-Language header among the given locales.
// Requests already carrying a locale prefix, and routes without a static
// localized variant, pass through. So does everything when no locale can be
// negotiated, since the unlocalized route would redirect to itself.
func LocaleRedirect(locales []i18n.Locale, fallback i18n.Locale) Handler {
	return func(ctx Context) error {
		req := ctx.Request()
		if req.Method() != consts.MethodGet {
			return ctx.Next()
		}
		if _, ok := i18n.DetectLocale(req.Path(), locales); ok {
			return ctx.Next()
		}

		router := ctx.Server().Router()
		rt, _ := router.Find(consts.MethodGet, req.Path())
		if rt == nil || rt.Localized() {
			return ctx.Next()
		}

		loc := i18n.Negotiate(req.Header(consts.HeaderAcceptLang), locales, fallback)
		if loc.IsZero() {
			return ctx.Next()
		}

		for _, alt := range router.RoutesFor(rt.Controller(), rt.Action()) {
			if alt.Tag() != loc.Tag() || !alt.Static() || !alt.Allows(consts.MethodGet) {
				continue
			}

			target := (&url.URL{Path: alt.Pattern()}).EscapedPath()
			if q := req.Query(); q != "" {
				target += "?" + q
			}
			return ctx.Redirect(consts.StatusFound, target)
		}

		return ctx.Next()
	}
}
