package i18n_test

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rweb-i18n/i18n"
	"github.com/rohanthewiz/rweb-i18n/route"
)

func TestLoadResources(t *testing.T) {
	res, err := i18n.LoadResources(os.DirFS("testdata"), ".", "")
	assert.Nil(t, err)

	bundles := res.AvailableBundles()
	assert.Equal(t, len(bundles), 2)
	assert.Equal(t, bundles[0].Locale().String(), "es-es")
	assert.Equal(t, bundles[1].Locale().String(), "pt-br")
	assert.Equal(t, len(res.Files()), 2)

	pt, ok := res.Bundle(i18n.MustLocale("pt-BR"))
	assert.True(t, ok)

	v, ok := pt.Translate("prefix")
	assert.True(t, ok)
	assert.Equal(t, v, "prefixo")

	_, ok = pt.Translate("unknown")
	assert.False(t, ok)

	es, ok := res.Bundle(i18n.MustLocale("es-ES"))
	assert.True(t, ok)
	v, _ = es.Translate("withoutPath")
	assert.Equal(t, v, "sinRuta")
}

func TestLoadResourcesMissingDir(t *testing.T) {
	res, err := i18n.LoadResources(os.DirFS("testdata"), "nope", "routes")
	assert.Nil(t, err)
	assert.Equal(t, len(res.AvailableBundles()), 0)
}

func TestLoadResourcesMergesSameLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/routes.pt-BR.toml":   {Data: []byte(`prefix = "prefixo"`)},
		"locales/routes.pt-BR.json":   {Data: []byte(`{"withoutPath": "semPath"}`)},
		"locales/messages.pt-BR.toml": {Data: []byte(`prefix = "ignored"`)},
		"locales/routes.toml":         {Data: []byte(`prefix = "ignored"`)},
	}

	res, err := i18n.LoadResources(fsys, "locales", "routes")
	assert.Nil(t, err)
	assert.Equal(t, len(res.Locales()), 1)

	pt, ok := res.Bundle(i18n.MustLocale("pt-BR"))
	assert.True(t, ok)
	assert.Equal(t, len(pt.Keys()), 2)

	v, _ := pt.Translate("prefix")
	assert.Equal(t, v, "prefixo")
	v, _ = pt.Translate("withoutPath")
	assert.Equal(t, v, "semPath")
}

func TestLoadResourcesMalformed(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/routes.pt-BR.toml": {Data: []byte(`prefix = `)},
	}

	_, err := i18n.LoadResources(fsys, "locales", "routes")
	assert.NotEqual(t, err, nil)
}

func TestLoadedBundlesDriveParser(t *testing.T) {
	res, err := i18n.LoadResources(os.DirFS("testdata"), ".", i18n.DefaultBasename)
	assert.Nil(t, err)

	parser := i18n.NewRoutesParser(route.NewRouter[string](), res)
	routes := parser.RulesFor(annotatedController())

	// 2 actions x (default + en-us + es-es + pt-br)
	assert.Equal(t, len(routes), 8)
	assert.NotEqual(t, routeMatching(routes, "/es-es/prefijo/sinRuta"), (*route.Route[string])(nil))
	assert.NotEqual(t, routeMatching(routes, "/pt-br/prefixo/absoluto"), (*route.Route[string])(nil))
}
