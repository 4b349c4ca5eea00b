package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
)

func TestRoutesCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"routes", "--bundles", "../../i18n/testdata", "--default-locale", "en_US"})
	defer func() {
		bundleDir, defaultLocale = "", ""
	}()

	err := rootCmd.Execute()
	assert.Nil(t, err)

	listing := out.String()
	assert.True(t, strings.HasPrefix(listing, "METHOD"))
	for _, want := range []string{
		"/prefix/absolutePath",
		"/en-us/prefix/absolutePath",
		"/pt-br/prefixo/absoluto",
		"/es-es/prefijo/sinRuta",
		"/pt-br/convencao/semPath",
		"/es-es/convention/sinRuta",
		"/pt-br/produtos/:id",
		"ProductController.show",
	} {
		assert.True(t, strings.Contains(listing, want))
	}
}

func TestRoutesCommandBadLocale(t *testing.T) {
	rootCmd.SetArgs([]string{"routes", "--default-locale", "??"})
	defer func() {
		defaultLocale = ""
	}()

	err := rootCmd.Execute()
	assert.NotEqual(t, err, nil)
}

func TestDemoServer(t *testing.T) {
	bundleDir = "../../i18n/testdata"
	defer func() {
		bundleDir = ""
	}()

	s, cfg, err := newServer()
	assert.Nil(t, err)
	assert.Equal(t, cfg.I18n.BundleDir, "../../i18n/testdata")

	// en-us, es-es, pt-br
	assert.Equal(t, len(s.Locales()), 3)

	response := s.Request("GET", "/pt-br/produtos/42", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, string(response.Body()), "{\"id\":\"42\",\"locale\":\"pt-BR\"}\n")
}
