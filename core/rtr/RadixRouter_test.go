package rtr_test

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rweb-i18n/consts"
	"github.com/rohanthewiz/rweb-i18n/core/rtr"
)

func TestLocalizedStatic(t *testing.T) {
	r := rtr.New[string]()
	r.Add(consts.MethodGet, "/pt-br/produtos", "produtos")
	r.Add(consts.MethodGet, "/pt-br/prefixo", "prefixo")

	data, params := r.Lookup(consts.MethodGet, "/pt-br/produtos")
	assert.Equal(t, len(params), 0)
	assert.Equal(t, data, "produtos")

	data, params = r.Lookup(consts.MethodGet, "/pt-br/prefixo")
	assert.Equal(t, len(params), 0)
	assert.Equal(t, data, "prefixo")

	notFound := []string{
		"",
		"/pt-br",
		"/pt-br/pr",
		"/pt-br/produto",
		"/pt-br/produtoss",
		"/es-es/produtos",
	}

	for _, path := range notFound {
		data, params = r.Lookup(consts.MethodGet, path)
		assert.Equal(t, len(params), 0)
		assert.Equal(t, data, "")
	}
}

func TestLocalizedParameter(t *testing.T) {
	r := rtr.New[string]()
	r.Add(consts.MethodGet, "/pt-br/artigos/:ano", "Artigos do ano")
	r.Add(consts.MethodGet, "/pt-br/artigos/:ano/comentarios/:id", "Comentario")

	data, params := r.Lookup(consts.MethodGet, "/pt-br/artigos/2024")
	assert.Equal(t, len(params), 1)
	assert.Equal(t, params[0].Key, "ano")
	assert.Equal(t, params[0].Value, "2024")
	assert.Equal(t, data, "Artigos do ano")

	data, params = r.Lookup(consts.MethodGet, "/pt-br/artigos/2024/comentarios/7")
	assert.Equal(t, len(params), 2)
	assert.Equal(t, params[0].Key, "ano")
	assert.Equal(t, params[0].Value, "2024")
	assert.Equal(t, params[1].Key, "id")
	assert.Equal(t, params[1].Value, "7")
	assert.Equal(t, data, "Comentario")
}

func TestLocalizedWildcard(t *testing.T) {
	r := rtr.New[string]()
	r.Add(consts.MethodGet, "/", "Front page")
	r.Add(consts.MethodGet, "/pt-br/usuarios/:id", "Usuario")
	r.Add(consts.MethodGet, "/pt-br/imagens/estatica", "Static")
	r.Add(consts.MethodGet, "/pt-br/imagens/*caminho", "Imagens")
	r.Add(consts.MethodGet, "/pt-br/*resto", "Locale wildcard")
	r.Add(consts.MethodGet, "*root", "Root wildcard")

	tests := []struct {
		path  string
		data  string
		key   string
		value string
	}{
		{"/", "Front page", "", ""},
		{"/pt-br/usuarios/42", "Usuario", "id", "42"},
		{"/pt-br/imagens/estatica", "Static", "", ""},
		{"/pt-br/imagens/est", "Imagens", "caminho", "est"},
		{"/pt-br/imagens/favicon/256.png", "Imagens", "caminho", "favicon/256.png"},
		{"/pt-br/qualquer", "Locale wildcard", "resto", "qualquer"},
		{"not-a-path", "Root wildcard", "root", "not-a-path"},
	}

	for _, tt := range tests {
		data, params := r.Lookup(consts.MethodGet, tt.path)
		assert.Equal(t, data, tt.data)

		if tt.key == "" {
			assert.Equal(t, len(params), 0)
			continue
		}
		assert.Equal(t, len(params), 1)
		assert.Equal(t, params[0].Key, tt.key)
		assert.Equal(t, params[0].Value, tt.value)
	}

	// A parameter route that cannot continue falls back to the locale wildcard
	data, _ := r.Lookup(consts.MethodGet, "/pt-br/usuarios/42/foto.png")
	assert.Equal(t, data, "Locale wildcard")
}

func TestLocalizedVariants(t *testing.T) {
	r := rtr.New[string]()
	r.Add(consts.MethodGet, "/products/:id", "default")
	r.Add(consts.MethodGet, "/en-us/products/:id", "en-us")
	r.Add(consts.MethodGet, "/pt-br/produtos/:id", "pt-br")
	r.Add(consts.MethodGet, "/pt-br/prefixo/semPath", "static")

	data, params := r.Lookup(consts.MethodGet, "/pt-br/produtos/42")
	assert.Equal(t, data, "pt-br")
	assert.Equal(t, len(params), 1)
	assert.Equal(t, params[0].Key, "id")
	assert.Equal(t, params[0].Value, "42")

	data, _ = r.Lookup(consts.MethodGet, "/en-us/products/7")
	assert.Equal(t, data, "en-us")

	data, _ = r.Lookup(consts.MethodGet, "/products/7")
	assert.Equal(t, data, "default")

	data, _ = r.Lookup(consts.MethodGet, "/pt-br/prefixo/semPath")
	assert.Equal(t, data, "static")

	data, params = r.Lookup(consts.MethodGet, "/en-br/produtos/42")
	assert.Equal(t, data, "")
	assert.Equal(t, len(params), 0)
}

func TestLocalizedConsecutiveParameters(t *testing.T) {
	r := rtr.New[string]()
	r.Add(consts.MethodGet, "/pt-br/artigos/:ano/:titulo", "Artigo")
	r.Add(consts.MethodGet, "/es-es/ruta/:a/:b/:c", "Triple")

	data, params := r.Lookup(consts.MethodGet, "/pt-br/artigos/2024/feliz-natal")
	assert.Equal(t, len(params), 2)
	assert.Equal(t, params[0].Key, "ano")
	assert.Equal(t, params[0].Value, "2024")
	assert.Equal(t, params[1].Key, "titulo")
	assert.Equal(t, params[1].Value, "feliz-natal")
	assert.Equal(t, data, "Artigo")

	data, params = r.Lookup(consts.MethodGet, "/es-es/ruta/uno/dos/tres")
	assert.Equal(t, len(params), 3)
	assert.Equal(t, params[0].Value, "uno")
	assert.Equal(t, params[1].Value, "dos")
	assert.Equal(t, params[2].Value, "tres")
	assert.Equal(t, data, "Triple")
}

func TestLocalizedNestedParameters(t *testing.T) {
	r := rtr.New[string]()
	r.Add(consts.MethodGet, "/pt-br/lojas/:loja/pedidos", "Pedidos")
	r.Add(consts.MethodGet, "/pt-br/lojas/:loja/pedidos/:id", "Pedido")
	r.Add(consts.MethodGet, "/pt-br/lojas/:loja/clientes", "Clientes")

	data, params := r.Lookup(consts.MethodGet, "/pt-br/lojas/centro/pedidos")
	assert.Equal(t, len(params), 1)
	assert.Equal(t, params[0].Key, "loja")
	assert.Equal(t, params[0].Value, "centro")
	assert.Equal(t, data, "Pedidos")

	data, params = r.Lookup(consts.MethodGet, "/pt-br/lojas/centro/pedidos/9")
	assert.Equal(t, len(params), 2)
	assert.Equal(t, params[1].Key, "id")
	assert.Equal(t, params[1].Value, "9")
	assert.Equal(t, data, "Pedido")

	data, _ = r.Lookup(consts.MethodGet, "/pt-br/lojas/centro/clientes")
	assert.Equal(t, data, "Clientes")
}

// Same-position parameters under different locale prefixes live on different nodes.
func TestParameterNamesPerLocale(t *testing.T) {
	r := rtr.New[string]()
	r.Add(consts.MethodGet, "/pt-br/produtos/:id", "pt-br")
	r.Add(consts.MethodGet, "/es-es/productos/:codigo", "es-es")

	data, params := r.Lookup(consts.MethodGet, "/pt-br/produtos/1")
	assert.Equal(t, data, "pt-br")
	assert.Equal(t, params[0].Key, "id")

	data, params = r.Lookup(consts.MethodGet, "/es-es/productos/2")
	assert.Equal(t, data, "es-es")
	assert.Equal(t, params[0].Key, "codigo")
}

func TestParameterNameConflict(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		second string
	}{
		{"last segment", "/pt-br/artigos/:id", "/pt-br/artigos/:slug"},
		{"before a static tail", "/pt-br/artigos/:id", "/pt-br/artigos/:slug/comentarios"},
		{"second parameter", "/pt-br/artigos/:ano/:id", "/pt-br/artigos/:ano/:slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				msg, ok := recover().(string)
				assert.True(t, ok)
				assert.True(t, strings.Contains(msg, "conflicting parameter names"))
				assert.True(t, strings.Contains(msg, `"id"`))
				assert.True(t, strings.Contains(msg, `"slug"`))
			}()

			r := rtr.New[string]()
			r.Add(consts.MethodGet, tt.first, "first")
			r.Add(consts.MethodGet, tt.second, "second")
		})
	}
}

func TestSamePatternReplaced(t *testing.T) {
	r := rtr.New[string]()
	r.Add(consts.MethodGet, "/pt-br/produtos/:id", "v1")
	r.Add(consts.MethodGet, "/pt-br/produtos/:id", "v2")

	data, params := r.Lookup(consts.MethodGet, "/pt-br/produtos/5")
	assert.Equal(t, len(params), 1)
	assert.Equal(t, data, "v2")
}

func TestMethods(t *testing.T) {
	r := rtr.New[string]()

	for _, method := range consts.Methods {
		r.Add(method, "/pt-br/", method)
	}

	for _, method := range consts.Methods {
		data, _ := r.Lookup(method, "/pt-br/")
		assert.Equal(t, data, method)
	}
}

func TestTrailingSlash(t *testing.T) {
	r := rtr.New[string]()
	r.Add(consts.MethodGet, "/pt-br/sobre", "Sobre")

	data, params := r.Lookup(consts.MethodGet, "/pt-br/sobre")
	assert.Equal(t, len(params), 0)
	assert.Equal(t, data, "Sobre")

	data, params = r.Lookup(consts.MethodGet, "/pt-br/sobre/")
	assert.Equal(t, len(params), 0)
	assert.Equal(t, data, "Sobre")
}

func TestInvalidMethod(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.FailNow()
		}
	}()

	r := rtr.New[string]()
	r.Add("?", "/pt-br/sobre", "Sobre")
}
