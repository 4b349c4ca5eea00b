package rweb_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rweb-i18n"
	"github.com/rohanthewiz/rweb-i18n/consts"
	"golang.org/x/text/language"
)

func TestBytes(t *testing.T) {
	s := rweb.NewServer()

	s.Get("/", func(ctx rweb.Context) error {
		return ctx.Bytes([]byte("Hello"))
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, string(response.Body()), "Hello")
}

func TestString(t *testing.T) {
	s := rweb.NewServer()

	s.Get("/", func(ctx rweb.Context) error {
		return ctx.String("Hello")
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, string(response.Body()), "Hello")
}

func TestError(t *testing.T) {
	s := rweb.NewServer()

	s.Get("/", func(ctx rweb.Context) error {
		return ctx.Status(401).Error("Not logged in")
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Status(), 401)
	assert.Equal(t, string(response.Body()), "")
}

func TestErrorMultiple(t *testing.T) {
	s := rweb.NewServer()

	s.Get("/", func(ctx rweb.Context) error {
		return ctx.Status(401).Error("Not logged in", errors.New("Missing auth token"))
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Status(), 401)
	assert.Equal(t, string(response.Body()), "")
}

func TestRedirect(t *testing.T) {
	s := rweb.NewServer()

	s.Get("/", func(ctx rweb.Context) error {
		return ctx.Redirect(301, "/target")
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Status(), 301)
	assert.Equal(t, response.Header("Location"), "/target")
}

func TestNotFound(t *testing.T) {
	s := rweb.NewServer()

	s.Get("/", func(ctx rweb.Context) error {
		return ctx.String("Hello")
	})

	response := s.Request(consts.MethodGet, "/nowhere", nil, nil)
	assert.Equal(t, response.Status(), 404)

	response = s.Request(consts.MethodPost, "/", nil, nil)
	assert.Equal(t, response.Status(), 404)
}

func TestContextRouteAndLocale(t *testing.T) {
	s := rweb.NewServer()

	s.Get("/users/:id", func(ctx rweb.Context) error {
		assert.Equal(t, ctx.Locale(), language.Und)
		return ctx.String(ctx.Route())
	})

	response := s.Request(consts.MethodGet, "/users/7", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, string(response.Body()), "/users/:id")
	assert.Equal(t, response.Header(consts.HeaderContentLang), "")
}

func TestMiddlewareChain(t *testing.T) {
	s := rweb.NewServer()
	var order []string

	s.Use(func(ctx rweb.Context) error {
		order = append(order, "first")
		return ctx.Next()
	})
	s.Use(func(ctx rweb.Context) error {
		order = append(order, "second")
		err := ctx.Next()
		order = append(order, "second-after")
		return err
	})

	s.Get("/", func(ctx rweb.Context) error {
		order = append(order, "handler")
		return nil
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, len(order), 4)
	assert.Equal(t, order[0], "first")
	assert.Equal(t, order[1], "second")
	assert.Equal(t, order[2], "handler")
	assert.Equal(t, order[3], "second-after")
}
