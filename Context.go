package rweb

import (
	"errors"

	"github.com/rohanthewiz/rweb-i18n/consts"
	"github.com/rohanthewiz/rweb-i18n/route"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// Context is the interface for a request and its response.
type Context interface {
	Bytes([]byte) error
	Error(...any) error
	Next() error
	Redirect(int, string) error
	Request() Request
	Response() Response
	Status(int) Context
	String(string) error
	WriteString(string) error
	UserAgent() string

	// Locale is the locale of the matched route, language.Und for routes without one.
	Locale() language.Tag
	// Route is the pattern of the matched route, empty when nothing matched yet.
	Route() string

	Server() *Server
	Logger() zerolog.Logger
}

// context contains the request and response data.
type context struct {
	request
	response
	server       *Server
	route        *route.Route[Handler]
	handlerCount uint8
}

// Bytes adds the raw byte slice to the response body.
func (ctx *context) Bytes(body []byte) error {
	ctx.response.body = append(ctx.response.body, body...)
	return nil
}

// Error provides a convenient way to wrap multiple errors.
func (ctx *context) Error(messages ...any) error {
	var combined []error

	for _, msg := range messages {
		switch err := msg.(type) {
		case error:
			combined = append(combined, err)
		case string:
			combined = append(combined, errors.New(err))
		}
	}

	return errors.Join(combined...)
}

// Next executes the next handler in the middleware chain.
func (ctx *context) Next() error {
	ctx.handlerCount++
	return ctx.server.handlers[ctx.handlerCount](ctx)
}

// Redirect redirects the client to a different location
// with the specified status code.
func (ctx *context) Redirect(status int, location string) error {
	ctx.response.SetStatus(status)
	ctx.response.SetHeader(consts.HeaderLocation, location)
	return nil
}

// Request returns the HTTP request.
func (ctx *context) Request() Request {
	return &ctx.request
}

// Response returns the HTTP response.
func (ctx *context) Response() Response {
	return &ctx.response
}

// Status sets the HTTP status of the response
// and returns the context for method chaining.
func (ctx *context) Status(status int) Context {
	ctx.response.SetStatus(status)
	return ctx
}

// String adds the given string to the response body.
func (ctx *context) String(body string) error {
	ctx.response.body = append(ctx.response.body, body...)
	return nil
}

// WriteString is String, for handlers that read better that way.
func (ctx *context) WriteString(body string) error {
	return ctx.String(body)
}

// UserAgent returns the User-Agent request header.
func (ctx *context) UserAgent() string {
	return ctx.request.Header(consts.HeaderUserAgent)
}

// Locale returns the locale of the matched route, or language.Und
// for an unlocalized route or no match.
func (ctx *context) Locale() language.Tag {
	if ctx.route == nil {
		return language.Und
	}
	return ctx.route.Tag()
}

// Route returns the pattern of the matched route, empty when nothing matched.
func (ctx *context) Route() string {
	if ctx.route == nil {
		return ""
	}
	return ctx.route.Pattern()
}

// Server returns the server handling the request.
func (ctx *context) Server() *Server {
	return ctx.server
}

// Logger returns the server logger.
func (ctx *context) Logger() zerolog.Logger {
	return ctx.server.logger
}

// reset clears the per-request state so the context can serve the next request on the connection.
func (ctx *context) reset() {
	ctx.request.headers = ctx.request.headers[:0]
	ctx.request.body = ctx.request.body[:0]
	ctx.request.params = ctx.request.params[:0]
	ctx.response.headers = ctx.response.headers[:0]
	ctx.response.body = ctx.response.body[:0]
	ctx.response.status = consts.StatusOK
	ctx.route = nil
	ctx.handlerCount = 0
}
