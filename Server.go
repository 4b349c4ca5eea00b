package rweb

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/rohanthewiz/rweb-i18n/consts"
	"github.com/rohanthewiz/rweb-i18n/core/rtr"
	"github.com/rohanthewiz/rweb-i18n/i18n"
	"github.com/rohanthewiz/rweb-i18n/route"
	"github.com/rohanthewiz/serr"
	"github.com/rs/zerolog"
)

// Handler serves one request.
type Handler func(Context) error

// ParserFactory builds the parser that derives controller routes.
// It receives the router the routes will be registered with.
type ParserFactory func(router *route.Router[Handler]) route.Parser[Handler]

// ServerOptions configures a Server.
type ServerOptions struct {
	Verbose bool
	// Parser derives controller routes. Nil means plain convention and path routing.
	Parser ParserFactory
	// Logger defaults to a disabled logger.
	Logger *zerolog.Logger
	// KeepTrailingSlashes leaves "/path/" intact in Request().Path().
	// Matching ignores a single trailing slash either way.
	KeepTrailingSlashes bool
}

// LocalizedParser returns a ParserFactory for the i18n routes parser.
func LocalizedParser(resources i18n.RoutesResources, opts ...i18n.Option) ParserFactory {
	return func(router *route.Router[Handler]) route.Parser[Handler] {
		return i18n.NewRoutesParser(router, resources, opts...)
	}
}

// Server is the HTTP Server.
type Server struct {
	opts         ServerOptions
	handlers     []Handler
	contextPool  sync.Pool
	router       *route.Router[Handler]
	parser       route.Parser[Handler]
	logger       zerolog.Logger
	errorHandler func(Context, error)
}

// NewServer creates a new HTTP server.
func NewServer(options ...ServerOptions) *Server {
	var opts ServerOptions
	if len(options) > 0 {
		opts = options[0]
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	s := &Server{
		opts:   opts,
		logger: logger,
		router: route.NewRouter[Handler](route.WithLogger(logger)),
	}

	if opts.Parser != nil {
		s.parser = opts.Parser(s.router)
	} else {
		s.parser = route.NewPathParser(s.router)
	}

	s.handlers = []Handler{s.dispatch}
	s.errorHandler = func(ctx Context, err error) {
		s.logger.Error().Err(err).Str("path", ctx.Request().Path()).Msg("handler failed")
	}

	s.contextPool.New = func() any { return s.newContext() }
	return s
}

// dispatch is the last handler of the chain. It resolves the route and calls its handler.
func (s *Server) dispatch(c Context) error {
	ctx := c.(*context)

	rt, params := s.router.Find(ctx.request.method, ctx.request.path)
	if rt == nil || rt.Handler() == nil {
		ctx.SetStatus(consts.StatusNotFound)
		return nil
	}

	ctx.route = rt
	ctx.request.params = append(ctx.request.params, params...)
	return rt.Handler()(c)
}

// AddMethod registers a handler for the verb and pattern.
// Patterns may use ":id" or "{id}" for parameters and "*rest" or "{rest*}" for a tail.
func (s *Server) AddMethod(method string, path string, handler Handler) {
	s.router.Add(s.router.BuilderFor(path).With(method).Handler(handler).Build())
}

// Get registers your function to be called when the given GET path has been requested.
func (s *Server) Get(path string, handler Handler) {
	s.AddMethod(consts.MethodGet, path, handler)
}

// Post registers your function to be called when the given POST path has been requested.
func (s *Server) Post(path string, handler Handler) {
	s.AddMethod(consts.MethodPost, path, handler)
}

// Put registers your function to be called when the given PUT path has been requested.
func (s *Server) Put(path string, handler Handler) {
	s.AddMethod(consts.MethodPut, path, handler)
}

// Patch registers your function to be called when the given PATCH path has been requested.
func (s *Server) Patch(path string, handler Handler) {
	s.AddMethod(consts.MethodPatch, path, handler)
}

// Delete registers your function to be called when the given DELETE path has been requested.
func (s *Server) Delete(path string, handler Handler) {
	s.AddMethod(consts.MethodDelete, path, handler)
}

// Controller derives the routes of a controller with the configured parser
// and registers all of them, localized variants included.
func (s *Server) Controller(c route.Controller[Handler]) error {
	if errs := s.router.Register(s.parser, c); len(errs) > 0 {
		return serr.Wrap(errs[0], "unable to register controller")
	}
	return nil
}

// Routes returns the registered routes in registration order.
func (s *Server) Routes() []*route.Route[Handler] {
	return s.router.Routes()
}

// Router returns the route registry of the server.
func (s *Server) Router() *route.Router[Handler] {
	return s.router
}

// Locales returns the locales the parser emits routes for.
// It is empty when the parser is not localized.
func (s *Server) Locales() []i18n.Locale {
	if lp, ok := s.parser.(interface{ Locales() []i18n.Locale }); ok {
		return lp.Locales()
	}
	return nil
}

// Logger returns the server logger.
func (s *Server) Logger() zerolog.Logger {
	return s.logger
}

// Use adds handlers to your handlers chain.
func (s *Server) Use(handlers ...Handler) {
	last := s.handlers[len(s.handlers)-1]
	// Re-slice to exclude last and append the incoming handlers
	s.handlers = append(s.handlers[:len(s.handlers)-1], handlers...)
	s.handlers = append(s.handlers, last) // add back the last
}

// Request performs a synthetic request and returns the response.
// The response is kept in memory, which makes it handy in tests.
func (s *Server) Request(method string, url string, headers []Header, body io.Reader) Response {
	ctx := s.newContext()
	ctx.request.headers = append(ctx.request.headers, headers...)

	if body != nil {
		b, err := io.ReadAll(body)
		if err == nil {
			ctx.request.body = b
		}
	}

	s.handleRequest(ctx, method, url, io.Discard)
	return ctx.Response()
}

// RunOpts tunes Run.
type RunOpts struct {
	Verbose bool
	// StatusChan is a channel signalling that the server is about to enter its listen loop
	// It should be a buffered chan (cap 1 is all that is needed), so the server will not hang
	StatusChan chan struct{}
}

// Run starts the server on the given address and blocks until SIGINT or SIGTERM.
func (s *Server) Run(address string, runOpts ...RunOpts) error {
	var opts RunOpts
	if len(runOpts) > 0 {
		opts = runOpts[0]
	}
	verbose := opts.Verbose || s.opts.Verbose

	if opts.StatusChan != nil && cap(opts.StatusChan) < 1 {
		s.logger.Warn().Msg("status channel capacity should be at least 1, or we may hang")
	}

	listener, err := net.Listen(consts.ProtocolTCP, address)
	if err != nil {
		return serr.Wrap(err, "unable to listen", "address", address)
	}
	defer listener.Close()

	served := make(chan error, 1)
	go func() {
		if opts.StatusChan != nil {
			opts.StatusChan <- struct{}{} // Let the caller know we are running
		}
		if verbose {
			s.logger.Info().Str("address", listener.Addr().String()).Int("routes", len(s.router.Routes())).
				Msg("server is running")
		}
		served <- s.Serve(listener)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case <-stop:
		return nil
	case err := <-served:
		return err
	}
}

// Serve accepts connections on the listener until it is closed.
// A closed listener ends Serve without an error.
func (s *Server) Serve(listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Debug().Err(err).Msg("accept failed")
			continue
		}

		go s.handleConnection(conn)
	}
}

// handleConnection handles an accepted connection.
func (s *Server) handleConnection(conn net.Conn) {
	var (
		ctx    = s.contextPool.Get().(*context)
		method string
		url    string
	)

	ctx.reader.Reset(conn)

	defer conn.Close()
	defer s.contextPool.Put(ctx)

	for {
		// Read the HTTP request line
		message, err := ctx.reader.ReadString(consts.RuneNewLine)
		if err != nil {
			return
		}

		space := strings.IndexByte(message, consts.RuneSingleSpace)

		if space <= 0 {
			_, _ = io.WriteString(conn, consts.HTTPBadRequest)
			return
		}

		method = message[:space]

		if !isValidRequestMethod(method) {
			_, _ = io.WriteString(conn, consts.HTTPBadMethod)
			return
		}

		lastSpace := strings.LastIndexByte(message, consts.RuneSingleSpace)

		if lastSpace == space {
			lastSpace = len(message) - len(consts.CRLF)
		}

		url = message[space+1 : lastSpace]

		var contentLen int64
		var isChunked bool

		// Add headers until we meet an empty line
		for {
			message, err = ctx.reader.ReadString(consts.RuneNewLine)
			if err != nil {
				return
			}

			if message == consts.CRLF { // end of headers
				break
			}

			colon := strings.IndexByte(message, consts.RuneColon)

			if colon <= 0 {
				continue // header should include a colon
			}

			key := message[:colon]
			value := strings.TrimSpace(message[colon+1:])

			ctx.request.headers = append(ctx.request.headers, Header{
				Key:   key,
				Value: value,
			})

			switch {
			case strings.EqualFold(key, consts.HeaderContentLength):
				contentLen, err = strconv.ParseInt(value, 10, 64)
				if err != nil || contentLen < 0 {
					_, _ = io.WriteString(conn, consts.HTTPBadRequest)
					return
				}
			case strings.EqualFold(key, consts.HeaderTransferEncoding) &&
				strings.Contains(strings.ToLower(value), "chunked"):
				isChunked = true
			}
		}

		if contentLen > 0 {
			body := make([]byte, contentLen)
			if _, err = io.ReadFull(ctx.reader, body); err != nil {
				return
			}
			ctx.request.body = append(ctx.request.body, body...)
		} else if isChunked {
			if !s.readChunked(ctx, conn) {
				return
			}
		}

		s.handleRequest(ctx, method, url, conn)
		ctx.reset()
	}
}

// readChunked reads a chunked body into the request. It reports false when the connection must be dropped.
func (s *Server) readChunked(ctx *context, conn net.Conn) bool {
	for {
		chunkSize, err := ctx.reader.ReadString(consts.RuneNewLine)
		if err != nil {
			return false
		}

		size, err := strconv.ParseInt(strings.TrimSpace(chunkSize), 16, 64)
		if err != nil || size < 0 {
			_, _ = io.WriteString(conn, consts.HTTPBadRequest)
			return false
		}

		// Zero size chunk ends the body, read the final CRLF
		if size == 0 {
			_, err = ctx.reader.ReadString(consts.RuneNewLine)
			return err == nil
		}

		chunk := make([]byte, size)
		if _, err = io.ReadFull(ctx.reader, chunk); err != nil {
			return false
		}
		ctx.request.body = append(ctx.request.body, chunk...)

		// Chunk CRLF
		if _, err = ctx.reader.ReadString(consts.RuneNewLine); err != nil {
			return false
		}
	}
}

// handleRequest handles the given request.
func (s *Server) handleRequest(ctx *context, method string, url string, writer io.Writer) {
	ctx.method = method
	ctx.scheme, ctx.host, ctx.path, ctx.query = parseURL(url, s.opts.KeepTrailingSlashes)

	// Call the Request handler
	err := s.handlers[0](ctx)
	if err != nil {
		s.errorHandler(ctx, err)
	}

	if ctx.route != nil && ctx.route.Localized() && ctx.response.Header(consts.HeaderContentLang) == "" {
		ctx.response.SetHeader(consts.HeaderContentLang, ctx.route.Tag().String())
	}

	tmp := bytes.Buffer{}
	tmp.WriteString(consts.HTTP1)
	tmp.WriteByte(consts.RuneSingleSpace)
	tmp.WriteString(strconv.Itoa(int(ctx.status)))
	tmp.WriteString(consts.CRLF)
	tmp.WriteString(consts.HeaderContentLength)
	tmp.WriteString(": ")
	tmp.WriteString(strconv.Itoa(len(ctx.response.body)))
	tmp.WriteString(consts.CRLF)

	for _, header := range ctx.response.headers {
		tmp.WriteString(header.Key)
		tmp.WriteString(": ")
		tmp.WriteString(header.Value)
		tmp.WriteString(consts.CRLF)
	}

	tmp.WriteString(consts.CRLF)
	tmp.Write(ctx.response.body)
	_, _ = writer.Write(tmp.Bytes())
}

// newContext allocates a new context with the default state.
func (s *Server) newContext() *context {
	return &context{
		server: s,
		request: request{
			reader:  bufio.NewReader(nil),
			body:    make([]byte, 0),
			headers: make([]Header, 0, 8),
			params:  make([]rtr.Parameter, 0, 8),
		},
		response: response{
			body:    make([]byte, 0, 1024),
			headers: make([]Header, 0, 8),
			status:  consts.StatusOK,
		},
	}
}
