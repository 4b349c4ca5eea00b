package rweb

import (
	"path"

	"github.com/rohanthewiz/rweb-i18n/consts"
	"github.com/rohanthewiz/rweb-i18n/route"
	"github.com/rohanthewiz/serr"
)

// Group shares a URL prefix and middleware between routes.
// Controllers mounted on a group get the prefix in front of their base path,
// so it is translated along with the rest of the pattern.
type Group struct {
	prefix   string
	server   *Server
	handlers []Handler
}

// Group creates a route group under prefix with optional middleware.
func (s *Server) Group(prefix string, handlers ...Handler) *Group {
	return &Group{
		prefix:   path.Join("/", prefix),
		server:   s,
		handlers: handlers,
	}
}

// Group creates a sub-group. It inherits the parent middleware and prefix.
func (g *Group) Group(prefix string, handlers ...Handler) *Group {
	return &Group{
		prefix:   path.Join(g.prefix, prefix),
		server:   g.server,
		handlers: append(append([]Handler(nil), g.handlers...), handlers...),
	}
}

// Use adds middleware for routes registered after this call.
func (g *Group) Use(handlers ...Handler) {
	g.handlers = append(g.handlers, handlers...)
}

// Get registers a GET route with the group prefix
func (g *Group) Get(path string, handler Handler) {
	g.addRoute(consts.MethodGet, path, handler)
}

// Post registers a POST route with the group prefix
func (g *Group) Post(path string, handler Handler) {
	g.addRoute(consts.MethodPost, path, handler)
}

// Put registers a PUT route with the group prefix
func (g *Group) Put(path string, handler Handler) {
	g.addRoute(consts.MethodPut, path, handler)
}

// Patch registers a PATCH route with the group prefix
func (g *Group) Patch(path string, handler Handler) {
	g.addRoute(consts.MethodPatch, path, handler)
}

// Delete registers a DELETE route with the group prefix
func (g *Group) Delete(path string, handler Handler) {
	g.addRoute(consts.MethodDelete, path, handler)
}

// Controller mounts a controller under the group prefix.
// Paths resolve as they would without a group, then get the prefix in front.
// For "ConventionController" on "/admin":
//
//	action "WithoutPath"              -> /admin/convention/withoutPath
//	action path "/absolutePath"       -> /admin/absolutePath
func (g *Group) Controller(c route.Controller[Handler]) error {
	actions := make([]route.Action[Handler], len(c.Actions))
	for i, a := range c.Actions {
		if a.Handler != nil {
			a.Handler = g.wrap(a.Handler)
		}
		actions[i] = a
	}
	c.Actions = actions

	if c.Path != "" {
		c.Path = path.Join(g.prefix, c.Path)
		return g.server.Controller(c)
	}

	if err := c.Validate(); err != nil {
		return serr.Wrap(err, "unable to register controller")
	}

	// Convention routing: derived paths sit below the controller name,
	// explicit ones directly below the prefix
	derived, explicit := c, c
	derived.Path = path.Join(g.prefix, route.ConventionName(c.Name))
	explicit.Path = g.prefix
	derived.Actions, explicit.Actions = nil, nil

	for _, a := range actions {
		if a.Path == "" {
			derived.Actions = append(derived.Actions, a)
			continue
		}
		explicit.Actions = append(explicit.Actions, a)
	}

	for _, part := range []route.Controller[Handler]{derived, explicit} {
		if len(part.Actions) == 0 {
			continue
		}
		if err := g.server.Controller(part); err != nil {
			return err
		}
	}
	return nil
}

func (g *Group) addRoute(method, routePath string, handler Handler) {
	g.server.AddMethod(method, path.Join(g.prefix, routePath), g.wrap(handler))
}

// wrap chains the group middleware in front of handler.
// Middleware that neither calls Next nor fails lets the chain continue.
func (g *Group) wrap(handler Handler) Handler {
	final := handler

	for i := len(g.handlers) - 1; i >= 0; i-- {
		middleware := g.handlers[i]
		next := final

		final = func(ctx Context) error {
			nextCalled := false

			err := middleware(&contextWrapper{
				Context: ctx,
				next: func() error {
					nextCalled = true
					return next(ctx)
				},
			})

			if err == nil && !nextCalled {
				err = next(ctx)
			}
			return err
		}
	}

	return final
}

// contextWrapper routes Next to the group chain instead of the server chain.
type contextWrapper struct {
	Context
	next func() error
}

func (w *contextWrapper) Next() error {
	return w.next()
}
