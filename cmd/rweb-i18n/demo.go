package main

import (
	"github.com/rohanthewiz/rweb-i18n"
	"github.com/rohanthewiz/rweb-i18n/consts"
	"github.com/rohanthewiz/rweb-i18n/route"
)

// demoControllers is the controller set mounted by the routes and serve commands.
func demoControllers() []route.Controller[rweb.Handler] {
	return []route.Controller[rweb.Handler]{
		{
			Name: "AnnotatedController",
			Path: "/prefix",
			Actions: []route.Action[rweb.Handler]{
				{Name: "WithAbsolutePath", Path: "/absolutePath", Handler: describe},
				{Name: "WithoutPath", Handler: describe},
			},
		},
		{
			Name: "ConventionController",
			Actions: []route.Action[rweb.Handler]{
				{Name: "WithoutPath", Handler: describe},
			},
		},
		{
			Name: "ProductController",
			Path: "/products",
			Actions: []route.Action[rweb.Handler]{
				{Name: "Index", Path: "/", Methods: []string{consts.MethodGet}, Handler: describe},
				{Name: "Show", Path: "{id}", Methods: []string{consts.MethodGet}, Handler: showProduct},
			},
		},
	}
}

type routeInfo struct {
	Route  string `json:"route"`
	Locale string `json:"locale"`
	Path   string `json:"path"`
}

func describe(ctx rweb.Context) error {
	return rweb.JSON(ctx, routeInfo{
		Route:  ctx.Route(),
		Locale: ctx.Locale().String(),
		Path:   ctx.Request().Path(),
	})
}

func showProduct(ctx rweb.Context) error {
	return rweb.JSON(ctx, map[string]string{
		"id":     ctx.Request().Param("id"),
		"locale": ctx.Locale().String(),
	})
}
