package route_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rweb-i18n/route"
)

func TestPathFor(t *testing.T) {
	annotated := route.Controller[string]{Name: "AnnotatedController", Path: "/prefix"}
	convention := route.Controller[string]{Name: "ConventionController"}
	slashed := route.Controller[string]{Name: "SlashedController", Path: "prefix/"}

	withoutPath := route.Action[string]{Name: "WithoutPath"}
	absolute := route.Action[string]{Name: "WithAbsolutePath", Path: "/absolutePath"}
	relative := route.Action[string]{Name: "Relative", Path: "relative"}
	root := route.Action[string]{Name: "Index", Path: "/"}

	assert.Equal(t, route.PathFor(annotated, withoutPath), "/prefix/withoutPath")
	assert.Equal(t, route.PathFor(annotated, absolute), "/prefix/absolutePath")
	assert.Equal(t, route.PathFor(annotated, relative), "/prefix/relative")
	assert.Equal(t, route.PathFor(annotated, root), "/prefix")
	assert.Equal(t, route.PathFor(convention, withoutPath), "/convention/withoutPath")
	assert.Equal(t, route.PathFor(convention, absolute), "/absolutePath")
	assert.Equal(t, route.PathFor(convention, root), "/")
	assert.Equal(t, route.PathFor(slashed, withoutPath), "/prefix/withoutPath")
}

func TestPathParserRulesFor(t *testing.T) {
	router := route.NewRouter[string]()
	parser := route.NewPathParser(router)

	routes := parser.RulesFor(route.Controller[string]{
		Name: "ConventionController",
		Actions: []route.Action[string]{
			{Name: "WithoutPath", Handler: "a"},
			{Name: "", Handler: "skipped"},
			{Name: "WithAbsolutePath", Path: "/absolutePath", Methods: []string{"post"}, Handler: "b"},
		},
	})

	assert.Equal(t, len(routes), 2)
	assert.Equal(t, routes[0].Pattern(), "/convention/withoutPath")
	assert.Equal(t, routes[0].Action(), "withoutPath")
	assert.Equal(t, routes[0].Handler(), "a")
	assert.False(t, routes[0].Localized())
	assert.Equal(t, routes[1].Pattern(), "/absolutePath")
	assert.True(t, routes[1].Allows("POST"))
	assert.False(t, routes[1].Allows("GET"))

	// Parsing does not register
	assert.Equal(t, len(router.Routes()), 0)
}
