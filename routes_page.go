package rweb

import (
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rweb-i18n/core/rtr"
)

// routesTable lists every route with its verb, locale and controller action.
type routesTable struct {
	Rows []rtr.RouteList
}

func (t routesTable) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T("Routes"),
			b.Style().T(`
				body { font-family: sans-serif; margin: 20px; }
				table { border-collapse: collapse; }
				th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
			`),
		),
		b.Body().R(
			b.H1().T("Routes"),
			b.Table().R(
				b.Tr().R(
					b.Th().T("Method"),
					b.Th().T("Path"),
					b.Th().T("Locale"),
					b.Th().T("Handler"),
				),
				func() any {
					for _, row := range t.Rows {
						b.Tr().R(
							b.Td().T(row.Method),
							b.Td().T(row.Path),
							b.Td().T(row.Locale),
							b.Td().T(row.HandlerRef),
						)
					}
					return nil
				}(),
			),
		),
	)
	return nil
}

// RoutesPage renders the route table of the server as HTML.
func RoutesPage(ctx Context) error {
	b := element.NewBuilder()
	element.RenderComponents(b, routesTable{Rows: ctx.Server().Router().Table()})
	return HTML(ctx, b.String())
}
