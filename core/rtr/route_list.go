package rtr

// RouteList is one row of a route table, for listings and debug pages.
type RouteList struct {
	Method     string
	Path       string
	HandlerRef string
	Locale     string
}
