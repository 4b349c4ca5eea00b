package rtr

// Parameter is a value captured from a `:name` or `*name` segment.
//
//	pattern: /pt-br/produtos/:id
//	path:    /pt-br/produtos/42
//	result:  []Parameter{{Key: "id", Value: "42"}}
type Parameter struct {
	Key   string
	Value string
}
