package rtr

import (
	"github.com/rohanthewiz/rweb-i18n/consts"
)

// RadixRouter keeps one radix tree per HTTP method.
// It serves the patterns that carry parameters or wildcards.
type RadixRouter[T any] struct {
	get     Tree[T]
	post    Tree[T]
	delete  Tree[T]
	put     Tree[T]
	patch   Tree[T]
	head    Tree[T]
	connect Tree[T]
	trace   Tree[T]
	options Tree[T]
}

// New creates a radix router. The zero value is usable as well.
func New[T any]() *RadixRouter[T] {
	return &RadixRouter[T]{}
}

// Add registers data for the given method and pattern.
func (router *RadixRouter[T]) Add(method string, path string, data T) {
	tree := router.selectTree(method)
	tree.Add(path, data)
}

// Lookup finds the data and parameters for the given method and path.
func (router *RadixRouter[T]) Lookup(method string, path string) (T, []Parameter) {
	if method[0] == 'G' {
		return router.get.Lookup(path)
	}

	tree := router.selectTree(method)
	return tree.Lookup(path)
}

func (router *RadixRouter[T]) selectTree(method string) *Tree[T] {
	switch method {
	case consts.MethodGet:
		return &router.get
	case consts.MethodPost:
		return &router.post
	case consts.MethodDelete:
		return &router.delete
	case consts.MethodPut:
		return &router.put
	case consts.MethodPatch:
		return &router.patch
	case consts.MethodHead:
		return &router.head
	case consts.MethodConnect:
		return &router.connect
	case consts.MethodTrace:
		return &router.trace
	case consts.MethodOptions:
		return &router.options
	default:
		return nil
	}
}
