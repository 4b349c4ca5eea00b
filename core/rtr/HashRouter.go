package rtr

import (
	"github.com/rohanthewiz/rweb-i18n/consts"
)

// HashRouter is an exact-match router for static patterns.
type HashRouter[T any] struct {
	get     map[string]T
	post    map[string]T
	delete  map[string]T
	put     map[string]T
	patch   map[string]T
	head    map[string]T
	connect map[string]T
	trace   map[string]T
	options map[string]T
}

// NewHashRouter creates a hash router with a map for every HTTP method.
// The zero value is not usable.
func NewHashRouter[T any]() *HashRouter[T] {
	return &HashRouter[T]{
		get:     make(map[string]T, 16),
		post:    make(map[string]T, 8),
		delete:  make(map[string]T),
		put:     make(map[string]T),
		patch:   make(map[string]T),
		head:    make(map[string]T),
		connect: make(map[string]T),
		trace:   make(map[string]T),
		options: make(map[string]T),
	}
}

// Add registers data for the given method and path.
func (hr *HashRouter[T]) Add(method string, path string, data T) {
	hashMap := hr.selectMethodMap(method)
	hashMap[path] = data
}

// Has reports whether a pattern is registered for the method.
func (hr *HashRouter[T]) Has(method string, path string) bool {
	hashMap := hr.selectMethodMap(method)
	if hashMap == nil {
		return false
	}
	_, ok := hashMap[path]
	return ok
}

// Lookup finds the data for the given method and path.
func (hr *HashRouter[T]) Lookup(method string, path string) T {
	if method[0] == 'G' {
		return hr.get[path]
	}

	hashMap := hr.selectMethodMap(method)
	return hashMap[path]
}

func (hr *HashRouter[T]) selectMethodMap(method string) map[string]T {
	switch method {
	case consts.MethodGet:
		return hr.get
	case consts.MethodPost:
		return hr.post
	case consts.MethodDelete:
		return hr.delete
	case consts.MethodPut:
		return hr.put
	case consts.MethodPatch:
		return hr.patch
	case consts.MethodHead:
		return hr.head
	case consts.MethodConnect:
		return hr.connect
	case consts.MethodTrace:
		return hr.trace
	case consts.MethodOptions:
		return hr.options
	default:
		return nil
	}
}
