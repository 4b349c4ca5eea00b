package rtr

import (
	"fmt"

	"github.com/rohanthewiz/rweb-i18n/consts"
)

// Tree is a radix tree (compressed trie) of route patterns.
// Common prefixes are stored once, so /pt-br/produtos and /pt-br/prefixo
// share the "/pt-br/pr" node.
//
//	root
//	 └── "/pt-br/pr"
//	      ├── "odutos"  (data for /pt-br/produtos)
//	      │    └── ":" id (data for /pt-br/produtos/:id)
//	      └── "efixo"   (data for /pt-br/prefixo)
//
// The zero value is ready to use.
type Tree[T any] struct {
	root treeNode[T]
}

// Add adds a new pattern to the tree, splitting nodes where the new pattern
// diverges from an existing one.
// Parameters sharing a position must share a name; Add panics otherwise,
// since both patterns would be served by the same parameter node.
func (tree *Tree[T]) Add(path string, data T) {
	i := 0      // position in path
	offset := 0 // start of the current node's prefix in path
	node := &tree.root

	for {
	begin:
		switch node.kind {
		case consts.RuneColon:
			// The parameter name in path runs from the ':' to here
			if i == len(path) || path[i] == consts.RuneFwdSlash {
				if name := path[offset+1 : i]; name != node.prefix {
					panic(fmt.Sprintf("rtr: conflicting parameter names %q and %q at the same position in %q",
						node.prefix, name, path))
				}
			}

			// Same parameter pattern added twice: /post/:id| vs /post/:id|
			if i == len(path) {
				node.data = data
				return
			}

			// Separator after a parameter: /user/:id|/posts
			if path[i] == consts.RuneFwdSlash {
				node, offset, _ = node.end(path, data, i, offset)
				goto next
			}

		default:
			if i == len(path) {
				// Exact match  node: /blog|  path: /blog|
				if i-offset == len(node.prefix) {
					node.data = data
					return
				}

				// Shorter than the node  node: /blog|feed  path: /blog|
				node.split(i-offset, "", data)
				return
			}

			// Node prefix consumed, descend  node: /|  path: /|blog
			if i-offset == len(node.prefix) {
				var control flow
				node, offset, control = node.end(path, data, i, offset)

				switch control {
				case flowStop:
					return
				case flowBegin:
					goto begin
				case flowNext:
					goto next
				}
			}

			// Divergence  node: /b|ag  path: /b|riefcase
			if path[i] != node.prefix[i-offset] {
				node.split(i-offset, path[i:], data)
				return
			}
		}

	next:
		i++
	}
}

// Lookup finds the data for the given path and collects any parameters.
func (tree *Tree[T]) Lookup(path string) (T, []Parameter) {
	var params []Parameter

	data := tree.lookup(path, func(key string, value string) {
		params = append(params, Parameter{key, value})
	})

	return data, params
}

// lookup walks the tree for path.
// Parameters are handed to addParameter as they are captured.
func (tree *Tree[T]) lookup(path string, addParameter func(key string, value string)) T {
	var (
		i            uint // unsigned for cheaper bounds checks
		wildcardPath string
		wildcard     *treeNode[T]
		node         = &tree.root
	)

	// Most patterns start with '/', skip the first comparison
	if len(path) > 0 && len(node.prefix) > 0 && path[0] == node.prefix[0] {
		i = 1
	}

begin:
	for i < uint(len(path)) {
		// Node prefix consumed, look for a child
		if i == uint(len(node.prefix)) {
			// Remember the deepest wildcard in case nothing more specific matches
			if node.wildcard != nil {
				wildcard = node.wildcard
				wildcardPath = path[i:]
			}

			char := path[i]

			if char >= node.startIndex && char < node.endIndex {
				index := node.indices[char-node.startIndex]

				if index != 0 {
					node = node.children[index]
					path = path[i:]
					i = 1
					continue
				}
			}

			// Parameter: capture up to the next '/' or the end of path
			if node.parameter != nil {
				node = node.parameter
				path = path[i:]
				i = 1

				for i < uint(len(path)) {
					if path[i] == consts.RuneFwdSlash {
						addParameter(node.prefix, path[:i])
						index := node.indices[consts.RuneFwdSlash-node.startIndex]
						node = node.children[index]
						path = path[i:]
						i = 1
						goto begin
					}

					i++
				}

				addParameter(node.prefix, path[:i])
				return node.data
			}

			goto notFound
		}

		if path[i] != node.prefix[i] {
			goto notFound
		}

		i++
	}

	if i == uint(len(node.prefix)) {
		return node.data
	}

notFound:
	if wildcard != nil {
		addParameter(wildcard.prefix, wildcardPath)
		return wildcard.data
	}

	var empty T
	return empty
}
