package rtr

import (
	"strings"

	"github.com/rohanthewiz/rweb-i18n/consts"
)

// treeNode is a radix tree node.
// Static children are indexed by their first byte; parameter and wildcard
// children are kept apart so they never shadow static segments.
type treeNode[T any] struct {
	prefix     string         // for parameter and wildcard nodes, the name without ':' or '*'
	data       T              // zero value when no pattern ends here
	children   []*treeNode[T] // children[0] is reserved for "no child"
	parameter  *treeNode[T]
	wildcard   *treeNode[T]
	indices    []uint8 // first byte - startIndex -> position in children
	startIndex uint8
	endIndex   uint8 // last byte + 1
	kind       byte  // ':', '*' or 0 for static
}

// split splits the node at index and inserts a child holding path and data.
// An empty path assigns data to the node itself.
//
//	"blogs" -> h1, add "blog" -> h2
//	"blog" -> h2
//	  └── "s" -> h1
func (node *treeNode[T]) split(index int, path string, data T) {
	splitNode := node.clone(node.prefix[index:])
	node.reset(node.prefix[:index])

	if path == "" {
		node.data = data
		node.addChild(splitNode)
		return
	}

	node.addChild(splitNode)
	node.append(path, data)
}

// clone is a shallow copy with a new prefix. Children are shared.
func (node *treeNode[T]) clone(prefix string) *treeNode[T] {
	return &treeNode[T]{
		prefix:     prefix,
		data:       node.data,
		indices:    node.indices,
		startIndex: node.startIndex,
		endIndex:   node.endIndex,
		children:   node.children,
		parameter:  node.parameter,
		wildcard:   node.wildcard,
		kind:       node.kind,
	}
}

// reset turns the node into a bare static node with the given prefix.
func (node *treeNode[T]) reset(prefix string) {
	var empty T
	node.prefix = prefix
	node.data = empty
	node.parameter = nil
	node.wildcard = nil
	node.kind = 0
	node.startIndex = 0
	node.endIndex = 0
	node.indices = nil
	node.children = nil
}

// addChild adds a static child, growing the index range in either direction
// when the child's first byte falls outside it.
func (node *treeNode[T]) addChild(child *treeNode[T]) {
	if len(node.children) == 0 {
		node.children = append(node.children, nil)
	}

	firstChar := child.prefix[0]

	switch {
	case node.startIndex == 0:
		node.startIndex = firstChar
		node.indices = []uint8{0}
		node.endIndex = node.startIndex + uint8(len(node.indices))

	case firstChar < node.startIndex:
		diff := node.startIndex - firstChar
		newIndices := make([]uint8, diff+uint8(len(node.indices)))
		copy(newIndices[diff:], node.indices)
		node.startIndex = firstChar
		node.indices = newIndices
		node.endIndex = node.startIndex + uint8(len(node.indices))

	case firstChar >= node.endIndex:
		diff := firstChar - node.endIndex + 1
		newIndices := make([]uint8, diff+uint8(len(node.indices)))
		copy(newIndices, node.indices)
		node.indices = newIndices
		node.endIndex = node.startIndex + uint8(len(node.indices))
	}

	index := node.indices[firstChar-node.startIndex]

	if index == 0 {
		node.indices[firstChar-node.startIndex] = uint8(len(node.children))
		node.children = append(node.children, child)
		return
	}

	node.children[index] = child
}

// addTrailingSlash makes /path/ resolve to the same data as /path,
// unless the node is a wildcard or already has a "/" child.
func (node *treeNode[T]) addTrailingSlash(data T) {
	if strings.HasSuffix(node.prefix, "/") || node.kind == consts.RuneAsterisk ||
		(consts.RuneFwdSlash >= node.startIndex && consts.RuneFwdSlash < node.endIndex &&
			node.indices[consts.RuneFwdSlash-node.startIndex] != 0) {
		return
	}

	node.addChild(&treeNode[T]{
		prefix: "/",
		data:   data,
	})
}

// append appends path below the node, creating static, parameter
// and wildcard nodes as the path requires.
func (node *treeNode[T]) append(path string, data T) {
	for {
		if path == "" {
			node.data = data
			return
		}

		paramStart := strings.IndexByte(path, consts.RuneColon)

		if paramStart == -1 {
			paramStart = strings.IndexByte(path, consts.RuneAsterisk)
		}

		// Static remainder
		if paramStart == -1 {
			if node.prefix == "" {
				node.prefix = path
				node.data = data
				node.addTrailingSlash(data)
				return
			}

			child := &treeNode[T]{
				prefix: path,
				data:   data,
			}

			node.addChild(child)
			child.addTrailingSlash(data)
			return
		}

		// Parameter or wildcard right here
		if paramStart == 0 {
			paramEnd := strings.IndexByte(path, consts.RuneFwdSlash)

			if paramEnd == -1 {
				paramEnd = len(path)
			}

			child := &treeNode[T]{
				prefix: path[1:paramEnd],
				kind:   path[paramStart],
			}

			switch child.kind {
			case consts.RuneColon:
				child.addTrailingSlash(data)
				node.parameter = child
				node = child
				path = path[paramEnd:]
				continue

			case consts.RuneAsterisk:
				child.data = data
				node.wildcard = child
				return
			}
		}

		// Static part first, the parameter follows on the next pass
		if node.prefix == "" {
			node.prefix = path[:paramStart]
			path = path[paramStart:]
			continue
		}

		child := &treeNode[T]{
			prefix: path[:paramStart],
		}

		// "/" inherits the parent data so /users and /users/ agree
		if child.prefix == "/" {
			child.data = node.data
		}

		node.addChild(child)
		node = child
		path = path[paramStart:]
	}
}

// end decides where Add goes once the node prefix is fully consumed:
// into a matching child, into the parameter child, or appending the rest.
func (node *treeNode[T]) end(path string, data T, i int, offset int) (*treeNode[T], int, flow) {
	char := path[i]

	if char >= node.startIndex && char < node.endIndex {
		index := node.indices[char-node.startIndex]

		if index != 0 {
			node = node.children[index]
			offset = i
			return node, offset, flowNext
		}
	}

	// Root node
	if node.prefix == "" {
		node.append(path[i:], data)
		return node, offset, flowStop
	}

	//   node: /user/|:id
	//   path: /user/|:id/profile
	if node.parameter != nil && path[i] == consts.RuneColon {
		node = node.parameter
		offset = i
		return node, offset, flowBegin
	}

	node.append(path[i:], data)
	return node, offset, flowStop
}
