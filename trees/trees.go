// Package trees provides visiting, searching and pruning over nested
// collections of the shape produced by decoding JSON or YAML into generic
// values: map[string]any for objects and []any for arrays. Everything else
// is treated as a leaf.
//
// Map keys are visited in sorted order so traversal is deterministic.
package trees

import (
	"fmt"
	"sort"
	"strings"
)

// Path locates a node in a nested collection: string elements are map
// keys, int elements are slice indexes. The empty Path is the root.
type Path []any

// String renders the path in bracket notation, e.g. $['user']['tags'][0].
func (p Path) String() string {
	var out strings.Builder

	out.WriteByte('$')

	for _, elem := range p {
		switch v := elem.(type) {
		case string:
			fmt.Fprintf(&out, "['%s']", v)
		case int:
			fmt.Fprintf(&out, "[%d]", v)
		default:
			fmt.Fprintf(&out, "[%v]", v)
		}
	}

	return out.String()
}

// clone returns a copy of the path extended with elem. A fresh slice is
// allocated so visitor callbacks can retain paths safely.
func (p Path) clone(elem any) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = elem

	return out
}

// Visitor receives each visited node with its path. Returning false stops
// descent into that node's children; siblings are still visited.
type Visitor func(path Path, value any) bool

// Visit walks root depth-first, pre-order, calling visit for every node
// including the root and interior collections.
func Visit(root any, visit Visitor) {
	walk(nil, root, visit)
}

func walk(path Path, node any, visit Visitor) {
	if !visit(path, node) {
		return
	}

	switch v := node.(type) {
	case map[string]any:
		for _, key := range sortedKeys(v) {
			walk(path.clone(key), v[key], visit)
		}
	case []any:
		for i, elem := range v {
			walk(path.clone(i), elem, visit)
		}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Match pairs a matched node with its location.
type Match struct {
	Path  Path
	Value any
}

// Grep collects every node for which pred returns true, in traversal
// order. Interior collections are candidates too, and a matching
// collection's children are still searched.
func Grep(root any, pred func(value any) bool) []Match {
	var matches []Match

	Visit(root, func(path Path, value any) bool {
		if pred(value) {
			matches = append(matches, Match{Path: path, Value: value})
		}

		return true
	})

	return matches
}

// Leaves returns the paths of all leaf nodes (non-collections and empty
// collections), in traversal order.
func Leaves(root any) []Path {
	var paths []Path

	Visit(root, func(path Path, value any) bool {
		if isLeaf(value) {
			paths = append(paths, path)
		}

		return true
	})

	return paths
}

func isLeaf(value any) bool {
	switch v := value.(type) {
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return true
	}
}

// Prune returns a deep copy of root with every node for which pred
// returns true removed, along with its subtree. Pruning the root returns
// nil. The input is never modified.
func Prune(root any, pred func(path Path, value any) bool) any {
	if pred(nil, root) {
		return nil
	}

	return pruneChildren(nil, root, pred)
}

// pruneChildren rebuilds node with pruned children. pred has already
// cleared node itself.
func pruneChildren(path Path, node any, pred func(path Path, value any) bool) any {
	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))

		for _, key := range sortedKeys(v) {
			childPath := path.clone(key)
			if pred(childPath, v[key]) {
				continue
			}

			out[key] = pruneChildren(childPath, v[key], pred)
		}

		return out
	case []any:
		out := make([]any, 0, len(v))

		for i, elem := range v {
			childPath := path.clone(i)
			if pred(childPath, elem) {
				continue
			}

			out = append(out, pruneChildren(childPath, elem, pred))
		}

		return out
	default:
		return node
	}
}

// Get resolves a path against root, returning the node and true, or nil
// and false if any element of the path cannot be traversed.
func Get(root any, path Path) (any, bool) {
	node := root

	for _, elem := range path {
		switch v := node.(type) {
		case map[string]any:
			key, ok := elem.(string)
			if !ok {
				return nil, false
			}

			child, ok := v[key]
			if !ok {
				return nil, false
			}

			node = child
		case []any:
			idx, ok := elem.(int)
			if !ok || idx < 0 || idx >= len(v) {
				return nil, false
			}

			node = v[idx]
		default:
			return nil, false
		}
	}

	return node, true
}
