package github

import (
	"errors"
	"fmt"
)

var errMissingField = errors.New("missing required field")

// Connection is GitHub's paginated list shape: an object holding an ordered
// list of edges, each wrapping a single node.
type Connection[T any] struct {
	Edges *[]Edge[T] `json:"edges"`
}

// Edge wraps one node of a Connection.
type Edge[T any] struct {
	Node *T `json:"node"`
}

// NewConnection wraps items in the edges/node shape, in order.
func NewConnection[T any](items ...T) Connection[T] {
	edges := make([]Edge[T], len(items))
	for i := range items {
		node := items[i]
		edges[i] = Edge[T]{Node: &node}
	}
	return Connection[T]{Edges: &edges}
}

// Flatten returns the nodes of c in wire order. A missing edges list or a
// missing node is an error; entries are never skipped. An empty edges list
// yields an empty, non-nil slice.
func Flatten[T any](c Connection[T]) ([]T, error) {
	return FlattenInto(c, func(node T) (T, error) { return node, nil })
}

// FlattenInto flattens c and converts every node with convert, stopping at the
// first failure. Errors name the offending edge.
func FlattenInto[W, T any](c Connection[W], convert func(W) (T, error)) ([]T, error) {
	if c.Edges == nil {
		return nil, fmt.Errorf("edges: %w", errMissingField)
	}

	out := make([]T, 0, len(*c.Edges))
	for i, edge := range *c.Edges {
		if edge.Node == nil {
			return nil, fmt.Errorf("edges[%d]: node: %w", i, errMissingField)
		}
		item, err := convert(*edge.Node)
		if err != nil {
			return nil, fmt.Errorf("edges[%d]: node: %w", i, err)
		}
		out = append(out, item)
	}
	return out, nil
}
