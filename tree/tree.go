// Package tree implements a recursive binary tree union:
//
//	Tree[T] = Empty | Leaf(T) | Node(Tree[T], Tree[T])
//
// Every operation is a Fold, so the structure is walked in exactly one place.
package tree

import (
	"fmt"

	"github.com/KasperOmsK/adtfn"
)

// Sum declares the Tree variants.
var Sum = adtfn.NewSum("Tree", "Empty", "Leaf", "Node")

// Tree is an Empty, a Leaf or a Node.
//
// T appears in the marker method so that callers passing a concrete variant,
// such as Size(Leaf[int]{Value: 1}), get T inferred.
type Tree[T any] interface {
	adtfn.Variant
	isTree(T)
}

type Empty[T any] struct{}

type Leaf[T any] struct {
	Value T
}

// Node joins two subtrees. Neither may be nil; build nodes with NewNode.
type Node[T any] struct {
	Left  Tree[T]
	Right Tree[T]
}

func (Empty[T]) Variant() string { return "Empty" }
func (Leaf[T]) Variant() string  { return "Leaf" }
func (Node[T]) Variant() string  { return "Node" }

func (Empty[T]) isTree(T) {}
func (Leaf[T]) isTree(T)  {}
func (Node[T]) isTree(T)  {}

// NewNode joins left and right. A nil subtree is rejected.
func NewNode[T any](left, right Tree[T]) (Node[T], error) {
	if left == nil {
		return Node[T]{}, adtfn.Invalidf(Sum, "Node", "left", "nil subtree")
	}
	if right == nil {
		return Node[T]{}, adtfn.Invalidf(Sum, "Node", "right", "nil subtree")
	}
	return Node[T]{Left: left, Right: right}, nil
}

// FromSlice builds a balanced tree holding values as its leaves, in order.
func FromSlice[T any](values []T) Tree[T] {
	switch len(values) {
	case 0:
		return Empty[T]{}
	case 1:
		return Leaf[T]{Value: values[0]}
	}
	mid := len(values) / 2
	return Node[T]{Left: FromSlice(values[:mid]), Right: FromSlice(values[mid:])}
}

// Fold collapses t bottom-up: empty replaces every Empty, leaf every Leaf
// and node combines the folded subtrees of every Node.
//
// All three handlers are required, even when t happens not to contain a
// variant. A nil handler, a nil tree or a nil subtree fails with an
// *adtfn.UnmatchedVariantError.
func Fold[T, R any](t Tree[T], empty func() R, leaf func(T) R, node func(R, R) R) (R, error) {
	var zero R
	for i, missing := range []bool{empty == nil, leaf == nil, node == nil} {
		if missing {
			return zero, &adtfn.UnmatchedVariantError{Sum: Sum.Name(), Variant: Sum.Variants()[i]}
		}
	}
	return fold(t, empty, leaf, node)
}

func fold[T, R any](t Tree[T], empty func() R, leaf func(T) R, node func(R, R) R) (R, error) {
	switch v := t.(type) {
	case Empty[T]:
		return empty(), nil
	case *Empty[T]:
		if v != nil {
			return empty(), nil
		}
	case Leaf[T]:
		return leaf(v.Value), nil
	case *Leaf[T]:
		if v != nil {
			return leaf(v.Value), nil
		}
	case Node[T]:
		return foldNode(v, empty, leaf, node)
	case *Node[T]:
		if v != nil {
			return foldNode(*v, empty, leaf, node)
		}
	}
	var zero R
	return zero, adtfn.Unmatched(Sum, t)
}

func foldNode[T, R any](n Node[T], empty func() R, leaf func(T) R, node func(R, R) R) (R, error) {
	l, err := fold(n.Left, empty, leaf, node)
	if err != nil {
		return l, err
	}
	r, err := fold(n.Right, empty, leaf, node)
	if err != nil {
		return r, err
	}
	return node(l, r), nil
}

// Size counts the leaves of t.
func Size[T any](t Tree[T]) (int, error) {
	return Fold(t,
		func() int { return 0 },
		func(T) int { return 1 },
		func(l, r int) int { return l + r },
	)
}

// Depth is 0 for Empty, 1 for a Leaf and one more than the deeper subtree
// for a Node.
func Depth[T any](t Tree[T]) (int, error) {
	return Fold(t,
		func() int { return 0 },
		func(T) int { return 1 },
		func(l, r int) int { return 1 + max(l, r) },
	)
}

// Leaves returns the leaf values from left to right.
func Leaves[T any](t Tree[T]) ([]T, error) {
	return Fold(t,
		func() []T { return nil },
		func(v T) []T { return []T{v} },
		func(l, r []T) []T { return append(l, r...) },
	)
}

// Map applies fn to every leaf, keeping the shape of t.
func Map[T, U any](t Tree[T], fn func(T) U) (Tree[U], error) {
	return Fold(t,
		func() Tree[U] { return Empty[U]{} },
		func(v T) Tree[U] { return Leaf[U]{Value: fn(v)} },
		func(l, r Tree[U]) Tree[U] { return Node[U]{Left: l, Right: r} },
	)
}

// Format renders t as nested constructor calls, e.g. "Node(Empty, Leaf(11))".
func Format[T any](t Tree[T]) (string, error) {
	return Fold(t,
		func() string { return "Empty" },
		func(v T) string { return fmt.Sprintf("Leaf(%v)", v) },
		func(l, r string) string { return "Node(" + l + ", " + r + ")" },
	)
}
