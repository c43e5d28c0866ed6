package linkedlist

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Node is a single element of a List. A node that is not linked into a list
// points to itself.
type Node[T any] struct {
	next  *Node[T]
	value T
}

// NewNode returns an unlinked node holding the zero value of T.
func NewNode[T any]() *Node[T] {
	var n = &Node[T]{}
	n.next = n
	return n
}

func newNode[T any](value T) *Node[T] {
	var n = &Node[T]{value: value}
	n.next = n
	return n
}

func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) SetValue(value T) {
	n.value = value
}

// Next returns the node that follows n. For the last node of a list this is
// the list's head.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// SetNext links n to next. A nil next is rejected so that every link stays
// a valid node.
func (n *Node[T]) SetNext(next *Node[T]) error {
	if next == nil {
		return typeMismatch("next must be a *Node, got nil")
	}
	n.next = next
	return nil
}

func (n *Node[T]) detach() *Node[T] {
	n.next = n
	return n
}

func (n *Node[T]) String() string {
	return utils.ToString(n.value)
}

// CompareNodes orders two nodes by their values only. A nil node orders
// before any other node.
func CompareNodes[T constraints.Ordered](a, b *Node[T]) int {
	return CompareNodesFunc(a, b, cmp.Compare[T])
}

// CompareNodesFunc is like CompareNodes but orders values with fn.
func CompareNodesFunc[T any](a, b *Node[T], fn func(a, b T) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return sign(fn(a.value, b.value))
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}
