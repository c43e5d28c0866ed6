// Package linkedlist implements a singly linked, circular list with a
// sentinel head node.
//
// The last node of a list always links back to the head, so walking Next from
// Head().Next() exactly Len() times returns to Head(). Every operation is
// expressed relative to the predecessor of the node it touches, found by an
// O(n) walk from the head.
//
// A List is not safe for concurrent use.
package linkedlist

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// List is a circular singly linked list. The zero value is an empty list
// ready to use. A list without a comparator, such as the zero value or one
// decoded into a nil field, orders predeclared ordered types and time.Time
// the way New does; for any other T, comparing or searching requires a list
// created by NewFunc or NewWithComparator.
type List[T any] struct {
	head    Node[T]
	length  int
	compare func(a, b T) int
}

// New returns an empty list of ordered values.
func New[T constraints.Ordered]() *List[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an empty list whose values are ordered by fn.
func NewFunc[T any](fn func(a, b T) int) *List[T] {
	var l = &List[T]{}
	l.compare = fn
	return l.Init()
}

// NewWithComparator returns an empty list ordered by a gods comparator.
func NewWithComparator[T any](c utils.Comparator) *List[T] {
	return NewFunc(func(a, b T) int {
		return c(a, b)
	})
}

// Of returns a list holding values in order.
func Of[T constraints.Ordered](values ...T) *List[T] {
	var l = New[T]()
	l.extend(values)
	return l
}

// OfFunc returns a list holding values in order, ordered by fn.
func OfFunc[T any](fn func(a, b T) int, values ...T) *List[T] {
	var l = NewFunc(fn)
	l.extend(values)
	return l
}

// Init empties l. Nodes previously linked into l are dropped.
func (l *List[T]) Init() *List[T] {
	var zero T
	l.head.value = zero
	l.head.next = &l.head
	l.length = 0
	return l
}

func (l *List[T]) lazyInit() {
	if l.head.next == nil {
		l.Init()
	}
}

// Head returns the sentinel node. It never holds user data.
func (l *List[T]) Head() *Node[T] {
	l.lazyInit()
	return &l.head
}

func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// nthNode walks index+1 links from the head. Index -1 is the head itself.
// The walk also stops if it gets back to the head early.
func (l *List[T]) nthNode(index int) (*Node[T], error) {
	l.lazyInit()
	if index < -1 || index >= l.length {
		return nil, outOfRange(index, l.length)
	}

	var node = &l.head
	for i := -1; i < index && node.next != &l.head; i++ {
		node = node.next
	}
	return node, nil
}

func (l *List[T]) insertAfter(value T, index int) (*Node[T], error) {
	var prev, err = l.nthNode(index)
	if err != nil {
		return nil, err
	}
	return l.insert(newNode(value), prev), nil
}

func (l *List[T]) popAfter(index int) (*Node[T], error) {
	var prev, err = l.nthNode(index)
	if err != nil {
		return nil, err
	}
	if prev.next == &l.head {
		return nil, outOfRange(index+1, l.length)
	}
	return l.remove(prev), nil
}

func (l *List[T]) insert(n, at *Node[T]) *Node[T] {
	n.next = at.next
	at.next = n
	l.length++
	return n
}

// remove unlinks the successor of prev and returns it detached.
func (l *List[T]) remove(prev *Node[T]) *Node[T] {
	var n = prev.next
	prev.next = n.next
	l.length--
	return n.detach()
}

func (l *List[T]) tail() *Node[T] {
	var n, _ = l.nthNode(l.length - 1)
	return n
}

func (l *List[T]) extend(values []T) {
	var tail = l.tail()
	for _, value := range values {
		tail = l.insert(newNode(value), tail)
	}
}

// Append adds value after the last node. It walks the whole list.
func (l *List[T]) Append(value T) *Node[T] {
	var n, _ = l.insertAfter(value, l.Len()-1)
	return n
}

// Prepend adds value right after the head.
func (l *List[T]) Prepend(value T) *Node[T] {
	var n, _ = l.insertAfter(value, -1)
	return n
}

// Pop removes and returns the last node.
func (l *List[T]) Pop() (*Node[T], error) {
	l.lazyInit()
	if l.length == 0 {
		return nil, ErrEmptyList
	}
	return l.popAfter(l.length - 2)
}

// Insert adds value so that it ends up at position index, between the nodes
// previously at index-1 and index. Valid positions are 0 through Len().
func (l *List[T]) Insert(index int, value T) (*Node[T], error) {
	return l.insertAfter(value, index-1)
}

// Get returns the node at index. A negative index counts from the end.
// Unlike a slice this costs O(n).
func (l *List[T]) Get(index int) (*Node[T], error) {
	l.lazyInit()
	var i, err = l.position(index)
	if err != nil {
		return nil, err
	}
	return l.nthNode(i)
}

// position resolves a possibly negative index to one in [0, length).
func (l *List[T]) position(index int) (int, error) {
	var i = index
	if i < 0 {
		i += l.length
	}
	if i < 0 || i >= l.length {
		return 0, outOfRange(index, l.length)
	}
	return i, nil
}
