package linkedlist

import (
	"iter"
	"strings"

	"github.com/emirpasic/gods/utils"
)

// Nodes returns an iterator over the nodes of l, head excluded. Every call
// starts a new walk. Modifying l during iteration is undefined.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		var n, head = l.ring()
		for ; n != head; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// All returns an iterator over positions and values of l.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var i = 0
		for n := range l.Nodes() {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Slice returns the values of l in order.
func (l *List[T]) Slice() []T {
	var values = make([]T, 0, l.Len())
	for _, v := range l.All() {
		values = append(values, v)
	}
	return values
}

// String renders l as "[v0, v1, ...]".
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l.All() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(utils.ToString(v))
	}
	b.WriteByte(']')
	return b.String()
}
