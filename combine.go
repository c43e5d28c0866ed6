package linkedlist

// Concat returns a new list holding copies of the values of l followed by
// those of other. Neither operand is modified.
func (l *List[T]) Concat(other *List[T]) (*List[T], error) {
	if other == nil {
		return nil, typeMismatch("can only concatenate *List, got nil")
	}
	var out = l.empty()
	if out.compare == nil {
		out.compare = other.compare
	}
	var tail = out.copyFrom(&out.head, l)
	out.copyFrom(tail, other)
	return out, nil
}

// Repeat returns a new list holding the values of l repeated n times. A
// non-positive n yields an empty list.
func (l *List[T]) Repeat(n int) *List[T] {
	var out = l.empty()
	var tail = &out.head
	for i := 0; i < n; i++ {
		tail = out.copyFrom(tail, l)
	}
	return out
}

// Clone returns a copy of l that shares no nodes with it.
func (l *List[T]) Clone() *List[T] {
	return l.Repeat(1)
}

// empty returns a new list sharing the comparator of l.
func (l *List[T]) empty() *List[T] {
	var out = &List[T]{}
	if l != nil {
		out.compare = l.compare
	}
	return out.Init()
}

// copyFrom links copies of the values of src after tail and returns the new
// tail. The copies close the ring on l's head.
func (l *List[T]) copyFrom(tail *Node[T], src *List[T]) *Node[T] {
	var n, head = src.ring()
	var count = src.Len()
	for i := 0; i < count && n != head; i++ {
		tail = l.insert(newNode(n.value), tail)
		n = n.next
	}
	return tail
}
