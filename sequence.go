package linkedlist

import "fmt"

// Set replaces the node at index with a new node holding value.
func (l *List[T]) Set(index int, value T) error {
	l.lazyInit()
	var i, err = l.position(index)
	if err != nil {
		return err
	}
	var prev, _ = l.nthNode(i - 1)
	l.replace(prev, value)
	return nil
}

// Delete removes the node at index. A negative index counts from the end.
func (l *List[T]) Delete(index int) error {
	l.lazyInit()
	var i, err = l.position(index)
	if err != nil {
		return err
	}
	_, err = l.popAfter(i - 1)
	return err
}

// GetSlice returns a new list with copies of the values at every step-th
// position in [start, stop). Bounds are clamped like a slice expression;
// negative bounds count from the end.
func (l *List[T]) GetSlice(start, stop, step int) (*List[T], error) {
	l.lazyInit()
	var err error
	if start, stop, err = l.span(start, stop, step); err != nil {
		return nil, err
	}

	var out = l.empty()
	var tail = &out.head
	var prev, _ = l.nthNode(start - 1)
	for i := start; i < stop; i++ {
		prev = prev.next
		if (i-start)%step == 0 {
			tail = out.insert(newNode(prev.value), tail)
		}
	}
	return out, nil
}

// SetSlice assigns values to every step-th position in [start, stop). It
// fails with ErrSizeMismatch, leaving l untouched, unless len(values) equals
// the number of selected positions.
func (l *List[T]) SetSlice(start, stop, step int, values []T) error {
	l.lazyInit()
	var err error
	if start, stop, err = l.span(start, stop, step); err != nil {
		return err
	}
	if n := spanLen(start, stop, step); n != len(values) {
		return fmt.Errorf("%w: %d positions, %d values", ErrSizeMismatch, n, len(values))
	}

	var j = 0
	var prev, _ = l.nthNode(start - 1)
	for i := start; i < stop; i++ {
		if (i-start)%step == 0 {
			l.replace(prev, values[j])
			j++
		}
		prev = prev.next
	}
	return nil
}

// DeleteSlice removes every step-th node in [start, stop) in a single walk.
// Positions refer to the list as it was before the call.
func (l *List[T]) DeleteSlice(start, stop, step int) error {
	l.lazyInit()
	var err error
	if start, stop, err = l.span(start, stop, step); err != nil {
		return err
	}

	var prev, _ = l.nthNode(start - 1)
	for i := start; i < stop; i++ {
		if (i-start)%step == 0 {
			l.remove(prev)
		} else {
			prev = prev.next
		}
	}
	return nil
}

// Contains reports whether some node holds a value equal to value.
func (l *List[T]) Contains(value T) bool {
	return l.IndexOf(value) >= 0
}

// IndexOf returns the position of the first node equal to value, or -1.
func (l *List[T]) IndexOf(value T) int {
	for i, v := range l.All() {
		if l.mustCompare()(v, value) == 0 {
			return i
		}
	}
	return -1
}

// replace swaps the successor of prev for a new node holding value.
func (l *List[T]) replace(prev *Node[T], value T) *Node[T] {
	var old = prev.next
	var n = newNode(value)
	n.next = old.next
	prev.next = n
	old.detach()
	return n
}

func (l *List[T]) span(start, stop, step int) (int, int, error) {
	if step <= 0 {
		return 0, 0, fmt.Errorf("%w: slice step %d must be positive", ErrOutOfRange, step)
	}
	start = clamp(start, l.length)
	stop = clamp(stop, l.length)
	if stop < start {
		stop = start
	}
	return start, stop, nil
}

func clamp(index, length int) int {
	if index < 0 {
		index += length
		if index < 0 {
			return 0
		}
	}
	if index > length {
		return length
	}
	return index
}

func spanLen(start, stop, step int) int {
	if stop <= start {
		return 0
	}
	return 1 + (stop-start-1)/step
}
