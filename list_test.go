package linkedlist

import (
	"errors"
	"slices"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

// hops counts the links from the first node back to the head.
func hops[T any](l *List[T]) int {
	var n = 0
	for node := l.head.next; node != &l.head; node = node.next {
		n++
		if n > l.length+1 {
			break
		}
	}
	return n
}

// seven8 builds the two element list [7, 8] by hand.
func seven8() *List[int] {
	var l = New[int]()
	var a, b = newNode(7), newNode(8)
	l.head.next = a
	a.next = b
	b.next = &l.head
	l.length = 2
	return l
}

func TestList(t *testing.T) {
	t.Run("Init", func(t *testing.T) {
		var l = New[int]()
		check.Equal(t, 0, l.Len())
		check.True(t, l.Head().Next() == l.Head())
		check.Equal(t, 0, l.Head().Value())
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var l List[string]
		l.Append("a")
		l.Prepend("b")
		check.Equal(t, 2, l.Len())
		check.Equal(t, "[b, a]", l.String())
		check.Equal(t, 2, hops(&l))
	})

	t.Run("NthNode", func(t *testing.T) {
		t.Run("Head", func(t *testing.T) {
			var l = seven8()
			var n, err = l.nthNode(-1)
			assert.NotError(t, err)
			check.True(t, n == &l.head)
		})
		t.Run("First", func(t *testing.T) {
			var l = seven8()
			var n, err = l.nthNode(0)
			assert.NotError(t, err)
			check.True(t, n == l.head.next)
		})
		t.Run("Second", func(t *testing.T) {
			var l = seven8()
			var n, err = l.nthNode(1)
			assert.NotError(t, err)
			check.True(t, n == l.head.next.next)
		})
		t.Run("Over", func(t *testing.T) {
			var l = seven8()
			for _, i := range []int{2, 3} {
				var _, err = l.nthNode(i)
				assert.ErrorIs(t, err, ErrOutOfRange)
			}
		})
		t.Run("Under", func(t *testing.T) {
			var l = seven8()
			var _, err = l.nthNode(-3)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
		t.Run("StopsOnBrokenRing", func(t *testing.T) {
			var l = seven8()
			l.length = 5
			var n, err = l.nthNode(4)
			assert.NotError(t, err)
			check.Equal(t, 8, n.Value())
		})
	})

	t.Run("InsertAfter", func(t *testing.T) {
		t.Run("Head", func(t *testing.T) {
			var l = seven8()
			var _, err = l.insertAfter(5, -1)
			assert.NotError(t, err)
			check.Equal(t, 5, l.head.next.value)
			check.Equal(t, 3, l.Len())
		})
		t.Run("Middle", func(t *testing.T) {
			var l = seven8()
			var _, err = l.insertAfter(5, 0)
			assert.NotError(t, err)
			check.Equal(t, 5, l.head.next.next.value)
			check.Equal(t, 3, l.Len())
		})
		t.Run("End", func(t *testing.T) {
			var l = seven8()
			var _, err = l.insertAfter(5, 1)
			assert.NotError(t, err)
			check.Equal(t, 5, l.head.next.next.next.value)
			check.True(t, l.head.next.next.next.next == &l.head)
			check.Equal(t, 3, l.Len())
		})
		t.Run("OutOfRange", func(t *testing.T) {
			var l = seven8()
			var _, err = l.insertAfter(5, 2)
			assert.ErrorIs(t, err, ErrOutOfRange)
			check.Equal(t, 2, l.Len())
			check.Equal(t, "[7, 8]", l.String())
		})
	})

	t.Run("PopAfter", func(t *testing.T) {
		t.Run("Head", func(t *testing.T) {
			var l = seven8()
			var first, second = l.head.next, l.head.next.next
			var n, err = l.popAfter(-1)
			assert.NotError(t, err)
			check.True(t, n == first)
			check.True(t, l.head.next == second)
			check.True(t, n.next == n)
			check.Equal(t, 1, l.Len())
		})
		t.Run("Last", func(t *testing.T) {
			var l = seven8()
			var second = l.head.next.next
			var n, err = l.popAfter(0)
			assert.NotError(t, err)
			check.True(t, n == second)
			check.True(t, l.head.next.next == &l.head)
			check.Equal(t, 1, l.Len())
		})
		t.Run("NoSuccessor", func(t *testing.T) {
			var l = seven8()
			var _, err = l.popAfter(1)
			assert.ErrorIs(t, err, ErrOutOfRange)
			check.Equal(t, 2, l.Len())
		})
	})

	t.Run("Append", func(t *testing.T) {
		t.Run("Empty", func(t *testing.T) {
			var l = New[int]()
			l.Append(8)
			check.Equal(t, 8, l.head.next.value)
			check.Equal(t, 1, l.Len())
			check.True(t, l.head.next.next == &l.head)
		})
		t.Run("Again", func(t *testing.T) {
			var l = New[string]()
			l.Append("a")
			l.Append("b")
			check.Equal(t, "b", l.head.next.next.value)
			check.Equal(t, 2, l.Len())
			check.True(t, l.head.next.next.next == &l.head)
		})
		t.Run("Positions", func(t *testing.T) {
			var l = New[int]()
			for i := 0; i < 10; i++ {
				l.Append(i * i)
			}
			for i := 0; i < 10; i++ {
				var n, err = l.Get(i)
				assert.NotError(t, err)
				check.Equal(t, i*i, n.Value())
			}
			check.Equal(t, l.Len(), hops(l))
		})
	})

	t.Run("Prepend", func(t *testing.T) {
		var l = Of(1, 2)
		var first = l.head.next
		l.Prepend(0)
		var n, err = l.Get(0)
		assert.NotError(t, err)
		check.Equal(t, 0, n.Value())
		check.True(t, l.head.next.next == first)
		check.Equal(t, 3, l.Len())
		check.Equal(t, 3, hops(l))
	})

	t.Run("Pop", func(t *testing.T) {
		t.Run("Empty", func(t *testing.T) {
			var l = New[int]()
			var _, err = l.Pop()
			assert.ErrorIs(t, err, ErrEmptyList)
			check.True(t, errors.Is(err, ErrOutOfRange))
		})
		t.Run("Normal", func(t *testing.T) {
			var l = seven8()
			var last = l.head.next.next
			var n, err = l.Pop()
			assert.NotError(t, err)
			check.True(t, n == last)
			check.Equal(t, 1, l.Len())
			check.True(t, l.head.next.next == &l.head)
		})
		t.Run("Single", func(t *testing.T) {
			var l = Of("x")
			var n, err = l.Pop()
			assert.NotError(t, err)
			check.Equal(t, "x", n.Value())
			check.Equal(t, 0, l.Len())
			check.True(t, l.head.next == &l.head)
		})
	})

	t.Run("Insert", func(t *testing.T) {
		t.Run("Empty", func(t *testing.T) {
			var l = New[string]()
			var _, err = l.Insert(0, "a")
			assert.NotError(t, err)
			check.Equal(t, "a", l.head.next.value)
			check.Equal(t, 1, l.Len())
			check.True(t, l.head.next.next == &l.head)
		})
		t.Run("Middle", func(t *testing.T) {
			var l = seven8()
			var first, second = l.head.next, l.head.next.next
			var _, err = l.Insert(1, 5)
			assert.NotError(t, err)
			check.True(t, l.head.next == first)
			check.Equal(t, 5, l.head.next.next.value)
			check.True(t, l.head.next.next.next == second)
			check.Equal(t, 3, l.Len())
		})
		t.Run("OutOfRange", func(t *testing.T) {
			var l = seven8()
			var _, err = l.Insert(8, 1)
			assert.ErrorIs(t, err, ErrOutOfRange)
			check.Equal(t, 2, l.Len())
		})
		t.Run("DeleteRoundTrip", func(t *testing.T) {
			for i := 0; i <= 4; i++ {
				var l = Of(1, 2, 3, 4)
				var before = l.Slice()
				var _, err = l.Insert(i, 99)
				assert.NotError(t, err)
				assert.NotError(t, l.Delete(i))
				check.True(t, slices.Equal(before, l.Slice()))
				check.Equal(t, 4, hops(l))
			}
		})
	})

	t.Run("Get", func(t *testing.T) {
		t.Run("Index", func(t *testing.T) {
			var l = seven8()
			var n, err = l.Get(1)
			assert.NotError(t, err)
			check.True(t, n == l.head.next.next)
		})
		t.Run("Negative", func(t *testing.T) {
			var l = seven8()
			var n, err = l.Get(-2)
			assert.NotError(t, err)
			check.True(t, n == l.head.next)
		})
		t.Run("OutOfRange", func(t *testing.T) {
			var l = seven8()
			for _, i := range []int{2, -3} {
				var _, err = l.Get(i)
				assert.ErrorIs(t, err, ErrOutOfRange)
			}
		})
	})

	t.Run("Scenario", func(t *testing.T) {
		var l = New[int]()
		l.Append(7)
		l.Append(8)
		check.Equal(t, 2, l.Len())
		check.Equal(t, "[7, 8]", l.String())
		check.Equal(t, l.String(), l.String())

		var last, err = l.Get(-1)
		assert.NotError(t, err)
		check.Equal(t, 8, last.Value())

		popped, err := l.Pop()
		assert.NotError(t, err)
		check.Equal(t, 8, popped.Value())
		check.Equal(t, 1, l.Len())
		check.Equal(t, "[7]", l.String())
	})
}
