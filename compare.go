package linkedlist

import (
	"cmp"
	"time"

	"github.com/emirpasic/gods/utils"
)

// Compare orders l and other element by element. The first differing pair
// decides; if one list is a prefix of the other, the shorter one is less.
// A nil list compares like an empty one.
func (l *List[T]) Compare(other *List[T]) int {
	var x, xHead = l.ring()
	var y, yHead = other.ring()
	var fn func(a, b T) int

	for x != xHead && y != yHead {
		if fn == nil {
			fn = l.comparator(other)
		}
		if c := fn(x.value, y.value); c != 0 {
			return sign(c)
		}
		x, y = x.next, y.next
	}

	switch {
	case x == xHead && y == yHead:
		return 0
	case x == xHead:
		return -1
	}
	return 1
}

// Equal compares values, not identity.
func (l *List[T]) Equal(other *List[T]) bool {
	return l.Compare(other) == 0
}

func (l *List[T]) NotEqual(other *List[T]) bool {
	return l.Compare(other) != 0
}

func (l *List[T]) Less(other *List[T]) bool {
	return l.Compare(other) < 0
}

func (l *List[T]) LessEqual(other *List[T]) bool {
	return l.Compare(other) <= 0
}

func (l *List[T]) Greater(other *List[T]) bool {
	return l.Compare(other) > 0
}

func (l *List[T]) GreaterEqual(other *List[T]) bool {
	return l.Compare(other) >= 0
}

// ring returns the first node and the head of l, both nil for a nil list.
func (l *List[T]) ring() (first, head *Node[T]) {
	if l == nil {
		return nil, nil
	}
	l.lazyInit()
	return l.head.next, &l.head
}

func (l *List[T]) comparator(other *List[T]) func(a, b T) int {
	if l != nil && l.compare != nil {
		return l.compare
	}
	return other.mustCompare()
}

func (l *List[T]) mustCompare() func(a, b T) int {
	if l != nil && l.compare == nil {
		l.compare = defaultCompare[T]()
	}
	if l == nil || l.compare == nil {
		panic("linkedlist: list has no comparator, create it with New, NewFunc or NewWithComparator")
	}
	return l.compare
}

// defaultCompare returns the ordering New would pick for T, or nil when T is
// not one of the predeclared ordered types or time.Time.
func defaultCompare[T any]() func(a, b T) int {
	var fn any
	switch any(*new(T)).(type) {
	case int:
		fn = cmp.Compare[int]
	case int8:
		fn = cmp.Compare[int8]
	case int16:
		fn = cmp.Compare[int16]
	case int32:
		fn = cmp.Compare[int32]
	case int64:
		fn = cmp.Compare[int64]
	case uint:
		fn = cmp.Compare[uint]
	case uint8:
		fn = cmp.Compare[uint8]
	case uint16:
		fn = cmp.Compare[uint16]
	case uint32:
		fn = cmp.Compare[uint32]
	case uint64:
		fn = cmp.Compare[uint64]
	case uintptr:
		fn = cmp.Compare[uintptr]
	case float32:
		fn = cmp.Compare[float32]
	case float64:
		fn = cmp.Compare[float64]
	case string:
		fn = cmp.Compare[string]
	case time.Time:
		return func(a, b T) int {
			return utils.TimeComparator(a, b)
		}
	default:
		return nil
	}
	return fn.(func(a, b T) int)
}
