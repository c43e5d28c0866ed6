// Package variant provides a tagged scalar value for lists that mix payload
// kinds.
//
// Values are totally ordered: first by kind, Nil < Bool < Number < String,
// then by payload. Integers and floats are both numbers and compare
// numerically. NaN sorts before every other number and equals itself.
package variant

import (
	"cmp"
	"fmt"
	"math"
	"strconv"

	"github.com/emirpasic/gods/utils"

	"github.com/smartwalle/linkedlist"
)

type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

type Value struct {
	kind    Kind
	isFloat bool
	b       bool
	i       int64
	f       float64
	s       string
}

func Nil() Value {
	return Value{}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func Int(i int64) Value {
	return Value{kind: KindNumber, i: i}
}

func Float(f float64) Value {
	return Value{kind: KindNumber, isFloat: true, f: f}
}

func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Of wraps a Go scalar. Unsigned integers above math.MaxInt64 become floats.
// Unsupported types fail with linkedlist.ErrTypeMismatch.
func Of(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Nil(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint:
		return ofUint(uint64(x)), nil
	case uint64:
		return ofUint(x), nil
	case uintptr:
		return ofUint(uint64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case string:
		return String(x), nil
	}
	return Value{}, fmt.Errorf("%w: unsupported variant payload %T", linkedlist.ErrTypeMismatch, v)
}

// ofUint keeps values above math.MaxInt64 as floats, which may round them.
func ofUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

// MustOf is like Of but panics on unsupported types.
func MustOf(v any) Value {
	var x, err = Of(v)
	if err != nil {
		panic(err)
	}
	return x
}

func (v Value) Kind() Kind {
	return v.kind
}

// Interface returns the payload as a plain Go value.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		if v.isFloat {
			return v.f
		}
		return v.i
	case KindString:
		return v.s
	}
	return nil
}

func (v Value) String() string {
	if v.kind == KindNil {
		return "nil"
	}
	return utils.ToString(v.Interface())
}

// Compare orders a and b by kind rank, then by payload.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case KindBool:
		switch {
		case a.b == b.b:
			return 0
		case !a.b:
			return -1
		}
		return 1
	case KindNumber:
		return compareNumbers(a, b)
	case KindString:
		return cmp.Compare(a.s, b.s)
	}
	return 0
}

func compareNumbers(a, b Value) int {
	if !a.isFloat && !b.isFloat {
		return cmp.Compare(a.i, b.i)
	}
	// cmp.Compare already places NaN first and treats NaNs as equal.
	var c = cmp.Compare(a.float(), b.float())
	if c == 0 && !math.IsNaN(a.float()) {
		// Integers beyond 2^53 may collapse to the same float.
		if !a.isFloat && b.isFloat {
			return compareIntFloat(a.i, b.f)
		}
		if a.isFloat && !b.isFloat {
			return -compareIntFloat(b.i, a.f)
		}
	}
	return c
}

func compareIntFloat(i int64, f float64) int {
	if f != math.Trunc(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return cmp.Compare(float64(i), f)
	}
	return cmp.Compare(i, int64(f))
}

func (v Value) float() float64 {
	if v.isFloat {
		return v.f
	}
	return float64(v.i)
}

// GodsComparator adapts Compare for gods containers. It panics on payloads Of
// rejects.
func GodsComparator(a, b interface{}) int {
	return Compare(MustOf(a), MustOf(b))
}

var _ utils.Comparator = GodsComparator

// NewList returns a list of variants ordered by Compare.
func NewList(values ...Value) *linkedlist.List[Value] {
	return linkedlist.OfFunc(Compare, values...)
}
