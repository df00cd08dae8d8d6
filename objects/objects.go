/*
File    : salt/objects/objects.go
Package : objects

Package objects defines Salt's runtime value representation: the five
concrete types a variable cell, array element, or expression result can
hold (Integer, Double, String, Boolean, Array), the common Value interface
they implement, and the type-coercion rules the evaluator applies on every
declaration, assignment, and print. There is no Nil, Error, or Range type
here — Salt has no null value, errors are diagnostics.Error values returned
from eval rather than runtime objects, and loop bounds are plain int64s, not
first-class ranges.
*/
package objects

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies one of Salt's five runtime value kinds.
type Type string

const (
	IntegerType Type = "int"
	DoubleType  Type = "double"
	StringType  Type = "string"
	BooleanType Type = "bool"
	ArrayType   Type = "array"
)

// Value is implemented by every runtime value Salt can hold.
type Value interface {
	// Kind returns the value's runtime type.
	Kind() Type
	// String renders the value the way print and string-coercion do: integers
	// with no decimal point, doubles with at least one fractional digit,
	// booleans as TRUE/FALSE, strings verbatim.
	String() string
}

// Integer is a 64-bit signed integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Kind() Type { return IntegerType }

func (i *Integer) String() string { return strconv.FormatInt(i.Value, 10) }

// Double is a 64-bit floating-point value. It always prints with at least
// one fractional digit, even when the value is mathematically whole
// (12.0, not 12) — this is what distinguishes a double textually from an
// int carrying the same magnitude.
type Double struct {
	Value float64
}

func (d *Double) Kind() Type { return DoubleType }

func (d *Double) String() string {
	s := strconv.FormatFloat(d.Value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// String is a text value.
type String struct {
	Value string
}

func (s *String) Kind() Type { return StringType }

func (s *String) String() string { return s.Value }

// Boolean is a truth value. It prints in the reference implementation's
// Python-derived register, TRUE/FALSE, matching the language's own literal
// keywords rather than Go's lowercase true/false.
type Boolean struct {
	Value bool
}

func (b *Boolean) Kind() Type { return BooleanType }

func (b *Boolean) String() string {
	if b.Value {
		return "TRUE"
	}
	return "FALSE"
}

// Array is a fixed-size, homogeneous collection. ElemType never changes
// after the array is declared; every element stored in Elements is always
// of that one scalar kind.
type Array struct {
	ElemType Type
	Elements []Value
}

func (a *Array) Kind() Type { return ArrayType }

func (a *Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, el := range a.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(el.String())
	}
	b.WriteByte(']')
	return b.String()
}

// ZeroValue returns the default element a freshly declared array of the
// given scalar element type is filled with.
func ZeroValue(elemType Type) Value {
	switch elemType {
	case IntegerType:
		return &Integer{}
	case DoubleType:
		return &Double{}
	case StringType:
		return &String{}
	case BooleanType:
		return &Boolean{}
	default:
		panic(fmt.Sprintf("objects: no zero value for %s", elemType))
	}
}

// Truthy applies the language's truthiness rule: booleans as themselves;
// zero numerics are false, nonzero is true; empty string is false,
// nonempty is true; an array is truthy precisely when it is non-empty.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case *Boolean:
		return val.Value
	case *Integer:
		return val.Value != 0
	case *Double:
		return val.Value != 0
	case *String:
		return val.Value != ""
	case *Array:
		return len(val.Elements) > 0
	default:
		return false
	}
}

// AsFloat extracts a numeric value's float64 form. ok is false for
// non-numeric values.
func AsFloat(v Value) (float64, bool) {
	switch val := v.(type) {
	case *Integer:
		return float64(val.Value), true
	case *Double:
		return val.Value, true
	default:
		return 0, false
	}
}

// Coerce forces v into the given declared/assigned scalar type, following
// the language's declaration-and-assignment coercion rules:
//
//   - int: truncate-toward-zero from a double; parse an integer from a
//     string (error if it isn't one); true/false become 1/0.
//   - double: widen any numeric; parse a double from a string (error if it
//     isn't one).
//   - bool: apply the truthiness rule.
//   - string: the value's textual form.
//
// Coerce never produces an Array — array elements are coerced one at a time
// by the caller using the same rules. An Array argument is an error for an
// int or double target; a bool target applies truthiness to it and a string
// target takes its textual form.
func Coerce(target Type, v Value) (Value, error) {
	switch target {
	case IntegerType:
		switch val := v.(type) {
		case *Integer:
			return &Integer{Value: val.Value}, nil
		case *Double:
			return &Integer{Value: int64(val.Value)}, nil
		case *Boolean:
			if val.Value {
				return &Integer{Value: 1}, nil
			}
			return &Integer{Value: 0}, nil
		case *String:
			n, err := strconv.ParseInt(strings.TrimSpace(val.Value), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("cannot convert %q to int", val.Value)
			}
			return &Integer{Value: n}, nil
		}
	case DoubleType:
		switch val := v.(type) {
		case *Integer:
			return &Double{Value: float64(val.Value)}, nil
		case *Double:
			return &Double{Value: val.Value}, nil
		case *Boolean:
			if val.Value {
				return &Double{Value: 1}, nil
			}
			return &Double{Value: 0}, nil
		case *String:
			f, err := strconv.ParseFloat(strings.TrimSpace(val.Value), 64)
			if err != nil {
				return nil, fmt.Errorf("cannot convert %q to double", val.Value)
			}
			return &Double{Value: f}, nil
		}
	case BooleanType:
		return &Boolean{Value: Truthy(v)}, nil
	case StringType:
		return &String{Value: v.String()}, nil
	}
	return nil, fmt.Errorf("cannot coerce %s to %s", v.Kind(), target)
}
