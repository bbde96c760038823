package value

import (
	"math"
	"strconv"
)

// Value is a runtime object: Number, String, Boolean or Nil.
// All variants are comparable, so == is structural equality.
type Value interface {
	isValue()
	String() string
}

type Number float64

type String string

type Boolean bool

type Nil struct{}

const (
	True  = Boolean(true)
	False = Boolean(false)
)

func (Number) isValue()  {}
func (String) isValue()  {}
func (Boolean) isValue() {}
func (Nil) isValue()     {}

func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (s String) String() string {
	return string(s)
}

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (Nil) String() string {
	return "nil"
}

// Truthy reports whether v counts as true in a condition. Only nil and false
// are falsy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil, Nil:
		return false
	case Boolean:
		return bool(v)
	default:
		return true
	}
}

// Equal compares two values structurally. Values of different kinds are
// never equal.
func Equal(lhs, rhs Value) bool {
	if lhs == nil {
		lhs = Nil{}
	}
	if rhs == nil {
		rhs = Nil{}
	}
	return lhs == rhs
}

func Of(b bool) Boolean {
	return Boolean(b)
}

// TypeName is used in runtime error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	default:
		return "nil"
	}
}
