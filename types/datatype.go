// Package types holds the closed enumerations shared by every layer of the
// query plan: the scalar data types expressions can produce and the physical
// encoding tags columns carry. Both are opaque labels at this layer; nothing
// here knows how to store or execute a value, only how to name its shape.
package types

import "fmt"

// DataType is the closed set of scalar types an expression can produce.
type DataType int

const (
	Null DataType = iota
	Int
	Long
	Float
	Double
	String
)

func (d DataType) String() string {
	switch d {
	case Null:
		return "null"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	case String:
		return "string"
	default:
		return fmt.Sprintf("datatype(%d)", int(d))
	}
}

// IsNumeric reports whether d supports arithmetic and ordered comparison
// against the other numeric types.
func (d DataType) IsNumeric() bool {
	switch d {
	case Int, Long, Float, Double:
		return true
	default:
		return false
	}
}

// Compatible reports whether values of a and b may appear as the two
// operands of a binary predicate. Null is compatible with everything (it
// represents an absent value of any type); numeric types are mutually
// compatible; String is only compatible with itself and Null.
func Compatible(a, b DataType) bool {
	if a == Null || b == Null {
		return true
	}
	if a == b {
		return true
	}
	return a.IsNumeric() && b.IsNumeric()
}
