package types

import "fmt"

// FormatLiteral renders a Go value consistent with its declared DataType,
// the way a literal appears in an expression description. Strings are
// quoted, everything else uses its natural representation.
func FormatLiteral(dt DataType, v any) string {
	if v == nil {
		return "NULL"
	}
	switch dt {
	case String:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
