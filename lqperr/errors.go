// Package lqperr defines the error kinds raised by contract violations
// across the expression and LQP packages. Construction-time violations
// panic with them (via internal/assert in lqp, directly in expr): a
// violated invariant is a programming error in the caller, not a
// recoverable condition. UnknownColumn is the exception: lqp's
// ValidateColumnReferences returns it as an error.
package lqperr

import "fmt"

// InvariantViolation signals a broken structural contract: a cross join
// built with predicates, a non-cross join built without any, or an
// aggregate built with neither group-by nor aggregate expressions. The
// derived-property methods (ColumnExpressions, IsColumnNullable,
// Constraints) do not check that required inputs are set and do not raise
// it; a missing input surfaces as a nil dereference.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Msg)
}

// IncompatibleTypes signals that an expression combined operands whose data
// types are not mutually compatible per types.Compatible, or that a Like
// predicate was built over a non-string operand.
type IncompatibleTypes struct {
	Msg string
}

func (e *IncompatibleTypes) Error() string {
	return fmt.Sprintf("incompatible types: %s", e.Msg)
}

// UnknownColumn signals that an LQPColumn references a node unreachable
// from the root a traversal started at.
type UnknownColumn struct {
	Msg string
}

func (e *UnknownColumn) Error() string {
	return fmt.Sprintf("unknown column: %s", e.Msg)
}
