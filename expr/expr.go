// Package expr implements the scalar expression tree shared by every LQP
// node: literal values, column references, predicates, and logical
// combinators. It is deliberately a leaf package — it knows nothing about
// the lqp package's node types, only about the narrow NodeRef identity
// contract a node must satisfy to be named by an LQPColumn.
package expr

import "github.com/wjcskqygj2015/hyrise/types"

// NodeRef is the identity contract an LQP node must satisfy to be
// referenced by an LQPColumn. It lets this package name "a specific column
// of a specific node" without importing the lqp package, which depends on
// expr for its node_expressions. Any concrete node type backing a NodeRef
// is expected to be a pointer, so two NodeRef values compare equal (as Go
// interface values) exactly when they name the same node.
type NodeRef interface {
	// IsLQPNode is a marker distinguishing genuine node references from
	// arbitrary comparable types; it carries no information.
	IsLQPNode() bool
	// OutputColumnType returns the data type of the node's output column at
	// index i.
	OutputColumnType(i int) types.DataType
	// OutputColumnNullable returns whether the node's output column at
	// index i may be NULL.
	OutputColumnNullable(i int) bool
}

// NodeMapping rewrites node identities during a structural copy: it maps a
// node's old identity to its new one. A node absent from the mapping is
// left unchanged — only nodes that were actually copied are remapped, so
// that structure outside a copied subtree keeps pointing at the original
// shared nodes.
type NodeMapping map[NodeRef]NodeRef

// Resolve rewrites ref through m, returning ref unchanged if m has no entry
// for it.
func (m NodeMapping) Resolve(ref NodeRef) NodeRef {
	if mapped, ok := m[ref]; ok {
		return mapped
	}
	return ref
}

// DescriptionMode selects how much detail Description renders.
type DescriptionMode int

const (
	Short DescriptionMode = iota
	Detailed
)

// PredicateCondition is the closed set of binary comparison operators a
// BinaryPredicate may carry.
type PredicateCondition int

const (
	Equals PredicateCondition = iota
	NotEquals
	LessThan
	LessThanEquals
	GreaterThan
	GreaterThanEquals
	Like
	NotLike
	In
	NotIn
)

func (c PredicateCondition) String() string {
	switch c {
	case Equals:
		return "="
	case NotEquals:
		return "!="
	case LessThan:
		return "<"
	case LessThanEquals:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanEquals:
		return ">="
	case Like:
		return "LIKE"
	case NotLike:
		return "NOT LIKE"
	case In:
		return "IN"
	case NotIn:
		return "NOT IN"
	default:
		return "?"
	}
}

// Expression is the common contract every node of the scalar expression
// tree satisfies.
type Expression interface {
	// DataType returns the scalar type this expression produces.
	DataType() types.DataType
	// IsNullable reports whether this expression may yield NULL, given the
	// nullability of whatever columns it references.
	IsNullable() bool
	// Description renders a human-readable form of the expression.
	Description(mode DescriptionMode) string
	// Hash returns a hash stable across DeepCopy under the identity
	// mapping, and equal whenever Equal(other, identity mapping) is true.
	Hash() uint64
	// Equal reports structural equality with other, with LQPColumn owners
	// compared after rewriting through mapping.
	Equal(other Expression, mapping NodeMapping) bool
	// DeepCopy clones the expression, rewriting every LQPColumn's owner
	// through mapping.
	DeepCopy(mapping NodeMapping) Expression
}

// Children returns the direct operand expressions of e, in a fixed order
// per expression kind, or nil for leaves (Value, LQPColumn). It is used by
// generic traversal helpers (e.g. ColumnRefs) that must work over
// any Expression without a type switch at each call site.
func Children(e Expression) []Expression {
	switch v := e.(type) {
	case *BinaryPredicate:
		return []Expression{v.Left, v.Right}
	case *Logical:
		return []Expression{v.Left, v.Right}
	case *Between:
		return []Expression{v.Value, v.Lower, v.Upper}
	case *AggregateExpression:
		if v.Argument == nil {
			return nil
		}
		return []Expression{v.Argument}
	case ArithmeticExpression:
		return v.Operands()
	default:
		return nil
	}
}

// ColumnRefs returns every LQPColumn reachable within e, including e
// itself if it is one.
func ColumnRefs(e Expression) []*LQPColumn {
	var out []*LQPColumn
	var walk func(Expression)
	walk = func(x Expression) {
		if col, ok := x.(*LQPColumn); ok {
			out = append(out, col)
			return
		}
		for _, c := range Children(x) {
			walk(c)
		}
	}
	walk(e)
	return out
}
