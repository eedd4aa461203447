// Package lqp implements the Logical Query Plan: a shared DAG of relational
// algebra nodes. Every node kind derives its output column expressions,
// column nullability, and unique constraints from its inputs on demand —
// nothing here is cached: a node's ColumnExpressions is recomputed from live
// inputs on every call, trading a small amount of recomputation for freedom
// from change-propagation bookkeeping.
package lqp

import (
	"github.com/wjcskqygj2015/hyrise/expr"
	"github.com/wjcskqygj2015/hyrise/types"
)

// NodeKind is the closed tag identifying which node variant a Node is.
type NodeKind int

const (
	KindStoredTable NodeKind = iota
	KindPredicate
	KindProjection
	KindJoin
	KindAggregate
	KindSort
	KindLimit
	KindUnion
	KindValidate
)

func (k NodeKind) String() string {
	switch k {
	case KindStoredTable:
		return "StoredTable"
	case KindPredicate:
		return "Predicate"
	case KindProjection:
		return "Projection"
	case KindJoin:
		return "Join"
	case KindAggregate:
		return "Aggregate"
	case KindSort:
		return "Sort"
	case KindLimit:
		return "Limit"
	case KindUnion:
		return "Union"
	case KindValidate:
		return "Validate"
	default:
		return "Unknown"
	}
}

// Node is the contract every vertex of the DAG satisfies. It embeds
// expr.NodeRef so that an LQPColumn can name any Node as its owner.
type Node interface {
	expr.NodeRef

	Kind() NodeKind
	Inputs() (left, right Node)
	SetLeftInput(n Node)
	SetRightInput(n Node)

	// NodeExpressions are the expressions specific to this node kind:
	// predicates for Predicate/Join, the projection list for Projection,
	// group-by plus aggregate expressions for Aggregate, the sort-key
	// expressions for Sort, the row-count expression for Limit. Empty for
	// kinds that carry none (StoredTable, Union, Validate).
	NodeExpressions() []expr.Expression

	// ColumnExpressions returns the node's output columns, recomputed from
	// live inputs every call.
	ColumnExpressions() []expr.Expression
	// IsColumnNullable reports whether output column index may be NULL.
	IsColumnNullable(index int) bool
	// Constraints returns the unique constraints that hold on this node's
	// output, recomputed from live inputs every call.
	Constraints() ConstraintSet

	// Description renders this node's kind, kind-specific attributes, and
	// node expressions.
	Description(mode expr.DescriptionMode) string

	// ShallowCopy produces a new node of the same kind with expressions
	// rewritten via mapping; inputs are left unset for the caller to wire.
	ShallowCopy(mapping expr.NodeMapping) Node
	// ShallowEquals reports kind identity, node-expression equality up to
	// mapping, and kind-specific attribute equality. Inputs are not
	// compared.
	ShallowEquals(other Node, mapping expr.NodeMapping) bool
	// ShallowHash incorporates kind and kind-specific scalars, not inputs.
	ShallowHash() uint64
}

// baseNode is embedded by every concrete node type. It implements the
// input-wiring and expr.NodeRef portions of Node generically; derived
// behaviour (ColumnExpressions, IsColumnNullable, ...) is dispatched through
// self, which each constructor sets to point back at the owning concrete
// node once it is fully allocated.
type baseNode struct {
	left, right Node
	self        Node
}

func (b *baseNode) bindSelf(self Node) { b.self = self }

func (b *baseNode) Inputs() (left, right Node) { return b.left, b.right }

func (b *baseNode) SetLeftInput(n Node) { b.left = n }

func (b *baseNode) SetRightInput(n Node) { b.right = n }

func (b *baseNode) IsLQPNode() bool { return true }

// OutputColumnType and OutputColumnNullable satisfy expr.NodeRef by
// dispatching through self rather than through baseNode's own (nonexistent)
// ColumnExpressions — this is the virtual-call link that lets an
// expr.LQPColumn owned by a concrete node resolve its type and nullability
// without the expr package importing lqp. StoredTable overrides
// OutputColumnType, since its column expressions are owned by itself.
func (b *baseNode) OutputColumnType(i int) types.DataType {
	return b.self.ColumnExpressions()[i].DataType()
}

func (b *baseNode) OutputColumnNullable(i int) bool {
	return b.self.IsColumnNullable(i)
}
