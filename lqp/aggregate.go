package lqp

import (
	"strings"

	"github.com/wjcskqygj2015/hyrise/expr"
	"github.com/wjcskqygj2015/hyrise/internal/assert"
	"github.com/wjcskqygj2015/hyrise/internal/hashutil"
	"github.com/wjcskqygj2015/hyrise/internal/trace"
	"github.com/wjcskqygj2015/hyrise/lqperr"
)

// Aggregate groups its input by GroupBy and computes Aggregates per group.
// Output columns are GroupBy followed by Aggregates, in that order.
type Aggregate struct {
	baseNode
	GroupBy    []expr.Expression
	Aggregates []*expr.AggregateExpression
}

// NewAggregate builds an Aggregate node over input.
func NewAggregate(input Node, groupBy []expr.Expression, aggregates ...*expr.AggregateExpression) *Aggregate {
	assert.Require(len(groupBy) > 0 || len(aggregates) > 0,
		&lqperr.InvariantViolation{Msg: "aggregate requires at least one group-by or aggregate expression"})
	a := &Aggregate{GroupBy: groupBy, Aggregates: aggregates}
	a.SetLeftInput(input)
	a.bindSelf(a)
	trace.Printf(trace.Construction, "NewAggregate: %d group-by, %d aggregate expressions\n", len(groupBy), len(aggregates))
	return a
}

func (a *Aggregate) Kind() NodeKind { return KindAggregate }

func (a *Aggregate) NodeExpressions() []expr.Expression {
	out := make([]expr.Expression, 0, len(a.GroupBy)+len(a.Aggregates))
	out = append(out, a.GroupBy...)
	for _, agg := range a.Aggregates {
		out = append(out, agg)
	}
	return out
}

func (a *Aggregate) ColumnExpressions() []expr.Expression { return a.NodeExpressions() }

func (a *Aggregate) IsColumnNullable(index int) bool {
	if index < len(a.GroupBy) {
		return a.GroupBy[index].IsNullable()
	}
	return a.Aggregates[index-len(a.GroupBy)].IsNullable()
}

// Constraints reports the group-by columns as a unique constraint over the
// aggregate's own output: grouping collapses every distinct combination of
// group-by values to exactly one output row, so that combination is always
// a key of the result. With no group-by expressions the aggregate produces
// a single row and there is no column combination left to name.
func (a *Aggregate) Constraints() ConstraintSet {
	if len(a.GroupBy) == 0 {
		trace.Printf(trace.Constraint, "Aggregate.Constraints: no group-by, forwarding nothing\n")
		return EmptyConstraintSet
	}
	cols := make([]*expr.LQPColumn, len(a.GroupBy))
	for i := range a.GroupBy {
		cols[i] = expr.NewLQPColumn(a, i)
	}
	trace.Printf(trace.Constraint, "Aggregate.Constraints: %d group-by columns form a unique key\n", len(cols))
	return NewConstraintSet(NewUniqueConstraint(cols...))
}

func (a *Aggregate) Description(mode expr.DescriptionMode) string {
	parts := make([]string, 0, len(a.GroupBy)+len(a.Aggregates))
	for _, g := range a.GroupBy {
		parts = append(parts, g.Description(mode))
	}
	for _, agg := range a.Aggregates {
		parts = append(parts, agg.Description(mode))
	}
	return "[Aggregate] " + strings.Join(parts, ", ")
}

func (a *Aggregate) ShallowCopy(mapping expr.NodeMapping) Node {
	groupBy := make([]expr.Expression, len(a.GroupBy))
	for i, g := range a.GroupBy {
		groupBy[i] = g.DeepCopy(mapping)
	}
	aggregates := make([]*expr.AggregateExpression, len(a.Aggregates))
	for i, agg := range a.Aggregates {
		aggregates[i] = agg.DeepCopy(mapping).(*expr.AggregateExpression)
	}
	cp := &Aggregate{GroupBy: groupBy, Aggregates: aggregates}
	cp.bindSelf(cp)
	return cp
}

func (a *Aggregate) ShallowEquals(other Node, mapping expr.NodeMapping) bool {
	o, ok := other.(*Aggregate)
	if !ok || len(a.GroupBy) != len(o.GroupBy) || len(a.Aggregates) != len(o.Aggregates) {
		return false
	}
	for i := range a.GroupBy {
		if !a.GroupBy[i].Equal(o.GroupBy[i], mapping) {
			return false
		}
	}
	for i := range a.Aggregates {
		if !a.Aggregates[i].Equal(o.Aggregates[i], mapping) {
			return false
		}
	}
	return true
}

func (a *Aggregate) ShallowHash() uint64 {
	h := uint64(KindAggregate)
	for _, g := range a.GroupBy {
		h = hashutil.Combine(h, g.Hash())
	}
	for _, agg := range a.Aggregates {
		h = hashutil.Combine(h, agg.Hash())
	}
	return h
}
