package lqp

import (
	"fmt"

	"github.com/wjcskqygj2015/hyrise/expr"
	"github.com/wjcskqygj2015/hyrise/internal/hashutil"
	"github.com/wjcskqygj2015/hyrise/internal/trace"
)

// Limit caps its input's row count to at most RowCount rows, applying no
// ordering guarantee of its own — a Sort must precede it if a stable
// "first N" result is wanted.
type Limit struct {
	baseNode
	RowCount expr.Expression
}

// NewLimit builds a Limit node bounding input to rowCount rows.
func NewLimit(input Node, rowCount expr.Expression) *Limit {
	l := &Limit{RowCount: rowCount}
	l.SetLeftInput(input)
	l.bindSelf(l)
	trace.Printf(trace.Construction, "NewLimit: %s\n", rowCount.Description(expr.Detailed))
	return l
}

func (l *Limit) Kind() NodeKind { return KindLimit }

func (l *Limit) NodeExpressions() []expr.Expression { return []expr.Expression{l.RowCount} }

func (l *Limit) ColumnExpressions() []expr.Expression { return l.left.ColumnExpressions() }

func (l *Limit) IsColumnNullable(index int) bool { return l.left.IsColumnNullable(index) }

// Constraints forwards the input's constraints unchanged: taking any subset
// of rows can never introduce a duplicate where none existed.
func (l *Limit) Constraints() ConstraintSet { return l.left.Constraints() }

func (l *Limit) Description(mode expr.DescriptionMode) string {
	return fmt.Sprintf("[Limit] %s", l.RowCount.Description(mode))
}

func (l *Limit) ShallowCopy(mapping expr.NodeMapping) Node {
	cp := &Limit{RowCount: l.RowCount.DeepCopy(mapping)}
	cp.bindSelf(cp)
	return cp
}

func (l *Limit) ShallowEquals(other Node, mapping expr.NodeMapping) bool {
	o, ok := other.(*Limit)
	return ok && l.RowCount.Equal(o.RowCount, mapping)
}

func (l *Limit) ShallowHash() uint64 {
	return hashutil.CombineAll(uint64(KindLimit), l.RowCount.Hash())
}
