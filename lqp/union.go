package lqp

import (
	"github.com/wjcskqygj2015/hyrise/expr"
	"github.com/wjcskqygj2015/hyrise/internal/hashutil"
	"github.com/wjcskqygj2015/hyrise/internal/trace"
)

// UnionMode selects whether a Union keeps duplicate rows across its inputs.
type UnionMode int

const (
	UnionAll UnionMode = iota
	UnionDistinct
)

func (m UnionMode) String() string {
	if m == UnionAll {
		return "All"
	}
	return "Distinct"
}

// Union combines two inputs that share the same output schema.
type Union struct {
	baseNode
	Mode UnionMode
}

// NewUnion builds a Union over left and right under mode.
func NewUnion(left, right Node, mode UnionMode) *Union {
	u := &Union{Mode: mode}
	u.SetLeftInput(left)
	u.SetRightInput(right)
	u.bindSelf(u)
	trace.Printf(trace.Construction, "NewUnion: mode=%s\n", mode)
	return u
}

func (u *Union) Kind() NodeKind { return KindUnion }

func (u *Union) NodeExpressions() []expr.Expression { return nil }

func (u *Union) ColumnExpressions() []expr.Expression { return u.left.ColumnExpressions() }

func (u *Union) IsColumnNullable(index int) bool {
	return u.left.IsColumnNullable(index) || u.right.IsColumnNullable(index)
}

// Constraints: UnionDistinct guarantees no two output rows are identical
// across every column, which is itself a unique constraint over the
// union's own full output — but only expressible once the union's columns
// have their own identity, which is self rather than either input's. For
// UnionAll no such guarantee holds, and neither input's constraints survive
// combination in general (matching rows could appear on both sides), so the
// conservative result is empty.
func (u *Union) Constraints() ConstraintSet {
	if u.Mode != UnionDistinct {
		return EmptyConstraintSet
	}
	cols := make([]*expr.LQPColumn, len(u.left.ColumnExpressions()))
	for i := range cols {
		cols[i] = expr.NewLQPColumn(u, i)
	}
	return NewConstraintSet(NewUniqueConstraint(cols...))
}

func (u *Union) Description(expr.DescriptionMode) string {
	return "[Union] Mode: " + u.Mode.String()
}

func (u *Union) ShallowCopy(expr.NodeMapping) Node {
	cp := &Union{Mode: u.Mode}
	cp.bindSelf(cp)
	return cp
}

func (u *Union) ShallowEquals(other Node, _ expr.NodeMapping) bool {
	o, ok := other.(*Union)
	return ok && u.Mode == o.Mode
}

func (u *Union) ShallowHash() uint64 {
	return hashutil.CombineAll(uint64(KindUnion), uint64(u.Mode))
}
