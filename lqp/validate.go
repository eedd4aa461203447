package lqp

import (
	"github.com/wjcskqygj2015/hyrise/expr"
	"github.com/wjcskqygj2015/hyrise/internal/hashutil"
	"github.com/wjcskqygj2015/hyrise/internal/trace"
)

// Validate filters its input down to rows visible under MVCC at plan
// execution time. It changes no column and, like Predicate, can only remove
// rows, never duplicate them.
type Validate struct {
	baseNode
}

// NewValidate builds a Validate node over input.
func NewValidate(input Node) *Validate {
	v := &Validate{}
	v.SetLeftInput(input)
	v.bindSelf(v)
	trace.Printf(trace.Construction, "NewValidate\n")
	return v
}

func (v *Validate) Kind() NodeKind { return KindValidate }

func (v *Validate) NodeExpressions() []expr.Expression { return nil }

func (v *Validate) ColumnExpressions() []expr.Expression { return v.left.ColumnExpressions() }

func (v *Validate) IsColumnNullable(index int) bool { return v.left.IsColumnNullable(index) }

func (v *Validate) Constraints() ConstraintSet { return v.left.Constraints() }

func (v *Validate) Description(expr.DescriptionMode) string { return "[Validate]" }

func (v *Validate) ShallowCopy(expr.NodeMapping) Node {
	cp := &Validate{}
	cp.bindSelf(cp)
	return cp
}

func (v *Validate) ShallowEquals(other Node, _ expr.NodeMapping) bool {
	_, ok := other.(*Validate)
	return ok
}

func (v *Validate) ShallowHash() uint64 { return hashutil.CombineAll(uint64(KindValidate)) }
