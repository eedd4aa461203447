package lqp

import (
	"github.com/wjcskqygj2015/hyrise/expr"
	"github.com/wjcskqygj2015/hyrise/internal/hashutil"
	"github.com/wjcskqygj2015/hyrise/internal/trace"
)

// Predicate filters its input by a single boolean-valued expression.
// Conjunctions are represented by chaining Predicate nodes or by an
// expr.Logical wrapping two sub-predicates — never by a list field here —
// so a node's filter condition is always exactly one Expression.
type Predicate struct {
	baseNode
	Condition expr.Expression
}

// NewPredicate builds a Predicate filtering input by condition.
func NewPredicate(input Node, condition expr.Expression) *Predicate {
	p := &Predicate{Condition: condition}
	p.SetLeftInput(input)
	p.bindSelf(p)
	trace.Printf(trace.Construction, "NewPredicate: %s\n", condition.Description(expr.Detailed))
	return p
}

func (p *Predicate) Kind() NodeKind { return KindPredicate }

func (p *Predicate) NodeExpressions() []expr.Expression { return []expr.Expression{p.Condition} }

func (p *Predicate) ColumnExpressions() []expr.Expression { return p.left.ColumnExpressions() }

func (p *Predicate) IsColumnNullable(index int) bool { return p.left.IsColumnNullable(index) }

// Constraints forwards the input's constraints unchanged: filtering only
// removes rows, which can never turn a unique combination into a
// duplicated one.
func (p *Predicate) Constraints() ConstraintSet { return p.left.Constraints() }

func (p *Predicate) Description(mode expr.DescriptionMode) string {
	return "[Predicate] " + p.Condition.Description(mode)
}

func (p *Predicate) ShallowCopy(mapping expr.NodeMapping) Node {
	cp := &Predicate{Condition: p.Condition.DeepCopy(mapping)}
	cp.bindSelf(cp)
	return cp
}

func (p *Predicate) ShallowEquals(other Node, mapping expr.NodeMapping) bool {
	o, ok := other.(*Predicate)
	return ok && p.Condition.Equal(o.Condition, mapping)
}

func (p *Predicate) ShallowHash() uint64 {
	return hashutil.CombineAll(uint64(KindPredicate), p.Condition.Hash())
}
