package lqp

import (
	"strings"

	"github.com/wjcskqygj2015/hyrise/expr"
	"github.com/wjcskqygj2015/hyrise/internal/hashutil"
	"github.com/wjcskqygj2015/hyrise/internal/trace"
)

// Projection replaces its input's output columns with Expressions,
// evaluated against the input. An expression that is itself an
// *expr.LQPColumn passes that input column straight through; anything else
// (arithmetic, a literal, ...) introduces a computed column with no
// identity of its own.
type Projection struct {
	baseNode
	Expressions []expr.Expression
}

// NewProjection builds a Projection over input producing expressions.
func NewProjection(input Node, expressions ...expr.Expression) *Projection {
	p := &Projection{Expressions: expressions}
	p.SetLeftInput(input)
	p.bindSelf(p)
	trace.Printf(trace.Construction, "NewProjection: %d expressions\n", len(expressions))
	return p
}

func (p *Projection) Kind() NodeKind { return KindProjection }

func (p *Projection) NodeExpressions() []expr.Expression { return p.Expressions }

func (p *Projection) ColumnExpressions() []expr.Expression { return p.Expressions }

func (p *Projection) IsColumnNullable(index int) bool { return p.Expressions[index].IsNullable() }

// Constraints forwards input constraints whose every column is passed
// through unchanged by this projection; a constraint naming a column the
// projection dropped, or only derived via a computed expression, cannot be
// established to still hold and is dropped rather than risk a false
// uniqueness guarantee.
func (p *Projection) Constraints() ConstraintSet {
	passthrough := make(map[columnKey]bool)
	for _, e := range p.Expressions {
		if col, ok := e.(*expr.LQPColumn); ok {
			passthrough[keyOf(col)] = true
		}
	}
	out := p.left.Constraints().OnlyColumnsFrom(func(c *expr.LQPColumn) bool {
		return passthrough[keyOf(c)]
	})
	trace.Printf(trace.Constraint, "Projection.Constraints: kept %d of the input's constraints\n", out.Len())
	return out
}

func (p *Projection) Description(mode expr.DescriptionMode) string {
	parts := make([]string, len(p.Expressions))
	for i, e := range p.Expressions {
		parts[i] = e.Description(mode)
	}
	return "[Projection] " + strings.Join(parts, ", ")
}

func (p *Projection) ShallowCopy(mapping expr.NodeMapping) Node {
	exprs := make([]expr.Expression, len(p.Expressions))
	for i, e := range p.Expressions {
		exprs[i] = e.DeepCopy(mapping)
	}
	cp := &Projection{Expressions: exprs}
	cp.bindSelf(cp)
	return cp
}

func (p *Projection) ShallowEquals(other Node, mapping expr.NodeMapping) bool {
	o, ok := other.(*Projection)
	if !ok || len(p.Expressions) != len(o.Expressions) {
		return false
	}
	for i := range p.Expressions {
		if !p.Expressions[i].Equal(o.Expressions[i], mapping) {
			return false
		}
	}
	return true
}

func (p *Projection) ShallowHash() uint64 {
	h := uint64(KindProjection)
	for _, e := range p.Expressions {
		h = hashutil.Combine(h, e.Hash())
	}
	return h
}
