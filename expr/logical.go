package expr

import (
	"fmt"

	"github.com/wjcskqygj2015/hyrise/internal/hashutil"
	"github.com/wjcskqygj2015/hyrise/types"
)

// LogicalOperator distinguishes And from Or within a Logical expression.
type LogicalOperator int

const (
	And LogicalOperator = iota
	Or
)

func (o LogicalOperator) String() string {
	if o == And {
		return "AND"
	}
	return "OR"
}

// Logical combines two sub-expressions with And/Or.
type Logical struct {
	Left, Right Expression
	Operator    LogicalOperator
}

// NewLogical builds a Logical combinator over left and right.
func NewLogical(left Expression, op LogicalOperator, right Expression) *Logical {
	return &Logical{Left: left, Right: right, Operator: op}
}

func (l *Logical) DataType() types.DataType { return types.Int }

func (l *Logical) IsNullable() bool { return l.Left.IsNullable() || l.Right.IsNullable() }

func (l *Logical) Description(mode DescriptionMode) string {
	return fmt.Sprintf("%s %s %s", l.Left.Description(mode), l.Operator, l.Right.Description(mode))
}

func (l *Logical) Hash() uint64 {
	return hashutil.CombineAll(tagLogical, uint64(l.Operator), l.Left.Hash(), l.Right.Hash())
}

func (l *Logical) Equal(other Expression, mapping NodeMapping) bool {
	o, ok := other.(*Logical)
	if !ok || l.Operator != o.Operator {
		return false
	}
	return l.Left.Equal(o.Left, mapping) && l.Right.Equal(o.Right, mapping)
}

func (l *Logical) DeepCopy(mapping NodeMapping) Expression {
	return &Logical{Left: l.Left.DeepCopy(mapping), Right: l.Right.DeepCopy(mapping), Operator: l.Operator}
}
