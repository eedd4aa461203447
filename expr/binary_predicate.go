package expr

import (
	"fmt"

	"github.com/wjcskqygj2015/hyrise/internal/hashutil"
	"github.com/wjcskqygj2015/hyrise/lqperr"
	"github.com/wjcskqygj2015/hyrise/types"
)

// BinaryPredicate compares two operands with a fixed condition. Construction
// enforces that operand types are mutually compatible and, for Like/NotLike,
// that both operands are string-typed (or NULL).
type BinaryPredicate struct {
	Left, Right Expression
	Condition   PredicateCondition
}

// NewBinaryPredicate builds a BinaryPredicate, panicking with
// lqperr.IncompatibleTypes if the operand types are not mutually compatible,
// or if condition is Like/NotLike over a non-string operand.
func NewBinaryPredicate(left Expression, condition PredicateCondition, right Expression) *BinaryPredicate {
	if !types.Compatible(left.DataType(), right.DataType()) {
		panic(&lqperr.IncompatibleTypes{Msg: fmt.Sprintf(
			"binary predicate operands have incompatible types %s and %s", left.DataType(), right.DataType(),
		)})
	}
	if condition == Like || condition == NotLike {
		if left.DataType() != types.String && left.DataType() != types.Null {
			panic(&lqperr.IncompatibleTypes{Msg: "LIKE requires a string-typed left operand"})
		}
		if right.DataType() != types.String && right.DataType() != types.Null {
			panic(&lqperr.IncompatibleTypes{Msg: "LIKE requires a string-typed right operand"})
		}
	}
	return &BinaryPredicate{Left: left, Right: right, Condition: condition}
}

func (b *BinaryPredicate) DataType() types.DataType { return types.Int } // boolean result, modelled as Int (0/1)

// IsNullable follows standard three-valued logic: the predicate is NULL if
// either operand is NULL. This applies uniformly to Like/NotLike as well —
// their additional constraint (string-typed operands) is a construction-time
// type check, not a different nullability rule.
func (b *BinaryPredicate) IsNullable() bool {
	return b.Left.IsNullable() || b.Right.IsNullable()
}

func (b *BinaryPredicate) Description(mode DescriptionMode) string {
	return fmt.Sprintf("%s %s %s", b.Left.Description(mode), b.Condition, b.Right.Description(mode))
}

func (b *BinaryPredicate) Hash() uint64 {
	return hashutil.CombineAll(tagBinaryPredicate, uint64(b.Condition), b.Left.Hash(), b.Right.Hash())
}

func (b *BinaryPredicate) Equal(other Expression, mapping NodeMapping) bool {
	o, ok := other.(*BinaryPredicate)
	if !ok || b.Condition != o.Condition {
		return false
	}
	return b.Left.Equal(o.Left, mapping) && b.Right.Equal(o.Right, mapping)
}

func (b *BinaryPredicate) DeepCopy(mapping NodeMapping) Expression {
	return &BinaryPredicate{
		Left:      b.Left.DeepCopy(mapping),
		Right:     b.Right.DeepCopy(mapping),
		Condition: b.Condition,
	}
}
