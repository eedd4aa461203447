package expr

import (
	"fmt"

	"github.com/wjcskqygj2015/hyrise/internal/hashutil"
	"github.com/wjcskqygj2015/hyrise/lqperr"
	"github.com/wjcskqygj2015/hyrise/types"
)

// BetweenBounds selects whether each side of a Between range is inclusive.
// Kept distinct from PredicateCondition because Between is ternary, not a
// BinaryPredicate.
type BetweenBounds int

const (
	Inclusive BetweenBounds = iota
	LowerExclusive
	UpperExclusive
	Exclusive
)

// Between is the ternary range predicate: value BETWEEN lower AND upper.
type Between struct {
	Value, Lower, Upper Expression
	Bounds              BetweenBounds
}

// NewBetween builds a Between expression, panicking with
// lqperr.IncompatibleTypes if value's type is not compatible with either
// bound's type.
func NewBetween(value, lower, upper Expression, bounds BetweenBounds) *Between {
	if !types.Compatible(value.DataType(), lower.DataType()) || !types.Compatible(value.DataType(), upper.DataType()) {
		panic(&lqperr.IncompatibleTypes{Msg: "BETWEEN operands have incompatible types"})
	}
	return &Between{Value: value, Lower: lower, Upper: upper, Bounds: bounds}
}

func (b *Between) DataType() types.DataType { return types.Int }

func (b *Between) IsNullable() bool {
	return b.Value.IsNullable() || b.Lower.IsNullable() || b.Upper.IsNullable()
}

func (b *Between) Description(mode DescriptionMode) string {
	return fmt.Sprintf("%s BETWEEN %s AND %s", b.Value.Description(mode), b.Lower.Description(mode), b.Upper.Description(mode))
}

func (b *Between) Hash() uint64 {
	return hashutil.CombineAll(tagBetween, uint64(b.Bounds), b.Value.Hash(), b.Lower.Hash(), b.Upper.Hash())
}

func (b *Between) Equal(other Expression, mapping NodeMapping) bool {
	o, ok := other.(*Between)
	if !ok || b.Bounds != o.Bounds {
		return false
	}
	return b.Value.Equal(o.Value, mapping) && b.Lower.Equal(o.Lower, mapping) && b.Upper.Equal(o.Upper, mapping)
}

func (b *Between) DeepCopy(mapping NodeMapping) Expression {
	return &Between{
		Value:  b.Value.DeepCopy(mapping),
		Lower:  b.Lower.DeepCopy(mapping),
		Upper:  b.Upper.DeepCopy(mapping),
		Bounds: b.Bounds,
	}
}
