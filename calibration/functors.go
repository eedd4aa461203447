package calibration

import (
	"fmt"

	"github.com/wjcskqygj2015/hyrise/expr"
	"github.com/wjcskqygj2015/hyrise/types"
)

// PredicateGeneratorFunc builds the predicate expression a calibration run
// should measure for the given context, reporting ok=false if the functor
// does not apply to ctx.Config (wrong data type, missing second/third
// operand column, ...) rather than erroring — callers are expected to try
// another functor or skip the configuration.
type PredicateGeneratorFunc func(ctx GeneratorContext) (expr.Expression, bool)

const placeholderSpread = 1_000_000

// BetweenValueValue builds value BETWEEN lowerLiteral AND upperLiteral, the
// lower bound placed at half the configuration's selectivity and the upper
// bound at the selectivity itself.
// Applies to any non-NULL data type.
func BetweenValueValue(ctx GeneratorContext) (expr.Expression, bool) {
	dt := ctx.Config.DataType
	if dt == types.Null {
		return nil, false
	}
	lower := literalFor(dt, ctx.Config.Selectivity*0.5)
	upper := literalFor(dt, ctx.Config.Selectivity)
	return expr.NewBetween(ctx.Column, lower, upper, expr.Inclusive), true
}

// BetweenColumnColumn builds value BETWEEN secondColumn AND thirdColumn.
// Applies only when the configuration carries both a second and a third
// encoding slot.
func BetweenColumnColumn(ctx GeneratorContext) (expr.Expression, bool) {
	if ctx.SecondColumn == nil || ctx.ThirdColumn == nil {
		return nil, false
	}
	return expr.NewBetween(ctx.Column, ctx.SecondColumn, ctx.ThirdColumn, expr.Inclusive), true
}

// ColumnValue builds column <= literal, the single-column range scan shape.
// Applies to any non-NULL data type.
func ColumnValue(ctx GeneratorContext) (expr.Expression, bool) {
	if ctx.Config.DataType == types.Null {
		return nil, false
	}
	return expr.NewBinaryPredicate(ctx.Column, expr.LessThanEquals, literalFor(ctx.Config.DataType, ctx.Config.Selectivity)), true
}

// ColumnColumn builds column < secondColumn. Applies only when the
// configuration carries a second encoding slot.
func ColumnColumn(ctx GeneratorContext) (expr.Expression, bool) {
	if ctx.SecondColumn == nil {
		return nil, false
	}
	return expr.NewBinaryPredicate(ctx.Column, expr.LessThan, ctx.SecondColumn), true
}

// Like builds column LIKE pattern, with a selectivity-driven optional
// trailing wildcard — a prefix match ("value%") rather than a fixed
// surround pattern, mirroring _generate_value_expression's trailing_like
// flag. Applies only to String data types, since BinaryPredicate
// construction itself requires string-typed LIKE operands.
func Like(ctx GeneratorContext) (expr.Expression, bool) {
	if ctx.Config.DataType != types.String {
		return nil, false
	}
	pattern := likeValue(ctx.Config.Selectivity, true)
	return expr.NewBinaryPredicate(ctx.Column, expr.Like, pattern), true
}

// likeValue builds the literal a LIKE predicate compares against. With
// trailingLike set, it keeps only a selectivity-sized fixed prefix of the
// reference value and replaces the rest with a trailing '%' wildcard — a
// lower selectivity keeps a longer fixed prefix, so fewer rows match; with
// trailingLike unset it returns the reference value unchanged, with no
// wildcard at all.
func likeValue(selectivity float64, trailingLike bool) *expr.Value {
	base := fmt.Sprintf("%08d", int64(selectivity*placeholderSpread))
	if !trailingLike {
		return expr.NewValue(types.String, base)
	}
	prefixLen := int((1 - selectivity) * float64(len(base)))
	if prefixLen < 1 {
		prefixLen = 1
	}
	if prefixLen > len(base) {
		prefixLen = len(base)
	}
	return expr.NewValue(types.String, base[:prefixLen]+"%")
}

// EquiOnStrings builds column = secondColumn restricted to String data,
// the shape a dictionary-encoded string join predicate calibrates against.
func EquiOnStrings(ctx GeneratorContext) (expr.Expression, bool) {
	if ctx.Config.DataType != types.String || ctx.SecondColumn == nil {
		return nil, false
	}
	return expr.NewBinaryPredicate(ctx.Column, expr.Equals, ctx.SecondColumn), true
}

// Or builds (column = literal) OR (secondColumn = literal), the composed
// selectivity shape two independent equality predicates produce together.
// Applies only when the configuration carries a second encoding slot.
func Or(ctx GeneratorContext) (expr.Expression, bool) {
	if ctx.SecondColumn == nil {
		return nil, false
	}
	dt := ctx.Config.DataType
	left := expr.NewBinaryPredicate(ctx.Column, expr.Equals, literalFor(dt, ctx.Config.Selectivity))
	right := expr.NewBinaryPredicate(ctx.SecondColumn, expr.Equals, literalFor(dt, ctx.Config.Selectivity))
	return expr.NewLogical(left, expr.Or, right), true
}

// literalFor builds a representative constant of dt positioned at
// selectivity within this package's synthetic value range. For String it
// produces a fixed-width decimal-like string so lexicographic comparisons
// against it remain meaningful across selectivities.
func literalFor(dt types.DataType, selectivity float64) *expr.Value {
	if dt == types.String {
		return expr.NewValue(types.String, fmt.Sprintf("%08d", int64(selectivity*placeholderSpread)))
	}
	return expr.NewValue(dt, numericPlaceholder(dt, selectivity, placeholderSpread))
}
