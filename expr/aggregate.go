package expr

import (
	"fmt"

	"github.com/wjcskqygj2015/hyrise/internal/hashutil"
	"github.com/wjcskqygj2015/hyrise/types"
)

// AggregateFunction is the closed set of aggregate functions an
// AggregateExpression can apply.
type AggregateFunction int

const (
	Count AggregateFunction = iota
	CountDistinct
	Sum
	Avg
	Min
	Max
)

func (f AggregateFunction) String() string {
	switch f {
	case Count:
		return "COUNT"
	case CountDistinct:
		return "COUNT DISTINCT"
	case Sum:
		return "SUM"
	case Avg:
		return "AVG"
	case Min:
		return "MIN"
	case Max:
		return "MAX"
	default:
		return "UNKNOWN"
	}
}

const tagAggregate = tagBetween + 1

// AggregateExpression applies Function to Argument, or to every row of the
// group when Argument is nil — the COUNT(*) form.
type AggregateExpression struct {
	Function AggregateFunction
	Argument Expression
}

// NewAggregateExpression builds an AggregateExpression. Argument may be nil
// only for Count (COUNT(*)); every other function requires an argument.
func NewAggregateExpression(function AggregateFunction, argument Expression) *AggregateExpression {
	if argument == nil && function != Count {
		panic(fmt.Sprintf("%s requires an argument expression", function))
	}
	return &AggregateExpression{Function: function, Argument: argument}
}

func (a *AggregateExpression) DataType() types.DataType {
	switch a.Function {
	case Count, CountDistinct:
		return types.Long
	default:
		return a.Argument.DataType()
	}
}

func (a *AggregateExpression) IsNullable() bool {
	switch a.Function {
	case Count, CountDistinct:
		return false
	default:
		return a.Argument.IsNullable()
	}
}

func (a *AggregateExpression) Description(mode DescriptionMode) string {
	if a.Argument == nil {
		return fmt.Sprintf("%s(*)", a.Function)
	}
	return fmt.Sprintf("%s(%s)", a.Function, a.Argument.Description(mode))
}

func (a *AggregateExpression) Hash() uint64 {
	if a.Argument == nil {
		return hashutil.CombineAll(tagAggregate, uint64(a.Function))
	}
	return hashutil.CombineAll(tagAggregate, uint64(a.Function), a.Argument.Hash())
}

func (a *AggregateExpression) Equal(other Expression, mapping NodeMapping) bool {
	o, ok := other.(*AggregateExpression)
	if !ok || a.Function != o.Function {
		return false
	}
	if a.Argument == nil || o.Argument == nil {
		return a.Argument == nil && o.Argument == nil
	}
	return a.Argument.Equal(o.Argument, mapping)
}

func (a *AggregateExpression) DeepCopy(mapping NodeMapping) Expression {
	if a.Argument == nil {
		return &AggregateExpression{Function: a.Function}
	}
	return &AggregateExpression{Function: a.Function, Argument: a.Argument.DeepCopy(mapping)}
}
