package calibration

import (
	"github.com/wjcskqygj2015/hyrise/catalog"
	"github.com/wjcskqygj2015/hyrise/expr"
	"github.com/wjcskqygj2015/hyrise/lqp"
	"github.com/wjcskqygj2015/hyrise/types"
)

// GeneratorContext is what a PredicateGeneratorFunc is handed: the
// configuration it was invoked for, the synthetic stored table backing it,
// and LQPColumn handles for the primary operand column and, where the
// configuration carries second/third encoding slots, the additional
// operand columns a multi-column functor needs.
type GeneratorContext struct {
	Config       PredicateConfiguration
	Table        *lqp.StoredTable
	Column       *expr.LQPColumn
	SecondColumn *expr.LQPColumn
	ThirdColumn  *expr.LQPColumn
}

// buildContext synthesizes a single-table catalog entry for cfg: one
// column per populated encoding slot, all of cfg.DataType, named
// deterministically by slot.
func buildContext(cfg PredicateConfiguration) GeneratorContext {
	columns := []catalog.ColumnSpecification{
		{Name: referenceColumnName(cfg.DataType, 0), DataType: cfg.DataType, Encoding: cfg.FirstEncoding},
	}
	if cfg.SecondEncoding != nil {
		columns = append(columns, catalog.ColumnSpecification{
			Name: referenceColumnName(cfg.DataType, 1), DataType: cfg.DataType, Encoding: *cfg.SecondEncoding,
		})
	}
	if cfg.ThirdEncoding != nil {
		columns = append(columns, catalog.ColumnSpecification{
			Name: referenceColumnName(cfg.DataType, 2), DataType: cfg.DataType, Encoding: *cfg.ThirdEncoding,
		})
	}

	spec := catalog.TableSpecification{Name: cfg.TableName, Columns: columns, RowCount: cfg.RowCount}
	table := lqp.NewStoredTable(spec)

	ctx := GeneratorContext{Config: cfg, Table: table, Column: expr.NewLQPColumn(table, 0)}
	if cfg.SecondEncoding != nil {
		ctx.SecondColumn = expr.NewLQPColumn(table, 1)
	}
	if cfg.ThirdEncoding != nil {
		ctx.ThirdColumn = expr.NewLQPColumn(table, 2)
	}
	return ctx
}

// GeneratedPredicate is a functor's output wrapped into a logical plan
// fragment — a single-input Predicate node over the functor's synthetic
// stored table — plus an index-scan hint carried alongside it. The hint is
// descriptive only: this package builds no physical plan, so it records
// which configurations a calibration run should additionally measure under
// an index-scan access path rather than choosing one itself.
type GeneratedPredicate struct {
	Node          *lqp.Predicate
	IndexScanHint bool
}

// GeneratePredicateNode invokes fn against a fresh synthetic context built
// from cfg and wraps its result in a Predicate node. It reports ok=false,
// with a nil GeneratedPredicate, if fn declines the configuration (e.g. a
// string-only functor asked to run against a numeric data type).
func GeneratePredicateNode(fn PredicateGeneratorFunc, cfg PredicateConfiguration, useIndexScan bool) (*GeneratedPredicate, bool) {
	ctx := buildContext(cfg)
	condition, ok := fn(ctx)
	if !ok {
		return nil, false
	}
	return &GeneratedPredicate{
		Node:          lqp.NewPredicate(ctx.Table, condition),
		IndexScanHint: useIndexScan,
	}, true
}

// numericPlaceholder derives a deterministic literal value from a
// configuration's selectivity for numeric data types — a representative
// stand-in, since no real data distribution exists at this layer; the
// literal only needs to be well-typed for the plan to be valid, not
// accurate against any particular data set.
func numericPlaceholder(dt types.DataType, selectivity float64, spread float64) any {
	scaled := int64(selectivity * spread)
	switch dt {
	case types.Int:
		return int32(scaled)
	case types.Long:
		return scaled
	case types.Float:
		return float32(selectivity * spread)
	case types.Double:
		return selectivity * spread
	default:
		return scaled
	}
}
