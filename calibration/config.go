// Package calibration builds the matrix of predicate configurations used to
// calibrate cost estimates: for every table/data-type/encoding/selectivity
// combination of interest, it produces a small logical plan exercising one
// representative predicate shape, so a downstream cost model can be fit
// against its measured execution cost. Nothing here executes a plan or
// measures anything — that is this package's caller's job.
package calibration

import (
	"fmt"

	"github.com/wjcskqygj2015/hyrise/types"
)

// TableRowCount names one table a calibration sweep should generate
// configurations against, along with the row count to report for it —
// calibration runs against synthetic tables sized on demand, not against a
// catalog populated by a real load.
type TableRowCount struct {
	TableName string
	RowCount  uint64
}

// PredicateConfiguration is one point in the calibration matrix: a table,
// a data type, up to three column encodings (first is always the
// predicate's primary operand; second and third are populated only in the
// multi-column configurations, for functors that need one or two additional
// columns), a target selectivity,
// and the reference column name the generated predicate should be
// described against.
type PredicateConfiguration struct {
	TableName       string
	DataType        types.DataType
	FirstEncoding   types.EncodingType
	SecondEncoding  *types.EncodingType
	ThirdEncoding   *types.EncodingType
	Selectivity     float64
	ReferenceColumn string
	RowCount        uint64
}

func encodingOrdinal(e *types.EncodingType) int {
	if e == nil {
		return -1
	}
	return int(*e)
}

// Less imposes a total order over PredicateConfiguration so that a
// generated matrix sorts deterministically regardless of the order its
// inputs were supplied in: table, then data type, then selectivity, then
// the three encoding slots.
func (c PredicateConfiguration) Less(o PredicateConfiguration) bool {
	if c.TableName != o.TableName {
		return c.TableName < o.TableName
	}
	if c.DataType != o.DataType {
		return c.DataType < o.DataType
	}
	if c.Selectivity != o.Selectivity {
		return c.Selectivity < o.Selectivity
	}
	if c.FirstEncoding != o.FirstEncoding {
		return c.FirstEncoding < o.FirstEncoding
	}
	if se, oe := encodingOrdinal(c.SecondEncoding), encodingOrdinal(o.SecondEncoding); se != oe {
		return se < oe
	}
	if te, oe := encodingOrdinal(c.ThirdEncoding), encodingOrdinal(o.ThirdEncoding); te != oe {
		return te < oe
	}
	return c.ReferenceColumn < o.ReferenceColumn
}

func (c PredicateConfiguration) String() string {
	return fmt.Sprintf("%s.%s[%s] sel=%.4f enc1=%s", c.TableName, c.ReferenceColumn, c.DataType, c.Selectivity, c.FirstEncoding)
}

// CalibrationConfig bounds the matrix GeneratePredicatePermutations
// enumerates: which data types, encodings, and target selectivities to
// cross against every supplied table.
type CalibrationConfig struct {
	DataTypes     []types.DataType
	Encodings     []types.EncodingType
	Selectivities []float64
	// IncludeMultiColumn additionally enumerates second/third encoding
	// slots, for functors that compare two columns or bound a value between
	// two columns. Left false, only single-column configurations are
	// produced.
	IncludeMultiColumn bool
}
