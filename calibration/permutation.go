package calibration

import (
	"fmt"
	"sort"

	"github.com/wjcskqygj2015/hyrise/types"
)

// GeneratePredicatePermutations enumerates the full Cartesian product of
// tables × data types × encodings × selectivities named by cfg, producing
// one PredicateConfiguration per combination. It is pure and deterministic:
// the same tables and cfg always produce the same slice, sorted by
// PredicateConfiguration.Less, so repeated calibration runs are comparable
// point for point.
//
// When cfg.IncludeMultiColumn is set, every single-column configuration is
// additionally paired with a second (and, for three-way functors, third)
// encoding drawn from cfg.Encodings, covering the column-column and
// between-column-column functors.
func GeneratePredicatePermutations(tables []TableRowCount, cfg CalibrationConfig) []PredicateConfiguration {
	var out []PredicateConfiguration
	for _, table := range tables {
		for _, dt := range cfg.DataTypes {
			for _, enc1 := range cfg.Encodings {
				for _, sel := range cfg.Selectivities {
					base := PredicateConfiguration{
						TableName:       table.TableName,
						DataType:        dt,
						FirstEncoding:   enc1,
						Selectivity:     sel,
						ReferenceColumn: referenceColumnName(dt, 0),
						RowCount:        table.RowCount,
					}
					out = append(out, base)
					if !cfg.IncludeMultiColumn {
						continue
					}
					for _, enc2 := range cfg.Encodings {
						twoColumn := base
						enc2 := enc2
						twoColumn.SecondEncoding = &enc2
						out = append(out, twoColumn)
						for _, enc3 := range cfg.Encodings {
							threeColumn := twoColumn
							enc3 := enc3
							threeColumn.ThirdEncoding = &enc3
							out = append(out, threeColumn)
						}
					}
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// referenceColumnName picks a deterministic synthetic column name for slot
// (0 = primary operand, 1 = second operand, 2 = third operand) of the given
// data type.
func referenceColumnName(dt types.DataType, slot int) string {
	return fmt.Sprintf("col_%s_%d", dt, slot)
}
