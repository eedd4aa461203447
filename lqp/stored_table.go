package lqp

import (
	"fmt"

	"github.com/wjcskqygj2015/hyrise/catalog"
	"github.com/wjcskqygj2015/hyrise/expr"
	"github.com/wjcskqygj2015/hyrise/internal/hashutil"
	"github.com/wjcskqygj2015/hyrise/internal/trace"
	"github.com/wjcskqygj2015/hyrise/types"
)

// StoredTable is a leaf node naming a catalog table. Its output columns are
// exactly the table's columns, in catalog order.
type StoredTable struct {
	baseNode
	TableName string
	spec      catalog.TableSpecification
}

// NewStoredTable builds a StoredTable leaf over spec.
func NewStoredTable(spec catalog.TableSpecification) *StoredTable {
	t := &StoredTable{TableName: spec.Name, spec: spec}
	t.bindSelf(t)
	trace.Printf(trace.Construction, "NewStoredTable: %s (%d columns)\n", spec.Name, len(spec.Columns))
	return t
}

func (t *StoredTable) Kind() NodeKind { return KindStoredTable }

func (t *StoredTable) NodeExpressions() []expr.Expression { return nil }

func (t *StoredTable) ColumnExpressions() []expr.Expression {
	out := make([]expr.Expression, len(t.spec.Columns))
	for i := range t.spec.Columns {
		out[i] = expr.NewLQPColumn(t, i)
	}
	return out
}

// OutputColumnType reads the column's data type straight from the catalog
// spec. The column expressions of a StoredTable are LQPColumns owned by the
// table itself, so resolving the type through them would call back here.
func (t *StoredTable) OutputColumnType(i int) types.DataType {
	return t.spec.Columns[i].DataType
}

func (t *StoredTable) IsColumnNullable(index int) bool {
	return t.spec.Columns[index].Nullable
}

func (t *StoredTable) Constraints() ConstraintSet {
	var out ConstraintSet
	for _, columnIndices := range t.spec.UniqueConstraints {
		cols := make([]*expr.LQPColumn, len(columnIndices))
		for i, idx := range columnIndices {
			cols[i] = expr.NewLQPColumn(t, idx)
		}
		out = out.Add(NewUniqueConstraint(cols...))
	}
	return out
}

func (t *StoredTable) Description(expr.DescriptionMode) string {
	return fmt.Sprintf("[StoredTable] %s", t.TableName)
}

func (t *StoredTable) ShallowCopy(expr.NodeMapping) Node {
	cp := &StoredTable{TableName: t.TableName, spec: t.spec}
	cp.bindSelf(cp)
	return cp
}

func (t *StoredTable) ShallowEquals(other Node, _ expr.NodeMapping) bool {
	o, ok := other.(*StoredTable)
	return ok && t.TableName == o.TableName
}

func (t *StoredTable) ShallowHash() uint64 {
	return hashutil.CombineAll(uint64(KindStoredTable), hashutil.String(t.TableName))
}
