package expr

import (
	"fmt"

	"github.com/wjcskqygj2015/hyrise/internal/hashutil"
	"github.com/wjcskqygj2015/hyrise/types"
)

// LQPColumn is a back-reference to a specific column of a specific LQP
// node — the source that defines that column. Its identity is the pair
// (owning node identity, column index); two LQPColumn values naming the
// same node and index are equal.
type LQPColumn struct {
	Owner NodeRef
	Index int
}

// NewLQPColumn builds an LQPColumn naming column index of owner.
func NewLQPColumn(owner NodeRef, index int) *LQPColumn {
	return &LQPColumn{Owner: owner, Index: index}
}

func (c *LQPColumn) DataType() types.DataType { return c.Owner.OutputColumnType(c.Index) }

func (c *LQPColumn) IsNullable() bool { return c.Owner.OutputColumnNullable(c.Index) }

func (c *LQPColumn) Description(DescriptionMode) string {
	return fmt.Sprintf("Column#%d", c.Index)
}

func (c *LQPColumn) Hash() uint64 {
	// The owner's identity is its pointer value; hash the index alongside
	// a stable per-owner salt derived from the interface's dynamic pointer
	// via fmt, since node identity has no numeric form exposed here.
	return hashutil.CombineAll(tagColumn, hashutil.String(fmt.Sprintf("%p", c.Owner)), uint64(c.Index))
}

func (c *LQPColumn) Equal(other Expression, mapping NodeMapping) bool {
	o, ok := other.(*LQPColumn)
	if !ok {
		return false
	}
	if c.Index != o.Index {
		return false
	}
	return mapping.Resolve(c.Owner) == o.Owner
}

func (c *LQPColumn) DeepCopy(mapping NodeMapping) Expression {
	return &LQPColumn{Owner: mapping.Resolve(c.Owner), Index: c.Index}
}
