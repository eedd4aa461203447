package expr

import (
	"github.com/wjcskqygj2015/hyrise/internal/hashutil"
	"github.com/wjcskqygj2015/hyrise/types"
)

const (
	tagValue uint64 = iota + 1
	tagColumn
	tagBinaryPredicate
	tagLogical
	tagBetween
)

// Value is a constant of a known data type, optionally NULL.
type Value struct {
	Type  types.DataType
	Raw   any
	Null_ bool
}

// NewValue builds a non-NULL constant of the given type.
func NewValue(dt types.DataType, raw any) *Value {
	return &Value{Type: dt, Raw: raw}
}

// NewNullValue builds a NULL constant of the given type.
func NewNullValue(dt types.DataType) *Value {
	return &Value{Type: dt, Null_: true}
}

func (v *Value) DataType() types.DataType { return v.Type }

func (v *Value) IsNullable() bool { return v.Null_ }

func (v *Value) Description(DescriptionMode) string {
	if v.Null_ {
		return "NULL"
	}
	return types.FormatLiteral(v.Type, v.Raw)
}

func (v *Value) Hash() uint64 {
	h := hashutil.CombineAll(tagValue, uint64(v.Type))
	if v.Null_ {
		return hashutil.Combine(h, 1)
	}
	return hashutil.Combine(h, hashutil.String(types.FormatLiteral(v.Type, v.Raw)))
}

func (v *Value) Equal(other Expression, _ NodeMapping) bool {
	o, ok := other.(*Value)
	if !ok {
		return false
	}
	if v.Type != o.Type || v.Null_ != o.Null_ {
		return false
	}
	if v.Null_ {
		return true
	}
	return v.Raw == o.Raw
}

func (v *Value) DeepCopy(NodeMapping) Expression {
	cp := *v
	return &cp
}
