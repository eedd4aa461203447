package lqp

import (
	"fmt"
	"strings"

	"github.com/wjcskqygj2015/hyrise/expr"
	"github.com/wjcskqygj2015/hyrise/internal/hashutil"
	"github.com/wjcskqygj2015/hyrise/internal/trace"
)

// SortOrder selects ascending or descending order for one Sort key.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	if o == Ascending {
		return "ASC"
	}
	return "DESC"
}

// SortKey pairs an expression with the order it is sorted in.
type SortKey struct {
	Expression expr.Expression
	Order      SortOrder
}

// Sort orders its input by Keys without changing its schema or row set.
type Sort struct {
	baseNode
	Keys []SortKey
}

// NewSort builds a Sort node ordering input by keys.
func NewSort(input Node, keys ...SortKey) *Sort {
	s := &Sort{Keys: keys}
	s.SetLeftInput(input)
	s.bindSelf(s)
	trace.Printf(trace.Construction, "NewSort: %d keys\n", len(keys))
	return s
}

func (s *Sort) Kind() NodeKind { return KindSort }

func (s *Sort) NodeExpressions() []expr.Expression {
	out := make([]expr.Expression, len(s.Keys))
	for i, k := range s.Keys {
		out[i] = k.Expression
	}
	return out
}

func (s *Sort) ColumnExpressions() []expr.Expression { return s.left.ColumnExpressions() }

func (s *Sort) IsColumnNullable(index int) bool { return s.left.IsColumnNullable(index) }

// Constraints forwards the input's constraints unchanged: reordering rows
// cannot create or destroy a unique combination of values.
func (s *Sort) Constraints() ConstraintSet { return s.left.Constraints() }

func (s *Sort) Description(mode expr.DescriptionMode) string {
	parts := make([]string, len(s.Keys))
	for i, k := range s.Keys {
		parts[i] = fmt.Sprintf("%s %s", k.Expression.Description(mode), k.Order)
	}
	return "[Sort] " + strings.Join(parts, ", ")
}

func (s *Sort) ShallowCopy(mapping expr.NodeMapping) Node {
	keys := make([]SortKey, len(s.Keys))
	for i, k := range s.Keys {
		keys[i] = SortKey{Expression: k.Expression.DeepCopy(mapping), Order: k.Order}
	}
	cp := &Sort{Keys: keys}
	cp.bindSelf(cp)
	return cp
}

func (s *Sort) ShallowEquals(other Node, mapping expr.NodeMapping) bool {
	o, ok := other.(*Sort)
	if !ok || len(s.Keys) != len(o.Keys) {
		return false
	}
	for i := range s.Keys {
		if s.Keys[i].Order != o.Keys[i].Order || !s.Keys[i].Expression.Equal(o.Keys[i].Expression, mapping) {
			return false
		}
	}
	return true
}

func (s *Sort) ShallowHash() uint64 {
	h := uint64(KindSort)
	for _, k := range s.Keys {
		h = hashutil.CombineAll(h, uint64(k.Order), k.Expression.Hash())
	}
	return h
}
