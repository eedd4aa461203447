package expr

import (
	"testing"

	"github.com/wjcskqygj2015/hyrise/types"
)

// fakeNode is a minimal NodeRef used to test expressions without depending
// on the lqp package.
type fakeNode struct {
	colTypes     []types.DataType
	colNullables []bool
}

func (f *fakeNode) IsLQPNode() bool                       { return true }
func (f *fakeNode) OutputColumnType(i int) types.DataType { return f.colTypes[i] }
func (f *fakeNode) OutputColumnNullable(i int) bool       { return f.colNullables[i] }

func TestValueDescriptionAndEquality(t *testing.T) {
	v1 := NewValue(types.Int, int32(5))
	v2 := NewValue(types.Int, int32(5))
	v3 := NewValue(types.Int, int32(6))

	if !v1.Equal(v2, nil) {
		t.Errorf("expected equal values to compare equal")
	}
	if v1.Equal(v3, nil) {
		t.Errorf("expected different values to compare unequal")
	}
	if v1.Hash() != v2.Hash() {
		t.Errorf("expected equal values to hash equal")
	}
	if NewNullValue(types.Int).Description(Short) != "NULL" {
		t.Errorf("expected NULL description")
	}
}

func TestLQPColumnIdentityAndMapping(t *testing.T) {
	n1 := &fakeNode{colTypes: []types.DataType{types.Int}, colNullables: []bool{false}}
	n2 := &fakeNode{colTypes: []types.DataType{types.Int}, colNullables: []bool{true}}

	c1 := NewLQPColumn(n1, 0)
	c1Copy := NewLQPColumn(n1, 0)
	if !c1.Equal(c1Copy, nil) {
		t.Errorf("expected columns naming the same (owner, index) to be equal")
	}
	if c1.DataType() != types.Int {
		t.Errorf("DataType() = %v, want Int", c1.DataType())
	}
	if c1.IsNullable() {
		t.Errorf("expected c1 to not be nullable")
	}

	mapping := NodeMapping{n1: n2}
	remapped := c1.DeepCopy(mapping).(*LQPColumn)
	if remapped.Owner != n2 {
		t.Errorf("expected DeepCopy to rewrite owner through mapping")
	}
	if !remapped.IsNullable() {
		t.Errorf("expected remapped column to reflect n2's nullability")
	}

	cOnN2 := NewLQPColumn(n2, 0)
	if !c1.Equal(cOnN2, mapping) {
		t.Errorf("expected c1 to equal a column on n2 once mapped through identity remapping")
	}
}

func TestBinaryPredicateNullability(t *testing.T) {
	n := &fakeNode{colTypes: []types.DataType{types.Int, types.Int}, colNullables: []bool{false, true}}
	colA := NewLQPColumn(n, 0)
	colB := NewLQPColumn(n, 1)

	notNullPred := NewBinaryPredicate(colA, Equals, NewValue(types.Int, int32(1)))
	if notNullPred.IsNullable() {
		t.Errorf("expected predicate over non-nullable operands to be non-nullable")
	}

	nullablePred := NewBinaryPredicate(colB, Equals, NewValue(types.Int, int32(1)))
	if !nullablePred.IsNullable() {
		t.Errorf("expected predicate referencing a nullable column to be nullable")
	}
}

func TestBinaryPredicateRejectsIncompatibleTypes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for incompatible operand types")
		}
	}()
	NewBinaryPredicate(NewValue(types.String, "x"), Equals, NewValue(types.Int, int32(1)))
}

func TestLikeRequiresStringOperands(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for LIKE over non-string operand")
		}
	}()
	NewBinaryPredicate(NewValue(types.Int, int32(1)), Like, NewValue(types.String, "x%"))
}

func TestBetweenDeepCopyRewritesAllOperands(t *testing.T) {
	n1 := &fakeNode{colTypes: []types.DataType{types.Int}, colNullables: []bool{false}}
	n2 := &fakeNode{colTypes: []types.DataType{types.Int}, colNullables: []bool{false}}
	b := NewBetween(NewLQPColumn(n1, 0), NewValue(types.Int, int32(0)), NewValue(types.Int, int32(10)), Inclusive)

	cp := b.DeepCopy(NodeMapping{n1: n2}).(*Between)
	if cp.Value.(*LQPColumn).Owner != n2 {
		t.Errorf("expected Between.DeepCopy to rewrite its Value operand's owner")
	}
}

func TestColumnRefsFindsNestedReferences(t *testing.T) {
	n := &fakeNode{colTypes: []types.DataType{types.Int, types.Int}, colNullables: []bool{false, false}}
	colA := NewLQPColumn(n, 0)
	colB := NewLQPColumn(n, 1)
	pred := NewLogical(
		NewBinaryPredicate(colA, Equals, NewValue(types.Int, int32(1))),
		And,
		NewBinaryPredicate(colB, Equals, NewValue(types.Int, int32(2))),
	)

	refs := ColumnRefs(pred)
	if len(refs) != 2 {
		t.Fatalf("ColumnRefs returned %d refs, want 2", len(refs))
	}
}
