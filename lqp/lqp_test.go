package lqp

import (
	"testing"

	"github.com/wjcskqygj2015/hyrise/catalog"
	"github.com/wjcskqygj2015/hyrise/expr"
	"github.com/wjcskqygj2015/hyrise/types"
)

func customersTable() catalog.TableSpecification {
	return catalog.TableSpecification{
		Name: "customers",
		Columns: []catalog.ColumnSpecification{
			{Name: "id", DataType: types.Int, Nullable: false},
			{Name: "name", DataType: types.String, Nullable: false},
		},
		UniqueConstraints: [][]int{{0}},
	}
}

func ordersTable() catalog.TableSpecification {
	return catalog.TableSpecification{
		Name: "orders",
		Columns: []catalog.ColumnSpecification{
			{Name: "id", DataType: types.Int, Nullable: false},
			{Name: "customer_id", DataType: types.Int, Nullable: true},
		},
		UniqueConstraints: [][]int{{0}},
	}
}

func TestCrossJoinRejectsPredicates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic when a cross join carries predicates")
		}
	}()
	c := NewStoredTable(customersTable())
	o := NewStoredTable(ordersTable())
	pred := expr.NewBinaryPredicate(expr.NewLQPColumn(c, 0), expr.Equals, expr.NewLQPColumn(o, 1))
	NewJoin(c, o, Cross, pred)
}

func TestNonCrossJoinRequiresPredicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic when a non-cross join carries no predicate")
		}
	}()
	c := NewStoredTable(customersTable())
	o := NewStoredTable(ordersTable())
	NewJoin(c, o, Inner)
}

func TestLeftOuterJoinPadsRightColumnsNullable(t *testing.T) {
	c := NewStoredTable(customersTable())
	o := NewStoredTable(ordersTable())
	pred := expr.NewBinaryPredicate(expr.NewLQPColumn(c, 0), expr.Equals, expr.NewLQPColumn(o, 1))
	j := NewJoin(c, o, Left, pred)

	if j.IsColumnNullable(0) {
		t.Errorf("expected left-side id column to stay non-nullable")
	}
	if !j.IsColumnNullable(2) {
		t.Errorf("expected right-side id column to become nullable under a left outer join")
	}
	if !j.IsColumnNullable(3) {
		t.Errorf("expected right-side customer_id column to become nullable under a left outer join")
	}
}

func TestFullOuterJoinPadsBothSidesNullable(t *testing.T) {
	c := NewStoredTable(customersTable())
	o := NewStoredTable(ordersTable())
	pred := expr.NewBinaryPredicate(expr.NewLQPColumn(c, 0), expr.Equals, expr.NewLQPColumn(o, 1))
	j := NewJoin(c, o, FullOuter, pred)

	for i := 0; i < 4; i++ {
		if !j.IsColumnNullable(i) {
			t.Errorf("expected column %d to be nullable under a full outer join", i)
		}
	}
}

func TestSemiJoinForwardsLeftConstraintsUnchanged(t *testing.T) {
	c := NewStoredTable(customersTable())
	o := NewStoredTable(ordersTable())
	pred := expr.NewBinaryPredicate(expr.NewLQPColumn(c, 0), expr.Equals, expr.NewLQPColumn(o, 1))
	j := NewJoin(c, o, Semi, pred)

	if len(j.ColumnExpressions()) != 2 {
		t.Fatalf("expected semi join to expose only the left side's columns, got %d", len(j.ColumnExpressions()))
	}
	cCol := expr.NewLQPColumn(c, 0)
	if !j.Constraints().ContainsExact(cCol) {
		t.Errorf("expected semi join to forward left's unique constraint on customers.id")
	}
}

func TestInnerJoinOnUniqueRightKeyForwardsLeftConstraints(t *testing.T) {
	c := NewStoredTable(customersTable())
	o := NewStoredTable(ordersTable())
	// orders.id is unique; join customers to orders on orders.id, so every
	// customer row matches at most one orders row and customers' own key
	// keeps holding.
	pred := expr.NewBinaryPredicate(expr.NewLQPColumn(c, 0), expr.Equals, expr.NewLQPColumn(o, 0))
	j := NewJoin(c, o, Inner, pred)

	cID := expr.NewLQPColumn(c, 0)
	if !j.Constraints().ContainsExact(cID) {
		t.Errorf("expected join result to keep customers.id as a unique constraint")
	}
}

func TestInnerJoinOnNonUniqueKeyDropsSingleSideConstraint(t *testing.T) {
	c := NewStoredTable(customersTable())
	o := NewStoredTable(ordersTable())
	// Neither customers.name nor orders.customer_id is a unique key, so
	// orders.id alone should not be forwarded as a standalone constraint
	// through this join — only the combined pairing of both sides' keys
	// survives unconditionally.
	pred := expr.NewBinaryPredicate(expr.NewLQPColumn(c, 1), expr.Equals, expr.NewLQPColumn(o, 1))
	j := NewJoin(c, o, Inner, pred)

	oID := expr.NewLQPColumn(o, 0)
	if j.Constraints().ContainsExact(oID) {
		t.Errorf("did not expect orders.id alone to be forwarded when the join key is not unique on either side")
	}
}

func TestCrossJoinForwardsNoConstraints(t *testing.T) {
	c := NewStoredTable(customersTable())
	o := NewStoredTable(ordersTable())
	j := NewJoin(c, o, Cross)

	if j.Constraints().Len() != 0 {
		t.Errorf("expected cross join to forward no constraints, got %d", j.Constraints().Len())
	}
}

func TestFullOuterJoinForwardsNoConstraints(t *testing.T) {
	c := NewStoredTable(customersTable())
	o := NewStoredTable(ordersTable())
	pred := expr.NewBinaryPredicate(expr.NewLQPColumn(c, 0), expr.Equals, expr.NewLQPColumn(o, 0))
	j := NewJoin(c, o, FullOuter, pred)

	if j.Constraints().Len() != 0 {
		t.Errorf("expected full outer join to forward no constraints, got %d", j.Constraints().Len())
	}
}

func TestLeftAndRightOuterJoinsForwardNoConstraints(t *testing.T) {
	c := NewStoredTable(customersTable())
	o := NewStoredTable(ordersTable())
	pred := expr.NewBinaryPredicate(expr.NewLQPColumn(c, 0), expr.Equals, expr.NewLQPColumn(o, 0))

	left := NewJoin(c, o, Left, pred)
	if left.Constraints().Len() != 0 {
		t.Errorf("expected left outer join to forward no constraints, got %d", left.Constraints().Len())
	}

	right := NewJoin(c, o, Right, pred)
	if right.Constraints().Len() != 0 {
		t.Errorf("expected right outer join to forward no constraints, got %d", right.Constraints().Len())
	}
}

func TestAntiJoinsForwardNoConstraints(t *testing.T) {
	c := NewStoredTable(customersTable())
	o := NewStoredTable(ordersTable())
	pred := expr.NewBinaryPredicate(expr.NewLQPColumn(c, 0), expr.Equals, expr.NewLQPColumn(o, 0))

	trueJoin := NewJoin(c, o, AntiNullAsTrue, pred)
	if trueJoin.Constraints().Len() != 0 {
		t.Errorf("expected AntiNullAsTrue join to forward no constraints, got %d", trueJoin.Constraints().Len())
	}

	falseJoin := NewJoin(c, o, AntiNullAsFalse, pred)
	if falseJoin.Constraints().Len() != 0 {
		t.Errorf("expected AntiNullAsFalse join to forward no constraints, got %d", falseJoin.Constraints().Len())
	}
}

func TestInnerJoinCombinesConstraintsAcrossBothSides(t *testing.T) {
	c := NewStoredTable(customersTable())
	o := NewStoredTable(ordersTable())
	pred := expr.NewBinaryPredicate(expr.NewLQPColumn(c, 1), expr.Equals, expr.NewLQPColumn(o, 1))
	j := NewJoin(c, o, Inner, pred)

	combined := []*expr.LQPColumn{expr.NewLQPColumn(c, 0), expr.NewLQPColumn(o, 0)}
	if !j.Constraints().ContainsExact(combined...) {
		t.Errorf("expected inner join to forward the combination of both sides' unique keys")
	}
}

func TestInnerJoinWithMultiplePredicatesDropsSingleSideForwarding(t *testing.T) {
	c := NewStoredTable(customersTable())
	o := NewStoredTable(ordersTable())
	// Two predicates: even though orders.id is unique, the single-equi-
	// predicate guard must refuse to forward customers' constraints here.
	predA := expr.NewBinaryPredicate(expr.NewLQPColumn(c, 0), expr.Equals, expr.NewLQPColumn(o, 0))
	predB := expr.NewBinaryPredicate(expr.NewLQPColumn(c, 1), expr.Equals, expr.NewLQPColumn(o, 1))
	j := NewJoin(c, o, Inner, predA, predB)

	cID := expr.NewLQPColumn(c, 0)
	if j.Constraints().ContainsExact(cID) {
		t.Errorf("did not expect customers.id to be forwarded alone through a multi-predicate join")
	}
	oID := expr.NewLQPColumn(o, 0)
	if j.Constraints().ContainsExact(oID) {
		t.Errorf("did not expect orders.id to be forwarded alone through a multi-predicate join")
	}
	combined := []*expr.LQPColumn{cID, oID}
	if !j.Constraints().ContainsExact(combined...) {
		t.Errorf("expected the combined pairing of both sides' keys to still survive a multi-predicate inner join")
	}
}

func TestProjectionDropsConstraintsOnRemovedColumns(t *testing.T) {
	c := NewStoredTable(customersTable())
	proj := NewProjection(c, expr.NewLQPColumn(c, 1)) // only "name" survives

	if proj.Constraints().Len() != 0 {
		t.Errorf("expected projection to drop customers.id's unique constraint once id is no longer projected")
	}
}

func TestProjectionKeepsConstraintsOnPassedThroughColumns(t *testing.T) {
	c := NewStoredTable(customersTable())
	proj := NewProjection(c, expr.NewLQPColumn(c, 0), expr.NewLQPColumn(c, 1))

	idCol := expr.NewLQPColumn(c, 0)
	if !proj.Constraints().ContainsExact(idCol) {
		t.Errorf("expected projection to keep customers.id's unique constraint when id passes through")
	}
}

func TestPredicateCarriesExactlyOneConditionExpression(t *testing.T) {
	c := NewStoredTable(customersTable())
	p := NewPredicate(c, expr.NewBinaryPredicate(expr.NewLQPColumn(c, 0), expr.Equals, expr.NewValue(types.Int, int32(1))))
	if len(p.NodeExpressions()) != 1 {
		t.Fatalf("expected a Predicate node to carry exactly one condition expression, got %d", len(p.NodeExpressions()))
	}
}

func TestAggregateGroupByColumnsFormUniqueConstraint(t *testing.T) {
	c := NewStoredTable(customersTable())
	agg := NewAggregate(c, []expr.Expression{expr.NewLQPColumn(c, 1)},
		expr.NewAggregateExpression(expr.Count, nil))

	groupCol := expr.NewLQPColumn(agg, 0)
	if !agg.Constraints().ContainsExact(groupCol) {
		t.Errorf("expected the group-by column to form a unique constraint on the aggregate's own output")
	}
}

func TestValidateColumnReferencesCatchesUnreachableOwner(t *testing.T) {
	c := NewStoredTable(customersTable())
	other := NewStoredTable(ordersTable())
	// A predicate built against a node that is never wired into the plan.
	danglingCol := expr.NewLQPColumn(other, 0)
	p := NewPredicate(c, expr.NewBinaryPredicate(danglingCol, expr.Equals, expr.NewValue(types.Int, int32(1))))

	if err := ValidateColumnReferences(p); err == nil {
		t.Errorf("expected ValidateColumnReferences to flag a column owned by an unreachable node")
	}
}

func TestValidateColumnReferencesAcceptsWellFormedPlan(t *testing.T) {
	c := NewStoredTable(customersTable())
	p := NewPredicate(c, expr.NewBinaryPredicate(expr.NewLQPColumn(c, 0), expr.Equals, expr.NewValue(types.Int, int32(1))))

	if err := ValidateColumnReferences(p); err != nil {
		t.Errorf("did not expect an error for a well-formed plan, got %v", err)
	}
}
