package lqp

import (
	"fmt"

	pair "github.com/notEpsilon/go-pair"

	"github.com/wjcskqygj2015/hyrise/expr"
	"github.com/wjcskqygj2015/hyrise/internal/assert"
	"github.com/wjcskqygj2015/hyrise/internal/hashutil"
	"github.com/wjcskqygj2015/hyrise/internal/trace"
	"github.com/wjcskqygj2015/hyrise/lqperr"
)

// JoinMode is the closed set of join semantics a Join node can carry.
type JoinMode int

const (
	Inner JoinMode = iota
	Left
	Right
	FullOuter
	Cross
	Semi
	AntiNullAsTrue
	AntiNullAsFalse
)

func (m JoinMode) String() string {
	switch m {
	case Inner:
		return "Inner"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case FullOuter:
		return "FullOuter"
	case Cross:
		return "Cross"
	case Semi:
		return "Semi"
	case AntiNullAsTrue:
		return "AntiNullAsTrue"
	case AntiNullAsFalse:
		return "AntiNullAsFalse"
	default:
		return "Unknown"
	}
}

// Join combines a left and right input under mode, filtered by predicates.
type Join struct {
	baseNode
	Mode       JoinMode
	Predicates []expr.Expression
}

// NewJoin builds a Join node. Cross joins must carry no predicates; every
// other mode must carry at least one. Violating this panics with
// lqperr.InvariantViolation — a join's predicate list is fixed at
// construction, so this is a programmer error, not a runtime condition to
// recover from.
func NewJoin(left, right Node, mode JoinMode, predicates ...expr.Expression) *Join {
	if mode == Cross {
		assert.Require(len(predicates) == 0, &lqperr.InvariantViolation{Msg: "cross join must not carry predicates"})
	} else {
		assert.Require(len(predicates) > 0, &lqperr.InvariantViolation{Msg: fmt.Sprintf("%s join requires at least one predicate", mode)})
	}
	j := &Join{Mode: mode, Predicates: predicates}
	j.SetLeftInput(left)
	j.SetRightInput(right)
	j.bindSelf(j)
	trace.Printf(trace.Construction, "NewJoin: mode=%s predicates=%d\n", mode, len(predicates))
	return j
}

func (j *Join) Kind() NodeKind { return KindJoin }

func (j *Join) NodeExpressions() []expr.Expression { return j.Predicates }

// semiOrAnti reports whether the join mode drops the right side's columns
// from the output.
func (j *Join) semiOrAnti() bool {
	return j.Mode == Semi || j.Mode == AntiNullAsTrue || j.Mode == AntiNullAsFalse
}

func (j *Join) ColumnExpressions() []expr.Expression {
	left := j.left.ColumnExpressions()
	if j.semiOrAnti() {
		return left
	}
	right := j.right.ColumnExpressions()
	out := make([]expr.Expression, 0, len(left)+len(right))
	out = append(out, left...)
	out = append(out, right...)
	return out
}

func (j *Join) IsColumnNullable(index int) bool {
	leftLen := len(j.left.ColumnExpressions())
	if j.semiOrAnti() {
		return j.left.IsColumnNullable(index)
	}
	switch j.Mode {
	case FullOuter:
		return true
	case Left:
		if index >= leftLen {
			return true
		}
		return j.left.IsColumnNullable(index)
	case Right:
		if index < leftLen {
			return true
		}
		return j.right.IsColumnNullable(index - leftLen)
	default: // Inner, Cross
		if index < leftLen {
			return j.left.IsColumnNullable(index)
		}
		return j.right.IsColumnNullable(index - leftLen)
	}
}

// singleEquiPredicate reports the join's one cross-side column equality,
// but only when the join carries exactly one predicate and that predicate
// takes this shape. A join filtered by several predicates, or by anything
// other than a plain column-to-column equality, yields no single-side
// forwarding at all — a second predicate can discard rows in a way that
// breaks the uniqueness argument below, so this stays conservative rather
// than reason about predicate interactions.
func (j *Join) singleEquiPredicate() (pair.Pair[*expr.LQPColumn, *expr.LQPColumn], bool) {
	if len(j.Predicates) != 1 {
		return pair.Pair[*expr.LQPColumn, *expr.LQPColumn]{}, false
	}
	pairs := j.equiPairs()
	if len(pairs) != 1 {
		return pair.Pair[*expr.LQPColumn, *expr.LQPColumn]{}, false
	}
	return pairs[0], true
}

// equiPairs extracts the (left column, right column) pairs of every
// equality predicate whose two sides come one from each input. Predicates
// that are not simple column-to-column equality (range predicates, equality
// against a literal, compound expressions) are skipped — they carry no
// functional-dependency information this analysis can use.
func (j *Join) equiPairs() []pair.Pair[*expr.LQPColumn, *expr.LQPColumn] {
	leftNodes := reachable(j.left)
	rightNodes := reachable(j.right)
	var pairs []pair.Pair[*expr.LQPColumn, *expr.LQPColumn]
	for _, e := range j.Predicates {
		bp, ok := e.(*expr.BinaryPredicate)
		if !ok || bp.Condition != expr.Equals {
			continue
		}
		lc, lok := bp.Left.(*expr.LQPColumn)
		rc, rok := bp.Right.(*expr.LQPColumn)
		if !lok || !rok {
			continue
		}
		lOwner, _ := lc.Owner.(Node)
		rOwner, _ := rc.Owner.(Node)
		if leftNodes[lOwner] && rightNodes[rOwner] {
			pairs = append(pairs, *pair.New(lc, rc))
		} else if leftNodes[rOwner] && rightNodes[lOwner] {
			pairs = append(pairs, *pair.New(rc, lc))
		}
	}
	return pairs
}

// Constraints implements the join's contribution to unique-constraint
// propagation. Only an inner join carries any guarantee: a combined
// constraint pairing one UCC from each side always survives, since
// uniqueness of a combined key can only be preserved — never broken — by
// dropping rows, and single-side forwarding beyond that is sound only when
// the join is filtered by exactly one column-to-column equality predicate
// and the matching side's join column is itself a unique key. Cross and
// full outer joins carry neither guarantee in general and forward nothing.
// Left/right outer and anti-join forwarding are left as open questions
// upstream; rather than guess, these conservatively drop to the empty set.
func (j *Join) Constraints() ConstraintSet {
	switch j.Mode {
	case Semi:
		trace.Printf(trace.Constraint, "Join.Constraints: semi join forwards left unchanged\n")
		return j.left.Constraints()
	case AntiNullAsTrue, AntiNullAsFalse:
		// TODO: anti-join constraint propagation is an open question;
		// revisit once that's settled upstream.
		trace.Printf(trace.Constraint, "Join.Constraints: mode=%s forwarding nothing (open question)\n", j.Mode)
		return EmptyConstraintSet
	case Left, Right:
		// TODO: outer-join single-side forwarding is an open question;
		// revisit once that's settled upstream.
		trace.Printf(trace.Constraint, "Join.Constraints: mode=%s forwarding nothing (open question)\n", j.Mode)
		return EmptyConstraintSet
	case Cross, FullOuter:
		trace.Printf(trace.Constraint, "Join.Constraints: mode=%s forwarding nothing\n", j.Mode)
		return EmptyConstraintSet
	}

	leftConstraints := j.left.Constraints()
	rightConstraints := j.right.Constraints()

	var out ConstraintSet
	for _, lc := range leftConstraints.Items() {
		for _, rc := range rightConstraints.Items() {
			combined := append(append([]*expr.LQPColumn{}, lc.Columns()...), rc.Columns()...)
			out = out.Add(NewUniqueConstraint(combined...))
		}
	}

	if eq, ok := j.singleEquiPredicate(); ok {
		if rightConstraints.ContainsExact(eq.Second) {
			out = out.Union(leftConstraints)
		}
		if leftConstraints.ContainsExact(eq.First) {
			out = out.Union(rightConstraints)
		}
	}
	trace.Printf(trace.Constraint, "Join.Constraints: mode=Inner produced %d constraints\n", out.Len())
	return out
}

func (j *Join) Description(mode expr.DescriptionMode) string {
	s := fmt.Sprintf("[Join] Mode: %s", j.Mode)
	for _, p := range j.Predicates {
		s += " " + p.Description(mode)
	}
	return s
}

func (j *Join) ShallowCopy(mapping expr.NodeMapping) Node {
	preds := make([]expr.Expression, len(j.Predicates))
	for i, p := range j.Predicates {
		preds[i] = p.DeepCopy(mapping)
	}
	cp := &Join{Mode: j.Mode, Predicates: preds}
	cp.bindSelf(cp)
	return cp
}

func (j *Join) ShallowEquals(other Node, mapping expr.NodeMapping) bool {
	o, ok := other.(*Join)
	if !ok || j.Mode != o.Mode || len(j.Predicates) != len(o.Predicates) {
		return false
	}
	for i := range j.Predicates {
		if !j.Predicates[i].Equal(o.Predicates[i], mapping) {
			return false
		}
	}
	return true
}

func (j *Join) ShallowHash() uint64 {
	h := hashutil.CombineAll(uint64(KindJoin), uint64(j.Mode))
	for _, p := range j.Predicates {
		h = hashutil.Combine(h, p.Hash())
	}
	return h
}
